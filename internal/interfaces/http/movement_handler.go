package http

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-ledger/internal/application/dto"
	"github.com/tu-usuario/almacen-ledger/internal/application/inventory"
	"github.com/tu-usuario/almacen-ledger/internal/application/usecase"
	"github.com/tu-usuario/almacen-ledger/internal/domain/repository"
)

// MovementHandler maneja el registro de movimientos y las consultas del libro
// (listados, saldo histórico, kardex, exportación).
type MovementHandler struct {
	movUC     *inventory.MovementUseCase
	balanceUC *inventory.BalanceUseCase
	itemUC    *usecase.ItemUseCase
	movRepo   repository.MovementRepository // exposición de solo lectura del libro
	kardexPDF inventory.KardexPDFGenerator
}

// NewMovementHandler construye el handler.
func NewMovementHandler(
	movUC *inventory.MovementUseCase,
	balanceUC *inventory.BalanceUseCase,
	itemUC *usecase.ItemUseCase,
	movRepo repository.MovementRepository,
	kardexPDF inventory.KardexPDFGenerator,
) *MovementHandler {
	return &MovementHandler{
		movUC:     movUC,
		balanceUC: balanceUC,
		itemUC:    itemUC,
		movRepo:   movRepo,
		kardexPDF: kardexPDF,
	}
}

// Register godoc
// @Summary      Registrar movimiento de stock (entrada o salida)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "item_id, type (IN|OUT), quantity, responsible, reason"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.movUC.RegisterMovement(c.Context(), inventory.MovementInput{
		ItemID:      in.ItemID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Responsible: in.Responsible,
		Reason:      in.Reason,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterMovementResponse{
		Movement:    dto.ToMovementResponse(result.Movement),
		NewQuantity: result.NewQuantity,
	})
}

// List godoc
// @Summary      Listar movimientos de todos los items (orden cronológico)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (AAAA-MM-DD o RFC3339, inclusivo)"
// @Param        to    query  string  false  "Hasta (AAAA-MM-DD o RFC3339, inclusivo)"
// @Success      200   {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	from, to, err := periodParams(c)
	if err != nil {
		return respondError(c, err)
	}
	movements, err := h.movRepo.ListAll(from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToMovementResponses(movements))
}

// ListByItem godoc
// @Summary      Listar movimientos de un item (orden cronológico)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "Item ID (UUID)"
// @Param        from  query  string  false  "Desde (inclusivo)"
// @Param        to    query  string  false  "Hasta (inclusivo)"
// @Success      200   {array}  dto.MovementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/movements [get]
func (h *MovementHandler) ListByItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if _, err := h.itemUC.GetByID(itemID); err != nil {
		return respondError(c, err)
	}
	from, to, err := periodParams(c)
	if err != nil {
		return respondError(c, err)
	}
	movements, err := h.movRepo.ListByItem(itemID, from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToMovementResponses(movements))
}

// Balance godoc
// @Summary      Saldo de un item en un instante (reconstruido desde el libro)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path   string  true   "Item ID (UUID)"
// @Param        at  query  string  false  "Instante (AAAA-MM-DD o RFC3339); por defecto ahora"
// @Success      200  {object}  dto.BalanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/balance [get]
func (h *MovementHandler) Balance(c *fiber.Ctx) error {
	at, err := parseTimeParam(c.Query("at"), true)
	if err != nil {
		return respondError(c, err)
	}
	instant := time.Now()
	if at != nil {
		instant = *at
	}
	balance, err := h.balanceUC.BalanceAt(c.Context(), c.Params("id"), instant)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.BalanceResponse{ItemID: c.Params("id"), At: instant, Balance: balance})
}

// Kardex godoc
// @Summary      Historial de un período: apertura, movimientos con saldo acumulado y cierre
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "Item ID (UUID)"
// @Param        from  query  string  false  "Desde (inclusivo); vacío = desde el saldo inicial"
// @Param        to    query  string  false  "Hasta (inclusivo); vacío = hasta la cantidad actual"
// @Success      200   {object}  dto.KardexResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/kardex [get]
func (h *MovementHandler) Kardex(c *fiber.Ctx) error {
	from, to, err := periodParams(c)
	if err != nil {
		return respondError(c, err)
	}
	history, err := h.balanceUC.History(c.Context(), c.Params("id"), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toKardexResponse(history, from, to))
}

// KardexPDF godoc
// @Summary      Kardex de un período en PDF
// @Tags         movements
// @Security     Bearer
// @Produce      application/pdf
// @Param        id    path   string  true   "Item ID (UUID)"
// @Param        from  query  string  false  "Desde (inclusivo)"
// @Param        to    query  string  false  "Hasta (inclusivo)"
// @Success      200   {file}  binary
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/kardex/pdf [get]
func (h *MovementHandler) KardexPDF(c *fiber.Ctx) error {
	from, to, err := periodParams(c)
	if err != nil {
		return respondError(c, err)
	}
	item, err := h.itemUC.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	history, err := h.balanceUC.History(c.Context(), item.ID, from, to)
	if err != nil {
		return respondError(c, err)
	}
	pdfBytes, err := h.kardexPDF.GenerateKardexPDF(c.Context(), item, history)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="kardex.pdf"`)
	return c.Send(pdfBytes)
}

// ExportCSV godoc
// @Summary      Exportar movimientos de un período como CSV
// @Tags         movements
// @Security     Bearer
// @Produce      text/csv
// @Param        from  query  string  false  "Desde (inclusivo)"
// @Param        to    query  string  false  "Hasta (inclusivo)"
// @Success      200   {file}  binary
// @Router       /api/movements/export [get]
func (h *MovementHandler) ExportCSV(c *fiber.Ctx) error {
	from, to, err := periodParams(c)
	if err != nil {
		return respondError(c, err)
	}
	movements, err := h.movRepo.ListAll(from, to)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.csv"`)

	w := csv.NewWriter(c.Response().BodyWriter())
	_ = w.Write([]string{"id", "item_id", "tipo", "cantidad", "fecha", "responsable", "motivo"})
	for _, m := range movements {
		_ = w.Write([]string{
			strconv.FormatInt(m.ID, 10),
			m.ItemID,
			m.Type,
			strconv.FormatInt(m.Quantity, 10),
			m.Date.Format(time.RFC3339),
			m.Responsible,
			m.Reason,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("escribir CSV: %w", err)
	}
	return nil
}

func periodParams(c *fiber.Ctx) (from, to *time.Time, err error) {
	from, err = parseTimeParam(c.Query("from"), false)
	if err != nil {
		return nil, nil, err
	}
	to, err = parseTimeParam(c.Query("to"), true)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func toKardexResponse(history *inventory.PeriodHistory, from, to *time.Time) dto.KardexResponse {
	resp := dto.KardexResponse{
		ItemID:         history.ItemID,
		From:           from,
		To:             to,
		OpeningBalance: history.OpeningBalance,
		ClosingBalance: history.ClosingBalance,
		Entries:        make([]dto.KardexEntry, 0, len(history.Entries)),
	}
	for _, e := range history.Entries {
		resp.Entries = append(resp.Entries, dto.KardexEntry{
			MovementResponse: dto.ToMovementResponse(e.Movement),
			Balance:          e.Balance,
		})
	}
	return resp
}
