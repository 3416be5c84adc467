package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-ledger/internal/application/dto"
	"github.com/tu-usuario/almacen-ledger/internal/application/usecase"
)

// ReportHandler expone los reportes operativos de solo lectura.
type ReportHandler struct {
	uc               *usecase.ReportUseCase
	defaultThreshold int64
	defaultDays      int
}

// NewReportHandler construye el handler con los umbrales por defecto de la
// configuración.
func NewReportHandler(uc *usecase.ReportUseCase, defaultThreshold int64, defaultDays int) *ReportHandler {
	return &ReportHandler{uc: uc, defaultThreshold: defaultThreshold, defaultDays: defaultDays}
}

// LowStock godoc
// @Summary      Items con stock bajo el umbral
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Umbral; por defecto el configurado"
// @Success      200  {object}  dto.LowStockReport
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	threshold := h.defaultThreshold
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "threshold inválido"})
		}
		threshold = parsed
	}
	report, err := h.uc.LowStock(threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// Expiring godoc
// @Summary      Items que vencen dentro de los próximos días
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Ventana en días; por defecto la configurada"
// @Success      200  {object}  dto.ExpiryReport
// @Router       /api/reports/expiring [get]
func (h *ReportHandler) Expiring(c *fiber.Ctx) error {
	days := h.defaultDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "days inválido"})
		}
		days = parsed
	}
	report, err := h.uc.ExpiringWithin(days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// MovementsByPeriod godoc
// @Summary      Movimientos de un período con totales de entradas y salidas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (AAAA-MM-DD o RFC3339, inclusivo)"
// @Param        to    query  string  false  "Hasta (inclusivo)"
// @Success      200  {object}  dto.PeriodMovementsReport
// @Router       /api/reports/movements [get]
func (h *ReportHandler) MovementsByPeriod(c *fiber.Ctx) error {
	from, to, err := periodParams(c)
	if err != nil {
		return respondError(c, err)
	}
	report, err := h.uc.MovementsByPeriod(from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}
