package dto

import (
	"time"

	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
)

// RegisterMovementRequest registro de un movimiento IN/OUT contra un item.
// La fecha la asigna el servidor; el caller nunca la envía.
type RegisterMovementRequest struct {
	ItemID      string `json:"item_id"`
	Type        string `json:"type"` // IN | OUT
	Quantity    int64  `json:"quantity"`
	Responsible string `json:"responsible"`
	Reason      string `json:"reason"`
}

// MovementResponse representación HTTP de un movimiento.
type MovementResponse struct {
	ID          int64     `json:"id"`
	ItemID      string    `json:"item_id"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	Date        time.Time `json:"date"`
	Responsible string    `json:"responsible"`
	Reason      string    `json:"reason,omitempty"`
}

// RegisterMovementResponse movimiento confirmado + cantidad resultante.
type RegisterMovementResponse struct {
	Movement    MovementResponse `json:"movement"`
	NewQuantity int64            `json:"new_quantity"`
}

// BalanceResponse saldo de un item en un instante.
type BalanceResponse struct {
	ItemID  string    `json:"item_id"`
	At      time.Time `json:"at"`
	Balance int64     `json:"balance"`
}

// KardexEntry movimiento con saldo acumulado dentro del período.
type KardexEntry struct {
	MovementResponse
	Balance int64 `json:"balance"`
}

// KardexResponse historial de un período con apertura y cierre.
type KardexResponse struct {
	ItemID         string        `json:"item_id"`
	From           *time.Time    `json:"from,omitempty"`
	To             *time.Time    `json:"to,omitempty"`
	OpeningBalance int64         `json:"opening_balance"`
	ClosingBalance int64         `json:"closing_balance"`
	Entries        []KardexEntry `json:"entries"`
}

// ToMovementResponse convierte la entidad al DTO de respuesta.
func ToMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:          m.ID,
		ItemID:      m.ItemID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Date:        m.Date,
		Responsible: m.Responsible,
		Reason:      m.Reason,
	}
}

// ToMovementResponses convierte una lista de entidades.
func ToMovementResponses(movements []*entity.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, ToMovementResponse(m))
	}
	return out
}
