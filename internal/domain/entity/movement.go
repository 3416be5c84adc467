package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/almacen-ledger/internal/domain"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// Movement representa un movimiento de stock (entrada o salida) contra un item.
// Los movimientos son inmutables: una vez confirmados no existen update ni delete;
// las correcciones se registran como movimientos compensatorios.
// El ID es serial (orden de inserción) y desempata movimientos con la misma fecha.
type Movement struct {
	ID          int64
	ItemID      string
	Type        string // IN | OUT
	Quantity    int64  // siempre positivo; el signo lo da Type
	Date        time.Time
	Responsible string
	Reason      string
	CreatedAt   time.Time
}

// Validate verifica tipo, cantidad y responsable antes de persistir.
func (m *Movement) Validate() error {
	if m.Type != MovementTypeIN && m.Type != MovementTypeOUT {
		return fmt.Errorf("%w: tipo debe ser IN o OUT", domain.ErrInvalidInput)
	}
	if m.Quantity <= 0 {
		return fmt.Errorf("%w: cantidad debe ser positiva", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(m.Responsible) == "" {
		return fmt.Errorf("%w: responsable es obligatorio", domain.ErrInvalidInput)
	}
	if m.ItemID == "" {
		return fmt.Errorf("%w: item_id es obligatorio", domain.ErrInvalidInput)
	}
	return nil
}

// Delta devuelve el efecto del movimiento sobre el saldo: +Quantity para IN, -Quantity para OUT.
func (m *Movement) Delta() int64 {
	if m.Type == MovementTypeOUT {
		return -m.Quantity
	}
	return m.Quantity
}
