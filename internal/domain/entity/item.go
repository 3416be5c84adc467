package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-ledger/internal/domain"
)

// Item representa un artículo del almacén.
// Quantity es la cantidad actual; solo el coordinador de movimientos la modifica,
// siempre en la misma transacción que el asiento del libro de movimientos.
// InitialBalance es la cantidad al momento de crear el item, inmutable después;
// es el ancla desde la que se reconstruyen los saldos históricos.
type Item struct {
	ID             string
	Name           string
	Brand          string
	Quantity       int64
	InitialBalance int64 // saldo_inicial
	Unit           string
	Price          decimal.Decimal
	Category       string
	Description    string
	ExpiresAt      *time.Time // fecha de vencimiento (opcional)
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate verifica los campos descriptivos y los invariantes básicos del item.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" || len(i.Name) > 100 {
		return fmt.Errorf("%w: nombre debe tener entre 1 y 100 caracteres", domain.ErrInvalidInput)
	}
	if i.Quantity < 0 {
		return fmt.Errorf("%w: cantidad no puede ser negativa", domain.ErrInvalidInput)
	}
	if i.InitialBalance < 0 {
		return fmt.Errorf("%w: saldo inicial no puede ser negativo", domain.ErrInvalidInput)
	}
	if i.Price.IsNegative() {
		return fmt.Errorf("%w: precio no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}
