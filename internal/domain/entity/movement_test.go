package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-ledger/internal/domain"
	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
)

func TestMovementValidate_EntradaValida(t *testing.T) {
	m := buildTestMovement()
	require.NoError(t, m.Validate())
}

func TestMovementValidate_TipoDesconocido(t *testing.T) {
	m := buildTestMovement()
	m.Type = "TRANSFER"

	err := m.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un tipo distinto de IN/OUT debe rechazarse como entrada inválida")
}

func TestMovementValidate_CantidadCero(t *testing.T) {
	m := buildTestMovement()
	m.Quantity = 0

	assert.ErrorIs(t, m.Validate(), domain.ErrInvalidInput, "cantidad cero no registra nada y debe rechazarse")
}

func TestMovementValidate_CantidadNegativa(t *testing.T) {
	m := buildTestMovement()
	m.Quantity = -5

	assert.ErrorIs(t, m.Validate(), domain.ErrInvalidInput, "el signo lo da el tipo, nunca la cantidad")
}

func TestMovementValidate_ResponsableVacio(t *testing.T) {
	m := buildTestMovement()
	m.Responsible = "   "

	assert.ErrorIs(t, m.Validate(), domain.ErrInvalidInput, "responsable en blanco debe rechazarse")
}

func TestMovementValidate_SinItem(t *testing.T) {
	m := buildTestMovement()
	m.ItemID = ""

	assert.ErrorIs(t, m.Validate(), domain.ErrInvalidInput)
}

// TestMovementDelta verifica el signo del efecto sobre el saldo: las entradas
// suman y las salidas restan, siempre partiendo de una cantidad positiva.
func TestMovementDelta(t *testing.T) {
	in := buildTestMovement()
	in.Type = entity.MovementTypeIN
	in.Quantity = 40
	assert.Equal(t, int64(40), in.Delta(), "una entrada suma su cantidad")

	out := buildTestMovement()
	out.Type = entity.MovementTypeOUT
	out.Quantity = 15
	assert.Equal(t, int64(-15), out.Delta(), "una salida resta su cantidad")
}

// ── helper ────────────────────────────────────────────────────────────────────

func buildTestMovement() *entity.Movement {
	return &entity.Movement{
		ItemID:      "c1f7f0aa-0000-4000-8000-000000000001",
		Type:        entity.MovementTypeIN,
		Quantity:    10,
		Date:        time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		Responsible: "ana",
		Reason:      "compra",
	}
}
