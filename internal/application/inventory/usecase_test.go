package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-ledger/internal/application/inventory"
	"github.com/tu-usuario/almacen-ledger/internal/domain"
	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
)

const testItemID = "c1f7f0aa-0000-4000-8000-000000000001"

// ──────────────────────────────────────────────────────────────────────────────
// Coordinador de movimientos: cada registro confirma el asiento en el libro y
// la nueva cantidad del item como una sola unidad, o no confirma nada.
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EntradaSumaCantidad(t *testing.T) {
	store, uc := setupCoordinator(t, 100)

	result, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ItemID:      testItemID,
		Type:        entity.MovementTypeIN,
		Quantity:    50,
		Responsible: "ana",
		Reason:      "compra",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(150), result.NewQuantity)
	assert.Equal(t, int64(150), store.items[testItemID].Quantity, "la cantidad del item debe reflejar la entrada")
	require.Len(t, store.movements, 1, "el asiento debe quedar en el libro")
	assert.Equal(t, entity.MovementTypeIN, store.movements[0].Type)
}

func TestRegisterMovement_SalidaRestaCantidad(t *testing.T) {
	store, uc := setupCoordinator(t, 100)

	_, err := uc.RegisterMovement(context.Background(), movementInput(entity.MovementTypeIN, 50))
	require.NoError(t, err)
	result, err := uc.RegisterMovement(context.Background(), movementInput(entity.MovementTypeOUT, 30))
	require.NoError(t, err)

	assert.Equal(t, int64(120), result.NewQuantity, "100 + 50 - 30 = 120")
	assert.Equal(t, int64(120), store.items[testItemID].Quantity)
	assert.Len(t, store.movements, 2)
}

// TestRegisterMovement_CantidadCoincideConReplay verifica la ley de
// reconciliación: tras una serie de movimientos, la cantidad viva del item es
// exactamente el saldo que el motor reconstruye replayando el libro.
func TestRegisterMovement_CantidadCoincideConReplay(t *testing.T) {
	store, uc := setupCoordinator(t, 100)

	for _, in := range []inventory.MovementInput{
		movementInput(entity.MovementTypeIN, 50),
		movementInput(entity.MovementTypeOUT, 30),
		movementInput(entity.MovementTypeOUT, 20),
		movementInput(entity.MovementTypeIN, 5),
	} {
		_, err := uc.RegisterMovement(context.Background(), in)
		require.NoError(t, err)
	}

	itemRepo := &fakeItemRepo{store: store}
	movRepo := &fakeMovementRepo{store: store}
	balanceUC := inventory.NewBalanceUseCase(itemRepo, movRepo)

	balance, err := balanceUC.BalanceAt(context.Background(), testItemID, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, store.items[testItemID].Quantity, balance,
		"la cantidad almacenada y el saldo reconstruido desde el libro deben coincidir")
	assert.Equal(t, int64(105), balance, "100 + 50 - 30 - 20 + 5 = 105")
}

func TestRegisterMovement_SalidaExacta(t *testing.T) {
	store, uc := setupCoordinator(t, 40)

	result, err := uc.RegisterMovement(context.Background(), movementInput(entity.MovementTypeOUT, 40))

	require.NoError(t, err, "una salida por el total disponible es válida")
	assert.Equal(t, int64(0), result.NewQuantity)
	assert.Equal(t, int64(0), store.items[testItemID].Quantity)
}

// ── Stock insuficiente ────────────────────────────────────────────────────────

func TestRegisterMovement_StockInsuficiente(t *testing.T) {
	store, uc := setupCoordinator(t, 10)

	_, err := uc.RegisterMovement(context.Background(), movementInput(entity.MovementTypeOUT, 25))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficientErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr, "el error debe exponer el disponible y lo solicitado")
	assert.Equal(t, int64(10), insufficientErr.Available)
	assert.Equal(t, int64(25), insufficientErr.Requested)

	assert.Equal(t, int64(10), store.items[testItemID].Quantity, "la cantidad no debe cambiar")
	assert.Empty(t, store.movements, "ningún asiento debe quedar en el libro")
}

// ── Validaciones de entrada ───────────────────────────────────────────────────

func TestRegisterMovement_TipoInvalido(t *testing.T) {
	store, uc := setupCoordinator(t, 100)

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ItemID: testItemID, Type: "AJUSTE", Quantity: 5, Responsible: "ana",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.movements)
}

func TestRegisterMovement_CantidadNoPositiva(t *testing.T) {
	store, uc := setupCoordinator(t, 100)

	for _, qty := range []int64{0, -7} {
		_, err := uc.RegisterMovement(context.Background(), movementInput(entity.MovementTypeIN, qty))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, store.movements)
}

func TestRegisterMovement_SinResponsable(t *testing.T) {
	_, uc := setupCoordinator(t, 100)

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ItemID: testItemID, Type: entity.MovementTypeIN, Quantity: 5, Responsible: "  ",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_ItemInexistente(t *testing.T) {
	_, uc := setupCoordinator(t, 100)

	in := movementInput(entity.MovementTypeIN, 5)
	in.ItemID = "no-existe"
	_, err := uc.RegisterMovement(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Atomicidad ────────────────────────────────────────────────────────────────

// TestRegisterMovement_RollbackSiFallaCantidad inyecta un fallo entre el
// asiento del libro y la actualización de cantidad: ninguno de los dos efectos
// debe sobrevivir.
func TestRegisterMovement_RollbackSiFallaCantidad(t *testing.T) {
	store := newFakeStore()
	seedItem(store, 100)
	txRunner := &fakeTxRunner{store: store, failUpdateQuantity: true}
	uc := inventory.NewMovementUseCase(txRunner, &fakeItemRepo{store: store})

	_, err := uc.RegisterMovement(context.Background(), movementInput(entity.MovementTypeIN, 50))

	require.ErrorIs(t, err, errInjected)
	assert.Equal(t, int64(100), store.items[testItemID].Quantity, "la cantidad no debe cambiar tras el rollback")
	assert.Empty(t, store.movements, "el asiento insertado dentro de la transacción debe revertirse")
}

// ── helpers ───────────────────────────────────────────────────────────────────

func setupCoordinator(t *testing.T, initial int64) (*fakeStore, *inventory.MovementUseCase) {
	t.Helper()
	store := newFakeStore()
	seedItem(store, initial)
	uc := inventory.NewMovementUseCase(&fakeTxRunner{store: store}, &fakeItemRepo{store: store})
	return store, uc
}

func seedItem(store *fakeStore, initial int64) {
	store.items[testItemID] = &entity.Item{
		ID:             testItemID,
		Name:           "Guantes de nitrilo",
		Quantity:       initial,
		InitialBalance: initial,
		Unit:           "caja",
	}
}

func movementInput(movType string, qty int64) inventory.MovementInput {
	return inventory.MovementInput{
		ItemID:      testItemID,
		Type:        movType,
		Quantity:    qty,
		Responsible: "ana",
		Reason:      "prueba",
	}
}
