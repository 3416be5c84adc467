package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/almacen-ledger/internal/domain"
	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
	"github.com/tu-usuario/almacen-ledger/internal/domain/repository"
)

// MovementUseCase es el único camino que modifica la cantidad de un item.
// Registra el movimiento en el libro y ajusta la cantidad dentro de la misma
// transacción, con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type MovementUseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
}

// NewMovementUseCase construye el coordinador de movimientos.
func NewMovementUseCase(txRunner TxRunner, itemRepo repository.ItemRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, itemRepo: itemRepo}
}

// MovementInput entrada para registrar un movimiento.
// La fecha y el id del movimiento los asigna el coordinador, nunca el caller.
type MovementInput struct {
	ItemID      string
	Type        string // IN | OUT
	Quantity    int64
	Responsible string
	Reason      string
}

// MovementResult movimiento confirmado y cantidad resultante del item.
type MovementResult struct {
	Movement    *entity.Movement
	NewQuantity int64
}

// RegisterMovement valida la entrada, abre una transacción, bloquea la fila del
// item, verifica suficiencia para salidas (contra la cantidad recién leída bajo
// el lock, no contra ningún saldo histórico) y persiste asiento + cantidad como
// una sola unidad. Sin reintentos: ante fallo transitorio el caller re-ejecuta.
func (uc *MovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	now := time.Now()
	mov := &entity.Movement{
		ItemID:      input.ItemID,
		Type:        input.Type,
		Quantity:    input.Quantity,
		Date:        now,
		Responsible: strings.TrimSpace(input.Responsible),
		Reason:      strings.TrimSpace(input.Reason),
		CreatedAt:   now,
	}
	if err := mov.Validate(); err != nil {
		return nil, err
	}

	// Chequeo temprano de existencia, sin lock; el definitivo va dentro de la tx.
	item, err := uc.itemRepo.GetByID(input.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	var result MovementResult
	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
	) error {
		// Relectura bajo lock: dos salidas concurrentes no pueden pasar ambas
		// el chequeo de suficiencia.
		locked, err := itemRepo.GetForUpdate(input.ItemID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		if mov.Type == entity.MovementTypeOUT && locked.Quantity < mov.Quantity {
			return &domain.InsufficientStockError{
				ItemID:    locked.ID,
				Available: locked.Quantity,
				Requested: mov.Quantity,
			}
		}
		newQuantity := locked.Quantity + mov.Delta()
		if newQuantity < 0 {
			// Inalcanzable tras el chequeo anterior; se mantiene como barrera.
			return fmt.Errorf("%w: la cantidad resultante sería negativa", domain.ErrInvalidInput)
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := itemRepo.UpdateQuantity(locked.ID, newQuantity); err != nil {
			return err
		}
		result = MovementResult{Movement: mov, NewQuantity: newQuantity}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
