package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
	"github.com/tu-usuario/almacen-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el asiento en el libro y la
// actualización de cantidad del item sean una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
	) error) error
}

// KardexPDFGenerator genera la representación PDF del kardex de un item.
type KardexPDFGenerator interface {
	GenerateKardexPDF(ctx context.Context, item *entity.Item, history *PeriodHistory) ([]byte, error)
}
