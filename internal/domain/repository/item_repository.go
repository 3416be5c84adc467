package repository

import (
	"time"

	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
// Update nunca modifica Quantity ni InitialBalance: esos campos son exclusivos
// del coordinador de movimientos (UpdateQuantity dentro de una transacción).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	// GetForUpdate bloquea la fila del item (SELECT FOR UPDATE). Solo tiene
	// sentido con un repositorio atado a una transacción.
	GetForUpdate(id string) (*entity.Item, error)
	List() ([]*entity.Item, error)
	SearchByName(name string) ([]*entity.Item, error)
	Update(item *entity.Item) error
	UpdateQuantity(id string, quantity int64) error
	Delete(id string) error
	ListLowStock(threshold int64) ([]*entity.Item, error)
	ListExpiringBefore(limit time.Time) ([]*entity.Item, error)
}
