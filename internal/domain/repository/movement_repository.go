package repository

import (
	"time"

	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia del libro de movimientos.
// El libro es append-only: no existen update ni delete sobre movimientos.
// Todos los listados devuelven orden cronológico ascendente (fecha, id), que es
// el orden de replay del motor de saldos. Los filtros from/to son inclusivos.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id int64) (*entity.Movement, error)
	ListByItem(itemID string, from, to *time.Time) ([]*entity.Movement, error)
	ListAll(from, to *time.Time) ([]*entity.Movement, error)
	CountByItem(itemID string) (int64, error)
}
