package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-ledger/internal/domain"
	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
	"github.com/tu-usuario/almacen-ledger/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, name, brand, quantity, initial_balance, unit, price, category, description, expires_at, created_at, updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo item. Quantity e InitialBalance entran iguales.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Brand, item.Quantity, item.InitialBalance,
		item.Unit, item.Price, item.Category, item.Description, item.ExpiresAt,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID. Devuelve nil si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.getOne(`SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
}

// GetForUpdate obtiene el item y bloquea la fila (SELECT FOR UPDATE).
// Usar solo con un repositorio atado a una transacción.
func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.getOne(`SELECT `+itemColumns+` FROM items WHERE id = $1 FOR UPDATE`, id)
}

func (r *ItemRepo) getOne(query string, args ...any) (*entity.Item, error) {
	var i entity.Item
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&i.ID, &i.Name, &i.Brand, &i.Quantity, &i.InitialBalance,
		&i.Unit, &i.Price, &i.Category, &i.Description, &i.ExpiresAt,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// List devuelve todos los items ordenados por nombre.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	return r.list(`SELECT ` + itemColumns + ` FROM items ORDER BY name`)
}

// SearchByName busca items cuyo nombre contiene la cadena (case-insensitive), ordenados por nombre.
func (r *ItemRepo) SearchByName(name string) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE lower(name) LIKE lower($1) ORDER BY name`
	return r.list(query, "%"+name+"%")
}

// ListLowStock devuelve items con cantidad bajo el umbral, los más escasos primero.
func (r *ItemRepo) ListLowStock(threshold int64) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE quantity < $1 ORDER BY quantity, name`
	return r.list(query, threshold)
}

// ListExpiringBefore devuelve items con fecha de vencimiento hasta el límite, los más próximos primero.
func (r *ItemRepo) ListExpiringBefore(limit time.Time) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE expires_at IS NOT NULL AND expires_at <= $1 ORDER BY expires_at, name`
	return r.list(query, limit)
}

func (r *ItemRepo) list(query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(&i.ID, &i.Name, &i.Brand, &i.Quantity, &i.InitialBalance,
			&i.Unit, &i.Price, &i.Category, &i.Description, &i.ExpiresAt,
			&i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza los campos descriptivos del item.
// No toca quantity ni initial_balance: esos cambian solo vía UpdateQuantity
// dentro de la transacción del coordinador de movimientos.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, brand = $3, unit = $4, price = $5, category = $6,
			description = $7, expires_at = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Brand, item.Unit, item.Price, item.Category,
		item.Description, item.ExpiresAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity fija la cantidad actual (usado por el coordinador de movimientos, dentro de tx).
func (r *ItemRepo) UpdateQuantity(id string, quantity int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE items SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un item por ID. La FK de movements lo rechaza si tiene historial.
func (r *ItemRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
