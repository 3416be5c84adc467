package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
	"github.com/tu-usuario/almacen-ledger/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, item_id, type, quantity, date, responsible, reason, created_at`

// MovementRepo implementación del libro de movimientos sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lee: el libro es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta un movimiento y deja en movement.ID el serial asignado.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if err := movement.Validate(); err != nil {
		return err
	}
	query := `
		INSERT INTO movements (item_id, type, quantity, date, responsible, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.ItemID, movement.Type, movement.Quantity, movement.Date,
		movement.Responsible, movement.Reason, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil si no existe.
func (r *MovementRepo) GetByID(id int64) (*entity.Movement, error) {
	var m entity.Movement
	err := r.q.QueryRow(context.Background(),
		`SELECT `+movementColumns+` FROM movements WHERE id = $1`, id,
	).Scan(&m.ID, &m.ItemID, &m.Type, &m.Quantity, &m.Date, &m.Responsible, &m.Reason, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// ListByItem lista los movimientos de un item en orden cronológico ascendente
// (fecha, id). Los filtros from/to son inclusivos y opcionales.
func (r *MovementRepo) ListByItem(itemID string, from, to *time.Time) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE item_id = $1`
	args := []any{itemID}
	query, args = appendPeriod(query, args, from, to)
	query += ` ORDER BY date, id`
	return r.list(query, args...)
}

// ListAll lista los movimientos de todos los items en orden cronológico ascendente.
func (r *MovementRepo) ListAll(from, to *time.Time) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE true`
	var args []any
	query, args = appendPeriod(query, args, from, to)
	query += ` ORDER BY date, id`
	return r.list(query, args...)
}

// CountByItem cuenta los movimientos de un item (para la política de borrado).
func (r *MovementRepo) CountByItem(itemID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM movements WHERE item_id = $1`, itemID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return count, nil
}

func appendPeriod(query string, args []any, from, to *time.Time) (string, []any) {
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	return query, args
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Type, &m.Quantity, &m.Date,
			&m.Responsible, &m.Reason, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
