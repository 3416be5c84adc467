package inventory_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
	"github.com/tu-usuario/almacen-ledger/internal/domain/repository"
)

// errInjected simula un fallo de infraestructura dentro de la transacción.
var errInjected = errors.New("fallo inyectado")

// ── fakeStore ─────────────────────────────────────────────────────────────────

// fakeStore estado en memoria compartido por los repositorios fake. El TxRunner
// fake clona el store al abrir la transacción y solo copia el clon de vuelta en
// el commit, imitando la semántica de rollback de PostgreSQL.
type fakeStore struct {
	items          map[string]*entity.Item
	movements      []*entity.Movement
	nextMovementID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: make(map[string]*entity.Item), nextMovementID: 1}
}

func (s *fakeStore) clone() *fakeStore {
	c := &fakeStore{
		items:          make(map[string]*entity.Item, len(s.items)),
		movements:      make([]*entity.Movement, 0, len(s.movements)),
		nextMovementID: s.nextMovementID,
	}
	for id, item := range s.items {
		copied := *item
		c.items[id] = &copied
	}
	for _, m := range s.movements {
		copied := *m
		c.movements = append(c.movements, &copied)
	}
	return c
}

func (s *fakeStore) replaceWith(other *fakeStore) {
	s.items = other.items
	s.movements = other.movements
	s.nextMovementID = other.nextMovementID
}

// ── fakeItemRepo ──────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	store *fakeStore
	// failUpdateQuantity fuerza un error en UpdateQuantity para probar que la
	// transacción revierte también el asiento del libro.
	failUpdateQuantity bool
}

var _ repository.ItemRepository = (*fakeItemRepo)(nil)

func (r *fakeItemRepo) Create(item *entity.Item) error {
	copied := *item
	r.store.items[item.ID] = &copied
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	item, ok := r.store.items[id]
	if !ok {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) List() ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.store.items))
	for _, item := range r.store.items {
		copied := *item
		out = append(out, &copied)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out, nil
}

func (r *fakeItemRepo) SearchByName(name string) ([]*entity.Item, error) {
	all, _ := r.List()
	var out []*entity.Item
	for _, item := range all {
		if strings.Contains(strings.ToLower(item.Name), strings.ToLower(name)) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	existing, ok := r.store.items[item.ID]
	if !ok {
		return nil
	}
	copied := *item
	// Update nunca toca cantidad ni saldo inicial.
	copied.Quantity = existing.Quantity
	copied.InitialBalance = existing.InitialBalance
	r.store.items[item.ID] = &copied
	return nil
}

func (r *fakeItemRepo) UpdateQuantity(id string, quantity int64) error {
	if r.failUpdateQuantity {
		return errInjected
	}
	if item, ok := r.store.items[id]; ok {
		item.Quantity = quantity
	}
	return nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.store.items, id)
	return nil
}

func (r *fakeItemRepo) ListLowStock(threshold int64) ([]*entity.Item, error) {
	all, _ := r.List()
	var out []*entity.Item
	for _, item := range all {
		if item.Quantity < threshold {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) ListExpiringBefore(limit time.Time) ([]*entity.Item, error) {
	all, _ := r.List()
	var out []*entity.Item
	for _, item := range all {
		if item.ExpiresAt != nil && !item.ExpiresAt.After(limit) {
			out = append(out, item)
		}
	}
	return out, nil
}

// ── fakeMovementRepo ──────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	store *fakeStore
}

var _ repository.MovementRepository = (*fakeMovementRepo)(nil)

func (r *fakeMovementRepo) Create(movement *entity.Movement) error {
	copied := *movement
	copied.ID = r.store.nextMovementID
	r.store.nextMovementID++
	r.store.movements = append(r.store.movements, &copied)
	movement.ID = copied.ID
	return nil
}

func (r *fakeMovementRepo) GetByID(id int64) (*entity.Movement, error) {
	for _, m := range r.store.movements {
		if m.ID == id {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) ListByItem(itemID string, from, to *time.Time) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.store.movements {
		if m.ItemID != itemID || !inPeriod(m.Date, from, to) {
			continue
		}
		copied := *m
		out = append(out, &copied)
	}
	sortByDateID(out)
	return out, nil
}

func (r *fakeMovementRepo) ListAll(from, to *time.Time) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.store.movements {
		if !inPeriod(m.Date, from, to) {
			continue
		}
		copied := *m
		out = append(out, &copied)
	}
	sortByDateID(out)
	return out, nil
}

func (r *fakeMovementRepo) CountByItem(itemID string) (int64, error) {
	var count int64
	for _, m := range r.store.movements {
		if m.ItemID == itemID {
			count++
		}
	}
	return count, nil
}

func inPeriod(date time.Time, from, to *time.Time) bool {
	if from != nil && date.Before(*from) {
		return false
	}
	if to != nil && date.After(*to) {
		return false
	}
	return true
}

func sortByDateID(movements []*entity.Movement) {
	sort.SliceStable(movements, func(a, b int) bool {
		if movements[a].Date.Equal(movements[b].Date) {
			return movements[a].ID < movements[b].ID
		}
		return movements[a].Date.Before(movements[b].Date)
	})
}

// ── fakeTxRunner ──────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta fn sobre un clon del store y solo lo publica en el
// commit. Si fn falla, el clon se descarta: nada de lo escrito dentro de la
// transacción sobrevive.
type fakeTxRunner struct {
	store *fakeStore
	// failUpdateQuantity se propaga al itemRepo atado a la transacción para
	// inyectar un fallo entre el asiento y la actualización de cantidad.
	failUpdateQuantity bool
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
) error) error {
	work := tx.store.clone()
	err := fn(
		&fakeItemRepo{store: work, failUpdateQuantity: tx.failUpdateQuantity},
		&fakeMovementRepo{store: work},
	)
	if err != nil {
		return err
	}
	tx.store.replaceWith(work)
	return nil
}
