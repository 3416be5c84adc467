package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/tu-usuario/almacen-ledger/internal/domain"
	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
	"github.com/tu-usuario/almacen-ledger/internal/domain/repository"
)

// BalanceUseCase reconstruye saldos históricos replayando el libro de
// movimientos hacia adelante desde el saldo inicial del item. No usa la
// cantidad actual para respuestas históricas, así las respuestas siguen
// siendo correctas aunque lleguen movimientos nuevos.
type BalanceUseCase struct {
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
}

// NewBalanceUseCase construye el motor de saldos.
func NewBalanceUseCase(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) *BalanceUseCase {
	return &BalanceUseCase{itemRepo: itemRepo, movRepo: movRepo}
}

// PeriodEntry movimiento del período con el saldo acumulado tras aplicarlo.
type PeriodEntry struct {
	Movement *entity.Movement
	Balance  int64
}

// PeriodHistory historial de un período: saldo de apertura (justo antes de
// from), movimientos de la ventana con saldo acumulado y saldo de cierre.
type PeriodHistory struct {
	ItemID         string
	OpeningBalance int64
	ClosingBalance int64
	Entries        []PeriodEntry
}

// BalanceAt devuelve la cantidad del item en el instante dado: saldo inicial
// más el efecto de todos los movimientos con fecha <= instant, en orden
// cronológico estricto (empates por id de inserción).
func (uc *BalanceUseCase) BalanceAt(ctx context.Context, itemID string, instant time.Time) (int64, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, domain.ErrNotFound
	}
	movements, err := uc.movRepo.ListByItem(itemID, nil, &instant)
	if err != nil {
		return 0, err
	}
	sortChronological(movements)
	balance := item.InitialBalance
	for _, m := range movements {
		balance += m.Delta()
	}
	return balance, nil
}

// History devuelve el historial del item en [from, to] (ambos opcionales).
// Apertura: saldo justo antes de from, o el saldo inicial si from es nil.
// Cierre: saldo tras el último movimiento de la ventana; con to nil es la
// cantidad viva del item, y con to definido equivale a BalanceAt(to).
func (uc *BalanceUseCase) History(ctx context.Context, itemID string, from, to *time.Time) (*PeriodHistory, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	// Un solo fetch hasta to (o todo el libro) y partición en memoria:
	// lo anterior a from alimenta la apertura, el resto es la ventana.
	movements, err := uc.movRepo.ListByItem(itemID, nil, to)
	if err != nil {
		return nil, err
	}
	sortChronological(movements)

	history := &PeriodHistory{ItemID: itemID, OpeningBalance: item.InitialBalance}
	for _, m := range movements {
		if from != nil && m.Date.Before(*from) {
			history.OpeningBalance += m.Delta()
		}
	}
	balance := history.OpeningBalance
	for _, m := range movements {
		if from != nil && m.Date.Before(*from) {
			continue
		}
		balance += m.Delta()
		history.Entries = append(history.Entries, PeriodEntry{Movement: m, Balance: balance})
	}
	if to == nil {
		history.ClosingBalance = item.Quantity
	} else {
		history.ClosingBalance = balance
	}
	return history, nil
}

// sortChronological ordena por (fecha, id). El repositorio ya entrega este
// orden; se reafirma aquí porque movimientos enviados concurrentemente pueden
// llevar timestamps fuera de orden respecto al orden de commit.
func sortChronological(movements []*entity.Movement) {
	sort.SliceStable(movements, func(a, b int) bool {
		if movements[a].Date.Equal(movements[b].Date) {
			return movements[a].ID < movements[b].ID
		}
		return movements[a].Date.Before(movements[b].Date)
	})
}
