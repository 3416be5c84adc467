package usecase

import (
	"time"

	"github.com/tu-usuario/almacen-ledger/internal/application/dto"
	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
	"github.com/tu-usuario/almacen-ledger/internal/domain/repository"
)

// ReportUseCase reportes operativos: stock bajo, próximos a vencer y
// movimientos por período. Solo lectura; consume el libro y el catálogo.
type ReportUseCase struct {
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) *ReportUseCase {
	return &ReportUseCase{itemRepo: itemRepo, movRepo: movRepo}
}

// LowStock devuelve los items con cantidad bajo el umbral.
func (uc *ReportUseCase) LowStock(threshold int64) (*dto.LowStockReport, error) {
	items, err := uc.itemRepo.ListLowStock(threshold)
	if err != nil {
		return nil, err
	}
	return &dto.LowStockReport{
		Threshold: threshold,
		Items:     dto.ToItemResponses(items),
	}, nil
}

// ExpiringWithin devuelve los items que vencen dentro de los próximos días.
func (uc *ReportUseCase) ExpiringWithin(days int) (*dto.ExpiryReport, error) {
	until := time.Now().AddDate(0, 0, days)
	items, err := uc.itemRepo.ListExpiringBefore(until)
	if err != nil {
		return nil, err
	}
	return &dto.ExpiryReport{
		Until: until,
		Items: dto.ToItemResponses(items),
	}, nil
}

// MovementsByPeriod devuelve los movimientos de todos los items en [from, to]
// (ambos opcionales, inclusivos) con totales de entradas y salidas.
func (uc *ReportUseCase) MovementsByPeriod(from, to *time.Time) (*dto.PeriodMovementsReport, error) {
	movements, err := uc.movRepo.ListAll(from, to)
	if err != nil {
		return nil, err
	}
	report := &dto.PeriodMovementsReport{
		From:      from,
		To:        to,
		Movements: dto.ToMovementResponses(movements),
	}
	for _, m := range movements {
		if m.Type == entity.MovementTypeIN {
			report.TotalIn += m.Quantity
		} else {
			report.TotalOut += m.Quantity
		}
	}
	return report, nil
}
