package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-ledger/internal/application/dto"
	"github.com/tu-usuario/almacen-ledger/internal/domain"
	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
	"github.com/tu-usuario/almacen-ledger/internal/domain/repository"
	"github.com/tu-usuario/almacen-ledger/pkg/textutil"
)

// ItemUseCase casos de uso CRUD de items. La cantidad nunca se modifica por
// aquí: Create la fija igual al saldo inicial y Update no la incluye.
type ItemUseCase struct {
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, movRepo: movRepo}
}

// Create da de alta un item con quantity = initial_balance = cantidad inicial.
// Rechaza con ErrDuplicate si ya existe un item con nombre equivalente
// (comparación sin tildes ni mayúsculas).
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*entity.Item, error) {
	now := time.Now()
	item := &entity.Item{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(in.Name),
		Brand:          strings.TrimSpace(in.Brand),
		Quantity:       in.InitialQuantity,
		InitialBalance: in.InitialQuantity,
		Unit:           in.Unit,
		Price:          in.Price,
		Category:       in.Category,
		Description:    in.Description,
		ExpiresAt:      in.ExpiresAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	exists, err := uc.nameTaken(item.Name, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetByID obtiene un item; ErrNotFound si no existe.
func (uc *ItemUseCase) GetByID(id string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// List devuelve todos los items ordenados por nombre.
func (uc *ItemUseCase) List() ([]*entity.Item, error) {
	return uc.itemRepo.List()
}

// SearchByName busca por similitud de nombre, ignorando mayúsculas y tildes.
func (uc *ItemUseCase) SearchByName(query string) ([]*entity.Item, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return uc.List()
	}
	// El LIKE de la BD ya cubre mayúsculas; el plegado de tildes se refina acá.
	candidates, err := uc.itemRepo.SearchByName(query)
	if err != nil {
		return nil, err
	}
	if len(candidates) > 0 {
		return candidates, nil
	}
	all, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	var matched []*entity.Item
	for _, item := range all {
		if textutil.FoldContains(item.Name, query) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// Update modifica los campos descriptivos del item. Cantidad y saldo inicial
// solo cambian a través del registro de movimientos.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*entity.Item, error) {
	item, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}
	newName := strings.TrimSpace(in.Name)
	if textutil.Fold(newName) != textutil.Fold(item.Name) {
		exists, err := uc.nameTaken(newName, item.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicate
		}
	}
	item.Name = newName
	item.Brand = strings.TrimSpace(in.Brand)
	item.Unit = in.Unit
	item.Price = in.Price
	item.Category = in.Category
	item.Description = in.Description
	item.ExpiresAt = in.ExpiresAt
	item.UpdatedAt = time.Now()
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete elimina un item sin historial. Si el item tiene movimientos en el
// libro la operación se rechaza con ErrConflict: el libro es la fuente de
// verdad y nunca se poda.
func (uc *ItemUseCase) Delete(id string) error {
	if _, err := uc.GetByID(id); err != nil {
		return err
	}
	count, err := uc.movRepo.CountByItem(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.itemRepo.Delete(id)
}

// nameTaken reporta si otro item (distinto de excludeID) ya usa un nombre equivalente.
func (uc *ItemUseCase) nameTaken(name, excludeID string) (bool, error) {
	all, err := uc.itemRepo.List()
	if err != nil {
		return false, err
	}
	folded := textutil.Fold(name)
	for _, item := range all {
		if item.ID != excludeID && textutil.Fold(item.Name) == folded {
			return true, nil
		}
	}
	return false, nil
}
