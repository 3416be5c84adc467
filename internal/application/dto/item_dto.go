package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
)

// CreateItemRequest alta de un item. InitialQuantity fija cantidad y saldo inicial.
type CreateItemRequest struct {
	Name            string          `json:"name"`
	Brand           string          `json:"brand"`
	InitialQuantity int64           `json:"initial_quantity"`
	Unit            string          `json:"unit"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	ExpiresAt       *time.Time      `json:"expires_at"`
}

// UpdateItemRequest actualización de campos descriptivos.
// No existe forma de tocar cantidad ni saldo inicial por esta vía.
type UpdateItemRequest struct {
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	ExpiresAt   *time.Time      `json:"expires_at"`
}

// ItemResponse representación HTTP de un item.
type ItemResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand,omitempty"`
	Quantity       int64           `json:"quantity"`
	InitialBalance int64           `json:"initial_balance"`
	Unit           string          `json:"unit,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Category       string          `json:"category,omitempty"`
	Description    string          `json:"description,omitempty"`
	ExpiresAt      *time.Time      `json:"expires_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToItemResponse convierte la entidad al DTO de respuesta.
func ToItemResponse(i *entity.Item) ItemResponse {
	return ItemResponse{
		ID:             i.ID,
		Name:           i.Name,
		Brand:          i.Brand,
		Quantity:       i.Quantity,
		InitialBalance: i.InitialBalance,
		Unit:           i.Unit,
		Price:          i.Price,
		Category:       i.Category,
		Description:    i.Description,
		ExpiresAt:      i.ExpiresAt,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

// ToItemResponses convierte una lista de entidades.
func ToItemResponses(items []*entity.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, ToItemResponse(i))
	}
	return out
}
