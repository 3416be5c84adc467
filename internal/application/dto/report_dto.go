package dto

import "time"

// LowStockReport items con cantidad bajo el umbral.
type LowStockReport struct {
	Threshold int64          `json:"threshold"`
	Items     []ItemResponse `json:"items"`
}

// ExpiryReport items que vencen dentro de la ventana.
type ExpiryReport struct {
	Until time.Time      `json:"until"`
	Items []ItemResponse `json:"items"`
}

// PeriodMovementsReport movimientos de todos los items en un período, con totales.
type PeriodMovementsReport struct {
	From      *time.Time         `json:"from,omitempty"`
	To        *time.Time         `json:"to,omitempty"`
	TotalIn   int64              `json:"total_in"`
	TotalOut  int64              `json:"total_out"`
	Movements []MovementResponse `json:"movements"`
}
