package queries

import (
	"time"

	"packflow/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// IdentityResponse is an actor reference resolved against the user directory.
// FullName and Email are empty when the account no longer exists.
type IdentityResponse struct {
	ID       kernel.UUID `json:"id"`
	FullName string      `json:"fullName"`
	Email    string      `json:"email"`
}

// StampResponse is an audit stamp: who acted and when.
type StampResponse struct {
	By IdentityResponse `json:"by"`
	At time.Time        `json:"at"`
}

type OrderItemResponse struct {
	ItemType    string          `json:"itemType"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	PhotoPath   string          `json:"photoPath,omitempty"`
}

// OrderResponse is one order as shown on every board. Stamps is keyed by stage
// code (review, sa, sb, sc, packaging, dispatch) and holds only stages that acted.
type OrderResponse struct {
	ID            kernel.UUID              `json:"id"`
	CustomerName  string                   `json:"customerName"`
	CustomerPhone string                   `json:"customerPhone"`
	Items         []OrderItemResponse      `json:"items"`
	Total         decimal.Decimal          `json:"total"`
	Status        string                   `json:"status"`
	CreatedBy     IdentityResponse         `json:"createdBy"`
	Stamps        map[string]StampResponse `json:"stamps"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

// HistoryEntryResponse is one accepted transition.
type HistoryEntryResponse struct {
	Stage string           `json:"stage"`
	From  string           `json:"from"`
	To    string           `json:"to"`
	By    IdentityResponse `json:"by"`
	At    time.Time        `json:"at"`
}

// SummaryResponse counts orders per filter key of a board. Keys overlap.
type SummaryResponse struct {
	Board  string         `json:"board"`
	Total  int            `json:"total"`
	Counts map[string]int `json:"counts"`
}

// ComplaintOrderResponse is the order a complaint points at.
type ComplaintOrderResponse struct {
	ID           kernel.UUID `json:"id"`
	CustomerName string      `json:"customerName"`
	Status       string      `json:"status"`
}

type ComplaintResponse struct {
	ID          kernel.UUID            `json:"id"`
	Order       ComplaintOrderResponse `json:"order"`
	Section     string                 `json:"section"`
	Description string                 `json:"description"`
	Status      string                 `json:"status"`
	CreatedBy   IdentityResponse       `json:"createdBy"`
	Resolved    *StampResponse         `json:"resolved,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}
