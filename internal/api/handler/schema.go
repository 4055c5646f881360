package handler

import (
	"time"

	"github.com/shopspring/decimal"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// --- Clients ---

type clientRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=100"`
}

type clientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// --- Orders ---

// Totals are accepted as JSON numbers or strings; the amount rule is
// enforced by the order service.
type createOrderRequest struct {
	ClientID string          `json:"client_id" validate:"required"`
	Total    decimal.Decimal `json:"total"`
}

type updateOrderRequest struct {
	Total decimal.Decimal `json:"total"`
}

type orderResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Total     string    `json:"total"`
	OrderedAt time.Time `json:"ordered_at"`
}
