package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order references exactly one client by id.
type Order struct {
	ID        string
	ClientID  string
	Total     decimal.Decimal
	OrderedAt time.Time
}
