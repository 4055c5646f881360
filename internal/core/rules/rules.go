// Package rules holds the cross-entity business rules checked before a
// client or order mutation reaches the store. A failing rule means the
// mutation is not attempted.
package rules

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/orderdesk/orders-api/internal/core/domain"
)

// ClientLookup reports whether a client exists.
type ClientLookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// DependentChecker reports whether a client still owns orders.
type DependentChecker interface {
	HasOrders(ctx context.Context, id string) (bool, error)
}

// TotalPlaces is the stored precision of order totals.
const TotalPlaces = 2

// maxOrderTotal keeps a rounded total within the 34 significant digits the
// store can hold (32 integer digits plus TotalPlaces).
var maxOrderTotal = decimal.New(1, 32)

// ValidateOrderAmount requires a strictly positive total below maxOrderTotal
// on both create and update.
func ValidateOrderAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThanOrEqual(maxOrderTotal) {
		return domain.ErrInvalidAmount
	}
	return nil
}

// NormalizeOrderAmount rounds amount to TotalPlaces and validates the
// rounded value, so a sub-cent total cannot be stored as zero.
func NormalizeOrderAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	total := amount.Round(TotalPlaces)
	if err := ValidateOrderAmount(total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// ValidateClientReference fails with domain.ErrReferencedEntityNotFound when
// clientID does not name an existing client.
func ValidateClientReference(ctx context.Context, clients ClientLookup, clientID string) error {
	ok, err := clients.Exists(ctx, clientID)
	if err != nil {
		return fmt.Errorf("check client reference: %w", err)
	}
	if !ok {
		return domain.ErrReferencedEntityNotFound
	}
	return nil
}

// ValidateNoDependents fails with domain.ErrDependencyConflict when at least
// one order references clientID.
func ValidateNoDependents(ctx context.Context, deps DependentChecker, clientID string) error {
	has, err := deps.HasOrders(ctx, clientID)
	if err != nil {
		return fmt.Errorf("check client dependents: %w", err)
	}
	if has {
		return domain.ErrDependencyConflict
	}
	return nil
}
