package menu

import (
	"context"
	"errors"
)

// ErrStoreUnavailable wraps any database failure so handlers can map it
// to a generic server error without leaking driver details.
var ErrStoreUnavailable = errors.New("menu store unavailable")

// Repository defines the read-only store contract. Menus and order
// history are partitioned by branch.
type Repository interface {

	// FetchMenu returns every menu item for a branch, in table order.
	FetchMenu(ctx context.Context, branch int) ([]Item, error)

	// FetchRecentOrders returns per-item order counts for a branch over
	// the trailing windowDays.
	FetchRecentOrders(ctx context.Context, branch int, windowDays int) (Popularity, error)
}
