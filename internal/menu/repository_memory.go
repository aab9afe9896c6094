package menu

import "context"

// InMemoryRepository backs the store contract with fixed maps.
// Used by tests and local development without Postgres.
type InMemoryRepository struct {
	Menus  map[int][]Item
	Orders map[int]Popularity

	// FailFetch forces every read to fail, for store-outage tests.
	FailFetch bool
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		Menus:  make(map[int][]Item),
		Orders: make(map[int]Popularity),
	}
}

func (m *InMemoryRepository) FetchMenu(ctx context.Context, branch int) ([]Item, error) {
	if m.FailFetch {
		return nil, ErrStoreUnavailable
	}

	items := make([]Item, len(m.Menus[branch]))
	copy(items, m.Menus[branch])
	return items, nil
}

func (m *InMemoryRepository) FetchRecentOrders(
	ctx context.Context,
	branch int,
	windowDays int,
) (Popularity, error) {
	if m.FailFetch {
		return nil, ErrStoreUnavailable
	}

	counts := Popularity{}
	for name, cnt := range m.Orders[branch] {
		counts[name] = cnt
	}
	return counts, nil
}
