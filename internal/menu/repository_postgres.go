package menu

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Fetch branch menu
// --------------------------------------------------
func (r *PostgresRepository) FetchMenu(ctx context.Context, branch int) ([]Item, error) {
	query := `
		SELECT
			name,
			category,
			portion,
			price
		FROM menu
		WHERE branch = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, branch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var items []Item

	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.Name,
			&item.Category,
			&item.Portion,
			&item.Price,
		); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return items, nil
}

// --------------------------------------------------
// Fetch recent order counts (popularity signal)
// --------------------------------------------------
func (r *PostgresRepository) FetchRecentOrders(
	ctx context.Context,
	branch int,
	windowDays int,
) (Popularity, error) {

	query := `
		SELECT item_name, COUNT(*) AS cnt
		FROM orders
		WHERE branch = $1
		  AND order_date >= NOW() - ($2 * INTERVAL '1 day')
		GROUP BY item_name
	`

	rows, err := r.db.Query(ctx, query, branch, windowDays)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	counts := Popularity{}

	for rows.Next() {
		var name string
		var cnt int
		if err := rows.Scan(&name, &cnt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		counts[name] = cnt
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return counts, nil
}
