package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// MENU
	// -------------------------------
	menuTableSQL := `
		CREATE TABLE IF NOT EXISTS menu (
			id SERIAL PRIMARY KEY,
			branch INT NOT NULL,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL,
			portion VARCHAR(100) NOT NULL DEFAULT '',
			price INT NOT NULL,
			UNIQUE (branch, name)
		)
	`
	if _, err := db.Exec(ctx, menuTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS (popularity signal)
	// -------------------------------
	ordersTableSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			branch INT NOT NULL,
			item_name VARCHAR(255) NOT NULL,
			order_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, ordersTableSQL); err != nil {
		return err
	}

	orderIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_orders_branch_date
		ON orders (branch, order_date)
	`
	if _, err := db.Exec(ctx, orderIndexSQL); err != nil {
		return err
	}

	if err := seedMenu(db); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}

// seedMenu loads a small branch-1 menu so the API works against a
// fresh database. Inserts are idempotent.
func seedMenu(db *pgxpool.Pool) error {
	ctx := context.Background()

	seed := []struct {
		name     string
		category string
		portion  string
		price    int
	}{
		{"Margherita Pizza", "Pizza", "Medium", 500},
		{"Spicy Hot Wings", "Appetizer", "6 pcs", 400},
		{"Chicken Karahi", "Karahi", "Full", 1200},
		{"Beef Burger", "Burger", "Single", 350},
		{"Chicken Biryani", "Rice", "Single", 300},
		{"Cheesy Fries", "Fries", "Regular", 250},
		{"Mild Malai Boti", "BBQ", "8 pcs", 600},
		{"Chicken Roll", "Roll", "Single", 200},
		{"Fresh Lime Soda", "Drink", "Glass", 120},
		{"Chocolate Brownie", "Dessert", "Single", 280},
	}

	for _, row := range seed {
		_, err := db.Exec(ctx, `
			INSERT INTO menu (branch, name, category, portion, price)
			VALUES (1, $1, $2, $3, $4)
			ON CONFLICT (branch, name) DO NOTHING
		`, row.name, row.category, row.portion, row.price)
		if err != nil {
			return err
		}
	}

	return nil
}
