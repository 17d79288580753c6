package db

import "fmt"

// migrate creates the catalog tables if they don't exist.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS products (
			id             TEXT PRIMARY KEY,
			name           TEXT NOT NULL,
			generic_name   TEXT NOT NULL DEFAULT '',
			category       TEXT NOT NULL DEFAULT '',
			price          INTEGER NOT NULL CHECK(price >= 0),
			original_price INTEGER NOT NULL DEFAULT 0,
			type           TEXT NOT NULL CHECK(type IN ('otc', 'prescription')),
			in_stock       BOOLEAN NOT NULL DEFAULT 1,
			eta            TEXT NOT NULL DEFAULT '',
			dosage         TEXT NOT NULL DEFAULT '',
			pack_size      TEXT NOT NULL DEFAULT '',
			rating         REAL NOT NULL DEFAULT 0,
			review_count   INTEGER NOT NULL DEFAULT 0,
			discount       INTEGER NOT NULL DEFAULT 0,
			featured       BOOLEAN NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS categories (
			position   INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			item_count TEXT NOT NULL DEFAULT '',
			color      TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS pharmacies (
			position      INTEGER PRIMARY KEY,
			name          TEXT NOT NULL,
			rating        REAL NOT NULL DEFAULT 0,
			delivery_time TEXT NOT NULL DEFAULT '',
			verified      BOOLEAN NOT NULL DEFAULT 0,
			offer         TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_products_featured ON products(featured);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating catalog tables: %w", err)
	}

	return nil
}
