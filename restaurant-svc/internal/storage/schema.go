package storage

// schema is applied in order by EnsureSchema; every statement is idempotent.
var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id UUID PRIMARY KEY,
		full_name TEXT,
		phone TEXT,
		avatar_url TEXT,
		is_onboarded BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS restaurants (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		owner_id UUID NOT NULL,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		description TEXT,
		cuisine_type TEXT,
		phone TEXT,
		whatsapp TEXT,
		email TEXT,
		address TEXT,
		city TEXT,
		country TEXT,
		logo_url TEXT,
		primary_color TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS restaurants_owner_idx ON restaurants (owner_id)`,
	`CREATE TABLE IF NOT EXISTS menu_categories (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		restaurant_id UUID NOT NULL REFERENCES restaurants (id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		restaurant_id UUID NOT NULL REFERENCES restaurants (id) ON DELETE CASCADE,
		category_id UUID NOT NULL REFERENCES menu_categories (id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		description TEXT,
		base_price NUMERIC(12,2) NOT NULL CHECK (base_price >= 0),
		image_url TEXT,
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		position INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_item_sides (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		menu_item_id UUID NOT NULL REFERENCES menu_items (id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		extra_price NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (extra_price >= 0),
		is_required BOOLEAN NOT NULL DEFAULT FALSE,
		position INTEGER NOT NULL DEFAULT 0,
		image_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		restaurant_id UUID NOT NULL REFERENCES restaurants (id) ON DELETE CASCADE,
		customer_name TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		delivery_address TEXT NOT NULL,
		delivery_note TEXT,
		total_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS orders_restaurant_created_idx ON orders (restaurant_id, created_at DESC)`,
	// menu_item_id and menu_item_side_id carry no foreign key: order lines outlive catalog edits.
	`CREATE TABLE IF NOT EXISTS order_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		order_id UUID NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
		menu_item_id UUID NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		price NUMERIC(12,2) NOT NULL,
		total_price NUMERIC(12,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS order_item_sides (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		order_item_id UUID NOT NULL REFERENCES order_items (id) ON DELETE CASCADE,
		menu_item_side_id UUID NOT NULL,
		extra_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}
