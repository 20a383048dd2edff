package database

import (
	"context"
	"fmt"

	"github.com/alligatorO15/wed-planner/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RunMigrations(pool *pgxpool.Pool) error {
	logger.Log.Info("Running database migrations...")

	ctx := context.Background()

	migrations := []string{
		migrationCreateExtensions,
		migrationCreateUsers,
		migrationCreateRefreshTokens,
		migrationCreateEvents,
		migrationCreateVendors,
		migrationCreateBudgetEntries,
		migrationCreateFamilyGroups,
		migrationCreateGuests,
		migrationCreateTasks,
		migrationCreateInvitations,
		migrationCreateGuestImports,
		migrationCreateIndexes,
	}

	for i, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	logger.Log.Info("Migrations completed successfully")
	return nil
}

const migrationCreateExtensions = `
CREATE EXTENSION IF NOT EXISTS "uuid-ossp";
CREATE EXTENSION IF NOT EXISTS "pgcrypto";
`

const migrationCreateUsers = `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    email VARCHAR(255) UNIQUE NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    first_name VARCHAR(100) NOT NULL,
    last_name VARCHAR(100),
    phone VARCHAR(20),
    timezone VARCHAR(50) DEFAULT 'Europe/Moscow',
    created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
    deleted_at TIMESTAMP WITH TIME ZONE
);
`

const migrationCreateRefreshTokens = `
CREATE TABLE IF NOT EXISTS refresh_tokens (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    token_hash VARCHAR(64) NOT NULL UNIQUE,
    expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
    revoked_at TIMESTAMP WITH TIME ZONE
);
`

const migrationCreateEvents = `
CREATE TABLE IF NOT EXISTS events (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    name VARCHAR(200) NOT NULL,
    event_date TIMESTAMP WITH TIME ZONE NOT NULL,
    venue VARCHAR(200),
    city VARCHAR(100),
    currency VARCHAR(3) DEFAULT 'RUB',
    total_budget DECIMAL(18, 2) DEFAULT 0,
    catering_per_head DECIMAL(18, 2) DEFAULT 0,
    room_cost_per_night DECIMAL(18, 2) DEFAULT 0,
    transport_cost_per_seat DECIMAL(18, 2) DEFAULT 0,
    room_occupancy INTEGER DEFAULT 2,
    notes TEXT,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
    deleted_at TIMESTAMP WITH TIME ZONE
);
`

const migrationCreateVendors = `
CREATE TABLE IF NOT EXISTS vendors (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    name VARCHAR(200) NOT NULL,
    category VARCHAR(30) NOT NULL,
    city VARCHAR(100),
    phone VARCHAR(20),
    email VARCHAR(255),
    price_from DECIMAL(18, 2) DEFAULT 0,
    price_to DECIMAL(18, 2) DEFAULT 0,
    rating DOUBLE PRECISION DEFAULT 0,
    is_verified BOOLEAN DEFAULT false,
    notes TEXT,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);
`

const migrationCreateBudgetEntries = `
CREATE TABLE IF NOT EXISTS budget_entries (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
    vendor_id UUID REFERENCES vendors(id) ON DELETE SET NULL,
    category VARCHAR(30) NOT NULL DEFAULT 'miscellaneous',
    name VARCHAR(200) NOT NULL,
    planned DECIMAL(18, 2) DEFAULT 0,
    committed DECIMAL(18, 2) DEFAULT 0,
    paid DECIMAL(18, 2) DEFAULT 0,
    notes TEXT,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);
`

const migrationCreateFamilyGroups = `
CREATE TABLE IF NOT EXISTS family_groups (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
    name VARCHAR(200) NOT NULL,
    head_name VARCHAR(200),
    created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);
`

const migrationCreateGuests = `
CREATE TABLE IF NOT EXISTS guests (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
    family_group_id UUID REFERENCES family_groups(id) ON DELETE SET NULL,
    name VARCHAR(200) NOT NULL,
    email VARCHAR(255),
    phone VARCHAR(20),
    side VARCHAR(10) DEFAULT 'common',
    rsvp_status VARCHAR(10) NOT NULL DEFAULT 'pending',
    rsvp_code VARCHAR(64) NOT NULL UNIQUE,
    is_outstation BOOLEAN DEFAULT false,
    needs_room BOOLEAN DEFAULT false,
    room_assigned BOOLEAN DEFAULT false,
    needs_pickup BOOLEAN DEFAULT false,
    pickup_assigned BOOLEAN DEFAULT false,
    plus_ones INTEGER DEFAULT 0,
    dietary_notes TEXT,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);
`

const migrationCreateTasks = `
CREATE TABLE IF NOT EXISTS tasks (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
    title VARCHAR(300) NOT NULL,
    category VARCHAR(30),
    status VARCHAR(15) NOT NULL DEFAULT 'todo',
    due_date TIMESTAMP WITH TIME ZONE,
    assignee VARCHAR(200),
    sort_order INTEGER DEFAULT 0,
    notes TEXT,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);
`

const migrationCreateInvitations = `
CREATE TABLE IF NOT EXISTS invitations (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
    guest_id UUID NOT NULL REFERENCES guests(id) ON DELETE CASCADE,
    template_code VARCHAR(50) NOT NULL,
    channel VARCHAR(10) NOT NULL DEFAULT 'email',
    status VARCHAR(10) NOT NULL DEFAULT 'draft',
    error_message TEXT,
    sent_at TIMESTAMP WITH TIME ZONE,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);
`

const migrationCreateGuestImports = `
CREATE TABLE IF NOT EXISTS guest_imports (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
    file_name VARCHAR(200) NOT NULL,
    status VARCHAR(20) DEFAULT 'pending',
    error_message TEXT,
    guests_imported INTEGER DEFAULT 0,
    duplicates_skipped INTEGER DEFAULT 0,
    rows_failed INTEGER DEFAULT 0,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);
`

const migrationCreateIndexes = `
CREATE INDEX IF NOT EXISTS idx_refresh_tokens_user_id ON refresh_tokens(user_id);
CREATE INDEX IF NOT EXISTS idx_events_user_id ON events(user_id);
CREATE INDEX IF NOT EXISTS idx_budget_entries_event_id ON budget_entries(event_id);
CREATE INDEX IF NOT EXISTS idx_budget_entries_category ON budget_entries(category);
CREATE INDEX IF NOT EXISTS idx_guests_event_id ON guests(event_id);
CREATE INDEX IF NOT EXISTS idx_guests_rsvp_status ON guests(rsvp_status);
CREATE INDEX IF NOT EXISTS idx_guests_family_group_id ON guests(family_group_id);
CREATE INDEX IF NOT EXISTS idx_family_groups_event_id ON family_groups(event_id);
CREATE INDEX IF NOT EXISTS idx_tasks_event_id ON tasks(event_id);
CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date);
CREATE INDEX IF NOT EXISTS idx_invitations_event_id ON invitations(event_id);
CREATE INDEX IF NOT EXISTS idx_invitations_guest_id ON invitations(guest_id);
CREATE INDEX IF NOT EXISTS idx_vendors_category ON vendors(category);
CREATE INDEX IF NOT EXISTS idx_vendors_city ON vendors(city);
CREATE INDEX IF NOT EXISTS idx_guest_imports_event_id ON guest_imports(event_id);
`
