package database

var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		bio        TEXT NOT NULL DEFAULT '',
		activities TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS groups (
		id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name        TEXT NOT NULL,
		slug        TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		members     UUID[] NOT NULL DEFAULT '{}',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name          TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		type          TEXT NOT NULL,
		location_name TEXT NOT NULL DEFAULT '',
		lat           DOUBLE PRECISION,
		lng           DOUBLE PRECISION,
		time_start    TIMESTAMPTZ NOT NULL,
		time_end      TIMESTAMPTZ NOT NULL,
		host          UUID[] NOT NULL DEFAULT '{}',
		attendance    UUID[] NOT NULL DEFAULT '{}',
		group_ids     UUID[] NOT NULL DEFAULT '{}',
		processed_at  TIMESTAMPTZ,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title      TEXT NOT NULL,
		message    TEXT NOT NULL DEFAULT '',
		type       TEXT NOT NULL,
		data       JSONB NOT NULL DEFAULT '{}',
		is_read    BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user_unread ON notifications (user_id, is_read)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_notifications_user_event
		ON notifications (user_id, type, (data->>'event_id'))`,
	`ALTER TABLE events ADD COLUMN IF NOT EXISTS processed_at TIMESTAMPTZ`,
	`CREATE INDEX IF NOT EXISTS idx_events_time_start ON events (time_start)`,
	`CREATE INDEX IF NOT EXISTS idx_profiles_user_id ON profiles (user_id)`,
}
