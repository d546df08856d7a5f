package database

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema if it does not exist yet. Statements are
// idempotent so running at every boot is safe.
func Migrate(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			uid uuid PRIMARY KEY,
			username text NOT NULL,
			user_role text NOT NULL DEFAULT 'user',
			email text NOT NULL UNIQUE,
			password_hash text NOT NULL,
			gender text,
			avatar text,
			verified boolean NOT NULL DEFAULT false,
			otp text,
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS refresh_tokens (
			id uuid PRIMARY KEY,
			user_id uuid NOT NULL REFERENCES users(uid) ON DELETE CASCADE,
			token text NOT NULL UNIQUE,
			expires_at timestamptz,
			revoked boolean NOT NULL DEFAULT false,
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS missions (
			id uuid PRIMARY KEY,
			title text NOT NULL,
			description text NOT NULL DEFAULT '',
			category text NOT NULL,
			sub_category text NOT NULL DEFAULT '',
			points integer NOT NULL,
			target_value numeric(12,2) NOT NULL,
			target_unit text NOT NULL,
			duration_days integer NOT NULL DEFAULT 1,
			difficulty text NOT NULL DEFAULT '',
			mission_type text NOT NULL DEFAULT '',
			is_active boolean NOT NULL DEFAULT true,
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS user_missions (
			id uuid PRIMARY KEY,
			user_id uuid NOT NULL REFERENCES users(uid) ON DELETE CASCADE,
			mission_id uuid NOT NULL REFERENCES missions(id),
			status text NOT NULL DEFAULT 'active',
			current_value numeric(12,2) NOT NULL DEFAULT 0,
			progress integer NOT NULL DEFAULT 0,
			mission_date date NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz NOT NULL DEFAULT now()
		)`,
		// backs the one-active-acceptance-per-day invariant under
		// concurrent accepts
		`CREATE UNIQUE INDEX IF NOT EXISTS user_missions_one_active
			ON user_missions (user_id, mission_id, mission_date)
			WHERE status = 'active'`,
		`CREATE TABLE IF NOT EXISTS point_ledger (
			id uuid PRIMARY KEY,
			user_id uuid NOT NULL REFERENCES users(uid) ON DELETE CASCADE,
			amount integer NOT NULL,
			reason text NOT NULL DEFAULT '',
			user_mission_id uuid REFERENCES user_missions(id) ON DELETE SET NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS meals (
			id uuid PRIMARY KEY,
			user_id uuid NOT NULL REFERENCES users(uid) ON DELETE CASCADE,
			name text NOT NULL,
			meal_type text NOT NULL,
			calories text NOT NULL DEFAULT '0',
			protein text NOT NULL DEFAULT '0',
			carbs text NOT NULL DEFAULT '0',
			fat text NOT NULL DEFAULT '0',
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS water_entries (
			id uuid PRIMARY KEY,
			user_id uuid NOT NULL REFERENCES users(uid) ON DELETE CASCADE,
			amount_ml text NOT NULL DEFAULT '0',
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS sleep_entries (
			id uuid PRIMARY KEY,
			user_id uuid NOT NULL REFERENCES users(uid) ON DELETE CASCADE,
			duration_minutes text NOT NULL DEFAULT '0',
			quality text NOT NULL DEFAULT '0',
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS fitness_sessions (
			id uuid PRIMARY KEY,
			user_id uuid NOT NULL REFERENCES users(uid) ON DELETE CASCADE,
			activity text NOT NULL,
			duration_minutes text NOT NULL DEFAULT '0',
			steps text NOT NULL DEFAULT '0',
			distance_km text NOT NULL DEFAULT '0',
			calories_burned text NOT NULL DEFAULT '0',
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS mood_entries (
			id uuid PRIMARY KEY,
			user_id uuid NOT NULL REFERENCES users(uid) ON DELETE CASCADE,
			score text NOT NULL DEFAULT '0',
			note text NOT NULL DEFAULT '',
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS articles (
			id uuid PRIMARY KEY,
			title text NOT NULL,
			subtitle text NOT NULL DEFAULT '',
			category text NOT NULL,
			media_url text NOT NULL DEFAULT '',
			duration integer NOT NULL DEFAULT 0,
			author text NOT NULL DEFAULT '',
			description text NOT NULL DEFAULT '',
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate failed: %w", err)
		}
	}
	return nil
}
