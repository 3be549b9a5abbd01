package db

// SchemaSQL is the complete schema for the target store.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All repository
// tests load it via GetSchemaSQL() so that a repository referencing a column
// that doesn't exist here fails immediately with "no such column" instead of
// drifting silently.
//
// Schema migration of an existing store is handled by a separate step before
// the import ever runs; InitSchema only applies this fresh schema with
// CREATE TABLE IF NOT EXISTS.
const SchemaSQL = `
-- Accounts (people; imported ones are upserted by derived email)
CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	imported INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Events (imported ones carry a synthesized 'legacy-' prefixed id)
CREATE TABLE IF NOT EXISTS events (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	starts_at DATETIME NOT NULL,
	ends_at DATETIME,
	description TEXT NOT NULL DEFAULT '',
	location TEXT,
	image TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Short links (immutable once created by import)
CREATE TABLE IF NOT EXISTS short_links (
	id TEXT PRIMARY KEY,
	token TEXT NOT NULL UNIQUE,
	url TEXT NOT NULL,
	description TEXT,
	public INTEGER NOT NULL DEFAULT 0,
	pinned INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Quotes (deduplicated by exact text + date)
CREATE TABLE IF NOT EXISTS quotes (
	id TEXT PRIMARY KEY,
	quote TEXT NOT NULL,
	author TEXT NOT NULL,
	said_at DATETIME NOT NULL,
	account_id TEXT,
	FOREIGN KEY (account_id) REFERENCES accounts(id)
);

-- Positions (canonical titles; retired ones kept for historical views)
CREATE TABLE IF NOT EXISTS positions (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL UNIQUE,
	email TEXT NOT NULL UNIQUE,
	is_primary INTEGER NOT NULL DEFAULT 0,
	is_retired INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Assignments (account holds position for [start, end]; import only ever
-- creates historical rows, is_current = 0)
CREATE TABLE IF NOT EXISTS assignments (
	id TEXT PRIMARY KEY,
	account_id TEXT NOT NULL,
	position_id TEXT NOT NULL,
	is_current INTEGER NOT NULL DEFAULT 0,
	start_date DATETIME NOT NULL,
	end_date DATETIME,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (account_id) REFERENCES accounts(id),
	FOREIGN KEY (position_id) REFERENCES positions(id),
	UNIQUE(account_id, position_id, start_date)
);

-- Recognitions (deduplicated by account + reason + date)
CREATE TABLE IF NOT EXISTS recognitions (
	id TEXT PRIMARY KEY,
	account_id TEXT NOT NULL,
	reason TEXT NOT NULL,
	given_at DATETIME NOT NULL,
	FOREIGN KEY (account_id) REFERENCES accounts(id)
);

-- Handover documents (free-text docs owned by a position; cleanup deletes
-- them before their orphaned position)
CREATE TABLE IF NOT EXISTS handover_docs (
	id TEXT PRIMARY KEY,
	position_id TEXT NOT NULL,
	title TEXT NOT NULL,
	content TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (position_id) REFERENCES positions(id)
);

CREATE INDEX IF NOT EXISTS idx_assignments_position ON assignments(position_id);
CREATE INDEX IF NOT EXISTS idx_assignments_account ON assignments(account_id);
CREATE INDEX IF NOT EXISTS idx_recognitions_account ON recognitions(account_id);
CREATE INDEX IF NOT EXISTS idx_handover_docs_position ON handover_docs(position_id);
`

// InitSchema applies the schema to the current database connection.
func InitSchema() error {
	database, err := GetDB()
	if err != nil {
		return err
	}
	if _, err := database.Exec(SchemaSQL); err != nil {
		return err
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
