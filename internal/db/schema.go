package db

// SchemaSQL is the complete schema for fresh installs.
//
// This is the single source of truth for the database schema. Repository
// tests build in-memory databases from GetSchemaSQL() so that test and
// production schemas cannot drift.
const SchemaSQL = `
-- Dhatu form index: one row per (surface form, dhatu code) pair.
CREATE TABLE IF NOT EXISTS dhatu_forms (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	form TEXT NOT NULL,
	code TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(form, code)
);

CREATE INDEX IF NOT EXISTS idx_dhatu_forms_form ON dhatu_forms(form);
CREATE INDEX IF NOT EXISTS idx_dhatu_forms_code ON dhatu_forms(code);
`

// GetSchemaSQL returns the authoritative schema for test setup.
func GetSchemaSQL() string {
	return SchemaSQL
}
