package db

import "database/sql"

// MigrateUp brings the schema up to date. Statements are idempotent so the
// migration can run on every start.
//
// artigos.usuario_id carries ON DELETE CASCADE: deleting a user removes all
// of that user's articles in the same statement.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS usuarios (
    id         SERIAL PRIMARY KEY,
    nome       TEXT,
    sobrenome  TEXT,
    email      TEXT NOT NULL,
    senha      TEXT NOT NULL,
    admin      BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	// Named unique index so the adapter can map constraint violations to a
	// typed duplicate-email error.
	if _, err := db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS ux_usuarios_email ON usuarios(email)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS artigos (
    id         SERIAL PRIMARY KEY,
    titulo     TEXT NOT NULL,
    descricao  TEXT,
    url_fonte  TEXT NOT NULL,
    usuario_id INTEGER NOT NULL REFERENCES usuarios(id) ON DELETE CASCADE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	// Owner-scoped listing and deletes filter on usuario_id.
	if _, err := db.Exec(`
CREATE INDEX IF NOT EXISTS idx_artigos_usuario_id ON artigos(usuario_id)`); err != nil {
		return err
	}

	return nil
}

// MigrateDown drops the schema in reverse dependency order.
// Use with caution: this deletes all data.
func MigrateDown(db *sql.DB) error {
	for _, stmt := range []string{
		`DROP TABLE IF EXISTS artigos`,
		`DROP TABLE IF EXISTS usuarios`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
