package database

import (
	"context"
	"database/sql"
)

// The unique index on applications (candidate_id, job_id) is load-bearing:
// the duplicate check in the service layer is only an optimization, the
// index is what actually prevents concurrent double-applies.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id TEXT PRIMARY KEY,
		posted_by TEXT NOT NULL REFERENCES users (id),
		title TEXT NOT NULL,
		company_name TEXT NOT NULL,
		department TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		job_type TEXT NOT NULL DEFAULT '',
		workplace TEXT NOT NULL DEFAULT '',
		job_level TEXT NOT NULL DEFAULT '',
		max_response_time TEXT NOT NULL DEFAULT '',
		min_salary BIGINT NOT NULL DEFAULT 0,
		max_salary BIGINT NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'Active',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id TEXT PRIMARY KEY,
		job_id TEXT NOT NULL REFERENCES jobs (id),
		candidate_id TEXT NOT NULL REFERENCES users (id),
		candidate_name TEXT NOT NULL DEFAULT '',
		candidate_email TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (candidate_id, job_id)
	)`,
	`CREATE INDEX IF NOT EXISTS applications_job_id_idx ON applications (job_id)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id TEXT PRIMARY KEY,
		user_name TEXT NOT NULL,
		headline TEXT NOT NULL DEFAULT '',
		body TEXT NOT NULL DEFAULT '',
		file_url TEXT NOT NULL DEFAULT '',
		file_type TEXT NOT NULL DEFAULT '',
		likes TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS post_comments (
		id TEXT PRIMARY KEY,
		post_id TEXT NOT NULL REFERENCES posts (id),
		user_name TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
}

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
