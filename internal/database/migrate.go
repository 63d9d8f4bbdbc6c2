package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the schema on startup. Statements are idempotent so the
// service can restart against an existing database.
//
// The unique index on applications(job_id, seeker_id) is what makes
// duplicate applies safe under concurrency: the insert either lands or
// conflicts, there is no read-then-write window. Likewise the primary key on
// blog_reactions(post_id, user_id) keys the reaction toggle.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL CHECK (role IN ('seeker', 'company', 'admin')),
			photo_url TEXT,
			resume_url TEXT,
			skills TEXT[] NOT NULL DEFAULT '{}',
			expected_salary DOUBLE PRECISION,
			description TEXT,
			website TEXT,
			contact_info TEXT,
			office_address TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id BIGSERIAL PRIMARY KEY,
			employer_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			location TEXT NOT NULL,
			salary_min DOUBLE PRECISION NOT NULL CHECK (salary_min >= 0),
			salary_max DOUBLE PRECISION NOT NULL CHECK (salary_max >= salary_min),
			job_type TEXT NOT NULL,
			location_type TEXT NOT NULL,
			experience_level TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			id BIGSERIAL PRIMARY KEY,
			job_id BIGINT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
			seeker_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			status TEXT NOT NULL CHECK (status IN ('Shortlisted', 'Interviewed', 'Hired', 'Rejected')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (job_id, seeker_id)
		)`,
		`CREATE TABLE IF NOT EXISTS blog_posts (
			id BIGSERIAL PRIMARY KEY,
			author_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			author_role TEXT NOT NULL CHECK (author_role IN ('seeker', 'company', 'admin')),
			content TEXT NOT NULL,
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS blog_comments (
			id BIGSERIAL PRIMARY KEY,
			post_id BIGINT NOT NULL REFERENCES blog_posts(id) ON DELETE CASCADE,
			author_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS blog_reactions (
			post_id BIGINT NOT NULL REFERENCES blog_posts(id) ON DELETE CASCADE,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			type TEXT NOT NULL CHECK (type IN ('like', 'love', 'dislike')),
			PRIMARY KEY (post_id, user_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_employer ON jobs(employer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_applications_seeker ON applications(seeker_id)`,
		`CREATE INDEX IF NOT EXISTS idx_blog_comments_post ON blog_comments(post_id)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
