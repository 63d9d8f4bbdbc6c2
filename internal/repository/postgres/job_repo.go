package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (employer_id, title, description, location, salary_min, salary_max, job_type, location_type, experience_level, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		job.EmployerID, job.Title, job.Description, job.Location,
		job.SalaryMin, job.SalaryMax, job.JobType, job.LocationType, job.ExperienceLevel,
		job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, employer_id, title, description, location, salary_min, salary_max, job_type, location_type, experience_level, created_at, updated_at
              FROM jobs WHERE id = $1`

	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location,
		&job.SalaryMin, &job.SalaryMax, &job.JobType, &job.LocationType, &job.ExperienceLevel,
		&job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

const jobWithEmployerSelect = `
	SELECT
		j.id, j.employer_id, j.title, j.description, j.location,
		j.salary_min, j.salary_max, j.job_type, j.location_type, j.experience_level,
		j.created_at, j.updated_at,
		COALESCE(u.name, 'Unknown Company') AS employer_name,
		COALESCE(u.email, '') AS employer_email,
		u.photo_url AS employer_logo_url
	FROM jobs j
	LEFT JOIN users u ON j.employer_id = u.id`

func scanJobWithEmployer(row pgx.Row, job *domain.JobWithEmployer) error {
	return row.Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location,
		&job.SalaryMin, &job.SalaryMax, &job.JobType, &job.LocationType, &job.ExperienceLevel,
		&job.CreatedAt, &job.UpdatedAt,
		&job.EmployerName, &job.EmployerEmail, &job.EmployerLogoURL,
	)
}

func (r *jobRepo) GetByIDWithEmployer(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	query := jobWithEmployerSelect + ` WHERE j.id = $1`

	var job domain.JobWithEmployer
	if err := scanJobWithEmployer(r.db.QueryRow(ctx, query, id), &job); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Fetch lists jobs newest-first, narrowed by the filter. Conditions are
// assembled with positional placeholders only; no user input reaches the SQL
// text.
func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithEmployer, error) {
	var conds []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Keyword != "" {
		p := arg(filter.Keyword)
		conds = append(conds, fmt.Sprintf("(j.title ILIKE '%%' || %s || '%%' OR j.location ILIKE '%%' || %s || '%%')", p, p))
	}
	if filter.JobType != "" {
		conds = append(conds, "j.job_type = "+arg(filter.JobType))
	}
	if filter.ExperienceLevel != "" {
		conds = append(conds, "j.experience_level = "+arg(filter.ExperienceLevel))
	}
	if filter.MinSalary != nil {
		conds = append(conds, "j.salary_min >= "+arg(*filter.MinSalary))
	}
	if filter.EmployerIDs != nil {
		conds = append(conds, "j.employer_id = ANY("+arg(filter.EmployerIDs)+"::uuid[])")
	}

	query := jobWithEmployerSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY j.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobWithEmployer
	for rows.Next() {
		var job domain.JobWithEmployer
		if err := scanJobWithEmployer(rows, &job); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) FetchByEmployer(ctx context.Context, employerID string) ([]domain.Job, error) {
	query := `SELECT id, employer_id, title, description, location, salary_min, salary_max, job_type, location_type, experience_level, created_at, updated_at
              FROM jobs WHERE employer_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location,
			&job.SalaryMin, &job.SalaryMax, &job.JobType, &job.LocationType, &job.ExperienceLevel,
			&job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2,
		description = $3,
		location = $4,
		salary_min = $5,
		salary_max = $6,
		job_type = $7,
		location_type = $8,
		experience_level = $9,
		updated_at = $10
	WHERE id = $1`

	job.UpdatedAt = time.Now()

	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Location,
		job.SalaryMin, job.SalaryMax, job.JobType, job.LocationType, job.ExperienceLevel,
		job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteCascade removes the job and its applications in one transaction so a
// posting can never outlive its applications or vice versa.
func (r *jobRepo) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE job_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}
