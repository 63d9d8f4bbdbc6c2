package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts the application if none exists for (job_id, seeker_id).
// ON CONFLICT DO NOTHING plus the unique index makes this a single atomic
// insert-if-absent, so two concurrent applies cannot both land.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (job_id, seeker_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (job_id, seeker_id) DO NOTHING
		RETURNING id`

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.StatusShortlisted
	}

	err := r.db.QueryRow(ctx, query,
		app.JobID, app.SeekerID, app.Status, app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.seeker_id, a.status, a.created_at, a.updated_at,
		       j.title AS job_title
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.SeekerID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
		&app.JobTitle,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetBySeekerID returns the seeker's applications newest-first, each with the
// job projection and that job's employer (name, logo).
func (r *applicationRepo) GetBySeekerID(ctx context.Context, seekerID string) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.seeker_id, a.status, a.created_at, a.updated_at,
		       j.title, j.location, j.salary_min, j.salary_max,
		       u.name AS employer_name, u.photo_url AS employer_logo_url
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		LEFT JOIN users u ON j.employer_id = u.id
		WHERE a.seeker_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, seekerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.SeekerID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
			&app.JobTitle, &app.JobLocation, &app.SalaryMin, &app.SalaryMax,
			&app.EmployerName, &app.EmployerLogoURL,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// GetByJobID returns a job's applications newest-first, each with the
// seeker's public profile projection.
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.seeker_id, a.status, a.created_at, a.updated_at,
		       u.name, u.email, u.photo_url, u.resume_url, u.skills, u.expected_salary
		FROM applications a
		LEFT JOIN users u ON a.seeker_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.SeekerID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
			&app.SeekerName, &app.SeekerEmail, &app.SeekerPhotoURL, &app.SeekerResumeURL,
			pq.Array(&app.SeekerSkills), &app.SeekerExpectedSalary,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
