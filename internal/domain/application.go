package domain

import (
	"context"
	"time"
)

// Application status values. Shortlisted is the canonical initial status;
// the legacy "Applied" default was outside the validated enum and is gone.
const (
	StatusShortlisted = "Shortlisted"
	StatusInterviewed = "Interviewed"
	StatusHired       = "Hired"
	StatusRejected    = "Rejected"
)

// ApplicationStatuses lists every status accepted by the workflow.
var ApplicationStatuses = []string{StatusShortlisted, StatusInterviewed, StatusHired, StatusRejected}

func ValidApplicationStatus(s string) bool {
	switch s {
	case StatusShortlisted, StatusInterviewed, StatusHired, StatusRejected:
		return true
	}
	return false
}

// Application ties one seeker to one job posting. At most one exists per
// (JobID, SeekerID) pair, enforced by a unique index rather than a read
// followed by a write.
type Application struct {
	ID        int64     `json:"id"`
	JobID     int64     `json:"jobId"`
	SeekerID  string    `json:"seekerId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined job/employer projection for the seeker's own listing
	JobTitle        *string  `json:"jobTitle,omitempty"`
	JobLocation     *string  `json:"jobLocation,omitempty"`
	SalaryMin       *float64 `json:"salaryMin,omitempty"`
	SalaryMax       *float64 `json:"salaryMax,omitempty"`
	EmployerName    *string  `json:"employerName,omitempty"`
	EmployerLogoURL *string  `json:"employerLogoUrl,omitempty"`

	// Joined seeker projection for the employer's per-job listing
	SeekerName           *string  `json:"seekerName,omitempty"`
	SeekerEmail          *string  `json:"seekerEmail,omitempty"`
	SeekerPhotoURL       *string  `json:"seekerPhotoUrl,omitempty"`
	SeekerResumeURL      *string  `json:"seekerResumeUrl,omitempty"`
	SeekerSkills         []string `json:"seekerSkills,omitempty"`
	SeekerExpectedSalary *float64 `json:"seekerExpectedSalary,omitempty"`
}

type ApplicationRepository interface {
	// Create inserts if no application exists for (JobID, SeekerID) and
	// returns ErrDuplicate otherwise. Must be atomic, not check-then-create.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetBySeekerID(ctx context.Context, seekerID string) ([]Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, actorID, actorRole string, jobID int64) (*Application, error)
	ListForSeeker(ctx context.Context, actorID, actorRole string) ([]Application, error)
	ListForJob(ctx context.Context, actorID, actorRole string, jobID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, actorID, actorRole string, applicationID int64, status string) error
}
