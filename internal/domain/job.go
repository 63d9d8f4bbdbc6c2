package domain

import (
	"context"
	"time"
)

// Employment type values accepted for Job.JobType.
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeContract   = "Contract"
	JobTypeInternship = "Internship"
)

// Location type values accepted for Job.LocationType.
const (
	LocationOnSite = "On-site"
	LocationRemote = "Remote"
	LocationHybrid = "Hybrid"
)

func ValidJobType(s string) bool {
	switch s {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

func ValidLocationType(s string) bool {
	switch s {
	case LocationOnSite, LocationRemote, LocationHybrid:
		return true
	}
	return false
}

type Job struct {
	ID              int64     `json:"id"`
	EmployerID      string    `json:"employerId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	SalaryMin       float64   `json:"salaryMin"`
	SalaryMax       float64   `json:"salaryMax"`
	JobType         string    `json:"jobType"`
	LocationType    string    `json:"locationType"`
	ExperienceLevel string    `json:"experienceLevel"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// JobWithEmployer extends Job with the employer projection shown on listings.
type JobWithEmployer struct {
	Job
	EmployerName    string  `json:"employerName"`
	EmployerEmail   string  `json:"employerEmail"`
	EmployerLogoURL *string `json:"employerLogoUrl"`
}

// JobFilter narrows the public listing. Zero values mean "no constraint".
// EmployerIDs is resolved by the usecase from CompanyName before the query.
type JobFilter struct {
	Keyword         string
	JobType         string
	ExperienceLevel string
	CompanyName     string
	MinSalary       *float64
	EmployerIDs     []string
}

// JobUpdate is a partial update; nil fields keep their stored value.
type JobUpdate struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	Location        *string  `json:"location"`
	SalaryMin       *float64 `json:"salaryMin"`
	SalaryMax       *float64 `json:"salaryMax"`
	JobType         *string  `json:"jobType"`
	LocationType    *string  `json:"locationType"`
	ExperienceLevel *string  `json:"experienceLevel"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDWithEmployer(ctx context.Context, id int64) (*JobWithEmployer, error)
	Fetch(ctx context.Context, filter JobFilter) ([]JobWithEmployer, error)
	FetchByEmployer(ctx context.Context, employerID string) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	// DeleteCascade removes the job and every application referencing it in
	// one transaction.
	DeleteCascade(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, employerID string, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*JobWithEmployer, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]JobWithEmployer, error)
	ListJobsByEmployer(ctx context.Context, employerID string) ([]Job, error)
	UpdateJob(ctx context.Context, actorID string, jobID int64, upd *JobUpdate) (*Job, error)
	DeleteJob(ctx context.Context, actorID, actorRole string, jobID int64) error
}
