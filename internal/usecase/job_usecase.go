package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/authz"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	userRepo domain.UserRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, userRepo domain.UserRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

func validateJobFields(job *domain.Job) error {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.SalaryMin < 0 || job.SalaryMax < 0 {
		return apperror.BadRequest("Salary cannot be negative")
	}
	if job.SalaryMin > job.SalaryMax {
		return apperror.BadRequest("salaryMin cannot be greater than salaryMax")
	}
	if !domain.ValidJobType(job.JobType) {
		return apperror.BadRequest("Invalid jobType. Must be one of: Full-time, Part-time, Contract, Internship")
	}
	if !domain.ValidLocationType(job.LocationType) {
		return apperror.BadRequest("Invalid locationType. Must be one of: On-site, Remote, Hybrid")
	}
	return nil
}

func (uc *jobUsecase) CreateJob(ctx context.Context, employerID string, job *domain.Job) error {
	job.EmployerID = employerID
	if err := validateJobFields(job); err != nil {
		return err
	}
	return uc.jobRepo.Create(ctx, job)
}

func (uc *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	job, err := uc.jobRepo.GetByIDWithEmployer(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

// ListJobs resolves the companyName filter against the identity store first,
// then queries postings with the resolved employer ids.
func (uc *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithEmployer, error) {
	if filter.CompanyName != "" {
		ids, err := uc.userRepo.FindCompanyIDsByName(ctx, filter.CompanyName)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []domain.JobWithEmployer{}, nil
		}
		filter.EmployerIDs = ids
	}
	return uc.jobRepo.Fetch(ctx, filter)
}

func (uc *jobUsecase) ListJobsByEmployer(ctx context.Context, employerID string) ([]domain.Job, error) {
	return uc.jobRepo.FetchByEmployer(ctx, employerID)
}

// UpdateJob merges the partial update onto the stored posting. Only the
// owning employer may update; the merged result is revalidated so a partial
// update cannot break the salary invariant.
func (uc *jobUsecase) UpdateJob(ctx context.Context, actorID string, jobID int64, upd *domain.JobUpdate) (*domain.Job, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	if job.EmployerID != actorID {
		return nil, apperror.Forbidden("Not authorized to update this job post")
	}

	if upd.Title != nil {
		job.Title = *upd.Title
	}
	if upd.Description != nil {
		job.Description = *upd.Description
	}
	if upd.Location != nil {
		job.Location = *upd.Location
	}
	if upd.SalaryMin != nil {
		job.SalaryMin = *upd.SalaryMin
	}
	if upd.SalaryMax != nil {
		job.SalaryMax = *upd.SalaryMax
	}
	if upd.JobType != nil {
		job.JobType = *upd.JobType
	}
	if upd.LocationType != nil {
		job.LocationType = *upd.LocationType
	}
	if upd.ExperienceLevel != nil {
		job.ExperienceLevel = *upd.ExperienceLevel
	}

	if err := validateJobFields(job); err != nil {
		return nil, err
	}

	if err := uc.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes the posting and, in the same transaction, every
// application referencing it. Owner or admin only.
func (uc *jobUsecase) DeleteJob(ctx context.Context, actorID, actorRole string, jobID int64) error {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}

	actor := authz.Identity{ID: actorID, Role: actorRole}
	if !authz.Owns(actor, job.EmployerID) {
		return apperror.Forbidden("Not authorized to delete this job")
	}

	return uc.jobRepo.DeleteCascade(ctx, jobID)
}
