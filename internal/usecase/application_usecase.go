package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/authz"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
	}
}

// Apply creates an application with the canonical initial status. Only a
// seeker identity may apply; the admin override does not extend to this
// operation. The role check runs before the job lookup so a non-seeker is
// refused regardless of whether the job exists. Duplicate detection is atomic
// in the repository; there is no read-then-write window between check and
// create.
func (uc *applicationUsecase) Apply(ctx context.Context, actorID, actorRole string, jobID int64) (*domain.Application, error) {
	if actorRole != domain.RoleSeeker {
		return nil, apperror.Forbidden("Only job seekers can apply to this job")
	}

	if _, err := uc.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	app := &domain.Application{
		JobID:    jobID,
		SeekerID: actorID,
		Status:   domain.StatusShortlisted,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("You have already applied to this job")
		}
		return nil, err
	}

	return app, nil
}

// ListForSeeker returns the caller's own applications. Seeker only; like
// Apply, the admin override does not extend to this operation.
func (uc *applicationUsecase) ListForSeeker(ctx context.Context, actorID, actorRole string) ([]domain.Application, error) {
	if actorRole != domain.RoleSeeker {
		return nil, apperror.Forbidden("Only job seekers can view their applications")
	}
	return uc.applicationRepo.GetBySeekerID(ctx, actorID)
}

// ListForJob returns the job's applications for its owning company or an
// admin. A company that does not own the job gets 404, not 403, so the
// listing does not disclose which jobs exist.
func (uc *applicationUsecase) ListForJob(ctx context.Context, actorID, actorRole string, jobID int64) ([]domain.Application, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found or unauthorized access")
		}
		return nil, err
	}

	actor := authz.Identity{ID: actorID, Role: actorRole}
	if !authz.Owns(actor, job.EmployerID) {
		return nil, apperror.NotFound("Job not found or unauthorized access")
	}

	return uc.applicationRepo.GetByJobID(ctx, jobID)
}

// UpdateStatus moves an application to one of the four workflow statuses.
// All checks complete before the write.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, actorID, actorRole string, applicationID int64, status string) error {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return err
	}

	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}

	actor := authz.Identity{ID: actorID, Role: actorRole}
	if !authz.Owns(actor, job.EmployerID) {
		return apperror.Forbidden("Not authorized to update this application status")
	}

	if !domain.ValidApplicationStatus(status) {
		return apperror.BadRequest("Invalid status: must be one of " + strings.Join(domain.ApplicationStatuses, ", "))
	}

	return uc.applicationRepo.UpdateStatus(ctx, applicationID, status)
}
