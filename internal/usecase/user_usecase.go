package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type userUsecase struct {
	userRepo domain.UserRepository
}

func NewUserUsecase(userRepo domain.UserRepository) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

// ListByRole backs the role directory (e.g. the companies page).
func (uc *userUsecase) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, apperror.BadRequest("Invalid user role specified")
	}
	return uc.userRepo.FetchByRole(ctx, role)
}

func (uc *userUsecase) ListAll(ctx context.Context) ([]domain.User, error) {
	return uc.userRepo.FetchAll(ctx)
}

func (uc *userUsecase) DeleteUser(ctx context.Context, id string) error {
	if err := uc.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}
	return nil
}
