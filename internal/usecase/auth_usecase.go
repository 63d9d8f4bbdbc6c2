package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenGenerator mints the bearer credential returned by register/login.
type TokenGenerator interface {
	Generate(userID string) (string, error)
}

type registerPayload struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Role     string `validate:"required"`
}

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   TokenGenerator
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens TokenGenerator, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		validate: validate,
	}
}

func (uc *authUsecase) Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
	payload := registerPayload{Name: in.Name, Email: in.Email, Password: in.Password, Role: in.Role}
	if err := uc.validate.Struct(payload); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if !domain.ValidRole(in.Role) {
		return nil, apperror.BadRequest("Invalid user role specified")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Skills:       []string{},
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("A user with this email already exists")
		}
		return nil, err
	}

	return uc.withToken(user)
}

func (uc *authUsecase) Login(ctx context.Context, in domain.LoginInput) (*domain.AuthResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, apperror.BadRequest("Please provide both email and password")
	}

	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	// Clients log in against a role-specific surface; a mismatch is rejected
	// unless the stored role is admin.
	if in.Role != "" && user.Role != in.Role && user.Role != domain.RoleAdmin {
		return nil, apperror.Unauthorized("Unauthorized: Role mismatch")
	}

	return uc.withToken(user)
}

func (uc *authUsecase) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User not found")
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies a partial update: nil fields keep their stored value,
// non-nil fields overwrite. Role is immutable and never touched here.
func (uc *authUsecase) UpdateProfile(ctx context.Context, userID string, upd *domain.ProfileUpdate) (*domain.AuthResult, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User not found")
		}
		return nil, err
	}

	if upd.Name != nil && *upd.Name != "" {
		user.Name = *upd.Name
	}
	if upd.Email != nil && *upd.Email != "" {
		user.Email = *upd.Email
	}
	// Company clients send "logo" for the same field seekers call "photoUrl";
	// logo wins when both are present.
	if upd.Logo != nil {
		user.PhotoURL = upd.Logo
	} else if upd.PhotoURL != nil {
		user.PhotoURL = upd.PhotoURL
	}
	if upd.ResumeURL != nil {
		user.ResumeURL = upd.ResumeURL
	}
	if upd.Skills != nil {
		user.Skills = *upd.Skills
	}
	if upd.ExpectedSalary != nil {
		user.ExpectedSalary = upd.ExpectedSalary
	}
	if upd.Description != nil {
		user.Description = upd.Description
	}
	if upd.Website != nil {
		user.Website = upd.Website
	}
	if upd.ContactInfo != nil {
		user.ContactInfo = upd.ContactInfo
	}
	if upd.OfficeAddress != nil {
		user.OfficeAddress = upd.OfficeAddress
	}
	if upd.Password != nil && *upd.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		user.PasswordHash = string(hash)
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("A user with this email already exists")
		}
		return nil, err
	}

	return uc.withToken(user)
}

func (uc *authUsecase) withToken(user *domain.User) (*domain.AuthResult, error) {
	token, err := uc.tokens.Generate(user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{User: *user, Token: token}, nil
}
