package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shaheencodecrafters/marketplace-service/internal/auth"
	"github.com/shaheencodecrafters/marketplace-service/internal/config"
	"github.com/shaheencodecrafters/marketplace-service/internal/domain"
	"github.com/shaheencodecrafters/marketplace-service/internal/events"
	"github.com/shaheencodecrafters/marketplace-service/internal/repository"
	"github.com/shaheencodecrafters/marketplace-service/internal/session"
	apperrors "github.com/shaheencodecrafters/marketplace-service/pkg/util"
)

// AuthService coordinates account, credential and session flows.
type AuthService struct {
	users      repository.UserRepository
	sessions   session.Store
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo     repository.UserRepository
	SessionStore session.Store
	Dispatcher   events.Dispatcher
}

// SocialSignupInput carries the social-provider profile for find-or-create.
type SocialSignupInput struct {
	Name     string
	Email    string
	Phone    string
	Provider string
	IDToken  string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		sessions:   deps.SessionStore,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// GetUser fetches a user by id. The caller receives the domain model; the
// transport layer is responsible for never serializing the password hash.
func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if err := validateID(id, "user"); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapRepoError(err, "User")
	}
	return user, nil
}

// Login authenticates a user by email and password and opens a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", apperrors.NewUnauthorized("Invalid credentials")
		}
		return nil, "", apperrors.NewInternalError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", apperrors.NewUnauthorized("Invalid credentials")
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", apperrors.NewInternalError(err)
	}
	return user, token, nil
}

// Logout destroys the session for the given token. Destroying an absent
// session succeeds, so retries are safe.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Destroy(ctx, token); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// SocialSignup finds or creates an account for a social-provider identity and
// opens a session either way. The returned flag reports whether a new account
// was created.
func (s *AuthService) SocialSignup(ctx context.Context, input SocialSignupInput) (*domain.User, string, bool, error) {
	if input.IDToken != "" {
		if claims, err := auth.ParseIdentityToken(input.IDToken); err == nil {
			if input.Name == "" {
				input.Name = claims.Name
			}
			if input.Email == "" {
				input.Email = claims.Email
			}
		}
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, "", false, apperrors.NewValidationError("email required")
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case err == nil:
		token, err := s.sessions.Create(ctx, user.ID)
		if err != nil {
			return nil, "", false, apperrors.NewInternalError(err)
		}
		return user, token, false, nil
	case errors.Is(err, pgx.ErrNoRows):
		// fall through to account creation
	default:
		return nil, "", false, apperrors.NewInternalError(err)
	}

	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Phone) == "" {
		return nil, "", false, apperrors.NewValidationError("name and phone required")
	}

	// Social accounts have no usable local password; store an unguessable
	// placeholder hash so password login stays closed for them.
	placeholder := fmt.Sprintf("%s_%s", input.Provider, uuid.NewString())
	hash, err := auth.HashPassword(placeholder, s.bcryptCost)
	if err != nil {
		return nil, "", false, apperrors.NewInternalError(err)
	}

	user = &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", false, apperrors.MapRepoError(err, "User")
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", false, apperrors.NewInternalError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserSignedUp,
			SubjectID: user.ID,
			Timestamp: time.Now(),
			Payload:   events.UserSignedUpPayload{Email: user.Email, Provider: input.Provider},
		})
	}
	return user, token, true, nil
}

// ChangeEmail updates a user's email after an ownership and uniqueness check.
func (s *AuthService) ChangeEmail(ctx context.Context, callerID, userID, email string) (*domain.User, error) {
	if err := validateID(userID, "user"); err != nil {
		return nil, err
	}
	if callerID != userID {
		return nil, apperrors.NewForbidden("cannot modify another user")
	}
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.NewValidationError("email required")
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil && existing.ID != userID {
		return nil, apperrors.NewConflict("Email already in use")
	}
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewInternalError(err)
	}

	user, err := s.users.UpdateEmail(ctx, userID, email)
	if err != nil {
		return nil, apperrors.MapRepoError(err, "User")
	}
	return user, nil
}

// ChangePassword verifies the current password before storing a new hash.
// A failed verification leaves the stored hash untouched.
func (s *AuthService) ChangePassword(ctx context.Context, callerID, userID, oldPassword, newPassword string) error {
	if err := validateID(userID, "user"); err != nil {
		return err
	}
	if callerID != userID {
		return apperrors.NewForbidden("cannot modify another user")
	}
	if newPassword == "" {
		return apperrors.NewValidationError("newPassword required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return apperrors.MapRepoError(err, "User")
	}
	if err := auth.ComparePassword(user.PasswordHash, oldPassword); err != nil {
		return apperrors.NewUnauthorized("Old password is incorrect")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return apperrors.MapRepoError(err, "User")
	}
	return nil
}

// validateID rejects malformed identifiers before any storage lookup.
func validateID(id, resource string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("Invalid %s ID format", resource))
	}
	return nil
}
