package auth

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/tasknest/backend/domain"
	"github.com/tasknest/backend/pkg/logger"
	"github.com/tasknest/backend/repository"
	"github.com/tasknest/backend/usecase"
)

// UseCase implements the credential store: registration, login with opaque
// bearer tokens, token verification and revocation.
type UseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	ttl      time.Duration
	hashCost int
	validate *validator.Validate
	logger   *zap.Logger
}

func New(users repository.UserRepository, sessions repository.SessionRepository, ttl time.Duration, hashCost int, logger *zap.Logger) *UseCase {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if hashCost < bcrypt.MinCost || hashCost > bcrypt.MaxCost {
		hashCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	v := validator.New()
	registerCredentialRules(v)
	return &UseCase{
		users:    users,
		sessions: sessions,
		ttl:      ttl,
		hashCost: hashCost,
		validate: v,
		logger:   logger,
	}
}

var nameCharset = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// registerCredentialRules adds the two account rules plain tags cannot
// express: names are letters and spaces only, passwords need a lowercase
// letter, an uppercase letter and a digit.
func registerCredentialRules(v *validator.Validate) {
	_ = v.RegisterValidation("name_charset", func(fl validator.FieldLevel) bool {
		return nameCharset.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("password_strength", func(fl validator.FieldLevel) bool {
		var hasLower, hasUpper, hasDigit bool
		for _, r := range fl.Field().String() {
			switch {
			case r >= 'a' && r <= 'z':
				hasLower = true
			case r >= 'A' && r <= 'Z':
				hasUpper = true
			case r >= '0' && r <= '9':
				hasDigit = true
			}
		}
		return hasLower && hasUpper && hasDigit
	})
}

type RegisterInput struct {
	Name     string `validate:"required,min=2,max=50,name_charset"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=100,password_strength"`
}

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Register creates an account and immediately issues a session for it.
func (uc *UseCase) Register(ctx context.Context, in RegisterInput) (*domain.User, *domain.Session, error) {
	if err := usecase.Validate(uc.validate, in); err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.hashCost)
	if err != nil {
		return nil, nil, domain.WrapError(domain.ErrCodeInternal, "password hashing failed", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}
	logger.WithRequestID(ctx, uc.logger).Info("user registered", zap.String("user_id", user.ID))

	session, err := uc.issueSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Login verifies the password and issues a fresh opaque token. A missing user
// and a wrong password are indistinguishable to the caller.
func (uc *UseCase) Login(ctx context.Context, in LoginInput) (*domain.User, *domain.Session, error) {
	if err := usecase.Validate(uc.validate, in); err != nil {
		return nil, nil, err
	}

	user, err := uc.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	session, err := uc.issueSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Verify resolves an opaque token to the user it belongs to. Expired sessions
// are deleted on sight; live ones slide forward by the full TTL, so a session
// only dies after the TTL passes without a single authenticated request.
func (uc *UseCase) Verify(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrUnauthorized
	}
	session, err := uc.sessions.Get(ctx, token)
	if err != nil {
		return "", err
	}
	if session.IsExpired(time.Now()) {
		_ = uc.sessions.Delete(ctx, token)
		return "", domain.ErrSessionNotFound
	}
	if err := uc.sessions.Extend(ctx, token, int(uc.ttl.Seconds())); err != nil {
		return "", err
	}
	return session.UserID, nil
}

// Logout revokes the token server-side.
func (uc *UseCase) Logout(ctx context.Context, token string) error {
	return uc.sessions.Delete(ctx, token)
}

// Me loads the profile of the authenticated user.
func (uc *UseCase) Me(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

func (uc *UseCase) issueSession(ctx context.Context, userID string) (*domain.Session, error) {
	now := time.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.ttl),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
