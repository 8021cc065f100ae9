package service

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/healthcare-service/internal/domain"
	"github.com/spec-kit/healthcare-service/internal/repository"
	apperrors "github.com/spec-kit/healthcare-service/pkg/util/errorutil"
)

var errInvalidCredentials = apperrors.NewUnauthorized(apperrors.CodeInvalidCredentials, "invalid credentials")

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashed, plain string) error
}

// TokenIssuer signs access tokens for an account.
type TokenIssuer interface {
	Issue(userID int64) (domain.Token, error)
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users    repository.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	throttle *LoginThrottle
	log      *zap.Logger

	decoyOnce sync.Once
	decoyHash string
}

// AuthDependencies encapsulates the collaborators of AuthService. Throttle may be nil.
type AuthDependencies struct {
	UserRepo repository.UserRepository
	Hasher   PasswordHasher
	Tokens   TokenIssuer
	Throttle *LoginThrottle
	Logger   *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:    deps.UserRepo,
		hasher:   deps.Hasher,
		tokens:   deps.Tokens,
		throttle: deps.Throttle,
		log:      logger,
	}
}

// Register creates an account and returns it with a fresh token.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, domain.Token, error) {
	email = normalizeEmail(email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, domain.Token{}, emailTaken()
	} else if !apperrors.IsNotFound(err) {
		return nil, domain.Token{}, apperrors.NewInternalError(err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, domain.Token{}, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, domain.Token{}, emailTaken()
		}
		return nil, domain.Token{}, apperrors.NewInternalError(err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, domain.Token{}, apperrors.NewInternalError(err)
	}
	s.log.Info("user registered", zap.Int64("user_id", user.ID))
	return user, token, nil
}

// Login authenticates by email and password. Unknown emails and wrong passwords
// produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, domain.Token, error) {
	email = normalizeEmail(email)

	if err := s.throttle.Allow(ctx, email); err != nil {
		return nil, domain.Token{}, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			s.compareDecoy(password)
			s.throttle.RecordFailure(ctx, email)
			return nil, domain.Token{}, errInvalidCredentials
		}
		return nil, domain.Token{}, apperrors.NewInternalError(err)
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.throttle.RecordFailure(ctx, email)
		return nil, domain.Token{}, errInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, domain.Token{}, apperrors.NewInternalError(err)
	}
	return user, token, nil
}

// Me resolves the account behind an authenticated identity.
func (s *AuthService) Me(ctx context.Context, caller domain.Identity) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, caller.UserID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, apperrors.NewInternalError(err)
	}
	return user, nil
}

// compareDecoy spends one hash comparison so unknown emails take as long as
// wrong passwords.
func (s *AuthService) compareDecoy(password string) {
	s.decoyOnce.Do(func() {
		hash, err := s.hasher.Hash("decoy-password-for-unknown-accounts")
		if err != nil {
			s.log.Warn("decoy hash unavailable", zap.Error(err))
			return
		}
		s.decoyHash = hash
	})
	if s.decoyHash != "" {
		_ = s.hasher.Compare(s.decoyHash, password)
	}
}

func emailTaken() error {
	return apperrors.NewConflict("email already registered", map[string]any{"field": "email"})
}

