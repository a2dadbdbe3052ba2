// Package services contains the server's business logic. UserService covers
// registration, login, logout and token verification; TodoService covers the
// owner-scoped task operations.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
	"github.com/dmitrijs2005/todokeeper/internal/server/config"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Credentials are the only fields accepted by register and login.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Session is an authenticated user with the token that proved it.
type Session struct {
	User  *models.User
	Token string
}

type UserService struct {
	repomanager   repomanager.RepositoryManager
	validate      *validator.Validate
	jwtSecret     []byte
	tokenValidity time.Duration
	bcryptCost    int

	// compared against when the email is unknown, so both login failures
	// cost one bcrypt comparison
	dummyHash []byte
}

func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("todokeeper-timing-equalizer"), cost)

	return &UserService{
		repomanager:   m,
		validate:      newValidator(),
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		bcryptCost:    cost,
		dummyHash:     dummy,
	}
}

// Register creates the account and its first token in one unit of work.
// Invalid input yields *common.ValidationError, a taken email
// common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, in Credentials) (*Session, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, err
	}

	err = s.repomanager.Atomic(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		if _, err := r.Users().Create(ctx, user); err != nil {
			return err
		}
		return r.Tokens().Add(ctx, user.ID, models.Token{Access: common.AccessAuth, Token: token})
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	user.Tokens = []models.Token{{Access: common.AccessAuth, Token: token}}
	return &Session{User: user, Token: token}, nil
}

// Login checks the credentials and issues an additional token; earlier
// tokens stay valid. Unknown email and wrong password both return
// common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, in Credentials) (*Session, error) {
	email := strings.TrimSpace(in.Email)

	user, err := s.repomanager.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(in.Password))
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, common.ErrorUnauthorized
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.repomanager.Tokens().Add(ctx, user.ID, models.Token{Access: common.AccessAuth, Token: token}); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return &Session{User: user, Token: token}, nil
}

// Logout revokes exactly the presented token.
func (s *UserService) Logout(ctx context.Context, userID, token string) error {
	if err := s.repomanager.Tokens().Remove(ctx, userID, token); err != nil {
		return fmt.Errorf("error removing token: %w", err)
	}
	return nil
}

// Authenticate verifies the token signature, then that the token is still in
// the owner's token set, then loads the owner. Every rejection wraps
// common.ErrorUnauthorized; store failures do not.
func (s *UserService) Authenticate(ctx context.Context, token string) (*Session, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}

	ok, err := s.repomanager.Tokens().Exists(ctx, claims.UserID, token)
	if err != nil {
		return nil, fmt.Errorf("error checking token: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: token revoked", common.ErrorUnauthorized)
	}

	user, err := s.repomanager.Users().GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: user gone", common.ErrorUnauthorized)
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	return &Session{User: user, Token: token}, nil
}

func (s *UserService) generateToken(userID string) (string, error) {
	token, err := auth.GenerateToken(userID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return token, nil
}
