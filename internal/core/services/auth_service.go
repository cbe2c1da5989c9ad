package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"studyspace-booking/internal/adapters/persistence/models"
	"studyspace-booking/internal/adapters/persistence/repositories"
	"studyspace-booking/internal/config"
	"studyspace-booking/internal/core/domain"
	"studyspace-booking/internal/pkg/jwt"
	"studyspace-booking/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles registration, login and session tokens
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginResult represents a successful login
type LoginResult struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Token    string `json:"token"`
}

// Register creates a new user with a one-way password hash. Email,
// username and password are required; both identity fields must be
// globally unique.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) error {
	if input.Email == "" || input.Username == "" || input.Password == "" {
		return domain.ErrMissingFields
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrUserAlreadyExists
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Username:  input.Username,
		Email:     input.Email,
		Password:  hashed,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	log.Printf("✅ User registered: %s", user.Username)
	return nil
}

// Login authenticates by username OR email and issues a session token.
// The stored hash never leaves this layer.
func (s *AuthService) Login(ctx context.Context, identity, rawPassword string) (*LoginResult, error) {
	user, err := s.userRepo.GetByUsernameOrEmail(ctx, identity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(rawPassword, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(user.Username, s.cfg.JWT.Secret, s.cfg.TokenLifetime())
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s", user.Username)

	return &LoginResult{
		Username: user.Username,
		FullName: user.FullName(),
		Token:    token,
	}, nil
}

// ValidateToken validates a session token and returns its claims
func (s *AuthService) ValidateToken(token string) (*jwt.Claims, error) {
	return jwt.Validate(token, s.cfg.JWT.Secret)
}
