package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"social-listener/cmd/api/auth"
	"social-listener/models"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles registration, login and token parsing. Passwords are
// stored as bcrypt hashes, ownership tokens are HS256 JWTs.
type AuthService struct {
	users      userStore
	jwtManager *auth.JWTManager
	bcryptCost int
}

func NewAuthService(users userStore, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{
		users:      users,
		jwtManager: jwtManager,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// Register creates an account and returns it with a freshly issued token.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (*models.User, string, error) {
	exists, err := s.users.IsExistByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("user lookup: %w", err)
	}
	if exists {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("password hash: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := s.users.Insert(ctx, user); err != nil {
		// the unique email index closes the lookup/insert race
		if mongo.IsDuplicateKeyError(err) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("user insert: %w", err)
	}

	token, err := s.jwtManager.Sign(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("jwt sign: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("user lookup: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtManager.Sign(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("jwt sign: %w", err)
	}
	return user, token, nil
}

// Profile loads the account behind a parsed token.
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ParseAccessToken validates a bearer token and returns the owner id.
func (s *AuthService) ParseAccessToken(token string) (string, error) {
	userID, _, err := s.jwtManager.Parse(token)
	return userID, err
}
