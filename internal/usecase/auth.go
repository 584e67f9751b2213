package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
)

// TokenClaims carries the authenticated identity extracted from a JWT.
type TokenClaims struct {
	UserID string
	Email  string
	Role   domain.UserRole
}

// RegisterRequest contains the fields required to create an account.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
}

// AuthUseCase defines the interface for account registration and login.
type AuthUseCase interface {
	// Register creates a customer account and returns it with a signed
	// token. The password is stored only as a bcrypt hash.
	Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error)

	// Login verifies credentials and returns the account with a signed
	// token. Wrong email and wrong password are indistinguishable to the
	// caller.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)

	// VerifyToken parses and validates a token string.
	VerifyToken(token string) (*TokenClaims, error)
}

type authUseCase struct {
	users    domain.UserStore
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

// NewAuthUseCase creates an AuthUseCase signing tokens with the given secret.
func NewAuthUseCase(users domain.UserStore, secret string, tokenTTL time.Duration) AuthUseCase {
	return &authUseCase{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

func (uc *authUseCase) Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error) {
	if len(req.Password) < 8 {
		return nil, "", fmt.Errorf("%w: password must be at least 8 characters", domain.ErrInvalidEntity)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         domain.RoleCustomer,
		CreatedAt:    uc.now().UTC(),
	}
	user.Normalize()
	if err := user.Validate(); err != nil {
		return nil, "", err
	}

	if _, err := uc.users.GetUserByEmail(ctx, user.Email); err == nil {
		return nil, "", fmt.Errorf("%w: email %s is taken", domain.ErrAlreadyExists, user.Email)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}

	if err := uc.users.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := uc.signToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := uc.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}

	token, err := uc.signToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *authUseCase) VerifyToken(token string) (*TokenClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return uc.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: invalid token claims", domain.ErrUnauthorized)
	}

	userID, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if userID == "" {
		return nil, fmt.Errorf("%w: token missing subject", domain.ErrUnauthorized)
	}

	return &TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   domain.UserRole(role),
	}, nil
}

func (uc *authUseCase) signToken(user *domain.User) (string, error) {
	now := uc.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(uc.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(uc.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
