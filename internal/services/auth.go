package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/connectus-hq/connectus-backend/internal/platform/apierr"
	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/repos"
	"github.com/connectus-hq/connectus-backend/internal/requestdata"
	"github.com/connectus-hq/connectus-backend/internal/types"
)

type JWTClaims struct {
	Authority int `json:"authority"`
	jwt.RegisteredClaims
}

type AuthService interface {
	HashPassword(plain string) (string, error)
	VerifyPassword(plain, hash string) bool
	IssueSession(user *types.User) (string, error)
	ValidateSession(tokenString string) (*requestdata.RequestData, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	Login(ctx context.Context, email, password string, adminOnly bool) (*types.User, string, error)
}

type authService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     repos.UserRepo
	jwtSecretKey string
	sessionTTL   time.Duration
	bcryptCost   int
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	jwtSecretKey string,
	sessionTTL time.Duration,
	bcryptCost int,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		db:           db,
		log:          serviceLog,
		userRepo:     userRepo,
		jwtSecretKey: jwtSecretKey,
		sessionTTL:   sessionTTL,
		bcryptCost:   bcryptCost,
	}
}

func (as *authService) HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", fmt.Errorf("empty password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), as.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (as *authService) VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func (as *authService) IssueSession(user *types.User) (string, error) {
	claims := JWTClaims{
		Authority: user.Authority,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

// ValidateSession fails closed: any malformed, unsigned, or expired token
// yields an unauthorized error, never a panic or partial identity.
func (as *authService) ValidateSession(tokenString string) (*requestdata.RequestData, error) {
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return nil, apierr.Unauthorized(fmt.Errorf("invalid token"))
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return nil, apierr.Unauthorized(fmt.Errorf("invalid token"))
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apierr.Unauthorized(fmt.Errorf("invalid token"))
	}
	return &requestdata.RequestData{
		TokenString: tokenString,
		UserID:      userID,
		Authority:   claims.Authority,
	}, nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	rd, err := as.ValidateSession(tokenString)
	if err != nil {
		return ctx, err
	}
	return requestdata.WithRequestData(ctx, rd), nil
}

// Login standardizes on one "invalid credentials" message for both unknown
// email and password mismatch so callers cannot enumerate accounts. An
// unverified account is a distinct conflict.
func (as *authService) Login(ctx context.Context, email, password string, adminOnly bool) (*types.User, string, error) {
	email = NormalizeEmail(email)

	user, err := as.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		return nil, "", fmt.Errorf("look up user by email: %w", err)
	}
	if user == nil {
		return nil, "", apierr.Unauthorized(fmt.Errorf("invalid credentials"))
	}
	if !user.Verified {
		return nil, "", apierr.Conflict(fmt.Errorf("user not verified"))
	}
	if adminOnly && !user.IsAdmin() {
		return nil, "", apierr.Forbidden(fmt.Errorf("admin only"))
	}
	if !as.VerifyPassword(password, user.Password) {
		return nil, "", apierr.Unauthorized(fmt.Errorf("invalid credentials"))
	}

	token, err := as.IssueSession(user)
	if err != nil {
		return nil, "", fmt.Errorf("issue session: %w", err)
	}
	return user, token, nil
}

// NormalizeEmail applies the canonical form used everywhere an email is
// stored or compared.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
