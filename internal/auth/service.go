package auth

import (
	"context"
	"strings"

	"alumni-connect-api/internal/apperr"
	"alumni-connect-api/internal/database"
	"alumni-connect-api/internal/token"
	"alumni-connect-api/internal/util"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type AuthService struct {
	DB     *gorm.DB
	Signer token.Signer
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*ProfileSummary, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if util.AnyBlank(name, email) || req.Password == "" || req.PassOutYear == 0 {
		return nil, apperr.Validation(msgMissingFields)
	}

	existing, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Conflict(msgEmailTaken)
	}

	hashed, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal(errors.Wrap(err, "hash password"))
	}

	user := User{
		Name:        name,
		Email:       email,
		College:     req.College,
		PassOutYear: req.PassOutYear,
		Password:    hashed,
	}

	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		// a concurrent registration can slip past the lookup above
		if database.IsUniqueViolation(err) {
			return nil, apperr.Conflict(msgEmailTaken)
		}
		return nil, apperr.Internal(errors.Wrap(err, "insert user"))
	}

	return user.Summary(), nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperr.Validation(msgMissingCredentials)
	}

	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil {
		return nil, apperr.NotFound(msgUserNotFound)
	}

	if err := util.VerifyPassword(password, user.Password); err != nil {
		return nil, apperr.Auth(msgIncorrectPassword)
	}

	signed, err := s.Signer.Sign(user.ID, user.Email)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &LoginResult{Token: signed, User: user.Summary()}, nil
}

// findByEmail returns nil, nil when no user has the address.
func (s *AuthService) findByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user by email")
	}
	return &user, nil
}
