package service

import (
	"context"

	"tambula/internal/model"
	appErr "tambula/internal/pkg/errors"
	"tambula/internal/pkg/jwt"
	"tambula/internal/pkg/password"
	"tambula/internal/pkg/timeutil"
)

// UserStore is the capability set auth needs from a credential store:
// insert with unique-violation signaling and lookup by username.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

type AuthService struct {
	users     UserStore
	jwtSecret []byte
}

func NewAuthService(users UserStore, secret []byte) *AuthService {
	return &AuthService{users: users, jwtSecret: secret}
}

func (s *AuthService) Register(ctx context.Context, username, plainPassword, email, name string) error {
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return err
	}
	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		Name:         name,
		Ctime:        timeutil.NowUnix(),
	}
	return s.users.Create(ctx, user)
}

// Login returns a signed token for valid credentials. Unknown username
// and wrong password both map to ErrUnauthorized so callers cannot
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, plainPassword string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", appErr.ErrUnauthorized
	}
	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		return "", appErr.ErrUnauthorized
	}
	return jwt.GenerateToken(user.Username, s.jwtSecret)
}
