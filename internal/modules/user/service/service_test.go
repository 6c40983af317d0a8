package service

import (
	"context"
	"testing"

	"careerbridge.org/jobfairhub/internal/entity"
	"careerbridge.org/jobfairhub/internal/modules/user/dto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	byEmail map[string]*entity.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func adminUser(t *testing.T, email, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     "Administrator",
		PasswordHash: string(hash),
		Role:         entity.Role{Name: entity.RoleAdmin},
	}
}

func TestLoginIssuesTokenForValidCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := adminUser(t, "admin@careerbridge.org", "hunter22hunter22")
	repo := &stubUserRepo{byEmail: map[string]*entity.User{user.Email: user}}
	svc := NewAuthService(repo)

	resp, err := svc.Login(context.Background(), dto.LoginInput{
		Email:    "admin@careerbridge.org",
		Password: "hunter22hunter22",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Empty(t, resp.User.PasswordHash)

	token, err := jwt.ParseWithClaims(resp.AccessToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := adminUser(t, "admin@careerbridge.org", "correct-password")
	repo := &stubUserRepo{byEmail: map[string]*entity.User{user.Email: user}}
	svc := NewAuthService(repo)

	_, err := svc.Login(context.Background(), dto.LoginInput{
		Email:    "admin@careerbridge.org",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.EqualError(t, err, "invalid credentials")
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewAuthService(&stubUserRepo{})

	_, err := svc.Login(context.Background(), dto.LoginInput{
		Email:    "nobody@careerbridge.org",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.EqualError(t, err, "invalid credentials")
}
