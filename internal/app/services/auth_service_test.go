package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hillcrest/college-backend/internal/app/models"
	"github.com/hillcrest/college-backend/internal/app/models/dto"
	"github.com/hillcrest/college-backend/internal/pkg/apperrors"
	"github.com/hillcrest/college-backend/internal/pkg/auth"
)

// fakeUserRepo is an in-memory UserRepo keyed by id and email.
type fakeUserRepo struct {
	byID    map[int64]*models.User
	byEmail map[string]*models.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[int64]*models.User),
		byEmail: make(map[string]*models.User),
		nextID:  1,
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, taken := r.byEmail[strings.ToLower(user.Email)]; taken {
		return apperrors.ErrEmailAlreadyExists
	}
	user.ID = r.nextID
	r.nextID++
	r.byID[user.ID] = user
	r.byEmail[strings.ToLower(user.Email)] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetAll(context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	r.byID[user.ID] = user
	r.byEmail[strings.ToLower(user.Email)] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	user, ok := r.byID[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	delete(r.byEmail, strings.ToLower(user.Email))
	delete(r.byID, id)
	return nil
}

func newTestAuthService(repo UserRepo) *AuthService {
	jwtSvc := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test.issuer",
	})
	return NewAuthService(repo, jwtSvc, zerolog.Nop())
}

func TestAuthServiceRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane Wanjiku",
		Email:    "Jane@Example.Test",
		Password: "sup3r-secret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, models.RoleUser, resp.User.Role, "registration never grants admin")
	assert.Equal(t, "jane@example.test", resp.User.Email)

	stored := repo.byEmail["jane@example.test"]
	require.NotNil(t, stored)
	assert.True(t, auth.IsHash(stored.Password), "password must be stored hashed")
	assert.True(t, auth.CheckPassword(stored.Password, "sup3r-secret"))
}

func TestAuthServiceRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	req := &dto.RegisterRequest{Name: "Jane", Email: "jane@example.test", Password: "sup3r-secret"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuthServiceRegister_RejectsPrehashedPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	hash, err := auth.HashPassword("whatever")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.test",
		Password: hash,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAuthServiceLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.test",
		Password: "sup3r-secret",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "JANE@example.test",
		Password: "sup3r-secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "jane@example.test", resp.User.Email)
}

func TestAuthServiceLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.test",
		Password: "sup3r-secret",
	})
	require.NoError(t, err)

	_, unknownErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.test",
		Password: "sup3r-secret",
	})
	_, wrongErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.test",
		Password: "wrong",
	})

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongErr, "errors must be indistinguishable to the client")
}

func TestAuthServiceLogin_CorruptedStoredHash(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	// A plaintext value in the password column fails the shape check and
	// must never be compared or repaired.
	require.NoError(t, repo.Create(context.Background(), &models.User{
		Name:     "Jane",
		Email:    "jane@example.test",
		Password: "plaintext-left-by-a-bad-import",
		Role:     models.RoleUser,
	}))

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.test",
		Password: "plaintext-left-by-a-bad-import",
	})
	assert.ErrorIs(t, err, apperrors.ErrCorruptedCredential)
	assert.Equal(t, "plaintext-left-by-a-bad-import", repo.byEmail["jane@example.test"].Password)
}

func TestAuthServiceCurrentUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.test",
		Password: "sup3r-secret",
	})
	require.NoError(t, err)

	user, err := svc.CurrentUser(context.Background(), resp.Token)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, resp.User.ID, user.ID)

	// Deleted subject: valid token, nil user, no error.
	require.NoError(t, repo.Delete(context.Background(), resp.User.ID))
	user, err = svc.CurrentUser(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Nil(t, user)

	_, err = svc.CurrentUser(context.Background(), "garbage")
	assert.Error(t, err)
}
