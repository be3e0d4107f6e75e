package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/usamabinnadeem-10/realtime-feedback/internal/models/db_models"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/models/request_models"
	"github.com/usamabinnadeem-10/realtime-feedback/pkg/utils"
)

type fakeAccountRepo struct {
	byEmail map[string]*db_models.Account
	failing bool
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: make(map[string]*db_models.Account)}
}

func (r *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	if r.failing {
		return assert.AnError
	}
	if err := (&account.BaseModel).BeforeCreate(nil); err != nil {
		return err
	}
	stored := *account
	r.byEmail[account.Email] = &stored
	return nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id string) (*db_models.Account, error) {
	if r.failing {
		return nil, assert.AnError
	}
	for _, account := range r.byEmail {
		if account.ID.String() == id {
			result := *account
			return &result, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	if r.failing {
		return nil, assert.AnError
	}
	account, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	result := *account
	return &result, nil
}

type fakeRevokedStore struct {
	revoked map[string]time.Duration
}

func newFakeRevokedStore() *fakeRevokedStore {
	return &fakeRevokedStore{revoked: make(map[string]time.Duration)}
}

func (s *fakeRevokedStore) Revoke(token string, ttl time.Duration) {
	s.revoked[token] = ttl
}

func (s *fakeRevokedStore) IsRevoked(token string) bool {
	_, ok := s.revoked[token]
	return ok
}

func newAccountService(t *testing.T) (AccountServiceInterface, *fakeAccountRepo, *fakeRevokedStore) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeAccountRepo()
	revoked := newFakeRevokedStore()
	svc := NewAccountService(repo, revoked, zaptest.NewLogger(t))
	return svc, repo, revoked
}

func signUpRequest() request_models.SignUpRequest {
	return request_models.SignUpRequest{
		DisplayName: "Usama",
		Email:       "usama@example.com",
		Password:    "hunter22",
	}
}

func TestCreateAccountHashesPassword(t *testing.T) {
	svc, repo, _ := newAccountService(t)

	err := svc.CreateAccount(context.Background(), signUpRequest())
	require.NoError(t, err)

	account := repo.byEmail["usama@example.com"]
	require.NotNil(t, account)
	assert.Equal(t, "Usama", account.DisplayName)
	assert.NotEqual(t, "hunter22", account.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(account.PasswordHash, "hunter22"))
}

func TestCreateAccountRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newAccountService(t)

	require.NoError(t, svc.CreateAccount(context.Background(), signUpRequest()))

	err := svc.CreateAccount(context.Background(), signUpRequest())
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLoginReturnsValidToken(t *testing.T) {
	svc, repo, _ := newAccountService(t)
	require.NoError(t, svc.CreateAccount(context.Background(), signUpRequest()))

	token, account, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "usama@example.com",
		Password: "hunter22",
	})

	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, repo.byEmail["usama@example.com"].ID, account.ID)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID.String(), claims.UserID)
	assert.Equal(t, "usama@example.com", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAccountService(t)
	require.NoError(t, svc.CreateAccount(context.Background(), signUpRequest()))

	_, _, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "usama@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newAccountService(t)

	_, _, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, revoked := newAccountService(t)
	require.NoError(t, svc.CreateAccount(context.Background(), signUpRequest()))

	token, _, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "usama@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	svc.Logout(token)

	assert.True(t, revoked.IsRevoked(token))
	assert.Greater(t, revoked.revoked[token], time.Duration(0))
}

func TestLogoutIgnoresGarbageToken(t *testing.T) {
	svc, _, revoked := newAccountService(t)

	svc.Logout("not-a-jwt")

	assert.Empty(t, revoked.revoked)
}
