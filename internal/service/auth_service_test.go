package service

import (
	"testing"

	"go-admin-console/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccountRepo struct {
	accounts []model.Account
}

func (f *fakeAccountRepo) FindByID(id uint) (*model.Account, error) {
	for i := range f.accounts {
		if f.accounts[i].ID == id {
			account := f.accounts[i]
			return &account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByUsername(username string) (*model.Account, error) {
	for i := range f.accounts {
		if f.accounts[i].Username == username {
			account := f.accounts[i]
			return &account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) Create(account *model.Account) error {
	account.ID = uint(len(f.accounts) + 1)
	f.accounts = append(f.accounts, *account)
	return nil
}

func (f *fakeAccountRepo) Update(account *model.Account) error {
	for i := range f.accounts {
		if f.accounts[i].ID == account.ID {
			f.accounts[i] = *account
			return nil
		}
	}
	return nil
}

func seedAccount(t *testing.T, repo *fakeAccountRepo, username, password string, accountStatus model.Status) {
	t.Helper()
	account := &model.Account{
		Username: username,
		Identity: model.IdentityOrdinary,
		Status:   accountStatus,
	}
	require.NoError(t, account.SetPassword(password))
	require.NoError(t, repo.Create(account))
}

func TestLoginIssuesTokenAndRotatesSession(t *testing.T) {
	repo := &fakeAccountRepo{}
	seedAccount(t, repo, "alice", "secret", model.StatusNormal)
	svc := NewAuthService(repo)

	resp, err := svc.Login("alice", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.Account.Username)

	stored, _ := repo.FindByUsername("alice")
	assert.NotEmpty(t, stored.TokenVersion)
	assert.NotNil(t, stored.LastLoginAt)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	repo := &fakeAccountRepo{}
	seedAccount(t, repo, "alice", "secret", model.StatusNormal)
	svc := NewAuthService(repo)

	_, err := svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownAccount(t *testing.T) {
	svc := NewAuthService(&fakeAccountRepo{})

	_, err := svc.Login("nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsForbiddenAccount(t *testing.T) {
	repo := &fakeAccountRepo{}
	seedAccount(t, repo, "alice", "secret", model.StatusForbidden)
	svc := NewAuthService(repo)

	_, err := svc.Login("alice", "secret")
	assert.ErrorIs(t, err, ErrAccountForbidden)
}
