package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/Keshaini/MEDITRACK-sub000/internal/errors"
	"github.com/Keshaini/MEDITRACK-sub000/internal/identity/domain"
	"github.com/Keshaini/MEDITRACK-sub000/internal/identity/dto"
	"github.com/Keshaini/MEDITRACK-sub000/internal/identity/service"
	"github.com/Keshaini/MEDITRACK-sub000/internal/logging"
	"github.com/Keshaini/MEDITRACK-sub000/internal/mocks"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var fallbackPolicy = domain.LockoutPolicy{MaxAttempts: 5, LockoutMinutes: 15}

func newAccountService(t *testing.T) (*service.AccountService, *mocks.MockAccountRepository,
	*mocks.MockLockoutPolicyRepository, *mocks.MockTokenGenerator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	mockPolicies := mocks.NewMockLockoutPolicyRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	lockout := service.NewLockoutService(mockRepo, mockPolicies, fallbackPolicy, testLogger())
	s := service.NewAccountService(mockRepo, mockTokens, lockout, testLogger())

	return s, mockRepo, mockPolicies, mockTokens
}

func TestAccountService_Register_Success(t *testing.T) {
	s, mockRepo, _, _ := newAccountService(t)

	input := dto.RegisterInput{
		Name:     "Alice Perera",
		Email:    "Alice@Example.com",
		Password: "Secret123!",
		Phone:    "0771234567",
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, account *domain.Account) error {
			assert.Equal(t, "alice@example.com", account.Email)
			assert.Equal(t, "patient", account.Role)
			assert.Equal(t, "verified", account.Status)
			assert.NotEmpty(t, account.ID)
			assert.NotEqual(t, input.Password, account.PasswordHash)
			return nil
		})

	account, err := s.Register(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", account.Email)
	assert.NotZero(t, account.CreatedAt)
}

func TestAccountService_Register_DoctorStartsPending(t *testing.T) {
	s, mockRepo, _, _ := newAccountService(t)

	input := dto.RegisterInput{
		Name:     "Dr. Silva",
		Email:    "silva@example.com",
		Password: "Secret123!",
		Role:     "doctor",
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, account *domain.Account) error {
			assert.Equal(t, "pending", account.Status)
			return nil
		})

	_, err := s.Register(context.Background(), input)
	require.NoError(t, err)
}

func TestAccountService_Register_EmailAlreadyExists(t *testing.T) {
	s, mockRepo, _, _ := newAccountService(t)

	input := dto.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "Secret123!"}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).
		Return(&domain.Account{ID: "existing-id", Email: input.Email}, nil)

	account, err := s.Register(context.Background(), input)

	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyInUse)
	assert.Nil(t, account)
}

func TestAccountService_Register_RetriesOnIDConflict(t *testing.T) {
	s, mockRepo, _, _ := newAccountService(t)

	input := dto.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "Secret123!"}

	var firstID, secondID string
	mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, account *domain.Account) error {
			firstID = account.ID
			return apperrors.ErrAccountIDConflict
		})
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, account *domain.Account) error {
			secondID = account.ID
			return nil
		})

	account, err := s.Register(context.Background(), input)

	require.NoError(t, err)
	assert.NotEqual(t, firstID, secondID)
	assert.Equal(t, secondID, account.ID)
}

func TestAccountService_Register_Validation(t *testing.T) {
	s, _, _, _ := newAccountService(t)

	cases := []struct {
		name  string
		input dto.RegisterInput
	}{
		{"missing name", dto.RegisterInput{Email: "a@example.com", Password: "Secret123!"}},
		{"missing email", dto.RegisterInput{Name: "Alice", Password: "Secret123!"}},
		{"short password", dto.RegisterInput{Name: "Alice", Email: "a@example.com", Password: "short"}},
		{"unknown role", dto.RegisterInput{Name: "Alice", Email: "a@example.com", Password: "Secret123!", Role: "superuser"}},
		{"bad date of birth", dto.RegisterInput{Name: "Alice", Email: "a@example.com", Password: "Secret123!", DateOfBirth: "31-12-1990"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), tc.input)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func loginAccount(t *testing.T, password string) *domain.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.Account{
		ID:           "account-123",
		Name:         "Alice Perera",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         "patient",
		Status:       "verified",
	}
}

func TestAccountService_Login_Success(t *testing.T) {
	s, mockRepo, mockPolicies, mockTokens := newAccountService(t)

	account := loginAccount(t, "Secret123!")
	input := dto.LoginInput{Email: "alice@example.com", Password: "Secret123!", IPAddress: "10.0.0.1", UserAgent: "test-agent"}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), account.Email).Return(account, nil)
	mockPolicies.EXPECT().GetPolicy(gomock.Any(), "patient").
		Return(&domain.LockoutPolicy{Role: "patient", MaxAttempts: 5, LockoutMinutes: 15}, nil)
	mockRepo.EXPECT().CountRecentFailures(gomock.Any(), account.ID, 15*time.Minute).Return(0, nil)
	mockRepo.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, attempt *domain.LoginAttempt) error {
			assert.True(t, attempt.Successful)
			assert.Equal(t, "10.0.0.1", attempt.IPAddress)
			return nil
		})
	mockRepo.EXPECT().UpdateLastLogin(gomock.Any(), account.ID, gomock.Any()).Return(nil)
	mockTokens.EXPECT().Generate(account.ID, "patient").Return("signed-token", time.Now().Add(time.Hour), nil)

	resp, err := s.Login(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, account.ID, resp.Account.ID)
	assert.Equal(t, "patient", resp.Account.Role)
	assert.NotNil(t, resp.Account.LastLogin)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	s, mockRepo, _, _ := newAccountService(t)

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

	resp, err := s.Login(context.Background(), dto.LoginInput{Email: "ghost@example.com", Password: "whatever1"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Nil(t, resp)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	s, mockRepo, mockPolicies, _ := newAccountService(t)

	account := loginAccount(t, "Secret123!")

	mockRepo.EXPECT().GetByEmail(gomock.Any(), account.Email).Return(account, nil)
	mockPolicies.EXPECT().GetPolicy(gomock.Any(), "patient").Return(nil, nil)
	mockRepo.EXPECT().CountRecentFailures(gomock.Any(), account.ID, 15*time.Minute).Return(2, nil)
	mockRepo.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, attempt *domain.LoginAttempt) error {
			assert.False(t, attempt.Successful)
			return nil
		})

	resp, err := s.Login(context.Background(), dto.LoginInput{Email: account.Email, Password: "WrongPass1"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Nil(t, resp)
}

func TestAccountService_Login_LockedEvenWithCorrectPassword(t *testing.T) {
	s, mockRepo, mockPolicies, _ := newAccountService(t)

	account := loginAccount(t, "Secret123!")

	mockRepo.EXPECT().GetByEmail(gomock.Any(), account.Email).Return(account, nil)
	mockPolicies.EXPECT().GetPolicy(gomock.Any(), "patient").
		Return(&domain.LockoutPolicy{Role: "patient", MaxAttempts: 5, LockoutMinutes: 15}, nil)
	mockRepo.EXPECT().CountRecentFailures(gomock.Any(), account.ID, 15*time.Minute).Return(5, nil)
	mockRepo.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := s.Login(context.Background(), dto.LoginInput{Email: account.Email, Password: "Secret123!"})

	assert.ErrorIs(t, err, apperrors.ErrAccountLocked)
	assert.Nil(t, resp)
}

func TestAccountService_Login_LedgerWriteFailureDoesNotFailLogin(t *testing.T) {
	s, mockRepo, mockPolicies, mockTokens := newAccountService(t)

	account := loginAccount(t, "Secret123!")

	mockRepo.EXPECT().GetByEmail(gomock.Any(), account.Email).Return(account, nil)
	mockPolicies.EXPECT().GetPolicy(gomock.Any(), "patient").Return(nil, nil)
	mockRepo.EXPECT().CountRecentFailures(gomock.Any(), account.ID, 15*time.Minute).Return(0, nil)
	mockRepo.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).Return(errors.New("ledger down"))
	mockRepo.EXPECT().UpdateLastLogin(gomock.Any(), account.ID, gomock.Any()).Return(nil)
	mockTokens.EXPECT().Generate(account.ID, "patient").Return("signed-token", time.Now().Add(time.Hour), nil)

	resp, err := s.Login(context.Background(), dto.LoginInput{Email: account.Email, Password: "Secret123!"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
}

func TestAccountService_Login_TokenGenerationError(t *testing.T) {
	s, mockRepo, mockPolicies, mockTokens := newAccountService(t)

	account := loginAccount(t, "Secret123!")
	expectedErr := errors.New("signing failed")

	mockRepo.EXPECT().GetByEmail(gomock.Any(), account.Email).Return(account, nil)
	mockPolicies.EXPECT().GetPolicy(gomock.Any(), "patient").Return(nil, nil)
	mockRepo.EXPECT().CountRecentFailures(gomock.Any(), account.ID, 15*time.Minute).Return(0, nil)
	mockRepo.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().UpdateLastLogin(gomock.Any(), account.ID, gomock.Any()).Return(nil)
	mockTokens.EXPECT().Generate(account.ID, "patient").Return("", time.Time{}, expectedErr)

	resp, err := s.Login(context.Background(), dto.LoginInput{Email: account.Email, Password: "Secret123!"})

	assert.Equal(t, expectedErr, err)
	assert.Nil(t, resp)
}

func TestAccountService_GetProfile(t *testing.T) {
	s, mockRepo, _, _ := newAccountService(t)

	account := loginAccount(t, "Secret123!")

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), account.ID).Return(account, nil)

		out, err := s.GetProfile(context.Background(), account.ID)
		require.NoError(t, err)
		assert.Equal(t, account.Email, out.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		_, err := s.GetProfile(context.Background(), "missing")
		assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
	})
}

func TestAccountService_UpdateProfile(t *testing.T) {
	s, mockRepo, _, _ := newAccountService(t)

	account := loginAccount(t, "Secret123!")

	mockRepo.EXPECT().GetByID(gomock.Any(), account.ID).Return(account, nil)
	mockRepo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, updated *domain.Account) error {
			assert.Equal(t, "Alice P.", updated.Name)
			assert.Equal(t, "0719999999", updated.Phone)
			return nil
		})

	out, err := s.UpdateProfile(context.Background(), account.ID, dto.UpdateProfileInput{
		Name:  "Alice P.",
		Phone: "0719999999",
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice P.", out.Name)
}
