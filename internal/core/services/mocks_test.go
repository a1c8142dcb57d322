package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/advisor_client_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByClientID(ctx context.Context, clientID string) (*domain.User, error) {
	args := m.Called(ctx, clientID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsersByIDs(ctx context.Context, userIDs []int64) ([]domain.User, error) {
	args := m.Called(ctx, userIDs)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) FindAdvisors(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AdvisorIDExists(ctx context.Context, advisorID string) (bool, error) {
	args := m.Called(ctx, advisorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ClientIDExists(ctx context.Context, clientID string) (bool, error) {
	args := m.Called(ctx, clientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID int64, hash, salt []byte, clearResetToken bool, modifiedAt time.Time) error {
	args := m.Called(ctx, userID, hash, salt, clearResetToken, modifiedAt)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateResetToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, token, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID int64, modifiedAt time.Time, modifiedBy string) error {
	args := m.Called(ctx, userID, modifiedAt, modifiedBy)
	return args.Error(0)
}

// --- Mock AdvisorClientRepository ---
type MockAdvisorClientRepository struct {
	mock.Mock
}

func (m *MockAdvisorClientRepository) FindClientIDsForAdvisor(ctx context.Context, advisorUserID int64) ([]int64, error) {
	args := m.Called(ctx, advisorUserID)
	var ids []int64
	if args.Get(0) != nil {
		ids = args.Get(0).([]int64)
	}
	return ids, args.Error(1)
}

func (m *MockAdvisorClientRepository) CreateLinkedClient(ctx context.Context, client domain.User, advisorUserID int64) (*domain.AdvisorClient, error) {
	args := m.Called(ctx, client, advisorUserID)
	var link *domain.AdvisorClient
	if args.Get(0) != nil {
		link = args.Get(0).(*domain.AdvisorClient)
	}
	return link, args.Error(1)
}

// --- Mock CredentialService ---
type MockCredentialService struct {
	mock.Mock
}

func (m *MockCredentialService) HashPassword(password string) ([]byte, []byte, error) {
	args := m.Called(password)
	var hash, salt []byte
	if args.Get(0) != nil {
		hash = args.Get(0).([]byte)
	}
	if args.Get(1) != nil {
		salt = args.Get(1).([]byte)
	}
	return hash, salt, args.Error(2)
}

func (m *MockCredentialService) VerifyPassword(password string, hash, salt []byte) bool {
	args := m.Called(password, hash, salt)
	return args.Bool(0)
}

func (m *MockCredentialService) IssueSessionToken(ctx context.Context, user *domain.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockCredentialService) GenerateOneTimeToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockCredentialService) GenerateAdvisorID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockCredentialService) GenerateClientID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// --- Mock EmailSender ---
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendEmail(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}
