package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/advisor_client_app/internal/apperrors"
	"github.com/SscSPs/advisor_client_app/internal/core/domain"
)

// memoryStore is an in-memory user and link store that honours the repository contracts,
// used to drive whole flows through the real services.
type memoryStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]domain.User
	links  []domain.AdvisorClient
}

func newMemoryStore() *memoryStore {
	return &memoryStore{users: make(map[int64]domain.User)}
}

func (s *memoryStore) find(match func(domain.User) bool) (*domain.User, error) {
	for _, u := range s.users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *memoryStore) FindUserByID(_ context.Context, userID int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(func(u domain.User) bool { return u.UserID == userID })
}

func (s *memoryStore) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(func(u domain.User) bool { return u.Email == email })
}

func (s *memoryStore) FindUserByClientID(_ context.Context, clientID string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(func(u domain.User) bool { return u.ClientIDOrEmpty() == clientID })
}

func (s *memoryStore) FindUsersByIDs(_ context.Context, userIDs []int64) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.User
	for _, id := range userIDs {
		if u, ok := s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *memoryStore) FindAdvisors(_ context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.User
	for id := int64(1); id <= s.nextID; id++ {
		u, ok := s.users[id]
		if ok && u.IsAdvisor() && !u.Deleted {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *memoryStore) EmailExists(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.find(func(u domain.User) bool { return u.Email == email })
	return err == nil, nil
}

func (s *memoryStore) AdvisorIDExists(_ context.Context, advisorID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.find(func(u domain.User) bool { return u.AdvisorIDOrEmpty() == advisorID })
	return err == nil, nil
}

func (s *memoryStore) ClientIDExists(_ context.Context, clientID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.find(func(u domain.User) bool { return u.ClientIDOrEmpty() == clientID })
	return err == nil, nil
}

func (s *memoryStore) insert(user domain.User) (int64, error) {
	for _, u := range s.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrDuplicateEmail
		}
		if user.AdvisorID != nil && u.AdvisorIDOrEmpty() == *user.AdvisorID {
			return 0, apperrors.ErrIdentifierConflict
		}
		if user.ClientID != nil && u.ClientIDOrEmpty() == *user.ClientID {
			return 0, apperrors.ErrIdentifierConflict
		}
	}
	s.nextID++
	user.UserID = s.nextID
	s.users[user.UserID] = user
	return user.UserID, nil
}

func (s *memoryStore) SaveUser(_ context.Context, user domain.User) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(user)
}

func (s *memoryStore) UpdateProfile(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.UserID]; !ok {
		return apperrors.ErrNotFound
	}
	s.users[user.UserID] = user
	return nil
}

func (s *memoryStore) UpdatePassword(_ context.Context, userID int64, hash, salt []byte, clearResetToken bool, modifiedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.PasswordHash, u.PasswordSalt = hash, salt
	u.ModifiedDate = modifiedAt
	if clearResetToken {
		u.PasswordResetToken = nil
		u.ResetTokenExpires = nil
	}
	s.users[userID] = u
	return nil
}

func (s *memoryStore) UpdateResetToken(_ context.Context, userID int64, token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.PasswordResetToken = &token
	u.ResetTokenExpires = &expiresAt
	s.users[userID] = u
	return nil
}

func (s *memoryStore) MarkUserDeleted(_ context.Context, userID int64, modifiedAt time.Time, modifiedBy string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.Deleted, u.Active = true, false
	u.ModifiedDate, u.ModifiedBy = modifiedAt, modifiedBy
	s.users[userID] = u
	return nil
}

func (s *memoryStore) FindClientIDsForAdvisor(_ context.Context, advisorUserID int64) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []int64
	for _, l := range s.links {
		if l.AdvisorID == advisorUserID {
			ids = append(ids, l.ClientID)
		}
	}
	return ids, nil
}

func (s *memoryStore) CreateLinkedClient(_ context.Context, client domain.User, advisorUserID int64) (*domain.AdvisorClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.insert(client)
	if err != nil {
		return nil, err
	}
	link := domain.AdvisorClient{ID: int64(len(s.links) + 1), AdvisorID: advisorUserID, ClientID: id}
	s.links = append(s.links, link)
	return &link, nil
}
