package store

import (
	"context"

	"hrportal/internal/domain"
)

// GetUser returns nil when no user has the id; a missing record is not an
// error anywhere in this store.
func (s *Store) GetUser(ctx context.Context, id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if user, ok := s.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

// GetUserByUsername returns the first match; username uniqueness is a
// data-entry convention, not enforced here.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedIDs(s.users) {
		if user := s.users[id]; user.Username == username {
			return &user, nil
		}
	}
	return nil, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedIDs(s.users) {
		if user := s.users[id]; user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateUser(ctx context.Context, values map[string]any) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user domain.User
	if err := materialize(values, &user); err != nil {
		return nil, err
	}

	s.userSeq++
	user.ID = s.userSeq
	now := s.now()
	user.CreatedAt = now
	user.UpdatedAt = now

	s.users[user.ID] = user
	return &user, nil
}

func (s *Store) UpdateUser(ctx context.Context, id int, patch map[string]any) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	if err := merge(&user, patch); err != nil {
		return nil, err
	}
	user.UpdatedAt = s.now()

	s.users[id] = user
	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, 0, len(s.users))
	for _, id := range sortedIDs(s.users) {
		users = append(users, s.users[id])
	}
	return users, nil
}
