package store

import (
	"context"

	"hrportal/internal/domain"
)

func (s *Store) GetLeave(ctx context.Context, id int) (*domain.Leave, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if leave, ok := s.leaves[id]; ok {
		return &leave, nil
	}
	return nil, nil
}

func (s *Store) ListLeavesByEmployee(ctx context.Context, employeeID int) ([]domain.Leave, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	leaves := make([]domain.Leave, 0)
	for _, id := range sortedIDs(s.leaves) {
		if leave := s.leaves[id]; leave.EmployeeID == employeeID {
			leaves = append(leaves, leave)
		}
	}
	return leaves, nil
}

func (s *Store) CreateLeave(ctx context.Context, values map[string]any) (*domain.Leave, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var leave domain.Leave
	if err := materialize(values, &leave); err != nil {
		return nil, err
	}

	s.leaveSeq++
	leave.ID = s.leaveSeq
	now := s.now()
	leave.CreatedAt = now
	leave.UpdatedAt = now

	s.leaves[leave.ID] = leave
	return &leave, nil
}

// UpdateLeaveStatus sets the status and, when given, records the approving
// user. Any declared status is accepted regardless of the current one; the
// transition table is deliberately not enforced.
func (s *Store) UpdateLeaveStatus(ctx context.Context, id int, status string, approvedBy *int) (*domain.Leave, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	leave, ok := s.leaves[id]
	if !ok {
		return nil, nil
	}

	leave.Status = status
	leave.ApprovedBy = approvedBy
	leave.UpdatedAt = s.now()

	s.leaves[id] = leave
	return &leave, nil
}
