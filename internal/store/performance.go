package store

import (
	"context"

	"hrportal/internal/domain"
)

func (s *Store) GetPerformance(ctx context.Context, id int) (*domain.Performance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if review, ok := s.performances[id]; ok {
		return &review, nil
	}
	return nil, nil
}

func (s *Store) ListPerformancesByEmployee(ctx context.Context, employeeID int) ([]domain.Performance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := make([]domain.Performance, 0)
	for _, id := range sortedIDs(s.performances) {
		if review := s.performances[id]; review.EmployeeID == employeeID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (s *Store) CreatePerformance(ctx context.Context, values map[string]any) (*domain.Performance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var review domain.Performance
	if err := materialize(values, &review); err != nil {
		return nil, err
	}

	s.performanceSeq++
	review.ID = s.performanceSeq
	now := s.now()
	review.CreatedAt = now
	review.UpdatedAt = now

	s.performances[review.ID] = review
	return &review, nil
}

func (s *Store) UpdatePerformance(ctx context.Context, id int, patch map[string]any) (*domain.Performance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	review, ok := s.performances[id]
	if !ok {
		return nil, nil
	}
	if err := merge(&review, patch); err != nil {
		return nil, err
	}
	review.UpdatedAt = s.now()

	s.performances[id] = review
	return &review, nil
}
