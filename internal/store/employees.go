package store

import (
	"context"

	"hrportal/internal/domain"
)

func (s *Store) GetEmployee(ctx context.Context, id int) (*domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if employee, ok := s.employees[id]; ok {
		return &employee, nil
	}
	return nil, nil
}

// GetEmployeeByUserID resolves the soft 1:1 between users and employees,
// first match wins.
func (s *Store) GetEmployeeByUserID(ctx context.Context, userID int) (*domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedIDs(s.employees) {
		if employee := s.employees[id]; employee.UserID == userID {
			return &employee, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateEmployee(ctx context.Context, values map[string]any) (*domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var employee domain.Employee
	if err := materialize(values, &employee); err != nil {
		return nil, err
	}

	s.employeeSeq++
	employee.ID = s.employeeSeq
	now := s.now()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	s.employees[employee.ID] = employee
	return &employee, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, id int, patch map[string]any) (*domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	employee, ok := s.employees[id]
	if !ok {
		return nil, nil
	}
	if err := merge(&employee, patch); err != nil {
		return nil, err
	}
	employee.UpdatedAt = s.now()

	s.employees[id] = employee
	return &employee, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	employees := make([]domain.Employee, 0, len(s.employees))
	for _, id := range sortedIDs(s.employees) {
		employees = append(employees, s.employees[id])
	}
	return employees, nil
}
