package store

import (
	"context"

	"hrportal/internal/domain"
)

func (s *Store) GetPayroll(ctx context.Context, id int) (*domain.Payroll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if payroll, ok := s.payrolls[id]; ok {
		return &payroll, nil
	}
	return nil, nil
}

func (s *Store) ListPayrollsByEmployee(ctx context.Context, employeeID int) ([]domain.Payroll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payrolls := make([]domain.Payroll, 0)
	for _, id := range sortedIDs(s.payrolls) {
		if payroll := s.payrolls[id]; payroll.EmployeeID == employeeID {
			payrolls = append(payrolls, payroll)
		}
	}
	return payrolls, nil
}

func (s *Store) CreatePayroll(ctx context.Context, values map[string]any) (*domain.Payroll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var payroll domain.Payroll
	if err := materialize(values, &payroll); err != nil {
		return nil, err
	}

	s.payrollSeq++
	payroll.ID = s.payrollSeq

	s.payrolls[payroll.ID] = payroll
	return &payroll, nil
}

func (s *Store) UpdatePayroll(ctx context.Context, id int, patch map[string]any) (*domain.Payroll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payroll, ok := s.payrolls[id]
	if !ok {
		return nil, nil
	}
	if err := merge(&payroll, patch); err != nil {
		return nil, err
	}

	s.payrolls[id] = payroll
	return &payroll, nil
}
