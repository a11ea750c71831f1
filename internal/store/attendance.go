package store

import (
	"context"
	"time"

	"hrportal/internal/domain"
)

func (s *Store) GetAttendance(ctx context.Context, id int) (*domain.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if record, ok := s.attendance[id]; ok {
		return &record, nil
	}
	return nil, nil
}

func (s *Store) ListAttendanceByEmployee(ctx context.Context, employeeID int) ([]domain.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.Attendance, 0)
	for _, id := range sortedIDs(s.attendance) {
		if record := s.attendance[id]; record.EmployeeID == employeeID {
			records = append(records, record)
		}
	}
	return records, nil
}

// ListAttendanceByDate matches on the calendar date only; the time of day of
// the argument is ignored.
func (s *Store) ListAttendanceByDate(ctx context.Context, date time.Time) ([]domain.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	day := date.Format("2006-01-02")
	records := make([]domain.Attendance, 0)
	for _, id := range sortedIDs(s.attendance) {
		if record := s.attendance[id]; record.Date == day {
			records = append(records, record)
		}
	}
	return records, nil
}

func (s *Store) CreateAttendance(ctx context.Context, values map[string]any) (*domain.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var record domain.Attendance
	if err := materialize(values, &record); err != nil {
		return nil, err
	}

	s.attendanceSeq++
	record.ID = s.attendanceSeq

	s.attendance[record.ID] = record
	return &record, nil
}

func (s *Store) UpdateAttendance(ctx context.Context, id int, patch map[string]any) (*domain.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.attendance[id]
	if !ok {
		return nil, nil
	}
	if err := merge(&record, patch); err != nil {
		return nil, err
	}

	s.attendance[id] = record
	return &record, nil
}
