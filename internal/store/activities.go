package store

import (
	"context"
	"sort"

	"hrportal/internal/domain"
)

func (s *Store) GetActivity(ctx context.Context, id int) (*domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if activity, ok := s.activities[id]; ok {
		return &activity, nil
	}
	return nil, nil
}

func (s *Store) ListActivitiesByEmployee(ctx context.Context, employeeID int) ([]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activities := make([]domain.Activity, 0)
	for _, id := range sortedIDs(s.activities) {
		if activity := s.activities[id]; activity.EmployeeID == employeeID {
			activities = append(activities, activity)
		}
	}
	return activities, nil
}

// ListRecentActivities returns the newest activities first, at most limit of
// them. Ties on date fall back to newest id first.
func (s *Store) ListRecentActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activities := make([]domain.Activity, 0, len(s.activities))
	for _, activity := range s.activities {
		activities = append(activities, activity)
	}
	sort.Slice(activities, func(i, j int) bool {
		if activities[i].Date.Equal(activities[j].Date) {
			return activities[i].ID > activities[j].ID
		}
		return activities[i].Date.After(activities[j].Date)
	})

	if limit >= 0 && len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}

// CreateActivity stamps the activity date itself; it is immutable once set.
func (s *Store) CreateActivity(ctx context.Context, values map[string]any) (*domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var activity domain.Activity
	if err := materialize(values, &activity); err != nil {
		return nil, err
	}

	s.activitySeq++
	activity.ID = s.activitySeq
	activity.Date = s.now()

	s.activities[activity.ID] = activity
	return &activity, nil
}

func (s *Store) UpdateActivityStatus(ctx context.Context, id int, status string) (*domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[id]
	if !ok {
		return nil, nil
	}

	activity.Status = status

	s.activities[id] = activity
	return &activity, nil
}
