package store

import (
	"context"

	"hrportal/internal/domain"
)

func (s *Store) GetTask(ctx context.Context, id int) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if task, ok := s.tasks[id]; ok {
		return &task, nil
	}
	return nil, nil
}

func (s *Store) ListTasksByUser(ctx context.Context, userID int) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]domain.Task, 0)
	for _, id := range sortedIDs(s.tasks) {
		if task := s.tasks[id]; task.UserID == userID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (s *Store) CreateTask(ctx context.Context, values map[string]any) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var task domain.Task
	if err := materialize(values, &task); err != nil {
		return nil, err
	}

	s.taskSeq++
	task.ID = s.taskSeq
	now := s.now()
	task.CreatedAt = now
	task.UpdatedAt = now

	s.tasks[task.ID] = task
	return &task, nil
}

func (s *Store) UpdateTask(ctx context.Context, id int, patch map[string]any) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, nil
	}
	if err := merge(&task, patch); err != nil {
		return nil, err
	}
	task.UpdatedAt = s.now()

	s.tasks[id] = task
	return &task, nil
}

// ToggleTaskCompletion flips the completed flag.
func (s *Store) ToggleTaskCompletion(ctx context.Context, id int) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, nil
	}

	task.Completed = !task.Completed
	task.UpdatedAt = s.now()

	s.tasks[id] = task
	return &task, nil
}
