package store

import (
	"context"
	"sort"

	"hrportal/internal/domain"
)

func (s *Store) GetAnnouncement(ctx context.Context, id int) (*domain.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if announcement, ok := s.announcements[id]; ok {
		return &announcement, nil
	}
	return nil, nil
}

func (s *Store) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	announcements := make([]domain.Announcement, 0, len(s.announcements))
	for _, id := range sortedIDs(s.announcements) {
		announcements = append(announcements, s.announcements[id])
	}
	return announcements, nil
}

func (s *Store) ListRecentAnnouncements(ctx context.Context, limit int) ([]domain.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	announcements := make([]domain.Announcement, 0, len(s.announcements))
	for _, announcement := range s.announcements {
		announcements = append(announcements, announcement)
	}
	sort.Slice(announcements, func(i, j int) bool {
		if announcements[i].PostDate.Equal(announcements[j].PostDate) {
			return announcements[i].ID > announcements[j].ID
		}
		return announcements[i].PostDate.After(announcements[j].PostDate)
	})

	if limit >= 0 && len(announcements) > limit {
		announcements = announcements[:limit]
	}
	return announcements, nil
}

// CreateAnnouncement stamps the post date; announcements are immutable after
// creation, so there is no update path.
func (s *Store) CreateAnnouncement(ctx context.Context, values map[string]any) (*domain.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var announcement domain.Announcement
	if err := materialize(values, &announcement); err != nil {
		return nil, err
	}

	s.announcementSeq++
	announcement.ID = s.announcementSeq
	announcement.PostDate = s.now()

	s.announcements[announcement.ID] = announcement
	return &announcement, nil
}

func (s *Store) GetEvent(ctx context.Context, id int) (*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if event, ok := s.events[id]; ok {
		return &event, nil
	}
	return nil, nil
}

func (s *Store) ListEvents(ctx context.Context) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]domain.Event, 0, len(s.events))
	for _, id := range sortedIDs(s.events) {
		events = append(events, s.events[id])
	}
	return events, nil
}

// ListUpcomingEvents returns events whose start is strictly after now at call
// time, soonest first, capped at limit.
func (s *Store) ListUpcomingEvents(ctx context.Context, limit int) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	events := make([]domain.Event, 0)
	for _, event := range s.events {
		if event.StartDate.After(now) {
			events = append(events, event)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].StartDate.Equal(events[j].StartDate) {
			return events[i].ID < events[j].ID
		}
		return events[i].StartDate.Before(events[j].StartDate)
	})

	if limit >= 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

func (s *Store) CreateEvent(ctx context.Context, values map[string]any) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var event domain.Event
	if err := materialize(values, &event); err != nil {
		return nil, err
	}

	s.eventSeq++
	event.ID = s.eventSeq
	event.CreatedAt = s.now()

	s.events[event.ID] = event
	return &event, nil
}
