package store

import (
	"context"

	"hrportal/internal/domain"
)

func (s *Store) GetDocument(ctx context.Context, id int) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if document, ok := s.documents[id]; ok {
		return &document, nil
	}
	return nil, nil
}

func (s *Store) ListDocumentsByEmployee(ctx context.Context, employeeID int) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	documents := make([]domain.Document, 0)
	for _, id := range sortedIDs(s.documents) {
		if document := s.documents[id]; document.EmployeeID == employeeID {
			documents = append(documents, document)
		}
	}
	return documents, nil
}

func (s *Store) CreateDocument(ctx context.Context, values map[string]any) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var document domain.Document
	if err := materialize(values, &document); err != nil {
		return nil, err
	}

	s.documentSeq++
	document.ID = s.documentSeq
	document.UploadDate = s.now()

	s.documents[document.ID] = document
	return &document, nil
}

// DeleteDocument reports whether a record existed and was removed. Deleting a
// document never cascades.
func (s *Store) DeleteDocument(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[id]; !ok {
		return false, nil
	}
	delete(s.documents, id)
	return true, nil
}
