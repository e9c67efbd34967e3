package lessons

import (
	"context"
	"fmt"
	"sync"
)

// Loader fetches a lesson's static structure from persistence.
type Loader interface {
	LoadLessonStructure(ctx context.Context, lessonID string) (*Structure, error)
}

// Service caches lesson structures by lesson id. Structures never change
// during a replay, so each lesson is fetched at most once per process.
type Service struct {
	loader Loader

	mu    sync.Mutex
	cache map[string]*Structure
}

// NewService creates a lesson structure cache backed by loader.
func NewService(loader Loader) *Service {
	return &Service{
		loader: loader,
		cache:  make(map[string]*Structure),
	}
}

// Structure returns the lesson structure for lessonID, fetching it on first
// use. Load failures are not cached; a later call retries.
func (s *Service) Structure(ctx context.Context, lessonID string) (*Structure, error) {
	s.mu.Lock()
	if st, ok := s.cache[lessonID]; ok {
		s.mu.Unlock()
		return st, nil
	}
	s.mu.Unlock()

	st, err := s.loader.LoadLessonStructure(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("load lesson structure %s: %w", lessonID, err)
	}

	s.mu.Lock()
	s.cache[lessonID] = st
	s.mu.Unlock()
	return st, nil
}
