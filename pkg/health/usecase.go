package health

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
}

// NotReadyError lists every dependency whose check failed, keyed by checker name.
type NotReadyError struct {
	Failures map[string]error
}

func (e *NotReadyError) Error() string {
	names := make([]string, 0, len(e.Failures))
	for name := range e.Failures {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %v", name, e.Failures[name]))
	}
	return strings.Join(parts, "; ")
}

func (e *NotReadyError) Unwrap() []error {
	out := make([]error, 0, len(e.Failures))
	for _, err := range e.Failures {
		out = append(out, err)
	}
	return out
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers.
func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

// Ready runs all checks concurrently and reports every failure at once.
func (s *service) Ready(ctx context.Context) error {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		failures = map[string]error{}
	)
	for _, ch := range s.checkers {
		wg.Add(1)
		go func(ch Checker) {
			defer wg.Done()
			if err := ch.Check(ctx); err != nil {
				mu.Lock()
				failures[ch.Name()] = err
				mu.Unlock()
			}
		}(ch)
	}
	wg.Wait()

	if len(failures) == 0 {
		return nil
	}
	return &NotReadyError{Failures: failures}
}
