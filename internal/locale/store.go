package locale

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Runtime holds the process-wide language state.
type Runtime interface {
	Language() string
	Preloaded() []string
	ChangeLanguage(ctx context.Context, code string) error
}

// Store is the in-process Runtime. The preloaded set is fixed at creation.
type Store struct {
	notifyMu  sync.Mutex
	mu        sync.RWMutex
	current   language.Tag
	preloaded []language.Tag
	listeners []func(language.Tag)
}

// NewStore parses the preloaded codes and selects current, falling back to
// the first preloaded language when current is not one of them.
func NewStore(preloaded []string, current string) (*Store, error) {
	if len(preloaded) == 0 {
		return nil, fmt.Errorf("at least one language must be preloaded")
	}

	tags := make([]language.Tag, 0, len(preloaded))
	for _, code := range preloaded {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("invalid preloaded language %q: %w", code, err)
		}
		tags = append(tags, tag)
	}

	s := &Store{current: tags[0], preloaded: tags}
	if tag, err := language.Parse(current); err == nil && slices.Contains(tags, tag) {
		s.current = tag
	}

	return s, nil
}

func (s *Store) Language() string {
	return s.Tag().String()
}

func (s *Store) Tag() language.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) Preloaded() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	codes := make([]string, 0, len(s.preloaded))
	for _, tag := range s.preloaded {
		codes = append(codes, tag.String())
	}
	return codes
}

// ChangeLanguage switches the current language. Only preloaded languages are
// accepted. Listeners run after the switch, one change at a time, and receive
// the language current when they run: after concurrent changes the last
// notification always carries the final language.
func (s *Store) ChangeLanguage(ctx context.Context, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tag, err := language.Parse(code)
	if err != nil {
		return fmt.Errorf("invalid language %q: %w", code, err)
	}

	s.mu.Lock()
	if !slices.Contains(s.preloaded, tag) {
		s.mu.Unlock()
		return fmt.Errorf("language %q is not available", code)
	}
	s.current = tag
	s.mu.Unlock()

	s.notify()

	return nil
}

func (s *Store) notify() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.RLock()
	current := s.current
	listeners := slices.Clone(s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(current)
	}
}

// Subscribe registers fn to be called after every successful change.
func (s *Store) Subscribe(fn func(language.Tag)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Printer returns a message printer for the current language.
func (s *Store) Printer() *message.Printer {
	return message.NewPrinter(s.Tag())
}

var _ Runtime = (*Store)(nil)
