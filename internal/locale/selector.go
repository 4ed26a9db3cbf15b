package locale

import (
	"context"

	"go.uber.org/zap"
)

// Icon is shown next to each language option.
const Icon = "icon-language.svg"

type Option struct {
	Value  string
	Label  string
	Icon   string
	Active bool
}

// Selector lists the preloaded languages of a Runtime and applies the user's
// choice to it.
type Selector struct {
	runtime Runtime
	logger  *zap.Logger
}

func NewSelector(runtime Runtime, logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{runtime: runtime, logger: logger}
}

func (s *Selector) Current() string {
	return s.runtime.Language()
}

func (s *Selector) Options() []Option {
	current := normalizeCode(s.runtime.Language())
	preloaded := s.runtime.Preloaded()

	options := make([]Option, 0, len(preloaded))
	for _, code := range preloaded {
		options = append(options, Option{
			Value:  code,
			Label:  Label(code),
			Icon:   Icon,
			Active: normalizeCode(code) == current,
		})
	}
	return options
}

// Select asks the runtime to switch to code without waiting for it. A failed
// change is logged and otherwise ignored. The returned channel is closed once
// the attempt has finished.
func (s *Selector) Select(ctx context.Context, code string) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("language change panicked", zap.String("language", code), zap.Any("panic", r))
			}
		}()

		if err := s.runtime.ChangeLanguage(ctx, code); err != nil {
			s.logger.Error("Error changing language", zap.String("language", code), zap.Error(err))
			return
		}
		s.logger.Debug("language changed", zap.String("language", code))
	}()

	return done
}
