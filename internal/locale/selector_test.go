package locale_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/lindenb1/impress/internal/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeRuntime struct {
	mu        sync.Mutex
	current   string
	preloaded []string
	calls     []string
	err       error
	panicWith any
}

func (f *fakeRuntime) Language() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *fakeRuntime) Preloaded() []string {
	return f.preloaded
}

func (f *fakeRuntime) ChangeLanguage(_ context.Context, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, code)
	if f.panicWith != nil {
		panic(f.panicWith)
	}
	if f.err != nil {
		return f.err
	}
	f.current = code
	return nil
}

func TestSelector_Options(t *testing.T) {
	rt := &fakeRuntime{current: "en", preloaded: []string{"en", "fr", "zz"}}
	sel := locale.NewSelector(rt, nil)

	assert.Equal(t, "en", sel.Current())
	assert.Equal(t, []locale.Option{
		{Value: "en", Label: "English", Icon: locale.Icon, Active: true},
		{Value: "fr", Label: "Français", Icon: locale.Icon},
		{Value: "zz", Label: "zz", Icon: locale.Icon},
	}, sel.Options())

	assert.Empty(t, locale.NewSelector(&fakeRuntime{current: "en"}, nil).Options())
}

func TestSelector_Select(t *testing.T) {
	rt := &fakeRuntime{current: "en", preloaded: []string{"en", "fr"}}
	core, logs := observer.New(zapcore.DebugLevel)
	sel := locale.NewSelector(rt, zap.New(core))

	<-sel.Select(context.Background(), "fr")

	assert.Equal(t, []string{"fr"}, rt.calls)
	assert.Equal(t, "fr", sel.Current())
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestSelector_SelectFailureIsLogged(t *testing.T) {
	rt := &fakeRuntime{current: "en", preloaded: []string{"en", "fr"}, err: errors.New("catalog unavailable")}
	core, logs := observer.New(zapcore.InfoLevel)
	sel := locale.NewSelector(rt, zap.New(core))

	require.NotPanics(t, func() {
		<-sel.Select(context.Background(), "fr")
	})

	assert.Equal(t, []string{"fr"}, rt.calls)
	assert.Equal(t, "en", sel.Current())

	entries := logs.FilterMessage("Error changing language").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "fr", entries[0].ContextMap()["language"])
	assert.Equal(t, "catalog unavailable", entries[0].ContextMap()["error"])
}

func TestSelector_SelectPanicIsContained(t *testing.T) {
	rt := &fakeRuntime{current: "en", preloaded: []string{"en", "fr"}, panicWith: "boom"}
	core, logs := observer.New(zapcore.InfoLevel)
	sel := locale.NewSelector(rt, zap.New(core))

	<-sel.Select(context.Background(), "fr")

	assert.Equal(t, 1, logs.FilterMessage("language change panicked").Len())
}

func TestSelector_WithStore(t *testing.T) {
	store, err := locale.NewStore([]string{"en", "fr"}, "en")
	require.NoError(t, err)
	core, logs := observer.New(zapcore.InfoLevel)
	sel := locale.NewSelector(store, zap.New(core))

	<-sel.Select(context.Background(), "es")
	assert.Equal(t, "en", sel.Current())
	assert.Equal(t, 1, logs.FilterMessage("Error changing language").Len())

	<-sel.Select(context.Background(), "fr")
	assert.Equal(t, "fr", sel.Current())
	assert.True(t, sel.Options()[1].Active)
}
