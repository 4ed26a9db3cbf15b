package locale_test

import (
	"context"
	"sync"
	"testing"

	"github.com/lindenb1/impress/internal/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNewStore(t *testing.T) {
	store, err := locale.NewStore([]string{"en", "fr"}, "fr")
	require.NoError(t, err)
	assert.Equal(t, "fr", store.Language())
	assert.Equal(t, []string{"en", "fr"}, store.Preloaded())

	store, err = locale.NewStore([]string{"en", "fr"}, "ja")
	require.NoError(t, err)
	assert.Equal(t, "en", store.Language())

	_, err = locale.NewStore(nil, "en")
	assert.Error(t, err)

	_, err = locale.NewStore([]string{"not a tag!"}, "en")
	assert.Error(t, err)
}

func TestStore_ChangeLanguage(t *testing.T) {
	store, err := locale.NewStore([]string{"en", "fr"}, "en")
	require.NoError(t, err)

	var changes []language.Tag
	store.Subscribe(func(tag language.Tag) { changes = append(changes, tag) })

	require.NoError(t, store.ChangeLanguage(context.Background(), "fr"))
	assert.Equal(t, "fr", store.Language())
	assert.Equal(t, []language.Tag{language.French}, changes)

	assert.Error(t, store.ChangeLanguage(context.Background(), "de"))
	assert.Error(t, store.ChangeLanguage(context.Background(), "??"))
	assert.Equal(t, "fr", store.Language())
	assert.Len(t, changes, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, store.ChangeLanguage(ctx, "en"), context.Canceled)
	assert.Equal(t, "fr", store.Language())
}

func TestStore_Printer(t *testing.T) {
	store, err := locale.NewStore([]string{"en", "nl"}, "nl")
	require.NoError(t, err)
	assert.Equal(t, "Taal", store.Printer().Sprintf("Language"))
}

func TestStore_ConcurrentChangesNotifyFinalLanguage(t *testing.T) {
	store, err := locale.NewStore([]string{"en", "fr", "de", "nl"}, "en")
	require.NoError(t, err)

	var (
		mu   sync.Mutex
		last language.Tag
	)
	store.Subscribe(func(tag language.Tag) {
		mu.Lock()
		last = tag
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		code := []string{"en", "fr", "de", "nl"}[i%4]
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.ChangeLanguage(context.Background(), code))
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, store.Tag(), last)
}
