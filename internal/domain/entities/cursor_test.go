package entities_test

import (
	"testing"
	"time"

	"github.com/lindenb1/impress/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_RoundTrip(t *testing.T) {
	c := entities.Cursor{
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 123, time.UTC),
		ID:        "0f8fad5b-d9cb-469f-a165-70867728950e",
	}

	got, err := entities.DecodeCursor(entities.EncodeCursor(c))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, c.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, c.ID, got.ID)
}

func TestDecodeCursor(t *testing.T) {
	got, err := entities.DecodeCursor("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = entities.DecodeCursor("%%%")
	assert.Error(t, err)

	_, err = entities.DecodeCursor("e30") // {}
	assert.Error(t, err)
}

func TestAccessPage_HasNext(t *testing.T) {
	assert.False(t, entities.AccessPage{}.HasNext())
	assert.True(t, entities.AccessPage{Next: "abc"}.HasNext())
}
