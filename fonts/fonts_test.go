package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(20))

	assert.True(t, Loaded(HUD))
	assert.True(t, Loaded(Debug))
	assert.NotNil(t, HUD.Get())
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	err := LoadFont("broken", []byte("not a font"))
	assert.Error(t, err)
	assert.False(t, Loaded("broken"))
}

func TestGetUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
