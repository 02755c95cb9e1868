package locale

import (
	"testing"

	"github.com/BrandonKowalski/battleground/pkg/battleground/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCaptions(t *testing.T) {
	reg, err := theme.Default()
	require.NoError(t, err)
	space, err := reg.Get(theme.Space)
	require.NoError(t, err)

	tests := []struct {
		lang     string
		prompt   string
		subtitle string
	}{
		{"", "Choose Your Battleground", "Battle beyond the stars"},
		{"en", "Choose Your Battleground", "Battle beyond the stars"},
		{"es", "Elige tu campo de batalla", "Batalla más allá de las estrellas"},
		{"es-MX", "Elige tu campo de batalla", "Batalla más allá de las estrellas"},
		{"de", "Choose Your Battleground", "Battle beyond the stars"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			c, err := New(tt.lang)
			require.NoError(t, err)

			assert.Equal(t, tt.prompt, c.Prompt())
			title, subtitle := c.Caption(space)
			assert.Equal(t, "BGMI", title)
			assert.Equal(t, tt.subtitle, subtitle)
		})
	}
}

func TestCaptionFallsBackToDefinition(t *testing.T) {
	c, err := New("es")
	require.NoError(t, err)

	title, subtitle := c.Caption(theme.Definition{Key: "lava", Title: "LAVA", Subtitle: "Feel the heat"})
	assert.Equal(t, "LAVA", title)
	assert.Equal(t, "Feel the heat", subtitle)
}

func TestNewRejectsMalformedLanguage(t *testing.T) {
	_, err := New("not a language")
	assert.Error(t, err)
}

func TestLanguages(t *testing.T) {
	c, err := New("es")
	require.NoError(t, err)
	assert.ElementsMatch(t, []language.Tag{language.English, language.Spanish}, c.Languages())
	assert.Equal(t, language.Spanish, c.Language())
}
