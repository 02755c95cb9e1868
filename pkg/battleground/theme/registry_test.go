package theme

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/BrandonKowalski/battleground/pkg/battleground/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{Underwater, Space}, reg.Keys())

	tests := []struct {
		key    string
		sky    color.RGBA
		ground color.RGBA
		text   color.RGBA
		title  string
		dof    bool
		video  media.Ref
	}{
		{
			key:    Underwater,
			sky:    color.RGBA{0x00, 0x69, 0x94, 0xff},
			ground: color.RGBA{0x00, 0x69, 0x94, 0xff},
			text:   color.RGBA{0x00, 0xff, 0xff, 0xff},
			title:  "VALORANT",
			dof:    true,
			video:  "valo.mp4",
		},
		{
			key:    Space,
			sky:    color.RGBA{0x00, 0x00, 0x00, 0xff},
			ground: color.RGBA{0x1c, 0x1c, 0x1c, 0xff},
			text:   color.RGBA{0xff, 0xd7, 0x00, 0xff},
			title:  "BGMI",
			dof:    false,
			video:  "pubg.mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			d, err := reg.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.key, d.Key)
			assert.Equal(t, tt.sky, d.SkyColor)
			assert.Equal(t, color.RGBA{0xfd, 0xb8, 0x13, 0xff}, d.SunColor)
			assert.Equal(t, tt.ground, d.GroundColor)
			assert.Equal(t, tt.text, d.TextColor)
			assert.Equal(t, tt.title, d.Title)
			assert.Equal(t, tt.dof, d.DepthOfFieldEnabled)
			assert.Equal(t, tt.video, d.BackgroundVideoRef)
			assert.NotEmpty(t, d.TitleFontRef)
		})
	}
}

func TestRegistryUnknownKey(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	_, err = reg.Get("nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTheme)

	var ute *UnknownThemeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "nonexistent", ute.Key)
}

func TestRegistryKeysIsACopy(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	keys := reg.Keys()
	keys[0] = "mutated"
	assert.Equal(t, Underwater, reg.Keys()[0])
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(Definition{Key: "a"}, Definition{Key: "a"})
	var ide *InvalidDefinitionError
	require.ErrorAs(t, err, &ide)
	assert.Equal(t, "a", ide.Key)

	_, err = NewRegistry()
	assert.Error(t, err)

	_, err = NewRegistry(Definition{})
	assert.Error(t, err)
}

func TestParseRejectsMalformedColor(t *testing.T) {
	tests := []struct {
		name string
		sky  string
	}{
		{"bad length", "#12345"},
		{"bad digit", "#12345G"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := fmt.Sprintf(`themes:
  - key: broken
    sky: %q
    sun: "#FDB813"
    ground: "#000"
    text: "#FFFFFF"
`, tt.sky)
			_, err := Parse([]byte(data))
			var ide *InvalidDefinitionError
			require.ErrorAs(t, err, &ide)
			assert.Equal(t, "sky", ide.Field)
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("themes:\n  - key: a\n    skyy: \"#000\"\n"))
	assert.Error(t, err)
}

func ExampleRegistry_Keys() {
	reg, _ := Default()
	for _, key := range reg.Keys() {
		d, _ := reg.Get(key)
		fmt.Println(key, d.Title)
	}
	// Output:
	// underwater VALORANT
	// space BGMI
}
