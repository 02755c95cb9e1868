// Package theme holds the static table of theme definitions and the single
// authoritative selector of which one is active.
package theme

import (
	"bytes"
	_ "embed"
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/core/colors"
	"github.com/BrandonKowalski/battleground/pkg/battleground/media"
	"gopkg.in/yaml.v3"
)

// Keys of the built-in themes.
const (
	Underwater = "underwater"
	Space      = "space"
)

// DefaultKey is the theme active at startup.
const DefaultKey = Underwater

//go:embed themes.yaml
var embeddedThemes []byte

// Definition is an immutable theme record.
type Definition struct {
	Key                 string
	SkyColor            color.RGBA
	SunColor            color.RGBA
	GroundColor         color.RGBA
	TextColor           color.RGBA
	Title               string
	Subtitle            string
	DepthOfFieldEnabled bool
	BackgroundVideoRef  media.Ref
	TitleFontRef        media.Ref
}

// Registry is a read-only table of definitions keyed by theme key.
type Registry struct {
	keys []string
	defs map[string]Definition
}

// NewRegistry builds a registry from defs. Registration order is kept.
func NewRegistry(defs ...Definition) (*Registry, error) {
	if len(defs) == 0 {
		return nil, &InvalidDefinitionError{Reason: "registry needs at least one theme"}
	}

	r := &Registry{
		keys: make([]string, 0, len(defs)),
		defs: make(map[string]Definition, len(defs)),
	}

	for _, d := range defs {
		if d.Key == "" {
			return nil, &InvalidDefinitionError{Field: "key", Reason: "empty"}
		}
		if _, exists := r.defs[d.Key]; exists {
			return nil, &InvalidDefinitionError{Key: d.Key, Field: "key", Reason: "duplicate"}
		}
		r.keys = append(r.keys, d.Key)
		r.defs[d.Key] = d
	}

	return r, nil
}

// Get returns the definition for key or an *UnknownThemeError.
func (r *Registry) Get(key string) (Definition, error) {
	d, ok := r.defs[key]
	if !ok {
		return Definition{}, &UnknownThemeError{Key: key}
	}
	return d, nil
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.defs[key]
	return ok
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of registered themes.
func (r *Registry) Len() int {
	return len(r.keys)
}

// Index returns the registration position of key, or -1.
func (r *Registry) Index(key string) int {
	for i, k := range r.keys {
		if k == key {
			return i
		}
	}
	return -1
}

type themeFile struct {
	Themes []themeEntry `yaml:"themes"`
}

type themeEntry struct {
	Key          string `yaml:"key"`
	Sky          string `yaml:"sky"`
	Sun          string `yaml:"sun"`
	Ground       string `yaml:"ground"`
	Text         string `yaml:"text"`
	Title        string `yaml:"title"`
	Subtitle     string `yaml:"subtitle"`
	DepthOfField bool   `yaml:"depth_of_field"`
	Video        string `yaml:"video"`
	Font         string `yaml:"font"`
}

// Default returns the registry of built-in themes.
func Default() (*Registry, error) {
	return Parse(embeddedThemes)
}

// Parse builds a registry from a YAML theme table.
func Parse(data []byte) (*Registry, error) {
	var file themeFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("theme: decode table: %w", err)
	}

	defs := make([]Definition, 0, len(file.Themes))
	for _, e := range file.Themes {
		d, err := e.definition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}

	return NewRegistry(defs...)
}

func (e themeEntry) definition() (Definition, error) {
	d := Definition{
		Key:                 e.Key,
		Title:               e.Title,
		Subtitle:            e.Subtitle,
		DepthOfFieldEnabled: e.DepthOfField,
		BackgroundVideoRef:  media.Ref(e.Video),
		TitleFontRef:        media.Ref(e.Font),
	}

	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"sky", e.Sky, &d.SkyColor},
		{"sun", e.Sun, &d.SunColor},
		{"ground", e.Ground, &d.GroundColor},
		{"text", e.Text, &d.TextColor},
	}

	for _, f := range fields {
		c, err := parseColor(f.hex)
		if err != nil {
			return Definition{}, &InvalidDefinitionError{Key: e.Key, Field: f.name, Reason: err.Error()}
		}
		*f.dst = c
	}

	return d, nil
}

// parseColor accepts #RGB, #RRGGBB and #RRGGBBAA.
func parseColor(hex string) (color.RGBA, error) {
	digits := strings.TrimPrefix(hex, "#")
	if digits == "" || strings.Trim(digits, "0123456789abcdefABCDEF") != "" {
		return color.RGBA{}, fmt.Errorf("malformed color %q", hex)
	}
	return colors.FromHex(digits)
}
