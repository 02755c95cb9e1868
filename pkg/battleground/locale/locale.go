// Package locale provides the localized captions shown over the scene.
package locale

import (
	"embed"
	"fmt"
	"path"

	"github.com/BrandonKowalski/battleground/pkg/battleground/theme"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localesFS embed.FS

const promptID = "selector_prompt"

const defaultPrompt = "Choose Your Battleground"

// Catalog localizes captions into one language, falling back to English
// and then to the text the caller supplies.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
}

// New loads the embedded translations and selects lang. An empty lang
// selects English.
func New(lang string) (*Catalog, error) {
	tag := language.English
	if lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("locale: %q: %w", lang, err)
		}
		tag = parsed
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localesFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("locale: read embedded locales: %w", err)
	}
	for _, e := range entries {
		p := path.Join("locales", e.Name())
		data, err := localesFS.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("locale: read %s: %w", p, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, p); err != nil {
			return nil, fmt.Errorf("locale: parse %s: %w", p, err)
		}
	}

	return &Catalog{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		tag:       tag,
	}, nil
}

// Language returns the requested language.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Languages returns the languages with embedded translations.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

func (c *Catalog) localize(id, fallback string) string {
	s, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || s == "" {
		return fallback
	}
	return s
}

// Prompt returns the heading shown above the theme selector.
func (c *Catalog) Prompt() string {
	return c.localize(promptID, defaultPrompt)
}

// Caption returns the title and localized subtitle of def. Titles are brand
// names and are never translated.
func (c *Catalog) Caption(def theme.Definition) (string, string) {
	return def.Title, c.localize(def.Key+"_subtitle", def.Subtitle)
}
