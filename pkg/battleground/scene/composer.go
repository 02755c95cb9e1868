package scene

import (
	"image/color"
	"log/slog"
	"strconv"

	"cogentcore.org/core/math32"
	"github.com/BrandonKowalski/battleground/pkg/battleground/theme"
	"github.com/BrandonKowalski/battleground/pkg/battleground/viewport"
)

// DepthOfFieldTunables are the user adjustable DoF values.
type DepthOfFieldTunables struct {
	FocusRange    float32
	FocusDistance float32
	FocalLength   float32
	BokehScale    float32
}

// Config carries the tunables that feed composition.
type Config struct {
	Debug        bool
	Boundary     math32.Vector3
	DepthOfField DepthOfFieldTunables
}

// DefaultConfig returns the stock tunables.
func DefaultConfig() Config {
	return Config{
		Boundary: math32.Vec3(12, 8, 20),
		DepthOfField: DepthOfFieldTunables{
			FocusRange:    3.5,
			FocusDistance: 0.25,
			FocalLength:   0.22,
			BokehScale:    5.5,
		},
	}
}

// Captioner supplies the displayed title and subtitle of a theme.
type Captioner interface {
	Caption(def theme.Definition) (title, subtitle string)
}

// CaptionerFunc adapts a function to Captioner.
type CaptionerFunc func(def theme.Definition) (title, subtitle string)

func (f CaptionerFunc) Caption(def theme.Definition) (string, string) {
	return f(def)
}

var registryCaptions = CaptionerFunc(func(def theme.Definition) (string, string) {
	return def.Title, def.Subtitle
})

var white = color.RGBA{0xff, 0xff, 0xff, 0xff}

// Compose builds the descriptor for themeKey. It fails with an
// *theme.UnknownThemeError when the key is not registered.
func Compose(registry *theme.Registry, captions Captioner, themeKey string, scale viewport.ScaleFactors, cfg Config) (Descriptor, error) {
	def, err := registry.Get(themeKey)
	if err != nil {
		return Descriptor{}, err
	}
	if captions == nil {
		captions = registryCaptions
	}

	sx, sy := scale.ScaleX, scale.ScaleY
	boundary := math32.Vec3(cfg.Boundary.X*sx, cfg.Boundary.Y*sy, cfg.Boundary.Z)

	videoScale := math32.Vec3(5, 5, 5)
	titleScale, subtitleScale := float32(0.008), float32(0.004)
	if scale.Compact {
		videoScale = math32.Vec3(10, 10, 5)
		titleScale, subtitleScale = 0.004, 0.002
	}
	titleScale *= sx
	subtitleScale *= sx

	title, subtitle := captions.Caption(def)

	d := Descriptor{
		ThemeKey:   def.Key,
		Scale:      scale,
		Background: def.SkyColor,
		Boundary: BoundaryBox{
			Size:    boundary,
			Visible: cfg.Debug,
		},
		Ground: Ground{
			Transform: Transform{
				Position: math32.Vec3(0, -boundary.Y/2, 0),
				Rotation: math32.Vec3(-math32.Pi/2, 0, 0),
				Scale:    math32.Vec3(1, 1, 1),
			},
			Width: 100,
			Depth: 100,
			Color: def.GroundColor,
		},
		Fog: Fog{
			Color: def.SkyColor,
			Near:  12,
			Far:   20,
		},
		Hemisphere: HemisphereLight{
			Intensity:   1.35,
			SkyColor:    def.SkyColor,
			GroundColor: def.GroundColor,
		},
		KeyLight: KeyLight{
			Position:      math32.Vec3(0, 0, 5),
			Intensity:     2,
			ShadowMapSize: 2048,
			ShadowNear:    0.1,
			ShadowFar:     10,
			ShadowExtent:  5,
		},
		SpotLight: SpotLight{
			Color:       white,
			Intensity:   2,
			Distance:    10,
			Angle:       0.3,
			Attenuation: 5,
			AnglePower:  5,
			Position:    math32.Vec3(0, 5, 5),
			Target:      math32.Vec3(0, 0, 0),
		},
		Sun: SunDisc{
			Transform: Transform{
				Position: math32.Vec3(0, boundary.Y/4, -10),
				Rotation: math32.Vec3(math32.DegToRad(70), 0, 0),
				Scale:    math32.Vec3(1, 1, 1),
			},
			Radius:   12,
			Segments: 64,
			Color:    def.SunColor,
		},
		Video: VideoPlane{
			Transform: Transform{
				Position: math32.Vec3(0, 0, -1),
				Rotation: math32.Vec3(-0.2, 0, 0),
				Scale:    videoScale,
			},
			Width:  2,
			Height: 1,
			Ref:    def.BackgroundVideoRef,
		},
		Text: TextGroup{
			Title: Text{
				Transform: Transform{
					Position: math32.Vec3(0, 0.5*sy, 0),
					Scale:    math32.Vec3(titleScale, titleScale, titleScale),
				},
				Content:       title,
				FontRef:       def.TitleFontRef,
				Size:          80,
				Depth:         4,
				CurveSegments: 12,
				Bevel:         0.02,
				Color:         def.TextColor,
			},
			Subtitle: Text{
				Transform: Transform{
					Position: math32.Vec3(0, -0.5*sy, 0),
					Scale:    math32.Vec3(subtitleScale, subtitleScale, subtitleScale),
				},
				Content:       subtitle,
				FontRef:       def.TitleFontRef,
				Size:          80,
				Depth:         2,
				CurveSegments: 12,
				Color:         def.SunColor,
			},
			FloatOffsetY:      0.1 * sx,
			FloatIntensity:    2 * sx,
			RotationIntensity: 2,
		},
		Camera: Camera{
			Position: math32.Vec3(0, 1, 5),
			Target:   math32.Vec3(0, 0, 0),
			FOV:      50,
			MinPolar: math32.Pi / 4,
			MaxPolar: math32.Pi / 1.5,
		},
		Effects: Effects{
			LightShafts: true,
		},
		VideoIdentity: def.Key,
		TextIdentity:  def.Key + strconv.FormatFloat(float64(sx), 'g', -1, 32),
	}

	if def.DepthOfFieldEnabled {
		d.Effects.DepthOfField = &DepthOfField{
			Target:        math32.Vec3(0, 0, 0),
			FocusRange:    cfg.DepthOfField.FocusRange,
			FocusDistance: cfg.DepthOfField.FocusDistance,
			FocalLength:   cfg.DepthOfField.FocalLength,
			BokehScale:    cfg.DepthOfField.BokehScale,
		}
	}

	return d, nil
}

// Composer keeps the most recent valid descriptor.
type Composer struct {
	registry *theme.Registry
	captions Captioner
	logger   *slog.Logger

	current Descriptor
	valid   bool
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithCaptioner overrides where titles and subtitles come from.
func WithCaptioner(c Captioner) ComposerOption {
	return func(comp *Composer) {
		comp.captions = c
	}
}

// WithComposerLogger sets the logger for rejected compositions.
func WithComposerLogger(logger *slog.Logger) ComposerOption {
	return func(comp *Composer) {
		if logger != nil {
			comp.logger = logger
		}
	}
}

// NewComposer creates a composer over registry.
func NewComposer(registry *theme.Registry, opts ...ComposerOption) *Composer {
	c := &Composer{
		registry: registry,
		captions: registryCaptions,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose builds a new descriptor and makes it current. On error the
// current descriptor is left unchanged.
func (c *Composer) Compose(themeKey string, scale viewport.ScaleFactors, cfg Config) (Descriptor, error) {
	d, err := Compose(c.registry, c.captions, themeKey, scale, cfg)
	if err != nil {
		c.logger.Warn("Scene composition rejected", "theme", themeKey, "error", err)
		return Descriptor{}, err
	}
	c.current = d
	c.valid = true
	return d, nil
}

// Current returns the last valid descriptor. ok is false before the first
// successful Compose.
func (c *Composer) Current() (d Descriptor, ok bool) {
	return c.current, c.valid
}
