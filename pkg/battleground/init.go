// Package battleground runs the theme switching promo scene in an SDL
// window. The scene logic lives in the engine package and its
// dependencies; this package opens the window, loads assets and drives
// the engine from the event loop.
package battleground

import (
	"context"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/battleground/pkg/battleground/constants"
	"github.com/BrandonKowalski/battleground/pkg/battleground/internal"
	"github.com/BrandonKowalski/battleground/pkg/battleground/theme"
)

// Options configures the window and the scene.
type Options struct {
	WindowTitle   string                 // Window title displayed in windowed mode
	WindowOptions internal.WindowOptions // SDL window flags and initial size
	Registry      *theme.Registry        // Themes to offer; defaults to the embedded table
	InitialTheme  string                 // Key selected at start; defaults to underwater
	AssetsDir     string                 // Directory video and font refs are resolved against
	TunablesPath  string                 // Optional TOML tunables file, hot reloaded
	Language      string                 // BCP 47 tag for the prompt and subtitles
	EvdevPath     string                 // Optional evdev device for key input
	HideSelector  bool                   // Draw the scene without the theme buttons
	LogPath       string                 // Full path for log file including filename
	LogLevel      string                 // debug, info, warn or error
}

// WindowOptions re-exports the SDL window flags.
type WindowOptions = internal.WindowOptions

// App is an initialized window with a running scene.
type App struct {
	host *internal.Host
}

// Init initializes SDL, preloads the assets of every theme and composes the
// first scene. Must be called from the main goroutine.
func Init(ctx context.Context, options Options) (*App, error) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelWarn)
	}

	reg := options.Registry
	if reg == nil {
		var err error
		if reg, err = theme.Default(); err != nil {
			return nil, err
		}
	}

	initial := options.InitialTheme
	if initial == "" {
		initial = os.Getenv(constants.ThemeEnvVar)
	}

	title := options.WindowTitle
	if title == "" {
		title = "Choose Your Battleground"
	}

	if err := internal.InitSDL(); err != nil {
		return nil, err
	}

	host, err := internal.NewHost(ctx, internal.HostOptions{
		Title:        title,
		Window:       options.WindowOptions,
		Registry:     reg,
		InitialTheme: initial,
		AssetsDir:    options.AssetsDir,
		TunablesPath: options.TunablesPath,
		Language:     options.Language,
		EvdevPath:    options.EvdevPath,
		HideSelector: options.HideSelector,
		Logger:       internal.GetLogger(),
	})
	if err != nil {
		internal.SDLCleanup()
		return nil, err
	}

	return &App{host: host}, nil
}

// Run draws frames until the window is closed or ctx is done.
func (a *App) Run(ctx context.Context) error {
	return a.host.Run(ctx)
}

// Select makes key the active theme.
func (a *App) Select(key string) error {
	return a.host.Engine().Select(key)
}

// Close tears the scene down and releases all SDL resources. Must be called
// before program exit to prevent resource leaks.
func (a *App) Close() error {
	err := a.host.Close()
	internal.SDLCleanup()
	return err
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the application log level.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel sets the application log level from a string.
// Accepts: "debug", "info", "warn", "error".
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
