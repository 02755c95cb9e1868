package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/battleground/pkg/battleground"
	"github.com/BrandonKowalski/battleground/pkg/battleground/constants"
	"github.com/spf13/cobra"
)

var runOpts struct {
	theme        string
	width        int32
	height       int32
	fullscreen   bool
	borderless   bool
	tunables     string
	assets       string
	logPath      string
	logLevel     string
	evdev        string
	hideSelector bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the scene window",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, err := battleground.Init(ctx, battleground.Options{
			WindowTitle: "Choose Your Battleground",
			WindowOptions: battleground.WindowOptions{
				Width:             runOpts.width,
				Height:            runOpts.height,
				Resizable:         true,
				Borderless:        runOpts.borderless,
				FullscreenDesktop: runOpts.fullscreen,
			},
			InitialTheme: runOpts.theme,
			AssetsDir:    runOpts.assets,
			TunablesPath: runOpts.tunables,
			Language:     lang,
			EvdevPath:    runOpts.evdev,
			HideSelector: runOpts.hideSelector,
			LogPath:      runOpts.logPath,
			LogLevel:     runOpts.logLevel,
		})
		if err != nil {
			return err
		}

		runErr := app.Run(ctx)
		if errors.Is(runErr, context.Canceled) {
			runErr = nil
		}
		return errors.Join(runErr, app.Close())
	},
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runOpts.theme, "theme", os.Getenv(constants.ThemeEnvVar), "initial theme key")
	f.Int32Var(&runOpts.width, "width", constants.DefaultWindowWidth, "window width")
	f.Int32Var(&runOpts.height, "height", constants.DefaultWindowHeight, "window height")
	f.BoolVar(&runOpts.fullscreen, "fullscreen", false, "fullscreen at desktop resolution")
	f.BoolVar(&runOpts.borderless, "borderless", false, "remove window decorations")
	f.StringVar(&runOpts.tunables, "tunables", "", "TOML tunables file, reloaded on change")
	f.StringVar(&runOpts.assets, "assets", "assets", "directory videos and fonts are loaded from")
	f.StringVar(&runOpts.logPath, "log-path", "", "log file path (default logs/battleground.log)")
	f.StringVar(&runOpts.logLevel, "log-level", envOr(constants.LogLevelEnvVar, "info"), "debug, info, warn or error")
	f.StringVar(&runOpts.evdev, "evdev", "", "evdev device to read keys from, e.g. /dev/input/event0")
	f.BoolVar(&runOpts.hideSelector, "hide-selector", false, "hide the theme buttons")
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
