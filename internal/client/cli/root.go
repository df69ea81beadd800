// Package cli is the cobra command tree of the timeline client.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"timeline-backend/internal/client/api"
	clientConfig "timeline-backend/internal/client/config"
	"timeline-backend/internal/client/fallback"
	"timeline-backend/internal/client/present"
	"timeline-backend/internal/client/state"
	"timeline-backend/pkg/logger"
)

// Backend is what the commands run against.
type Backend struct {
	Controller *state.Controller
	Close      func() error
}

// Opener builds the backend from the resolved config.
type Opener func(ctx context.Context, cfg clientConfig.Config) (*Backend, error)

// App carries the IO streams and collaborators shared by all commands.
type App struct {
	In   io.Reader
	Out  io.Writer
	Err  io.Writer
	Now  func() time.Time
	Open Opener

	backend  *Backend
	renderer *present.Renderer
}

// NewApp wires the real HTTP client and SQLite fallback cache on stdio.
func NewApp() *App {
	return &App{
		In:   os.Stdin,
		Out:  os.Stdout,
		Err:  os.Stderr,
		Now:  time.Now,
		Open: OpenBackend,
	}
}

// OpenBackend connects the controller to the API and the fallback cache file.
func OpenBackend(ctx context.Context, cfg clientConfig.Config) (*Backend, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.CachePath), 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	slot, err := fallback.Open(ctx, cfg.CachePath)
	if err != nil {
		return nil, err
	}

	client := api.New(cfg.APIURL, cfg.Timeout)
	return &Backend{
		Controller: state.NewController(client, slot),
		Close:      slot.Close,
	}, nil
}

// NewRootCommand builds the command tree.
func NewRootCommand(app *App) *cobra.Command {
	var (
		configFile string
		logLevel   string
	)

	root := &cobra.Command{
		Use:           "timeline",
		Short:         "A photo timeline of things that happened",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.InitWriter(app.Err, "development", logLevel)

			v := clientConfig.New(configFile)
			if err := bindFlags(v, cmd); err != nil {
				return err
			}

			cfg, err := clientConfig.Load(v)
			if err != nil {
				return err
			}
			app.renderer = present.NewRenderer(!cfg.NoColor)

			backend, err := app.Open(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			app.backend = backend
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ~/.config/timeline/config.yaml)")
	flags.String("api-url", "", "timeline API base URL")
	flags.String("cache-path", "", "local fallback cache file")
	flags.Duration("timeout", 0, "HTTP request timeout")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringVar(&logLevel, "log-level", "warn", "diagnostic log level")

	root.AddCommand(
		newListCommand(app),
		newAddCommand(app),
		newRemoveCommand(app),
	)
	return root
}

// Execute runs the client with os.Args.
func Execute(ctx context.Context) error {
	app := NewApp()
	err := NewRootCommand(app).ExecuteContext(ctx)
	if closeErr := app.close(); err == nil {
		err = closeErr
	}
	return err
}

// bindFlags lets explicitly set flags override file and env values.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	bindings := map[string]string{
		"api-url":    clientConfig.KeyAPIURL,
		"cache-path": clientConfig.KeyCachePath,
		"timeout":    clientConfig.KeyTimeout,
		"no-color":   clientConfig.KeyNoColor,
	}
	for flag, key := range bindings {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", flag, err)
		}
	}
	return nil
}

func (a *App) controller() *state.Controller {
	return a.backend.Controller
}

func (a *App) close() error {
	if a.backend == nil || a.backend.Close == nil {
		return nil
	}
	err := a.backend.Close()
	a.backend = nil
	return err
}
