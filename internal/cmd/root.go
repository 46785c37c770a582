// Package cmd implements the Sahyog CLI commands. Every command is a thin
// view: it resolves a guard decision where the screen is role-gated, calls
// one or two client functions, and renders the result. No business logic
// lives here.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/sahyog-app/sahyog/internal/client"
	"github.com/sahyog-app/sahyog/internal/config"
	"github.com/sahyog-app/sahyog/internal/guard"
	"github.com/sahyog-app/sahyog/internal/model"
	"github.com/sahyog-app/sahyog/internal/obs"
	"github.com/sahyog-app/sahyog/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "sahyog",
	Short: "Sahyog community platform CLI",
	Long: `sahyog is the command-line client for the Sahyog community platform:
browse events, volunteer, follow organizations, donate, chat, and manage
notifications from the terminal.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// app bundles the long-lived objects a command needs.
type app struct {
	cfg    *config.Config
	store  session.Store
	client *client.Client
	guard  *guard.Guard
}

var sharedApp *app

// getApp builds (once) the configured client stack.
func getApp() (*app, error) {
	if sharedApp != nil {
		return sharedApp, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	tokenPath := cfg.Session.TokenPath
	if tokenPath == "" {
		tokenPath, err = session.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve token path: %w", err)
		}
	}
	store := session.NewFileStore(tokenPath)

	opts := []client.Option{
		client.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
	}
	if cfg.API.RateLimit > 0 {
		opts = append(opts, client.WithRateLimit(cfg.API.RateLimit, cfg.API.RateBurst))
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, client.WithMetrics(obs.NewClientMetrics(prometheus.NewRegistry())))
	}

	c := client.New(cfg.API.BaseURL, store, opts...)
	sharedApp = &app{
		cfg:    cfg,
		store:  store,
		client: c,
		guard:  guard.New(c),
	}
	return sharedApp, nil
}

// commandContext bounds one command invocation.
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Minute)
}

// requireRole resolves the guard decision for a role-gated command and
// turns a redirect into a terminal-friendly error.
func requireRole(ctx context.Context, a *app, rule guard.Rule) (*model.Actor, error) {
	decision, err := a.guard.Check(ctx, rule)
	if err != nil {
		return nil, err
	}
	if !decision.Allow {
		if decision.RedirectPath == guard.LoginPath {
			return nil, fmt.Errorf("not signed in; run 'sahyog auth login'")
		}
		return nil, fmt.Errorf("this command is not available for your role (see %s)", decision.RedirectPath)
	}
	return decision.Actor, nil
}

// joinArgs rebuilds free-text input from argv words.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

// printJSON renders any payload as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
