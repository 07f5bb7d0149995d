package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ccnlabs/helpdesk/internal/client"
	"github.com/ccnlabs/helpdesk/internal/config"
	"github.com/ccnlabs/helpdesk/internal/kvstore"
	"github.com/ccnlabs/helpdesk/internal/session"
	"github.com/ccnlabs/helpdesk/internal/ticket"
	"github.com/ccnlabs/helpdesk/internal/ui"
	"github.com/spf13/cobra"
)

var (
	serverURL  string
	jsonOutput bool

	cfg      *config.Config
	store    kvstore.Store
	sessions *session.Store
	api      client.HelpdeskClient
	tickets  *ticket.Repository
)

func defaultServer() string {
	if s := os.Getenv("HELPDESK_URL"); s != "" {
		return s
	}
	if u := activeRemoteURL(); u != "" {
		return u
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "hd <command>",
	Short: "CLI client for the CCN helpdesk ticketing service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if serverURL == "" {
			serverURL = cfg.BaseURL
		}
		if serverURL == "" {
			return fmt.Errorf("no server configured; set HELPDESK_URL, pass --server, or run 'hd remote add'")
		}

		dir := cfg.StateDir
		if dir == "" {
			dir, err = kvstore.DefaultDir()
			if err != nil {
				return fmt.Errorf("resolving state dir: %w", err)
			}
		}
		store = kvstore.NewFileStore(filepath.Join(dir, "credentials.json"))

		httpClient := client.NewHTTPClient(serverURL, cfg.Token)
		httpClient.SetTimeout(cfg.Timeout)
		api = httpClient

		sessions = session.NewStore(store, api)
		sessions.Restore()
		// An explicit token from the environment overrides the stored
		// one; role and user id from a restored session still apply.
		if cfg.Token != "" {
			sessions.Override(cfg.Token)
		}
		if tok := sessions.Current().AccessToken; tok != "" {
			api.SetToken(tok)
		}

		tickets = ticket.NewRepository(api, sessions)

		if !ui.ShouldUseColor() {
			ui.ForceNoColor()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if api != nil {
			api.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer(), "helpdesk server base URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddGroup(
		&cobra.Group{ID: "session", Title: "Session:"},
		&cobra.Group{ID: "tickets", Title: "Tickets:"},
		&cobra.Group{ID: "users", Title: "Users:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)
	cobra.EnableCommandSorting = false

	// Session
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	// Tickets
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(studentCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(closeCmd)

	// Users
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(rolesCmd)

	// System
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(remoteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
