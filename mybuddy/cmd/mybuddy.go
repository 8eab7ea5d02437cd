// Command-line interface for MyBuddy
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mybuddy/mybuddy/app"
	"mybuddy/mybuddy/config"
	"mybuddy/mybuddy/sources/database"
	"mybuddy/mybuddy/utils/color"
	"mybuddy/mybuddy/utils/logging"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.ColorError(err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.LoadConfig()
	var noColor bool

	root := &cobra.Command{
		Use:           "mybuddy",
		Short:         "MyBuddy: notes, action items and people to call back",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.Disable()
			}
			return logging.InitLogger(cfg.LogDir)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}
	root.PersistentFlags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the SQLite database")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	root.AddCommand(newServeCmd(&cfg), newRemindCmd(&cfg), newInitDBCmd(&cfg))
	return root
}

func newServeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			startCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			a, err := app.New(startCtx, *cfg)
			cancel()
			if err != nil {
				return err
			}
			defer a.Close()

			fmt.Fprintln(cmd.OutOrStdout(), color.ColorInfo(fmt.Sprintf("MyBuddy listening on http://%s", cfg.Addr())))
			return a.Serve(ctx, cfg.Addr())
		},
	}
	cmd.Flags().StringVar(&cfg.Host, "host", cfg.Host, "host to bind to")
	cmd.Flags().IntVar(&cfg.Port, "port", cfg.Port, "port to bind to")
	return cmd
}

func newInitDBCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create the database schema if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.NewDatabase(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			defer db.Close()
			target := cfg.DBPath
			if cfg.DBDriver == "postgres" {
				target = fmt.Sprintf("postgres %s@%s/%s", cfg.DBUser, cfg.DBHost, cfg.DBName)
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.ColorSuccess("Database ready: "+target))
			return nil
		},
	}
}
