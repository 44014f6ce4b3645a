package migrate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/schema"
	"helpdesk/internal/shared/logger"
)

var (
	env        string
	configPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema tools",
		Long:  `Create the help desk tables and indexes and seed the default super admin.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newStatusCommand(),
	)

	return cmd
}

// NewInitDBCommand is the top-level shortcut for "migrate up".
func NewInitDBCommand() *cobra.Command {
	cmd := newUpCommand()
	cmd.Use = "initdb"
	cmd.Short = "Initialize the database schema and default super admin"

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create missing tables and seed the super admin",
		Long:  `Apply every schema statement that is not yet in place. Existing tables and data are left untouched.`,
		RunE:  runUp,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active database backend",
		Long:  `Connect with the configured settings and report which backend is in use, including the sqlite fallback.`,
		RunE:  runStatus,
	}
}

func initEnv(ctx context.Context) (*config.Config, database.Store, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := database.Open(ctx, &cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, store, logger.NewLogger(), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, store, log, err := initEnv(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	log.Infow("running schema bootstrap", "environment", env, "backend", store.Backend())

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	report := schema.NewBootstrapper(store, hasher, cfg.Bootstrap, log.Named("schema")).Run(ctx)

	out := cmd.OutOrStdout()
	for _, failed := range report.Failed {
		fmt.Fprintf(out, "FAILED  %s: %v\n", failed.Name, failed.Err)
	}
	if report.AdminCreated {
		fmt.Fprintf(out, "Created super admin %q\n", cfg.Bootstrap.AdminUsername)
		if report.GeneratedPassword != "" {
			fmt.Fprintf(out, "Generated password: %s\n", report.GeneratedPassword)
		}
	}

	if !report.OK() {
		return fmt.Errorf("%d schema statements failed", len(report.Failed))
	}
	fmt.Fprintln(out, "Schema is up to date")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, store, _, err := initEnv(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Configured backend: %s\n", cfg.Database.Type)
	fmt.Fprintf(out, "Active backend:     %s\n", store.Backend())
	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	fmt.Fprintln(out, "Connection:         ok")
	return nil
}
