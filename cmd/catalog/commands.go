package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/library-catalog/catalog/app"
	"github.com/Astemirdum/library-catalog/catalog/config"
	"github.com/Astemirdum/library-catalog/pkg/logger"
)

const commandTimeout = 30 * time.Second

func newRootCmd() *cobra.Command {
	var logSink string
	options := func() []config.Option {
		ops := []config.Option{
			config.WithLogLevel(zapcore.DebugLevel),
			config.WithWriteTimeout(time.Minute),
		}
		if logSink != "" {
			ops = append(ops, config.WithLogSink(logSink))
		}
		return ops
	}

	root := &cobra.Command{
		Use:          "catalog",
		Short:        "Personal library catalog backend",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logSink, "log-sink", "", "write logs to this file instead of stdout")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				app.Run(config.NewConfig(options()...))
			},
		},
		newAddUserCmd(options),
		newGrantAdminCmd(options),
	)
	return root
}

func newAddUserCmd(options func() []config.Option) *cobra.Command {
	var (
		email    string
		password string
		admin    bool
	)
	cmd := &cobra.Command{
		Use:   "add-user",
		Short: "Create an account that can sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return oneOff(options(), func(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
				return app.AddUser(ctx, cfg, log, email, password, admin)
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().BoolVar(&admin, "admin", false, "grant the admin claim")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newGrantAdminCmd(options func() []config.Option) *cobra.Command {
	return &cobra.Command{
		Use:   "grant-admin <email>",
		Short: "Set the admin claim on an existing account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return oneOff(options(), func(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
				return app.GrantAdmin(ctx, cfg, log, args[0])
			})
		},
	}
}

func oneOff(ops []config.Option, fn func(ctx context.Context, cfg *config.Config, log *zap.Logger) error) error {
	cfg := config.NewConfig(ops...)
	log := logger.NewLogger(cfg.Log, "catalog-cli")
	defer log.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	return fn(ctx, cfg, log)
}
