// Package main - точка входа трекера прогресса студентов.
//
// Трекер - интерактивная оболочка: команды читаются построчно из stdin,
// ответы пишутся в stdout, логи - в stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alem-hub/progress-tracker/config"
	"github.com/alem-hub/progress-tracker/internal/infrastructure/metrics"
	"github.com/alem-hub/progress-tracker/internal/interface/cli"
	"github.com/alem-hub/progress-tracker/pkg/logger"
)

// options - значения флагов командной строки.
type options struct {
	configFile  string
	envFile     string
	storage     string
	ledger      string
	metricsAddr string
	debug       bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (o *options) loadOptions() config.LoadOptions {
	return config.LoadOptions{
		ConfigFile: o.configFile,
		EnvFile:    o.envFile,
		Overrides: config.Overrides{
			Storage:     o.storage,
			Ledger:      o.ledger,
			MetricsAddr: o.metricsAddr,
			Debug:       o.debug,
		},
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// COMMANDS
// ══════════════════════════════════════════════════════════════════════════════

func newRootCommand(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "tracker",
		Short: "Interactive learning progress tracker",
		Long: `Tracks students and their points in the Python, DSA, Databases and Flask
courses. Commands are read line by line from standard input.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	flags.StringVar(&opts.envFile, "env-file", "", "dotenv file (default .env, ignored if missing)")
	flags.StringVar(&opts.storage, "storage", "", "student storage backend: memory or postgres")
	flags.StringVar(&opts.ledger, "ledger", "", "notification ledger backend: memory or redis")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics and /healthz on this address")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	root.AddCommand(newMigrateCommand(opts))
	return root
}

func newMigrateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply PostgreSQL migrations and print their status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return migrate(cmd.Context(), opts)
		},
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN
// ══════════════════════════════════════════════════════════════════════════════

func main() {
	// SIGINT/SIGTERM завершают оболочку так же, как конец ввода
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := &options{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	if err := newRootCommand(opts).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *options) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. ЗАГРУЗКА КОНФИГУРАЦИИ
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load(opts.loadOptions())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. НАСТРОЙКА ЛОГИРОВАНИЯ
	// ─────────────────────────────────────────────────────────────────────────
	log := setupLogger(cfg, opts.stderr)
	log.Debug("starting progress tracker",
		"version", cfg.App.Version,
		"storage", cfg.Storage.Backend,
		"ledger", cfg.Storage.Ledger,
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. ХРАНИЛИЩА
	// ─────────────────────────────────────────────────────────────────────────
	health := metrics.NewHealthChecker(cfg.App.Version)

	students, closeStudents, err := openStudentRepository(ctx, cfg, health, log)
	if err != nil {
		return err
	}
	defer closeStudents()

	ledger, closeLedger, err := openNotificationLedger(ctx, cfg, health, log)
	if err != nil {
		return err
	}
	defer closeLedger()

	// ─────────────────────────────────────────────────────────────────────────
	// 4. МЕТРИКИ И /healthz (опционально)
	// ─────────────────────────────────────────────────────────────────────────
	var m *metrics.Metrics
	if addr := cfg.Observability.MetricsAddr; addr != "" {
		m = metrics.New()

		metricsCtx, stopMetrics := context.WithCancel(context.WithoutCancel(ctx))
		done := make(chan struct{})
		go func() {
			defer close(done)
			if err := m.Serve(metricsCtx, addr, health, log); err != nil {
				log.Error("metrics server failed", "addr", addr, "error", err)
			}
		}()
		defer func() {
			stopMetrics()
			<-done
		}()
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 5. ИНТЕРАКТИВНАЯ ОБОЛОЧКА
	// ─────────────────────────────────────────────────────────────────────────
	input := cli.NewLineReader(opts.stdin)
	defer input.Close()

	session := cli.NewSession(cli.Dependencies{
		Students: students,
		Ledger:   ledger,
		Metrics:  m,
		Logger:   log,
	}, input, opts.stdout)

	return session.Run(ctx)
}

func migrate(ctx context.Context, opts *options) error {
	o := *opts
	o.storage = config.BackendPostgres

	cfg, err := config.Load(o.loadOptions())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := setupLogger(cfg, opts.stderr)

	conn, err := connectPostgres(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer conn.Close()

	status, err := runMigrations(ctx, conn, log)
	if err != nil {
		return err
	}

	for _, m := range status {
		state := "pending"
		if m.IsApplied {
			state = "applied " + m.AppliedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(opts.stdout, "%03d %-28s %s\n", m.Version, m.Name, state)
	}
	return nil
}

func setupLogger(cfg *config.Config, out io.Writer) *slog.Logger {
	return logger.Setup(logger.Options{
		Level:  cfg.Observability.LogLevel,
		Format: cfg.Observability.LogFormat,
		Output: out,
	})
}
