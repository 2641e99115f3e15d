package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront/cmd"
	"storefront/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	configPath string
	cfg        cmd.Config
	logger     *zap.Logger
	db         *gorm.DB
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Online shop backend: catalogue, basket, checkout and dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			a.close()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file (default ./config.yaml)")

	root.AddCommand(a.serveCommand(), a.migrateCommand(), a.seedCommand())
	return root
}

func (a *app) init() error {
	cfg, err := cmd.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	logger, err := cmd.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	db, err := openDatabase(cfg.Database)
	if err != nil {
		return err
	}
	a.cfg, a.logger, a.db = cfg, logger, db
	return nil
}

func (a *app) close() {
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func openDatabase(cfg cmd.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

func (a *app) migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(c *cobra.Command, _ []string) error {
			if err := postgres.Migrate(c.Context(), a.db); err != nil {
				return err
			}
			a.logger.Info("schema migrated")
			return nil
		},
	}
}

func (a *app) seedCommand() *cobra.Command {
	var (
		file     string
		fake     int
		fakeSeed uint64
	)
	c := &cobra.Command{
		Use:   "seed",
		Short: "Load products, shipping methods and staff users",
		RunE: func(c *cobra.Command, _ []string) error {
			if file == "" && fake == 0 {
				return errors.New("nothing to seed: pass --file or --fake")
			}

			var data cmd.SeedFile
			if file != "" {
				var err error
				if data, err = cmd.ReadSeedFile(file); err != nil {
					return err
				}
			}
			data.Products = append(data.Products, cmd.FakeProducts(fake, fakeSeed)...)

			root, err := cmd.NewCompositionRoot(a.cfg, a.logger, a.db)
			if err != nil {
				return err
			}
			defer func() { _ = root.Close() }()

			ctx, cancel := context.WithTimeout(c.Context(), cmd.SeedTimeout)
			defer cancel()
			return cmd.NewSeeder(root, a.cfg.App.Currency, a.logger).Seed(ctx, data)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "YAML seed file")
	c.Flags().IntVar(&fake, "fake", 0, "number of random products to add")
	c.Flags().Uint64Var(&fakeSeed, "fake-seed", 0, "random seed for --fake, 0 picks one")
	return c
}

func (a *app) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	root, err := cmd.NewCompositionRoot(a.cfg, a.logger, a.db)
	if err != nil {
		return err
	}
	defer func() { _ = root.Close() }()

	server, err := root.CreateServer()
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(cmd.EchoLogLevel(a.cfg.Log))
	if err = server.RegisterHandlers(e); err != nil {
		return err
	}

	if a.cfg.Jobs.Enabled {
		manager := root.CreateJobManager()
		if err = manager.StartAll(); err != nil {
			return err
		}
		defer manager.StopAll()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("http server listening", zap.String("address", a.cfg.HTTP.Address()))
		if err := e.Start(a.cfg.HTTP.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down")
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
