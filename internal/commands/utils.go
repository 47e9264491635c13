package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/beesaferoot/hotel-booking/internal/config"
	"github.com/beesaferoot/hotel-booking/internal/hotel/booking"
	"github.com/beesaferoot/hotel-booking/internal/logging"
	"github.com/beesaferoot/hotel-booking/internal/store"
)

// session is everything a command needs for one run of the program
type session struct {
	cfg *config.Config
	db  *gorm.DB
	svc *booking.Service
	log *zap.Logger
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// --debug is a persistent flag on the root command and is absent when a
	// subcommand runs on its own.
	if debug, err := cmd.Flags().GetBool("debug"); err == nil && debug {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	db, err := store.Open(cfg)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}

	log.Debug("session opened",
		zap.Float64("combo_rate", cfg.ComboRate),
		zap.Bool("seed_catalog", cfg.SeedCatalog))

	return &session{
		cfg: cfg,
		db:  db,
		svc: booking.NewService(db, cfg, log),
		log: log,
	}, nil
}

func (s *session) Close() {
	if err := store.Close(s.db); err != nil {
		s.log.Warn("failed to close session database", zap.Error(err))
	}
	_ = s.log.Sync()
}
