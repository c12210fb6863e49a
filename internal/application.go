package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/config"
	"github.com/rocketscienceinc/othello-backend/internal/console"
	"github.com/rocketscienceinc/othello-backend/internal/repository"
	"github.com/rocketscienceinc/othello-backend/internal/repository/storage"
	"github.com/rocketscienceinc/othello-backend/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var matchRepo repository.MatchRepository
	if conf.Redis.Enabled {
		redisStorage, err := openStorage(ctx, conf.Redis)
		if err != nil {
			return err
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		matchRepo = repository.NewMatchRepository(redisStorage.Connection, conf.Redis.SessionTTL)
	}

	matchManager := usecase.NewMatchManager(logger, matchRepo)
	openMatch(ctx, log, matchManager, matchRepo != nil)

	lineReader, err := console.NewLineReader(conf.HistoryFile)
	if err != nil {
		return err
	}
	defer closeConsole(log, lineReader)

	// unblock Readline when the context ends
	go func() {
		<-ctx.Done()
		closeConsole(log, lineReader)
	}()

	handler := console.NewHandler(logger, lineReader, console.NewView(lineReader.Stdout()), matchManager)
	if err = handler.Run(ctx); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Application stopped")

	return nil
}

func closeConsole(log *slog.Logger, closer io.Closer) {
	if err := closer.Close(); err != nil {
		log.Error("could not close console", "error", err)
	}
}

func openStorage(ctx context.Context, conf config.Redis) (*storage.RedisStorage, error) {
	redisAddrString := conf.GetRedisAddr()
	if conf.Host == "" || conf.Port == "" {
		return nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return redisStorage, nil
}

// openMatch continues the last stored match when there is one, otherwise starts a new one.
func openMatch(ctx context.Context, log *slog.Logger, matchManager *usecase.MatchManager, persistent bool) {
	if persistent {
		snapshot, err := matchManager.Resume(ctx, "")
		if err == nil && snapshot.IsOngoing() {
			return
		}

		if err != nil && !errors.Is(err, apperror.ErrMatchNotFound) {
			log.Warn("could not resume last match", "error", err)
		}
	}

	matchManager.Start(ctx)
}
