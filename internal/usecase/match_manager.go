package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/internal/match"
)

type matchRepoDep interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	GetLatest(ctx context.Context) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

// MatchManager hosts one match session at a time and keeps its snapshot in the repository.
// A nil repository runs the match in memory only. Calls must be serialized by the caller.
type MatchManager struct {
	logger    *slog.Logger
	matchRepo matchRepoDep

	id      string
	session *match.Session
}

func NewMatchManager(logger *slog.Logger, matchRepo matchRepoDep) *MatchManager {
	return &MatchManager{
		logger: logger.With("component", "match_manager"),

		matchRepo: matchRepo,
	}
}

// Start opens a fresh match under a new id, replacing any current one.
func (that *MatchManager) Start(ctx context.Context) *entity.Match {
	log := that.logger.With("method", "Start")

	that.id = uuid.NewString()
	that.session = match.NewSession()
	that.session.Advance()

	log.Info("match started", "match_id", that.id)

	return that.save(ctx)
}

// Resume continues a stored match. An empty id picks the most recently saved one.
func (that *MatchManager) Resume(ctx context.Context, id string) (*entity.Match, error) {
	log := that.logger.With("method", "Resume")

	if that.matchRepo == nil {
		return nil, apperror.ErrPersistenceDisabled
	}

	var (
		stored *entity.Match
		err    error
	)
	if id == "" {
		stored, err = that.matchRepo.GetLatest(ctx)
	} else {
		stored, err = that.matchRepo.GetByID(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	session, err := stored.Session()
	if err != nil {
		return nil, fmt.Errorf("failed to restore match %s: %w", stored.ID, err)
	}

	that.id = stored.ID
	that.session = session
	that.session.Advance()

	log.Info("match resumed", "match_id", that.id, "phase", session.State().Phase.String())

	return entity.NewMatch(that.id, that.session), nil
}

// Place puts a piece for the side to move. On rejection the current snapshot comes back
// together with the reason; the same side may try again.
func (that *MatchManager) Place(ctx context.Context, col, row int) (*entity.Match, error) {
	log := that.logger.With("method", "Place", "match_id", that.id)

	if that.session == nil {
		return nil, apperror.ErrNoActiveMatch
	}

	state := that.session.State()
	if state.IsOver() {
		return entity.NewMatch(that.id, that.session), apperror.ErrGameFinished
	}

	if !state.AwaitingInput() {
		return entity.NewMatch(that.id, that.session), apperror.ErrGameIsNotStarted
	}

	if err := that.session.CheckPlacement(col, row); err != nil {
		log.Debug("placement rejected", "col", col, "row", row, "side", state.Active.String(), "reason", err)
		return entity.NewMatch(that.id, that.session), err
	}

	that.session.Place(col, row)
	that.session.Advance()

	log.Debug("piece placed", "col", col, "row", row, "side", state.Active.String())

	if next := that.session.State(); next.IsOver() {
		log.Info("match finished", "result", next.Outcome.String())
	}

	return that.save(ctx), nil
}

// Reset puts the current match back to its opening position.
func (that *MatchManager) Reset(ctx context.Context) (*entity.Match, error) {
	log := that.logger.With("method", "Reset", "match_id", that.id)

	if that.session == nil {
		return nil, apperror.ErrNoActiveMatch
	}

	that.session.Reset()
	that.session.Advance()

	log.Info("match reset")

	return that.save(ctx), nil
}

// Abandon drops the current match and its stored snapshot.
func (that *MatchManager) Abandon(ctx context.Context) error {
	log := that.logger.With("method", "Abandon", "match_id", that.id)

	if that.session == nil {
		return apperror.ErrNoActiveMatch
	}

	if that.matchRepo != nil {
		if err := that.matchRepo.DeleteByID(ctx, that.id); err != nil && !errors.Is(err, apperror.ErrMatchNotFound) {
			log.Error("failed to delete match", "error", err)
		}
	}

	that.id = ""
	that.session = nil

	log.Info("match abandoned")

	return nil
}

func (that *MatchManager) View() (match.View, error) {
	if that.session == nil {
		return match.View{}, apperror.ErrNoActiveMatch
	}

	return that.session.View(), nil
}

func (that *MatchManager) Snapshot() (*entity.Match, error) {
	if that.session == nil {
		return nil, apperror.ErrNoActiveMatch
	}

	return entity.NewMatch(that.id, that.session), nil
}

func (that *MatchManager) ID() string {
	return that.id
}

// save stores the current snapshot. A storage failure does not stop the match.
func (that *MatchManager) save(ctx context.Context) *entity.Match {
	snapshot := entity.NewMatch(that.id, that.session)

	if that.matchRepo == nil {
		return snapshot
	}

	if err := that.matchRepo.CreateOrUpdate(ctx, snapshot); err != nil {
		that.logger.Error("failed to save match", "match_id", that.id, "error", err)
	}

	return snapshot
}
