// Package service contains the wrap generation pipeline
package service

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"gitwrapped/internal/core/personality"
	"gitwrapped/internal/core/stats"
	"gitwrapped/internal/modkit/repokit"
	perr "gitwrapped/internal/platform/errors"
	"gitwrapped/internal/platform/logger"
	adomain "gitwrapped/internal/services/analytics/domain"
	"gitwrapped/internal/services/wraps/domain"
	"gitwrapped/internal/services/wraps/repo"
)

const (
	// cacheTTL is how long a stored snapshot serves analyze requests
	// before a fresh aggregation runs
	cacheTTL = 24 * time.Hour

	defaultLangWorkers = 8
)

// Analyzer produces the personality blurb for a wrap
type Analyzer interface {
	Analyze(ctx context.Context, stats personality.PromptStats) personality.Personality
}

// Service defines the service contract for wraps
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	gh        Source
	narrative Analyzer
	tracker   adomain.TrackerPort

	log logger.Logger
	now func() time.Time

	estimate    stats.Estimator
	pick        func(n int) int
	langWorkers int
}

// Options tunes the pipeline
type Options struct {
	LangWorkers int
}

// New creates a new wraps service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], gh Source, narrative Analyzer, tracker adomain.TrackerPort, log logger.Logger, opt Options) *Svc {
	if db == nil {
		panic("wraps.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("wraps.Service requires a non nil Repo binder")
	}
	if gh == nil {
		panic("wraps.Service requires a non nil Source")
	}
	if narrative == nil {
		panic("wraps.Service requires a non nil Analyzer")
	}
	return &Svc{
		Repo:        binder.Bind(db),
		binder:      binder,
		db:          db,
		gh:          gh,
		narrative:   narrative,
		tracker:     tracker,
		log:         log,
		now:         time.Now,
		estimate:    func(min, max int) int { return min + rand.IntN(max-min+1) },
		pick:        rand.IntN,
		langWorkers: opt.LangWorkers,
	}
}

// Analyze returns the wrap for (username, year), serving a cached snapshot
// when one younger than the TTL exists
func (s *Svc) Analyze(ctx context.Context, in domain.AnalyzeInput) (domain.AnalyzeResult, error) {
	now := s.now().UTC()
	year := in.Year
	if year == 0 {
		year = now.Year()
	}

	s.track(ctx, adomain.Event{Name: adomain.EventUsernameEntered, Username: in.Username, Metadata: map[string]any{"year": year}})

	existingID := ""
	if row, err := s.Repo.ByUserYear(ctx, in.Username, year); err == nil {
		existingID = row.ID
		if now.Sub(row.UpdatedAt) < cacheTTL {
			snap, derr := decodeSnapshot(row)
			if derr == nil {
				s.log.Debug().Str("username", in.Username).Int("year", year).Msg("serving cached wrap")
				return domain.AnalyzeResult{Wrap: snap, Cached: true}, nil
			}
			s.log.Warn().Err(derr).Str("wrap_id", row.ID).Msg("cached wrap payload unreadable, regenerating")
		}
	} else if !errors.Is(err, stdsql.ErrNoRows) {
		s.log.Warn().Err(err).Str("username", in.Username).Msg("cache lookup failed, regenerating")
	}

	started := now
	ds, err := s.aggregate(ctx, in.Username, year)
	if err != nil {
		s.track(ctx, adomain.Event{Name: adomain.EventErrorOccurred, Username: in.Username, Metadata: map[string]any{"error": err.Error()}})
		return domain.AnalyzeResult{}, userFacing(err)
	}

	sum := stats.Derive(stats.Input{
		User:      ds.User,
		Repos:     ds.Repos,
		Events:    ds.Events,
		Languages: stats.BuildLanguageStats(ds.LanguageBytes),
		Contrib:   ds.Contrib,
	}, year, now, s.estimate)

	pers := s.narrative.Analyze(ctx, promptStats(year, sum))

	snap := assemble(ds, sum, pers, year)
	snap.ID = existingID
	if snap.ID == "" {
		snap.ID = uuid.NewString()
	}

	snap = s.persist(ctx, snap)

	s.track(ctx, adomain.Event{
		Name:     adomain.EventGenerationCompleted,
		Username: in.Username,
		Metadata: map[string]any{"year": year, "duration_ms": s.now().UTC().Sub(started).Milliseconds(), "source": ds.Source},
	})

	return domain.AnalyzeResult{Wrap: snap}, nil
}

// ByID fetches a wrap and bumps its view counter
func (s *Svc) ByID(ctx context.Context, id string) (domain.WrapSnapshot, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.WrapSnapshot{}, perr.Newf(perr.ErrorCodeInvalidArgument, "invalid wrap id")
	}

	row, err := s.Repo.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return domain.WrapSnapshot{}, perr.NotFoundf("wrap not found")
		}
		return domain.WrapSnapshot{}, err
	}

	snap, err := decodeSnapshot(row)
	if err != nil {
		return domain.WrapSnapshot{}, err
	}

	if err := s.Repo.IncrementViews(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("wrap_id", id).Msg("view increment failed")
	} else {
		snap.ViewCount++
	}

	s.track(ctx, adomain.Event{Name: adomain.EventWrapViewed, Username: snap.Username})
	return snap, nil
}

// Share records a share action against an existing wrap
func (s *Svc) Share(ctx context.Context, in domain.ShareInput) error {
	if _, err := uuid.Parse(in.WrapID); err != nil {
		return perr.Newf(perr.ErrorCodeInvalidArgument, "invalid wrap id")
	}

	row, err := s.Repo.ByID(ctx, in.WrapID)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return perr.NotFoundf("wrap not found")
		}
		return err
	}

	err = repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		return s.binder.Bind(q).RecordShare(ctx, in.WrapID, in.Platform)
	})
	if err != nil {
		return err
	}

	s.track(ctx, adomain.Event{
		Name:     adomain.EventShareClicked,
		Username: row.Username,
		Metadata: map[string]any{"platform": in.Platform},
	})
	return nil
}

// userFacing replaces the aggregation error's message with the text the API
// envelope carries. The original error stays wrapped for logging
func userFacing(err error) error {
	switch code := perr.CodeOf(err); code {
	case perr.ErrorCodeNotFound:
		return perr.Wrapf(err, code, "user not found, check spelling")
	case perr.ErrorCodeTooManyRequests:
		return perr.Wrapf(err, code, "rate limit exceeded, retry later")
	default:
		return perr.Wrapf(err, code, "failed to analyze, try again")
	}
}

// persist upserts the snapshot. A write failure is a warning; the fresh
// snapshot still goes back to the caller
func (s *Svc) persist(ctx context.Context, snap domain.WrapSnapshot) domain.WrapSnapshot {
	data, err := json.Marshal(snap)
	if err != nil {
		s.log.Warn().Err(err).Str("username", snap.Username).Msg("snapshot not serializable, skipping persist")
		return snap
	}

	row, err := s.Repo.Upsert(ctx, snap.ID, snap.Username, snap.Year, data)
	if err != nil {
		s.log.Warn().Err(err).Str("username", snap.Username).Int("year", snap.Year).Msg("wrap upsert failed, serving unstored snapshot")
		return snap
	}

	snap.ID = row.ID
	snap.ViewCount = row.ViewCount
	snap.ShareCount = row.ShareCount
	snap.CreatedAt = row.CreatedAt
	snap.UpdatedAt = row.UpdatedAt
	return snap
}

func (s *Svc) track(ctx context.Context, ev adomain.Event) {
	if s.tracker == nil {
		return
	}
	s.tracker.Track(ctx, ev)
}

func decodeSnapshot(row repo.Row) (domain.WrapSnapshot, error) {
	var snap domain.WrapSnapshot
	if err := json.Unmarshal(row.Data, &snap); err != nil {
		return domain.WrapSnapshot{}, perr.Wrapf(err, perr.ErrorCodeDB, "wrap payload decode failed")
	}
	snap.ID = row.ID
	snap.ViewCount = row.ViewCount
	snap.ShareCount = row.ShareCount
	snap.CreatedAt = row.CreatedAt
	snap.UpdatedAt = row.UpdatedAt
	return snap, nil
}
