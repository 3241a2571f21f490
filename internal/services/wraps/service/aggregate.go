package service

import (
	"context"
	"sync"
	"time"

	"gitwrapped/internal/adapters/github"
	"gitwrapped/internal/core/stats"
	perr "gitwrapped/internal/platform/errors"
	"gitwrapped/internal/services/wraps/domain"
)

// Source is the GitHub surface the aggregator needs.
// *github.Client satisfies it
type Source interface {
	UserByLogin(ctx context.Context, login string) (github.User, error)
	ReposByUser(ctx context.Context, login string) ([]github.Repo, error)
	RepoLanguages(ctx context.Context, owner, name string) (map[string]int64, error)
	EventsByUser(ctx context.Context, login string) ([]github.Event, error)
	ContributionsByUser(ctx context.Context, login string, from, to time.Time) (github.Contributions, error)
}

// aggregate fetches everything one wrap needs. Profile and repo failures are
// fatal; events, languages and GraphQL all degrade with a logged warning
func (s *Svc) aggregate(ctx context.Context, username string, year int) (domain.Dataset, error) {
	var ds domain.Dataset
	ds.Source = domain.SourceEvents

	user, err := s.gh.UserByLogin(ctx, username)
	if err != nil {
		return ds, err
	}
	ds.User = user

	repos, err := s.gh.ReposByUser(ctx, username)
	if err != nil {
		return ds, err
	}
	ds.Repos = repos

	events, err := s.gh.EventsByUser(ctx, username)
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("events fetch failed, continuing without")
		events = nil
	}
	ds.Events = events

	ds.LanguageBytes = s.fetchLanguages(ctx, user.Login, repos)

	from, to := github.YearDateRange(year, s.now())
	contrib, err := s.gh.ContributionsByUser(ctx, username, from, to)
	switch {
	case err == nil:
		if contribUsable(contrib) {
			ds.Contrib = &contrib
			ds.Source = domain.SourceGraphQL
		} else {
			s.log.Debug().Str("username", username).Msg("graphql contributions empty, using events")
		}
	case perr.Fallbackable(err):
		s.log.Warn().Err(err).Str("username", username).Msg("graphql unavailable, falling back to events")
	default:
		s.log.Warn().Err(err).Str("username", username).Msg("graphql fetch failed, falling back to events")
	}

	return ds, nil
}

// contribUsable reports whether the GraphQL payload carries any data the
// derivation takes over the event stream
func contribUsable(c github.Contributions) bool {
	return c.TotalCommits > 0 || len(c.Calendar.Days) > 0 || len(c.RepoCommits) > 0
}

// fetchLanguages fans out per repo language calls over a bounded worker
// pool. Individual failures just contribute nothing
func (s *Svc) fetchLanguages(ctx context.Context, owner string, repos []github.Repo) map[string]int64 {
	if len(repos) == 0 {
		return map[string]int64{}
	}

	workers := s.langWorkers
	if workers <= 0 {
		workers = defaultLangWorkers
	}
	if workers > len(repos) {
		workers = len(repos)
	}

	jobs := make(chan github.Repo)
	results := make([]map[string]int64, 0, len(repos))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for repo := range jobs {
				ro := repo.Owner.Login
				if ro == "" {
					ro = owner
				}
				langs, err := s.gh.RepoLanguages(ctx, ro, repo.Name)
				if err != nil {
					s.log.Debug().Err(err).Str("repo", repo.Name).Msg("language fetch failed, skipping")
					continue
				}
				mu.Lock()
				results = append(results, langs)
				mu.Unlock()
			}
		}()
	}

	for _, r := range repos {
		select {
		case jobs <- r:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return stats.MergeLanguageBytes(results)
		}
	}
	close(jobs)
	wg.Wait()
	return stats.MergeLanguageBytes(results)
}
