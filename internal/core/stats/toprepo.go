package stats

import (
	"sort"
	"strings"

	"gitwrapped/internal/adapters/github"
)

// Estimator picks a commit count inside [min, max] for repos where no real
// count exists. Production uses a uniform draw, tests pin the low end
type Estimator func(min, max int) int

// topRepoStrategy tries one way of resolving the top repository.
// It returns false when its data source has nothing to offer
type topRepoStrategy struct {
	name string
	run  func(repos []github.Repo, events []github.Event, repoCommits []github.RepoCommits, estimate Estimator) (TopRepo, bool)
}

var topRepoStrategies = []topRepoStrategy{
	{"graphql", topRepoFromGraphQL},
	{"push_events", topRepoFromPushEvents},
	{"recent_push", topRepoFromRecentPush},
	{"most_starred", topRepoFromStars},
	{"first_repo", topRepoFirst},
}

// FindTopRepository resolves the most worked on repository through an
// ordered strategy chain, best data first. The winning strategy name is
// recorded on the result so estimated counts stay distinguishable from
// real ones
func FindTopRepository(repos []github.Repo, events []github.Event, repoCommits []github.RepoCommits, estimate Estimator) TopRepo {
	for _, s := range topRepoStrategies {
		if top, ok := s.run(repos, events, repoCommits, estimate); ok {
			top.Strategy = s.name
			return top
		}
	}
	return TopRepo{Name: "Unknown", Language: "Unknown", Strategy: "none"}
}

func topRepoFromGraphQL(_ []github.Repo, _ []github.Event, repoCommits []github.RepoCommits, _ Estimator) (TopRepo, bool) {
	if len(repoCommits) == 0 {
		return TopRepo{}, false
	}
	sorted := make([]github.RepoCommits, len(repoCommits))
	copy(sorted, repoCommits)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Commits > sorted[j].Commits })

	top := sorted[0]
	lang := top.Language
	if lang == "" {
		lang = "Unknown"
	}
	return TopRepo{Name: top.Name, Commits: top.Commits, Language: lang, Stars: top.Stars}, true
}

func topRepoFromPushEvents(repos []github.Repo, events []github.Event, _ []github.RepoCommits, _ Estimator) (TopRepo, bool) {
	pushCounts := map[string]int{}
	for _, ev := range events {
		if ev.Type != "PushEvent" {
			continue
		}
		p, err := ev.DecodePush()
		if err != nil || len(p.Commits) == 0 {
			continue
		}
		pushCounts[ev.Repo.Name] += len(p.Commits)
	}
	if len(pushCounts) == 0 {
		return TopRepo{}, false
	}

	bestFull := ""
	for full, count := range pushCounts {
		if bestFull == "" || count > pushCounts[bestFull] || (count == pushCounts[bestFull] && full < bestFull) {
			bestFull = full
		}
	}

	name := bestFull
	if _, short, ok := strings.Cut(bestFull, "/"); ok {
		name = short
	}
	for i := range repos {
		if repos[i].Name == name || repos[i].FullName == bestFull {
			return repoResult(repos[i], pushCounts[bestFull]), true
		}
	}
	return TopRepo{}, false
}

func topRepoFromRecentPush(repos []github.Repo, _ []github.Event, _ []github.RepoCommits, estimate Estimator) (TopRepo, bool) {
	var candidates []github.Repo
	for _, r := range repos {
		if !r.Fork && !r.PushedAt.IsZero() {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return TopRepo{}, false
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].PushedAt.After(candidates[j].PushedAt) })
	return repoResult(candidates[0], estimate(20, 69)), true
}

func topRepoFromStars(repos []github.Repo, _ []github.Event, _ []github.RepoCommits, estimate Estimator) (TopRepo, bool) {
	var candidates []github.Repo
	for _, r := range repos {
		if !r.Fork {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return TopRepo{}, false
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Stargazers > candidates[j].Stargazers })
	return repoResult(candidates[0], estimate(10, 39)), true
}

func topRepoFirst(repos []github.Repo, _ []github.Event, _ []github.RepoCommits, estimate Estimator) (TopRepo, bool) {
	for _, r := range repos {
		if !r.Fork {
			return repoResult(r, estimate(5, 24)), true
		}
	}
	if len(repos) > 0 {
		return repoResult(repos[0], estimate(5, 24)), true
	}
	return TopRepo{}, false
}

func repoResult(r github.Repo, commits int) TopRepo {
	lang := r.Language
	if lang == "" {
		lang = "Unknown"
	}
	return TopRepo{Name: r.Name, Commits: commits, Language: lang, Stars: r.Stargazers}
}
