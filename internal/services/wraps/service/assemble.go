package service

import (
	"fmt"
	"strings"

	"gitwrapped/internal/core/personality"
	"gitwrapped/internal/core/stats"
	"gitwrapped/internal/services/wraps/domain"
)

// promptStats projects the derived summary into the fixed shape the
// personality analyzer consumes
func promptStats(year int, sum stats.Summary) personality.PromptStats {
	langs := make([]string, 0, len(sum.Languages))
	for _, l := range sum.Languages {
		langs = append(langs, l.Name)
	}
	return personality.PromptStats{
		Year:            year,
		Commits:         sum.TotalCommits,
		PrimaryLanguage: sum.PrimaryLanguage,
		Languages:       langs,
		CodingTime:      string(sum.CodingTime),
		PRs:             sum.PRsCreated,
		Issues:          sum.IssuesClosed,
		RepoCount:       sum.TotalRepos,
		TopRepo:         sum.TopRepo.Name,
		AvgCommitSize:   sum.CommitSize,
	}
}

// shareText renders the one line summary share targets receive
func shareText(year int, sum stats.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "My %d on GitHub: %s commits across %d repos and %s stars earned.",
		year, stats.FormatWithCommas(sum.TotalCommits), sum.TotalRepos, stats.FormatCompact(sum.TotalStars))
	fmt.Fprintf(&b, " Peak hour %s (%s).", stats.FormatHour(sum.PeakHour), stats.TimeRange(sum.CodingTime))
	if sum.BusiestDay != "" {
		fmt.Fprintf(&b, " Busiest day: %s.", stats.FormatDate(sum.BusiestDay))
	}
	return b.String()
}

// assemble builds the snapshot from the dataset, the derived summary and
// the personality result
func assemble(ds domain.Dataset, sum stats.Summary, pers personality.Personality, year int) domain.WrapSnapshot {
	return domain.WrapSnapshot{
		Username:    ds.User.Login,
		Year:        year,
		DisplayName: ds.User.Name,
		AvatarURL:   ds.User.AvatarURL,

		TotalCommits:   sum.TotalCommits,
		TotalRepos:     sum.TotalRepos,
		PublicRepos:    sum.PublicRepos,
		NewReposInYear: sum.NewRepos,
		TotalStars:     sum.TotalStars,
		TotalForks:     sum.TotalForks,

		Followers:       sum.Followers,
		FollowersGained: sum.FollowersGained,

		PrimaryLanguage: sum.PrimaryLanguage,
		Languages:       sum.Languages,

		MostActiveMonth:      sum.MostActiveMonth,
		MonthlyActivity:      sum.Monthly,
		LongestStreak:        sum.LongestStreak,
		CodingTimePreference: string(sum.CodingTime),
		PeakHour:             sum.PeakHour,
		DaysActive:           sum.DaysActive,
		CommitsPerDay:        sum.CommitsPerDay,
		ContributionData:     sum.Calendar,
		ContributionSource:   ds.Source,

		TopRepoName:     sum.TopRepo.Name,
		TopRepoCommits:  sum.TopRepo.Commits,
		TopRepoLanguage: sum.TopRepo.Language,
		TopRepoStars:    sum.TopRepo.Stars,
		TopRepoStrategy: sum.TopRepo.Strategy,

		PRsCreated:       sum.PRsCreated,
		MergedPRs:        sum.MergedPRs,
		PRsReviewed:      sum.PRsReviewed,
		IssuesClosed:     sum.IssuesClosed,
		IssuesOpened:     sum.IssuesOpened,
		TotalIssues:      sum.TotalIssues,
		ReposContributed: sum.ReposContributed,

		ContributionBadge: stats.ContributionBadge(sum.PRsCreated, sum.IssuesClosed),
		LanguageBadge:     stats.LanguageBadge(len(sum.Languages)),
		ShareText:         shareText(year, sum),

		DeveloperPersonality:   pers.Archetype,
		PersonalityDescription: pers.Description,
		PersonalityTraits:      pers.Traits,

		FixCommits:              sum.FixCommits,
		AvgCommitMsgLength:      sum.AvgCommitMsgLength,
		LateNightCommitsPercent: sum.LateNightPercent,
		FastestCommitDay:        sum.BusiestDay,
		FastestCommitCount:      sum.BusiestDayCommits,
	}
}
