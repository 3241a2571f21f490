package stats

import (
	"time"

	"gitwrapped/internal/adapters/github"
)

// Derive turns an Input into the full statistics block for one wrap year.
// GraphQL contribution data wins wherever it is present; the events feed
// backfills everything else
func Derive(in Input, year int, now time.Time, estimate Estimator) Summary {
	var sum Summary

	sum.PublicRepos = in.User.PublicRepos
	sum.Followers = in.User.Followers
	sum.FollowersGained = FollowersGained(in.User.Followers)

	for _, r := range in.Repos {
		sum.TotalStars += r.Stargazers
		sum.TotalForks += r.ForksCount
	}

	graphql := in.Contrib != nil

	if graphql && in.Contrib.TotalCommits > 0 {
		sum.TotalCommits = in.Contrib.TotalCommits
	} else {
		sum.TotalCommits = TotalCommitsFromEvents(in.Events)
	}

	sum.TotalRepos = len(in.Repos)
	var repoCommits []github.RepoCommits
	if graphql && len(in.Contrib.RepoCommits) > 0 {
		sum.TotalRepos = len(in.Contrib.RepoCommits)
		repoCommits = in.Contrib.RepoCommits
	}

	sum.NewRepos = NewReposInYear(in.Repos, year)
	sum.MostActiveMonth = MostActiveMonth(in.Events)
	sum.LongestStreak = LongestStreak(in.Events)
	sum.CodingTime, sum.PeakHour = CodingTimePreference(in.Events)
	sum.TopRepo = FindTopRepository(in.Repos, in.Events, repoCommits, estimate)

	collab := CollaborationStats(in.Events)
	sum.PRsCreated = collab.PRs
	sum.MergedPRs = MergedPRs(collab.PRs)
	sum.PRsReviewed = PRsReviewed(collab.PRs)
	sum.IssuesClosed = collab.Issues
	sum.IssuesOpened = IssuesOpened(collab.Issues)
	sum.TotalIssues = TotalIssues(collab.Issues)
	sum.ReposContributed = collab.ReposContributed

	fun := ComputeFunStats(in.Events)
	sum.FixCommits = fun.FixCommits
	sum.AvgCommitMsgLength = fun.AvgCommitMsgLength
	sum.LateNightPercent = fun.LateNightPercent
	sum.BusiestDay = fun.BusiestDay
	sum.BusiestDayCommits = fun.BusiestDayCommits

	if graphql && len(in.Contrib.Calendar.Days) > 0 {
		sum.Monthly = MonthlyFromCalendar(in.Contrib.Calendar.Days)
		sum.Calendar = CalendarFromContributions(in.Contrib.Calendar.Days)
	} else {
		sum.Monthly = MonthlyFromEvents(in.Events)
		sum.Calendar = CalendarFromEvents(in.Events, now)
	}

	for _, d := range sum.Calendar {
		if d.Count > 0 {
			sum.DaysActive++
		}
	}
	sum.CommitsPerDay = CommitsPerDay(sum.TotalCommits, sum.DaysActive)
	sum.CommitSize = EstimateCommitSize(sum.TotalCommits, sum.TotalRepos)

	sum.Languages = in.Languages
	sum.PrimaryLanguage = "Unknown"
	if len(in.Languages) > 0 {
		sum.PrimaryLanguage = in.Languages[0].Name
	}

	return sum
}
