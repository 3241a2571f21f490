package stats

import (
	"regexp"

	"gitwrapped/internal/adapters/github"
)

// fixPattern matches commit messages that claim to fix something
var fixPattern = regexp.MustCompile(`(?i)\b(fix|fixed|fixes|bugfix|hotfix)\b`)

// CollaborationStats tallies PR events, closed issue events and the set of
// repositories pushed to
func CollaborationStats(events []github.Event) Collaboration {
	var out Collaboration
	pushed := map[string]struct{}{}

	for _, ev := range events {
		switch ev.Type {
		case "PullRequestEvent":
			out.PRs++
		case "IssuesEvent":
			if p, err := ev.DecodeIssues(); err == nil && p.Action == "closed" {
				out.Issues++
			}
		case "PushEvent":
			pushed[ev.Repo.Name] = struct{}{}
		}
	}

	out.ReposContributed = len(pushed)
	return out
}

// ComputeFunStats derives the novelty numbers from push events.
// Late night means an event created at 23:00 or later, or before 05:00
func ComputeFunStats(events []github.Event) FunStats {
	var (
		fixCommits   int
		msgLenTotal  int
		totalCommits int
		lateNight    int
	)
	daily := map[string]int{}

	for _, ev := range events {
		if ev.Type != "PushEvent" {
			continue
		}
		p, err := ev.DecodePush()
		if err != nil || len(p.Commits) == 0 {
			continue
		}

		for _, c := range p.Commits {
			totalCommits++
			msgLenTotal += len(c.Message)
			if fixPattern.MatchString(c.Message) {
				fixCommits++
			}
		}

		hour := ev.CreatedAt.UTC().Hour()
		if hour >= 23 || hour < 5 {
			lateNight += len(p.Commits)
		}

		daily[ev.CreatedAt.UTC().Format(dateLayout)] += len(p.Commits)
	}

	out := FunStats{FixCommits: fixCommits}
	if totalCommits > 0 {
		out.AvgCommitMsgLength = (msgLenTotal + totalCommits/2) / totalCommits
		out.LateNightPercent = int(float64(lateNight)/float64(totalCommits)*100 + 0.5)
	}

	for date, count := range daily {
		if count > out.BusiestDayCommits || (count == out.BusiestDayCommits && out.BusiestDay != "" && date < out.BusiestDay) {
			out.BusiestDayCommits = count
			out.BusiestDay = date
		}
	}
	return out
}

// CommitsPerDay averages commits over active days, rounded to two decimals
func CommitsPerDay(totalCommits, daysActive int) float64 {
	if daysActive == 0 {
		return 0
	}
	v := float64(totalCommits) / float64(daysActive)
	return float64(int(v*100+0.5)) / 100
}

// EstimateCommitSize buckets average commits per repository into a size
// label. Zero repos defaults to medium
func EstimateCommitSize(totalCommits, repoCount int) string {
	if repoCount == 0 {
		return "medium"
	}
	perRepo := float64(totalCommits) / float64(repoCount)
	switch {
	case perRepo < 50:
		return "small"
	case perRepo < 150:
		return "medium"
	default:
		return "large"
	}
}

// MergedPRs estimates merged pull requests at an 80 percent merge rate
func MergedPRs(prs int) int { return prs * 8 / 10 }

// PRsReviewed estimates reviewed pull requests at half the created count
func PRsReviewed(prs int) int { return prs / 2 }

// IssuesOpened estimates opened issues at 30 percent of closed ones
func IssuesOpened(issuesClosed int) int { return issuesClosed * 3 / 10 }

// TotalIssues is closed issues plus the opened estimate
func TotalIssues(issuesClosed int) int { return issuesClosed + IssuesOpened(issuesClosed) }

// FollowersGained estimates the year's follower growth at 20 percent
func FollowersGained(followers int) int {
	gained := followers - followers*8/10
	if gained < 0 {
		return 0
	}
	return gained
}
