package stats

import (
	"sort"
	"time"

	"gitwrapped/internal/adapters/github"
)

const dateLayout = "2006-01-02"

var monthShort = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var monthLong = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// pushCommitCount returns how many commits a PushEvent carried,
// treating an undecodable or empty payload as a single commit
func pushCommitCount(ev github.Event) int {
	p, err := ev.DecodePush()
	if err != nil || len(p.Commits) == 0 {
		return 1
	}
	return len(p.Commits)
}

// TotalCommitsFromEvents estimates annual commits from the events feed.
// The feed only covers about 90 days, so the raw count is extrapolated
// to a year and the larger of the two wins
func TotalCommitsFromEvents(events []github.Event) int {
	raw := 0
	for _, ev := range events {
		if ev.Type != "PushEvent" {
			continue
		}
		if p, err := ev.DecodePush(); err == nil {
			raw += len(p.Commits)
		}
	}
	annual := int(float64(raw)*365.0/90.0 + 0.5)
	if raw > annual {
		return raw
	}
	return annual
}

// NewReposInYear counts repositories created inside the wrap year
func NewReposInYear(repos []github.Repo, year int) int {
	n := 0
	for _, r := range repos {
		if r.CreatedAt.UTC().Year() == year {
			n++
		}
	}
	return n
}

// monthlyCommitCounts buckets push commits by zero based month index
func monthlyCommitCounts(events []github.Event) map[int]int {
	counts := map[int]int{}
	for _, ev := range events {
		if ev.Type != "PushEvent" {
			continue
		}
		m := int(ev.CreatedAt.UTC().Month()) - 1
		counts[m] += pushCommitCount(ev)
	}
	return counts
}

// MostActiveMonth names the month with the most pushed commits,
// defaulting to January when the feed is empty
func MostActiveMonth(events []github.Event) string {
	counts := monthlyCommitCounts(events)
	best := 0
	for m := 1; m < 12; m++ {
		if counts[m] > counts[best] {
			best = m
		}
	}
	return monthLong[best]
}

// MonthlyFromEvents builds the twelve month activity series from push events
func MonthlyFromEvents(events []github.Event) []MonthlyActivity {
	counts := monthlyCommitCounts(events)
	out := make([]MonthlyActivity, 12)
	for i, name := range monthShort {
		out[i] = MonthlyActivity{Month: name, MonthNumber: i + 1, Commits: counts[i]}
	}
	return out
}

// MonthlyFromCalendar builds the twelve month series from contribution days
func MonthlyFromCalendar(days []github.ContributionDay) []MonthlyActivity {
	counts := map[int]int{}
	for _, d := range days {
		t, err := time.Parse(dateLayout, d.Date)
		if err != nil {
			continue
		}
		counts[int(t.Month())-1] += d.Count
	}
	out := make([]MonthlyActivity, 12)
	for i, name := range monthShort {
		out[i] = MonthlyActivity{Month: name, MonthNumber: i + 1, Commits: counts[i]}
	}
	return out
}

// CodingTimePreference finds the peak push hour and its day bucket.
// With no push events the peak defaults to noon
func CodingTimePreference(events []github.Event) (CodingTime, int) {
	hourCounts := map[int]int{}
	for _, ev := range events {
		if ev.Type != "PushEvent" {
			continue
		}
		hourCounts[ev.CreatedAt.UTC().Hour()]++
	}

	peak := 12
	for h := 0; h < 24; h++ {
		if hourCounts[h] > hourCounts[peak] {
			peak = h
		}
	}

	switch {
	case peak >= 5 && peak < 12:
		return CodingMorning, peak
	case peak >= 12 && peak < 17:
		return CodingAfternoon, peak
	case peak >= 17 && peak < 23:
		return CodingEvening, peak
	default:
		return CodingNight, peak
	}
}

// LongestStreak is the longest run of consecutive days with at least one push
func LongestStreak(events []github.Event) int {
	if len(events) == 0 {
		return 0
	}

	seen := map[string]struct{}{}
	for _, ev := range events {
		if ev.Type == "PushEvent" {
			seen[ev.CreatedAt.UTC().Format(dateLayout)] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return 0
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	longest, current := 1, 1
	prev, _ := time.Parse(dateLayout, dates[0])
	for _, d := range dates[1:] {
		day, _ := time.Parse(dateLayout, d)
		if day.Sub(prev) == 24*time.Hour {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 1
		}
		prev = day
	}
	return longest
}

// CalendarFromEvents synthesizes a 365 day heatmap ending today from push
// events. Most cells stay empty because the feed only looks back 90 days
func CalendarFromEvents(events []github.Event, now time.Time) []ContributionDay {
	daily := map[string]int{}
	for _, ev := range events {
		if ev.Type != "PushEvent" {
			continue
		}
		p, err := ev.DecodePush()
		if err != nil || len(p.Commits) == 0 {
			continue
		}
		daily[ev.CreatedAt.UTC().Format(dateLayout)] += len(p.Commits)
	}

	start := now.UTC().AddDate(-1, 0, 0)
	out := make([]ContributionDay, 0, 365)
	for i := 0; i < 365; i++ {
		date := start.AddDate(0, 0, i).Format(dateLayout)
		count := daily[date]

		level := 0
		switch {
		case count == 0:
		case count < 3:
			level = 1
		case count < 6:
			level = 2
		case count < 10:
			level = 3
		default:
			level = 4
		}
		out = append(out, ContributionDay{Date: date, Count: count, Level: level})
	}
	return out
}

// CalendarFromContributions converts GraphQL calendar days into heatmap cells.
// Real contribution counts run hotter than synthesized ones, so the level
// thresholds differ from CalendarFromEvents
func CalendarFromContributions(days []github.ContributionDay) []ContributionDay {
	out := make([]ContributionDay, 0, len(days))
	for _, d := range days {
		level := 0
		switch {
		case d.Count >= 10:
			level = 4
		case d.Count >= 7:
			level = 3
		case d.Count >= 4:
			level = 2
		case d.Count > 0:
			level = 1
		}
		out = append(out, ContributionDay{Date: d.Date, Count: d.Count, Level: level})
	}
	return out
}
