// Package stats derives the wrap statistics from raw GitHub activity.
// Everything here is pure: inputs in, numbers out, no IO
package stats

import "gitwrapped/internal/adapters/github"

// CodingTime buckets the day by peak push hour
type CodingTime string

const (
	CodingMorning   CodingTime = "morning"
	CodingAfternoon CodingTime = "afternoon"
	CodingEvening   CodingTime = "evening"
	CodingNight     CodingTime = "night"
)

// LanguageStat is one language slice of the byte distribution
type LanguageStat struct {
	Name       string  `json:"name"`
	Bytes      int64   `json:"bytes"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// ContributionDay is one heatmap cell, level 0..4 like the GitHub graph
type ContributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// MonthlyActivity is the commit count for one calendar month
type MonthlyActivity struct {
	Month       string `json:"month"`
	MonthNumber int    `json:"monthNumber"`
	Commits     int    `json:"commits"`
}

// TopRepo describes the repository the user pushed to most. Strategy names
// the data source that produced the commit count, so estimates stay
// distinguishable from real numbers
type TopRepo struct {
	Name     string `json:"name"`
	Commits  int    `json:"commits"`
	Language string `json:"language"`
	Stars    int    `json:"stars"`
	Strategy string `json:"strategy"`
}

// Collaboration counts PR and issue activity from the events feed
type Collaboration struct {
	PRs              int
	Issues           int
	ReposContributed int
}

// FunStats are the novelty numbers on the closing slides
type FunStats struct {
	FixCommits         int
	AvgCommitMsgLength int
	LateNightPercent   int
	BusiestDay         string
	BusiestDayCommits  int
}

// Input is everything Derive needs, fetched upstream by the service layer.
// Contrib is nil when the GraphQL path was unavailable and the events feed
// is the only source
type Input struct {
	User      github.User
	Repos     []github.Repo
	Events    []github.Event
	Languages []LanguageStat
	Contrib   *github.Contributions
}

// Summary is the full derived statistics block of a wrap
type Summary struct {
	TotalCommits int
	TotalRepos   int
	PublicRepos  int
	NewRepos     int
	TotalStars   int
	TotalForks   int
	Followers    int

	FollowersGained int

	PrimaryLanguage string
	Languages       []LanguageStat

	MostActiveMonth string
	LongestStreak   int
	CodingTime      CodingTime
	PeakHour        int

	TopRepo TopRepo

	PRsCreated       int
	MergedPRs        int
	PRsReviewed      int
	IssuesClosed     int
	IssuesOpened     int
	TotalIssues      int
	ReposContributed int

	DaysActive    int
	CommitsPerDay float64
	CommitSize    string

	FixCommits         int
	AvgCommitMsgLength int
	LateNightPercent   int
	BusiestDay         string
	BusiestDayCommits  int

	Calendar []ContributionDay
	Monthly  []MonthlyActivity
}
