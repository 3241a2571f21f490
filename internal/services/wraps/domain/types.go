// Package domain holds the wrap snapshot model and service contracts
package domain

import (
	"time"

	"gitwrapped/internal/adapters/github"
	"gitwrapped/internal/core/stats"
)

// Dataset source tags, recorded on the snapshot pipeline for observability
const (
	SourceGraphQL = "graphql"
	SourceEvents  = "events"
)

// Dataset is everything the aggregator fetched for one (username, year).
// Contrib is nil when the GraphQL path was unavailable; Source names the
// contribution data source actually used downstream
type Dataset struct {
	User          github.User
	Repos         []github.Repo
	Events        []github.Event
	LanguageBytes map[string]int64
	Contrib       *github.Contributions
	Source        string
}

// WrapSnapshot is the full derived year in review for one user.
// One snapshot exists per (username, year) and is upserted in place
type WrapSnapshot struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Year     int    `json:"year"`

	DisplayName string `json:"display_name,omitempty"`
	AvatarURL   string `json:"avatar_url"`

	TotalCommits   int `json:"total_commits"`
	TotalRepos     int `json:"total_repos"`
	PublicRepos    int `json:"public_repos"`
	NewReposInYear int `json:"new_repos_in_year"`
	TotalStars     int `json:"total_stars"`
	TotalForks     int `json:"total_forks"`

	Followers       int `json:"followers"`
	FollowersGained int `json:"followers_gained"`

	PrimaryLanguage string               `json:"primary_language"`
	Languages       []stats.LanguageStat `json:"languages"`

	MostActiveMonth      string                  `json:"most_active_month"`
	MonthlyActivity      []stats.MonthlyActivity `json:"monthly_activity"`
	LongestStreak        int                     `json:"longest_streak"`
	CodingTimePreference string                  `json:"coding_time_preference"`
	PeakHour             int                     `json:"peak_hour"`
	DaysActive           int                     `json:"days_active"`
	CommitsPerDay        float64                 `json:"commits_per_day"`
	ContributionData     []stats.ContributionDay `json:"contribution_data"`
	ContributionSource   string                  `json:"contribution_source"`

	TopRepoName     string `json:"top_repo_name"`
	TopRepoCommits  int    `json:"top_repo_commits"`
	TopRepoLanguage string `json:"top_repo_language"`
	TopRepoStars    int    `json:"top_repo_stars"`
	TopRepoStrategy string `json:"top_repo_strategy"`

	PRsCreated       int `json:"prs_created"`
	MergedPRs        int `json:"merged_prs"`
	PRsReviewed      int `json:"prs_reviewed"`
	IssuesClosed     int `json:"issues_closed"`
	IssuesOpened     int `json:"issues_opened"`
	TotalIssues      int `json:"total_issues"`
	ReposContributed int `json:"repos_contributed"`

	ContributionBadge string `json:"contribution_badge"`
	LanguageBadge     string `json:"language_badge"`
	ShareText         string `json:"share_text"`

	// GrowthVsLastYear needs a previous snapshot to compare against and
	// stays null until that history exists
	GrowthVsLastYear *float64 `json:"growth_vs_last_year"`

	DeveloperPersonality   string   `json:"developer_personality"`
	PersonalityDescription string   `json:"personality_description"`
	PersonalityTraits      []string `json:"personality_traits"`

	FixCommits              int    `json:"fix_commits"`
	AvgCommitMsgLength      int    `json:"avg_commit_msg_length"`
	LateNightCommitsPercent int    `json:"late_night_commits_percent"`
	FastestCommitDay        string `json:"fastest_commit_day,omitempty"`
	FastestCommitCount      int    `json:"fastest_commit_count"`

	ViewCount  int       `json:"view_count"`
	ShareCount int       `json:"share_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
