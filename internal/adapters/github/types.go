package github

import (
	"encoding/json"
	"time"
)

// User is a partial GitHub user document with fields we use
type User struct {
	ID          int64     `json:"id"`
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatar_url"`
	Bio         string    `json:"bio"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Blog        string    `json:"blog"`
	Twitter     string    `json:"twitter_username"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	PublicGists int       `json:"public_gists"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	HTMLURL     string    `json:"html_url"`
}

// Repo is a partial GitHub repository document with fields we use
type Repo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	Private     bool      `json:"private"`
	Fork        bool      `json:"fork"`
	Archived    bool      `json:"archived"`
	Language    string    `json:"language"`
	Stargazers  int       `json:"stargazers_count"`
	ForksCount  int       `json:"forks_count"`
	Watchers    int       `json:"watchers_count"`
	Owner       RepoOwner `json:"owner"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	PushedAt    time.Time `json:"pushed_at"`
	HTMLURL     string    `json:"html_url"`
}

// RepoOwner identifies the account a repository belongs to
type RepoOwner struct {
	Login string `json:"login"`
}

// Event is a public activity event from /users/{login}/events
// Payload stays raw; callers decode it per Type
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
	Repo      EventRepo       `json:"repo"`
	Payload   json.RawMessage `json:"payload"`
}

// EventRepo is the minimal repo reference carried on events
type EventRepo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PushPayload is the payload of a PushEvent
type PushPayload struct {
	Size    int          `json:"size"`
	Commits []PushCommit `json:"commits"`
}

// PushCommit is a single commit inside a PushEvent payload
type PushCommit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
}

// PullRequestPayload is the payload of a PullRequestEvent
type PullRequestPayload struct {
	Action      string `json:"action"`
	PullRequest struct {
		Merged bool `json:"merged"`
	} `json:"pull_request"`
}

// IssuesPayload is the payload of an IssuesEvent
type IssuesPayload struct {
	Action string `json:"action"`
}

// DecodePush decodes the event payload as a PushEvent payload
func (e Event) DecodePush() (PushPayload, error) {
	var p PushPayload
	err := json.Unmarshal(e.Payload, &p)
	return p, err
}

// DecodePullRequest decodes the event payload as a PullRequestEvent payload
func (e Event) DecodePullRequest() (PullRequestPayload, error) {
	var p PullRequestPayload
	err := json.Unmarshal(e.Payload, &p)
	return p, err
}

// DecodeIssues decodes the event payload as an IssuesEvent payload
func (e Event) DecodeIssues() (IssuesPayload, error) {
	var p IssuesPayload
	err := json.Unmarshal(e.Payload, &p)
	return p, err
}

// ContributionDay is one cell of the contribution calendar
type ContributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"contributionCount"`
}

// ContributionCalendar is the GraphQL contribution calendar for a year window
type ContributionCalendar struct {
	Total int
	Days  []ContributionDay
}

// RepoCommits is a per repository commit count from the GraphQL
// contributionsCollection, covering private activity the events feed misses
type RepoCommits struct {
	Name     string
	Owner    string
	Stars    int
	Language string
	Commits  int
}

// Contributions bundles the GraphQL contribution data for a user and year
type Contributions struct {
	TotalCommits int
	Restricted   int
	Calendar     ContributionCalendar
	RepoCommits  []RepoCommits
}
