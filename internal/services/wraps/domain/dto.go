package domain

// AnalyzeInput is the input for generating or fetching a cached wrap.
// Year zero means the current year
type AnalyzeInput struct {
	Username string `json:"username" validate:"required,gh_username" example:"octocat"`
	Year     int    `json:"year,omitempty" validate:"omitempty,min=2008,max=2100" example:"2024"`
}

// AnalyzeResult wraps a snapshot with its cache provenance
type AnalyzeResult struct {
	Wrap   WrapSnapshot `json:"wrap"`
	Cached bool         `json:"cached"`
}

// ShareInput records a share action against an existing wrap
type ShareInput struct {
	WrapID   string `json:"-"`
	Platform string `json:"platform" validate:"required,oneof=twitter linkedin download link" example:"twitter"`
}
