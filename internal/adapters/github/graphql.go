package github

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "gitwrapped/internal/platform/errors"
)

const graphqlTimeout = 30 * time.Second

// contributionsQuery pulls the calendar and per repo commit counts in one shot
const contributionsQuery = `
query($username: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $username) {
    contributionsCollection(from: $from, to: $to) {
      totalCommitContributions
      restrictedContributionsCount
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            contributionCount
            date
          }
        }
      }
      commitContributionsByRepository(maxRepositories: 100) {
        repository {
          name
          owner { login }
          stargazerCount
          primaryLanguage { name }
        }
        contributions { totalCount }
      }
    }
  }
}`

// gqlEnvelope mirrors only the response slice we consume
type gqlEnvelope struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				TotalCommitContributions     int `json:"totalCommitContributions"`
				RestrictedContributionsCount int `json:"restrictedContributionsCount"`
				ContributionCalendar         struct {
					TotalContributions int `json:"totalContributions"`
					Weeks              []struct {
						ContributionDays []ContributionDay `json:"contributionDays"`
					} `json:"weeks"`
				} `json:"contributionCalendar"`
				CommitContributionsByRepository []struct {
					Repository struct {
						Name  string `json:"name"`
						Owner struct {
							Login string `json:"login"`
						} `json:"owner"`
						StargazerCount  int `json:"stargazerCount"`
						PrimaryLanguage *struct {
							Name string `json:"name"`
						} `json:"primaryLanguage"`
					} `json:"repository"`
					Contributions struct {
						TotalCount int `json:"totalCount"`
					} `json:"contributions"`
				} `json:"commitContributionsByRepository"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// ContributionsByUser fetches the contribution collection for [from, to].
// GraphQL requires a token; callers without one should skip straight to the
// events based aggregation path. No retries here: a wrap request is already
// interactive, and the REST fallback covers the failure
func (c *Client) ContributionsByUser(ctx context.Context, login string, from, to time.Time) (Contributions, error) {
	tok := c.getToken()
	if tok == "" {
		return Contributions{}, perr.Unauthenticatedf("github graphql requires a token")
	}

	body, err := json.Marshal(map[string]any{
		"query": contributionsQuery,
		"variables": map[string]string{
			"username": login,
			"from":     from.UTC().Format(time.RFC3339),
			"to":       to.UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return Contributions{}, perr.Wrapf(err, perr.ErrorCodeJSON, "github graphql encode failed")
	}

	ctx, cancel := context.WithTimeout(ctx, graphqlTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+"/graphql", bytes.NewReader(body))
	if err != nil {
		return Contributions{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "github graphql new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		return Contributions{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "github graphql do failed")
	}
	defer c.closeBody(resp, "/graphql")

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("latency", c.now().Sub(start)).
		Str("login", login).
		Msg("github graphql response")

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return Contributions{}, perr.Unauthenticatedf("github graphql token rejected")
	default:
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return Contributions{}, perr.Unavailablef("github graphql status %d body %s", resp.StatusCode, string(tail))
	}

	var env gqlEnvelope
	if err := decodeBody(resp.Body, &env); err != nil {
		return Contributions{}, perr.Wrapf(err, perr.ErrorCodeMalformedUpstream, "github graphql decode failed")
	}
	if len(env.Errors) > 0 {
		return Contributions{}, perr.MalformedUpstreamf("github graphql error: %s", env.Errors[0].Message)
	}
	if env.Data.User == nil {
		return Contributions{}, perr.MalformedUpstreamf("github graphql response missing user")
	}

	cc := env.Data.User.ContributionsCollection
	out := Contributions{
		TotalCommits: cc.TotalCommitContributions,
		Restricted:   cc.RestrictedContributionsCount,
		Calendar: ContributionCalendar{
			Total: cc.ContributionCalendar.TotalContributions,
		},
	}
	for _, w := range cc.ContributionCalendar.Weeks {
		out.Calendar.Days = append(out.Calendar.Days, w.ContributionDays...)
	}
	for _, rc := range cc.CommitContributionsByRepository {
		lang := ""
		if rc.Repository.PrimaryLanguage != nil {
			lang = rc.Repository.PrimaryLanguage.Name
		}
		out.RepoCommits = append(out.RepoCommits, RepoCommits{
			Name:     rc.Repository.Name,
			Owner:    rc.Repository.Owner.Login,
			Stars:    rc.Repository.StargazerCount,
			Language: lang,
			Commits:  rc.Contributions.TotalCount,
		})
	}
	return out, nil
}

// YearDateRange returns the [from, to] aggregation window for year.
// Past years close at Dec 31; the current (or a future) year closes at now
func YearDateRange(year int, now time.Time) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	if now.UTC().Year() > year {
		return from, time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	}
	return from, now.UTC()
}
