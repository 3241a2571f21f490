package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	// perPage is the ceiling GitHub allows for list endpoints
	perPage = 100

	// maxEventPages bounds the events fetch; the feed only covers ~90 days
	// so deeper pagination buys nothing
	maxEventPages = 3
)

// UserByLogin fetches a user profile by login
func (c *Client) UserByLogin(ctx context.Context, login string) (User, error) {
	path := fmt.Sprintf("/users/%s", login)
	resp, err := c.Do(ctx, http.MethodGet, path)
	if err != nil {
		return User{}, err
	}
	defer c.closeBody(resp, path)

	var out User
	if err := decodeBody(resp.Body, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// ReposByUser fetches all owned repositories for a user, most recently
// updated first, walking pages until a short page ends the listing
func (c *Client) ReposByUser(ctx context.Context, login string) ([]Repo, error) {
	var all []Repo
	for page := 1; ; page++ {
		path := fmt.Sprintf("/users/%s/repos?per_page=%d&page=%d&type=owner&sort=updated", login, perPage, page)
		resp, err := c.Do(ctx, http.MethodGet, path)
		if err != nil {
			return nil, err
		}

		var batch []Repo
		err = decodeBody(resp.Body, &batch)
		c.closeBody(resp, path)
		if err != nil {
			return nil, err
		}

		all = append(all, batch...)
		if len(batch) < perPage {
			return all, nil
		}
	}
}

// RepoLanguages fetches the language byte breakdown for one repo
func (c *Client) RepoLanguages(ctx context.Context, owner, name string) (map[string]int64, error) {
	path := fmt.Sprintf("/repos/%s/%s/languages", owner, name)
	resp, err := c.Do(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	defer c.closeBody(resp, path)

	var out map[string]int64
	if err := decodeBody(resp.Body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EventsByUser fetches recent public events for a user, newest first,
// capped at maxEventPages pages
func (c *Client) EventsByUser(ctx context.Context, login string) ([]Event, error) {
	var all []Event
	for page := 1; page <= maxEventPages; page++ {
		path := fmt.Sprintf("/users/%s/events?per_page=%d&page=%d", login, perPage, page)
		resp, err := c.Do(ctx, http.MethodGet, path)
		if err != nil {
			return nil, err
		}

		var batch []Event
		err = decodeBody(resp.Body, &batch)
		c.closeBody(resp, path)
		if err != nil {
			return nil, err
		}

		all = append(all, batch...)
		if len(batch) < perPage {
			break
		}
	}
	return all, nil
}

func (c *Client) closeBody(resp *http.Response, path string) {
	if cerr := resp.Body.Close(); cerr != nil {
		c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
	}
}

func decodeBody(r io.Reader, out any) error {
	b, err := io.ReadAll(io.LimitReader(r, 4<<20))
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
