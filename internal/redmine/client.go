// Package redmine fetches projects and their memberships from a Redmine
// instance. The client is the optional remote project source; when no base
// URL is configured it reports itself disabled and is never called.
package redmine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/config"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"

	"go.uber.org/zap"
)

const projectPageSize = 100

// Client talks to the Redmine REST API.
type Client struct {
	log     *zap.SugaredLogger
	baseURL *url.URL
	apiKey  string
	http    *http.Client
}

// New builds a client from configuration. An empty base URL yields a
// disabled client.
func New(log *zap.SugaredLogger, cfg config.RedmineConfig) (*Client, error) {
	c := &Client{
		log:    log.Named("redmine"),
		apiKey: cfg.APIKey,
		http:   &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.BaseURL == "" {
		return c, nil
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse redmine base url: %w", err)
	}
	c.baseURL = base
	return c, nil
}

// Enabled reports whether a base URL is configured.
func (c *Client) Enabled() bool { return c.baseURL != nil }

// Host returns the configured Redmine host for metadata reporting.
func (c *Client) Host() string {
	if c.baseURL == nil {
		return ""
	}
	return c.baseURL.Host
}

type projectsPage struct {
	Projects []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"projects"`
	TotalCount int `json:"total_count"`
}

type projectDetail struct {
	Project struct {
		Memberships []struct {
			User *struct {
				ID   int    `json:"id"`
				Name string `json:"name"`
			} `json:"user"`
			Group *struct {
				ID   int    `json:"id"`
				Name string `json:"name"`
			} `json:"group"`
		} `json:"memberships"`
	} `json:"project"`
}

// FetchProjects pulls every project page, then each project's memberships.
// A membership fetch failure is logged and leaves that project without
// members; only the top-level project fetch can fail the whole call.
func (c *Client) FetchProjects(ctx context.Context) ([]entities.Project, error) {
	if c.baseURL == nil {
		return nil, fmt.Errorf("redmine is not configured")
	}

	pages, err := c.fetchAllProjects(ctx)
	if err != nil {
		return nil, err
	}

	projects := make([]entities.Project, 0, len(pages))
	for _, p := range pages {
		members, err := c.fetchProjectMembers(ctx, p.ID)
		if err != nil {
			c.log.Errorw("failed to fetch project members", "error", err, "project_id", p.ID)
			members = []entities.Member{}
		}
		projects = append(projects, entities.Project{
			ID:      strconv.Itoa(p.ID),
			Name:    p.Name,
			Members: members,
		})
	}
	return projects, nil
}

type projectRef struct {
	ID   int
	Name string
}

func (c *Client) fetchAllProjects(ctx context.Context) ([]projectRef, error) {
	projects := make([]projectRef, 0)
	offset := 0
	total := -1

	for total < 0 || offset < total {
		endpoint := c.baseURL.JoinPath("/projects.json")
		query := endpoint.Query()
		query.Set("limit", strconv.Itoa(projectPageSize))
		query.Set("offset", strconv.Itoa(offset))
		query.Set("status", "*")
		endpoint.RawQuery = query.Encode()

		var page projectsPage
		if err := c.getJSON(ctx, endpoint, &page); err != nil {
			return nil, err
		}
		for _, p := range page.Projects {
			projects = append(projects, projectRef{ID: p.ID, Name: p.Name})
		}

		total = page.TotalCount
		if total == 0 {
			total = len(page.Projects)
		}
		offset += projectPageSize
		if len(page.Projects) == 0 {
			break
		}
	}
	return projects, nil
}

// fetchProjectMembers maps user memberships as-is and group memberships to
// synthetic "group-<id>" members, deduplicated by id.
func (c *Client) fetchProjectMembers(ctx context.Context, projectID int) ([]entities.Member, error) {
	endpoint := c.baseURL.JoinPath(fmt.Sprintf("/projects/%d.json", projectID))
	query := endpoint.Query()
	query.Set("include", "memberships")
	endpoint.RawQuery = query.Encode()

	var detail projectDetail
	if err := c.getJSON(ctx, endpoint, &detail); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	members := make([]entities.Member, 0, len(detail.Project.Memberships))
	for _, m := range detail.Project.Memberships {
		var member entities.Member
		switch {
		case m.User != nil:
			member = entities.Member{ID: strconv.Itoa(m.User.ID), Name: m.User.Name}
		case m.Group != nil:
			member = entities.Member{
				ID:   fmt.Sprintf("group-%d", m.Group.ID),
				Name: fmt.Sprintf("%s (グループ)", m.Group.Name),
			}
		default:
			continue
		}
		if _, ok := seen[member.ID]; ok {
			continue
		}
		seen[member.ID] = struct{}{}
		members = append(members, member)
	}
	return members, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint *url.URL, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Redmine-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("redmine request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("redmine API error (%d): %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode redmine response: %w", err)
	}
	return nil
}
