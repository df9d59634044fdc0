package bitbucket

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/maxbolgarin/cliex"
	"github.com/maxbolgarin/commitlens/internal/model"
	"github.com/maxbolgarin/commitlens/internal/model/interfaces"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
)

var _ interfaces.RepositoryProvider = (*Provider)(nil)

// Provider implements the RepositoryProvider interface for a Bitbucket
// on-premise server (REST API 1.0). All failures surface as
// model.TransportError; there is no retry or partial-result recovery.
type Provider struct {
	config  model.ProviderConfig
	logger  logze.Logger
	client  *cliex.HTTP
	apiBase string
}

// New creates a new Bitbucket Server provider
func New(config model.ProviderConfig) (*Provider, error) {
	if config.Username == "" || config.Password == "" {
		return nil, errm.New("Bitbucket basic auth credentials are required")
	}
	log := logze.With("provider", "bitbucket", "component", "provider")

	cli, err := cliex.New(cliex.WithBaseURL(config.BaseURL), cliex.WithLogger(log))
	if err != nil {
		return nil, errm.Wrap(err, "failed to create Bitbucket client")
	}
	cli.C().SetBasicAuth(config.Username, config.Password)

	p := &Provider{
		client:  cli,
		config:  config,
		logger:  log,
		apiBase: fmt.Sprintf("rest/api/1.0/projects/%s/repos/%s", config.Project, config.Repository),
	}

	return p, nil
}

// GetCommits retrieves all commits reachable from a branch, newest-first.
// It walks the paged envelope until the server signals the last page.
func (p *Provider) GetCommits(ctx context.Context, branch string) ([]model.Commit, error) {
	p.logger.Info("fetching commits", "branch", branch)

	var commits []model.Commit
	start := 0

	for {
		query := url.Values{}
		query.Set("until", branch)
		query.Set("start", strconv.Itoa(start))
		query.Set("limit", strconv.Itoa(p.config.CommitPageSize))

		endpoint := p.apiBase + "/commits"

		var page commitsPage
		if _, err := p.client.Get(ctx, endpoint+"?"+query.Encode(), &page); err != nil {
			return nil, model.NewTransportError(endpoint, errm.Wrap(err, "fetch commits page"))
		}

		for _, raw := range page.Values {
			commits = append(commits, raw.toModel())
		}

		if page.IsLastPage {
			break
		}
		start = page.NextPageStart
		p.logger.Debug("fetched page of commits", "next_page_start", start)
	}

	p.logger.Info("retrieved commits", "count", len(commits), "branch", branch)
	return commits, nil
}

// GetCommitChanges retrieves the file changes between two commits. An empty
// previousID lets the server diff against the commit's inherent baseline
// (the empty tree for an initial commit).
func (p *Provider) GetCommitChanges(ctx context.Context, currentID, previousID string) ([]model.FileChange, error) {
	p.logger.Debug("fetching changes", "current", currentID, "previous", previousID)

	var changes []model.FileChange
	start := 0

	for {
		query := url.Values{}
		if previousID != "" {
			query.Set("since", previousID)
		}
		query.Set("start", strconv.Itoa(start))
		query.Set("limit", strconv.Itoa(p.config.ChangePageSize))

		endpoint := fmt.Sprintf("%s/commits/%s/changes", p.apiBase, currentID)

		var page changesPage
		if _, err := p.client.Get(ctx, endpoint+"?"+query.Encode(), &page); err != nil {
			return nil, model.NewTransportError(endpoint, errm.Wrap(err, "fetch changes page"))
		}

		for _, raw := range page.Values {
			changes = append(changes, raw.toModel())
		}

		if page.IsLastPage {
			break
		}
		start = page.NextPageStart
		p.logger.Debug("fetched page of changes", "next_page_start", start)
	}

	p.logger.Debug("retrieved changes", "count", len(changes))
	return changes, nil
}

// GetFileDiff retrieves the hunk/segment data for one file between two
// commits. This endpoint is not paginated.
func (p *Provider) GetFileDiff(ctx context.Context, currentID, previousID, filePath string) ([]model.Diff, error) {
	query := url.Values{}
	if previousID != "" {
		query.Set("since", previousID)
	}
	query.Set("until", currentID)

	endpoint := fmt.Sprintf("%s/diff/%s", p.apiBase, filePath)

	var resp diffResponse
	if _, err := p.client.Get(ctx, endpoint+"?"+query.Encode(), &resp); err != nil {
		return nil, model.NewTransportError(endpoint, errm.Wrap(err, "fetch file diff"))
	}

	return resp.toModel(), nil
}
