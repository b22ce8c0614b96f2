// Copyright (C) 2025 Craftbase GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package githubint

import (
	"context"

	"github.com/craftbase/appcatalog/shared"
	"github.com/google/go-github/v62/github"
)

type githubClient struct {
	client *github.Client
}

// NewGithubClient talks to the public github API. The token is optional:
// without it, requests run anonymously against the lower rate limit.
func NewGithubClient(token string) shared.GithubClientFacade {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return githubClient{client: client}
}

func (c githubClient) GetRepository(ctx context.Context, owner string, repo string) (*github.Repository, *github.Response, error) {
	return c.client.Repositories.Get(ctx, owner, repo)
}

func (c githubClient) ListBranches(ctx context.Context, owner string, repo string, opts *github.BranchListOptions) ([]*github.Branch, *github.Response, error) {
	return c.client.Repositories.ListBranches(ctx, owner, repo, opts)
}

func (c githubClient) ListCommits(ctx context.Context, owner string, repo string, opts *github.CommitsListOptions) ([]*github.RepositoryCommit, *github.Response, error) {
	return c.client.Repositories.ListCommits(ctx, owner, repo, opts)
}

func (c githubClient) GetReadme(ctx context.Context, owner string, repo string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, *github.Response, error) {
	return c.client.Repositories.GetReadme(ctx, owner, repo, opts)
}

func (c githubClient) ListReleases(ctx context.Context, owner string, repo string, opts *github.ListOptions) ([]*github.RepositoryRelease, *github.Response, error) {
	return c.client.Repositories.ListReleases(ctx, owner, repo, opts)
}
