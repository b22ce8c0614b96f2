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
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/craftbase/appcatalog/dtos"
	"github.com/craftbase/appcatalog/shared"
	"github.com/craftbase/appcatalog/utils"
	"github.com/google/go-github/v62/github"
)

var ErrInvalidRepoURL = errors.New("invalid github repository url")

// the two accepted url shapes: plain and .git suffixed
var repoURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`github\.com[:/]([^/:]+)/([^/]+)\.git$`),
	regexp.MustCompile(`github\.com[:/]([^/:]+)/([^/]+)`),
}

// ParseRepoURL extracts the owner/repo pair from a github url. It fails fast
// on anything it cannot match - no network call is ever made for bad input.
func ParseRepoURL(repoURL string) (owner string, repo string, err error) {
	for _, pattern := range repoURLPatterns {
		match := pattern.FindStringSubmatch(repoURL)
		if match != nil {
			return match[1], strings.TrimSuffix(match[2], ".git"), nil
		}
	}
	return "", "", ErrInvalidRepoURL
}

type RepoMetadataFetcher struct {
	client shared.GithubClientFacade
}

func NewRepoMetadataFetcher(client shared.GithubClientFacade) *RepoMetadataFetcher {
	return &RepoMetadataFetcher{client: client}
}

// FetchRepoMetadata flattens four sequential lookups into one record:
// repository info, branch list (first page of 10), the most recent commit
// and the readme. A missing readme degrades to an empty string, missing
// releases to an empty list - every other failure aborts the fetch.
func (f *RepoMetadataFetcher) FetchRepoMetadata(ctx context.Context, repoURL string) (dtos.RepoMetadata, error) {
	owner, repo, err := ParseRepoURL(repoURL)
	if err != nil {
		return dtos.RepoMetadata{}, err
	}

	repository, _, err := f.client.GetRepository(ctx, owner, repo)
	if err != nil {
		return dtos.RepoMetadata{}, fmt.Errorf("could not fetch repository %s/%s: %w", owner, repo, err)
	}

	branches, _, err := f.client.ListBranches(ctx, owner, repo, &github.BranchListOptions{
		ListOptions: github.ListOptions{PerPage: 10},
	})
	if err != nil {
		return dtos.RepoMetadata{}, fmt.Errorf("could not fetch branches of %s/%s: %w", owner, repo, err)
	}

	commits, _, err := f.client.ListCommits(ctx, owner, repo, &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: 1},
	})
	if err != nil {
		return dtos.RepoMetadata{}, fmt.Errorf("could not fetch commits of %s/%s: %w", owner, repo, err)
	}

	lastCommit := time.Now()
	if len(commits) > 0 && commits[0].GetCommit().GetAuthor() != nil {
		lastCommit = commits[0].GetCommit().GetAuthor().GetDate().Time
	}

	readme := f.fetchReadme(ctx, owner, repo)
	releases := f.fetchReleases(ctx, owner, repo)

	return dtos.RepoMetadata{
		RepoName:    repository.GetName(),
		RepoOwner:   repository.GetOwner().GetLogin(),
		Description: repository.GetDescription(),
		Stars:       repository.GetStargazersCount(),
		LastCommit:  lastCommit,
		Branches: utils.Map(branches, func(branch *github.Branch) string {
			return branch.GetName()
		}),
		Readme:   readme,
		Releases: releases,
	}, nil
}

// fetchReadme is best effort: a repository without a readme yields "".
func (f *RepoMetadataFetcher) fetchReadme(ctx context.Context, owner string, repo string) string {
	content, _, err := f.client.GetReadme(ctx, owner, repo, nil)
	if err != nil {
		slog.Debug("no readme found for repository", "owner", owner, "repo", repo, "err", err)
		return ""
	}

	readme, err := content.GetContent()
	if err != nil {
		slog.Warn("could not decode readme", "owner", owner, "repo", repo, "err", err)
		return ""
	}
	return readme
}

// fetchReleases is best effort as well: failures degrade to an empty list.
func (f *RepoMetadataFetcher) fetchReleases(ctx context.Context, owner string, repo string) []dtos.RepoRelease {
	releases, _, err := f.client.ListReleases(ctx, owner, repo, &github.ListOptions{PerPage: 10})
	if err != nil {
		slog.Debug("could not fetch releases", "owner", owner, "repo", repo, "err", err)
		return []dtos.RepoRelease{}
	}

	return utils.Map(releases, func(release *github.RepositoryRelease) dtos.RepoRelease {
		var publishedAt *time.Time
		if release.PublishedAt != nil {
			publishedAt = &release.PublishedAt.Time
		}
		return dtos.RepoRelease{
			Version:     release.GetTagName(),
			Name:        release.GetName(),
			Body:        release.GetBody(),
			PublishedAt: publishedAt,
		}
	})
}
