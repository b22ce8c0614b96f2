package githubint

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/craftbase/appcatalog/dtos"
	"github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoURL(t *testing.T) {
	t.Run("should accept the common url shapes", func(t *testing.T) {
		for _, url := range []string{
			"https://github.com/acme/portal",
			"https://github.com/acme/portal.git",
			"git@github.com:acme/portal.git",
			"https://github.com/acme/portal/tree/main",
		} {
			owner, repo, err := ParseRepoURL(url)
			require.NoError(t, err, url)
			assert.Equal(t, "acme", owner, url)
			assert.Equal(t, "portal", repo, url)
		}
	})

	t.Run("should reject non-github urls", func(t *testing.T) {
		for _, url := range []string{
			"https://gitlab.com/acme/portal",
			"not a url",
			"",
		} {
			_, _, err := ParseRepoURL(url)
			assert.ErrorIs(t, err, ErrInvalidRepoURL, url)
		}
	})
}

type fakeGithubClient struct {
	repository *github.Repository
	branches   []*github.Branch
	commits    []*github.RepositoryCommit
	readmeErr  error
	releases   []*github.RepositoryRelease
	releaseErr error

	calls int
}

func (f *fakeGithubClient) GetRepository(ctx context.Context, owner string, repo string) (*github.Repository, *github.Response, error) {
	f.calls++
	return f.repository, nil, nil
}

func (f *fakeGithubClient) ListBranches(ctx context.Context, owner string, repo string, opts *github.BranchListOptions) ([]*github.Branch, *github.Response, error) {
	f.calls++
	return f.branches, nil, nil
}

func (f *fakeGithubClient) ListCommits(ctx context.Context, owner string, repo string, opts *github.CommitsListOptions) ([]*github.RepositoryCommit, *github.Response, error) {
	f.calls++
	return f.commits, nil, nil
}

func (f *fakeGithubClient) GetReadme(ctx context.Context, owner string, repo string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, *github.Response, error) {
	f.calls++
	if f.readmeErr != nil {
		return nil, nil, f.readmeErr
	}
	content := "# Portal"
	return &github.RepositoryContent{Content: &content}, nil, nil
}

func (f *fakeGithubClient) ListReleases(ctx context.Context, owner string, repo string, opts *github.ListOptions) ([]*github.RepositoryRelease, *github.Response, error) {
	f.calls++
	if f.releaseErr != nil {
		return nil, nil, f.releaseErr
	}
	return f.releases, nil, nil
}

func newFakeClient() *fakeGithubClient {
	commitDate := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &fakeGithubClient{
		repository: &github.Repository{
			Name:            github.String("portal"),
			Owner:           &github.User{Login: github.String("acme")},
			Description:     github.String("customer portal"),
			StargazersCount: github.Int(42),
		},
		branches: []*github.Branch{
			{Name: github.String("main")},
			{Name: github.String("develop")},
		},
		commits: []*github.RepositoryCommit{
			{Commit: &github.Commit{Author: &github.CommitAuthor{Date: &github.Timestamp{Time: commitDate}}}},
		},
	}
}

func TestFetchRepoMetadata(t *testing.T) {
	t.Run("should flatten the lookups into one record", func(t *testing.T) {
		client := newFakeClient()
		fetcher := NewRepoMetadataFetcher(client)

		metadata, err := fetcher.FetchRepoMetadata(context.Background(), "https://github.com/acme/portal")
		require.NoError(t, err)

		assert.Equal(t, "portal", metadata.RepoName)
		assert.Equal(t, "acme", metadata.RepoOwner)
		assert.Equal(t, 42, metadata.Stars)
		assert.Equal(t, []string{"main", "develop"}, metadata.Branches)
		assert.Equal(t, "# Portal", metadata.Readme)
		assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), metadata.LastCommit)
	})

	t.Run("should not call the api for a bad url", func(t *testing.T) {
		client := newFakeClient()
		fetcher := NewRepoMetadataFetcher(client)

		_, err := fetcher.FetchRepoMetadata(context.Background(), "https://example.com/acme/portal")
		assert.ErrorIs(t, err, ErrInvalidRepoURL)
		assert.Zero(t, client.calls)
	})

	t.Run("should tolerate a missing readme", func(t *testing.T) {
		client := newFakeClient()
		client.readmeErr = errors.New("404 not found")
		fetcher := NewRepoMetadataFetcher(client)

		metadata, err := fetcher.FetchRepoMetadata(context.Background(), "https://github.com/acme/portal")
		require.NoError(t, err)
		assert.Equal(t, "", metadata.Readme)
	})

	t.Run("should tolerate missing releases", func(t *testing.T) {
		client := newFakeClient()
		client.releaseErr = errors.New("404 not found")
		fetcher := NewRepoMetadataFetcher(client)

		metadata, err := fetcher.FetchRepoMetadata(context.Background(), "https://github.com/acme/portal")
		require.NoError(t, err)
		assert.Equal(t, []dtos.RepoRelease{}, metadata.Releases)
	})
}
