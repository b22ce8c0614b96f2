package dtos

import "time"

type GithubFetchRequest struct {
	RepoURL string `json:"repoUrl" validate:"required"`
}

// RepoMetadata is the flattened result of a repository metadata fetch.
// Readme and Releases are best effort: a repository without a readme or
// releases yields the zero value instead of failing the fetch.
type RepoMetadata struct {
	RepoName    string        `json:"repoName"`
	RepoOwner   string        `json:"repoOwner"`
	Description string        `json:"description"`
	Stars       int           `json:"stars"`
	LastCommit  time.Time     `json:"lastCommit"`
	Branches    []string      `json:"branches"`
	Readme      string        `json:"readme"`
	Releases    []RepoRelease `json:"releases"`
}

type RepoRelease struct {
	Version     string     `json:"version"`
	Name        string     `json:"name"`
	Body        string     `json:"body"`
	PublishedAt *time.Time `json:"publishedAt"`
}
