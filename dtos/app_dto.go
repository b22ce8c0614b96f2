package dtos

import "time"

// AppCreateRequest carries everything a new catalog entry needs. The github
// metadata block is optional - the client may prefill it from a metadata
// fetch before submitting.
type AppCreateRequest struct {
	Name           string   `json:"name" validate:"required"`
	ClientName     string   `json:"clientName" validate:"required"`
	Description    string   `json:"description" validate:"required,min=10"`
	GithubRepoURL  string   `json:"githubRepoUrl" validate:"omitempty,url"`
	FrappeCloudURL string   `json:"frappeCloudUrl" validate:"omitempty,url"`
	Version        string   `json:"version"`
	Tags           []string `json:"tags"`
	Status         string   `json:"status" validate:"omitempty,oneof=Active Deprecated Internal"`

	RepoName   string     `json:"repoName"`
	RepoOwner  string     `json:"repoOwner"`
	Stars      *int       `json:"stars"`
	LastCommit *time.Time `json:"lastCommit"`
	Branches   []string   `json:"branches"`
	Readme     string     `json:"readme"`
}

// AppPatchRequest is the partial counterpart of AppCreateRequest: nil means
// "leave the stored value untouched". The url fields keep omitempty so an
// explicit empty string clears them; everything else rejects empty values.
type AppPatchRequest struct {
	Name           *string   `json:"name" validate:"omitnil,min=1"`
	ClientName     *string   `json:"clientName" validate:"omitnil,min=1"`
	Description    *string   `json:"description" validate:"omitnil,min=10"`
	GithubRepoURL  *string   `json:"githubRepoUrl" validate:"omitempty,url"`
	FrappeCloudURL *string   `json:"frappeCloudUrl" validate:"omitempty,url"`
	Version        *string   `json:"version"`
	Tags           *[]string `json:"tags"`
	Status         *string   `json:"status" validate:"omitnil,oneof=Active Deprecated Internal"`

	RepoName   *string    `json:"repoName"`
	RepoOwner  *string    `json:"repoOwner"`
	Stars      *int       `json:"stars"`
	LastCommit *time.Time `json:"lastCommit"`
	Branches   *[]string  `json:"branches"`
	Readme     *string    `json:"readme"`
}

// AppFilter narrows the app listing. Zero values mean "no restriction".
type AppFilter struct {
	Status     string   // exact match
	ClientName string   // case insensitive substring
	Tags       []string // set membership, OR semantics
	Search     string   // free text across name, description and client name
}
