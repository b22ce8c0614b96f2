package dtos

import "time"

// ChangelogCreateRequest records one released version. An omitted release
// date defaults to now.
type ChangelogCreateRequest struct {
	Version     string     `json:"version" validate:"required"`
	Changes     string     `json:"changes" validate:"required"`
	ReleaseDate *time.Time `json:"releaseDate"`
}

type ChangelogPatchRequest struct {
	Version     *string    `json:"version" validate:"omitnil,min=1"`
	Changes     *string    `json:"changes" validate:"omitnil,min=1"`
	ReleaseDate *time.Time `json:"releaseDate"`
}
