package dtos

// DocCreateRequest creates a markdown page under an app. An omitted slug is
// derived from the title.
type DocCreateRequest struct {
	Title   string `json:"title" validate:"required"`
	Slug    string `json:"slug" validate:"omitempty,docslug"`
	Content string `json:"content" validate:"required"`
	Order   int    `json:"order"`
	Type    string `json:"type" validate:"omitempty,oneof=readme changelog custom"`
}

// DocPatchRequest uses omitnil, not omitempty: a field that is present but
// empty is a validation error, only an absent field is left untouched.
type DocPatchRequest struct {
	Title   *string `json:"title" validate:"omitnil,min=1"`
	Slug    *string `json:"slug" validate:"omitnil,docslug"`
	Content *string `json:"content" validate:"omitnil,min=1"`
	Order   *int    `json:"order"`
	Type    *string `json:"type" validate:"omitnil,oneof=readme changelog custom"`
}
