package dto

// UpdateProfileRequest is a partial profile update. GitHub and expertise
// only apply to developer profiles; the admin endpoint ignores them.
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Location  *string `json:"location,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
	GitHub    *string `json:"github,omitempty"`
	Expertise *string `json:"expertise,omitempty"`
}
