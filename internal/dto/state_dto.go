package dto

type SetThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark system"`
}

type SetUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type PreferencesResponse struct {
	Theme string          `json:"theme"`
	User  *UserProfileDTO `json:"user"`
}

type UserProfileDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
