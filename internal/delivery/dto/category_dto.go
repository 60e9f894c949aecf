package dto

// Request DTOs

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=140"`
	Icon        string `json:"icon" validate:"omitempty,max=50"`
	Description string `json:"description"`
}

// Response DTOs

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
