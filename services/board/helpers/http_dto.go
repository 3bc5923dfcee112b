package helpers

// Request/Response DTOs
type AddUserRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

type AuctionsQuery struct {
	Status string `form:"status"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AddUserResponse struct {
	User       UserResponse `json:"user"`
	TotalCount int          `json:"total_count"`
}

type UsersResponse struct {
	TotalCount int            `json:"total_count"`
	Records    []UserResponse `json:"records"`
}
