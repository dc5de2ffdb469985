package dto

type CreateUserInput struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required,min=6"`
	Email    *string `json:"email" binding:"omitempty,email"`
	FullName *string `json:"full_name"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SetRoleInput struct {
	Role string `json:"role" binding:"required,oneof=admin user"`
}
