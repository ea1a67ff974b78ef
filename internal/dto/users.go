package dto

type CreateUserRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50" example:"clerk1"`
	Password string `json:"password" validate:"required" example:"secret"`
	Role     string `json:"role" validate:"required,oneof=admin md manager dataentry" example:"dataentry"`
}

type CreateUserResponseDTO struct {
	Message string `json:"message"`
}

type UserResponseDTO struct {
	ID       int    `json:"id" example:"3"`
	Username string `json:"username" example:"clerk1"`
	Role     string `json:"role" example:"dataentry"`
}
