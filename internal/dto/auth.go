package dto

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50" example:"mdsahib"`
	Password string `json:"password" validate:"required" example:"secret"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
	Role    string `json:"role" example:"md"`
}

type ChangePasswordRequestDTO struct {
	Password string `json:"password" validate:"required" example:"newsecret"`
}
