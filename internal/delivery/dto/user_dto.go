package dto

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Age      int    `json:"age" validate:"required,gt=0"`
}

type UpdateUsernameRequest struct {
	UserID   uint   `json:"user_id" validate:"required"`
	Username string `json:"username" validate:"required"`
}

type UpdateAgeRequest struct {
	UserID uint `json:"user_id" validate:"required"`
	Age    int  `json:"age" validate:"required,gt=0"`
}
