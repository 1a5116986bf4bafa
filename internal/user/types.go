package user

type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
