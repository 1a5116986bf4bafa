package course

type CreateCourseRequest struct {
	Code        string `json:"code" binding:"required,max=32"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=5000"`
	Credits     int    `json:"credits" binding:"min=0,max=360"`
}

// UpdateCourseRequest nil fields are left unchanged
type UpdateCourseRequest struct {
	Code        *string `json:"code" binding:"omitempty,min=1,max=32"`
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	Credits     *int    `json:"credits" binding:"omitempty,min=0,max=360"`
}

type EnrollRequest struct {
	StudentID uint `json:"student_id" binding:"required"`
}

type EnrollmentResponse struct {
	CourseID  uint `json:"course_id"`
	StudentID uint `json:"student_id"`
}
