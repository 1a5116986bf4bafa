package submission

type CreateSubmissionForm struct {
	CourseCode string `form:"course_code" binding:"required,max=32"`
	Title      string `form:"title" binding:"required,max=200"`
}

type GradeRequest struct {
	Status   string   `json:"status" binding:"required,oneof=submitted graded returned"`
	Grade    *float64 `json:"grade" binding:"omitempty,min=0,max=100"`
	Feedback *string  `json:"feedback" binding:"omitempty,max=10000"`
}
