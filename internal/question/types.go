package question

type CreateQuestionRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	Body       string `json:"body" binding:"required,max=10000"`
	ModuleCode string `json:"module_code" binding:"max=32"`
}

type RespondRequest struct {
	Message string `json:"message" binding:"required,max=10000"`
}
