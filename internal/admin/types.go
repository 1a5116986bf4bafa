package admin

type QuestionStats struct {
	Open     int64 `json:"open"`
	Answered int64 `json:"answered"`
}

type Stats struct {
	UsersByRole         map[string]int64 `json:"users_by_role"`
	TotalUsers          int64            `json:"total_users"`
	SubmissionsByStatus map[string]int64 `json:"submissions_by_status"`
	Courses             int64            `json:"courses"`
	Topics              int64            `json:"topics"`
	Questions           QuestionStats    `json:"questions"`
	UnreadNotifications int64            `json:"unread_notifications"`
}
