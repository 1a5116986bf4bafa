package forum

import "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/forum"

type CreateThreadRequest struct {
	Category string `json:"category" binding:"required,max=64"`
	Title    string `json:"title" binding:"required,max=200"`
	Body     string `json:"body" binding:"required,max=20000"`
}

type CreatePostRequest struct {
	Body string `json:"body" binding:"required,max=20000"`
}

type PostView struct {
	forum.Post
	ReadBy []uint `json:"read_by"`
}

type ThreadDetail struct {
	forum.Thread
	Posts []PostView `json:"posts"`
}
