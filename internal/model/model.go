package model

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/calendar"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/course"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/forum"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/message"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/notification"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/profile"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/question"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/submission"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/topic"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
)

// GetModels returns every model that needs migrating
func GetModels() []interface{} {
	return []interface{}{
		&user.User{},
		&profile.StudentProfile{},
		&profile.TutorProfile{},
		&course.Course{},
		&course.StudentCourse{},
		&course.RosterEntry{},
		&topic.Topic{},
		&topic.Subscriber{},
		&topic.Resource{},
		&topic.Broadcast{},
		&question.Question{},
		&question.Response{},
		&submission.Submission{},
		&calendar.Event{},
		&calendar.Attendee{},
		&forum.Thread{},
		&forum.Post{},
		&forum.PostRead{},
		&message.Conversation{},
		&message.Participant{},
		&message.Message{},
		&message.MessageRead{},
		&notification.Notification{},
	}
}

func InitTable(db *gorm.DB) error {
	if err := db.AutoMigrate(GetModels()...); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}
	return nil
}
