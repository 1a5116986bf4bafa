package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/calendar"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/course"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/question"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/submission"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/topic"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
)

// DefaultPassword is the plain password of fixture users
const DefaultPassword = "Password123"

type userFixture struct {
	user     user.User
	password string
}

// UserOption configures test user
type UserOption func(*userFixture)

func WithRole(role string) UserOption {
	return func(f *userFixture) {
		f.user.Role = role
	}
}

func WithEmail(email string) UserOption {
	return func(f *userFixture) {
		f.user.Email = email
	}
}

func WithName(name string) UserOption {
	return func(f *userFixture) {
		f.user.Name = name
	}
}

func WithPassword(password string) UserOption {
	return func(f *userFixture) {
		f.password = password
	}
}

// CreateTestUser creates a student with a unique email unless options say otherwise.
// The password is hashed with the minimum bcrypt cost to keep tests fast.
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	uniqueID := uuid.New().String()[:8]
	f := &userFixture{
		user: user.User{
			Name: fmt.Sprintf("Test User %s", uniqueID),
			Role: user.RoleStudent,
		},
		password: DefaultPassword,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.user.Email == "" {
		domain := "belgiumcampus.ac.za"
		if f.user.Role == user.RoleStudent {
			domain = "student.belgiumcampus.ac.za"
		}
		f.user.Email = fmt.Sprintf("%s_%s@%s", f.user.Role, uniqueID, domain)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(f.password), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("Failed to hash test password: %v", err))
	}
	f.user.PasswordHash = string(hash)

	if err := db.Create(&f.user).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}
	return &f.user
}

// CreateTestCourse creates a course with a unique code
func CreateTestCourse(db *gorm.DB, opts ...func(*course.Course)) *course.Course {
	uniqueID := uuid.New().String()[:6]
	c := &course.Course{
		Code:        "PRG" + uniqueID,
		Title:       "Programming " + uniqueID,
		Description: "Test course description",
		Credits:     12,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := db.Create(c).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test course: %v", err))
	}
	return c
}

// CreateTestTopic creates a topic owned by createdBy
func CreateTestTopic(db *gorm.DB, createdBy uint, opts ...func(*topic.Topic)) *topic.Topic {
	t := &topic.Topic{
		Title:      "Recursion basics",
		Body:       "Base cases and recursive steps",
		ModuleCode: "PRG281",
		Tags:       []string{"recursion"},
		CreatedBy:  createdBy,
	}
	for _, opt := range opts {
		opt(t)
	}

	if err := db.Create(t).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test topic: %v", err))
	}
	return t
}

// CreateTestQuestion creates an open question asked by studentID
func CreateTestQuestion(db *gorm.DB, studentID uint, opts ...func(*question.Question)) *question.Question {
	q := &question.Question{
		StudentID:  studentID,
		Title:      "Need help with recursion",
		Body:       "How do I choose a base case?",
		ModuleCode: "PRG281",
		Status:     question.StatusOpen,
	}
	for _, opt := range opts {
		opt(q)
	}

	if err := db.Create(q).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test question: %v", err))
	}
	return q
}

// CreateTestSubmission creates a submitted artifact for studentID
func CreateTestSubmission(db *gorm.DB, studentID uint, opts ...func(*submission.Submission)) *submission.Submission {
	s := &submission.Submission{
		StudentID:  studentID,
		CourseCode: "PRG281",
		Title:      "Assignment 1",
		Status:     submission.StatusSubmitted,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := db.Create(s).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test submission: %v", err))
	}
	return s
}

// CreateTestEvent creates a one hour event starting tomorrow with the given attendees
func CreateTestEvent(db *gorm.DB, ownerID uint, attendees []uint, opts ...func(*calendar.Event)) *calendar.Event {
	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Minute)
	e := &calendar.Event{
		OwnerID:  ownerID,
		Title:    "Consultation",
		StartsAt: start,
		EndsAt:   start.Add(time.Hour),
		Location: "Room 4",
	}
	for _, id := range attendees {
		e.Attendees = append(e.Attendees, calendar.Attendee{UserID: id, Status: calendar.RSVPInvited})
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := db.Create(e).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test event: %v", err))
	}
	return e
}
