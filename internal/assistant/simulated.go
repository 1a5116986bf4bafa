package assistant

import (
	"context"
	"strings"
)

type cannedReply struct {
	keywords []string
	reply    string
}

var cannedReplies = []cannedReply{
	{
		keywords: []string{"login", "log in", "password", "sign in"},
		reply:    "Sign in with your campus email. Students use @student.belgiumcampus.ac.za and staff use @belgiumcampus.ac.za.",
	},
	{
		keywords: []string{"submit", "submission", "assignment", "grade"},
		reply:    "Upload coursework under Submissions. Once a tutor grades or returns it you will get a notification with the feedback.",
	},
	{
		keywords: []string{"calendar", "event", "consultation", "meeting", "schedule"},
		reply:    "Your calendar lists every session you own or were invited to. Open an event to accept or decline the invitation.",
	},
	{
		keywords: []string{"tutor", "help", "stuck"},
		reply:    "Post a question with a clear title and what you have tried so far. Tutors are notified and you will hear back when someone responds.",
	},
	{
		keywords: []string{"forum", "thread", "discussion"},
		reply:    "The forum is grouped by category. Start a thread or reply to an existing one; the thread author is notified of replies.",
	},
	{
		keywords: []string{"message", "chat", "inbox"},
		reply:    "Private messages live under Messages. Conversations are shared between exactly the people in them.",
	},
	{
		keywords: []string{"topic", "resource", "notes", "slides"},
		reply:    "Subscribe to a topic to get its broadcasts. Tutors attach notes and slides as resources on the topic page.",
	},
	{
		keywords: []string{"recursion", "recursive"},
		reply:    "A recursive function needs a base case that stops the recursion and a step that moves every call closer to it.",
	},
}

const simulatedDefault = "I'm the CampusLearn assistant. Ask me about questions, submissions, topics, the forum or your calendar."

// SimulatedClient answers from a fixed keyword table
type SimulatedClient struct{}

func (SimulatedClient) Complete(ctx context.Context, _ []Message, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	lower := strings.ToLower(prompt)
	for _, c := range cannedReplies {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.reply, nil
			}
		}
	}
	return simulatedDefault, nil
}
