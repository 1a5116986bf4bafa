package notify

import (
	"slices"
	"strings"
)

// PreviewLimit max runes of a message body copied into a notification
const PreviewLimit = 120

// Unique drops zero ids and duplicates, returning the ids sorted
func Unique(ids []uint) []uint {
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id != 0 {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func without(ids []uint, excluded uint) []uint {
	out := Unique(ids)
	return slices.DeleteFunc(out, func(id uint) bool { return id == excluded })
}

// MessageRecipients every participant except the sender
func MessageRecipients(participants []uint, sender uint) []uint {
	return without(participants, sender)
}

// EventCreatedRecipients every attendee except the creator
func EventCreatedRecipients(attendees []uint, creator uint) []uint {
	return without(attendees, creator)
}

// AttendeeDiff ids only in next are added, ids only in prev are removed;
// the intersection is in neither.
func AttendeeDiff(prev, next []uint) (added, removed []uint) {
	prev, next = Unique(prev), Unique(next)
	added = []uint{}
	removed = []uint{}
	for _, id := range next {
		if _, found := slices.BinarySearch(prev, id); !found {
			added = append(added, id)
		}
	}
	for _, id := range prev {
		if _, found := slices.BinarySearch(next, id); !found {
			removed = append(removed, id)
		}
	}
	return added, removed
}

// EventDeletedRecipients every attendee except whoever deleted the event
func EventDeletedRecipients(attendees []uint, deleter uint) []uint {
	return without(attendees, deleter)
}

// SubmissionRecipients the submitting student only
func SubmissionRecipients(studentID uint) []uint {
	return Unique([]uint{studentID})
}

// QuestionResponseRecipients the asker, unless they answered themselves
func QuestionResponseRecipients(askerID, responderID uint) []uint {
	return without([]uint{askerID}, responderID)
}

// ForumReplyRecipients the thread author, unless they replied themselves
func ForumReplyRecipients(authorID, replierID uint) []uint {
	return without([]uint{authorID}, replierID)
}

// BroadcastRecipients every subscriber except the sender
func BroadcastRecipients(subscribers []uint, sender uint) []uint {
	return without(subscribers, sender)
}

// Preview trims text to PreviewLimit runes, the ellipsis counted
func Preview(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= PreviewLimit {
		return text
	}
	return strings.TrimRight(string(runes[:PreviewLimit-1]), " ") + "…"
}
