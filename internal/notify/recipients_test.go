package notify

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestRecipientRules(t *testing.T) {
	tests := []struct {
		name string
		got  []uint
		want []uint
	}{
		{"message excludes sender", MessageRecipients([]uint{3, 7}, 3), []uint{7}},
		{"message dedupes participants", MessageRecipients([]uint{7, 3, 7}, 3), []uint{7}},
		{"event created excludes creator", EventCreatedRecipients([]uint{5, 2, 9}, 9), []uint{2, 5}},
		{"event deleted excludes deleter", EventDeletedRecipients([]uint{1, 2}, 2), []uint{1}},
		{"event deleted by admin reaches everyone", EventDeletedRecipients([]uint{1, 2}, 99), []uint{1, 2}},
		{"submission goes to student", SubmissionRecipients(4), []uint{4}},
		{"question response to asker", QuestionResponseRecipients(4, 8), []uint{4}},
		{"self response suppressed", QuestionResponseRecipients(4, 4), []uint{}},
		{"forum reply to author", ForumReplyRecipients(1, 2), []uint{1}},
		{"forum self reply suppressed", ForumReplyRecipients(2, 2), []uint{}},
		{"broadcast skips sender", BroadcastRecipients([]uint{1, 2, 3}, 2), []uint{1, 3}},
		{"zero ids dropped", Unique([]uint{0, 2, 0, 1}), []uint{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestAttendeeDiff(t *testing.T) {
	tests := []struct {
		name        string
		prev, next  []uint
		wantAdded   []uint
		wantRemoved []uint
	}{
		{
			name:        "swap one attendee",
			prev:        []uint{1, 2, 3},
			next:        []uint{2, 3, 4},
			wantAdded:   []uint{4},
			wantRemoved: []uint{1},
		},
		{
			name:        "unchanged set",
			prev:        []uint{1, 2},
			next:        []uint{2, 1},
			wantAdded:   []uint{},
			wantRemoved: []uint{},
		},
		{
			name:        "from empty",
			prev:        nil,
			next:        []uint{5, 5},
			wantAdded:   []uint{5},
			wantRemoved: []uint{},
		},
		{
			name:        "to empty",
			prev:        []uint{5},
			next:        []uint{},
			wantAdded:   []uint{},
			wantRemoved: []uint{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			added, removed := AttendeeDiff(tt.prev, tt.next)
			assert.Equal(t, tt.wantAdded, added)
			assert.Equal(t, tt.wantRemoved, removed)
		})
	}
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "hello", Preview("  hello  "))

	exact := strings.Repeat("a", PreviewLimit)
	assert.Equal(t, exact, Preview(exact))

	long := strings.Repeat("é", 300)
	p := Preview(long)
	assert.Equal(t, PreviewLimit, utf8.RuneCountInString(p))
	assert.True(t, strings.HasSuffix(p, "…"))
}
