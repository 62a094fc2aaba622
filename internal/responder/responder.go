// Package responder implements the holiday planner's canned replies.
//
// Replies are chosen by case-insensitive keyword matching with a fixed
// priority order. The result is fully determined by the message and the
// current overall attendance.
package responder

import (
	"fmt"
	"strings"

	"github.com/abhisek/oasys/internal/attendance"
)

// Greeting is the planner's opening message.
const Greeting = "Hello! I'm O-AI-sys, your holiday planning assistant. How can I help you plan your holidays today?"

// Kind identifies which canned reply was selected.
type Kind string

const (
	KindHoliday    Kind = "holiday"
	KindAttendance Kind = "attendance"
	KindCourse     Kind = "course"
	KindFallback   Kind = "fallback"
)

// Reply is a selected canned response.
type Reply struct {
	Kind Kind   `json:"kind"`
	Text string `json:"reply"`
}

const (
	holidayText  = "Great! I'd be happy to help you plan your holidays. When are you thinking of taking your break, and how long do you plan to be away?"
	courseText   = "I see you're asking about specific courses. Which course are you concerned about for your holiday planning?"
	fallbackText = "I'm here to help you plan your holidays while considering your academic commitments. Could you provide more details about what you'd like to know or plan?"
)

// rule matches any of its keywords.
type rule struct {
	kind     Kind
	keywords []string
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{kind: KindHoliday, keywords: []string{"holiday", "vacation"}},
	{kind: KindAttendance, keywords: []string{"attendance"}},
	{kind: KindCourse, keywords: []string{"course", "class"}},
}

// Classify returns the reply kind for a message.
func Classify(message string) Kind {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.kind
			}
		}
	}
	return KindFallback
}

// Select picks the reply for message given the current overall attendance.
func Select(message string, overall int) Reply {
	kind := Classify(message)
	return Reply{Kind: kind, Text: Text(kind, overall)}
}

// Text renders the canned text for kind.
func Text(kind Kind, overall int) string {
	switch kind {
	case KindHoliday:
		return holidayText
	case KindAttendance:
		return fmt.Sprintf("Your current overall attendance is %d%%. Remember, maintaining at least %d%% attendance is crucial. How can I help you plan your holidays while keeping your attendance in check?",
			overall, attendance.ThresholdPercent)
	case KindCourse:
		return courseText
	default:
		return fallbackText
	}
}
