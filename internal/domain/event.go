package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Event represents a scheduler event bound to a section
// An event is either a base event (ParentID == 0) or an override of one
// specific occurrence of a recurring base event (ParentID > 0)
type Event struct {
	ID        int64
	SectionID int64
	Name      string
	StatusID  int64

	Start time.Time
	End   time.Time

	// RecType is the raw recurrence token, e.g. "week_1___1,2,3,4,5#no".
	// Empty for ordinary fixed-time events, "none" for cancelling overrides.
	RecType string

	// LengthSeconds is the duration of one occurrence of a recurring event.
	LengthSeconds int64

	ParentID int64
}

// IsRecurring returns true if the event carries a recurrence token
func (e *Event) IsRecurring() bool {
	return e.RecType != ""
}

// IsOverride returns true if the event modifies or cancels an occurrence
// of another event
func (e *Event) IsOverride() bool {
	return e.ParentID > 0
}

// IsCancellation returns true if the event cancels its parent occurrence
func (e *Event) IsCancellation() bool {
	return e.RecType == RecTypeCancelled
}

// Length returns the occurrence duration of a recurring event
func (e *Event) Length() time.Duration {
	return time.Duration(e.LengthSeconds) * time.Second
}

// RecurrenceKind is the repetition kind of a recurrence rule
type RecurrenceKind string

const (
	RecurrenceDay  RecurrenceKind = "day"
	RecurrenceWeek RecurrenceKind = "week"
	RecurrenceYear RecurrenceKind = "year"
)

// RecurrenceRule is a parsed recurrence token
//
// Token layout (DHTMLX scheduler format): underscore-separated fields
// "<kind>_<interval>___<weekdays>" with an optional "#<modifier>" tail,
// e.g. "week_1___1,2,3,4,5#no". Weekdays are numeric, 0=Sunday..6=Saturday.
// The modifier is kept verbatim but not interpreted.
type RecurrenceRule struct {
	Kind     RecurrenceKind
	Interval int
	Weekdays []int
	Modifier string
}

// OccursOn reports whether the rule's weekday set contains the given weekday
// Comparison is numeric
func (r *RecurrenceRule) OccursOn(weekday time.Weekday) bool {
	for _, d := range r.Weekdays {
		if d == int(weekday) {
			return true
		}
	}
	return false
}

// ParseRecType parses a raw recurrence token into a RecurrenceRule
// Returns an error for empty, cancelling ("none") or malformed tokens;
// callers treat a parse failure as "no occurrence", not as a fatal error
func ParseRecType(token string) (*RecurrenceRule, error) {
	if token == "" {
		return nil, fmt.Errorf("recurrence: empty token")
	}
	if token == RecTypeCancelled {
		return nil, fmt.Errorf("recurrence: token %q cancels an occurrence, not a rule", token)
	}

	rule := &RecurrenceRule{}

	body := token
	if idx := strings.IndexByte(token, '#'); idx >= 0 {
		body = token[:idx]
		rule.Modifier = token[idx+1:]
	}

	fields := strings.Split(body, "_")
	switch RecurrenceKind(fields[0]) {
	case RecurrenceDay, RecurrenceWeek, RecurrenceYear:
		rule.Kind = RecurrenceKind(fields[0])
	default:
		return nil, fmt.Errorf("recurrence: unknown kind %q in token %q", fields[0], token)
	}

	if len(fields) > 1 && fields[1] != "" {
		interval, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("recurrence: invalid interval %q in token %q", fields[1], token)
		}
		rule.Interval = interval
	}

	// Пятое поле - дни недели, обязательны для недельной повторяемости
	if rule.Kind == RecurrenceWeek {
		if len(fields) < 5 || fields[4] == "" {
			return nil, fmt.Errorf("recurrence: weekly token %q has no weekday list", token)
		}
		for _, part := range strings.Split(fields[4], ",") {
			day, err := strconv.Atoi(part)
			if err != nil || day < 0 || day > 6 {
				return nil, fmt.Errorf("recurrence: invalid weekday %q in token %q", part, token)
			}
			rule.Weekdays = append(rule.Weekdays, day)
		}
	}

	return rule, nil
}
