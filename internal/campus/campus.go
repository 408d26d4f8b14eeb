// Package campus holds the read-only campus feeds: events, alerts, contacts and
// the subscription audit list.
package campus

import (
	"strings"

	"github.com/theirongolddev/scholarhub/internal/model"

	"github.com/shopspring/decimal"
)

// AllCategories matches every event category in FilterEvents.
const AllCategories = "All"

// EventCategories lists the event filter choices in display order.
var EventCategories = []string{AllCategories, "Academic", "Career", "Social", "Club", "Sports"}

// Events returns the campus event listing.
func Events() []model.Event {
	return []model.Event{
		{ID: "1", Name: "Career Fair 2024", Date: "Dec 18, 2024", Time: "10:00 AM - 4:00 PM", Location: "Main Auditorium", Category: "Career", HasFreeFood: true},
		{ID: "2", Name: "Winter Festival", Date: "Dec 20, 2024", Time: "6:00 PM - 9:00 PM", Location: "Campus Grounds", Category: "Social", HasFreeFood: true},
		{ID: "3", Name: "ML Workshop", Date: "Dec 22, 2024", Time: "2:00 PM - 5:00 PM", Location: "CS Building Room 301", Category: "Academic"},
		{ID: "4", Name: "Guest Lecture: AI Ethics", Date: "Dec 23, 2024", Time: "11:00 AM - 12:30 PM", Location: "Lecture Hall B", Category: "Academic"},
		{ID: "5", Name: "Photography Club Meetup", Date: "Dec 25, 2024", Time: "4:00 PM - 6:00 PM", Location: "Student Center", Category: "Club"},
		{ID: "6", Name: "Sports Day", Date: "Dec 27, 2024", Time: "8:00 AM - 5:00 PM", Location: "Sports Complex", Category: "Sports", HasFreeFood: true},
	}
}

// Alerts returns campus announcements, newest first.
func Alerts() []model.Alert {
	return []model.Alert{
		{ID: "1", Title: "Campus Closure", Message: "University will be closed on Dec 16 for Victory Day", Urgent: true, Date: "Dec 14, 2024"},
		{ID: "2", Title: "Exam Schedule Released", Message: "Final exam schedule for Fall 2024 is now available on the portal", Date: "Dec 12, 2024"},
		{ID: "3", Title: "Library Hours Extended", Message: "Central library will be open until 11 PM during exam week", Date: "Dec 10, 2024"},
		{ID: "4", Title: "Weather Alert", Message: "Heavy rain expected tomorrow. Classes may be rescheduled.", Urgent: true, Date: "Dec 9, 2024"},
	}
}

// Contacts returns the essential campus phone numbers.
func Contacts() []model.Contact {
	return []model.Contact{
		{ID: "1", Service: "Campus Security", Phone: "+880-2-9876543"},
		{ID: "2", Service: "Academic Advising", Phone: "+880-2-9876544"},
		{ID: "3", Service: "Health Center", Phone: "+880-2-9876545"},
		{ID: "4", Service: "IT Help Desk", Phone: "+880-2-9876546"},
		{ID: "5", Service: "Student Services", Phone: "+880-2-9876547"},
	}
}

// Subscriptions returns the recurring charges shown in the subscription audit.
func Subscriptions() []model.Subscription {
	return []model.Subscription{
		{ID: "1", Name: "Spotify", Amount: decimal.NewFromInt(199), HasStudentDiscount: true},
		{ID: "2", Name: "Netflix", Amount: decimal.NewFromInt(599)},
		{ID: "3", Name: "Amazon Prime", Amount: decimal.NewFromInt(299), HasStudentDiscount: true},
	}
}

// FilterEvents keeps events in category (AllCategories or "" keeps every
// category) and, when freeFoodOnly is set, only those serving free food.
func FilterEvents(events []model.Event, category string, freeFoodOnly bool) []model.Event {
	var out []model.Event
	for _, e := range events {
		if category != "" && category != AllCategories && !strings.EqualFold(e.Category, category) {
			continue
		}
		if freeFoodOnly && !e.HasFreeFood {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Upcoming returns at most n events from the head of the listing.
func Upcoming(events []model.Event, n int) []model.Event {
	if n < 0 || n >= len(events) {
		return events
	}
	return events[:n]
}

// UrgentCount counts urgent alerts.
func UrgentCount(alerts []model.Alert) int {
	n := 0
	for _, a := range alerts {
		if a.Urgent {
			n++
		}
	}
	return n
}

// NextCategory cycles through EventCategories, wrapping at the end.
func NextCategory(current string) string {
	for i, c := range EventCategories {
		if c == current {
			return EventCategories[(i+1)%len(EventCategories)]
		}
	}
	return AllCategories
}
