// Package notify records overdue-rental reminders. No real mail is ever
// sent: the log is a record of intent, and the default transport only
// writes to the structured log.
package notify

import (
	"sync"
	"time"

	"github.com/tjhs/sportrental/model"
)

// Notification is one logged reminder.
type Notification struct {
	RentalID      string    `json:"rental_id"`
	To            string    `json:"to"`
	Subject       string    `json:"subject"`
	Body          string    `json:"body"`
	UserName      string    `json:"user_name"`
	EquipmentName string    `json:"equipment_name"`
	DueDate       time.Time `json:"due_date"`
	LoggedAt      time.Time `json:"logged_at"`
}

// Log is the reminder log. It is constructed once at process start and
// passed to whichever component needs to record or read reminders.
type Log struct {
	mu      sync.Mutex
	entries []Notification
}

// NewLog creates an empty reminder log.
func NewLog() *Log {
	return &Log{}
}

// RecordReminderIfAbsent logs a reminder for an overdue rental unless one
// was already logged for the same rental on the same calendar day. It
// returns the entry and whether it was newly recorded. The construction
// step cannot fail.
func (l *Log) RecordReminderIfAbsent(r *model.Rental, u *model.User, now time.Time) (Notification, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].RentalID == r.ID && sameDay(l.entries[i].LoggedAt, now) {
			return l.entries[i], false
		}
	}

	subject, body := BuildOverdueEmail(r, u)
	n := Notification{
		RentalID:      r.ID,
		To:            u.Email,
		Subject:       subject,
		Body:          body,
		UserName:      u.Name,
		EquipmentName: r.EquipmentName,
		DueDate:       r.DueDate,
		LoggedAt:      now,
	}
	l.entries = append(l.entries, n)
	return n, true
}

// Notifications returns a copy of all logged reminders.
func (l *Log) Notifications() []Notification {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Notification, len(l.entries))
	copy(out, l.entries)
	return out
}

// Clear wipes the log. Administrative reset only.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
