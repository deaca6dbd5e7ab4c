package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tjhs/sportrental/model"
)

// Transport delivers a notification. Delivery is best-effort; the log
// entry exists either way.
type Transport interface {
	Send(ctx context.Context, n Notification) error
}

// LogTransport writes deliveries to the structured log instead of sending
// real mail.
type LogTransport struct{}

func (LogTransport) Send(ctx context.Context, n Notification) error {
	slog.Info("overdue reminder",
		"to", n.To,
		"subject", n.Subject,
		"rental_id", n.RentalID,
	)
	return nil
}

const (
	maxSendAttempts = 3
	retryDelay      = 200 * time.Millisecond
)

// RentalSource is the subset of the store the overdue scan reads.
type RentalSource interface {
	OverdueRentals(now time.Time) []model.Rental
	GetUser(id string) (*model.User, error)
}

// Result reports the outcome for one overdue rental.
type Result struct {
	RentalID string
	Skipped  bool // reminder already logged today
	Err      error
}

// ProcessOverdue scans for overdue rentals and records at most one reminder
// per rental per day, then hands each new reminder to the transport with
// bounded retries. Items are independent: a transport failure is reported
// in that item's Result and the rest of the batch continues. The scan never
// mutates the ledger.
func ProcessOverdue(ctx context.Context, src RentalSource, log *Log, tr Transport, now time.Time) []Result {
	var results []Result
	for _, r := range src.OverdueRentals(now) {
		user, err := src.GetUser(r.UserID)
		if err != nil {
			results = append(results, Result{RentalID: r.ID, Err: err})
			continue
		}
		if user == nil {
			results = append(results, Result{RentalID: r.ID, Err: fmt.Errorf("user %s not found", r.UserID)})
			continue
		}
		if user.Email == "" {
			results = append(results, Result{RentalID: r.ID, Err: fmt.Errorf("user %s has no email address", user.ID)})
			continue
		}

		n, recorded := log.RecordReminderIfAbsent(&r, user, now)
		if !recorded {
			results = append(results, Result{RentalID: r.ID, Skipped: true})
			continue
		}

		results = append(results, Result{RentalID: r.ID, Err: sendWithRetry(ctx, tr, n)})
	}
	return results
}

// sendWithRetry attempts delivery up to maxSendAttempts times with a short
// delay between attempts.
func sendWithRetry(ctx context.Context, tr Transport, n Notification) error {
	var err error
	for attempt := 0; attempt < maxSendAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryDelay):
			}
		}
		if err = tr.Send(ctx, n); err == nil {
			return nil
		}
	}
	return err
}
