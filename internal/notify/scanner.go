package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/clairecicle/Mental-load-app/internal/domain"
	"github.com/clairecicle/Mental-load-app/internal/repo"
	"github.com/clairecicle/Mental-load-app/internal/schedule"
)

// DueWindow is how long after its due instant a task still triggers a
// notification.
const DueWindow = 5 * time.Minute

// Payload is the push message body.
type Payload struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	PrimaryKey string `json:"primaryKey"`
}

// Transport delivers a payload to one subscriber.
type Transport interface {
	Send(ctx context.Context, sub domain.PushSubscription, p Payload) error
}

// Scanner finds tasks that just came due and pushes a notification to
// every subscriber. Each due task is announced once: the sent flag is
// set after the broadcast even when some deliveries fail, so a flaky
// subscriber cannot cause repeat notifications.
type Scanner struct {
	tasks     repo.TaskRepo
	subs      repo.SubscriptionRepo
	transport Transport
	sf        singleflight.Group
	now       func() time.Time
}

// NewScanner returns a new Scanner.
func NewScanner(tasks repo.TaskRepo, subs repo.SubscriptionRepo, transport Transport) *Scanner {
	return &Scanner{tasks: tasks, subs: subs, transport: transport, now: time.Now}
}

// Delivery records one attempted push.
type Delivery struct {
	TaskID   string `json:"task_id"`
	Endpoint string `json:"endpoint"`
	Sent     bool   `json:"sent"`
}

// Result summarizes one scan.
type Result struct {
	CheckedTasks  int        `json:"checked_tasks"`
	Notifications []Delivery `json:"notifications"`
}

// Scan runs one pass over the unnotified tasks. Concurrent calls
// collapse into a single pass.
func (s *Scanner) Scan(ctx context.Context) (Result, error) {
	v, err, _ := s.sf.Do("scan", func() (interface{}, error) {
		return s.scan(ctx)
	})
	if err != nil {
		return Result{}, err
	}
	return v.(Result), nil
}

func (s *Scanner) scan(ctx context.Context) (Result, error) {
	tasks, err := s.tasks.ListUnnotified(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list unnotified: %w", err)
	}

	now := s.now()
	var due []domain.Task
	// Selection is by schedule and the sent flag alone; a completed
	// task that is still inside its window fires like any other.
	for _, t := range tasks {
		if schedule.DueWithin(t.DueDate, t.DueTime, now, DueWindow) {
			due = append(due, t)
		}
	}
	res := Result{CheckedTasks: len(tasks)}
	if len(due) == 0 {
		return res, nil
	}

	subs, err := s.subs.List(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list subscriptions: %w", err)
	}

	for _, t := range due {
		payload := Payload{
			Title:      "Task due now!",
			Body:       fmt.Sprintf("%q is due", t.Title),
			PrimaryKey: t.ID,
		}
		for _, sub := range subs {
			err := s.transport.Send(ctx, sub, payload)
			if err != nil {
				log.Printf("push to %s failed: %v", sub.Endpoint, err)
			}
			res.Notifications = append(res.Notifications, Delivery{
				TaskID:   t.ID,
				Endpoint: sub.Endpoint,
				Sent:     err == nil,
			})
		}
		if err := s.tasks.MarkNotified(ctx, t.ID); err != nil {
			log.Printf("mark notified %s: %v", t.ID, err)
		}
	}
	return res, nil
}
