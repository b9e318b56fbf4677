package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/clairecicle/Mental-load-app/internal/cache"
	"github.com/clairecicle/Mental-load-app/internal/domain"
	"github.com/clairecicle/Mental-load-app/internal/repo"
	"github.com/clairecicle/Mental-load-app/internal/schedule"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrTitleRequired = errors.New("title is required")
)

// TaskService owns task CRUD and the derived due views. Overdue state
// is never stored: every read reclassifies against the clock.
type TaskService struct {
	repo  repo.TaskRepo
	cache *cache.TaskCache
	sf    singleflight.Group
	now   func() time.Time
}

// NewTaskService creates a TaskService. If c is nil, caching is disabled.
func NewTaskService(r repo.TaskRepo, c *cache.TaskCache) *TaskService {
	return &TaskService{repo: r, cache: c, now: time.Now}
}

// CreateTaskInput carries the writable fields of a new task.
type CreateTaskInput struct {
	HouseholdID       string
	DomainID          string
	OwnerID           string
	Title             string
	Details           string
	DueDate           string
	DueTime           string
	FrequencyType     string
	FrequencyInterval int
}

func (s *TaskService) Create(ctx context.Context, in CreateTaskInput) (domain.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.Task{}, ErrTitleRequired
	}

	now := s.now().UTC()
	t, err := s.repo.Create(ctx, domain.Task{
		ID:                uuid.NewString(),
		HouseholdID:       in.HouseholdID,
		DomainID:          in.DomainID,
		OwnerID:           in.OwnerID,
		Title:             title,
		Details:           strings.TrimSpace(in.Details),
		DueDate:           in.DueDate,
		DueTime:           in.DueTime,
		FrequencyType:     in.FrequencyType,
		FrequencyInterval: in.FrequencyInterval,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return domain.Task{}, err
	}
	s.invalidateCache(ctx, in.HouseholdID)
	return t, nil
}

func (s *TaskService) List(ctx context.Context, householdID, ownerID string) ([]domain.Task, error) {
	if s.cache != nil && ownerID == "" {
		key := "list:" + householdID
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, householdID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx, householdID, "")
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, householdID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]domain.Task), nil
	}
	return s.repo.List(ctx, householdID, ownerID)
}

func (s *TaskService) GetByID(ctx context.Context, id string) (domain.Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.Task{}, ErrNotFound
		}
		return domain.Task{}, err
	}
	return t, nil
}

// Today returns the tasks due on the current local date.
func (s *TaskService) Today(ctx context.Context, householdID string) ([]domain.Task, error) {
	date := s.now().Format(schedule.DateLayout)
	if s.cache != nil {
		key := "today:" + householdID + ":" + date
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetToday(ctx, householdID, date); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.ListByDate(ctx, householdID, date)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetToday(ctx, householdID, date, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]domain.Task), nil
	}
	return s.repo.ListByDate(ctx, householdID, date)
}

// TodayGrouped returns today's tasks bucketed by time of day relative
// to the current hour.
func (s *TaskService) TodayGrouped(ctx context.Context, householdID string) (schedule.Grouped, error) {
	tasks, err := s.Today(ctx, householdID)
	if err != nil {
		return schedule.Grouped{}, err
	}
	return schedule.GroupByHour(tasks, s.now().Hour()), nil
}

// Upcoming returns the tasks due strictly after the current local date.
func (s *TaskService) Upcoming(ctx context.Context, householdID string) ([]domain.Task, error) {
	date := s.now().Format(schedule.DateLayout)
	if s.cache != nil {
		key := "upcoming:" + householdID + ":" + date
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetUpcoming(ctx, householdID, date); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.ListAfterDate(ctx, householdID, date)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetUpcoming(ctx, householdID, date, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]domain.Task), nil
	}
	return s.repo.ListAfterDate(ctx, householdID, date)
}

// Overdue returns the open tasks whose deadline has passed. The
// classification runs against the clock on every call, it is never
// read from storage.
func (s *TaskService) Overdue(ctx context.Context, householdID string) ([]domain.Task, error) {
	list, err := s.List(ctx, householdID, "")
	if err != nil {
		return nil, err
	}
	now := s.now()
	var out []domain.Task
	for _, t := range list {
		if t.IsCompleted {
			continue
		}
		if schedule.IsOverdue(t.DueDate, t.DueTime, now) {
			out = append(out, t)
		}
	}
	return out, nil
}

// UpdateTaskInput carries a partial update; nil fields are left as-is.
type UpdateTaskInput struct {
	DomainID          *string
	OwnerID           *string
	Title             *string
	Details           *string
	DueDate           *string
	DueTime           *string
	FrequencyType     *string
	FrequencyInterval *int
	IsCompleted       *bool
	IsSnoozed         *bool
	SnoozedUntil      *time.Time
}

func (s *TaskService) Update(ctx context.Context, id string, in UpdateTaskInput) (domain.Task, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.Task{}, ErrNotFound
		}
		return domain.Task{}, err
	}
	patch := existing
	if in.DomainID != nil {
		patch.DomainID = *in.DomainID
	}
	if in.OwnerID != nil {
		patch.OwnerID = *in.OwnerID
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return domain.Task{}, ErrTitleRequired
		}
		patch.Title = title
	}
	if in.Details != nil {
		patch.Details = strings.TrimSpace(*in.Details)
	}
	if in.DueDate != nil {
		patch.DueDate = *in.DueDate
		// A reschedule re-arms the due notification.
		patch.NotificationSent = false
	}
	if in.DueTime != nil {
		patch.DueTime = *in.DueTime
		patch.NotificationSent = false
	}
	if in.FrequencyType != nil {
		patch.FrequencyType = *in.FrequencyType
	}
	if in.FrequencyInterval != nil {
		patch.FrequencyInterval = *in.FrequencyInterval
	}
	if in.IsSnoozed != nil {
		patch.IsSnoozed = *in.IsSnoozed
		patch.SnoozedUntil = nil
		if *in.IsSnoozed && in.SnoozedUntil != nil {
			patch.SnoozedUntil = in.SnoozedUntil
		}
	}
	if in.IsCompleted != nil && *in.IsCompleted != patch.IsCompleted {
		patch.IsCompleted = *in.IsCompleted
		if *in.IsCompleted {
			at := s.now().UTC()
			patch.CompletedAt = &at
		} else {
			patch.CompletedAt = nil
		}
	}
	patch.UpdatedAt = s.now().UTC()

	t, err := s.repo.Update(ctx, patch)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.Task{}, ErrNotFound
		}
		return domain.Task{}, err
	}
	s.invalidateCache(ctx, existing.HouseholdID)
	return t, nil
}

func (s *TaskService) Complete(ctx context.Context, id string) (domain.Task, error) {
	return s.setCompleted(ctx, id, true)
}

func (s *TaskService) Reopen(ctx context.Context, id string) (domain.Task, error) {
	return s.setCompleted(ctx, id, false)
}

func (s *TaskService) setCompleted(ctx context.Context, id string, done bool) (domain.Task, error) {
	t, err := s.repo.SetCompleted(ctx, id, done, s.now().UTC())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.Task{}, ErrNotFound
		}
		return domain.Task{}, err
	}
	s.invalidateCache(ctx, t.HouseholdID)
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx, t.HouseholdID)
	return nil
}

func (s *TaskService) invalidateCache(ctx context.Context, householdID string) {
	if s.cache != nil {
		_ = s.cache.InvalidateHousehold(ctx, householdID)
	}
}
