package dto

import (
	"time"

	"github.com/clairecicle/Mental-load-app/internal/domain"
	"github.com/clairecicle/Mental-load-app/internal/schedule"
)

// CreateTaskRequest is the JSON body for POST /tasks.
type CreateTaskRequest struct {
	HouseholdID       string `json:"household_id" binding:"required"`
	DomainID          string `json:"domain_id" binding:"required"`
	OwnerID           string `json:"owner_id" binding:"required"`
	Title             string `json:"title" binding:"required,min=1,max=200"`
	Details           string `json:"details" binding:"max=2000"`
	DueDate           string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	DueTime           string `json:"due_time" binding:"omitempty,datetime=15:04"`
	FrequencyType     string `json:"frequency_type" binding:"omitempty,oneof=daily weekly monthly custom"`
	FrequencyInterval int    `json:"frequency_interval" binding:"omitempty,min=1"`
}

// UpdateTaskRequest is the JSON body for PATCH /tasks/:id. Nil fields
// are left unchanged; an empty string clears the schedule field.
type UpdateTaskRequest struct {
	DomainID          *string    `json:"domain_id"`
	OwnerID           *string    `json:"owner_id"`
	Title             *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Details           *string    `json:"details" binding:"omitempty,max=2000"`
	DueDate           *string    `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	DueTime           *string    `json:"due_time" binding:"omitempty,datetime=15:04"`
	FrequencyType     *string    `json:"frequency_type" binding:"omitempty,oneof=daily weekly monthly custom"`
	FrequencyInterval *int       `json:"frequency_interval" binding:"omitempty,min=1"`
	IsCompleted       *bool      `json:"is_completed"`
	IsSnoozed         *bool      `json:"is_snoozed"`
	SnoozedUntil      *time.Time `json:"snoozed_until"`
}

// TaskResponse is the task wire shape. IsOverdue is computed at render
// time, it is not a stored field.
type TaskResponse struct {
	ID                string     `json:"id"`
	HouseholdID       string     `json:"household_id"`
	DomainID          string     `json:"domain_id"`
	OwnerID           string     `json:"owner_id"`
	OwnerName         string     `json:"owner_name,omitempty"`
	DomainName        string     `json:"domain_name,omitempty"`
	Title             string     `json:"title"`
	Details           string     `json:"details,omitempty"`
	DueDate           string     `json:"due_date,omitempty"`
	DueTime           string     `json:"due_time,omitempty"`
	FrequencyType     string     `json:"frequency_type,omitempty"`
	FrequencyInterval int        `json:"frequency_interval,omitempty"`
	IsCompleted       bool       `json:"is_completed"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	IsSnoozed         bool       `json:"is_snoozed"`
	SnoozedUntil      *time.Time `json:"snoozed_until,omitempty"`
	IsOverdue         bool       `json:"is_overdue"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// NewTaskResponse renders a task, classifying overdue against now.
func NewTaskResponse(t domain.Task, now time.Time) TaskResponse {
	return TaskResponse{
		ID:                t.ID,
		HouseholdID:       t.HouseholdID,
		DomainID:          t.DomainID,
		OwnerID:           t.OwnerID,
		OwnerName:         t.OwnerName,
		DomainName:        t.DomainName,
		Title:             t.Title,
		Details:           t.Details,
		DueDate:           t.DueDate,
		DueTime:           t.DueTime,
		FrequencyType:     t.FrequencyType,
		FrequencyInterval: t.FrequencyInterval,
		IsCompleted:       t.IsCompleted,
		CompletedAt:       t.CompletedAt,
		IsSnoozed:         t.IsSnoozed,
		SnoozedUntil:      t.SnoozedUntil,
		IsOverdue:         !t.IsCompleted && schedule.IsOverdue(t.DueDate, t.DueTime, now),
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// NewTaskResponses renders a slice of tasks against one clock reading.
func NewTaskResponses(tasks []domain.Task, now time.Time) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskResponse(t, now))
	}
	return out
}

// ListTasksResponse wraps a task list.
type ListTasksResponse struct {
	Items []TaskResponse `json:"items"`
}

// GroupedTasksResponse is the today view bucketed by time of day.
type GroupedTasksResponse struct {
	EarlierToday []TaskResponse `json:"earlier_today"`
	UpNext       []TaskResponse `json:"up_next"`
	Anytime      []TaskResponse `json:"anytime"`
	Completed    []TaskResponse `json:"completed"`
}

// NewGroupedTasksResponse renders the grouped today view.
func NewGroupedTasksResponse(g schedule.Grouped, now time.Time) GroupedTasksResponse {
	return GroupedTasksResponse{
		EarlierToday: NewTaskResponses(g.EarlierToday, now),
		UpNext:       NewTaskResponses(g.UpNext, now),
		Anytime:      NewTaskResponses(g.Anytime, now),
		Completed:    NewTaskResponses(g.Completed, now),
	}
}
