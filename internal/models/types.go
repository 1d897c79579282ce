// internal/models/types.go
package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type JobStatus string

const (
	JobActive    JobStatus = "Active"
	JobPending   JobStatus = "Pending"
	JobCompleted JobStatus = "Completed"
	JobCancelled JobStatus = "Cancelled"
	JobOnHold    JobStatus = "On Hold"
)

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "Active"
	EmployeeLeave    EmployeeStatus = "Leave"
	EmployeeOnLeave  EmployeeStatus = "On Leave"
	EmployeeInactive EmployeeStatus = "Inactive"
)

type TeamRole string

const (
	RoleQS             TeamRole = "QS"
	RoleSupervisor     TeamRole = "Supervisor"
	RoleOperative      TeamRole = "Operative"
	RoleApprentice     TeamRole = "Apprentice"
	RoleProjectManager TeamRole = "Project Manager"
)

// Job is the domain-level job record returned by repositories.
// Dates, worker count and value are optional in the source data.
type Job struct {
	ID           uuid.UUID           `json:"id"`
	OrgID        uuid.UUID           `json:"org_id"`
	Title        string              `json:"title"`
	Client       string              `json:"client"`
	Location     string              `json:"location"`
	Status       JobStatus           `json:"status"`
	StartDate    *time.Time          `json:"start_date,omitempty"`
	EndDate      *time.Time          `json:"end_date,omitempty"`
	WorkersCount *int                `json:"workers_count,omitempty"`
	Value        decimal.NullDecimal `json:"value"`
	Progress     int                 `json:"progress"`
}

type Employee struct {
	ID             uuid.UUID      `json:"id"`
	OrgID          uuid.UUID      `json:"org_id"`
	Name           string         `json:"name"`
	TeamRole       TeamRole       `json:"team_role"`
	AvatarInitials string         `json:"avatar_initials"`
	Status         EmployeeStatus `json:"status"`
}

// Active reports whether the employee is working (any other status counts as leave).
func (e Employee) Active() bool { return e.Status == EmployeeActive }

var (
	ErrOrgNotFound       = errors.New("org not found")
	ErrInvalidAPIKey     = errors.New("invalid api key")
	ErrSourceUnavailable = errors.New("source unavailable")
)
