package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus is the lifecycle stage of a project.
type ProjectStatus string

const (
	// ProjectPlanning is the default status for new projects.
	ProjectPlanning ProjectStatus = "planning"
	// ProjectActive means work is underway.
	ProjectActive ProjectStatus = "active"
	// ProjectOnHold means work is paused.
	ProjectOnHold ProjectStatus = "on-hold"
	// ProjectCompleted means work is finished.
	ProjectCompleted ProjectStatus = "completed"
)

// Project represents a job or engagement that transactions can be booked
// against. Budget is nil when no budget was set, which is distinct from a
// zero budget.
type Project struct {
	StartDate   *time.Time       `json:"startDate,omitempty"`
	EndDate     *time.Time       `json:"endDate,omitempty"`
	Budget      *decimal.Decimal `json:"budget,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Client      string           `json:"client,omitempty"`
	Location    string           `json:"location,omitempty"`
	Description string           `json:"description,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	Status      ProjectStatus    `json:"status"`
	Progress    int              `json:"progress"`
}
