// Package api holds the JSON wire types of the board HTTP API and their
// mapping to domain types. The server and the client share these definitions.
package api

import (
	"time"

	"github.com/google/uuid"
)

type Ref struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
}

type Progress struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

// Plan is a treatment plan as served by GET /plans and transition responses.
type Plan struct {
	ID            uuid.UUID     `json:"id"`
	BusinessID    string        `json:"business_id"`
	Label         string        `json:"label"`
	State         string        `json:"state"`
	Urgent        bool          `json:"urgent"`
	Patient       Ref           `json:"patient"`
	Clinic        Ref           `json:"clinic"`
	Doctor        *Ref          `json:"doctor,omitempty"`
	WorkType      Ref           `json:"work_type"`
	Progress      Progress      `json:"progress"`
	LastReason    *string       `json:"last_reason,omitempty"`
	ReopenSubtype *string       `json:"reopen_subtype,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Badges        *BadgeSummary `json:"badges,omitempty"`
}

type PlanList struct {
	Plans   []Plan `json:"plans"`
	HasMore bool   `json:"has_more"`
}

// TransitionRequest is the body of POST /plans/{id}/transition.
type TransitionRequest struct {
	ToState       string  `json:"to_state"`
	Reason        *string `json:"reason,omitempty"`
	ReopenSubtype *string `json:"reopen_subtype,omitempty"`
}

// Transition is one entry of a plan's transition history.
type Transition struct {
	ID            uuid.UUID  `json:"id"`
	FromState     string     `json:"from_state"`
	ToState       string     `json:"to_state"`
	Reason        *string    `json:"reason,omitempty"`
	ReopenSubtype *string    `json:"reopen_subtype,omitempty"`
	ActorID       *uuid.UUID `json:"actor_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type TransitionList struct {
	Transitions []Transition `json:"transitions"`
}

type Badge struct {
	PlanID  uuid.UUID  `json:"plan_id"`
	LabelID uuid.UUID  `json:"label_id"`
	AddedBy *uuid.UUID `json:"added_by,omitempty"`
	AddedAt time.Time  `json:"added_at"`
}

type BadgeList struct {
	Badges []Badge `json:"badges"`
}

// BadgeSummary is the capped inline badge view attached to list items.
type BadgeSummary struct {
	Inline   []Badge `json:"inline"`
	Overflow int     `json:"overflow"`
}

// ToggleRequest is the body of POST /plans/{id}/badges/{labelId}/toggle.
type ToggleRequest struct {
	ActorID *uuid.UUID `json:"actor_id,omitempty"`
}

type ToggleResponse struct {
	Added bool   `json:"added"`
	Badge *Badge `json:"badge,omitempty"`
}

type Category struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
	Emoji    string    `json:"emoji,omitempty"`
	Position int       `json:"position"`
}

type Label struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`
	Position   int       `json:"position"`
}

type Catalog struct {
	Categories []Category `json:"categories"`
	Labels     []Label    `json:"labels"`
}

type QueueCounts struct {
	Total  int `json:"total"`
	Urgent int `json:"urgent"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code,omitempty"`
	Fields []FieldError `json:"fields,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
