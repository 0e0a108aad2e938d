package domain

import (
	"time"

	"github.com/google/uuid"
)

// LabelCategory groups status labels and carries their display attributes.
type LabelCategory struct {
	ID       uuid.UUID
	Name     string
	Color    string
	Emoji    string
	Position int
}

// StatusLabel is a catalog entry that can be attached to a plan as a badge.
type StatusLabel struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Name       string
	Position   int
}

// Catalog is the reference data for badges: categories and their labels.
type Catalog struct {
	Categories []LabelCategory
	Labels     []StatusLabel
}

// Category returns the category with the given id.
func (c Catalog) Category(id uuid.UUID) (LabelCategory, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return LabelCategory{}, false
}

// Label returns the label with the given id.
func (c Catalog) Label(id uuid.UUID) (StatusLabel, bool) {
	for _, l := range c.Labels {
		if l.ID == id {
			return l, true
		}
	}
	return StatusLabel{}, false
}

// Badge is the presence of a status label on a plan. At most one badge exists
// per (PlanID, LabelID) pair.
type Badge struct {
	PlanID  uuid.UUID
	LabelID uuid.UUID
	AddedBy *uuid.UUID
	AddedAt time.Time
}

// BadgeSummary is the compact badge view of a plan: the first Inline badges in
// insertion order plus the number of badges that did not fit.
type BadgeSummary struct {
	PlanID   uuid.UUID
	Inline   []Badge
	Overflow int
}

// SummarizeBadges caps a plan's badge list at limit inline entries.
func SummarizeBadges(planID uuid.UUID, badges []Badge, limit int) BadgeSummary {
	if limit < 0 {
		limit = 0
	}
	s := BadgeSummary{PlanID: planID}
	if len(badges) <= limit {
		s.Inline = append([]Badge(nil), badges...)
		return s
	}
	s.Inline = append([]Badge(nil), badges[:limit]...)
	s.Overflow = len(badges) - limit
	return s
}
