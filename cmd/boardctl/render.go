package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/board"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

const columnWidth = 30

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	urgentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1).
			Width(columnWidth)
)

// badgeStyles maps a label to its display name and category color.
type badgeStyles map[uuid.UUID]badgeStyle

type badgeStyle struct {
	name  string
	emoji string
	style lipgloss.Style
}

func newBadgeStyles(cat domain.Catalog) badgeStyles {
	cats := make(map[uuid.UUID]domain.LabelCategory, len(cat.Categories))
	for _, c := range cat.Categories {
		cats[c.ID] = c
	}
	out := make(badgeStyles, len(cat.Labels))
	for _, l := range cat.Labels {
		c := cats[l.CategoryID]
		out[l.ID] = badgeStyle{
			name:  l.Name,
			emoji: c.Emoji,
			style: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)),
		}
	}
	return out
}

func (bs badgeStyles) render(b domain.Badge) string {
	st, ok := bs[b.LabelID]
	if !ok {
		return mutedStyle.Render("[?]")
	}
	text := st.name
	if st.emoji != "" {
		text = st.emoji + " " + text
	}
	return st.style.Render("[" + text + "]")
}

// boardView is what renderBoard reads from a session.
type boardView interface {
	Board() board.Board
	BadgeSummary(planID uuid.UUID) domain.BadgeSummary
	Catalog() domain.Catalog
	Counts() domain.QueueCounts
}

func renderBoard(v boardView) string {
	b := v.Board()
	styles := newBadgeStyles(v.Catalog())

	cols := make([]string, 0, len(b.Columns))
	for _, col := range b.Columns {
		cols = append(cols, renderColumn(col, v, styles))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderCounts(v.Counts()),
		lipgloss.JoinHorizontal(lipgloss.Top, cols...),
	)
}

func renderCounts(c domain.QueueCounts) string {
	return titleStyle.Render(fmt.Sprintf("Queue: %d", c.Total)) + "  " +
		urgentStyle.Render(fmt.Sprintf("Urgent: %d", c.Urgent))
}

func renderColumn(col board.Column, v boardView, styles badgeStyles) string {
	lines := []string{titleStyle.Render(fmt.Sprintf("%s (%d)", strings.ToUpper(col.State.String()), len(col.Plans)))}
	if len(col.Plans) == 0 {
		lines = append(lines, mutedStyle.Render("empty"))
	}
	for _, p := range col.Plans {
		lines = append(lines, "", renderCard(p, v.BadgeSummary(p.ID), styles))
	}
	return columnStyle.Render(strings.Join(lines, "\n"))
}

func renderCard(p domain.Plan, sum domain.BadgeSummary, styles badgeStyles) string {
	head := p.BusinessID
	if p.Urgent {
		head = urgentStyle.Render("! " + head)
	}

	lines := []string{head, p.Label}
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("%s · %s", p.Patient.Label, p.Clinic.Label)))
	if p.Progress.Total > 0 {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("%s %d/%d", p.WorkType.Label, p.Progress.Done, p.Progress.Total)))
	}
	if p.LastReason != nil && p.State != domain.PlanStateActive {
		lines = append(lines, mutedStyle.Render("reason: "+*p.LastReason))
	}

	if len(sum.Inline) > 0 || sum.Overflow > 0 {
		badges := make([]string, 0, len(sum.Inline)+1)
		for _, b := range sum.Inline {
			badges = append(badges, styles.render(b))
		}
		if sum.Overflow > 0 {
			badges = append(badges, mutedStyle.Render(fmt.Sprintf("+%d", sum.Overflow)))
		}
		lines = append(lines, strings.Join(badges, " "))
	}
	return strings.Join(lines, "\n")
}

func renderHistoryLine(from, to string, reason, subtype *string, at string) string {
	line := fmt.Sprintf("%s  %s → %s", at, from, to)
	if subtype != nil {
		line += " (" + *subtype + ")"
	}
	if reason != nil {
		line += "  " + mutedStyle.Render(*reason)
	}
	return line
}
