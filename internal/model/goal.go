package model

import (
	"github.com/google/uuid"
)

// Priority ranks a savings goal.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ValidPriority reports whether p is one of the three known priorities.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Goal is a savings target with current progress and a deadline. The wire
// field names (target_amount, current_amount) follow the REST contract;
// internally the shorter Target/Current are used.
type Goal struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Target   float64  `json:"target_amount"`
	Current  float64  `json:"current_amount"`
	Priority Priority `json:"priority"`
	Deadline Date     `json:"deadline"`
}

// GenerateID assigns a fresh UUID if the goal has no ID yet.
func (g *Goal) GenerateID() {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
}

// Progress returns completion as a percentage clamped to [0, 100].
func (g Goal) Progress() float64 {
	if g.Target <= 0 {
		return 0
	}
	p := g.Current / g.Target * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Completed reports whether the goal has reached its target.
func (g Goal) Completed() bool {
	return g.Target > 0 && g.Current >= g.Target
}

// Remaining returns the amount still needed to reach the target.
func (g Goal) Remaining() float64 {
	return g.Target - g.Current
}
