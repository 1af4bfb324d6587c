package types

import (
	"strings"
	"time"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// ParseSeverity maps free text onto one of the four known severities.
// Unknown values default to medium at the ingestion boundary.
func ParseSeverity(s string) Severity {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityCritical:
		return SeverityCritical
	case SeverityHigh:
		return SeverityHigh
	case SeverityMedium:
		return SeverityMedium
	case SeverityLow:
		return SeverityLow
	}
	return SeverityMedium
}

type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

// Alert is the canonical shape every vendor payload is normalized into.
type Alert struct {
	Source      string         `json:"source"`
	SourceID    string         `json:"sourceID,omitempty"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Severity    Severity       `json:"severity"`
	Tags        []string       `json:"tags,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type Incident struct {
	ID          string         `json:"id"`
	Fingerprint string         `json:"fingerprint"`
	Source      string         `json:"source"`
	SourceID    string         `json:"sourceID,omitempty"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Severity    Severity       `json:"severity"`
	Status      Status         `json:"status"`
	TeamID      string         `json:"teamID,omitempty"`
	AssignedTo  string         `json:"assignedTo,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`

	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	AcknowledgedAt  *time.Time `json:"acknowledgedAt,omitempty"`
	ClosedAt        *time.Time `json:"closedAt,omitempty"`
	FirstResponseAt *time.Time `json:"firstResponseAt,omitempty"`

	SLAResponseDeadline   *time.Time `json:"slaResponseDeadline,omitempty"`
	SLAResolutionDeadline *time.Time `json:"slaResolutionDeadline,omitempty"`
	SLAResponseBreached   bool       `json:"slaResponseBreached"`
	SLAResolutionBreached bool       `json:"slaResolutionBreached"`

	ResponseAtRiskNotified   bool `json:"-"`
	ResolutionAtRiskNotified bool `json:"-"`
}

type Note struct {
	ID         string    `json:"id"`
	IncidentID string    `json:"incidentID"`
	Text       string    `json:"text"`
	System     bool      `json:"system"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Targets holds minute budgets keyed by severity for one SLA axis.
type Targets struct {
	Critical int `json:"critical" yaml:"critical"`
	High     int `json:"high" yaml:"high"`
	Medium   int `json:"medium" yaml:"medium"`
	Low      int `json:"low" yaml:"low"`
}

func (t Targets) For(s Severity) int {
	switch s {
	case SeverityCritical:
		return t.Critical
	case SeverityHigh:
		return t.High
	case SeverityLow:
		return t.Low
	}
	return t.Medium
}

type TeamSLASettings struct {
	TeamID            string  `json:"teamID" yaml:"teamID"`
	Enabled           bool    `json:"enabled" yaml:"enabled"`
	ResponseTargets   Targets `json:"responseTargets" yaml:"responseTargets"`
	ResolutionTargets Targets `json:"resolutionTargets" yaml:"resolutionTargets"`

	BusinessHoursOnly  bool   `json:"businessHoursOnly" yaml:"businessHoursOnly"`
	BusinessHoursStart string `json:"businessHoursStart" yaml:"businessHoursStart"`
	BusinessHoursEnd   string `json:"businessHoursEnd" yaml:"businessHoursEnd"`
	BusinessDays       []int  `json:"businessDays" yaml:"businessDays"`
	Timezone           string `json:"timezone" yaml:"timezone"`
}

// SLAStatus is the evaluator output for one incident, both axes.
// Remaining times are in minutes and may be negative once a deadline passed.
type SLAStatus struct {
	ResponseTimeRemaining    float64 `json:"responseTimeRemaining"`
	ResolutionTimeRemaining  float64 `json:"resolutionTimeRemaining"`
	ResponseTimePercentage   float64 `json:"responseTimePercentage"`
	ResolutionTimePercentage float64 `json:"resolutionTimePercentage"`
	IsResponseBreached       bool    `json:"isResponseBreached"`
	IsResolutionBreached     bool    `json:"isResolutionBreached"`
	IsResponseAtRisk         bool    `json:"isResponseAtRisk"`
	IsResolutionAtRisk       bool    `json:"isResolutionAtRisk"`
}

type Team struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Member struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// ScheduleEntry is one day's assigned responders for a team.
// Read-only to this service.
type ScheduleEntry struct {
	Date      string   `json:"date" yaml:"date"` // YYYY-MM-DD
	TeamID    string   `json:"teamID" yaml:"teamID"`
	MemberIDs []string `json:"memberIDs" yaml:"memberIDs"`
}

// SweepSummary is the result of one breach sweep pass.
type SweepSummary struct {
	Checked           int `json:"checked"`
	Breaches          int `json:"breaches"`
	AtRisk            int `json:"atRisk"`
	NotificationsSent int `json:"notificationsSent"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
