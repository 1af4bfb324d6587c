package storage

import (
	"context"
	"strconv"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	IncidentID  string
	Fingerprint string
	TeamID      string
	Severity    string
	Statuses    []string

	OpenOnly   bool
	SLAManaged bool

	IncludeSuperseded bool

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.IncidentID != "" {
		args["incident_id"] = c.IncidentID
	}
	if c.Fingerprint != "" {
		args["fingerprint"] = c.Fingerprint
	}
	if c.TeamID != "" {
		args["team_id"] = c.TeamID
	}
	if c.Severity != "" {
		args["severity"] = c.Severity
	}
	if len(c.Statuses) > 0 {
		args["statuses"] = c.Statuses
	}

	return args
}

func (c Condition) Where() string {
	where := []string{}

	if c.IncidentID != "" {
		where = append(where, "i.incident_id = @incident_id")
	}

	if c.Fingerprint != "" {
		where = append(where, "i.fingerprint = @fingerprint")
	}

	if c.TeamID != "" {
		where = append(where, "i.team_id = @team_id")
	}

	if c.Severity != "" {
		where = append(where, "i.severity = @severity")
	}

	if len(c.Statuses) > 0 {
		where = append(where, "i.status = ANY(@statuses)")
	}

	if c.OpenOnly {
		where = append(where, "i.status <> 'closed'")
	}

	if c.SLAManaged {
		where = append(where, "EXISTS (SELECT 1 FROM team_sla_settings t WHERE t.team_id = i.team_id AND t.enabled)")
	}

	if !c.IncludeSuperseded {
		where = append(where, "i.superseded = FALSE")
	}

	if len(where) == 0 {
		return "TRUE"
	}

	return strings.Join(where, " AND ")
}

func (c Condition) SortBy() string {
	if c.sortBy == "" {
		return "i.created_on"
	}
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "DESC"
	}
	return c.sortOrder
}

func (c Condition) Offset() int {
	if c.offset == nil {
		return 0
	}
	return *c.offset
}

func (c Condition) Limit() int {
	if c.limit == nil {
		return 0
	}
	return *c.limit
}

func WithIncidentID(incidentID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.IncidentID = incidentID
		return c
	}
}

func WithFingerprint(fingerprint string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Fingerprint = fingerprint
		return c
	}
}

func WithTeamID(teamID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.TeamID = teamID
		return c
	}
}

func WithSeverity(severity string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Severity = severity
		return c
	}
}

func WithStatuses(statuses []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Statuses = statuses
		return c
	}
}

func WithOpenOnly() ConditionFunc {
	return func(c *Condition) *Condition {
		c.OpenOnly = true
		return c
	}
}

func WithSLAManaged() ConditionFunc {
	return func(c *Condition) *Condition {
		c.SLAManaged = true
		return c
	}
}

func WithSuperseded() ConditionFunc {
	return func(c *Condition) *Condition {
		c.IncludeSuperseded = true
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {
		switch strings.ToLower(sortBy) {
		case "created":
			c.sortBy = "i.created_on"
		case "modified":
			c.sortBy = "i.modified_on"
		case "severity":
			c.sortBy = "i.severity"
		case "status":
			c.sortBy = "i.status"
		}
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func ParseConditions(ctx context.Context, params map[string][]string) []ConditionFunc {
	log := logging.GetFromContext(ctx)

	conditions := make([]ConditionFunc, 0)

	for k, v := range params {
		switch strings.ToLower(k) {
		case "status":
			conditions = append(conditions, WithStatuses(v))
		case "teamid":
			conditions = append(conditions, WithTeamID(v[0]))
		case "severity":
			conditions = append(conditions, WithSeverity(v[0]))
		case "open":
			if open, _ := strconv.ParseBool(v[0]); open {
				conditions = append(conditions, WithOpenOnly())
			}
		case "limit":
			limit, _ := strconv.Atoi(v[0])
			conditions = append(conditions, WithLimit(limit))
		case "offset":
			offset, _ := strconv.Atoi(v[0])
			conditions = append(conditions, WithOffset(offset))
		case "sortby":
			conditions = append(conditions, WithSortBy(v[0]))
		case "sortorder":
			conditions = append(conditions, WithSortDesc(strings.EqualFold(v[0], "desc")))
		default:
			log.Debug("unknown query parameter", "param", k, "value", v[0])
		}
	}

	return conditions
}
