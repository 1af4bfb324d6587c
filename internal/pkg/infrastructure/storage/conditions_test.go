package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func applyConditions(funcs ...ConditionFunc) Condition {
	c := &Condition{}
	for _, f := range funcs {
		c = f(c)
	}
	return *c
}

func TestWhereDefaultsToLiveRows(t *testing.T) {
	is := is.New(t)

	c := applyConditions()

	is.Equal(c.Where(), "i.superseded = FALSE")
}

func TestWhereCombinesConditions(t *testing.T) {
	is := is.New(t)

	c := applyConditions(WithTeamID("team-platform"), WithOpenOnly(), WithSLAManaged())
	where := c.Where()

	is.True(strings.Contains(where, "i.team_id = @team_id"))
	is.True(strings.Contains(where, "i.status <> 'closed'"))
	is.True(strings.Contains(where, "team_sla_settings"))
	is.True(strings.Contains(where, "i.superseded = FALSE"))
}

func TestWhereIsTrueWhenEverythingIsIncluded(t *testing.T) {
	is := is.New(t)

	c := applyConditions(WithSuperseded())

	is.Equal(c.Where(), "TRUE")
}

func TestNamedArgsOnlyHoldSetValues(t *testing.T) {
	is := is.New(t)

	c := applyConditions(WithFingerprint("abc123"), WithStatuses([]string{"new", "in_progress"}))
	args := c.NamedArgs()

	is.Equal(len(args), 2)
	is.Equal(args["fingerprint"], "abc123")
}

func TestSortAndPagingDefaults(t *testing.T) {
	is := is.New(t)

	c := applyConditions()

	is.Equal(c.SortBy(), "i.created_on")
	is.Equal(c.SortOrder(), "DESC")
	is.Equal(c.Offset(), 0)
	is.Equal(c.Limit(), 0)
}

func TestSortByRejectsUnknownColumns(t *testing.T) {
	is := is.New(t)

	c := applyConditions(WithSortBy("fingerprint; DROP TABLE incidents"))

	is.Equal(c.SortBy(), "i.created_on")
}

func TestParseConditionsFromQueryParams(t *testing.T) {
	is := is.New(t)

	funcs := ParseConditions(context.Background(), map[string][]string{
		"status":  {"new", "in_progress"},
		"teamId":  {"team-platform"},
		"open":    {"true"},
		"limit":   {"25"},
		"offset":  {"50"},
		"unknown": {"ignored"},
	})

	c := applyConditions(funcs...)

	is.Equal(c.TeamID, "team-platform")
	is.Equal(c.Statuses, []string{"new", "in_progress"})
	is.True(c.OpenOnly)
	is.Equal(c.Limit(), 25)
	is.Equal(c.Offset(), 50)
}
