package incidents

import (
	"context"
	"testing"
	"time"

	"github.com/diwise/oncall-mgmt/internal/pkg/application/oncall"
	"github.com/diwise/oncall-mgmt/internal/pkg/infrastructure/notifications"
	"github.com/diwise/oncall-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/oncall-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func testSetup() (*IncidentStorageMock, *messaging.MsgContextMock, *notifications.NotifierMock, *oncall.Resolver) {
	s := &IncidentStorageMock{
		GetIncidentFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Incident, error) {
			return types.Incident{}, storage.ErrNoRows
		},
		AddIncidentFunc: func(ctx context.Context, incident types.Incident) error {
			return nil
		},
		TouchIncidentFunc: func(ctx context.Context, incidentID string) error {
			return nil
		},
		ReopenIncidentFunc: func(ctx context.Context, incidentID string) error {
			return nil
		},
		AddNoteFunc: func(ctx context.Context, note types.Note) error {
			return nil
		},
		GetSLASettingsFunc: func(ctx context.Context, teamID string) (types.TeamSLASettings, error) {
			return types.TeamSLASettings{
				TeamID:            teamID,
				Enabled:           true,
				ResponseTargets:   types.Targets{Critical: 15, High: 30, Medium: 60, Low: 240},
				ResolutionTargets: types.Targets{Critical: 120, High: 240, Medium: 480, Low: 1440},
			}, nil
		},
	}

	m := &messaging.MsgContextMock{
		RegisterTopicMessageHandlerFunc: func(routingKey string, handler messaging.TopicMessageHandler) error {
			return nil
		},
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	n := &notifications.NotifierMock{
		SendFunc: func(ctx context.Context, recipientEmail, recipientName string, kind notifications.Kind, payload map[string]any) bool {
			return true
		},
	}

	directory := &oncall.DirectoryMock{
		TeamsFunc: func(ctx context.Context) ([]types.Team, error) {
			return []types.Team{{ID: "team-platform", Name: "Platform"}}, nil
		},
		TeamMembersFunc: func(ctx context.Context, teamID string) ([]types.Member, error) {
			return []types.Member{{ID: "member-01", Name: "Alex", Email: "alex@example.com"}}, nil
		},
		TeamOwnersFunc: func(ctx context.Context, teamID string) ([]types.Member, error) {
			return nil, nil
		},
		MemberFunc: func(ctx context.Context, memberID string) (types.Member, error) {
			return types.Member{}, storage.ErrNoRows
		},
	}

	schedule := &oncall.ScheduleMock{
		EntriesForDateFunc: func(ctx context.Context, date time.Time) ([]types.ScheduleEntry, error) {
			return nil, nil
		},
	}

	return s, m, n, oncall.NewResolver(directory, schedule)
}

func TestIngestCreatesRoutedIncident(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s, m, n, resolver := testSetup()
	svc := New(s, resolver, n, m)

	incident, err := svc.Ingest(ctx, types.Alert{
		Source:   "grafana",
		Title:    "disk full",
		Severity: types.SeverityHigh,
		Tags:     []string{"platform"},
	})

	is.NoErr(err)
	is.Equal(incident.Status, types.StatusNew)
	is.Equal(incident.TeamID, "team-platform")
	is.Equal(incident.AssignedTo, "member-01")
	is.True(incident.Fingerprint != "")
	is.True(incident.SLAResponseDeadline != nil)
	is.True(incident.SLAResolutionDeadline != nil)

	is.Equal(1, len(s.AddIncidentCalls()))
	is.Equal(1, len(m.PublishOnTopicCalls()))
	is.Equal(1, len(n.SendCalls()))
	is.Equal(n.SendCalls()[0].RecipientEmail, "alex@example.com")
}

func TestIngestDefaultsSeverityToMedium(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s, m, n, resolver := testSetup()
	svc := New(s, resolver, n, m)

	incident, err := svc.Ingest(ctx, types.Alert{Source: "generic", Title: "odd"})

	is.NoErr(err)
	is.Equal(incident.Severity, types.SeverityMedium)
}

func TestIngestDuplicateOnlyTouches(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s, m, n, resolver := testSetup()
	s.GetIncidentFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Incident, error) {
		return types.Incident{ID: "incident-01", Status: types.StatusInProgress}, nil
	}

	svc := New(s, resolver, n, m)

	incident, err := svc.Ingest(ctx, types.Alert{Source: "grafana", Title: "disk full"})

	is.NoErr(err)
	is.Equal(incident.ID, "incident-01")
	is.Equal(incident.Status, types.StatusInProgress)

	is.Equal(1, len(s.TouchIncidentCalls()))
	is.Equal(0, len(s.AddIncidentCalls()))
	is.Equal(0, len(m.PublishOnTopicCalls()))
	is.Equal(0, len(n.SendCalls()))
}

func TestIngestReopensClosedIncident(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	closedOn := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)

	s, m, n, resolver := testSetup()
	s.GetIncidentFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Incident, error) {
		return types.Incident{
			ID:                    "incident-01",
			Status:                types.StatusClosed,
			ClosedAt:              &closedOn,
			SLAResponseBreached:   true,
			SLAResolutionBreached: true,
		}, nil
	}

	svc := New(s, resolver, n, m)

	incident, err := svc.Ingest(ctx, types.Alert{Source: "grafana", Title: "disk full"})

	is.NoErr(err)
	is.Equal(incident.Status, types.StatusNew)
	is.True(incident.ClosedAt == nil)

	// breach history survives the reopen
	is.True(incident.SLAResponseBreached)
	is.True(incident.SLAResolutionBreached)

	is.Equal(1, len(s.ReopenIncidentCalls()))
	is.Equal(1, len(s.AddNoteCalls()))
	is.True(s.AddNoteCalls()[0].Note.System)
	is.Equal(1, len(m.PublishOnTopicCalls()))
}

func TestIngestLostRaceFallsBackToUpdate(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s, m, n, resolver := testSetup()

	lookups := 0
	s.GetIncidentFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Incident, error) {
		lookups++
		if lookups == 1 {
			return types.Incident{}, storage.ErrNoRows
		}
		return types.Incident{ID: "incident-01", Status: types.StatusNew}, nil
	}
	s.AddIncidentFunc = func(ctx context.Context, incident types.Incident) error {
		return storage.ErrAlreadyExists
	}

	svc := New(s, resolver, n, m)

	incident, err := svc.Ingest(ctx, types.Alert{Source: "grafana", Title: "disk full"})

	is.NoErr(err)
	is.Equal(incident.ID, "incident-01")
	is.Equal(1, len(s.TouchIncidentCalls()))
}

func TestIngestWithoutSLASettingsGetsNoDeadlines(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s, m, n, resolver := testSetup()
	s.GetSLASettingsFunc = func(ctx context.Context, teamID string) (types.TeamSLASettings, error) {
		return types.TeamSLASettings{}, storage.ErrNoRows
	}

	svc := New(s, resolver, n, m)

	incident, err := svc.Ingest(ctx, types.Alert{Source: "grafana", Title: "disk full"})

	is.NoErr(err)
	is.True(incident.SLAResponseDeadline == nil)
	is.True(incident.SLAResolutionDeadline == nil)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s, m, n, resolver := testSetup()
	svc := New(s, resolver, n, m)

	err := svc.SetStatus(ctx, "incident-01", types.Status("escalated"))
	is.True(err != nil)
}

func TestSetStatusNewReopensClosedIncident(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	closedAt := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)

	s, m, n, resolver := testSetup()
	s.GetIncidentFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Incident, error) {
		return types.Incident{
			ID:       "incident-01",
			Status:   types.StatusClosed,
			ClosedAt: &closedAt,
		}, nil
	}
	s.UpdateIncidentStatusFunc = func(ctx context.Context, incidentID string, status types.Status, now time.Time) error {
		return nil
	}

	svc := New(s, resolver, n, m)

	err := svc.SetStatus(ctx, "incident-01", types.StatusNew)

	is.NoErr(err)
	is.Equal(1, len(s.UpdateIncidentStatusCalls()))
	is.Equal(s.UpdateIncidentStatusCalls()[0].Status, types.StatusNew)
}

func TestSetStatusOnMissingIncident(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s, m, n, resolver := testSetup()
	svc := New(s, resolver, n, m)

	err := svc.SetStatus(ctx, "no-such-incident", types.StatusClosed)
	is.Equal(err, ErrIncidentNotFound)
}

func TestSLAStatusForUnroutedIncident(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s, m, n, resolver := testSetup()
	svc := New(s, resolver, n, m)

	_, err := svc.SLAStatus(ctx, types.Incident{ID: "incident-01"})
	is.Equal(err, ErrNoSLA)
}

func TestSLAStatusWhenSettingsDisabled(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s, m, n, resolver := testSetup()
	s.GetSLASettingsFunc = func(ctx context.Context, teamID string) (types.TeamSLASettings, error) {
		return types.TeamSLASettings{TeamID: teamID, Enabled: false}, nil
	}

	svc := New(s, resolver, n, m)

	_, err := svc.SLAStatus(ctx, types.Incident{ID: "incident-01", TeamID: "team-platform"})
	is.Equal(err, ErrNoSLA)
}
