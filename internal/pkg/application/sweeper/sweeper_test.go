package sweeper

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

var createdAt = time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

func openIncident() types.Incident {
	response := createdAt.Add(60 * time.Minute)
	resolution := createdAt.Add(480 * time.Minute)

	return types.Incident{
		ID:                    "incident-01",
		Severity:              types.SeverityMedium,
		Status:                types.StatusNew,
		TeamID:                "team-platform",
		AssignedTo:            "member-01",
		CreatedAt:             createdAt,
		SLAResponseDeadline:   &response,
		SLAResolutionDeadline: &resolution,
	}
}

func sweepSetup(incidents ...types.Incident) (*SweepStorageMock, *oncall.DirectoryMock, *notifications.NotifierMock, *messaging.MsgContextMock) {
	s := &SweepStorageMock{
		QueryIncidentsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Incident], error) {
			return types.Collection[types.Incident]{Data: incidents}, nil
		},
		GetSLASettingsFunc: func(ctx context.Context, teamID string) (types.TeamSLASettings, error) {
			return types.TeamSLASettings{
				TeamID:            teamID,
				Enabled:           true,
				ResponseTargets:   types.Targets{Critical: 15, High: 30, Medium: 60, Low: 240},
				ResolutionTargets: types.Targets{Critical: 120, High: 240, Medium: 480, Low: 1440},
			}, nil
		},
		SetResponseBreachedFunc: func(ctx context.Context, incidentID string) (bool, error) {
			return true, nil
		},
		SetResolutionBreachedFunc: func(ctx context.Context, incidentID string) (bool, error) {
			return true, nil
		},
		SetResponseAtRiskNotifiedFunc: func(ctx context.Context, incidentID string) (bool, error) {
			return true, nil
		},
		SetResolutionAtRiskNotifiedFunc: func(ctx context.Context, incidentID string) (bool, error) {
			return true, nil
		},
	}

	d := &oncall.DirectoryMock{
		MemberFunc: func(ctx context.Context, memberID string) (types.Member, error) {
			return types.Member{ID: memberID, Name: "Alex", Email: "alex@example.com"}, nil
		},
	}

	n := &notifications.NotifierMock{
		SendFunc: func(ctx context.Context, recipientEmail, recipientName string, kind notifications.Kind, payload map[string]any) bool {
			return true
		},
	}

	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	return s, d, n, m
}

func newTestSweeper(s SweepStorage, d oncall.Directory, n notifications.Notifier, m messaging.MsgContext, now time.Time) *sweeper {
	sw := New(s, d, n, m, nil).(*sweeper)
	sw.now = func() time.Time { return now }
	return sw
}

func TestSweepFlagsResponseBreach(t *testing.T) {
	is := is.New(t)

	s, d, n, m := sweepSetup(openIncident())
	sw := newTestSweeper(s, d, n, m, createdAt.Add(90*time.Minute))

	summary, err := sw.RunOnce(context.Background())

	is.NoErr(err)
	is.Equal(summary.Checked, 1)
	is.Equal(summary.Breaches, 1)
	is.Equal(summary.NotificationsSent, 1)

	is.Equal(1, len(s.SetResponseBreachedCalls()))
	is.Equal(0, len(s.SetResolutionBreachedCalls()))
	is.Equal(1, len(m.PublishOnTopicCalls()))
	is.Equal(n.SendCalls()[0].Kind, notifications.KindSLABreach)
}

func TestSweepSkipsAlreadyFlaggedBreach(t *testing.T) {
	is := is.New(t)

	incident := openIncident()
	incident.SLAResponseBreached = true

	s, d, n, m := sweepSetup(incident)
	sw := newTestSweeper(s, d, n, m, createdAt.Add(90*time.Minute))

	summary, err := sw.RunOnce(context.Background())

	is.NoErr(err)
	is.Equal(summary.Breaches, 0)
	is.Equal(0, len(s.SetResponseBreachedCalls()))
	is.Equal(0, len(m.PublishOnTopicCalls()))
	is.Equal(0, len(n.SendCalls()))
}

func TestSweepLostFlipRaceStaysQuiet(t *testing.T) {
	is := is.New(t)

	s, d, n, m := sweepSetup(openIncident())
	s.SetResponseBreachedFunc = func(ctx context.Context, incidentID string) (bool, error) {
		return false, nil
	}

	sw := newTestSweeper(s, d, n, m, createdAt.Add(90*time.Minute))

	summary, err := sw.RunOnce(context.Background())

	is.NoErr(err)
	is.Equal(summary.Breaches, 0)
	is.Equal(0, len(m.PublishOnTopicCalls()))
	is.Equal(0, len(n.SendCalls()))
}

func TestSweepMarksAtRiskOnce(t *testing.T) {
	is := is.New(t)

	s, d, n, m := sweepSetup(openIncident())
	sw := newTestSweeper(s, d, n, m, createdAt.Add(50*time.Minute))

	summary, err := sw.RunOnce(context.Background())

	is.NoErr(err)
	is.Equal(summary.AtRisk, 1)
	is.Equal(summary.Breaches, 0)
	is.Equal(1, len(s.SetResponseAtRiskNotifiedCalls()))
	is.Equal(1, len(m.PublishOnTopicCalls()))
	is.Equal(n.SendCalls()[0].Kind, notifications.KindSLAAtRisk)
}

func TestSweepSuppressesRepeatedAtRiskWarnings(t *testing.T) {
	is := is.New(t)

	incident := openIncident()
	incident.ResponseAtRiskNotified = true

	s, d, n, m := sweepSetup(incident)
	sw := newTestSweeper(s, d, n, m, createdAt.Add(50*time.Minute))

	summary, err := sw.RunOnce(context.Background())

	is.NoErr(err)
	is.Equal(summary.AtRisk, 0)
	is.Equal(0, len(s.SetResponseAtRiskNotifiedCalls()))
	is.Equal(0, len(n.SendCalls()))
}

func TestSweepToleratesNotificationFailure(t *testing.T) {
	is := is.New(t)

	s, d, n, m := sweepSetup(openIncident())
	n.SendFunc = func(ctx context.Context, recipientEmail, recipientName string, kind notifications.Kind, payload map[string]any) bool {
		return false
	}

	sw := newTestSweeper(s, d, n, m, createdAt.Add(90*time.Minute))

	summary, err := sw.RunOnce(context.Background())

	is.NoErr(err)
	is.Equal(summary.Breaches, 1)
	is.Equal(summary.NotificationsSent, 0)
}

func TestSweepSkipsTeamsWithDisabledSettings(t *testing.T) {
	is := is.New(t)

	s, d, n, m := sweepSetup(openIncident())
	s.GetSLASettingsFunc = func(ctx context.Context, teamID string) (types.TeamSLASettings, error) {
		return types.TeamSLASettings{TeamID: teamID, Enabled: false}, nil
	}

	sw := newTestSweeper(s, d, n, m, createdAt.Add(90*time.Minute))

	summary, err := sw.RunOnce(context.Background())

	is.NoErr(err)
	is.Equal(summary.Checked, 0)
	is.Equal(0, len(s.SetResponseBreachedCalls()))
}

func TestStopTwiceIsHarmless(t *testing.T) {
	ctx := context.Background()

	s, d, n, m := sweepSetup()
	sw := newTestSweeper(s, d, n, m, createdAt)

	sw.Start(ctx)
	sw.Stop(ctx)
	sw.Stop(ctx)
}

func TestOverlappingSweepIsRejected(t *testing.T) {
	is := is.New(t)

	s, d, n, m := sweepSetup()

	var sw *sweeper
	s.QueryIncidentsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Incident], error) {
		_, err := sw.RunOnce(ctx)
		is.Equal(err, ErrSweepInProgress)
		return types.Collection[types.Incident]{}, nil
	}

	sw = newTestSweeper(s, d, n, m, createdAt)

	_, err := sw.RunOnce(context.Background())
	is.NoErr(err)
}
