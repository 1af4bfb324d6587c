package incidents

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/oncall-mgmt/internal/pkg/application/alerts"
	"github.com/diwise/oncall-mgmt/internal/pkg/application/oncall"
	"github.com/diwise/oncall-mgmt/internal/pkg/application/sla"
	"github.com/diwise/oncall-mgmt/internal/pkg/infrastructure/notifications"
	"github.com/diwise/oncall-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/oncall-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

var (
	ErrIncidentNotFound = fmt.Errorf("incident not found")
	ErrNoSLA            = fmt.Errorf("no sla settings for incident")
)

//go:generate moq -rm -out incidentservice_mock.go . IncidentService
type IncidentService interface {
	Ingest(ctx context.Context, alert types.Alert) (types.Incident, error)
	GetByID(ctx context.Context, incidentID string) (types.Incident, error)
	Query(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Incident], error)
	SetStatus(ctx context.Context, incidentID string, status types.Status) error
	Assign(ctx context.Context, incidentID, teamID, memberID string) error
	Notes(ctx context.Context, incidentID string) ([]types.Note, error)
	SLAStatus(ctx context.Context, incident types.Incident) (types.SLAStatus, error)
	UpdateSLASettings(ctx context.Context, settings types.TeamSLASettings) error
	SLASettings(ctx context.Context, teamID string) (types.TeamSLASettings, error)
}

//go:generate moq -rm -out incidentstorage_mock.go . IncidentStorage
type IncidentStorage interface {
	AddIncident(ctx context.Context, incident types.Incident) error
	GetIncident(ctx context.Context, conditions ...storage.ConditionFunc) (types.Incident, error)
	QueryIncidents(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Incident], error)
	TouchIncident(ctx context.Context, incidentID string) error
	ReopenIncident(ctx context.Context, incidentID string) error
	UpdateIncidentStatus(ctx context.Context, incidentID string, status types.Status, now time.Time) error
	AssignIncident(ctx context.Context, incidentID, teamID, memberID string) error
	AddNote(ctx context.Context, note types.Note) error
	GetNotes(ctx context.Context, incidentID string) ([]types.Note, error)
	GetSLASettings(ctx context.Context, teamID string) (types.TeamSLASettings, error)
	UpsertSLASettings(ctx context.Context, settings types.TeamSLASettings) error
}

type incidentSvc struct {
	storage   IncidentStorage
	resolver  *oncall.Resolver
	notifier  notifications.Notifier
	messenger messaging.MsgContext

	now func() time.Time
}

func New(s IncidentStorage, resolver *oncall.Resolver, notifier notifications.Notifier, m messaging.MsgContext) IncidentService {
	svc := &incidentSvc{
		storage:   s,
		resolver:  resolver,
		notifier:  notifier,
		messenger: m,
		now:       time.Now,
	}

	svc.messenger.RegisterTopicMessageHandler("alert-received", NewAlertMessageHandler(svc))

	return svc
}

// Ingest runs the per-fingerprint state machine: create a new incident,
// reopen a closed one, or just touch an open one. Duplicate concurrent
// delivery is resolved by the storage layer's uniqueness guarantee on live
// fingerprints.
func (svc *incidentSvc) Ingest(ctx context.Context, alert types.Alert) (types.Incident, error) {
	log := logging.GetFromContext(ctx)

	if alert.Severity == "" {
		alert.Severity = types.SeverityMedium
	}

	fingerprint := alerts.Fingerprint(alert.Source, alert.Title, alert.Metadata)

	existing, err := svc.storage.GetIncident(ctx, storage.WithFingerprint(fingerprint))
	if err == nil {
		return svc.refresh(ctx, existing)
	}

	if !errors.Is(err, storage.ErrNoRows) {
		return types.Incident{}, err
	}

	now := svc.now().UTC()

	incident := types.Incident{
		ID:          uuid.NewString(),
		Fingerprint: fingerprint,
		Source:      alert.Source,
		SourceID:    alert.SourceID,
		Title:       alert.Title,
		Description: alert.Description,
		Severity:    alert.Severity,
		Status:      types.StatusNew,
		Tags:        alert.Tags,
		Metadata:    alert.Metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var assignee types.Member

	team, ok := svc.resolver.ResolveTeam(ctx, alert.Tags)
	if ok {
		incident.TeamID = team.ID

		if member, ok := svc.resolver.ResolveMember(ctx, team.ID); ok {
			incident.AssignedTo = member.ID
			assignee = member
		}

		svc.applyDeadlines(ctx, &incident, now)
	}

	err = svc.storage.AddIncident(ctx, incident)
	if errors.Is(err, storage.ErrAlreadyExists) {
		// lost the race against a concurrent duplicate, fall back to update
		existing, err := svc.storage.GetIncident(ctx, storage.WithFingerprint(fingerprint))
		if err != nil {
			return types.Incident{}, err
		}
		return svc.refresh(ctx, existing)
	}
	if err != nil {
		return types.Incident{}, err
	}

	err = svc.messenger.PublishOnTopic(ctx, &IncidentCreated{
		Incident:  incident,
		Timestamp: now,
	})
	if err != nil {
		log.Error("could not publish incident created", "incident_id", incident.ID, "err", err.Error())
	}

	if assignee.Email != "" {
		svc.notifier.Send(ctx, assignee.Email, assignee.Name, notifications.KindIncidentAssigned, map[string]any{
			"incidentID": incident.ID,
			"title":      incident.Title,
			"severity":   string(incident.Severity),
		})
	}

	return incident, nil
}

// applyDeadlines snapshots the team's current SLA settings onto a new
// incident. Later settings edits never recompute these.
func (svc *incidentSvc) applyDeadlines(ctx context.Context, incident *types.Incident, now time.Time) {
	log := logging.GetFromContext(ctx)

	settings, err := svc.storage.GetSLASettings(ctx, incident.TeamID)
	if err != nil {
		if !errors.Is(err, storage.ErrNoRows) {
			log.Error("could not fetch sla settings", "team_id", incident.TeamID, "err", err.Error())
		}
		return
	}

	if !settings.Enabled {
		return
	}

	response, err := sla.Deadline(now, sla.TargetFor(sla.AxisResponse, incident.Severity, settings), settings)
	if err != nil {
		log.Error("could not compute response deadline", "team_id", incident.TeamID, "err", err.Error())
		return
	}

	resolution, err := sla.Deadline(now, sla.TargetFor(sla.AxisResolution, incident.Severity, settings), settings)
	if err != nil {
		log.Error("could not compute resolution deadline", "team_id", incident.TeamID, "err", err.Error())
		return
	}

	incident.SLAResponseDeadline = &response
	incident.SLAResolutionDeadline = &resolution
}

func (svc *incidentSvc) refresh(ctx context.Context, existing types.Incident) (types.Incident, error) {
	log := logging.GetFromContext(ctx)

	now := svc.now().UTC()

	if existing.Status != types.StatusClosed {
		err := svc.storage.TouchIncident(ctx, existing.ID)
		if err != nil {
			return types.Incident{}, err
		}

		existing.UpdatedAt = now
		return existing, nil
	}

	// reopen: breach flags and deadlines deliberately survive the close
	err := svc.storage.ReopenIncident(ctx, existing.ID)
	if err != nil {
		return types.Incident{}, err
	}

	err = svc.storage.AddNote(ctx, types.Note{
		ID:         uuid.NewString(),
		IncidentID: existing.ID,
		Text:       "alert received again, incident reopened",
		System:     true,
		CreatedAt:  now,
	})
	if err != nil {
		log.Error("could not add reopen note", "incident_id", existing.ID, "err", err.Error())
	}

	err = svc.messenger.PublishOnTopic(ctx, &IncidentReopened{
		ID:        existing.ID,
		Timestamp: now,
	})
	if err != nil {
		log.Error("could not publish incident reopened", "incident_id", existing.ID, "err", err.Error())
	}

	existing.Status = types.StatusNew
	existing.ClosedAt = nil
	existing.UpdatedAt = now

	return existing, nil
}

func (svc *incidentSvc) GetByID(ctx context.Context, incidentID string) (types.Incident, error) {
	incident, err := svc.storage.GetIncident(ctx, storage.WithIncidentID(incidentID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Incident{}, ErrIncidentNotFound
		}
		return types.Incident{}, err
	}

	return incident, nil
}

func (svc *incidentSvc) Query(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Incident], error) {
	incidents, err := svc.storage.QueryIncidents(ctx, conditions...)
	if err != nil {
		return types.Collection[types.Incident]{}, err
	}

	return incidents, nil
}

func (svc *incidentSvc) SetStatus(ctx context.Context, incidentID string, status types.Status) error {
	switch status {
	case types.StatusNew, types.StatusInProgress, types.StatusClosed:
	default:
		return fmt.Errorf("invalid status %s", status)
	}

	_, err := svc.GetByID(ctx, incidentID)
	if err != nil {
		return err
	}

	return svc.storage.UpdateIncidentStatus(ctx, incidentID, status, svc.now().UTC())
}

func (svc *incidentSvc) Assign(ctx context.Context, incidentID, teamID, memberID string) error {
	_, err := svc.GetByID(ctx, incidentID)
	if err != nil {
		return err
	}

	return svc.storage.AssignIncident(ctx, incidentID, teamID, memberID)
}

func (svc *incidentSvc) Notes(ctx context.Context, incidentID string) ([]types.Note, error) {
	return svc.storage.GetNotes(ctx, incidentID)
}

// SLAStatus evaluates the live SLA state of an incident against its team's
// settings. ErrNoSLA is returned for unrouted incidents and for teams
// without enabled settings.
func (svc *incidentSvc) SLAStatus(ctx context.Context, incident types.Incident) (types.SLAStatus, error) {
	if incident.TeamID == "" {
		return types.SLAStatus{}, ErrNoSLA
	}

	settings, err := svc.storage.GetSLASettings(ctx, incident.TeamID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.SLAStatus{}, ErrNoSLA
		}
		return types.SLAStatus{}, err
	}

	if !settings.Enabled {
		return types.SLAStatus{}, ErrNoSLA
	}

	return sla.Evaluate(incident, settings, svc.now().UTC())
}

func (svc *incidentSvc) UpdateSLASettings(ctx context.Context, settings types.TeamSLASettings) error {
	return svc.storage.UpsertSLASettings(ctx, settings)
}

func (svc *incidentSvc) SLASettings(ctx context.Context, teamID string) (types.TeamSLASettings, error) {
	return svc.storage.GetSLASettings(ctx, teamID)
}
