package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/oncall-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

const incidentColumns = `i.incident_id, i.fingerprint, i.source, i.source_id, i.title, i.description,
	i.severity, i.status, i.team_id, i.assigned_to, i.tags, i.metadata,
	i.created_on, i.modified_on, i.acknowledged_on, i.closed_on, i.first_response_on,
	i.sla_response_deadline, i.sla_resolution_deadline,
	i.sla_response_breached, i.sla_resolution_breached,
	i.response_at_risk_notified, i.resolution_at_risk_notified`

// AddIncident stores a new incident. The unique index on live fingerprints
// makes concurrent duplicate delivery surface as ErrAlreadyExists, which the
// ingestion pipeline handles by falling back to its update branch.
func (s *Storage) AddIncident(ctx context.Context, incident types.Incident) error {
	if incident.ID == "" {
		return ErrNoID
	}

	if incident.Fingerprint == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"incident_id":             incident.ID,
		"fingerprint":             incident.Fingerprint,
		"source":                  incident.Source,
		"source_id":               incident.SourceID,
		"title":                   incident.Title,
		"description":             incident.Description,
		"severity":                string(incident.Severity),
		"status":                  string(incident.Status),
		"team_id":                 incident.TeamID,
		"assigned_to":             incident.AssignedTo,
		"tags":                    incident.Tags,
		"metadata":                incident.Metadata,
		"created_on":              incident.CreatedAt,
		"modified_on":             incident.UpdatedAt,
		"sla_response_deadline":   incident.SLAResponseDeadline,
		"sla_resolution_deadline": incident.SLAResolutionDeadline,
	}

	ct, err := s.pool.Exec(ctx, `
		INSERT INTO incidents (incident_id, fingerprint, source, source_id, title, description,
			severity, status, team_id, assigned_to, tags, metadata, created_on, modified_on,
			sla_response_deadline, sla_resolution_deadline)
		VALUES (@incident_id, @fingerprint, @source, @source_id, @title, @description,
			@severity, @status, @team_id, @assigned_to, @tags, @metadata, @created_on, @modified_on,
			@sla_response_deadline, @sla_resolution_deadline)
		ON CONFLICT (fingerprint) WHERE NOT superseded DO NOTHING
	`, args)
	if err != nil {
		return err
	}

	if ct.RowsAffected() == 0 {
		return ErrAlreadyExists
	}

	return nil
}

func (s *Storage) GetIncident(ctx context.Context, conditions ...ConditionFunc) (types.Incident, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM incidents i
		WHERE %s
	`, incidentColumns, condition.Where())

	row := s.pool.QueryRow(ctx, query, condition.NamedArgs())

	incident, err := scanIncident(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Incident{}, ErrNoRows
		}
		return types.Incident{}, err
	}

	return incident, nil
}

func (s *Storage) QueryIncidents(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Incident], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	var offsetLimit string

	if condition.offset != nil {
		offsetLimit += fmt.Sprintf("OFFSET %d ", condition.Offset())
	}

	if condition.limit != nil {
		offsetLimit += fmt.Sprintf("LIMIT %d ", condition.Limit())
	}

	query := fmt.Sprintf(`
		SELECT %s, count(*) OVER () AS count
		FROM incidents i
		WHERE %s
		ORDER BY %s %s
		%s
	`, incidentColumns, condition.Where(), condition.SortBy(), condition.SortOrder(), offsetLimit)

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.Incident]{}, err
	}
	defer rows.Close()

	incidents := make([]types.Incident, 0)

	var count int64

	for rows.Next() {
		incident, err := scanIncidentRow(rows, &count)
		if err != nil {
			return types.Collection[types.Incident]{}, err
		}
		incidents = append(incidents, incident)
	}

	if rows.Err() != nil {
		return types.Collection[types.Incident]{}, rows.Err()
	}

	return types.Collection[types.Incident]{
		Data:       incidents,
		Count:      uint64(len(incidents)),
		Limit:      uint64(condition.Limit()),
		Offset:     uint64(condition.Offset()),
		TotalCount: uint64(count),
	}, nil
}

func scanIncident(row pgx.Row) (types.Incident, error) {
	i := types.Incident{}

	var severity, status string

	err := row.Scan(&i.ID, &i.Fingerprint, &i.Source, &i.SourceID, &i.Title, &i.Description,
		&severity, &status, &i.TeamID, &i.AssignedTo, &i.Tags, &i.Metadata,
		&i.CreatedAt, &i.UpdatedAt, &i.AcknowledgedAt, &i.ClosedAt, &i.FirstResponseAt,
		&i.SLAResponseDeadline, &i.SLAResolutionDeadline,
		&i.SLAResponseBreached, &i.SLAResolutionBreached,
		&i.ResponseAtRiskNotified, &i.ResolutionAtRiskNotified)
	if err != nil {
		return types.Incident{}, err
	}

	i.Severity = types.Severity(severity)
	i.Status = types.Status(status)

	return i, nil
}

func scanIncidentRow(row pgx.Row, count *int64) (types.Incident, error) {
	i := types.Incident{}

	var severity, status string

	err := row.Scan(&i.ID, &i.Fingerprint, &i.Source, &i.SourceID, &i.Title, &i.Description,
		&severity, &status, &i.TeamID, &i.AssignedTo, &i.Tags, &i.Metadata,
		&i.CreatedAt, &i.UpdatedAt, &i.AcknowledgedAt, &i.ClosedAt, &i.FirstResponseAt,
		&i.SLAResponseDeadline, &i.SLAResolutionDeadline,
		&i.SLAResponseBreached, &i.SLAResolutionBreached,
		&i.ResponseAtRiskNotified, &i.ResolutionAtRiskNotified, count)
	if err != nil {
		return types.Incident{}, err
	}

	i.Severity = types.Severity(severity)
	i.Status = types.Status(status)

	return i, nil
}

// TouchIncident advances modified_on without changing any state.
func (s *Storage) TouchIncident(ctx context.Context, incidentID string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE incidents
		SET modified_on = CURRENT_TIMESTAMP
		WHERE incident_id = @incident_id AND superseded = FALSE
	`, pgx.NamedArgs{"incident_id": incidentID})

	return err
}

// ReopenIncident transitions a closed incident back to new and clears its
// close timestamp. Breach flags, at-risk markers, and deadlines are left
// untouched, they belong to the incident's full lifetime.
func (s *Storage) ReopenIncident(ctx context.Context, incidentID string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE incidents
		SET status = 'new', closed_on = NULL, modified_on = CURRENT_TIMESTAMP
		WHERE incident_id = @incident_id AND status = 'closed' AND superseded = FALSE
	`, pgx.NamedArgs{"incident_id": incidentID})

	return err
}

func (s *Storage) UpdateIncidentStatus(ctx context.Context, incidentID string, status types.Status, now time.Time) error {
	_, err := s.pool.Exec(ctx, statusUpdateQuery(status), pgx.NamedArgs{
		"incident_id": incidentID,
		"status":      string(status),
		"now":         now,
	})

	return err
}

func statusUpdateQuery(status types.Status) string {
	switch status {
	case types.StatusInProgress:
		return `
			UPDATE incidents
			SET status = @status, modified_on = @now,
				acknowledged_on = COALESCE(acknowledged_on, @now),
				first_response_on = COALESCE(first_response_on, @now)
			WHERE incident_id = @incident_id AND superseded = FALSE
		`
	case types.StatusClosed:
		return `
			UPDATE incidents
			SET status = @status, modified_on = @now,
				closed_on = COALESCE(closed_on, @now)
			WHERE incident_id = @incident_id AND superseded = FALSE
		`
	}

	// moving back to new reopens the incident, so the close timestamp
	// must go or the evaluator keeps treating the resolution axis as
	// settled
	return `
		UPDATE incidents
		SET status = @status, modified_on = @now, closed_on = NULL
		WHERE incident_id = @incident_id AND superseded = FALSE
	`
}

func (s *Storage) AssignIncident(ctx context.Context, incidentID, teamID, memberID string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE incidents
		SET team_id = @team_id, assigned_to = @assigned_to, modified_on = CURRENT_TIMESTAMP
		WHERE incident_id = @incident_id AND superseded = FALSE
	`, pgx.NamedArgs{
		"incident_id": incidentID,
		"team_id":     teamID,
		"assigned_to": memberID,
	})

	return err
}

// SetResponseBreached flips the response breach flag. The update is
// conditional on the current flag value, so concurrent sweeps flip it at
// most once and the flag never goes back to false.
func (s *Storage) SetResponseBreached(ctx context.Context, incidentID string) (bool, error) {
	ct, err := s.pool.Exec(ctx, `
		UPDATE incidents
		SET sla_response_breached = TRUE, modified_on = CURRENT_TIMESTAMP
		WHERE incident_id = @incident_id AND sla_response_breached = FALSE AND superseded = FALSE
	`, pgx.NamedArgs{"incident_id": incidentID})
	if err != nil {
		return false, err
	}

	return ct.RowsAffected() > 0, nil
}

func (s *Storage) SetResolutionBreached(ctx context.Context, incidentID string) (bool, error) {
	ct, err := s.pool.Exec(ctx, `
		UPDATE incidents
		SET sla_resolution_breached = TRUE, modified_on = CURRENT_TIMESTAMP
		WHERE incident_id = @incident_id AND sla_resolution_breached = FALSE AND superseded = FALSE
	`, pgx.NamedArgs{"incident_id": incidentID})
	if err != nil {
		return false, err
	}

	return ct.RowsAffected() > 0, nil
}

func (s *Storage) SetResponseAtRiskNotified(ctx context.Context, incidentID string) (bool, error) {
	ct, err := s.pool.Exec(ctx, `
		UPDATE incidents
		SET response_at_risk_notified = TRUE
		WHERE incident_id = @incident_id AND response_at_risk_notified = FALSE AND superseded = FALSE
	`, pgx.NamedArgs{"incident_id": incidentID})
	if err != nil {
		return false, err
	}

	return ct.RowsAffected() > 0, nil
}

func (s *Storage) SetResolutionAtRiskNotified(ctx context.Context, incidentID string) (bool, error) {
	ct, err := s.pool.Exec(ctx, `
		UPDATE incidents
		SET resolution_at_risk_notified = TRUE
		WHERE incident_id = @incident_id AND resolution_at_risk_notified = FALSE AND superseded = FALSE
	`, pgx.NamedArgs{"incident_id": incidentID})
	if err != nil {
		return false, err
	}

	return ct.RowsAffected() > 0, nil
}

func (s *Storage) AddNote(ctx context.Context, note types.Note) error {
	if note.ID == "" || note.IncidentID == "" {
		return ErrNoID
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO incident_notes (note_id, incident_id, body, system, created_on)
		VALUES (@note_id, @incident_id, @body, @system, @created_on)
	`, pgx.NamedArgs{
		"note_id":     note.ID,
		"incident_id": note.IncidentID,
		"body":        note.Text,
		"system":      note.System,
		"created_on":  note.CreatedAt,
	})

	return err
}

func (s *Storage) GetNotes(ctx context.Context, incidentID string) ([]types.Note, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT note_id, incident_id, body, system, created_on
		FROM incident_notes
		WHERE incident_id = @incident_id
		ORDER BY created_on ASC
	`, pgx.NamedArgs{"incident_id": incidentID})
	if err != nil {
		return nil, err
	}

	notes := make([]types.Note, 0)

	var note types.Note

	_, err = pgx.ForEachRow(rows, []any{&note.ID, &note.IncidentID, &note.Text, &note.System, &note.CreatedAt}, func() error {
		notes = append(notes, note)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return notes, nil
}
