package storage

import (
	"context"
	"errors"
	"time"

	"github.com/diwise/oncall-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

// UpsertSLASettings stores a team's SLA settings. Settings changes never
// touch existing incidents, their deadlines are snapshots taken at creation.
func (s *Storage) UpsertSLASettings(ctx context.Context, settings types.TeamSLASettings) error {
	if settings.TeamID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"team_id":              settings.TeamID,
		"enabled":              settings.Enabled,
		"response_targets":     settings.ResponseTargets,
		"resolution_targets":   settings.ResolutionTargets,
		"business_hours_only":  settings.BusinessHoursOnly,
		"business_hours_start": settings.BusinessHoursStart,
		"business_hours_end":   settings.BusinessHoursEnd,
		"business_days":        settings.BusinessDays,
		"timezone":             settings.Timezone,
		"modified_on":          time.Now().UTC(),
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO team_sla_settings (team_id, enabled, response_targets, resolution_targets,
			business_hours_only, business_hours_start, business_hours_end, business_days, timezone, modified_on)
		VALUES (@team_id, @enabled, @response_targets, @resolution_targets,
			@business_hours_only, @business_hours_start, @business_hours_end, @business_days, @timezone, @modified_on)
		ON CONFLICT (team_id) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			response_targets = EXCLUDED.response_targets,
			resolution_targets = EXCLUDED.resolution_targets,
			business_hours_only = EXCLUDED.business_hours_only,
			business_hours_start = EXCLUDED.business_hours_start,
			business_hours_end = EXCLUDED.business_hours_end,
			business_days = EXCLUDED.business_days,
			timezone = EXCLUDED.timezone,
			modified_on = EXCLUDED.modified_on
	`, args)

	return err
}

// GetSLASettings returns ErrNoRows when a team has no settings record,
// which disables SLA computation for that team.
func (s *Storage) GetSLASettings(ctx context.Context, teamID string) (types.TeamSLASettings, error) {
	settings := types.TeamSLASettings{}

	err := s.pool.QueryRow(ctx, `
		SELECT team_id, enabled, response_targets, resolution_targets,
			business_hours_only, business_hours_start, business_hours_end, business_days, timezone
		FROM team_sla_settings
		WHERE team_id = @team_id
	`, pgx.NamedArgs{"team_id": teamID}).Scan(
		&settings.TeamID, &settings.Enabled, &settings.ResponseTargets, &settings.ResolutionTargets,
		&settings.BusinessHoursOnly, &settings.BusinessHoursStart, &settings.BusinessHoursEnd,
		&settings.BusinessDays, &settings.Timezone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.TeamSLASettings{}, ErrNoRows
		}
		return types.TeamSLASettings{}, err
	}

	return settings, nil
}
