package storage

import (
	"context"
	"errors"
	"time"

	"github.com/diwise/oncall-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

// The tables below are read models for on-call routing. The directory CRUD
// itself lives in a collaborating service, this storage only consumes it.

func (s *Storage) Teams(ctx context.Context) ([]types.Team, error) {
	rows, err := s.pool.Query(ctx, `SELECT team_id, name FROM teams ORDER BY team_id ASC`)
	if err != nil {
		return nil, err
	}

	teams := make([]types.Team, 0)

	var team types.Team

	_, err = pgx.ForEachRow(rows, []any{&team.ID, &team.Name}, func() error {
		teams = append(teams, team)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return teams, nil
}

func (s *Storage) TeamMembers(ctx context.Context, teamID string) ([]types.Member, error) {
	return s.teamMembers(ctx, teamID, false)
}

func (s *Storage) TeamOwners(ctx context.Context, teamID string) ([]types.Member, error) {
	return s.teamMembers(ctx, teamID, true)
}

func (s *Storage) teamMembers(ctx context.Context, teamID string, ownersOnly bool) ([]types.Member, error) {
	query := `
		SELECT m.member_id, m.name, m.email
		FROM team_members tm
		JOIN members m ON m.member_id = tm.member_id
		WHERE tm.team_id = @team_id
	`
	if ownersOnly {
		query += " AND tm.owner = TRUE"
	}
	query += " ORDER BY m.member_id ASC"

	rows, err := s.pool.Query(ctx, query, pgx.NamedArgs{"team_id": teamID})
	if err != nil {
		return nil, err
	}

	members := make([]types.Member, 0)

	var member types.Member

	_, err = pgx.ForEachRow(rows, []any{&member.ID, &member.Name, &member.Email}, func() error {
		members = append(members, member)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return members, nil
}

func (s *Storage) Member(ctx context.Context, memberID string) (types.Member, error) {
	member := types.Member{}

	err := s.pool.QueryRow(ctx, `
		SELECT member_id, name, email FROM members WHERE member_id = @member_id
	`, pgx.NamedArgs{"member_id": memberID}).Scan(&member.ID, &member.Name, &member.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Member{}, ErrNoRows
		}
		return types.Member{}, err
	}

	return member, nil
}

func (s *Storage) EntriesForDate(ctx context.Context, date time.Time) ([]types.ScheduleEntry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT date, team_id, member_ids
		FROM oncall_schedule
		WHERE date = @date
		ORDER BY team_id ASC
	`, pgx.NamedArgs{"date": date.Format(time.DateOnly)})
	if err != nil {
		return nil, err
	}

	entries := make([]types.ScheduleEntry, 0)

	var entry types.ScheduleEntry

	_, err = pgx.ForEachRow(rows, []any{&entry.Date, &entry.TeamID, &entry.MemberIDs}, func() error {
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}
