package storage

import (
	"context"
	"slices"

	"github.com/diwise/oncall-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5"
)

// TeamRecord is the seed shape for one team and its roster.
type TeamRecord struct {
	ID      string         `yaml:"id"`
	Name    string         `yaml:"name"`
	Members []types.Member `yaml:"members"`
	Owners  []string       `yaml:"owners"`
}

// SeedDirectory loads the routing read models from configuration. Existing
// rows are replaced, the directory service owns the source of truth.
func SeedDirectory(ctx context.Context, s *Storage, teams []TeamRecord) error {
	log := logging.GetFromContext(ctx)

	for _, team := range teams {
		_, err := s.pool.Exec(ctx, `
			INSERT INTO teams (team_id, name)
			VALUES (@team_id, @name)
			ON CONFLICT (team_id) DO UPDATE SET name = EXCLUDED.name
		`, pgx.NamedArgs{"team_id": team.ID, "name": team.Name})
		if err != nil {
			return err
		}

		for _, member := range team.Members {
			_, err := s.pool.Exec(ctx, `
				INSERT INTO members (member_id, name, email)
				VALUES (@member_id, @name, @email)
				ON CONFLICT (member_id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email
			`, pgx.NamedArgs{"member_id": member.ID, "name": member.Name, "email": member.Email})
			if err != nil {
				return err
			}

			_, err = s.pool.Exec(ctx, `
				INSERT INTO team_members (team_id, member_id, owner)
				VALUES (@team_id, @member_id, @owner)
				ON CONFLICT (team_id, member_id) DO UPDATE SET owner = EXCLUDED.owner
			`, pgx.NamedArgs{
				"team_id":   team.ID,
				"member_id": member.ID,
				"owner":     slices.Contains(team.Owners, member.ID),
			})
			if err != nil {
				return err
			}
		}

		log.Debug("seeded team", "team_id", team.ID, "members", len(team.Members))
	}

	return nil
}

func SeedSchedule(ctx context.Context, s *Storage, entries []types.ScheduleEntry) error {
	for _, entry := range entries {
		_, err := s.pool.Exec(ctx, `
			INSERT INTO oncall_schedule (date, team_id, member_ids)
			VALUES (@date, @team_id, @member_ids)
			ON CONFLICT (date, team_id) DO UPDATE SET member_ids = EXCLUDED.member_ids
		`, pgx.NamedArgs{
			"date":       entry.Date,
			"team_id":    entry.TeamID,
			"member_ids": entry.MemberIDs,
		})
		if err != nil {
			return err
		}
	}

	return nil
}
