package oncall

import (
	"context"
	"strings"
	"time"

	"github.com/diwise/oncall-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

//go:generate moq -rm -out directory_mock.go . Directory

// Directory is the read-only view of the team/user collaborator.
type Directory interface {
	Teams(ctx context.Context) ([]types.Team, error)
	TeamMembers(ctx context.Context, teamID string) ([]types.Member, error)
	TeamOwners(ctx context.Context, teamID string) ([]types.Member, error)
	Member(ctx context.Context, memberID string) (types.Member, error)
}

//go:generate moq -rm -out schedule_mock.go . Schedule

// Schedule is the read-only view of the on-call calendar collaborator.
type Schedule interface {
	EntriesForDate(ctx context.Context, date time.Time) ([]types.ScheduleEntry, error)
}

// Resolver maps an alert to a responsible team and individual through
// ordered fallback chains. It is a pure query, lookups that fail degrade
// to "not resolved" and never propagate an error to the caller.
type Resolver struct {
	directory Directory
	schedule  Schedule

	Now func() time.Time
}

func NewResolver(d Directory, s Schedule) *Resolver {
	return &Resolver{
		directory: d,
		schedule:  s,
		Now:       time.Now,
	}
}

// ResolveTeam tries, in order: a case-insensitive tag match against team
// names, any team scheduled on-call today, and finally the first team in
// the directory.
func (r *Resolver) ResolveTeam(ctx context.Context, tags []string) (types.Team, bool) {
	log := logging.GetFromContext(ctx)

	teams, err := r.directory.Teams(ctx)
	if err != nil {
		log.Debug("could not list teams", "err", err.Error())
		return types.Team{}, false
	}

	if len(teams) == 0 {
		return types.Team{}, false
	}

	for _, tag := range tags {
		for _, team := range teams {
			if strings.EqualFold(tag, team.Name) {
				return team, true
			}
		}
	}

	entries, err := r.schedule.EntriesForDate(ctx, r.Now().UTC())
	if err != nil {
		log.Debug("could not read on-call schedule", "err", err.Error())
		entries = nil
	}

	for _, entry := range entries {
		for _, team := range teams {
			if team.ID == entry.TeamID {
				return team, true
			}
		}
	}

	return teams[0], true
}

// ResolveMember tries, in order: the first responder scheduled on-call for
// the team today, the first team owner, and the first team member.
func (r *Resolver) ResolveMember(ctx context.Context, teamID string) (types.Member, bool) {
	log := logging.GetFromContext(ctx)

	entries, err := r.schedule.EntriesForDate(ctx, r.Now().UTC())
	if err != nil {
		log.Debug("could not read on-call schedule", "err", err.Error())
		entries = nil
	}

	for _, entry := range entries {
		if entry.TeamID != teamID || len(entry.MemberIDs) == 0 {
			continue
		}

		member, err := r.directory.Member(ctx, entry.MemberIDs[0])
		if err == nil {
			return member, true
		}

		log.Debug("scheduled member not found", "member_id", entry.MemberIDs[0])
	}

	owners, err := r.directory.TeamOwners(ctx, teamID)
	if err != nil {
		log.Debug("could not list team owners", "team_id", teamID, "err", err.Error())
	}

	if len(owners) > 0 {
		return owners[0], true
	}

	members, err := r.directory.TeamMembers(ctx, teamID)
	if err != nil {
		log.Debug("could not list team members", "team_id", teamID, "err", err.Error())
	}

	if len(members) > 0 {
		return members[0], true
	}

	return types.Member{}, false
}
