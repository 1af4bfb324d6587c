package sweeper

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/diwise/oncall-mgmt/internal/pkg/application/oncall"
	"github.com/diwise/oncall-mgmt/internal/pkg/application/sla"
	"github.com/diwise/oncall-mgmt/internal/pkg/infrastructure/notifications"
	"github.com/diwise/oncall-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/oncall-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// ErrSweepInProgress is returned when a sweep is requested while a previous
// pass has not finished. Overlapping passes are skipped, not queued.
var ErrSweepInProgress = errors.New("sweep already in progress")

const defaultInterval = 60 * time.Second

type Config struct {
	Interval time.Duration `yaml:"interval"`
}

//go:generate moq -rm -out sweepstorage_mock.go . SweepStorage
type SweepStorage interface {
	QueryIncidents(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Incident], error)
	GetSLASettings(ctx context.Context, teamID string) (types.TeamSLASettings, error)
	SetResponseBreached(ctx context.Context, incidentID string) (bool, error)
	SetResolutionBreached(ctx context.Context, incidentID string) (bool, error)
	SetResponseAtRiskNotified(ctx context.Context, incidentID string) (bool, error)
	SetResolutionAtRiskNotified(ctx context.Context, incidentID string) (bool, error)
}

type Sweeper interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
	RunOnce(ctx context.Context) (types.SweepSummary, error)
}

type sweeper struct {
	storage   SweepStorage
	directory oncall.Directory
	notifier  notifications.Notifier
	messenger messaging.MsgContext

	interval time.Duration
	running  sync.Mutex
	done     chan struct{}
	stopOnce sync.Once

	now func() time.Time
}

func New(s SweepStorage, d oncall.Directory, n notifications.Notifier, m messaging.MsgContext, cfg *Config) Sweeper {
	interval := defaultInterval
	if cfg != nil && cfg.Interval > 0 {
		interval = cfg.Interval
	}

	return &sweeper{
		storage:   s,
		directory: d,
		notifier:  n,
		messenger: m,
		interval:  interval,
		done:      make(chan struct{}),
		now:       time.Now,
	}
}

func (s *sweeper) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *sweeper) Stop(ctx context.Context) {
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *sweeper) run(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			summary, err := s.RunOnce(ctx)
			if err != nil {
				if errors.Is(err, ErrSweepInProgress) {
					log.Debug("skipping sweep, previous pass still running")
					continue
				}
				log.Error("breach sweep failed", "err", err.Error())
				continue
			}

			log.Debug("breach sweep done",
				"checked", summary.Checked,
				"breaches", summary.Breaches,
				"at_risk", summary.AtRisk,
				"notifications", summary.NotificationsSent)
		}
	}
}

// RunOnce evaluates every open incident whose team has enabled SLA settings
// and flips breach and at-risk flags exactly once per open lifetime. Flags
// are persisted before any notification is attempted, and notification
// failures never fail the sweep.
func (s *sweeper) RunOnce(ctx context.Context) (types.SweepSummary, error) {
	if !s.running.TryLock() {
		return types.SweepSummary{}, ErrSweepInProgress
	}
	defer s.running.Unlock()

	log := logging.GetFromContext(ctx)

	summary := types.SweepSummary{}
	now := s.now().UTC()

	incidents, err := s.storage.QueryIncidents(ctx, storage.WithOpenOnly(), storage.WithSLAManaged())
	if err != nil {
		return summary, err
	}

	settingsByTeam := map[string]types.TeamSLASettings{}

	for _, incident := range incidents.Data {
		settings, ok := settingsByTeam[incident.TeamID]
		if !ok {
			settings, err = s.storage.GetSLASettings(ctx, incident.TeamID)
			if err != nil {
				log.Error("could not fetch sla settings", "team_id", incident.TeamID, "err", err.Error())
				continue
			}
			settingsByTeam[incident.TeamID] = settings
		}

		if !settings.Enabled {
			continue
		}

		status, err := sla.Evaluate(incident, settings, now)
		if err != nil {
			log.Error("could not evaluate sla status", "incident_id", incident.ID, "err", err.Error())
			continue
		}

		summary.Checked++

		s.sweepAxis(ctx, incident, axisState{
			axis:           sla.AxisResponse,
			breached:       status.IsResponseBreached,
			alreadyFlagged: incident.SLAResponseBreached,
			atRisk:         status.IsResponseAtRisk,
			atRiskNotified: incident.ResponseAtRiskNotified,
			setBreached:    s.storage.SetResponseBreached,
			setAtRisk:      s.storage.SetResponseAtRiskNotified,
		}, &summary)

		s.sweepAxis(ctx, incident, axisState{
			axis:           sla.AxisResolution,
			breached:       status.IsResolutionBreached,
			alreadyFlagged: incident.SLAResolutionBreached,
			atRisk:         status.IsResolutionAtRisk,
			atRiskNotified: incident.ResolutionAtRiskNotified,
			setBreached:    s.storage.SetResolutionBreached,
			setAtRisk:      s.storage.SetResolutionAtRiskNotified,
		}, &summary)
	}

	return summary, nil
}

type axisState struct {
	axis           sla.Axis
	breached       bool
	alreadyFlagged bool
	atRisk         bool
	atRiskNotified bool
	setBreached    func(context.Context, string) (bool, error)
	setAtRisk      func(context.Context, string) (bool, error)
}

func (s *sweeper) sweepAxis(ctx context.Context, incident types.Incident, state axisState, summary *types.SweepSummary) {
	log := logging.GetFromContext(ctx)

	if state.breached && !state.alreadyFlagged {
		flipped, err := state.setBreached(ctx, incident.ID)
		if err != nil {
			log.Error("could not set breach flag", "incident_id", incident.ID, "axis", string(state.axis), "err", err.Error())
			return
		}

		if flipped {
			summary.Breaches++

			err = s.messenger.PublishOnTopic(ctx, &SLADeadlineBreached{
				IncidentID: incident.ID,
				Axis:       string(state.axis),
				Timestamp:  s.now().UTC(),
			})
			if err != nil {
				log.Error("could not publish breach event", "incident_id", incident.ID, "err", err.Error())
			}

			if s.notify(ctx, incident, notifications.KindSLABreach, state.axis) {
				summary.NotificationsSent++
			}
		}

		return
	}

	if state.atRisk && !state.breached && !state.atRiskNotified {
		flipped, err := state.setAtRisk(ctx, incident.ID)
		if err != nil {
			log.Error("could not set at-risk marker", "incident_id", incident.ID, "axis", string(state.axis), "err", err.Error())
			return
		}

		if flipped {
			summary.AtRisk++

			err = s.messenger.PublishOnTopic(ctx, &SLADeadlineAtRisk{
				IncidentID: incident.ID,
				Axis:       string(state.axis),
				Timestamp:  s.now().UTC(),
			})
			if err != nil {
				log.Error("could not publish at-risk event", "incident_id", incident.ID, "err", err.Error())
			}

			if s.notify(ctx, incident, notifications.KindSLAAtRisk, state.axis) {
				summary.NotificationsSent++
			}
		}
	}
}

func (s *sweeper) notify(ctx context.Context, incident types.Incident, kind notifications.Kind, axis sla.Axis) bool {
	log := logging.GetFromContext(ctx)

	if incident.AssignedTo == "" {
		log.Debug("no assignee to notify", "incident_id", incident.ID)
		return false
	}

	member, err := s.directory.Member(ctx, incident.AssignedTo)
	if err != nil {
		log.Debug("could not look up assignee", "incident_id", incident.ID, "member_id", incident.AssignedTo)
		return false
	}

	return s.notifier.Send(ctx, member.Email, member.Name, kind, map[string]any{
		"incidentID": incident.ID,
		"title":      incident.Title,
		"severity":   string(incident.Severity),
		"axis":       string(axis),
	})
}
