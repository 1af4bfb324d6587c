package sla

import (
	"time"

	"github.com/diwise/oncall-mgmt/pkg/types"
)

const atRiskThreshold = 80.0

// Evaluate computes the live SLA status for an incident at a given instant.
// For an axis whose terminal event has occurred (first response, close) the
// persisted breach flag is authoritative and is never recomputed.
func Evaluate(inc types.Incident, s types.TeamSLASettings, now time.Time) (types.SLAStatus, error) {
	status := types.SLAStatus{}

	remaining, pct, breached, atRisk, err := evaluateAxis(
		inc.CreatedAt, float64(s.ResponseTargets.For(inc.Severity)),
		inc.FirstResponseAt, inc.SLAResponseDeadline, inc.SLAResponseBreached,
		s, now,
	)
	if err != nil {
		return status, err
	}

	status.ResponseTimeRemaining = remaining
	status.ResponseTimePercentage = pct
	status.IsResponseBreached = breached
	status.IsResponseAtRisk = atRisk

	remaining, pct, breached, atRisk, err = evaluateAxis(
		inc.CreatedAt, float64(s.ResolutionTargets.For(inc.Severity)),
		inc.ClosedAt, inc.SLAResolutionDeadline, inc.SLAResolutionBreached,
		s, now,
	)
	if err != nil {
		return status, err
	}

	status.ResolutionTimeRemaining = remaining
	status.ResolutionTimePercentage = pct
	status.IsResolutionBreached = breached
	status.IsResolutionAtRisk = atRisk

	return status, nil
}

func evaluateAxis(created time.Time, target float64, terminal, deadline *time.Time, persistedBreach bool, s types.TeamSLASettings, now time.Time) (remaining, pct float64, breached, atRisk bool, err error) {
	if terminal != nil {
		elapsed, err := ElapsedBusinessMinutes(created, *terminal, s)
		if err != nil {
			return 0, 0, false, false, err
		}
		return target - elapsed, 100, persistedBreach, false, nil
	}

	elapsed, err := ElapsedBusinessMinutes(created, now, s)
	if err != nil {
		return 0, 0, false, false, err
	}

	if target > 0 {
		pct = min(100, elapsed/target*100)
	}

	breached = persistedBreach
	if deadline != nil && now.After(*deadline) {
		breached = true
	}

	atRisk = pct > atRiskThreshold && !breached

	return target - elapsed, pct, breached, atRisk, nil
}
