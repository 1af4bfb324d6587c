package sla

import (
	"testing"
	"time"

	"github.com/diwise/oncall-mgmt/pkg/types"
	"github.com/matryer/is"
)

func slaSettings() types.TeamSLASettings {
	return types.TeamSLASettings{
		Enabled:           true,
		ResponseTargets:   types.Targets{Critical: 15, High: 30, Medium: 100, Low: 240},
		ResolutionTargets: types.Targets{Critical: 120, High: 240, Medium: 480, Low: 1440},
	}
}

func openIncident(created time.Time) types.Incident {
	response := created.Add(100 * time.Minute)
	resolution := created.Add(480 * time.Minute)

	return types.Incident{
		ID:                    "incident-01",
		Severity:              types.SeverityMedium,
		Status:                types.StatusNew,
		CreatedAt:             created,
		SLAResponseDeadline:   &response,
		SLAResolutionDeadline: &resolution,
	}
}

func TestEvaluateAtEightyPercentIsNotAtRisk(t *testing.T) {
	is := is.New(t)

	created := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

	status, err := Evaluate(openIncident(created), slaSettings(), created.Add(80*time.Minute))

	is.NoErr(err)
	is.Equal(status.ResponseTimePercentage, 80.0)
	is.True(!status.IsResponseAtRisk)
	is.True(!status.IsResponseBreached)
}

func TestEvaluatePastEightyPercentIsAtRisk(t *testing.T) {
	is := is.New(t)

	created := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

	status, err := Evaluate(openIncident(created), slaSettings(), created.Add(81*time.Minute))

	is.NoErr(err)
	is.Equal(status.ResponseTimePercentage, 81.0)
	is.True(status.IsResponseAtRisk)
	is.True(!status.IsResponseBreached)
}

func TestEvaluateBreachSuppressesAtRisk(t *testing.T) {
	is := is.New(t)

	created := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

	status, err := Evaluate(openIncident(created), slaSettings(), created.Add(101*time.Minute))

	is.NoErr(err)
	is.Equal(status.ResponseTimePercentage, 100.0)
	is.True(status.IsResponseBreached)
	is.True(!status.IsResponseAtRisk)
	is.Equal(status.ResponseTimeRemaining, -1.0)
}

func TestEvaluateTerminalAxisUsesPersistedFlag(t *testing.T) {
	is := is.New(t)

	created := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	responded := created.Add(150 * time.Minute)

	incident := openIncident(created)
	incident.FirstResponseAt = &responded
	incident.SLAResponseBreached = true

	// well past every deadline, but the terminal axis is frozen
	status, err := Evaluate(incident, slaSettings(), created.Add(24*time.Hour))

	is.NoErr(err)
	is.Equal(status.ResponseTimePercentage, 100.0)
	is.True(status.IsResponseBreached)
	is.True(!status.IsResponseAtRisk)
	is.Equal(status.ResponseTimeRemaining, -50.0)
}

func TestEvaluateTimelyResponseStaysUnbreached(t *testing.T) {
	is := is.New(t)

	created := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	responded := created.Add(50 * time.Minute)

	incident := openIncident(created)
	incident.FirstResponseAt = &responded

	status, err := Evaluate(incident, slaSettings(), created.Add(24*time.Hour))

	is.NoErr(err)
	is.True(!status.IsResponseBreached)
	is.Equal(status.ResponseTimeRemaining, 50.0)

	// the resolution axis keeps running
	is.True(status.IsResolutionBreached)
}

func TestEvaluateRespectsSeverityTargets(t *testing.T) {
	is := is.New(t)

	created := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

	incident := openIncident(created)
	incident.Severity = types.SeverityCritical
	deadline := created.Add(15 * time.Minute)
	incident.SLAResponseDeadline = &deadline

	status, err := Evaluate(incident, slaSettings(), created.Add(12*time.Minute))

	is.NoErr(err)
	is.Equal(status.ResponseTimePercentage, 80.0)
	is.Equal(status.ResponseTimeRemaining, 3.0)
}
