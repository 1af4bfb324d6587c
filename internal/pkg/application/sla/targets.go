package sla

import (
	"github.com/diwise/oncall-mgmt/pkg/types"
)

type Axis string

const (
	AxisResponse   Axis = "response"
	AxisResolution Axis = "resolution"
)

// TargetFor returns the minute budget for one axis. Callers are expected to
// pass one of the four known severities; unknown values must be defaulted to
// medium before reaching this point.
func TargetFor(axis Axis, severity types.Severity, s types.TeamSLASettings) int {
	if axis == AxisResolution {
		return s.ResolutionTargets.For(severity)
	}
	return s.ResponseTargets.For(severity)
}
