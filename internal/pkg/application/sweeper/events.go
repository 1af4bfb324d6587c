package sweeper

import (
	"encoding/json"
	"time"
)

type SLADeadlineBreached struct {
	IncidentID string    `json:"incidentID"`
	Axis       string    `json:"axis"`
	Timestamp  time.Time `json:"timestamp"`
}

func (e *SLADeadlineBreached) ContentType() string {
	return "application/json"
}
func (e *SLADeadlineBreached) TopicName() string {
	return "incidents.slaBreached"
}
func (e *SLADeadlineBreached) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}

type SLADeadlineAtRisk struct {
	IncidentID string    `json:"incidentID"`
	Axis       string    `json:"axis"`
	Timestamp  time.Time `json:"timestamp"`
}

func (e *SLADeadlineAtRisk) ContentType() string {
	return "application/json"
}
func (e *SLADeadlineAtRisk) TopicName() string {
	return "incidents.slaAtRisk"
}
func (e *SLADeadlineAtRisk) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}
