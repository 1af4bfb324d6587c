package incidents

import (
	"encoding/json"
	"time"

	"github.com/diwise/oncall-mgmt/pkg/types"
)

type IncidentCreated struct {
	Incident  types.Incident `json:"incident"`
	Timestamp time.Time      `json:"timestamp"`
}

func (e *IncidentCreated) ContentType() string {
	return "application/json"
}
func (e *IncidentCreated) TopicName() string {
	return "incidents.incidentCreated"
}
func (e *IncidentCreated) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}

type IncidentReopened struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *IncidentReopened) ContentType() string {
	return "application/json"
}
func (e *IncidentReopened) TopicName() string {
	return "incidents.incidentReopened"
}
func (e *IncidentReopened) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}
