package alerts

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/diwise/oncall-mgmt/pkg/types"
)

const (
	SourceAlertmanager = "alertmanager"
	SourceGrafana      = "grafana"
	SourceDynatrace    = "dynatrace"
	SourceGeneric      = "generic"
)

// teamFields are label keys whose values are mined as candidate tags for
// on-call routing.
var teamFields = []string{"team", "service", "product", "component", "app"}

type parseFunc func([]byte) (types.Alert, bool)

// parsers are attempted in priority order, first successful typed parse wins.
var parsers = []parseFunc{
	parseAlertmanager,
	parseGrafana,
	parseDynatrace,
}

// Normalize maps a vendor payload onto the canonical alert shape. Malformed
// or partial payloads are never rejected, they degrade to a best-effort
// generic alert with medium severity.
func Normalize(body []byte) types.Alert {
	for _, parse := range parsers {
		if alert, ok := parse(body); ok {
			return alert
		}
	}

	return parseGeneric(body)
}

type alertmanagerAlert struct {
	Status      string            `json:"status"`
	Labels      map[string]string `json:"labels"`
	Annotations map[string]string `json:"annotations"`
	Fingerprint string            `json:"fingerprint"`
}

type alertmanagerPayload struct {
	Version      string              `json:"version"`
	GroupKey     string              `json:"groupKey"`
	Status       string              `json:"status"`
	Receiver     string              `json:"receiver"`
	CommonLabels map[string]string   `json:"commonLabels"`
	Alerts       []alertmanagerAlert `json:"alerts"`
}

func parseAlertmanager(body []byte) (types.Alert, bool) {
	payload := alertmanagerPayload{}

	err := json.Unmarshal(body, &payload)
	if err != nil || len(payload.Alerts) == 0 {
		return types.Alert{}, false
	}

	first := payload.Alerts[0]

	title := first.Annotations["summary"]
	if title == "" {
		title = first.Labels["alertname"]
	}
	if title == "" {
		return types.Alert{}, false
	}

	sourceID := first.Fingerprint
	if sourceID == "" {
		sourceID = payload.GroupKey
	}

	metadata := map[string]any{}
	for k, v := range first.Labels {
		metadata[k] = v
	}

	return types.Alert{
		Source:      SourceAlertmanager,
		SourceID:    sourceID,
		Title:       title,
		Description: first.Annotations["description"],
		Severity:    mapLabelSeverity(first.Labels["severity"]),
		Tags:        mineTags(first.Labels),
		Metadata:    metadata,
	}, true
}

type grafanaPayload struct {
	Title    string            `json:"title"`
	State    string            `json:"state"`
	Message  string            `json:"message"`
	RuleID   int64             `json:"ruleId"`
	RuleName string            `json:"ruleName"`
	Tags     map[string]string `json:"tags"`
}

func parseGrafana(body []byte) (types.Alert, bool) {
	payload := grafanaPayload{}

	err := json.Unmarshal(body, &payload)
	if err != nil || payload.Title == "" || payload.State == "" {
		return types.Alert{}, false
	}

	severity := types.SeverityMedium
	if s, ok := payload.Tags["severity"]; ok {
		severity = mapLabelSeverity(s)
	} else if payload.State == "alerting" {
		severity = types.SeverityHigh
	}

	sourceID := payload.RuleName
	if payload.RuleID != 0 {
		sourceID = fmt.Sprintf("%d", payload.RuleID)
	}

	metadata := map[string]any{"state": payload.State}
	for k, v := range payload.Tags {
		metadata[k] = v
	}

	return types.Alert{
		Source:      SourceGrafana,
		SourceID:    sourceID,
		Title:       payload.Title,
		Description: payload.Message,
		Severity:    severity,
		Tags:        mineTags(payload.Tags),
		Metadata:    metadata,
	}, true
}

type dynatracePayload struct {
	ProblemID          string `json:"ProblemID"`
	ProblemTitle       string `json:"ProblemTitle"`
	ProblemDetailsText string `json:"ProblemDetailsText"`
	ProblemImpact      string `json:"ProblemImpact"`
	ProblemSeverity    string `json:"ProblemSeverity"`
	State              string `json:"State"`
	Tags               string `json:"Tags"`
	ImpactedEntities   []struct {
		Type string `json:"type"`
		Name string `json:"name"`
	} `json:"ImpactedEntities"`
}

func parseDynatrace(body []byte) (types.Alert, bool) {
	payload := dynatracePayload{}

	err := json.Unmarshal(body, &payload)
	if err != nil || payload.ProblemID == "" || payload.ProblemTitle == "" {
		return types.Alert{}, false
	}

	severity := types.SeverityMedium
	switch strings.ToUpper(payload.ProblemSeverity) {
	case "AVAILABILITY":
		severity = types.SeverityCritical
	case "ERROR":
		severity = types.SeverityHigh
	case "PERFORMANCE", "RESOURCE_CONTENTION":
		severity = types.SeverityMedium
	}

	tags := []string{}
	for _, t := range strings.Split(payload.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	for _, e := range payload.ImpactedEntities {
		if e.Name != "" {
			tags = append(tags, e.Name)
		}
	}

	metadata := map[string]any{
		"impact": payload.ProblemImpact,
		"state":  payload.State,
	}

	return types.Alert{
		Source:      SourceDynatrace,
		SourceID:    payload.ProblemID,
		Title:       payload.ProblemTitle,
		Description: payload.ProblemDetailsText,
		Severity:    severity,
		Tags:        unique(tags),
		Metadata:    metadata,
	}, true
}

func parseGeneric(body []byte) types.Alert {
	fields := map[string]any{}
	_ = json.Unmarshal(body, &fields)

	str := func(keys ...string) string {
		for _, k := range keys {
			if v, ok := fields[k].(string); ok && v != "" {
				return v
			}
		}
		return ""
	}

	title := str("title", "summary", "message", "name", "alert")
	if title == "" {
		title = "unknown alert"
	}

	labels := map[string]string{}
	for _, k := range teamFields {
		if v, ok := fields[k].(string); ok {
			labels[k] = v
		}
	}

	return types.Alert{
		Source:      SourceGeneric,
		SourceID:    str("id", "sourceId"),
		Title:       title,
		Description: str("description", "details", "message"),
		Severity:    mapLabelSeverity(str("severity", "level", "priority")),
		Tags:        mineTags(labels),
		Metadata:    fields,
	}
}

func mapLabelSeverity(s string) types.Severity {
	switch strings.ToLower(s) {
	case "critical", "page", "disaster":
		return types.SeverityCritical
	case "high", "error", "warning":
		return types.SeverityHigh
	case "medium":
		return types.SeverityMedium
	case "low", "info", "information":
		return types.SeverityLow
	}
	return types.SeverityMedium
}

func mineTags(labels map[string]string) []string {
	tags := []string{}

	for _, f := range teamFields {
		if v, ok := labels[f]; ok && v != "" {
			tags = append(tags, v)
		}
	}

	if v, ok := labels["alertname"]; ok && v != "" {
		tags = append(tags, v)
	}

	return unique(tags)
}

func unique(s []string) []string {
	keys := make(map[string]bool)
	list := []string{}
	for _, entry := range s {
		if _, value := keys[entry]; !value {
			keys[entry] = true
			list = append(list, entry)
		}
	}
	slices.Sort(list)
	return list
}
