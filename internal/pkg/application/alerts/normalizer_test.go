package alerts

import (
	"testing"

	"github.com/diwise/oncall-mgmt/pkg/types"
	"github.com/matryer/is"
)

func TestNormalizeAlertmanagerPayload(t *testing.T) {
	is := is.New(t)

	body := []byte(`{
		"version": "4",
		"groupKey": "{}:{alertname=\"HighErrorRate\"}",
		"status": "firing",
		"alerts": [{
			"status": "firing",
			"labels": {"alertname": "HighErrorRate", "severity": "page", "team": "platform"},
			"annotations": {"summary": "error rate above 5%", "description": "checkout api"},
			"fingerprint": "c4e9a2"
		}]
	}`)

	alert := Normalize(body)

	is.Equal(alert.Source, SourceAlertmanager)
	is.Equal(alert.SourceID, "c4e9a2")
	is.Equal(alert.Title, "error rate above 5%")
	is.Equal(alert.Description, "checkout api")
	is.Equal(alert.Severity, types.SeverityCritical)
	is.Equal(alert.Tags, []string{"HighErrorRate", "platform"})
}

func TestNormalizeAlertmanagerFallsBackToAlertname(t *testing.T) {
	is := is.New(t)

	body := []byte(`{
		"groupKey": "gk-1",
		"alerts": [{"labels": {"alertname": "NodeDown"}}]
	}`)

	alert := Normalize(body)

	is.Equal(alert.Source, SourceAlertmanager)
	is.Equal(alert.Title, "NodeDown")
	is.Equal(alert.SourceID, "gk-1")
	is.Equal(alert.Severity, types.SeverityMedium)
}

func TestNormalizeGrafanaPayload(t *testing.T) {
	is := is.New(t)

	body := []byte(`{
		"title": "CPU usage high",
		"state": "alerting",
		"message": "load above threshold",
		"ruleId": 42,
		"ruleName": "cpu-rule",
		"tags": {"service": "billing"}
	}`)

	alert := Normalize(body)

	is.Equal(alert.Source, SourceGrafana)
	is.Equal(alert.SourceID, "42")
	is.Equal(alert.Title, "CPU usage high")
	is.Equal(alert.Severity, types.SeverityHigh)
	is.Equal(alert.Tags, []string{"billing"})
}

func TestNormalizeDynatracePayload(t *testing.T) {
	is := is.New(t)

	body := []byte(`{
		"ProblemID": "P-2203",
		"ProblemTitle": "Response time degradation",
		"ProblemSeverity": "AVAILABILITY",
		"State": "OPEN",
		"Tags": "frontend, checkout",
		"ImpactedEntities": [{"type": "SERVICE", "name": "cart-service"}]
	}`)

	alert := Normalize(body)

	is.Equal(alert.Source, SourceDynatrace)
	is.Equal(alert.SourceID, "P-2203")
	is.Equal(alert.Severity, types.SeverityCritical)
	is.Equal(alert.Tags, []string{"cart-service", "checkout", "frontend"})
}

func TestNormalizeUnknownPayloadDegradesToGeneric(t *testing.T) {
	is := is.New(t)

	body := []byte(`{"message": "something odd happened", "severity": "info", "service": "ingest"}`)

	alert := Normalize(body)

	is.Equal(alert.Source, SourceGeneric)
	is.Equal(alert.Title, "something odd happened")
	is.Equal(alert.Severity, types.SeverityLow)
	is.Equal(alert.Tags, []string{"ingest"})
}

func TestNormalizeGarbageNeverFails(t *testing.T) {
	is := is.New(t)

	alert := Normalize([]byte(`not json at all`))

	is.Equal(alert.Source, SourceGeneric)
	is.Equal(alert.Title, "unknown alert")
	is.Equal(alert.Severity, types.SeverityMedium)
}
