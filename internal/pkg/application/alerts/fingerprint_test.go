package alerts

import (
	"testing"

	"github.com/matryer/is"
)

func TestFingerprintIsDeterministic(t *testing.T) {
	is := is.New(t)

	a := Fingerprint("grafana", "disk full", map[string]any{"host": "db-01", "mount": "/var"})
	b := Fingerprint("grafana", "disk full", map[string]any{"mount": "/var", "host": "db-01"})

	is.Equal(a, b)
}

func TestFingerprintCanonicalizesNestedMetadata(t *testing.T) {
	is := is.New(t)

	a := Fingerprint("alertmanager", "api errors", map[string]any{
		"labels": map[string]any{"env": "prod", "region": "eu-north-1"},
	})
	b := Fingerprint("alertmanager", "api errors", map[string]any{
		"labels": map[string]any{"region": "eu-north-1", "env": "prod"},
	})

	is.Equal(a, b)
}

func TestFingerprintSeparatesDistinctAlerts(t *testing.T) {
	is := is.New(t)

	a := Fingerprint("grafana", "disk full", map[string]any{"host": "db-01"})
	b := Fingerprint("grafana", "disk full", map[string]any{"host": "db-02"})
	c := Fingerprint("dynatrace", "disk full", map[string]any{"host": "db-01"})

	is.True(a != b)
	is.True(a != c)
}

func TestFingerprintMetadataCannotShadowIdentity(t *testing.T) {
	is := is.New(t)

	a := Fingerprint("grafana", "disk full", nil)
	b := Fingerprint("grafana", "disk full", map[string]any{"source": "spoofed", "title": "spoofed"})

	is.Equal(a, b)
}
