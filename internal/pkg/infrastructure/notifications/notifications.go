package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Kind string

const (
	KindIncidentAssigned Kind = "incident-assigned"
	KindSLABreach        Kind = "sla-breach"
	KindSLAAtRisk        Kind = "sla-at-risk"
)

//go:generate moq -rm -out notifier_mock.go . Notifier

// Notifier delivers a notification to a recipient. Send reports delivery
// success and must never propagate a failure to the caller, ingestion and
// sweep treat notification problems as non-fatal.
type Notifier interface {
	Send(ctx context.Context, recipientEmail, recipientName string, kind Kind, payload map[string]any) bool
}

type Config struct {
	Endpoint       string `yaml:"endpoint"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

// New returns a webhook-backed notifier, or a no-op notifier when no
// endpoint is configured.
func New(cfg Config) Notifier {
	if cfg.Endpoint == "" {
		return &noopNotifier{}
	}

	timeout := 5 * time.Second
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &webhookNotifier{
		endpoint: cfg.Endpoint,
		timeout:  timeout,
		client: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type noopNotifier struct{}

func (n *noopNotifier) Send(ctx context.Context, recipientEmail, recipientName string, kind Kind, payload map[string]any) bool {
	return false
}

type webhookNotifier struct {
	endpoint string
	timeout  time.Duration
	client   http.Client
}

type envelope struct {
	RecipientEmail string         `json:"recipientEmail"`
	RecipientName  string         `json:"recipientName"`
	Kind           Kind           `json:"kind"`
	Payload        map[string]any `json:"payload,omitempty"`
}

func (n *webhookNotifier) Send(ctx context.Context, recipientEmail, recipientName string, kind Kind, payload map[string]any) bool {
	log := logging.GetFromContext(ctx)

	if recipientEmail == "" {
		log.Debug("dropping notification without recipient", "kind", string(kind))
		return false
	}

	b, err := json.Marshal(envelope{
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Kind:           kind,
		Payload:        payload,
	})
	if err != nil {
		log.Error("could not marshal notification", "err", err.Error())
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(b))
	if err != nil {
		log.Error("could not create notification request", "err", err.Error())
		return false
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		log.Error("notification delivery failed", "kind", string(kind), "err", err.Error())
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		log.Error("notification delivery rejected", "kind", string(kind), "status", resp.StatusCode)
		return false
	}

	return true
}
