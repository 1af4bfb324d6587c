package incidents

import (
	"context"

	"log/slog"

	"github.com/diwise/oncall-mgmt/internal/pkg/application/alerts"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("oncall-mgmt/incidents")

// NewAlertMessageHandler feeds alerts arriving on the message bus through
// the same normalize/ingest pipeline as the HTTP webhook.
func NewAlertMessageHandler(svc IncidentService) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "alert-received")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		alert := alerts.Normalize(itm.Body())

		incident, err := svc.Ingest(ctx, alert)
		if err != nil {
			log.Error("could not ingest alert", "source", alert.Source, "err", err.Error())
			return
		}

		log.Debug("alert ingested", "incident_id", incident.ID, "fingerprint", incident.Fingerprint)
	}
}
