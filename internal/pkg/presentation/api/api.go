package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/diwise/oncall-mgmt/internal/pkg/application/alerts"
	"github.com/diwise/oncall-mgmt/internal/pkg/application/incidents"
	"github.com/diwise/oncall-mgmt/internal/pkg/application/sweeper"
	"github.com/diwise/oncall-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/oncall-mgmt/internal/pkg/presentation/api/auth"
	"github.com/diwise/oncall-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("oncall-mgmt/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader, svc incidents.IncidentService, sweep sweeper.Sweeper, webhookSecret string) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Route("/api/v0", func(r chi.Router) {
		// webhook ingress authenticates with a shared-secret HMAC, not a token
		r.Post("/alerts", ingestAlertHandler(log, svc, webhookSecret))

		r.Group(func(r chi.Router) {
			r.Use(authenticator.RequireAccess(auth.ScopeRead))

			r.Get("/incidents", queryIncidentsHandler(log, svc))
			r.Get("/incidents/{incidentID}", getIncidentHandler(log, svc))
			r.Get("/teams/{teamID}/sla", getSLASettingsHandler(log, svc))
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticator.RequireAccess(auth.ScopeAdmin))

			r.Patch("/incidents/{incidentID}", patchIncidentHandler(log, svc))
			r.Put("/teams/{teamID}/sla", putSLASettingsHandler(log, svc))
			r.Post("/slacheck", slaCheckHandler(log, sweep))
		})
	})

	return router, nil
}

func ingestAlertHandler(log *slog.Logger, svc incidents.IncidentService, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "ingest-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if secret != "" {
			err = verifySignature(secret, r.Header.Get(HeaderTimestamp), r.Header.Get(HeaderSignature), body, time.Now())
			if err != nil {
				requestLogger.Info("rejected alert webhook", "reason", err.Error())
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
		}

		alert := alerts.Normalize(body)

		incident, err := svc.Ingest(ctx, alert)
		if err != nil {
			requestLogger.Error("unable to ingest alert", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(incident)
		if err != nil {
			requestLogger.Error("unable to marshal incident", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func queryIncidentsHandler(log *slog.Logger, svc incidents.IncidentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-incidents")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		conditions := storage.ParseConditions(ctx, r.URL.Query())

		collection, err := svc.Query(ctx, conditions...)
		if err != nil {
			requestLogger.Error("unable to fetch incidents", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		response := struct {
			Data       []types.Incident `json:"data"`
			Count      uint64           `json:"count"`
			Offset     uint64           `json:"offset"`
			Limit      uint64           `json:"limit"`
			TotalCount uint64           `json:"totalCount"`
		}{
			Data:       collection.Data,
			Count:      collection.Count,
			Offset:     collection.Offset,
			Limit:      collection.Limit,
			TotalCount: collection.TotalCount,
		}

		b, err := json.Marshal(response)
		if err != nil {
			requestLogger.Error("unable to marshal incidents", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func getIncidentHandler(log *slog.Logger, svc incidents.IncidentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-incident")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		incidentID := chi.URLParam(r, "incidentID")
		if incidentID != "" {
			requestLogger = requestLogger.With(slog.String("incident_id", incidentID))
		}

		incident, err := svc.GetByID(ctx, incidentID)
		if errors.Is(err, incidents.ErrIncidentNotFound) {
			requestLogger.Debug("incident not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch incident", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		response := struct {
			types.Incident
			SLAStatus *types.SLAStatus `json:"slaStatus,omitempty"`
		}{
			Incident: incident,
		}

		status, err := svc.SLAStatus(ctx, incident)
		if err == nil {
			response.SLAStatus = &status
		} else if !errors.Is(err, incidents.ErrNoSLA) {
			requestLogger.Error("could not evaluate sla status", "err", err.Error())
		}

		b, err := json.Marshal(response)
		if err != nil {
			requestLogger.Error("unable to marshal incident", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func patchIncidentHandler(log *slog.Logger, svc incidents.IncidentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "patch-incident")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		incidentID := chi.URLParam(r, "incidentID")
		if incidentID != "" {
			requestLogger = requestLogger.With(slog.String("incident_id", incidentID))
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var fields struct {
			Status     *string `json:"status"`
			TeamID     *string `json:"teamID"`
			AssignedTo *string `json:"assignedTo"`
		}

		err = json.Unmarshal(b, &fields)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if fields.Status != nil {
			err = svc.SetStatus(ctx, incidentID, types.Status(*fields.Status))
			if errors.Is(err, incidents.ErrIncidentNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if err != nil {
				requestLogger.Error("unable to update status", "err", err.Error())
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}

		if fields.TeamID != nil || fields.AssignedTo != nil {
			teamID, assignedTo := "", ""
			if fields.TeamID != nil {
				teamID = *fields.TeamID
			}
			if fields.AssignedTo != nil {
				assignedTo = *fields.AssignedTo
			}

			err = svc.Assign(ctx, incidentID, teamID, assignedTo)
			if errors.Is(err, incidents.ErrIncidentNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if err != nil {
				requestLogger.Error("unable to assign incident", "err", err.Error())
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusNoContent)
	}
}

func putSLASettingsHandler(log *slog.Logger, svc incidents.IncidentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "put-sla-settings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		b, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var settings types.TeamSLASettings
		err = json.Unmarshal(b, &settings)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		settings.TeamID = chi.URLParam(r, "teamID")

		err = svc.UpdateSLASettings(ctx, settings)
		if err != nil {
			requestLogger.Error("unable to store sla settings", "team_id", settings.TeamID, "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func getSLASettingsHandler(log *slog.Logger, svc incidents.IncidentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-sla-settings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		teamID := chi.URLParam(r, "teamID")

		settings, err := svc.SLASettings(ctx, teamID)
		if errors.Is(err, storage.ErrNoRows) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to fetch sla settings", "team_id", teamID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(settings)
		if err != nil {
			requestLogger.Error("unable to marshal sla settings", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func slaCheckHandler(log *slog.Logger, sweep sweeper.Sweeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "sla-check")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		summary, err := sweep.RunOnce(ctx)
		if errors.Is(err, sweeper.ErrSweepInProgress) {
			requestLogger.Debug("sweep already in progress")
			w.WriteHeader(http.StatusConflict)
			return
		}
		if err != nil {
			requestLogger.Error("breach sweep failed", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(summary)
		if err != nil {
			requestLogger.Error("unable to marshal summary", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}
