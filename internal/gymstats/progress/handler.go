package progress

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/gymstats/workouts"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress
type progressService interface {
	Records(ctx context.Context, identity auth.Identity, force bool) RecordsResult
	BestSet(ctx context.Context, identity auth.Identity, exerciseID string) (workouts.Set, error)
	SessionSummary(ctx context.Context, identity auth.Identity, sessionID string) (*SessionSummary, error)
}

type Handler struct {
	service progressService
}

func NewHandler(service progressService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	r := router.PathPrefix("/progress").Subrouter()
	r.HandleFunc("/records", h.HandleRecords).Methods("GET", "OPTIONS").Name("records")
	r.HandleFunc("/exercises/{id}/best", h.HandleBestSet).Methods("GET", "OPTIONS").Name("best-set")
	r.HandleFunc("/sessions/{id}/summary", h.HandleSessionSummary).Methods("GET", "OPTIONS").Name("session-summary")
}

type recordResponse struct {
	PersonalRecord
	AchievedDateShort string `json:"achievedDateShort"`
	AchievedDateLong  string `json:"achievedDateLong"`
}

type recordsResponse struct {
	Records []recordResponse `json:"records"`
	Cached  bool             `json:"cached"`
	Stale   bool             `json:"stale"`
}

type bestSetResponse struct {
	ExerciseID string       `json:"exerciseId"`
	Set        workouts.Set `json:"set"`
	Formatted  string       `json:"formatted"`
}

func (h *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "progressHandler.records")
	defer span.End()

	identity := auth.IdentityFrom(ctx)
	if identity.IsZero() {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	result := h.service.Records(ctx, identity, r.URL.Query().Get("force") == "true")

	resp := recordsResponse{
		Records: make([]recordResponse, 0, len(result.Records)),
		Cached:  result.Cached,
		Stale:   result.Stale,
	}
	for _, record := range result.Records {
		resp.Records = append(resp.Records, recordResponse{
			PersonalRecord:    record,
			AchievedDateShort: formatDate(record.AchievedDate, pkg.FormatDateShort),
			AchievedDateLong:  formatDate(record.AchievedDate, pkg.FormatDateLong),
		})
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleBestSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "progressHandler.bestSet")
	defer span.End()

	identity := auth.IdentityFrom(ctx)
	if identity.IsZero() {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exerciseID := mux.Vars(r)["id"]
	best, err := h.service.BestSet(ctx, identity, exerciseID)
	if err != nil {
		log.Errorf("best set of %s for %s: %s", exerciseID, identity.UserID, err)
		http.Error(w, "failed to get best set", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, bestSetResponse{
		ExerciseID: exerciseID,
		Set:        best,
		Formatted:  workouts.FormatSet(best),
	}, http.StatusOK)
}

func (h *Handler) HandleSessionSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "progressHandler.sessionSummary")
	defer span.End()

	identity := auth.IdentityFrom(ctx)
	sessionID := mux.Vars(r)["id"]

	summary, err := h.service.SessionSummary(ctx, identity, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotAuthenticated):
			http.Error(w, "no can do", http.StatusUnauthorized)
		case errors.Is(err, workouts.ErrSessionNotFound):
			http.Error(w, "session not found", http.StatusNotFound)
		default:
			log.Errorf("session summary %s: %s", sessionID, err)
			http.Error(w, "failed to get session summary", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}

// formatDate leaves dates of legacy logs empty.
func formatDate(t time.Time, format func(time.Time) string) string {
	if t.IsZero() {
		return ""
	}
	return format(t)
}
