package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/gymstats/exercises"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts
type workoutsService interface {
	ListSessions(ctx context.Context, userID string, force bool) ([]Session, error)
	GetSession(ctx context.Context, userID, sessionID string) (*Session, error)
	AddSession(ctx context.Context, userID string, in SessionInput) (*Session, error)
	UpdateSession(ctx context.Context, userID, sessionID string, in SessionInput) (*Session, error)
	DeleteSession(ctx context.Context, userID, sessionID string) error
	SessionLogs(ctx context.Context, userID, sessionID string) ([]Log, error)
	RecentLog(ctx context.Context, userID, exerciseID string) (*Log, error)
	AddLog(ctx context.Context, userID string, in LogInput) (*Log, error)
	UpdateLogSets(ctx context.Context, userID, logID string, sets []Set) error
	DeleteLog(ctx context.Context, userID, logID string) error
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	r := router.PathPrefix("/workouts").Subrouter()
	r.HandleFunc("/sessions", h.HandleListSessions).Methods("GET", "OPTIONS").Name("list-sessions")
	r.HandleFunc("/sessions", h.HandleAddSession).Methods("POST", "OPTIONS").Name("add-session")
	r.HandleFunc("/sessions/{id}", h.HandleGetSession).Methods("GET", "OPTIONS").Name("get-session")
	r.HandleFunc("/sessions/{id}", h.HandleUpdateSession).Methods("PUT", "OPTIONS").Name("update-session")
	r.HandleFunc("/sessions/{id}", h.HandleDeleteSession).Methods("DELETE", "OPTIONS").Name("delete-session")
	r.HandleFunc("/sessions/{id}/logs", h.HandleSessionLogs).Methods("GET", "OPTIONS").Name("session-logs")
	r.HandleFunc("/logs", h.HandleAddLog).Methods("POST", "OPTIONS").Name("add-log")
	r.HandleFunc("/logs/{id}/sets", h.HandleUpdateLogSets).Methods("PUT", "OPTIONS").Name("update-log-sets")
	r.HandleFunc("/logs/{id}", h.HandleDeleteLog).Methods("DELETE", "OPTIONS").Name("delete-log")
	r.HandleFunc("/exercises/{id}/recent", h.HandleRecentLog).Methods("GET", "OPTIONS").Name("recent-log")
}

func (h *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.listSessions")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	force := r.URL.Query().Get("force") == "true"
	sessions, err := h.service.ListSessions(ctx, identity.UserID, force)
	if err != nil {
		log.Errorf("list sessions for %s: %s", identity.UserID, err)
		http.Error(w, "failed to get sessions", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, sessions, http.StatusOK)
}

func (h *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.getSession")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	session, err := h.service.GetSession(ctx, identity.UserID, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "get session", err)
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) HandleAddSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.addSession")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	in, ok := decodeSessionInput(w, r)
	if !ok {
		return
	}

	session, err := h.service.AddSession(ctx, identity.UserID, in)
	if err != nil {
		writeError(w, "add session", err)
		return
	}

	log.Debugf("new session %s for user %s: %s", session.ID, identity.UserID, session.Title)
	pkg.WriteJSON(w, session, http.StatusCreated)
}

func (h *Handler) HandleUpdateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.updateSession")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	in, ok := decodeSessionInput(w, r)
	if !ok {
		return
	}

	session, err := h.service.UpdateSession(ctx, identity.UserID, mux.Vars(r)["id"], in)
	if err != nil {
		writeError(w, "update session", err)
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.deleteSession")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	if err := h.service.DeleteSession(ctx, identity.UserID, mux.Vars(r)["id"]); err != nil {
		writeError(w, "delete session", err)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (h *Handler) HandleSessionLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.sessionLogs")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	logs, err := h.service.SessionLogs(ctx, identity.UserID, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "session logs", err)
		return
	}

	pkg.WriteJSON(w, logs, http.StatusOK)
}

func (h *Handler) HandleRecentLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.recentLog")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	recent, err := h.service.RecentLog(ctx, identity.UserID, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "recent log", err)
		return
	}

	pkg.WriteJSON(w, recent, http.StatusOK)
}

func (h *Handler) HandleAddLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.addLog")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	var in LogInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid workout log", http.StatusBadRequest)
		return
	}
	if in.SessionID == "" || in.ExerciseID == "" {
		http.Error(w, "session and exercise are required", http.StatusBadRequest)
		return
	}

	added, err := h.service.AddLog(ctx, identity.UserID, in)
	if err != nil {
		writeError(w, "add log", err)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleUpdateLogSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.updateLogSets")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	var sets []Set
	if err := json.NewDecoder(r.Body).Decode(&sets); err != nil {
		http.Error(w, "invalid sets", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateLogSets(ctx, identity.UserID, mux.Vars(r)["id"], sets); err != nil {
		writeError(w, "update log sets", err)
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (h *Handler) HandleDeleteLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.deleteLog")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, ctx)
	if !ok {
		return
	}

	if err := h.service.DeleteLog(ctx, identity.UserID, mux.Vars(r)["id"]); err != nil {
		writeError(w, "delete log", err)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func identityOrUnauthorized(w http.ResponseWriter, ctx context.Context) (auth.Identity, bool) {
	identity := auth.IdentityFrom(ctx)
	if identity.IsZero() {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return auth.Identity{}, false
	}
	return identity, true
}

func decodeSessionInput(w http.ResponseWriter, r *http.Request) (SessionInput, bool) {
	var in SessionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid session", http.StatusBadRequest)
		return SessionInput{}, false
	}
	if len(in.BodyParts) == 0 {
		http.Error(w, "at least one body part is required", http.StatusBadRequest)
		return SessionInput{}, false
	}
	return in, true
}

func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
	case errors.Is(err, ErrLogNotFound):
		http.Error(w, "workout log not found", http.StatusNotFound)
	case errors.Is(err, exercises.ErrExerciseNotFound):
		http.Error(w, "exercise not found", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidSet):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
