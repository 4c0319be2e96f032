package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises
type catalog interface {
	List(ctx context.Context) ([]Exercise, error)
	Get(ctx context.Context, id string) (*Exercise, error)
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	Update(ctx context.Context, id string, update ExerciseUpdate) error
	Delete(ctx context.Context, id string) error
	ListBodyParts(ctx context.Context) ([]BodyPart, error)
}

type Handler struct {
	catalog catalog
}

func NewHandler(catalog catalog) *Handler {
	return &Handler{
		catalog: catalog,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/exercises", h.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	router.HandleFunc("/exercises", h.HandleAdd).Methods("POST", "OPTIONS").Name("add-exercise")
	router.HandleFunc("/exercises/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	router.HandleFunc("/exercises/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	router.HandleFunc("/exercises/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
	router.HandleFunc("/bodyparts", h.HandleListBodyParts).Methods("GET", "OPTIONS").Name("list-bodyparts")
	router.HandleFunc("/equipment", h.HandleListEquipment).Methods("GET", "OPTIONS").Name("list-equipment")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "exercisesHandler.list")
	defer span.End()

	exercises, err := h.catalog.List(ctx)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "exercisesHandler.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	exercise, err := h.catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("get exercise %s: %s", id, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusOK)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "exercisesHandler.add")
	defer span.End()

	if !requireAdmin(w, ctx) {
		return
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		http.Error(w, "invalid exercise", http.StatusBadRequest)
		return
	}
	exercise.Name = strings.TrimSpace(exercise.Name)
	if exercise.Name == "" {
		http.Error(w, "exercise name empty", http.StatusBadRequest)
		return
	}
	if exercise.BodyPartID == "" {
		http.Error(w, "exercise body part empty", http.StatusBadRequest)
		return
	}
	if !ValidEquipment(exercise.Equipment) {
		http.Error(w, "unknown equipment", http.StatusBadRequest)
		return
	}

	added, err := h.catalog.Add(ctx, exercise)
	if err != nil {
		if errors.Is(err, ErrBodyPartNotFound) {
			http.Error(w, "body part not found", http.StatusBadRequest)
			return
		}
		log.Errorf("add exercise: %s", err)
		http.Error(w, "failed to add exercise", http.StatusInternalServerError)
		return
	}

	log.Debugf("exercise %s added: %s", added.ID, added.Name)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "exercisesHandler.update")
	defer span.End()

	if !requireAdmin(w, ctx) {
		return
	}

	var update ExerciseUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid exercise update", http.StatusBadRequest)
		return
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		http.Error(w, "exercise name empty", http.StatusBadRequest)
		return
	}
	if update.Equipment != nil && !ValidEquipment(*update.Equipment) {
		http.Error(w, "unknown equipment", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.catalog.Update(ctx, id, update); err != nil {
		switch {
		case errors.Is(err, ErrExerciseNotFound):
			http.Error(w, "exercise not found", http.StatusNotFound)
		case errors.Is(err, ErrBodyPartNotFound):
			http.Error(w, "body part not found", http.StatusBadRequest)
		default:
			log.Errorf("update exercise %s: %s", id, err)
			http.Error(w, "failed to update exercise", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "exercisesHandler.delete")
	defer span.End()

	if !requireAdmin(w, ctx) {
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.catalog.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete exercise %s: %s", id, err)
		http.Error(w, "failed to delete exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (h *Handler) HandleListBodyParts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "exercisesHandler.listBodyParts")
	defer span.End()

	bodyParts, err := h.catalog.ListBodyParts(ctx)
	if err != nil {
		log.Errorf("list body parts: %s", err)
		http.Error(w, "failed to get body parts", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, bodyParts, http.StatusOK)
}

func (h *Handler) HandleListEquipment(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, SortedEquipment(), http.StatusOK)
}

func requireAdmin(w http.ResponseWriter, ctx context.Context) bool {
	identity := auth.IdentityFrom(ctx)
	if identity.IsZero() {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return false
	}
	if !identity.IsAdmin() {
		http.Error(w, "admin only", http.StatusForbidden)
		return false
	}
	return true
}
