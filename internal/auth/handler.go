package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// TokenHeader carries the login session token on every authenticated request.
const TokenHeader = "X-GYMLOG-TOKEN"

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth
type authService interface {
	Login(ctx context.Context, creds Credentials, createdAt time.Time) (string, *User, error)
	Logout(ctx context.Context, token string) (bool, error)
	Profile(ctx context.Context, userID string) (*Profile, error)
}

type Handler struct {
	service        authService
	metricsManager *metrics.Manager
}

func NewHandler(service authService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (h *Handler) countLogin(result string) {
	if h.metricsManager == nil {
		return
	}
	h.metricsManager.CounterLogins.WithLabelValues(result).Inc()
}

func (h *Handler) SetupRoutes(mainRouter *mux.Router, loginMiddlewares ...mux.MiddlewareFunc) {
	loginSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	loginSubrouter.
		HandleFunc("/login", h.HandleLogin).
		Methods("POST", "OPTIONS").Name("login")
	loginSubrouter.
		HandleFunc("/logout", h.HandleLogout).
		Methods("GET", "OPTIONS").Name("logout")
	loginSubrouter.
		HandleFunc("/me", h.HandleMe).
		Methods("GET", "OPTIONS").Name("me")

	loginSubrouter.Use(loginMiddlewares...)
}

type loginResponse struct {
	Token   string  `json:"token"`
	UserID  string  `json:"userId"`
	Profile Profile `json:"profile"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.login")
	defer span.End()

	var creds Credentials
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			log.Errorf("login, unmarshal json params: %s", err)
			http.Error(w, "login failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusBadRequest)
			return
		}
		creds = Credentials{
			Email:    r.Form.Get("email"),
			Password: r.Form.Get("password"),
		}
	}

	if creds.Email == "" {
		http.Error(w, "error, email empty", http.StatusBadRequest)
		return
	}
	if creds.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	token, user, err := h.service.Login(ctx, creds, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, ErrWrongCredentials):
			log.Tracef("failed login attempt for: %s", creds.Email)
			h.countLogin("wrong_credentials")
			http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		case errors.Is(err, ErrUserDisabled):
			h.countLogin("disabled")
			http.Error(w, "error, user disabled", http.StatusForbidden)
		default:
			log.Errorf("login failed: %s", err)
			h.countLogin("error")
			http.Error(w, "login error", http.StatusInternalServerError)
		}
		return
	}

	log.Tracef("new login success: %s", user.ID)
	h.countLogin("success")
	pkg.WriteJSON(w, loginResponse{
		Token:   token,
		UserID:  user.ID,
		Profile: user.Profile,
	}, http.StatusOK)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.logout")
	defer span.End()

	authToken := r.Header.Get(TokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := h.service.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("[failed logout] => %s: %s", r.URL.Path, err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.me")
	defer span.End()

	identity := IdentityFrom(ctx)
	if identity.IsZero() {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	profile, err := h.service.Profile(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile [%s]: %s", identity.UserID, err)
		http.Error(w, "get profile error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, profile, http.StatusOK)
}
