package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"finsage/domain"
	"finsage/service"
)

// ProfileHandler serves the authenticated user's own documents.
type ProfileHandler struct {
	profiles *service.ProfileService
	summary  *service.SummaryService
	logger   *logrus.Logger
}

func NewProfileHandler(profiles *service.ProfileService, summary *service.SummaryService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, summary: summary, logger: logger}
}

func (h *ProfileHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/finances", h.GetFinances).Methods(http.MethodGet)
	router.HandleFunc("/finances", h.SaveFinances).Methods(http.MethodPut)
	router.HandleFunc("/summary", h.GetSummary).Methods(http.MethodGet)
	router.HandleFunc("/preferences", h.GetPreferences).Methods(http.MethodGet)
	router.HandleFunc("/preferences", h.SavePreferences).Methods(http.MethodPut)
}

// requireUser writes a 401 and returns false when no user is authenticated.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid, ok := UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}
	return uid, ok
}

func (h *ProfileHandler) GetFinances(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	finances, err := h.profiles.GetFinances(r.Context(), uid)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, finances)
}

func (h *ProfileHandler) SaveFinances(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var finances domain.Finances
	if err := decodeJSON(w, r, &finances, false); err != nil {
		writeError(w, h.logger, err)
		return
	}

	saved, err := h.profiles.SaveFinances(r.Context(), uid, finances)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, saved)
}

func (h *ProfileHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	summary, err := h.summary.ForUser(r.Context(), uid)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, summary)
}

func (h *ProfileHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	prefs, err := h.profiles.GetPreferences(r.Context(), uid)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, prefs)
}

func (h *ProfileHandler) SavePreferences(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var prefs domain.Preferences
	if err := decodeJSON(w, r, &prefs, false); err != nil {
		writeError(w, h.logger, err)
		return
	}

	saved, err := h.profiles.SavePreferences(r.Context(), uid, prefs)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, saved)
}
