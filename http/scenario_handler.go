package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"finsage/domain"
	"finsage/service"
)

type ScenarioHandler struct {
	service *service.ScenarioService
	logger  *logrus.Logger
}

func NewScenarioHandler(service *service.ScenarioService, logger *logrus.Logger) *ScenarioHandler {
	return &ScenarioHandler{service: service, logger: logger}
}

func (h *ScenarioHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/career", h.Career).Methods(http.MethodPost)
	router.HandleFunc("/investment", h.Investment).Methods(http.MethodPost)
	router.HandleFunc("/purchase", h.Purchase).Methods(http.MethodPost)
}

func (h *ScenarioHandler) Career(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var input domain.CareerScenarioInput
	if err := decodeJSON(w, r, &input, false); err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.service.Career(r.Context(), uid, input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *ScenarioHandler) Investment(w http.ResponseWriter, r *http.Request) {
	var input domain.InvestmentScenarioInput
	if err := decodeJSON(w, r, &input, false); err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.service.Investment(input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *ScenarioHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var input domain.PurchaseScenarioInput
	if err := decodeJSON(w, r, &input, false); err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.service.Purchase(r.Context(), uid, input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}
