package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"finsage/domain"
	"finsage/service"
)

// AdvisorHandler returns generated advice. Generation problems still answer
// 200 with the fallback text; only bad input is an error.
type AdvisorHandler struct {
	service *service.AdvisorService
	logger  *logrus.Logger
}

func NewAdvisorHandler(service *service.AdvisorService, logger *logrus.Logger) *AdvisorHandler {
	return &AdvisorHandler{service: service, logger: logger}
}

func (h *AdvisorHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/advice", h.Advice).Methods(http.MethodPost)
	router.HandleFunc("/ask", h.Ask).Methods(http.MethodPost)
	router.HandleFunc("/scenario", h.Scenario).Methods(http.MethodPost)
	router.HandleFunc("/spending", h.Spending).Methods(http.MethodPost)
	router.HandleFunc("/backward", h.Backward).Methods(http.MethodPost)
}

// Advice uses the posted digest, or the stored profile when the body
// carries no figures.
func (h *AdvisorHandler) Advice(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req domain.AdviceRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		writeError(w, h.logger, err)
		return
	}

	if req.Income == 0 && req.FixedExpenses == 0 && req.VariableExpenses == 0 && req.Investments == nil && req.Loans == nil {
		resp, err := h.service.AdviceForUser(r.Context(), uid, req.Goals)
		if err != nil {
			writeError(w, h.logger, err)
			return
		}
		writeJSON(w, h.logger, http.StatusOK, resp)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, h.service.Advice(r.Context(), req))
}

func (h *AdvisorHandler) Ask(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req struct {
		Question string `json:"question"`
	}
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp, err := h.service.Ask(r.Context(), uid, req.Question)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}

func (h *AdvisorHandler) Scenario(w http.ResponseWriter, r *http.Request) {
	var req domain.ScenarioAdviceRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp, err := h.service.SimulateScenario(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}

func (h *AdvisorHandler) Spending(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Transactions []domain.Transaction `json:"transactions"`
	}
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp, err := h.service.AnalyzeSpending(r.Context(), req.Transactions)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}

func (h *AdvisorHandler) Backward(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Decisions []domain.HistoricalDecision `json:"decisions"`
	}
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, h.service.BackwardAnalysis(r.Context(), req.Decisions))
}
