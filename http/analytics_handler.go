package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"finsage/domain"
	"finsage/service"
)

type AnalyticsHandler struct {
	service *service.AnalyticsService
	logger  *logrus.Logger
}

func NewAnalyticsHandler(service *service.AnalyticsService, logger *logrus.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{service: service, logger: logger}
}

func (h *AnalyticsHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/spending", h.Spending).Methods(http.MethodPost)
}

func (h *AnalyticsHandler) Spending(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Transactions []domain.Transaction `json:"transactions"`
	}
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, h.logger, err)
		return
	}

	summary, err := h.service.SummarizeSpending(req.Transactions)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, summary)
}
