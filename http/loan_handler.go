package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"finsage/domain"
	"finsage/service"
)

type LoanHandler struct {
	service *service.LoanService
	logger  *logrus.Logger
}

func NewLoanHandler(service *service.LoanService, logger *logrus.Logger) *LoanHandler {
	return &LoanHandler{service: service, logger: logger}
}

func (h *LoanHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/loan", h.QuoteLoan).Methods(http.MethodPost)
}

func (h *LoanHandler) QuoteLoan(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInput
	if err := decodeJSON(w, r, &input, false); err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.service.Quote(input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}
