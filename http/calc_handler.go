package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"finsage/finance"
	"finsage/service"
)

// MaxProjectionYears bounds the future-value loop.
const MaxProjectionYears = 100

// CalcHandler exposes the finance functions one endpoint each. Inputs are
// not range checked beyond what keeps the server safe.
type CalcHandler struct {
	logger *logrus.Logger
}

func NewCalcHandler(logger *logrus.Logger) *CalcHandler {
	return &CalcHandler{logger: logger}
}

func (h *CalcHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/savings", h.Savings).Methods(http.MethodPost)
	router.HandleFunc("/debt-to-income", h.DebtToIncome).Methods(http.MethodPost)
	router.HandleFunc("/net-worth", h.NetWorth).Methods(http.MethodPost)
	router.HandleFunc("/format-currency", h.FormatCurrency).Methods(http.MethodPost)
	router.HandleFunc("/future-value", h.FutureValue).Methods(http.MethodPost)
	router.HandleFunc("/emi", h.EMI).Methods(http.MethodPost)
	router.HandleFunc("/section80c", h.Section80C).Methods(http.MethodPost)
	router.HandleFunc("/income-tax", h.IncomeTax).Methods(http.MethodPost)
}

// calcResult never carries a non-finite value: those become null.
type calcResult struct {
	Value     *float64 `json:"value"`
	Formatted string   `json:"formatted"`
}

func newCalcResult(v float64) calcResult {
	res := calcResult{Formatted: finance.FormatCurrency(v)}
	if finance.IsFinite(v) {
		res.Value = &v
	}
	return res
}

type percentResult struct {
	Value *float64 `json:"value"`
}

func (h *CalcHandler) Savings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Income   float64 `json:"income"`
		Expenses float64 `json:"expenses"`
	}
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newCalcResult(finance.MonthlySavings(req.Income, req.Expenses)))
}

func (h *CalcHandler) DebtToIncome(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DebtPayments float64 `json:"debtPayments"`
		Income       float64 `json:"income"`
	}
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, h.logger, err)
		return
	}

	ratio := finance.DebtToIncomeRatio(req.DebtPayments, req.Income)
	res := percentResult{}
	if finance.IsFinite(ratio) {
		res.Value = &ratio
	}
	writeJSON(w, h.logger, http.StatusOK, res)
}

func (h *CalcHandler) NetWorth(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Assets      finance.Breakdown `json:"assets"`
		Liabilities finance.Breakdown `json:"liabilities"`
	}
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newCalcResult(finance.NetWorth(req.Assets, req.Liabilities)))
}

func (h *CalcHandler) FormatCurrency(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newCalcResult(req.Amount))
}

func (h *CalcHandler) FutureValue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Principal    float64 `json:"principal"`
		Contribution float64 `json:"contribution"`
		AnnualRate   float64 `json:"annualRate"`
		Years        int     `json:"years"`
	}
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if req.Years > MaxProjectionYears {
		writeError(w, h.logger, &service.ValidationError{Field: "years", Message: "must be at most 100"})
		return
	}

	fv := finance.FutureValue(req.Principal, req.Contribution, req.AnnualRate, req.Years)
	writeJSON(w, h.logger, http.StatusOK, newCalcResult(fv))
}

// EMI answers a zero rate with a null value, as the formula does.
func (h *CalcHandler) EMI(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Principal    float64 `json:"principal"`
		AnnualRate   float64 `json:"annualRate"`
		TenureMonths int     `json:"tenureMonths"`
	}
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newCalcResult(finance.EMI(req.Principal, req.AnnualRate, req.TenureMonths)))
}

func (h *CalcHandler) Section80C(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Investments finance.Breakdown `json:"investments"`
		Slab        string            `json:"slab"`
	}
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, h.logger, err)
		return
	}

	benefit := finance.Section80CBenefit(req.Investments, req.Slab)
	writeJSON(w, h.logger, http.StatusOK, struct {
		calcResult
		Rate float64 `json:"rate"`
	}{newCalcResult(benefit), finance.SlabRate(req.Slab)})
}

func (h *CalcHandler) IncomeTax(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AnnualIncome float64 `json:"annualIncome"`
	}
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newCalcResult(finance.MonthlyIncomeTax(req.AnnualIncome, finance.DefaultTaxBrackets)))
}
