// Package http is the JSON API in front of the services.
package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"finsage/service"
)

// Handlers groups everything NewRouter wires together.
type Handlers struct {
	Calc      *CalcHandler
	Loan      *LoanHandler
	Analytics *AnalyticsHandler
	Profile   *ProfileHandler
	Scenario  *ScenarioHandler
	Advisor   *AdvisorHandler
}

// NewRouter mounts the public calculators and the authenticated,
// rate-limited user routes.
func NewRouter(h Handlers, auth *service.AuthService, limiter *RateLimiter, advisorEnabled bool, logger *logrus.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestLogger(logger))

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, http.StatusOK, map[string]any{
			"status":  "ok",
			"advisor": advisorEnabled,
		})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	calc := api.PathPrefix("/calc").Subrouter()
	h.Calc.RegisterRoutes(calc)
	h.Loan.RegisterRoutes(calc)

	h.Analytics.RegisterRoutes(api.PathPrefix("/analytics").Subrouter())

	protected := api.NewRoute().Subrouter()
	protected.Use(RateLimitMiddleware(limiter), AuthMiddleware(auth, logger))

	h.Profile.RegisterRoutes(protected.PathPrefix("/profile").Subrouter())
	h.Scenario.RegisterRoutes(protected.PathPrefix("/scenarios").Subrouter())
	h.Advisor.RegisterRoutes(protected.PathPrefix("/advisor").Subrouter())

	return router
}
