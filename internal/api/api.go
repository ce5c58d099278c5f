// Package api exposes the application services over a JSON HTTP API.
// It owns serialization and error-to-status mapping only; all domain
// logic lives in the service and calculator packages.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/expenseshare/expenseshare/internal/auth"
	"github.com/expenseshare/expenseshare/internal/middleware"
	"github.com/expenseshare/expenseshare/internal/service"
)

// API wires the HTTP routes to the application services.
type API struct {
	router      *mux.Router
	authSvc     *service.AuthService
	groups      *service.GroupService
	expenses    *service.ExpenseService
	settlements *service.SettlementService
	balances    *service.BalanceService
	jwtManager  *auth.JWTManager
}

// New creates the API and registers all routes.
func New(
	authSvc *service.AuthService,
	groups *service.GroupService,
	expenses *service.ExpenseService,
	settlements *service.SettlementService,
	balances *service.BalanceService,
	jwtManager *auth.JWTManager,
) *API {
	a := &API{
		router:      mux.NewRouter(),
		authSvc:     authSvc,
		groups:      groups,
		expenses:    expenses,
		settlements: settlements,
		balances:    balances,
		jwtManager:  jwtManager,
	}
	a.setupRoutes()
	return a
}

func (a *API) setupRoutes() {
	a.router.Use(middleware.Metrics, middleware.Logging)

	a.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	a.router.HandleFunc("/healthz", a.handleHealth).Methods("GET")

	// Auth endpoints (no token required)
	a.router.HandleFunc("/api/auth/register", a.handleRegister).Methods("POST")
	a.router.HandleFunc("/api/auth/login", a.handleLogin).Methods("POST")

	// Protected endpoints
	protected := a.router.PathPrefix("/api").Subrouter()
	protected.Use(middleware.RequireAuth(a.jwtManager))

	protected.HandleFunc("/groups", a.handleCreateGroup).Methods("POST")
	protected.HandleFunc("/groups", a.handleListGroups).Methods("GET")
	protected.HandleFunc("/groups/{groupID}", a.handleGetGroup).Methods("GET")
	protected.HandleFunc("/groups/{groupID}", a.handleUpdateGroup).Methods("PUT")
	protected.HandleFunc("/groups/{groupID}", a.handleDeleteGroup).Methods("DELETE")

	protected.HandleFunc("/groups/{groupID}/expenses", a.handleRecordExpense).Methods("POST")
	protected.HandleFunc("/groups/{groupID}/expenses", a.handleListExpenses).Methods("GET")
	protected.HandleFunc("/expenses/preview", a.handlePreviewSplit).Methods("POST")
	protected.HandleFunc("/expenses/{expenseID}", a.handleGetExpense).Methods("GET")
	protected.HandleFunc("/expenses/{expenseID}", a.handleDeleteExpense).Methods("DELETE")

	protected.HandleFunc("/groups/{groupID}/settlements", a.handleRecordSettlement).Methods("POST")
	protected.HandleFunc("/groups/{groupID}/settlements", a.handleListSettlements).Methods("GET")
	protected.HandleFunc("/settlements/{settlementID}", a.handleDeleteSettlement).Methods("DELETE")

	protected.HandleFunc("/me/expenses", a.handleListMyExpenses).Methods("GET")
	protected.HandleFunc("/me/settlements", a.handleListMySettlements).Methods("GET")

	protected.HandleFunc("/groups/{groupID}/balances", a.handleGroupBalances).Methods("GET")
	protected.HandleFunc("/groups/{groupID}/balances/{userA}/{userB}", a.handleBalanceBetween).Methods("GET")
	protected.HandleFunc("/groups/{groupID}/summary", a.handleGroupSummary).Methods("GET")
	protected.HandleFunc("/me/summary", a.handleOverallSummary).Methods("GET")
}

// Handler returns the fully wrapped HTTP handler, CORS included.
func (a *API) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	})
	return c.Handler(a.router)
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
