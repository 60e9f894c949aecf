package http

import (
	"net/http"

	"github.com/davi814/projeto-pi-definitivo/internal/delivery/http/handler"
	"github.com/davi814/projeto-pi-definitivo/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	professionalHandler   *handler.ProfessionalHandler
	serviceRequestHandler *handler.ServiceRequestHandler
	reviewHandler         *handler.ReviewHandler
	addressHandler        *handler.AddressHandler
	auditLogHandler       *handler.AuditLogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
	loggingMiddleware     *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	professionalHandler *handler.ProfessionalHandler,
	serviceRequestHandler *handler.ServiceRequestHandler,
	reviewHandler *handler.ReviewHandler,
	addressHandler *handler.AddressHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		professionalHandler:   professionalHandler,
		serviceRequestHandler: serviceRequestHandler,
		reviewHandler:         reviewHandler,
		addressHandler:        addressHandler,
		auditLogHandler:       auditLogHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
		loggingMiddleware:     loggingMiddleware,
	}
}

// Setup registers every route and returns the fully wrapped handler.
// CORS sits outside the mux so preflight requests never hit method matching.
func (r *Router) Setup() http.Handler {
	authenticated := alice.New(r.authMiddleware.Authenticate)
	clientOnly := authenticated.Append(middleware.RequireClient)
	professionalOnly := authenticated.Append(middleware.RequireProfessional)

	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public pages
	r.router.HandleFunc("/", r.professionalHandler.Landing).Methods(http.MethodGet)
	r.router.HandleFunc("/buscar", r.professionalHandler.Search).Methods(http.MethodGet)
	r.router.HandleFunc("/profissional/{id}", r.professionalHandler.GetProfessional).Methods(http.MethodGet)
	r.router.HandleFunc("/api/validar-cep/{cep}", r.addressHandler.ValidateCEP).Methods(http.MethodGet)

	// Auth routes (public)
	r.router.HandleFunc("/registro", r.authHandler.RegisterForm).Methods(http.MethodGet)
	r.router.HandleFunc("/registro", r.authHandler.Register).Methods(http.MethodPost)
	r.router.HandleFunc("/login", r.authHandler.LoginForm).Methods(http.MethodGet)
	r.router.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	r.router.Handle("/logout", authenticated.ThenFunc(r.authHandler.Logout)).Methods(http.MethodGet)
	r.router.Handle("/me", authenticated.ThenFunc(r.authHandler.GetCurrentUser)).Methods(http.MethodGet)
	r.router.Handle("/me/atividade", authenticated.ThenFunc(r.auditLogHandler.GetMyActivity)).Methods(http.MethodGet)
	r.router.Handle("/conta", authenticated.ThenFunc(r.authHandler.DeleteAccount)).Methods(http.MethodDelete)

	// Professional profile
	r.router.Handle("/completar-perfil-profissional", professionalOnly.ThenFunc(r.professionalHandler.CompleteProfileForm)).Methods(http.MethodGet)
	r.router.Handle("/completar-perfil-profissional", professionalOnly.ThenFunc(r.professionalHandler.CompleteProfile)).Methods(http.MethodPost)

	// Service requests
	r.router.Handle("/dashboard", authenticated.ThenFunc(r.serviceRequestHandler.Dashboard)).Methods(http.MethodGet)
	r.router.Handle("/solicitacao/{request_id}", authenticated.ThenFunc(r.serviceRequestHandler.GetRequest)).Methods(http.MethodGet)
	r.router.Handle("/atualizar-status/{request_id}", authenticated.ThenFunc(r.serviceRequestHandler.UpdateStatus)).Methods(http.MethodPost)
	r.router.Handle("/solicitar-orcamento/{professional_id}", clientOnly.ThenFunc(r.serviceRequestHandler.RequestForm)).Methods(http.MethodGet)
	r.router.Handle("/solicitar-orcamento/{professional_id}", clientOnly.ThenFunc(r.serviceRequestHandler.CreateRequest)).Methods(http.MethodPost)

	// Reviews
	r.router.Handle("/avaliar/{professional_id}", clientOnly.ThenFunc(r.reviewHandler.ReviewForm)).Methods(http.MethodGet)
	r.router.Handle("/avaliar/{professional_id}", clientOnly.ThenFunc(r.reviewHandler.SubmitReview)).Methods(http.MethodPost)

	standard := alice.New(r.loggingMiddleware.RecoverPanic, r.loggingMiddleware.LogRequest, r.corsMiddleware.Handle)
	return standard.Then(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
