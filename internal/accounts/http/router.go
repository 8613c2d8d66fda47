package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/procurehub/eproc/internal/accounts/service"
	"github.com/procurehub/eproc/internal/accounts/store"
	"github.com/procurehub/eproc/pkg/httpx"
	"github.com/procurehub/eproc/pkg/jwtx"
	"github.com/procurehub/eproc/pkg/slogx"

	_ "github.com/procurehub/eproc/api/accounts" // Swagger docs
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     *jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	RegistryService *service.RegistryService
}

func NewRouter(
	verifier *jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			EProcurement Accounts API
//	@version		0.1.0
//	@description	Authentication and profile backend for the procurement tracker. Issues
//	@description	HS256-signed JWT access tokens; every response uses a common
//	@description	status/message/data envelope.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	signupHandler := &SignupHandler{RegistryService: r.RegistryService}
	signinHandler := &SigninHandler{RegistryService: r.RegistryService}
	profileHandler := &ProfileHandler{RegistryService: r.RegistryService}

	r.Mux.Handle("POST /api/auth/signup", signupHandler)
	r.Mux.Handle("POST /api/auth/signin", signinHandler)

	// Profile routes sit behind the token gate.
	r.Mux.Handle("GET /api/auth/profile",
		httpx.Chain(http.HandlerFunc(profileHandler.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
	r.Mux.Handle("PUT /api/auth/profile",
		httpx.Chain(http.HandlerFunc(profileHandler.HandlePut),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
