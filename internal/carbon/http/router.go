package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/carbon/internal/carbon/metrics"
	"github.com/aussiebroadwan/carbon/internal/carbon/service"
	"github.com/aussiebroadwan/carbon/internal/carbon/store"
	"github.com/aussiebroadwan/carbon/internal/carbon/upstream"
	"github.com/aussiebroadwan/carbon/pkg/httpx"
	"github.com/aussiebroadwan/carbon/pkg/slogx"

	_ "github.com/aussiebroadwan/carbon/api/carbon" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store
	metrics      *metrics.Metrics

	TokenService    *service.TokenService
	UserService     *service.UserService
	EmissionService *service.EmissionService
	Chat            upstream.ChatClient
	News            upstream.NewsClient
	NewsQuery       string
}

// NewRouter builds a router. m may be nil, in which case neither the
// metrics middleware nor /metrics is installed.
func NewRouter(buildVersion string, st store.Store, m *metrics.Metrics, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		metrics:      m,
	}

	// Logging wraps metrics so both see the pattern the mux sets.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}
	if m != nil {
		r.middlewares = append(r.middlewares, m.Middleware)
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerEmissions()
	r.registerQuiz()
	r.registerProxies()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Carbon Footprint API
//	@version		0.1.0
//	@description	Backend for the carbon footprint app: accounts, trip emission calculation,
//	@description	lifestyle quiz with suggestions, and proxies for chat and news.
//	@description
//	@description				Session tokens are HS256 JWTs valid for one hour.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/carbon
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:3000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) upstreamObserver() UpstreamObserver {
	if r.metrics == nil {
		return nil
	}
	return r.metrics
}

func (r *Router) registerAccounts() {
	r.Mux.Handle("POST /signup", &SignupHandler{UserService: r.UserService})
	r.Mux.Handle("POST /login", &LoginHandler{UserService: r.UserService})

	me := &MeHandler{UserService: r.UserService}
	r.Mux.Handle("GET /me", httpx.Chain(me,
		httpx.AuthnMiddleware(r.TokenService),
	))
}

func (r *Router) registerEmissions() {
	r.Mux.Handle("GET /vehicles", &VehiclesHandler{EmissionService: r.EmissionService})
	r.Mux.Handle("POST /calculate", &CalculateHandler{EmissionService: r.EmissionService})
}

func (r *Router) registerQuiz() {
	save := &SaveQuizHandler{UserService: r.UserService}
	r.Mux.Handle("POST /saveQuiz", httpx.Chain(save,
		httpx.AuthnMiddleware(r.TokenService),
	))

	h := &SuggestionsHandler{UserService: r.UserService}
	r.Mux.Handle("GET /suggestions", httpx.Chain(http.HandlerFunc(h.HandleSaved),
		httpx.AuthnMiddleware(r.TokenService),
	))
	r.Mux.Handle("POST /suggestions", http.HandlerFunc(h.HandleAdHoc))
}

func (r *Router) registerProxies() {
	r.Mux.Handle("POST /chat", &ChatHandler{Chat: r.Chat, Observer: r.upstreamObserver()})
	r.Mux.Handle("GET /news", &NewsHandler{News: r.News, DefaultQuery: r.NewsQuery, Observer: r.upstreamObserver()})
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))

	if r.metrics != nil {
		r.Mux.Handle("GET /metrics", r.metrics.Handler())
	}
}
