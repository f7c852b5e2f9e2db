package httpapi

import (
	"net/http"

	"github.com/riskibarqy/solblist-api/internal/platform/logging"
	"golang.org/x/time/rate"
)

// RouterConfig carries the transport settings of the public API.
type RouterConfig struct {
	SwaggerEnabled      bool
	CORSAllowedOrigins  []string
	AdminToken          string
	AdminRateLimitRPS   float64
	AdminRateLimitBurst int
	Metrics             *Metrics
}

func NewRouter(handler *Handler, cfg RouterConfig, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	admin := adminGuard{
		token:   cfg.AdminToken,
		limiter: NewIPRateLimiter(rate.Limit(cfg.AdminRateLimitRPS), cfg.AdminRateLimitBurst),
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.SwaggerEnabled, cfg.Metrics)
	registerPublicRoutes(mux, handler)
	registerAdminRoutes(mux, handler, admin)

	return RequestTracing(RequestMetrics(cfg.Metrics, RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, mux)))))
}

// adminGuard rate limits admin routes before checking the token.
type adminGuard struct {
	token   string
	limiter *IPRateLimiter
}

func (g adminGuard) wrap(next http.HandlerFunc) http.Handler {
	return RateLimit(g.limiter, RequireAdminToken(g.token, next))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
