package web

import (
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/aliskhannn/wordbook/internal/metrics"
)

// RouterOptions controls the middleware wrapped around the routes.
type RouterOptions struct {
	// SecretKey enables CSRF protection of the form when set.
	SecretKey string
	// Secure requires TLS for CSRF cookies and origin checks.
	Secure bool
	// AccessLog receives one Combined Log Format line per request when set.
	AccessLog io.Writer
}

// Routes registers the site routes.
func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(metrics.Middleware, h.requestLogger)

	r.HandleFunc("/", h.home).Methods(http.MethodGet)
	r.HandleFunc("/add", h.addWordForm).Methods(http.MethodGet)
	r.HandleFunc("/add", h.addWord).Methods(http.MethodPost)
	r.HandleFunc("/dictionary", h.dictionary).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(h.notFound)

	return r
}

// NewRouter wraps the routes with CSRF protection, panic recovery and access logging.
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	var root http.Handler = h.Routes()

	if opts.SecretKey != "" {
		key := sha256.Sum256([]byte(opts.SecretKey))
		root = csrf.Protect(key[:],
			csrf.Secure(opts.Secure),
			csrf.Path("/"),
			csrf.ErrorHandler(http.HandlerFunc(h.csrfFailure)),
		)(root)
		if !opts.Secure {
			root = plaintextHTTP(root)
		}
	}

	root = handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{h.logger}))(root)

	if opts.AccessLog != nil {
		root = handlers.CombinedLoggingHandler(opts.AccessLog, root)
	}

	return root
}

func (h *Handler) csrfFailure(w http.ResponseWriter, r *http.Request) {
	h.logger.Warn("csrf check failed", zap.Error(csrf.FailureReason(r)))
	h.renderError(w, http.StatusForbidden)
}

// recoveryLogger adapts zap to handlers.RecoveryHandlerLogger.
type recoveryLogger struct {
	logger *zap.Logger
}

func (l recoveryLogger) Println(v ...any) {
	l.logger.Error("recovered from panic", zap.String("panic", fmt.Sprint(v...)))
}
