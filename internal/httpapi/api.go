package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"crosspay.org/internal/auth"
	"crosspay.org/internal/obs"
	"crosspay.org/internal/payments"
	"crosspay.org/internal/stream"
)

// ReadyProbe reports whether the backing store is reachable. Nil DB means
// in-memory stores, which are always ready.
type ReadyProbe struct {
	DB *sql.DB
}

func (rp ReadyProbe) Check(ctx context.Context) error {
	if rp.DB == nil {
		return nil
	}
	return rp.DB.PingContext(ctx)
}

// API is the HTTP boundary. It translates the request/response contract into
// core operations and maps the error taxonomy onto status codes.
type API struct {
	mux        *http.ServeMux
	authn      *auth.Service
	payments   *payments.Service
	stream     *stream.Stream
	readyProbe ReadyProbe
	version    string

	rateMax       int
	rateWindow    time.Duration
	authPerSecond float64
	authBurst     int
}

// New wires the routes. The stream may be nil to disable the event feed.
func New(rp ReadyProbe, version string, authn *auth.Service, pay *payments.Service, events *stream.Stream) *API {
	a := &API{
		mux:           http.NewServeMux(),
		authn:         authn,
		payments:      pay,
		stream:        events,
		readyProbe:    rp,
		version:       version,
		rateMax:       100,
		rateWindow:    15 * time.Minute,
		authPerSecond: 1,
		authBurst:     10,
	}

	a.mux.Handle("/auth/register", Throttle(http.HandlerFunc(a.handleRegister), a.authPerSecond, a.authBurst))
	a.mux.Handle("/auth/login", Throttle(http.HandlerFunc(a.handleLogin), a.authPerSecond, a.authBurst))

	a.mux.HandleFunc("/payments", a.handlePaymentsCollection)
	a.mux.HandleFunc("/payments/", a.handlePaymentResource)
	a.mux.HandleFunc("/currencies", a.handleCurrencies)
	a.mux.HandleFunc("/events", a.handleEvents)

	a.mux.HandleFunc("/healthz", a.Healthz)
	a.mux.HandleFunc("/readyz", a.Ready)
	a.mux.Handle("/metrics", obs.Handler())

	a.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	return a
}

// SetRateLimit overrides the fixed-window rate limit applied per client IP.
// Must be called before Handler.
func (a *API) SetRateLimit(max int, window time.Duration) {
	if max > 0 {
		a.rateMax = max
	}
	if window > 0 {
		a.rateWindow = window
	}
}

// Handler composes the middleware chain around the mux.
func (a *API) Handler() http.Handler {
	var h http.Handler = a.mux
	h = a.withAuth(h)
	h = RateLimit(h, a.rateMax, a.rateWindow)
	h = MaxBodyBytes(h, 1<<20)
	h = CORS(h)
	h = SecurityHeaders(h)
	h = LoggingJSON(h)
	h = RequestID(h)
	return obs.Instrument(h)
}

func (a *API) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "crosspay-api",
		"version": a.version,
	})
}

func (a *API) Ready(w http.ResponseWriter, r *http.Request) {
	if err := a.readyProbe.Check(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "not_ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ready",
	})
}

func (a *API) handleCurrencies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, a.payments.Currencies())
}
