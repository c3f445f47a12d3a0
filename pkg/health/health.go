// Package health provides liveness and readiness probe endpoints.
//
// Checks run on demand when a probe endpoint is hit. The POS server has no
// external dependencies to poll in the background, so the Kubernetes-style
// threshold machinery is unnecessary here.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
)

// CheckFunc reports the health of one component. A nil return means healthy.
type CheckFunc func(ctx context.Context) error

// Health tracks readiness state and named health checks for a service.
type Health struct {
	ready atomic.Bool

	mu     sync.RWMutex
	checks map[string]CheckFunc
}

// New returns a Health in the not-ready state. Call SetReady(true) once
// initialization completes.
func New() *Health {
	return &Health{checks: make(map[string]CheckFunc)}
}

// AddCheck registers a named check. Checks run on every probe request, so
// they must be cheap.
func (h *Health) AddCheck(name string, check CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = check
}

// SetReady flips the manual readiness gate. Flip to false during graceful
// shutdown so load balancers stop routing new traffic.
func (h *Health) SetReady(ready bool) {
	h.ready.Store(ready)
}

// IsReady reports whether the service is marked ready and all checks pass.
func (h *Health) IsReady() bool {
	return h.ready.Load() && len(h.failures(context.Background())) == 0
}

// LiveEndpoint handles /livez. The process serving the request is alive, so
// only the registered checks can fail it.
func (h *Health) LiveEndpoint(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, h.failures(r.Context()))
}

// ReadyEndpoint handles /readyz. It fails while the manual readiness gate is
// down or any check fails.
func (h *Health) ReadyEndpoint(w http.ResponseWriter, r *http.Request) {
	failures := h.failures(r.Context())
	if !h.ready.Load() {
		failures["_readiness"] = "service is not ready"
	}
	writeStatus(w, failures)
}

func (h *Health) failures(ctx context.Context) map[string]string {
	h.mu.RLock()
	checks := make(map[string]CheckFunc, len(h.checks))
	for name, c := range h.checks {
		checks[name] = c
	}
	h.mu.RUnlock()

	failures := make(map[string]string)
	for name, check := range checks {
		if err := check(ctx); err != nil {
			failures[name] = err.Error()
		}
	}
	return failures
}

type statusResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func writeStatus(w http.ResponseWriter, failures map[string]string) {
	w.Header().Set("Content-Type", "application/json")

	resp := statusResponse{Status: "ok"}
	code := http.StatusOK
	if len(failures) > 0 {
		resp.Status = "unhealthy"
		resp.Checks = failures
		code = http.StatusServiceUnavailable
	}

	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
