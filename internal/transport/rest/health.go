package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

// Pinger reports whether a backing component is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

// Ping calls f.
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Component is a named dependency checked by the health endpoints.
// An Optional component that fails marks the service degraded, not down.
type Component struct {
	Name     string
	Probe    Pinger
	Optional bool
}

// HealthHandler serves /live, /ready and /health.
type HealthHandler struct {
	components []Component
	version    string
	now        func() time.Time
}

// NewHealthHandler builds a handler over required components keyed by name.
// Use WithOptional to add components that may fail without taking the service down.
func NewHealthHandler(version string, required map[string]Pinger) *HealthHandler {
	h := &HealthHandler{version: version, now: time.Now}
	for name, p := range required {
		h.components = append(h.components, Component{Name: name, Probe: p})
	}
	return h
}

// WithOptional registers a non-critical component and returns h.
func (h *HealthHandler) WithOptional(name string, p Pinger) *HealthHandler {
	h.components = append(h.components, Component{Name: name, Probe: p, Optional: true})
	return h
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the outcome of one probe.
type CompStatus struct {
	Status   string `json:"status"`
	Latency  string `json:"latency,omitempty"`
	Error    string `json:"error,omitempty"`
	Optional bool   `json:"optional,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready answers 503 only when a required component is down.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, overall := h.check(r.Context())
	writeJSON(w, statusCode(overall), HealthResponse{Status: overall, Timestamp: h.now()})
}

// Health adds per-component detail and the build version to Ready.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, overall := h.check(r.Context())
	writeJSON(w, statusCode(overall), HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

func statusCode(overall string) int {
	if overall == "down" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

// check probes all components concurrently. Overall is "ok", "degraded"
// (only optional failures) or "down" (any required failure).
func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, string) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var (
		mu  sync.Mutex
		out = make(map[string]CompStatus, len(h.components))
	)

	// Probe errors are reported per component, never through the group.
	var g errgroup.Group
	for _, c := range h.components {
		g.Go(func() error {
			start := time.Now()
			err := c.Probe.Ping(ctx)
			st := CompStatus{Status: "ok", Latency: time.Since(start).String(), Optional: c.Optional}
			if err != nil {
				st = CompStatus{Status: "down", Error: err.Error(), Optional: c.Optional}
			}

			mu.Lock()
			out[c.Name] = st
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	overall := "ok"
	for _, st := range out {
		if st.Status == "ok" {
			continue
		}
		if !st.Optional {
			return out, "down"
		}
		overall = "degraded"
	}
	return out, overall
}
