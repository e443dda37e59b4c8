// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/davirds/portfolio/internal/scheduler"
	"github.com/davirds/portfolio/internal/version"
)

// Counter reports the size of a live collection (projects, contact forms).
type Counter interface {
	Len() int
}

// JobLister lists scheduled jobs.
type JobLister interface {
	List() []scheduler.JobInfo
}

// HealthConfig holds the components inspected by the health check.
// Nil components are skipped.
type HealthConfig struct {
	Version        *version.Info
	SessionBackend string
	MediaDir       string
	Projects       Counter
	Forms          Counter
	Jobs           JobLister
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	cfg       HealthConfig
	startTime time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(cfg HealthConfig) *HealthHandler {
	return &HealthHandler{
		cfg:       cfg,
		startTime: time.Now(),
	}
}

// StartTime returns when the handler (and application) was started.
func (h *HealthHandler) StartTime() time.Time {
	return h.startTime
}

// HealthStatus represents the overall health status.
type HealthStatus struct {
	Status    string              `json:"status"`
	Timestamp time.Time           `json:"timestamp"`
	Uptime    string              `json:"uptime"`
	Version   string              `json:"version"`
	Checks    map[string]Check    `json:"checks"`
	Jobs      []scheduler.JobInfo `json:"jobs,omitempty"`
	System    *SystemInfo         `json:"system,omitempty"`
}

// Check represents a single health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// SystemInfo contains system-level information.
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutines"`
	NumCPU       int    `json:"num_cpus"`
	MemAlloc     string `json:"mem_alloc"`
}

// Health handles GET /health. Only a missing projects catalog makes the site
// unhealthy; a missing media directory degrades images only.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]Check)
	overall := "healthy"

	if h.cfg.Projects != nil {
		n := h.cfg.Projects.Len()
		c := Check{Status: "healthy", Message: fmt.Sprintf("%d projects", n)}
		if n == 0 {
			c.Status = "unhealthy"
			overall = "unhealthy"
		}
		checks["projects"] = c
	}
	if h.cfg.Forms != nil {
		checks["contact_forms"] = Check{Status: "healthy", Message: fmt.Sprintf("%d active", h.cfg.Forms.Len())}
	}
	if h.cfg.SessionBackend != "" {
		checks["sessions"] = Check{Status: "healthy", Message: h.cfg.SessionBackend}
	}
	if h.cfg.MediaDir != "" {
		c := checkDir(h.cfg.MediaDir)
		if c.Status != "healthy" && overall == "healthy" {
			overall = "degraded"
		}
		checks["media"] = c
	}

	status := HealthStatus{
		Status:    overall,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.cfg.Version.String(),
		Checks:    checks,
	}
	if h.cfg.Jobs != nil {
		status.Jobs = h.cfg.Jobs.List()
	}
	if r.URL.Query().Get("verbose") == "true" {
		status.System = systemInfo()
	}

	code := http.StatusOK
	if overall == "unhealthy" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}

// Liveness handles GET /health/live - simple liveness check.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "alive",
	})
}

// checkDir verifies that dir exists and is a directory.
func checkDir(dir string) Check {
	info, err := os.Stat(dir)
	if err != nil {
		return Check{Status: "degraded", Message: "not accessible"}
	}
	if !info.IsDir() {
		return Check{Status: "degraded", Message: "not a directory"}
	}
	return Check{Status: "healthy"}
}

func systemInfo() *SystemInfo {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return &SystemInfo{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     formatBytes(m.Alloc),
	}
}

// formatBytes formats bytes into a human-readable string.
func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
