// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"os"
	"testing"
	"time"
)

const testSecret = "test-secret-key-32-bytes-long!!!"

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set %s: %v", key, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	// Clear environment and set only required var
	os.Clearenv()
	setEnv(t, "PORTFOLIO_SESSION_SECRET", testSecret)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ServerHost != "localhost" {
		t.Errorf("ServerHost = %q, want %q", cfg.ServerHost, "localhost")
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 8080)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.ContactEndpoint != "https://formspree.io/f/xkgzegyj" {
		t.Errorf("ContactEndpoint = %q", cfg.ContactEndpoint)
	}
	if cfg.SubmitTimeout != 15*time.Second {
		t.Errorf("SubmitTimeout = %s, want 15s", cfg.SubmitTimeout)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %s, want 30s", cfg.RequestTimeout)
	}
	if cfg.ControllerIdleTTL != 30*time.Minute {
		t.Errorf("ControllerIdleTTL = %s, want 30m", cfg.ControllerIdleTTL)
	}
	if cfg.SweepSchedule != "@every 5m" {
		t.Errorf("SweepSchedule = %q", cfg.SweepSchedule)
	}
	if cfg.SessionLifetime != 24*time.Hour {
		t.Errorf("SessionLifetime = %s, want 24h", cfg.SessionLifetime)
	}
	if cfg.SiteURL != "https://davirds.dev" {
		t.Errorf("SiteURL = %q", cfg.SiteURL)
	}
	if cfg.MediaDir != "./media" {
		t.Errorf("MediaDir = %q, want ./media", cfg.MediaDir)
	}
	if cfg.UseRedisSessions() {
		t.Error("UseRedisSessions() = true without PORTFOLIO_REDIS_URL")
	}
	if cfg.ProjectsReloadEnabled() {
		t.Error("ProjectsReloadEnabled() = true without PORTFOLIO_PROJECTS_FILE")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	customSecret := "custom-secret-key-32-bytes-long!"
	setEnv(t, "PORTFOLIO_SESSION_SECRET", customSecret)
	setEnv(t, "PORTFOLIO_SERVER_HOST", "0.0.0.0")
	setEnv(t, "PORTFOLIO_SERVER_PORT", "3000")
	setEnv(t, "PORTFOLIO_ENV", "production")
	setEnv(t, "PORTFOLIO_LOG_LEVEL", "debug")
	setEnv(t, "PORTFOLIO_CONTACT_ENDPOINT", "https://relay.example.com/f/abc")
	setEnv(t, "PORTFOLIO_SUBMIT_TIMEOUT", "20s")
	setEnv(t, "PORTFOLIO_REDIS_URL", "redis://localhost:6379/1")
	setEnv(t, "PORTFOLIO_PROJECTS_FILE", "/srv/projects.json")
	setEnv(t, "PORTFOLIO_AD_BACKDROP", "matheus.png")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.SessionSecret != customSecret {
		t.Errorf("SessionSecret = %q, want %q", cfg.SessionSecret, customSecret)
	}
	if cfg.ServerHost != "0.0.0.0" {
		t.Errorf("ServerHost = %q, want %q", cfg.ServerHost, "0.0.0.0")
	}
	if cfg.ServerPort != 3000 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 3000)
	}
	if cfg.Env != "production" {
		t.Errorf("Env = %q, want %q", cfg.Env, "production")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.ContactEndpoint != "https://relay.example.com/f/abc" {
		t.Errorf("ContactEndpoint = %q", cfg.ContactEndpoint)
	}
	if cfg.SubmitTimeout != 20*time.Second {
		t.Errorf("SubmitTimeout = %s, want 20s", cfg.SubmitTimeout)
	}
	if !cfg.UseRedisSessions() {
		t.Error("UseRedisSessions() = false, want true")
	}
	if !cfg.ProjectsReloadEnabled() {
		t.Error("ProjectsReloadEnabled() = false, want true")
	}
	if cfg.AdBackdrop != "matheus.png" {
		t.Errorf("AdBackdrop = %q", cfg.AdBackdrop)
	}
}

func TestLoad_RequiredSessionSecret(t *testing.T) {
	os.Clearenv()

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail when PORTFOLIO_SESSION_SECRET is not set")
	}
}

func TestLoad_SessionSecretTooShort(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{"empty", ""},
		{"short", "short"},
		{"31_bytes", "1234567890123456789012345678901"}, // 31 bytes
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			setEnv(t, "PORTFOLIO_SESSION_SECRET", tt.secret)

			_, err := Load()
			if err == nil {
				t.Fatalf("Load() should fail with %d-byte secret", len(tt.secret))
			}
		})
	}
}

func TestLoad_SessionSecretMinimumLength(t *testing.T) {
	os.Clearenv()
	// Exactly 32 bytes should work
	secret32 := "12345678901234567890123456789012"
	setEnv(t, "PORTFOLIO_SESSION_SECRET", secret32)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should succeed with 32-byte secret: %v", err)
	}
	if cfg.SessionSecret != secret32 {
		t.Errorf("SessionSecret = %q, want %q", cfg.SessionSecret, secret32)
	}
}

func TestLoad_WeakSecretRejected(t *testing.T) {
	for _, weak := range knownWeakSecrets {
		os.Clearenv()
		setEnv(t, "PORTFOLIO_SESSION_SECRET", weak)
		if _, err := Load(); err == nil {
			t.Errorf("Load() should reject %q", weak)
		}
	}
}

func TestLoad_ContactEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		endpoint string
		wantErr  bool
	}{
		{"https production", "production", "https://formspree.io/f/x", false},
		{"http development", "development", "http://localhost:9000/hook", false},
		{"http production", "production", "http://formspree.io/f/x", true},
		{"relative", "development", "/contact", true},
		{"ftp scheme", "development", "ftp://example.com/x", true},
		{"garbage", "development", "://bad", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			setEnv(t, "PORTFOLIO_SESSION_SECRET", testSecret)
			setEnv(t, "PORTFOLIO_ENV", tt.env)
			setEnv(t, "PORTFOLIO_CONTACT_ENDPOINT", tt.endpoint)

			_, err := Load()
			if (err != nil) != tt.wantErr {
				t.Errorf("Load() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_SubmitTimeout(t *testing.T) {
	tests := []struct {
		name    string
		submit  string
		request string
		wantErr bool
	}{
		{"short", "10s", "", false},
		{"just under request timeout", "29s", "", false},
		{"equal to request timeout", "30s", "", true},
		{"longer than request timeout", "1m", "", true},
		{"longer request timeout", "1m", "2m", false},
		{"zero", "0s", "", true},
		{"negative", "-5s", "", true},
		{"not a duration", "soon", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			setEnv(t, "PORTFOLIO_SESSION_SECRET", testSecret)
			setEnv(t, "PORTFOLIO_SUBMIT_TIMEOUT", tt.submit)
			if tt.request != "" {
				setEnv(t, "PORTFOLIO_REQUEST_TIMEOUT", tt.request)
			}

			_, err := Load()
			if (err != nil) != tt.wantErr {
				t.Errorf("Load() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"development", true},
		{"production", false},
		{"staging", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := Config{Env: tt.env}
			if got := cfg.IsDevelopment(); got != tt.want {
				t.Errorf("IsDevelopment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_ServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"localhost", 8080, "localhost:8080"},
		{"0.0.0.0", 3000, "0.0.0.0:3000"},
		{"127.0.0.1", 443, "127.0.0.1:443"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			cfg := Config{ServerHost: tt.host, ServerPort: tt.port}
			if got := cfg.ServerAddr(); got != tt.want {
				t.Errorf("ServerAddr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasMinimumEntropy(t *testing.T) {
	tests := []struct {
		secret string
		want   bool
	}{
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false},
		{"abcdefABCDEFabcdefABCDEFabcdefAB", false},
		{"abcABC123abcABC123abcABC123abcAB", true},
		{testSecret, true},
	}

	for _, tt := range tests {
		if got := hasMinimumEntropy(tt.secret); got != tt.want {
			t.Errorf("hasMinimumEntropy(%q) = %v, want %v", tt.secret, got, tt.want)
		}
	}
}
