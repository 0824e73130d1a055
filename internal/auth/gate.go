package auth

import (
	"crypto/subtle"
	"errors"

	"github.com/joestump/promptsmith/internal/metrics"
)

var (
	// ErrNotConfigured is returned for every check when no secret is configured.
	ErrNotConfigured = errors.New("app password is not configured")

	// ErrMismatch is returned when the submitted secret is wrong.
	ErrMismatch = errors.New("password mismatch")
)

// User-facing messages for gate failures.
const (
	MismatchMessage      = "잘못된 비밀번호입니다."
	ConfigurationMessage = "Server configuration error."
)

// Gate compares submitted secrets against the server-held one.
// It keeps no state between checks: no lockout, no attempt counting.
type Gate struct {
	secret []byte
}

// NewGate creates a Gate. An empty secret yields a gate that always fails
// with ErrNotConfigured.
func NewGate(secret string) *Gate {
	return &Gate{secret: []byte(secret)}
}

// Configured reports whether a secret is set.
func (g *Gate) Configured() bool {
	return len(g.secret) > 0
}

// Check returns nil when submitted equals the configured secret.
func (g *Gate) Check(submitted string) error {
	if !g.Configured() {
		metrics.AuthAttemptsTotal.WithLabelValues("config_error").Inc()
		return ErrNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(submitted), g.secret) != 1 {
		metrics.AuthAttemptsTotal.WithLabelValues("mismatch").Inc()
		return ErrMismatch
	}
	metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()
	return nil
}

// Message maps a Check error to the text shown to the user.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotConfigured):
		return ConfigurationMessage
	default:
		return MismatchMessage
	}
}
