package api_test

import (
	"net/http"
	"testing"

	"github.com/joestump/promptsmith/internal/api"
)

func TestAuth_Success(t *testing.T) {
	env := newTestEnv(t, "secret123", nil)

	for _, path := range []string{"/auth", "/api/auth"} {
		rec := env.do(t, http.MethodPost, path, api.AuthRequest{Password: "secret123"})
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200; body: %s", path, rec.Code, rec.Body.String())
		}
		resp := decode[map[string]any](t, rec)
		if resp["success"] != true {
			t.Errorf("%s: body = %v, want success true", path, resp)
		}
		if _, ok := resp["message"]; ok {
			t.Errorf("%s: unexpected message on success: %v", path, resp)
		}
	}
}

func TestAuth_Mismatch(t *testing.T) {
	env := newTestEnv(t, "secret123", nil)

	rec := env.do(t, http.MethodPost, "/auth", api.AuthRequest{Password: "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	resp := decode[api.AuthResponse](t, rec)
	if resp.Success || resp.Message != "잘못된 비밀번호입니다." {
		t.Errorf("body = %+v", resp)
	}
}

func TestAuth_MissingPasswordField(t *testing.T) {
	env := newTestEnv(t, "secret123", nil)
	rec := env.do(t, http.MethodPost, "/auth", `{}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuth_NotConfigured(t *testing.T) {
	env := newTestEnv(t, "", nil)

	for _, pw := range []string{"", "anything"} {
		rec := env.do(t, http.MethodPost, "/auth", api.AuthRequest{Password: pw})
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("password %q: status = %d, want 500", pw, rec.Code)
		}
		resp := decode[api.AuthResponse](t, rec)
		if resp.Success || resp.Message != "Server configuration error." {
			t.Errorf("body = %+v", resp)
		}
	}
}

func TestAuth_InvalidBody(t *testing.T) {
	env := newTestEnv(t, "secret123", nil)
	rec := env.do(t, http.MethodPost, "/auth", `{"password":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if resp := decode[api.AuthResponse](t, rec); resp.Message != "Invalid request body." {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestAuth_MethodNotAllowed(t *testing.T) {
	env := newTestEnv(t, "secret123", nil)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := env.do(t, method, "/auth", nil)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s: status = %d, want 405", method, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("%s: Content-Type = %q", method, ct)
		}
		resp := decode[map[string]any](t, rec)
		if resp["success"] != false || resp["message"] != "Method not allowed" {
			t.Errorf("%s: body = %v", method, resp)
		}
	}
}
