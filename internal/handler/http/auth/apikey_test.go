package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/auth"
)

func protectedHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func TestVerifier_Verify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		keys      []string
		presented string
		want      bool
	}{
		{
			name:      "known key",
			keys:      []string{"key-one", "key-two"},
			presented: "key-two",
			want:      true,
		},
		{
			name:      "unknown key",
			keys:      []string{"key-one"},
			presented: "other",
			want:      false,
		},
		{
			name:      "empty presented key",
			keys:      []string{"key-one"},
			presented: "",
			want:      false,
		},
		{
			name:      "open mode accepts anything",
			keys:      nil,
			presented: "",
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := auth.NewVerifier(tt.keys)
			if got := v.Verify(tt.presented); got != tt.want {
				t.Errorf("Verify(%q) = %v, want %v", tt.presented, got, tt.want)
			}
		})
	}
}

func TestExtractKey(t *testing.T) {
	t.Parallel()

	t.Run("bearer header", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/api/v1/news", nil)
		r.Header.Set("Authorization", "Bearer secret-key")
		if got := auth.ExtractKey(r); got != "secret-key" {
			t.Errorf("ExtractKey() = %q, want secret-key", got)
		}
	})

	t.Run("query parameter fallback", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/api/v1/news?api_key=query-key", nil)
		if got := auth.ExtractKey(r); got != "query-key" {
			t.Errorf("ExtractKey() = %q, want query-key", got)
		}
	})

	t.Run("header takes precedence over query", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/api/v1/news?api_key=query-key", nil)
		r.Header.Set("Authorization", "Bearer header-key")
		if got := auth.ExtractKey(r); got != "header-key" {
			t.Errorf("ExtractKey() = %q, want header-key", got)
		}
	})

	t.Run("missing everywhere", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/api/v1/news", nil)
		if got := auth.ExtractKey(r); got != "" {
			t.Errorf("ExtractKey() = %q, want empty", got)
		}
	})
}

func TestMiddleware_RejectsMissingKey(t *testing.T) {
	t.Parallel()

	mw := auth.Middleware(auth.NewVerifier([]string{"valid-key"}))
	handler := mw(protectedHandler(t))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/news", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	var envelope struct {
		Success bool `json:"success"`
		Error   struct {
			Code   string `json:"code"`
			Status int    `json:"status"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal error envelope: %v", err)
	}
	if envelope.Success {
		t.Error("expected success=false")
	}
	if envelope.Error.Code != "UNAUTHORIZED" {
		t.Errorf("error code = %q, want UNAUTHORIZED", envelope.Error.Code)
	}
}

func TestMiddleware_AcceptsValidKey(t *testing.T) {
	t.Parallel()

	mw := auth.Middleware(auth.NewVerifier([]string{"valid-key"}))

	var seenKey string
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenKey = auth.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/news", nil)
	r.Header.Set("Authorization", "Bearer valid-key")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if seenKey != "valid-key" {
		t.Errorf("context key = %q, want valid-key", seenKey)
	}
}

func TestMiddleware_OpenModePassesThrough(t *testing.T) {
	t.Parallel()

	mw := auth.Middleware(auth.NewVerifier(nil))
	handler := mw(protectedHandler(t))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/news", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 in open mode", w.Code)
	}
}

func TestNewVerifierFromEnv(t *testing.T) {
	t.Setenv("API_KEYS", "alpha, beta")

	v := auth.NewVerifierFromEnv()
	if v.Open() {
		t.Fatal("expected configured verifier")
	}
	if !v.Verify("alpha") || !v.Verify("beta") {
		t.Error("expected both configured keys to verify")
	}
	if v.Verify("gamma") {
		t.Error("unexpected key verified")
	}
}
