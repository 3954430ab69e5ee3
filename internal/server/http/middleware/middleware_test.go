package middleware

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	adapterIdentity "github.com/solanera/ventaflow/internal/adapter/identity"
	"github.com/solanera/ventaflow/internal/domain/model"
	pkgAuth "github.com/solanera/ventaflow/internal/pkg/auth"
	testhelpers "github.com/solanera/ventaflow/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func identityRouter(resolver IdentityResolver) (*gin.Engine, *adapterIdentity.Identity) {
	seen := &adapterIdentity.Identity{}
	router := gin.New()
	router.Use(IdentityRequired(resolver))
	router.GET("/secure", func(c *gin.Context) {
		val, _ := c.Get(IdentityContextKey)
		*seen, _ = val.(adapterIdentity.Identity)
		c.Status(http.StatusOK)
	})
	return router, seen
}

func TestIdentityRequiredBearerHeader(t *testing.T) {
	resolver := testhelpers.IdentityResolverStub{ResolveFn: func(token string) (adapterIdentity.Identity, error) {
		if token != "session-token" {
			t.Fatalf("unexpected token %q", token)
		}
		return adapterIdentity.Identity{UserID: 7, Role: model.UserRoleBuyer, DisplayName: "Ana"}, nil
	}}

	router, seen := identityRouter(resolver)
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer session-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if seen.UserID != 7 || seen.DisplayName != "Ana" {
		t.Fatalf("identity not placed in context: %+v", seen)
	}
}

func TestIdentityRequiredCookie(t *testing.T) {
	resolver := testhelpers.IdentityResolverStub{Identity: adapterIdentity.Identity{UserID: 2, Role: model.UserRoleOrganization}}
	router, seen := identityRouter(resolver)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.AddCookie(&http.Cookie{Name: "ventaflow_token", Value: "cookie-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if seen.Role != model.UserRoleOrganization {
		t.Fatalf("unexpected identity: %+v", seen)
	}
}

func TestIdentityRequiredRejections(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		err     error
		status  int
	}{
		{"no token", nil, nil, http.StatusUnauthorized},
		{"invalid token", map[string]string{"Authorization": "Bearer bad"}, pkgAuth.ErrInvalidToken, http.StatusUnauthorized},
		{"resolver failure", map[string]string{"Authorization": "Bearer any"}, errors.New("backend down"), http.StatusInternalServerError},
		{"malformed scheme", map[string]string{"Authorization": "Basic abc"}, nil, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolver := testhelpers.IdentityResolverStub{Err: tc.err}
			router, _ := identityRouter(resolver)

			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestExtractTokenPrefersHeader(t *testing.T) {
	resolver := testhelpers.IdentityResolverStub{ResolveFn: func(token string) (adapterIdentity.Identity, error) {
		if token != "from-header" {
			t.Fatalf("header token should win, got %q", token)
		}
		return adapterIdentity.Identity{UserID: 1}, nil
	}}
	router, _ := identityRouter(resolver)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "bearer from-header")
	req.AddCookie(&http.Cookie{Name: "ventaflow_token", Value: "from-cookie"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestSetAuthCookie(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)

	SetAuthCookie(c, "session-token")

	if got := w.Header().Get("Authorization"); got != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", got)
	}

	resp := w.Result()
	defer resp.Body.Close()
	var cookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == "ventaflow_token" {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatalf("auth cookie not set")
	}
	if cookie.Value != "session-token" || !cookie.HttpOnly {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}
}

func TestDecompressRequest(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest())
	router.POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, string(body))
	})

	t.Run("gzip body", func(t *testing.T) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write([]byte("hola mundo")); err != nil {
			t.Fatalf("gzip write: %v", err)
		}
		if err := zw.Close(); err != nil {
			t.Fatalf("gzip close: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/echo", &buf)
		req.Header.Set("Content-Encoding", "gzip")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != "hola mundo" {
			t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("plain body passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("plain"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != "plain" {
			t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("corrupt gzip rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("not gzip at all"))
		req.Header.Set("Content-Encoding", "gzip")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", w.Code)
		}
	})
}

func TestRequestLogger(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logBuf, nil))

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("generates request id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Header().Get(RequestIDHeader) == "" {
			t.Fatalf("expected generated request id")
		}
		if !bytes.Contains(logBuf.Bytes(), []byte(`"path":"/ping"`)) {
			t.Fatalf("request not logged: %s", logBuf.String())
		}
	})

	t.Run("echoes provided request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if got := w.Header().Get(RequestIDHeader); got != "req-42" {
			t.Fatalf("expected request id echoed, got %q", got)
		}
	})
}
