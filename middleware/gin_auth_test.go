package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/lguportal/cms-sdk/service"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	ts := service.NewTokenService(rdb)
	token, err := ts.GenerateToken()
	if err != nil {
		t.Fatal(err)
	}
	if err := ts.StoreToken(context.Background(), token, 42, time.Hour); err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	r.GET("/admin/ping", GinAuthMiddleware(service.NewAuthService(ts)), func(c *gin.Context) {
		uid, _ := c.Get(ContextUserIDKey)
		c.JSON(http.StatusOK, gin.H{"uid": uid})
	})
	return r, token
}

func TestGinAuthMiddleware(t *testing.T) {
	r, token := newAuthTestRouter(t)

	cases := []struct {
		name   string
		header string
		query  string
		want   int
	}{
		{"bearer", "Bearer " + token, "", http.StatusOK},
		{"query-fallback", "", token, http.StatusOK},
		{"missing", "", "", http.StatusUnauthorized},
		{"unknown-token", "Bearer deadbeef", "", http.StatusUnauthorized},
		{"wrong-scheme", "Basic " + token, "", http.StatusUnauthorized},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			url := "/admin/ping"
			if c.query != "" {
				url += "?token=" + c.query
			}
			req := httptest.NewRequest(http.MethodGet, url, nil)
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != c.want {
				t.Errorf("status = %d, want %d; body %s", w.Code, c.want, w.Body.String())
			}
		})
	}
}
