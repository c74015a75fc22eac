package service

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"
)

func TestExtractToken(t *testing.T) {
	a := NewAuthService(NewTokenService(nil))

	cases := []struct {
		name   string
		header string
		query  string
		want   string
	}{
		{"bearer", "Bearer abc123", "", "abc123"},
		{"bearer-lowercase", "bearer abc123", "", "abc123"},
		{"bearer-extra-space", "Bearer   abc123", "", "abc123"},
		{"query-fallback", "", "qtoken", "qtoken"},
		{"bearer-wins-over-query", "Bearer htoken", "qtoken", "htoken"},
		{"non-bearer-scheme", "Basic dXNlcg==", "qtoken", "qtoken"},
		{"empty", "", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			url := "/admin/dashboard"
			if c.query != "" {
				url += "?token=" + c.query
			}
			r := httptest.NewRequest("GET", url, nil)
			if c.header != "" {
				r.Header.Set("Authorization", c.header)
			}
			if got := a.ExtractToken(r); got != c.want {
				t.Errorf("ExtractToken = %q, want %q", got, c.want)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	rdb, _ := newTestRedis(t)
	ts := NewTokenService(rdb)
	a := NewAuthService(ts)
	ctx := context.Background()

	token, _ := ts.GenerateToken()
	if err := ts.StoreToken(ctx, token, 42, time.Hour); err != nil {
		t.Fatal(err)
	}

	uid, err := a.Authenticate(ctx, token)
	if err != nil || uid != 42 {
		t.Errorf("Authenticate = (%d, %v), want (42, nil)", uid, err)
	}

	if _, err := a.Authenticate(ctx, ""); err == nil {
		t.Error("empty token should fail")
	}
	if _, err := a.Authenticate(ctx, "deadbeef"); err == nil {
		t.Error("unknown token should fail")
	}
}

// 登出后 token 失效，user set 里的登记也被摘掉。
func TestAuthRevokeToken(t *testing.T) {
	rdb, mr := newTestRedis(t)
	ts := NewTokenService(rdb)
	a := NewAuthService(ts)
	ctx := context.Background()

	token, _ := ts.GenerateToken()
	if err := ts.StoreToken(ctx, token, 42, time.Hour); err != nil {
		t.Fatal(err)
	}

	if err := a.RevokeToken(ctx, token); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}
	if _, err := a.Authenticate(ctx, token); err == nil {
		t.Error("token still valid after logout")
	}
	ok, err := mr.SIsMember("cms:user_tokens:42", token)
	if err == nil && ok {
		t.Error("token still registered in user set")
	}
}
