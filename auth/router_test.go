package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessions.Sessions("test", cookie.NewStore([]byte("test secret"))))
	router.GET("/login-as-admin", func(c *gin.Context) {
		session := LoadSession(c)
		if err := session.LoginAdmin(60); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		session.Success("Welcome")
		c.Status(http.StatusNoContent)
	})
	router.GET("/expired", func(c *gin.Context) {
		session := LoadSession(c)
		_ = session.LoginAdmin(-1)
		c.Status(http.StatusNoContent)
	})
	admin := &Router{Base: router, LoginPath: "/login/"}
	admin.Form("/secret/", func(c *gin.Context) {
		c.String(http.StatusOK, "secret")
	})
	return router
}

func TestRouter(t *testing.T) {
	router := newTestEngine()
	tests := []struct {
		name         string
		loginPath    string
		method       string
		wantStatus   int
		wantLocation string
	}{
		{"anonymous get", "", http.MethodGet, http.StatusFound, "/login/?next=%2Fsecret%2F"},
		{"anonymous post", "", http.MethodPost, http.StatusFound, "/login/?next=%2Fsecret%2F"},
		{"expired session", "/expired", http.MethodGet, http.StatusFound, "/login/?next=%2Fsecret%2F"},
		{"admin get", "/login-as-admin", http.MethodGet, http.StatusOK, ""},
		{"admin post", "/login-as-admin", http.MethodPost, http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/secret/", nil)
			if tt.loginPath != "" {
				w := httptest.NewRecorder()
				router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.loginPath, nil))
				for _, c := range w.Result().Cookies() {
					req.AddCookie(c)
				}
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("Location = %q, want %q", got, tt.wantLocation)
			}
		})
	}
}
