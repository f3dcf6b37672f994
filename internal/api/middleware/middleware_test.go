package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/creative-desk/internal/config"
	"github.com/linskybing/creative-desk/internal/domain/user"
	"github.com/linskybing/creative-desk/internal/repository"
	"github.com/linskybing/creative-desk/internal/repository/mock"
	"github.com/linskybing/creative-desk/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupJWT(t *testing.T) {
	oldSecret := config.JwtSecret
	config.JwtSecret = "test-secret"
	Init()
	t.Cleanup(func() {
		config.JwtSecret = oldSecret
		Init()
	})
}

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuthMiddleware()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		claims := c.MustGet("claims").(*types.Claims)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "role": claims.Role})
	})
	r.GET("/p", handlers...)
	return r
}

func TestGenerateAndParseToken(t *testing.T) {
	setupJWT(t)

	tok, err := GenerateToken(3, "carol", "manager", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
	assert.Equal(t, "carol", claims.Username)
	assert.True(t, claims.IsElevated())
	assert.False(t, claims.IsAdmin())
}

func TestParseToken_WrongSecret(t *testing.T) {
	setupJWT(t)
	tok, err := GenerateToken(1, "a", "user", time.Hour)
	require.NoError(t, err)

	jwtKey = []byte("other")
	_, err = ParseToken(tok)
	assert.Error(t, err)
}

func TestJWTAuthMiddleware(t *testing.T) {
	setupJWT(t)
	r := protectedRouter()
	tok, _ := GenerateToken(9, "dan", "user", time.Hour)
	expired, _ := GenerateToken(9, "dan", "user", -time.Minute)

	cases := []struct {
		name   string
		mutate func(*http.Request)
		status int
	}{
		{"no token", func(*http.Request) {}, http.StatusUnauthorized},
		{"bad scheme", func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") }, http.StatusUnauthorized},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok) }, http.StatusOK},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "token", Value: tok}) }, http.StatusOK},
		{"expired", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+expired) }, http.StatusUnauthorized},
		{"garbage", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/p", nil)
			tc.mutate(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestJWTAuthMiddleware_QueryTokenOnlyForWebsocket(t *testing.T) {
	setupJWT(t)
	r := protectedRouter()
	tok, _ := GenerateToken(9, "dan", "user", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/p?token="+tok, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/p?token="+tok, nil)
	req.Header.Set("Upgrade", "websocket")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func setupAuth(t *testing.T, users ...user.User) *Auth {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	userRepo := mock.NewMockUserRepo(ctrl)
	known := map[uint]user.User{}
	for _, u := range users {
		known[u.UID] = u
	}
	userRepo.EXPECT().GetUserByID(gomock.Any()).DoAndReturn(func(id uint) (user.User, error) {
		u, ok := known[id]
		if !ok {
			return user.User{}, gorm.ErrRecordNotFound
		}
		return u, nil
	}).AnyTimes()
	return NewAuth(&repository.Repos{User: userRepo})
}

func doGet(r *gin.Engine, tok string) int {
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestAuthRoles(t *testing.T) {
	setupJWT(t)
	auth := setupAuth(t,
		user.User{UID: 1, Username: "admin", Role: "admin", Active: true},
		user.User{UID: 2, Username: "m", Role: "manager", Active: true},
		user.User{UID: 3, Username: "u", Role: "user", Active: true},
	)
	admin, _ := GenerateToken(1, "admin", "admin", time.Hour)
	mgr, _ := GenerateToken(2, "m", "manager", time.Hour)
	usr, _ := GenerateToken(3, "u", "user", time.Hour)

	adminOnly := protectedRouter(auth.Admin())
	elevated := protectedRouter(auth.Elevated())

	assert.Equal(t, http.StatusOK, doGet(adminOnly, admin))
	assert.Equal(t, http.StatusForbidden, doGet(adminOnly, mgr))
	assert.Equal(t, http.StatusOK, doGet(elevated, mgr))
	assert.Equal(t, http.StatusForbidden, doGet(elevated, usr))
}

func TestAuthRoles_UseStoredRole(t *testing.T) {
	setupJWT(t)
	auth := setupAuth(t,
		user.User{UID: 7, Username: "demoted", Role: "user", Active: true},
		user.User{UID: 8, Username: "disabled", Role: "admin", Active: false},
		user.User{UID: 9, Username: "promoted", Role: "manager", Active: true},
	)
	demoted, _ := GenerateToken(7, "demoted", "admin", time.Hour)
	disabled, _ := GenerateToken(8, "disabled", "admin", time.Hour)
	promoted, _ := GenerateToken(9, "promoted", "user", time.Hour)
	deleted, _ := GenerateToken(42, "gone", "admin", time.Hour)

	adminOnly := protectedRouter(auth.Admin())
	elevated := protectedRouter(auth.Elevated())

	assert.Equal(t, http.StatusForbidden, doGet(adminOnly, demoted))
	assert.Equal(t, http.StatusForbidden, doGet(elevated, demoted))
	assert.Equal(t, http.StatusForbidden, doGet(adminOnly, disabled))
	assert.Equal(t, http.StatusOK, doGet(elevated, promoted))
	assert.Equal(t, http.StatusUnauthorized, doGet(adminOnly, deleted))
}

func TestAllowOrigin(t *testing.T) {
	oldOrigins, oldProd := config.CORSOrigins, config.IsProduction
	t.Cleanup(func() { config.CORSOrigins, config.IsProduction = oldOrigins, oldProd })

	config.CORSOrigins = []string{"https://desk.example.com"}
	config.IsProduction = true
	assert.True(t, AllowOrigin("https://desk.example.com"))
	assert.False(t, AllowOrigin("http://localhost:5173"))

	config.IsProduction = false
	assert.True(t, AllowOrigin("http://localhost:5173"))
	assert.False(t, AllowOrigin("https://evil.example.com"))
}
