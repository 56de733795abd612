package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"clinic-appointment-server/internal/config"
	"clinic-appointment-server/internal/models"
	"clinic-appointment-server/internal/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                 "access-secret",
		JWTRefreshSecret:          "refresh-secret",
		JWTExpirationMinutes:      15,
		JWTRefreshExpirationHours: 1,
	}
}

// doctorGatedRouter mirrors the /doctors group wiring: auth first, then the
// role gate.
func doctorGatedRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	doctorRoutes := router.Group("/doctors")
	doctorRoutes.Use(AuthMiddleware(cfg), RoleAuthMiddleware(models.RoleDoctor))
	doctorRoutes.GET("/view", func(c *gin.Context) {
		id, _ := GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	return router
}

func accessTokenFor(t *testing.T, role models.Role, cfg *config.Config) string {
	t.Helper()
	access, _, err := utils.GenerateTokens(7, role, cfg)
	if err != nil {
		t.Fatalf("GenerateTokens: %v", err)
	}
	return access
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	router := doctorGatedRouter(testConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/doctors/view", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router := doctorGatedRouter(testConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/doctors/view", nil)
	req.Header.Set("Authorization", "Token abc.def.ghi")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a non-bearer header, got %d", rec.Code)
	}
}

func TestAuthMiddleware_BadSignature(t *testing.T) {
	cfg := testConfig()
	router := doctorGatedRouter(cfg)

	other := testConfig()
	other.JWTSecret = "some-other-secret"
	token := accessTokenFor(t, models.RoleDoctor, other)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/doctors/view", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a foreign signature, got %d", rec.Code)
	}
}

func TestRoleAuthMiddleware_WrongRole(t *testing.T) {
	cfg := testConfig()
	router := doctorGatedRouter(cfg)
	token := accessTokenFor(t, models.RolePatient, cfg)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/doctors/view", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a patient token on a doctor route, got %d", rec.Code)
	}
}

func TestRoleAuthMiddleware_AllowedRole(t *testing.T) {
	cfg := testConfig()
	router := doctorGatedRouter(cfg)
	token := accessTokenFor(t, models.RoleDoctor, cfg)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/doctors/view", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for a doctor token, got %d (body %s)", rec.Code, rec.Body.String())
	}
}
