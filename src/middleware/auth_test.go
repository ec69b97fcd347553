package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setTestSecret(t *testing.T) {
	t.Helper()
	originalSecret := JWTSecret
	if err := SetJWTSecret("test-secret-for-unit-tests-32ch!"); err != nil {
		t.Fatalf("SetJWTSecret failed: %v", err)
	}
	t.Cleanup(func() { JWTSecret = originalSecret })
}

func TestSetJWTSecretRejectsWeakSecrets(t *testing.T) {
	if err := SetJWTSecret(""); err == nil {
		t.Error("expected error for empty secret")
	}
	if err := SetJWTSecret("too-short"); err == nil {
		t.Error("expected error for short secret")
	}
}

func TestGenerateAndValidateAdminToken(t *testing.T) {
	setTestSecret(t)

	token, err := GenerateAdminToken(7, "testadmin", true)
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateAdminToken(token)
	if err != nil {
		t.Fatalf("ValidateAdminToken failed: %v", err)
	}
	if claims.AdminID != 7 {
		t.Errorf("expected admin_id 7, got %d", claims.AdminID)
	}
	if claims.Username != "testadmin" {
		t.Errorf("expected username testadmin, got %s", claims.Username)
	}
	if !claims.IsSuperAdmin {
		t.Error("expected is_super_admin true")
	}
}

func TestAdminAuthMiddleware_MissingToken(t *testing.T) {
	setTestSecret(t)
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	_, router := gin.CreateTestContext(w)
	router.Use(AdminAuthMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 for missing token, got %d", w.Code)
	}
}

func TestAdminAuthMiddleware_InvalidToken(t *testing.T) {
	setTestSecret(t)
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	_, router := gin.CreateTestContext(w)
	router.Use(AdminAuthMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid_token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status 403 for invalid token, got %d", w.Code)
	}
}

func TestAdminAuthMiddleware_ValidToken(t *testing.T) {
	setTestSecret(t)
	gin.SetMode(gin.TestMode)

	token, err := GenerateAdminToken(7, "testadmin", false)
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}

	w := httptest.NewRecorder()
	_, router := gin.CreateTestContext(w)
	router.Use(AdminAuthMiddleware())
	router.GET("/test", func(c *gin.Context) {
		adminID, _ := c.Get("admin_id")
		username, _ := c.Get("username")
		c.JSON(http.StatusOK, gin.H{
			"admin_id": adminID,
			"username": username,
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireSuperAdmin(t *testing.T) {
	setTestSecret(t)
	gin.SetMode(gin.TestMode)

	run := func(isSuper bool) int {
		token, err := GenerateAdminToken(7, "testadmin", isSuper)
		if err != nil {
			t.Fatalf("GenerateAdminToken failed: %v", err)
		}

		w := httptest.NewRecorder()
		_, router := gin.CreateTestContext(w)
		router.Use(AdminAuthMiddleware(), RequireSuperAdmin())
		router.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		return w.Code
	}

	if code := run(false); code != http.StatusForbidden {
		t.Errorf("expected status 403 for regular admin, got %d", code)
	}
	if code := run(true); code != http.StatusOK {
		t.Errorf("expected status 200 for super admin, got %d", code)
	}
}

func TestActorFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	c.Set("admin_id", 7)
	c.Set("username", "testadmin")

	actor := ActorFromContext(c)
	if actor.ID != 7 {
		t.Errorf("expected actor ID 7, got %d", actor.ID)
	}
	if actor.Username != "testadmin" {
		t.Errorf("expected username testadmin, got %s", actor.Username)
	}
	if actor.IP == "" {
		t.Error("expected a client IP")
	}
}
