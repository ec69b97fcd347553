package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/debreiyesus/church-server/src/database"
	"github.com/debreiyesus/church-server/src/repositories/mock"
	"github.com/debreiyesus/church-server/src/services"
)

func newHealthHandler(db *database.Database, configured bool) *HealthHandler {
	var sender services.SMSSender
	if configured {
		sender = services.NewGatewaySMSClient("http://localhost:9", "key", "TEST")
	}
	smsService := services.NewSMSService(mock.NewSmsRepository(), sender, 0.16)
	return NewHealthHandler(db, smsService)
}

func TestHandleHealth_Success(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		gin.SetMode(gin.TestMode)
		w, c := createTestContext()
		c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

		db := database.NewDatabaseFromPool(tdb.Pool)
		handler := newHealthHandler(db, false)

		handler.HandleHealth(c)

		assertStatusCode(t, w, http.StatusOK)

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if response["status"] != "ok" {
			t.Errorf("expected status 'ok', got %v", response["status"])
		}
		if response["database"] != "connected" {
			t.Errorf("expected database 'connected', got %v", response["database"])
		}
		if response["sms"] != "disabled" {
			t.Errorf("expected sms 'disabled', got %v", response["sms"])
		}
		if _, ok := response["uptime"]; !ok {
			t.Error("expected uptime field")
		}
	})
}

func TestHandleHealth_ReportsSMSEnabled(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		gin.SetMode(gin.TestMode)
		w, c := createTestContext()
		c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

		db := database.NewDatabaseFromPool(tdb.Pool)
		handler := newHealthHandler(db, true)

		handler.HandleHealth(c)

		assertStatusCode(t, w, http.StatusOK)

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if response["sms"] != "enabled" {
			t.Errorf("expected sms 'enabled', got %v", response["sms"])
		}
	})
}

func TestHandleHealth_DBError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w, c := createTestContext()
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	db := database.NewDatabaseFromPool(nil) // nil pool = DB error
	handler := newHealthHandler(db, false)

	handler.HandleHealth(c)

	assertStatusCode(t, w, http.StatusServiceUnavailable)

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response["status"] != "unhealthy" {
		t.Errorf("expected status 'unhealthy', got %v", response["status"])
	}
	if response["database"] != "disconnected" {
		t.Errorf("expected database 'disconnected', got %v", response["database"])
	}
}

func TestHandleReady(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		gin.SetMode(gin.TestMode)
		w, c := createTestContext()
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		db := database.NewDatabaseFromPool(tdb.Pool)
		handler := newHealthHandler(db, false)

		handler.HandleReady(c)

		assertStatusCode(t, w, http.StatusOK)
	})
}

func TestHandleReady_DBError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w, c := createTestContext()
	c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

	db := database.NewDatabaseFromPool(nil)
	handler := newHealthHandler(db, false)

	handler.HandleReady(c)

	assertStatusCode(t, w, http.StatusServiceUnavailable)

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response["ready"] != false {
		t.Errorf("expected ready false, got %v", response["ready"])
	}
}
