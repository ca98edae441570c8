package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"hostel-backend/config"
	"hostel-backend/controllers"
	"hostel-backend/middleware"
	"hostel-backend/models"
	"hostel-backend/routes"
	"hostel-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var apiTestSeq atomic.Int64

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:api_test_%d?mode=memory&cache=shared", apiTestSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("newTestServer() open failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("newTestServer() pool failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&models.Admin{}, &models.Room{}, &models.Hosteler{}, &models.Payment{}); err != nil {
		t.Fatalf("newTestServer() migrate failed: %v", err)
	}

	cfg := &config.Config{
		CORSOrigins:  []string{"*"},
		JWTSecretKey: "test-secret",
		TokenExpiry:  time.Hour,
	}

	tokenService := services.NewTokenService(cfg)
	adminService := services.NewAdminService(db)
	roomService := services.NewRoomService(db)
	hostelerService := services.NewHostelerService(db)
	exportService := services.NewExportService(hostelerService)

	authController := controllers.NewAuthController(adminService, tokenService, cfg)
	adminController := controllers.NewAdminController(adminService, exportService)
	roomController := controllers.NewRoomController(roomService)
	hostelerController := controllers.NewHostelerController(hostelerService)

	verifyJWT := middleware.VerifyJWT(tokenService, adminService)
	return routes.SetupRouter(cfg, authController, adminController, roomController, hostelerController, verifyJWT)
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("doRequest() encode failed: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec, env
}

func registerAndLogin(t *testing.T, r *gin.Engine) string {
	t.Helper()

	rec, _ := doRequest(t, r, http.MethodPost, "/api/v1/admin/register", "", gin.H{
		"fullName": "Admin User",
		"email":    "admin@example.com",
		"username": "adminone",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doRequest(t, r, http.MethodPost, "/api/v1/admin/login", "", gin.H{
		"username": "adminone",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.AccessToken)
	return data.AccessToken
}

func TestAdminRegisterAndLogin(t *testing.T) {
	r := newTestServer(t)

	rec, env := doRequest(t, r, http.MethodPost, "/api/v1/admin/register", "", gin.H{
		"fullName": "Admin User",
		"email":    "admin@example.com",
		"username": "AdminOne",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.NotContains(t, string(env.Data), "secret123")
	assert.NotContains(t, strings.ToLower(string(env.Data)), `"password"`)

	t.Run("duplicate registration", func(t *testing.T) {
		rec, env := doRequest(t, r, http.MethodPost, "/api/v1/admin/register", "", gin.H{
			"fullName": "Someone Else",
			"email":    "admin@example.com",
			"username": "othername",
			"password": "secret123",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("login sets the access token cookie", func(t *testing.T) {
		rec, env := doRequest(t, r, http.MethodPost, "/api/v1/admin/login", "", gin.H{
			"username": "adminone",
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)

		cookie := rec.Header().Get("Set-Cookie")
		assert.Contains(t, cookie, "accessToken=")
		assert.Contains(t, cookie, "HttpOnly")
	})

	t.Run("wrong password gets 401 and no cookie", func(t *testing.T) {
		rec, env := doRequest(t, r, http.MethodPost, "/api/v1/admin/login", "", gin.H{
			"username": "adminone",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, env.Success)
		assert.Empty(t, rec.Header().Get("Set-Cookie"))
	})

	t.Run("missing identifier", func(t *testing.T) {
		rec, _ := doRequest(t, r, http.MethodPost, "/api/v1/admin/login", "", gin.H{
			"password": "secret123",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown admin", func(t *testing.T) {
		rec, _ := doRequest(t, r, http.MethodPost, "/api/v1/admin/login", "", gin.H{
			"username": "nobody",
			"password": "secret123",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	r := newTestServer(t)

	t.Run("no token", func(t *testing.T) {
		rec, env := doRequest(t, r, http.MethodGet, "/api/v1/hosteler/all", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec, _ := doRequest(t, r, http.MethodGet, "/api/v1/hosteler/all", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token passes", func(t *testing.T) {
		token := registerAndLogin(t, r)
		rec, _ := doRequest(t, r, http.MethodGet, "/api/v1/hosteler/all", token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("token via cookie", func(t *testing.T) {
		rec, _ := doRequest(t, r, http.MethodPost, "/api/v1/admin/login", "", gin.H{
			"username": "adminone",
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/hosteler/all", nil)
		for _, c := range rec.Result().Cookies() {
			req.AddCookie(c)
		}
		rec2 := httptest.NewRecorder()
		r.ServeHTTP(rec2, req)
		assert.Equal(t, http.StatusOK, rec2.Code)
	})

	t.Run("logout clears the cookie", func(t *testing.T) {
		token := registerAndLogin2(t, r, "second", "second@example.com")
		rec, _ := doRequest(t, r, http.MethodPost, "/api/v1/admin/logout", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "accessToken=;")
	})
}

// registerAndLogin2 registers a distinct admin; the shared server already
// holds "adminone" after the first login helper ran.
func registerAndLogin2(t *testing.T, r *gin.Engine, username, email string) string {
	t.Helper()

	rec, _ := doRequest(t, r, http.MethodPost, "/api/v1/admin/register", "", gin.H{
		"fullName": "Another Admin",
		"email":    email,
		"username": username,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doRequest(t, r, http.MethodPost, "/api/v1/admin/login", "", gin.H{
		"username": username,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.AccessToken
}

func TestRoomAndHostelerFlow(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r)

	rec, env := doRequest(t, r, http.MethodPost, "/api/v1/room/registerroom", token, gin.H{
		"roomNumber": 101,
		"price":      5000,
		"capacity":   2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var room models.Room
	require.NoError(t, json.Unmarshal(env.Data, &room))

	t.Run("duplicate room", func(t *testing.T) {
		rec, _ := doRequest(t, r, http.MethodPost, "/api/v1/room/registerroom", token, gin.H{
			"roomNumber": 101,
			"price":      4000,
			"capacity":   3,
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("fill the room", func(t *testing.T) {
		rec, _ := doRequest(t, r, http.MethodPost, "/api/v1/hosteler/register", token, gin.H{
			"name": "Alice", "phoneNumber": "9000000001", "roomAllocated": 101,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec, env := doRequest(t, r, http.MethodGet, "/api/v1/room/available-rooms", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var rooms []models.Room
		require.NoError(t, json.Unmarshal(env.Data, &rooms))
		require.Len(t, rooms, 1)
		assert.Equal(t, 1, rooms[0].Occupied)

		rec, _ = doRequest(t, r, http.MethodPost, "/api/v1/hosteler/register", token, gin.H{
			"name": "Bob", "phoneNumber": "9000000002", "roomAllocated": 101,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		// room is now full
		rec, env = doRequest(t, r, http.MethodPost, "/api/v1/hosteler/register", token, gin.H{
			"name": "Carol", "phoneNumber": "9000000003", "roomAllocated": 101,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, env.Message, "occupancy limit")

		rec, _ = doRequest(t, r, http.MethodGet, "/api/v1/room/available-rooms", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec, _ = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/v1/room/room-availability/%d", room.ID), token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("room deletion refused while occupied", func(t *testing.T) {
		rec, _ := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/room/%d", room.ID), token, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("hosteler detail and paid flow", func(t *testing.T) {
		rec, env := doRequest(t, r, http.MethodGet, "/api/v1/hosteler/all", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var all []services.HostelerDetails
		require.NoError(t, json.Unmarshal(env.Data, &all))
		require.Len(t, all, 2)
		aliceID := all[0].HostelerID

		rec, _ = doRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/hosteler/paid/%d", aliceID), token, gin.H{
			"paymentType": "Cheque",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec, _ = doRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/hosteler/paid/%d", aliceID), token, gin.H{
			"paymentType": "Upi",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec, env = doRequest(t, r, http.MethodGet, "/api/v1/hosteler/paid-hostelers/details", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var paid []models.Hosteler
		require.NoError(t, json.Unmarshal(env.Data, &paid))
		require.Len(t, paid, 1)

		rec, env = doRequest(t, r, http.MethodGet, "/api/v1/hosteler/unpaid-hostelers/details", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var unpaid []services.HostelerDetails
		require.NoError(t, json.Unmarshal(env.Data, &unpaid))
		require.Len(t, unpaid, 1)
		assert.Equal(t, "Bob", unpaid[0].Name)
	})

	t.Run("deleting a hosteler frees the room", func(t *testing.T) {
		rec, env := doRequest(t, r, http.MethodGet, "/api/v1/hosteler/all", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var all []services.HostelerDetails
		require.NoError(t, json.Unmarshal(env.Data, &all))

		rec, _ = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/hosteler/%d", all[0].HostelerID), token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec, _ = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/v1/room/room-availability/%d", room.ID), token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestExcelDownload(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r)

	t.Run("empty roster fails cleanly", func(t *testing.T) {
		rec, env := doRequest(t, r, http.MethodGet, "/api/v1/admin/excel-download", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("roster downloads as an attachment", func(t *testing.T) {
		rec, _ := doRequest(t, r, http.MethodPost, "/api/v1/room/registerroom", token, gin.H{
			"roomNumber": 101, "price": 5000, "capacity": 2,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		rec, _ = doRequest(t, r, http.MethodPost, "/api/v1/hosteler/register", token, gin.H{
			"name": "Alice", "phoneNumber": "9000000001", "roomAllocated": 101,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec, _ = doRequest(t, r, http.MethodGet, "/api/v1/admin/excel-download", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, services.ExcelMIMEType, rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "hostelers.xlsx")
		assert.NotZero(t, rec.Body.Len())
	})
}

func TestAdminAccountEndpoints(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r)

	t.Run("update account", func(t *testing.T) {
		rec, env := doRequest(t, r, http.MethodPatch, "/api/v1/admin/update-account", token, gin.H{
			"fullName": "Renamed Admin",
			"email":    "renamed@example.com",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var admin models.Admin
		require.NoError(t, json.Unmarshal(env.Data, &admin))
		assert.Equal(t, "Renamed Admin", admin.FullName)
	})

	t.Run("change password requires the old one", func(t *testing.T) {
		rec, _ := doRequest(t, r, http.MethodPost, "/api/v1/admin/change-password", token, gin.H{
			"oldPassword": "wrong",
			"newPassword": "newpassword",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec, _ = doRequest(t, r, http.MethodPost, "/api/v1/admin/change-password", token, gin.H{
			"oldPassword": "secret123",
			"newPassword": "newpassword",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete admin", func(t *testing.T) {
		rec, env := doRequest(t, r, http.MethodPost, "/api/v1/admin/register", "", gin.H{
			"fullName": "Second Admin",
			"email":    "second@example.com",
			"username": "second",
			"password": "secret123",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var victim models.Admin
		require.NoError(t, json.Unmarshal(env.Data, &victim))

		rec, _ = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/admin/%d", victim.ID), token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec, env = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/admin/%d", victim.ID), token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, env.Success)
	})
}
