package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsuruKaushika/UNITUNES-sub000/config"
	"github.com/IsuruKaushika/UNITUNES-sub000/ownership"
	"github.com/IsuruKaushika/UNITUNES-sub000/utils"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: []byte("test-secret"), AdminID: "admin"}
}

func okHandler(t *testing.T, wantID string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFrom(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantID, p.ID)
		w.Write([]byte(`{"success":true}`))
	})
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthMissingToken(t *testing.T) {
	handler := Auth(testConfig())(okHandler(t, ""))

	req := httptest.NewRequest(http.MethodPost, "/api/boarding/add", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Not Authorized Login Again", body["message"])
}

func TestAuthTokenHeader(t *testing.T) {
	cfg := testConfig()
	tokenStr, err := utils.GenerateJWT(cfg.JWTSecret, "S1", ownership.RoleStudent)
	require.NoError(t, err)

	handler := Auth(cfg)(okHandler(t, "S1"))

	req := httptest.NewRequest(http.MethodPost, "/api/boarding/add", nil)
	req.Header.Set("token", tokenStr)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, true, decodeEnvelope(t, rec)["success"])
}

func TestAuthBearerHeader(t *testing.T) {
	cfg := testConfig()
	tokenStr, err := utils.GenerateJWT(cfg.JWTSecret, "P1", ownership.RoleServiceProvider)
	require.NoError(t, err)

	handler := Auth(cfg)(okHandler(t, "P1"))

	req := httptest.NewRequest(http.MethodPost, "/api/boarding/add", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, true, decodeEnvelope(t, rec)["success"])
}

func TestAuthTamperedToken(t *testing.T) {
	cfg := testConfig()
	tokenStr, err := utils.GenerateJWT([]byte("other-secret"), "S1", ownership.RoleStudent)
	require.NoError(t, err)

	handler := Auth(cfg)(okHandler(t, "S1"))

	req := httptest.NewRequest(http.MethodPost, "/api/boarding/add", nil)
	req.Header.Set("token", tokenStr)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, false, decodeEnvelope(t, rec)["success"])
}

func TestRequireAdmin(t *testing.T) {
	cfg := testConfig()

	adminToken, err := utils.GenerateJWT(cfg.JWTSecret, cfg.AdminID, ownership.RoleAdmin)
	require.NoError(t, err)
	studentToken, err := utils.GenerateJWT(cfg.JWTSecret, "S1", ownership.RoleStudent)
	require.NoError(t, err)

	handler := RequireAdmin(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/taxi/add", nil)
	req.Header.Set("token", adminToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, true, decodeEnvelope(t, rec)["success"])

	req = httptest.NewRequest(http.MethodPost, "/api/taxi/add", nil)
	req.Header.Set("token", studentToken)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Admin access only", body["message"])
}
