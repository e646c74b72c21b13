package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-reservation-api/models"
	"hotel-reservation-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(permission string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{RequireAuth()}
	if permission != "" {
		handlers = append(handlers, RequirePermission(permission))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("role")})
	})
	r.GET("/protected", handlers...)
	return r
}

func request(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingHeader(t *testing.T) {
	w := request(newAuthTestRouter(""), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthBadFormat(t *testing.T) {
	w := request(newAuthTestRouter(""), "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = request(newAuthTestRouter(""), "Bearer")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	w := request(newAuthTestRouter(""), "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	token, err := utils.GenerateToken(1, "admin@hotel.local", models.RoleAdmin)
	require.NoError(t, err)

	w := request(newAuthTestRouter(""), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), models.RoleAdmin)
}

func TestRequirePermissionDenied(t *testing.T) {
	token, err := utils.GenerateToken(2, "staff@hotel.local", models.RoleStaff)
	require.NoError(t, err)

	w := request(newAuthTestRouter(models.PermAdminsProvision), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequirePermissionGranted(t *testing.T) {
	token, err := utils.GenerateToken(3, "manager@hotel.local", models.RoleManager)
	require.NoError(t, err)

	w := request(newAuthTestRouter(models.PermRoomsManage), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
