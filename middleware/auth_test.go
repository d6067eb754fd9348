package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hoteldash-backend/models"
	"hoteldash-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func newGatedRouter(roles ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/", RequireAuth(testSecret))
	if len(roles) > 0 {
		group.Use(RequireRoles(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingToken(t *testing.T) {
	w := doRequest(newGatedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthBadToken(t *testing.T) {
	w := doRequest(newGatedRouter(), "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	token, err := utils.GenerateToken(testSecret, 1, models.RoleAdmin)
	require.NoError(t, err)

	w := doRequest(newGatedRouter(), token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles(t *testing.T) {
	router := newGatedRouter(models.RoleAdmin, models.RoleReceptionist)

	token, err := utils.GenerateToken(testSecret, 1, models.RoleReceptionist)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, doRequest(router, token).Code)

	token, err = utils.GenerateToken(testSecret, 2, models.RoleKitchen)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, doRequest(router, token).Code)
}
