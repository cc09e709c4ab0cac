package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/solucioning/fleetforms/config"
	"github.com/solucioning/fleetforms/models"
	"github.com/stretchr/testify/assert"
)

func setupJWT(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JwtSecret = "test-secret"
	Init()
}

func TestGenerateAndParseToken(t *testing.T) {
	setupJWT(t)

	token, err := GenerateToken(7, "laura", models.RoleTrafficChief, time.Hour)
	assert.NoError(t, err)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "laura", claims.Username)
	assert.Equal(t, models.RoleTrafficChief, claims.Role)
}

func TestParseToken_Expired(t *testing.T) {
	setupJWT(t)

	token, err := GenerateToken(7, "laura", models.RoleTrafficChief, -time.Minute)
	assert.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_WrongKey(t *testing.T) {
	setupJWT(t)
	token, err := GenerateToken(7, "laura", models.RoleTrafficChief, time.Hour)
	assert.NoError(t, err)

	config.JwtSecret = "other-secret"
	Init()
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func protectedRouter(roles ...models.UserRole) *gin.Engine {
	r := gin.New()
	group := r.Group("/", JWTAuthMiddleware())
	if len(roles) > 0 {
		group.Use(RequireRole(roles...))
	}
	group.GET("/protegido", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	setupJWT(t)
	r := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_BadScheme(t *testing.T) {
	setupJWT(t)
	r := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Basic abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_Gates(t *testing.T) {
	setupJWT(t)
	r := protectedRouter(models.RoleOperationsChief)

	supervisorToken, _ := GenerateToken(1, "laura", models.RoleTrafficChief, time.Hour)
	managerToken, _ := GenerateToken(2, "ops", models.RoleOperationsChief, time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+supervisorToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+managerToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
