package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medibook/config"
	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.AppConfig.JWTSecret = "test-secret"
}

func authRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", VerifyJWT(), func(c *gin.Context) {
		email, _ := DecodedEmail(c)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	return r
}

func doRequest(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"email": "jane@example.com", "exp": exp.Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestVerifyJWTMissingHeader(t *testing.T) {
	w := doRequest(authRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyJWTMalformedHeader(t *testing.T) {
	valid, err := utils.GenerateToken("jane@example.com")
	require.NoError(t, err)

	for name, header := range map[string]string{
		"wrong scheme":  "Basic " + valid,
		"no scheme":     valid,
		"extra token":   "Bearer " + valid + " trailing",
		"scheme only":   "Bearer",
		"empty bearing": "Bearer  ",
	} {
		w := doRequest(authRouter(), header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}

func TestVerifyJWTValidToken(t *testing.T) {
	token, err := utils.GenerateToken("jane@example.com")
	require.NoError(t, err)

	w := doRequest(authRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"jane@example.com"}`, w.Body.String())
}

func TestVerifyJWTExpiredToken(t *testing.T) {
	token := signToken(t, config.AppConfig.JWTSecret, time.Now().Add(-time.Hour))

	w := doRequest(authRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyJWTWrongSignature(t *testing.T) {
	token := signToken(t, "some-other-secret", time.Now().Add(time.Hour))

	w := doRequest(authRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]models.User, error) { return f.users, nil }

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) error { return nil }

func (f *fakeUserRepo) PromoteToAdmin(ctx context.Context, id string) (*userRepo.PromotionResult, error) {
	return &userRepo.PromotionResult{Acknowledged: true}, nil
}

func adminRouter(users userRepo.UserRepository) *gin.Engine {
	r := gin.New()
	r.GET("/protected", VerifyJWT(), VerifyAdmin(users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestVerifyAdminAllowsAdmin(t *testing.T) {
	users := &fakeUserRepo{users: []models.User{{Email: "jane@example.com", Role: models.RoleAdmin}}}
	token, err := utils.GenerateToken("jane@example.com")
	require.NoError(t, err)

	w := doRequest(adminRouter(users), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVerifyAdminRejectsStandardUser(t *testing.T) {
	users := &fakeUserRepo{users: []models.User{{Email: "jane@example.com", Role: models.RoleStandard}}}
	token, err := utils.GenerateToken("jane@example.com")
	require.NoError(t, err)

	w := doRequest(adminRouter(users), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVerifyAdminRejectsUnknownUser(t *testing.T) {
	token, err := utils.GenerateToken("ghost@example.com")
	require.NoError(t, err)

	w := doRequest(adminRouter(&fakeUserRepo{}), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVerifyAdminWithoutIdentityIsUnauthorized(t *testing.T) {
	// Admin gate reached without VerifyJWT having run.
	r := gin.New()
	r.GET("/broken", VerifyAdmin(&fakeUserRepo{}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/broken", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
