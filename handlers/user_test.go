package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	userRepoPkg "medibook/database/repository/user"
	"medibook/middleware"
	"medibook/models"
	"medibook/services/doctor"
	"medibook/services/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

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

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	return append([]models.User(nil), f.users...), nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	u.ID = primitive.NewObjectID()
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) PromoteToAdmin(ctx context.Context, id string) (*userRepoPkg.PromotionResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, userRepoPkg.ErrInvalidID
	}
	return &userRepoPkg.PromotionResult{Acknowledged: true, ModifiedCount: 1}, nil
}

type fakeDoctorRepo struct {
	doctors []models.Doctor
}

func (f *fakeDoctorRepo) GetAll(ctx context.Context) ([]models.Doctor, error) {
	return append([]models.Doctor(nil), f.doctors...), nil
}

func (f *fakeDoctorRepo) Create(ctx context.Context, d *models.Doctor) error {
	d.ID = primitive.NewObjectID()
	f.doctors = append(f.doctors, *d)
	return nil
}

func (f *fakeDoctorRepo) Delete(ctx context.Context, id string) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, nil
	}
	for i, d := range f.doctors {
		if d.ID.Hex() == id {
			f.doctors = append(f.doctors[:i], f.doctors[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func TestGetJWT(t *testing.T) {
	users := &fakeUserRepo{users: []models.User{{Email: "jane@example.com"}}}
	h := NewUserHandler(&user.DefaultUserService{Repo: users})
	r := gin.New()
	r.GET("/jwt", h.GetJWT)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jwt?email=jane@example.com", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "accessToken")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jwt?email=ghost@example.com", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"accessToken":""}`, w.Body.String())
}

func TestGetUserAdminByEmail(t *testing.T) {
	users := &fakeUserRepo{users: []models.User{
		{Email: "admin@example.com", Role: models.RoleAdmin},
		{Email: "jane@example.com", Role: models.RoleStandard},
	}}
	h := NewUserHandler(&user.DefaultUserService{Repo: users})
	r := gin.New()
	r.GET("/users/admin/:email", h.GetUserAdminByEmail)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/admin/admin@example.com", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isAdmin":true}`, w.Body.String())

	for _, email := range []string{"jane@example.com", "ghost@example.com"} {
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/admin/"+email, nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"isAdmin":false}`, w.Body.String())
	}
}

func TestGetDoctorsAdminGate(t *testing.T) {
	users := &fakeUserRepo{users: []models.User{
		{Email: "admin@example.com", Role: models.RoleAdmin},
		{Email: "jane@example.com", Role: models.RoleStandard},
	}}
	doctors := &fakeDoctorRepo{doctors: []models.Doctor{
		{ID: primitive.NewObjectID(), Name: "Dr. Smith", Email: "smith@example.com"},
	}}
	h := NewDoctorHandler(&doctor.DefaultDoctorService{Repo: doctors})
	r := gin.New()
	r.GET("/doctors", middleware.VerifyJWT(), middleware.VerifyAdmin(users), h.GetDoctors)

	// No token at all.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/doctors", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token, standard role.
	req := httptest.NewRequest(http.MethodGet, "/doctors", nil)
	req.Header.Set("Authorization", bearerFor(t, "jane@example.com"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Valid token, admin role.
	req = httptest.NewRequest(http.MethodGet, "/doctors", nil)
	req.Header.Set("Authorization", bearerFor(t, "admin@example.com"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dr. Smith")
}
