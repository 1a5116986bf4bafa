package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/testutils"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/testutils/apptest"
)

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "jwt" {
			return c
		}
	}
	return nil
}

func TestRegister(t *testing.T) {
	deps := apptest.NewDeps(t, nil)
	r := apptest.Router(deps, RegisterRoutes)

	tests := []struct {
		name       string
		body       map[string]string
		wantStatus int
		wantError  string
	}{
		{
			name:       "student with student domain",
			body:       map[string]string{"name": "Alice", "email": "Alice@Student.BelgiumCampus.ac.za", "password": "Passw0rdOK"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "tutor with staff domain",
			body:       map[string]string{"name": "Tom", "email": "tom@belgiumcampus.ac.za", "password": "Passw0rdOK", "role": "tutor"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "student with staff domain",
			body:       map[string]string{"name": "Sam", "email": "sam@belgiumcampus.ac.za", "password": "Passw0rdOK"},
			wantStatus: http.StatusBadRequest,
			wantError:  "email domain is not allowed for role student",
		},
		{
			name:       "tutor with student domain",
			body:       map[string]string{"name": "Tia", "email": "tia@student.belgiumcampus.ac.za", "password": "Passw0rdOK", "role": "tutor"},
			wantStatus: http.StatusBadRequest,
			wantError:  "email domain is not allowed for role tutor",
		},
		{
			name:       "foreign domain",
			body:       map[string]string{"name": "Eve", "email": "eve@gmail.com", "password": "Passw0rdOK"},
			wantStatus: http.StatusBadRequest,
			wantError:  "email domain is not allowed",
		},
		{
			name:       "duplicate email in another case",
			body:       map[string]string{"name": "Alice Two", "email": "ALICE@student.belgiumcampus.ac.za", "password": "Passw0rdOK"},
			wantStatus: http.StatusConflict,
			wantError:  "email already registered",
		},
		{
			name:       "weak password",
			body:       map[string]string{"name": "Bob", "email": "bob@student.belgiumcampus.ac.za", "password": "password"},
			wantStatus: http.StatusBadRequest,
			wantError:  "password must contain",
		},
		{
			name:       "short password",
			body:       map[string]string{"name": "Bob", "email": "bob@student.belgiumcampus.ac.za", "password": "Ab1"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown role",
			body:       map[string]string{"name": "Bob", "email": "bob@student.belgiumcampus.ac.za", "password": "Passw0rdOK", "role": "root"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing name",
			body:       map[string]string{"email": "bob@student.belgiumcampus.ac.za", "password": "Passw0rdOK"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := apptest.Request(t, r, http.MethodPost, "/api/auth/register", tt.body, "")
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantError != "" {
				assert.Contains(t, apptest.ErrorMessage(t, w), tt.wantError)
			}
			assert.Nil(t, sessionCookie(w), "registration never signs in")
		})
	}

	var count int64
	deps.DB.Model(&userModel.User{}).Count(&count)
	assert.Equal(t, int64(2), count, "rejected registrations create no user")

	var alice userModel.User
	require.NoError(t, deps.DB.Where("email = ?", "alice@student.belgiumcampus.ac.za").First(&alice).Error)
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, userModel.RoleStudent, alice.Role)
	assert.True(t, strings.HasPrefix(alice.PasswordHash, "$2a$12$"), "bcrypt cost 12")
}

func TestLogin(t *testing.T) {
	deps := apptest.NewDeps(t, nil)
	r := apptest.Router(deps, RegisterRoutes)
	u := testutils.CreateTestUser(deps.DB, testutils.WithEmail("alice@student.belgiumcampus.ac.za"))

	t.Run("success sets session cookie", func(t *testing.T) {
		w := apptest.Request(t, r, http.MethodPost, "/api/auth/login",
			map[string]string{"email": " ALICE@student.belgiumcampus.ac.za ", "password": testutils.DefaultPassword}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		cookie := sessionCookie(w)
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
		assert.False(t, cookie.Secure, "secure only in production")
		assert.Equal(t, 3600, cookie.MaxAge)

		resp := apptest.Data[LoginResponse](t, w)
		assert.Equal(t, u.ID, resp.User.ID)
		assert.NotContains(t, w.Body.String(), "password")

		identity, err := deps.Tokens.Verify(cookie.Value)
		require.NoError(t, err)
		assert.Equal(t, u.ID, identity.UserID)
		assert.Equal(t, userModel.RoleStudent, identity.Role)
	})

	t.Run("wrong password and unknown email look identical", func(t *testing.T) {
		wrong := apptest.Request(t, r, http.MethodPost, "/api/auth/login",
			map[string]string{"email": "alice@student.belgiumcampus.ac.za", "password": "Wrong1234"}, "")
		unknown := apptest.Request(t, r, http.MethodPost, "/api/auth/login",
			map[string]string{"email": "nobody@student.belgiumcampus.ac.za", "password": "Wrong1234"}, "")

		assert.Equal(t, http.StatusUnauthorized, wrong.Code)
		assert.Equal(t, wrong.Code, unknown.Code)
		assert.JSONEq(t, wrong.Body.String(), unknown.Body.String())
		assert.Equal(t, "Invalid email or password", apptest.ErrorMessage(t, wrong))
		assert.Nil(t, sessionCookie(wrong))
	})
}

func TestMeAndLogout(t *testing.T) {
	deps := apptest.NewDeps(t, nil)
	r := apptest.Router(deps, RegisterRoutes)
	tutor := testutils.CreateTestUser(deps.DB, testutils.WithRole(userModel.RoleTutor))

	w := apptest.Request(t, r, http.MethodGet, "/api/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = apptest.Request(t, r, http.MethodGet, "/api/auth/me", nil, apptest.Token(t, deps, tutor.ID, tutor.Role))
	require.Equal(t, http.StatusOK, w.Code)
	me := apptest.Data[MeResponse](t, w)
	assert.Equal(t, tutor.Email, me.User.Email)
	assert.Equal(t, "/tutor", me.LandingPath)

	w = apptest.Request(t, r, http.MethodPost, "/api/auth/logout", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestAuthRateLimit(t *testing.T) {
	cfg := apptest.Config(t)
	cfg.RateLimit.AuthRequests = 2
	deps := apptest.NewDeps(t, cfg)
	r := apptest.Router(deps, RegisterRoutes)

	body := map[string]string{"email": "x@student.belgiumcampus.ac.za", "password": "Wrong1234"}
	for i := 0; i < 2; i++ {
		w := apptest.Request(t, r, http.MethodPost, "/api/auth/login", body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
	w := apptest.Request(t, r, http.MethodPost, "/api/auth/login", body, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestDomainPolicy(t *testing.T) {
	p := DomainPolicy{
		StudentDomains: []string{"student.belgiumcampus.ac.za"},
		StaffDomains:   []string{"belgiumcampus.ac.za"},
	}
	assert.True(t, p.Allows("student", "a@student.belgiumcampus.ac.za"))
	assert.False(t, p.Allows("student", "a@belgiumcampus.ac.za"))
	assert.True(t, p.Allows("admin", "a@belgiumcampus.ac.za"))
	assert.False(t, p.Allows("admin", "a@evilbelgiumcampus.ac.za"))
	assert.False(t, p.Allows("tutor", "no-at-sign"))
}
