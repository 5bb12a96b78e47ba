package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/application/service"
)

func (s *APITestSuite) Test_Login_Flow() {
	rrBad := s.do(http.MethodPost, "/api/auth/login", gin.H{"email": testAdminEmail, "password": "wrongpassword"}, "")
	s.Equal(http.StatusUnauthorized, rrBad.Code)
	env := s.decode(rrBad, nil)
	s.False(env.Success)
	s.Require().NotNil(env.Error)
	s.Equal("unauthorized", *env.Error)

	rrUnknown := s.do(http.MethodPost, "/api/auth/login", gin.H{"email": "nobody@example.com", "password": testAdminPassword}, "")
	s.Equal(http.StatusUnauthorized, rrUnknown.Code)

	token := s.login()

	rrAuth := s.do(http.MethodGet, "/api/portfolio/contact/unread-count", nil, token)
	s.Equal(http.StatusOK, rrAuth.Code)

	rrNoAuth := s.do(http.MethodGet, "/api/portfolio/contact/unread-count", nil, "")
	s.Equal(http.StatusUnauthorized, rrNoAuth.Code)
	s.False(s.decode(rrNoAuth, nil).Success)

	rrForged := s.do(http.MethodGet, "/api/portfolio/contact/unread-count", nil, "not.a.jwt")
	s.Equal(http.StatusUnauthorized, rrForged.Code)
}

func (s *APITestSuite) Test_Login_MissingFields() {
	rr := s.do(http.MethodPost, "/api/auth/login", gin.H{"email": testAdminEmail}, "")
	s.Equal(http.StatusBadRequest, rr.Code)
	env := s.decode(rr, nil)
	s.Equal("validation_failed", *env.Error)
}

func (s *APITestSuite) Test_Register_FirstProfileBecomesActive() {
	first := s.register("Ada Lovelace", "ada@example.com")
	s.True(first.IsActive)
	s.NotEqual(uuid.Nil, first.ID)
	s.False(first.CreatedAt.IsZero())

	second := s.register("Grace Hopper", "grace@example.com")
	s.False(second.IsActive)

	s.Eventually(func() bool { return s.Publisher.HasEvent(service.EventProfileCreated) }, time.Second, 10*time.Millisecond)
}

func (s *APITestSuite) Test_Register_DuplicateEmailConflicts() {
	s.register("Ada Lovelace", "ada@example.com")

	rr := s.do(http.MethodPost, "/api/auth/register", gin.H{"full_name": "Imposter", "email": "ada@example.com"}, "")
	s.Equal(http.StatusConflict, rr.Code)
	env := s.decode(rr, nil)
	s.Equal("conflict", *env.Error)
	s.Contains(env.Message, "ada@example.com")
	s.Equal("null", string(env.Data))
}

func (s *APITestSuite) Test_Register_Validation() {
	rr := s.do(http.MethodPost, "/api/auth/register", gin.H{"full_name": "", "email": "bad"}, "")
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal("validation_failed", *s.decode(rr, nil).Error)
}

func (s *APITestSuite) Test_CheckEmail() {
	s.register("Ada Lovelace", "ada@example.com")

	var out CheckEmailResponse
	rr := s.do(http.MethodGet, "/api/auth/check-email?email=ada@example.com", nil, "")
	s.Equal(http.StatusOK, rr.Code)
	s.decode(rr, &out)
	s.True(out.Exists)

	rr = s.do(http.MethodGet, "/api/auth/check-email?email=nobody@example.com", nil, "")
	s.decode(rr, &out)
	s.False(out.Exists)

	rr = s.do(http.MethodGet, "/api/auth/check-email", nil, "")
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *APITestSuite) Test_Profile_GetAndUpdate() {
	created := s.register("Ada Lovelace", "ada@example.com")
	token := s.login()
	path := "/api/auth/profile/" + created.ID.String()

	rr := s.do(http.MethodGet, path, nil, "")
	s.Equal(http.StatusUnauthorized, rr.Code)

	var got ProfileDTO
	rr = s.do(http.MethodGet, path, nil, token)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.decode(rr, &got)
	s.Equal("ada@example.com", got.Email)

	rr = s.do(http.MethodPut, path, gin.H{
		"full_name": "Augusta Ada King",
		"email":     "changed@example.com",
		"bio":       "Countess of Lovelace",
	}, token)
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())
	var updated ProfileDTO
	s.decode(rr, &updated)
	s.Equal("Augusta Ada King", updated.FullName)
	s.Equal("ada@example.com", updated.Email)
	s.Require().NotNil(updated.Bio)
	s.Equal("Countess of Lovelace", *updated.Bio)
	s.True(updated.UpdatedAt.After(created.UpdatedAt))
}

func (s *APITestSuite) Test_Profile_NotFoundAndBadID() {
	token := s.login()

	rr := s.do(http.MethodGet, "/api/auth/profile/"+uuid.NewString(), nil, token)
	s.Equal(http.StatusNotFound, rr.Code)
	s.Equal("not_found", *s.decode(rr, nil).Error)

	rr = s.do(http.MethodGet, "/api/auth/profile/not-a-uuid", nil, token)
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal("validation_failed", *s.decode(rr, nil).Error)
}

func (s *APITestSuite) Test_Profile_DetailsCarryEmptyCollections() {
	created := s.register("Ada Lovelace", "ada@example.com")
	token := s.login()

	rr := s.do(http.MethodGet, "/api/auth/profile/"+created.ID.String()+"/details", nil, token)
	s.Require().Equal(http.StatusOK, rr.Code)

	var fields map[string]any
	s.decode(rr, &fields)
	for _, key := range []string{"experiences", "projects", "skills", "educations"} {
		s.Equal([]any{}, fields[key], key)
	}
}

func (s *APITestSuite) Test_Profile_Activate() {
	first := s.register("Ada Lovelace", "ada@example.com")
	second := s.register("Grace Hopper", "grace@example.com")
	token := s.login()

	rr := s.do(http.MethodPut, "/api/auth/profile/"+second.ID.String()+"/activate", nil, token)
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())
	var activated ProfileDTO
	s.decode(rr, &activated)
	s.True(activated.IsActive)

	var active ProfileDTO
	rr = s.do(http.MethodGet, "/api/portfolio/user/active", nil, "")
	s.Require().Equal(http.StatusOK, rr.Code)
	s.decode(rr, &active)
	s.Equal(second.ID, active.ID)

	var old ProfileDTO
	s.decode(s.do(http.MethodGet, "/api/auth/profile/"+first.ID.String(), nil, token), &old)
	s.False(old.IsActive)
}
