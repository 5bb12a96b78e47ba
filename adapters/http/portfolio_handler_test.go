package http

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	portfolioUC "github.com/khoahotran/portfolio-api/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
)

func (s *APITestSuite) Test_Health() {
	rr := s.do(http.MethodGet, "/api/portfolio/health", nil, "")
	s.Equal(http.StatusOK, rr.Code)

	var out HealthDTO
	env := s.decode(rr, &out)
	s.True(env.Success)
	s.Nil(env.Error)
	s.Equal("UP", out.Status)
	s.True(out.Healthy)
}

func (s *APITestSuite) Test_Summary_NoActiveProfile() {
	rr := s.do(http.MethodGet, "/api/portfolio/summary", nil, "")
	s.Equal(http.StatusNotFound, rr.Code)
	env := s.decode(rr, nil)
	s.False(env.Success)
	s.Equal("not_found", *env.Error)

	rr = s.do(http.MethodGet, "/api/portfolio/user/active", nil, "")
	s.Equal(http.StatusNotFound, rr.Code)
}

func (s *APITestSuite) Test_Summary_CountsDependents() {
	owner := s.register("Ada Lovelace", "ada@example.com")
	ctx := context.Background()
	s.Require().NoError(s.Store.Experiences.Save(ctx, &experience.Experience{
		ID: uuid.New(), OwnerID: owner.ID, Company: "Engines Ltd", StartDate: time.Now(),
	}))
	s.Require().NoError(s.Store.Skills.Save(ctx, &skill.Skill{ID: uuid.New(), OwnerID: owner.ID, Name: "Go"}))
	s.Require().NoError(s.Store.Skills.Save(ctx, &skill.Skill{ID: uuid.New(), OwnerID: owner.ID, Name: "SQL"}))

	var out SummaryDTO
	rr := s.do(http.MethodGet, "/api/portfolio/summary", nil, "")
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())
	s.decode(rr, &out)

	s.Equal("Ada Lovelace", out.Name)
	s.Equal("ada@example.com", out.Email)
	s.Equal(1, out.ExperienceCount)
	s.Equal(0, out.ProjectCount)
	s.Equal(2, out.SkillCount)
	s.Equal(0, out.EducationCount)
}

func (s *APITestSuite) Test_Lists_EmptyForUnknownOwner() {
	owner := uuid.NewString()
	for _, path := range []string{
		"/api/portfolio/experience/" + owner,
		"/api/portfolio/experience/" + owner + "/current",
		"/api/portfolio/projects/" + owner,
		"/api/portfolio/skills/" + owner,
		"/api/portfolio/skills/" + owner + "/featured",
		"/api/portfolio/skills/" + owner + "/categories",
		"/api/portfolio/education/" + owner,
	} {
		rr := s.do(http.MethodGet, path, nil, "")
		s.Equal(http.StatusOK, rr.Code, path)
		env := s.decode(rr, nil)
		s.JSONEq(`[]`, string(env.Data), path)
	}
}

func (s *APITestSuite) Test_Lists_InvalidOwnerID() {
	rr := s.do(http.MethodGet, "/api/portfolio/skills/42", nil, "")
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal("validation_failed", *s.decode(rr, nil).Error)
}

func (s *APITestSuite) Test_Experience_OrderedNewestFirst() {
	owner := uuid.New()
	ctx := context.Background()
	older := &experience.Experience{ID: uuid.New(), OwnerID: owner, Company: "Old", StartDate: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := &experience.Experience{ID: uuid.New(), OwnerID: owner, Company: "New", StartDate: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), IsCurrent: true}
	s.Require().NoError(s.Store.Experiences.Save(ctx, older))
	s.Require().NoError(s.Store.Experiences.Save(ctx, newer))

	var all []ExperienceDTO
	s.decode(s.do(http.MethodGet, "/api/portfolio/experience/"+owner.String(), nil, ""), &all)
	s.Require().Len(all, 2)
	s.Equal("New", all[0].Company)
	s.Equal("Old", all[1].Company)

	var current []ExperienceDTO
	s.decode(s.do(http.MethodGet, "/api/portfolio/experience/"+owner.String()+"/current", nil, ""), &current)
	s.Require().Len(current, 1)
	s.Equal(newer.ID, current[0].ID)
}

func (s *APITestSuite) Test_Skills_FeaturedAndCategories() {
	owner := uuid.New()
	ctx := context.Background()
	for _, sk := range []skill.Skill{
		{Name: "Redis", Category: "Storage", IsFeatured: true},
		{Name: "Go", Category: "Languages", IsFeatured: true},
		{Name: "Bash", Category: "Languages"},
	} {
		sk.ID = uuid.New()
		sk.OwnerID = owner
		s.Require().NoError(s.Store.Skills.Save(ctx, &sk))
	}

	var featured []SkillDTO
	s.decode(s.do(http.MethodGet, "/api/portfolio/skills/"+owner.String()+"/featured", nil, ""), &featured)
	s.Require().Len(featured, 2)
	s.Equal("Go", featured[0].Name)
	s.Equal("Redis", featured[1].Name)

	var categories []string
	s.decode(s.do(http.MethodGet, "/api/portfolio/skills/"+owner.String()+"/categories", nil, ""), &categories)
	s.Equal([]string{"Languages", "Storage"}, categories)
}

func (s *APITestSuite) Test_ProjectFeed() {
	owner := s.register("Ada Lovelace", "ada@example.com")
	live := "https://engine.example.com"
	s.Require().NoError(s.Store.Projects.Save(context.Background(), &project.Project{
		ID: uuid.New(), OwnerID: owner.ID, Name: "Difference Engine", Description: "Tables",
		Technologies: "Brass", LiveURL: &live, CreatedAt: time.Now().UTC(),
	}))

	rr := s.do(http.MethodGet, "/api/portfolio/projects/"+owner.ID.String()+"/feed", nil, "")
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())
	s.Contains(rr.Header().Get("Content-Type"), "application/rss+xml")
	body := rr.Body.String()
	s.Contains(body, "<rss")
	s.Contains(body, "Difference Engine")
	s.Contains(body, live)

	rr = s.do(http.MethodGet, "/api/portfolio/projects/"+uuid.NewString()+"/feed", nil, "")
	s.Equal(http.StatusNotFound, rr.Code)
}

func (s *APITestSuite) Test_Contact_SubmitListAndCount() {
	rr := s.do(http.MethodPost, "/api/portfolio/contact", gin.H{"name": "Ada", "email": "ada@example.com", "message": "first"}, "")
	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())
	var first ContactMessageDTO
	s.decode(rr, &first)
	s.False(first.IsRead)
	s.False(first.SentDate.IsZero())

	rr = s.do(http.MethodPost, "/api/portfolio/contact", gin.H{"name": "Grace", "email": "grace@example.com", "message": "second"}, "")
	s.Require().Equal(http.StatusCreated, rr.Code)

	token := s.login()

	var messages []ContactMessageDTO
	rr = s.do(http.MethodGet, "/api/portfolio/contact/messages", nil, token)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.decode(rr, &messages)
	s.Require().Len(messages, 2)
	s.Equal("second", messages[0].Message)
	s.Equal("first", messages[1].Message)

	var unread UnreadCountResponse
	s.decode(s.do(http.MethodGet, "/api/portfolio/contact/unread-count", nil, token), &unread)
	s.Equal(int64(2), unread.Unread)
}

func (s *APITestSuite) Test_Contact_Validation() {
	for _, body := range []gin.H{
		{"name": "", "email": "ada@example.com", "message": "hi"},
		{"name": "Ada", "email": "nope", "message": "hi"},
		{"name": "Ada", "email": "ada@example.com", "message": "   "},
	} {
		rr := s.do(http.MethodPost, "/api/portfolio/contact", body, "")
		s.Equal(http.StatusBadRequest, rr.Code)
	}

	token := s.login()
	var unread UnreadCountResponse
	s.decode(s.do(http.MethodGet, "/api/portfolio/contact/unread-count", nil, token), &unread)
	s.Zero(unread.Unread)
}

func (s *APITestSuite) Test_Actuator() {
	var report portfolioUC.HealthReport
	rr := s.do(http.MethodGet, "/api/actuator/health", nil, "")
	s.Require().Equal(http.StatusOK, rr.Code)
	s.decode(rr, &report)
	s.Equal(portfolioUC.StatusUp, report.Status)

	s.Cache.Down = true
	rr = s.do(http.MethodGet, "/api/actuator/health", nil, "")
	s.Require().Equal(http.StatusOK, rr.Code)
	s.decode(rr, &report)
	s.Equal(portfolioUC.StatusDegraded, report.Status)
	s.Equal(portfolioUC.StatusDown, report.Components["cache"].Status)

	var info InfoDTO
	s.decode(s.do(http.MethodGet, "/api/actuator/info", nil, ""), &info)
	s.Equal("Portfolio Backend API", info.Application)
	s.Equal("ops@example.com", info.SupportEmail)
	s.NotEmpty(info.Features)
}

func (s *APITestSuite) Test_UploadProfileImage() {
	owner := s.register("Ada Lovelace", "ada@example.com")
	token := s.login()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "portrait.png")
	s.Require().NoError(err)
	_, err = part.Write([]byte("png-bytes"))
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/profile/"+owner.ID.String()+"/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())
	var out AssetUploadResponse
	s.decode(rr, &out)
	keys := s.Uploader.Keys()
	s.Require().Len(keys, 1)
	s.True(strings.HasPrefix(keys[0], "profiles/"+owner.ID.String()+"/image-"), keys[0])
	s.Equal("https://cdn.test/"+keys[0], out.URL)
	s.Require().NotNil(out.Profile.ProfileImage)
	s.Equal(out.URL, *out.Profile.ProfileImage)
	s.Equal([]byte("png-bytes"), s.Uploader.Uploaded[keys[0]])
}

func (s *APITestSuite) Test_UploadResume_MissingFile() {
	owner := s.register("Ada Lovelace", "ada@example.com")
	token := s.login()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/profile/"+owner.ID.String()+"/resume", strings.NewReader(""))
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	s.Equal(http.StatusBadRequest, rr.Code)
}
