package http

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/contact"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
)

func ptr[T any](v T) *T { return &v }

var stamp = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func TestProfileDTO_RoundTrip(t *testing.T) {
	dto := &ProfileDTO{
		ID:           uuid.New(),
		FullName:     "Ada Lovelace",
		Email:        "ada@example.com",
		Phone:        ptr("+44 20 7946 0000"),
		Bio:          ptr("Analyst"),
		ProfileImage: nil,
		ResumeURL:    ptr("https://cdn.test/cv.pdf"),
		IsActive:     true,
		CreatedAt:    stamp,
		UpdatedAt:    stamp.Add(time.Hour),
	}

	assert.Equal(t, dto, ToProfileDTO(dto.ToDomain()))
}

func TestContactMessageDTO_RoundTrip(t *testing.T) {
	dto := &ContactMessageDTO{
		ID:       uuid.New(),
		Name:     "Ada",
		Email:    "ada@example.com",
		Subject:  ptr("Hi"),
		Message:  "hello",
		SentDate: stamp,
		IsRead:   true,
		Response: ptr("thanks"),
	}

	assert.Equal(t, dto, ToContactMessageDTO(dto.ToDomain()))
}

func TestToEducationDTO_GPA(t *testing.T) {
	e := &education.Education{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Institution: "MIT",
		Degree:      "BSc",
		StartDate:   ptr(stamp),
		GPA:         decimal.NewNullDecimal(decimal.RequireFromString("3.85")),
		CreatedAt:   stamp,
	}
	dto := ToEducationDTO(e)
	require.NotNil(t, dto.GPA)
	assert.Equal(t, "3.85", dto.GPA.StringFixed(2))
	assert.Equal(t, e.StartDate, dto.StartDate)

	e.GPA = decimal.NullDecimal{}
	assert.Nil(t, ToEducationDTO(e).GPA)
}

func TestMappers_NilPropagates(t *testing.T) {
	assert.Nil(t, ToProfileDTO(nil))
	assert.Nil(t, ToFullProfileDTO(nil))
	assert.Nil(t, ToFullProfileDTO(&profileUC.FullProfile{}))
	assert.Nil(t, ToExperienceDTO(nil))
	assert.Nil(t, ToProjectDTO(nil))
	assert.Nil(t, ToSkillDTO(nil))
	assert.Nil(t, ToEducationDTO(nil))
	assert.Nil(t, ToContactMessageDTO(nil))
	assert.Nil(t, ToSummaryDTO(nil))

	assert.Nil(t, (*ProfileDTO)(nil).ToDomain())
	assert.Nil(t, (*ContactMessageDTO)(nil).ToDomain())

	assert.Nil(t, ToExperienceDTOs(nil))
	assert.Nil(t, ToProjectDTOs(nil))
	assert.Nil(t, ToSkillDTOs(nil))
	assert.Nil(t, ToEducationDTOs(nil))
	assert.Nil(t, ToContactMessageDTOs(nil))
}

func TestListMappers_PreserveOrderAndDuplicates(t *testing.T) {
	a := &skill.Skill{ID: uuid.New(), Name: "Go"}
	b := &skill.Skill{ID: uuid.New(), Name: "Bash"}

	out := ToSkillDTOs([]*skill.Skill{b, a, b})

	require.Len(t, out, 3)
	assert.Equal(t, b.ID, out[0].ID)
	assert.Equal(t, a.ID, out[1].ID)
	assert.Equal(t, b.ID, out[2].ID)
}

func TestToProfileDTO_OmitsCollections(t *testing.T) {
	p := &profile.Profile{ID: uuid.New(), FullName: "Ada", Email: "ada@example.com", CreatedAt: stamp, UpdatedAt: stamp}

	body, err := json.Marshal(ToProfileDTO(p))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(body, &fields))
	for _, key := range []string{"experiences", "projects", "skills", "educations"} {
		assert.NotContains(t, fields, key)
	}
	assert.Contains(t, fields, "phone")
}

func TestToFullProfileDTO_LoadedEmptyCollectionsRenderAsArrays(t *testing.T) {
	full := &profileUC.FullProfile{
		Profile:     &profile.Profile{ID: uuid.New(), FullName: "Ada", Email: "ada@example.com"},
		Experiences: []*experience.Experience{},
		Projects:    []*project.Project{},
		Skills:      []*skill.Skill{},
		Educations:  []*education.Education{},
	}

	body, err := json.Marshal(ToFullProfileDTO(full))
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &fields))
	for _, key := range []string{"experiences", "projects", "skills", "educations"} {
		assert.JSONEq(t, `[]`, string(fields[key]), key)
	}
}

func TestToFullProfileDTO_UnloadedCollectionStaysAbsent(t *testing.T) {
	full := &profileUC.FullProfile{
		Profile:     &profile.Profile{ID: uuid.New(), FullName: "Ada", Email: "ada@example.com"},
		Experiences: []*experience.Experience{{ID: uuid.New(), Company: "Analytical Engines"}},
	}

	dto := ToFullProfileDTO(full)

	require.Len(t, dto.Experiences, 1)
	assert.Equal(t, "Analytical Engines", dto.Experiences[0].Company)
	assert.Nil(t, dto.Projects)
	assert.Nil(t, dto.Skills)
	assert.Nil(t, dto.Educations)
}

func TestRequests_ToDomain(t *testing.T) {
	reg := RegisterRequest{FullName: "Ada", Email: "ada@example.com", Bio: ptr("math")}
	in := reg.ToInput()
	assert.Equal(t, "Ada", in.FullName)
	assert.Equal(t, reg.Email, in.Email)
	assert.Equal(t, reg.Bio, in.Bio)

	upd := UpdateProfileRequest{FullName: "Ada L", ResumeURL: ptr("https://cdn.test/cv.pdf")}.ToDomain()
	assert.Equal(t, profile.Update{FullName: "Ada L", ResumeURL: ptr("https://cdn.test/cv.pdf")}, upd)
}

func TestContactMessage_BodyMapsToMessage(t *testing.T) {
	m := &contact.Message{ID: uuid.New(), Body: "hello", SentAt: stamp}

	dto := ToContactMessageDTO(m)

	assert.Equal(t, "hello", dto.Message)
	assert.Equal(t, stamp, dto.SentDate)
	assert.False(t, dto.IsRead)
}

func TestRegisterRequest_Validate(t *testing.T) {
	assert.NoError(t, RegisterRequest{FullName: "Ada", Email: "ada@example.com"}.Validate())
	assert.Error(t, RegisterRequest{Email: "ada@example.com"}.Validate())
	assert.Error(t, RegisterRequest{FullName: "Ada", Email: "not-an-email"}.Validate())
	assert.Error(t, RegisterRequest{FullName: "Ada", Email: "ada@example.com", ResumeURL: ptr("not a url")}.Validate())
	assert.NoError(t, RegisterRequest{FullName: "Ada", Email: "ada@example.com", Phone: ptr("")}.Validate())
}
