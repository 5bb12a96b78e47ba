package http

import (
	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/contact"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
)

// ToProfileDTO maps the scalar fields only; collections stay absent.
func ToProfileDTO(p *profile.Profile) *ProfileDTO {
	if p == nil {
		return nil
	}
	return &ProfileDTO{
		ID:           p.ID,
		FullName:     p.FullName,
		Email:        p.Email,
		Phone:        p.Phone,
		Bio:          p.Bio,
		ProfileImage: p.ProfileImage,
		ResumeURL:    p.ResumeURL,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func ToFullProfileDTO(full *profileUC.FullProfile) *ProfileDTO {
	if full == nil {
		return nil
	}
	dto := ToProfileDTO(full.Profile)
	if dto == nil {
		return nil
	}
	dto.Experiences = ToExperienceDTOs(full.Experiences)
	dto.Projects = ToProjectDTOs(full.Projects)
	dto.Skills = ToSkillDTOs(full.Skills)
	dto.Educations = ToEducationDTOs(full.Educations)
	return dto
}

// ToDomain never rebuilds dependent collections.
func (dto *ProfileDTO) ToDomain() *profile.Profile {
	if dto == nil {
		return nil
	}
	return &profile.Profile{
		ID:           dto.ID,
		FullName:     dto.FullName,
		Email:        dto.Email,
		Phone:        dto.Phone,
		Bio:          dto.Bio,
		ProfileImage: dto.ProfileImage,
		ResumeURL:    dto.ResumeURL,
		IsActive:     dto.IsActive,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	}
}

func (r RegisterRequest) ToInput() profileUC.CreateProfileInput {
	return profileUC.CreateProfileInput{
		FullName:     r.FullName,
		Email:        r.Email,
		Phone:        r.Phone,
		Bio:          r.Bio,
		ProfileImage: r.ProfileImage,
		ResumeURL:    r.ResumeURL,
	}
}

func (r UpdateProfileRequest) ToDomain() profile.Update {
	return profile.Update{
		FullName:     r.FullName,
		Phone:        r.Phone,
		Bio:          r.Bio,
		ProfileImage: r.ProfileImage,
		ResumeURL:    r.ResumeURL,
	}
}

func ToExperienceDTO(e *experience.Experience) *ExperienceDTO {
	if e == nil {
		return nil
	}
	return &ExperienceDTO{
		ID:           e.ID,
		OwnerID:      e.OwnerID,
		Company:      e.Company,
		Position:     e.Position,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Description:  e.Description,
		Technologies: e.Technologies,
		IsCurrent:    e.IsCurrent,
		CreatedAt:    e.CreatedAt,
	}
}

func ToExperienceDTOs(list []*experience.Experience) []*ExperienceDTO {
	if list == nil {
		return nil
	}
	out := make([]*ExperienceDTO, 0, len(list))
	for _, e := range list {
		out = append(out, ToExperienceDTO(e))
	}
	return out
}

func ToProjectDTO(p *project.Project) *ProjectDTO {
	if p == nil {
		return nil
	}
	return &ProjectDTO{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		Name:         p.Name,
		Description:  p.Description,
		Technologies: p.Technologies,
		GithubURL:    p.GithubURL,
		LiveURL:      p.LiveURL,
		ImageURL:     p.ImageURL,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		CreatedAt:    p.CreatedAt,
	}
}

func ToProjectDTOs(list []*project.Project) []*ProjectDTO {
	if list == nil {
		return nil
	}
	out := make([]*ProjectDTO, 0, len(list))
	for _, p := range list {
		out = append(out, ToProjectDTO(p))
	}
	return out
}

func ToSkillDTO(s *skill.Skill) *SkillDTO {
	if s == nil {
		return nil
	}
	return &SkillDTO{
		ID:               s.ID,
		OwnerID:          s.OwnerID,
		Name:             s.Name,
		Category:         s.Category,
		ProficiencyLevel: s.ProficiencyLevel,
		YearsExperience:  s.YearsExperience,
		IsFeatured:       s.IsFeatured,
		CreatedAt:        s.CreatedAt,
	}
}

func ToSkillDTOs(list []*skill.Skill) []*SkillDTO {
	if list == nil {
		return nil
	}
	out := make([]*SkillDTO, 0, len(list))
	for _, s := range list {
		out = append(out, ToSkillDTO(s))
	}
	return out
}

func ToEducationDTO(e *education.Education) *EducationDTO {
	if e == nil {
		return nil
	}
	dto := &EducationDTO{
		ID:           e.ID,
		OwnerID:      e.OwnerID,
		Institution:  e.Institution,
		Degree:       e.Degree,
		FieldOfStudy: e.FieldOfStudy,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Description:  e.Description,
		CreatedAt:    e.CreatedAt,
	}
	if e.GPA.Valid {
		gpa := e.GPA.Decimal
		dto.GPA = &gpa
	}
	return dto
}

func ToEducationDTOs(list []*education.Education) []*EducationDTO {
	if list == nil {
		return nil
	}
	out := make([]*EducationDTO, 0, len(list))
	for _, e := range list {
		out = append(out, ToEducationDTO(e))
	}
	return out
}

func ToContactMessageDTO(m *contact.Message) *ContactMessageDTO {
	if m == nil {
		return nil
	}
	return &ContactMessageDTO{
		ID:       m.ID,
		Name:     m.Name,
		Email:    m.Email,
		Subject:  m.Subject,
		Message:  m.Body,
		SentDate: m.SentAt,
		IsRead:   m.IsRead,
		Response: m.Response,
	}
}

func ToContactMessageDTOs(list []*contact.Message) []*ContactMessageDTO {
	if list == nil {
		return nil
	}
	out := make([]*ContactMessageDTO, 0, len(list))
	for _, m := range list {
		out = append(out, ToContactMessageDTO(m))
	}
	return out
}

func (dto *ContactMessageDTO) ToDomain() *contact.Message {
	if dto == nil {
		return nil
	}
	return &contact.Message{
		ID:       dto.ID,
		Name:     dto.Name,
		Email:    dto.Email,
		Subject:  dto.Subject,
		Body:     dto.Message,
		SentAt:   dto.SentDate,
		IsRead:   dto.IsRead,
		Response: dto.Response,
	}
}

func ToSummaryDTO(s *portfolio.Summary) *SummaryDTO {
	if s == nil {
		return nil
	}
	return &SummaryDTO{
		Name:            s.Name,
		Email:           s.Email,
		Bio:             s.Bio,
		ProfileImage:    s.ProfileImage,
		ExperienceCount: s.ExperienceCount,
		ProjectCount:    s.ProjectCount,
		SkillCount:      s.SkillCount,
		EducationCount:  s.EducationCount,
	}
}
