package http

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Profile DTOs

// ProfileDTO carries the dependent collections only on the detailed view.
// A nil collection is omitted; a loaded empty one renders as [].
type ProfileDTO struct {
	ID           uuid.UUID  `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Phone        *string    `json:"phone"`
	Bio          *string    `json:"bio"`
	ProfileImage *string    `json:"profile_image"`
	ResumeURL    *string    `json:"resume_url"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Experiences []*ExperienceDTO `json:"experiences,omitzero"`
	Projects    []*ProjectDTO    `json:"projects,omitzero"`
	Skills      []*SkillDTO      `json:"skills,omitzero"`
	Educations  []*EducationDTO  `json:"educations,omitzero"`
}

var phonePattern = regexp.MustCompile(`^[0-9+()\-.\s]{3,20}$`)

func optionalURL(v *string) validation.Rule {
	return validation.When(v != nil && *v != "", is.URL.Error("must be a valid URL"))
}

type RegisterRequest struct {
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone"`
	Bio          *string `json:"bio"`
	ProfileImage *string `json:"profile_image"`
	ResumeURL    *string `json:"resume_url"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName,
			validation.Required.Error("full name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("invalid email format"),
			validation.Length(3, 255),
		),
		validation.Field(&r.Phone,
			validation.When(r.Phone != nil && *r.Phone != "",
				validation.Match(phonePattern).Error("phone must be at most 20 digits or separators"),
			),
		),
		validation.Field(&r.ProfileImage, optionalURL(r.ProfileImage)),
		validation.Field(&r.ResumeURL, optionalURL(r.ResumeURL)),
	)
}

// UpdateProfileRequest has no email field; an email in the body is ignored.
type UpdateProfileRequest struct {
	FullName     string  `json:"full_name"`
	Phone        *string `json:"phone"`
	Bio          *string `json:"bio"`
	ProfileImage *string `json:"profile_image"`
	ResumeURL    *string `json:"resume_url"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName,
			validation.Required.Error("full name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Phone,
			validation.When(r.Phone != nil && *r.Phone != "",
				validation.Match(phonePattern).Error("phone must be at most 20 digits or separators"),
			),
		),
		validation.Field(&r.ProfileImage, optionalURL(r.ProfileImage)),
		validation.Field(&r.ResumeURL, optionalURL(r.ResumeURL)),
	)
}

type CheckEmailResponse struct {
	Email  string `json:"email"`
	Exists bool   `json:"exists"`
}

// Auth DTOs

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required),
	)
}

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Type  string `json:"type"`
}

// Dependent record DTOs

type ExperienceDTO struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      uuid.UUID  `json:"owner_id"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Description  string     `json:"description"`
	Technologies string     `json:"technologies"`
	IsCurrent    bool       `json:"is_current"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ProjectDTO struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      uuid.UUID  `json:"owner_id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Technologies string     `json:"technologies"`
	GithubURL    *string    `json:"github_url"`
	LiveURL      *string    `json:"live_url"`
	ImageURL     *string    `json:"image_url"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	CreatedAt    time.Time  `json:"created_at"`
}

type SkillDTO struct {
	ID               uuid.UUID `json:"id"`
	OwnerID          uuid.UUID `json:"owner_id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	ProficiencyLevel string    `json:"proficiency_level"`
	YearsExperience  int       `json:"years_experience"`
	IsFeatured       bool      `json:"is_featured"`
	CreatedAt        time.Time `json:"created_at"`
}

type EducationDTO struct {
	ID           uuid.UUID        `json:"id"`
	OwnerID      uuid.UUID        `json:"owner_id"`
	Institution  string           `json:"institution"`
	Degree       string           `json:"degree"`
	FieldOfStudy string           `json:"field_of_study"`
	StartDate    *time.Time       `json:"start_date"`
	EndDate      *time.Time       `json:"end_date"`
	GPA          *decimal.Decimal `json:"gpa"`
	Description  string           `json:"description"`
	CreatedAt    time.Time        `json:"created_at"`
}

// Contact DTOs

type ContactMessageDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Subject  *string   `json:"subject"`
	Message  string    `json:"message"`
	SentDate time.Time `json:"sent_date"`
	IsRead   bool      `json:"is_read"`
	Response *string   `json:"response"`
}

type SubmitContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject"`
	Message string  `json:"message"`
}

func (r SubmitContactRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required"), validation.Length(1, 255)),
		validation.Field(&r.Email, validation.Required.Error("email is required"), is.EmailFormat.Error("invalid email format")),
		validation.Field(&r.Subject, validation.When(r.Subject != nil, validation.Length(0, 255))),
		validation.Field(&r.Message, validation.By(func(any) error {
			if strings.TrimSpace(r.Message) == "" {
				return validation.NewError("validation_required", "message is required")
			}
			return nil
		})),
	)
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

// Portfolio DTOs

type SummaryDTO struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Bio             *string `json:"bio"`
	ProfileImage    *string `json:"profile_image"`
	ExperienceCount int     `json:"experience_count"`
	ProjectCount    int     `json:"project_count"`
	SkillCount      int     `json:"skill_count"`
	EducationCount  int     `json:"education_count"`
}

type HealthDTO struct {
	Status  string `json:"status"`
	Healthy bool   `json:"healthy"`
}

type AssetUploadResponse struct {
	URL     string      `json:"url"`
	Profile *ProfileDTO `json:"profile"`
}

type InfoDTO struct {
	Application  string   `json:"application"`
	Version      string   `json:"version"`
	Author       string   `json:"author"`
	SupportEmail string   `json:"support_email"`
	Features     []string `json:"features"`
}
