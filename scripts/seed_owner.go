package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/khoahotran/portfolio-api/adapters/persistence"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

func main() {
	fmt.Println("adding owner into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	ownerEmail := os.Getenv("OWNER_EMAIL")
	ownerPassword := os.Getenv("OWNER_PASSWORD")
	ownerName := os.Getenv("OWNER_NAME")
	if ownerName == "" {
		ownerName = "Portfolio Owner"
	}

	hash, err := auth.HashPassword(ownerPassword)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	query := `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET password_hash = $3
	`
	if _, err = pool.Exec(ctx, query, uuid.New(), ownerEmail, hash); err != nil {
		log.Fatalf("cannot add user: %v", err)
	}
	fmt.Printf("added or updated owner '%s' successfully!\n", ownerEmail)

	nop := logger.NewNopLogger()
	profileRepo := persistence.NewPostgresProfileRepo(pool, nop)

	if _, err := profileRepo.FindActive(ctx); err == nil {
		fmt.Println("an active profile already exists, skip sample data.")
		return
	} else if !apperror.IsNotFound(err) {
		log.Fatalf("cannot look up active profile: %v", err)
	}

	now := time.Now().UTC()
	bio := "Backend engineer building services in Go."
	owner := &profile.Profile{
		ID:        uuid.New(),
		FullName:  ownerName,
		Email:     ownerEmail,
		Bio:       &bio,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := profileRepo.Save(ctx, owner); err != nil {
		log.Fatalf("cannot add profile: %v", err)
	}

	if err := seedDependents(ctx, pool, nop, owner.ID, now); err != nil {
		log.Fatalf("cannot add sample data: %v", err)
	}
	fmt.Printf("added active profile '%s' with sample data.\n", owner.ID)
}

func seedDependents(ctx context.Context, pool *pgxpool.Pool, nop logger.Logger, ownerID uuid.UUID, now time.Time) error {
	date := func(y int, m time.Month) time.Time { return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC) }
	ptr := func(t time.Time) *time.Time { return &t }
	repo := "https://github.com/example/portfolio-api"

	experiences := []*experience.Experience{
		{Company: "Acme Cloud", Position: "Senior Backend Engineer", StartDate: date(2022, time.March),
			Description: "Event-driven services.", Technologies: "Go, Kafka, PostgreSQL", IsCurrent: true},
		{Company: "Startup Labs", Position: "Software Engineer", StartDate: date(2019, time.June), EndDate: ptr(date(2022, time.February)),
			Description: "APIs and data pipelines.", Technologies: "Go, Redis"},
	}
	expRepo := persistence.NewPostgresExperienceRepo(pool, nop)
	for _, e := range experiences {
		e.ID, e.OwnerID, e.CreatedAt = uuid.New(), ownerID, now
		if err := expRepo.Save(ctx, e); err != nil {
			return err
		}
	}

	projRepo := persistence.NewPostgresProjectRepo(pool, nop)
	if err := projRepo.Save(ctx, &project.Project{
		ID: uuid.New(), OwnerID: ownerID, Name: "Portfolio API", Description: "This backend.",
		Technologies: "Go, Gin, PostgreSQL", GithubURL: &repo, StartDate: ptr(date(2024, time.January)), CreatedAt: now,
	}); err != nil {
		return err
	}

	skillRepo := persistence.NewPostgresSkillRepo(pool, nop)
	for _, s := range []*skill.Skill{
		{Name: "Go", Category: "Languages", ProficiencyLevel: "Expert", YearsExperience: 6, IsFeatured: true},
		{Name: "SQL", Category: "Languages", ProficiencyLevel: "Advanced", YearsExperience: 8},
		{Name: "Kafka", Category: "Messaging", ProficiencyLevel: "Advanced", YearsExperience: 3, IsFeatured: true},
	} {
		s.ID, s.OwnerID, s.CreatedAt = uuid.New(), ownerID, now
		if err := skillRepo.Save(ctx, s); err != nil {
			return err
		}
	}

	eduRepo := persistence.NewPostgresEducationRepo(pool, nop)
	return eduRepo.Save(ctx, &education.Education{
		ID: uuid.New(), OwnerID: ownerID, Institution: "State University", Degree: "BSc",
		FieldOfStudy: "Computer Science", StartDate: ptr(date(2014, time.September)), EndDate: ptr(date(2018, time.June)),
		GPA: decimal.NewNullDecimal(decimal.RequireFromString("3.60")), CreatedAt: now,
	})
}
