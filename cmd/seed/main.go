package main

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobhaven/internal/config"
	"jobhaven/internal/db"
	"jobhaven/internal/model"
	"jobhaven/internal/repository"
)

const demoRecruiterEmail = "recruiter@jobhaven.dev"

// Fixture IDs are fixed so re-running the seeder is idempotent.
var seedJobs = []model.Job{
	{
		ID:                 uuid.MustParse("b1f7a4f2-0001-4a6e-9b21-6f34f3a1c001"),
		CompanyName:        "Acme Analytics",
		LogoURL:            "https://cdn.jobhaven.dev/logos/acme.png",
		JobPosition:        "Backend Engineer",
		MonthlySalary:      9000,
		JobType:            model.JobTypeFullTime,
		RemoteOffice:       model.WorkModeRemote,
		Location:           "Berlin",
		JobDescription:     "Build and operate data ingestion services.",
		CompanyDescription: "Acme turns raw event streams into dashboards.",
		SkillsRequired:     "Go, MySQL, Redis",
		AdditionalInfo:     "Visa sponsorship available.",
	},
	{
		ID:                 uuid.MustParse("b1f7a4f2-0002-4a6e-9b21-6f34f3a1c002"),
		CompanyName:        "Pixelsmith",
		LogoURL:            "https://cdn.jobhaven.dev/logos/pixelsmith.png",
		JobPosition:        "Frontend Developer",
		MonthlySalary:      7000,
		JobType:            model.JobTypeContract,
		RemoteOffice:       model.WorkModeHybrid,
		Location:           "Lisbon",
		JobDescription:     "Ship component libraries for client dashboards.",
		CompanyDescription: "Design studio for developer tools.",
		SkillsRequired:     "JavaScript, TypeScript, CSS",
	},
	{
		ID:                 uuid.MustParse("b1f7a4f2-0003-4a6e-9b21-6f34f3a1c003"),
		CompanyName:        "Brewhouse Systems",
		LogoURL:            "https://cdn.jobhaven.dev/logos/brewhouse.png",
		JobPosition:        "Platform Engineer",
		MonthlySalary:      8500,
		JobType:            model.JobTypePartTime,
		RemoteOffice:       model.WorkModeOffice,
		Location:           "Austin",
		JobDescription:     "Own CI and the internal deploy tooling.",
		CompanyDescription: "Point-of-sale software for independent cafes.",
		SkillsRequired:     "Java, Kubernetes, Terraform",
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Job{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)

	if err := seedRecruiter(ctx, userRepo); err != nil {
		log.Fatalf("Failed to seed recruiter: %v", err)
	}

	created, skipped, err := seedPostings(ctx, jobRepo)
	if err != nil {
		log.Fatalf("Failed to seed job postings: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New postings created: %d", created)
	log.Printf("  - Existing postings skipped: %d", skipped)
}

// seedRecruiter creates the demo recruiter account if it is not present.
func seedRecruiter(ctx context.Context, repo repository.UserRepository) error {
	if _, err := repo.FindByEmail(ctx, demoRecruiterEmail); err == nil {
		log.Printf("Recruiter %s already exists, skipping", demoRecruiterEmail)
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("jobhaven-demo"), 10)
	if err != nil {
		return err
	}

	user := &model.User{
		FirstName:    "Demo",
		LastName:     "Recruiter",
		Email:        demoRecruiterEmail,
		PasswordHash: string(hashed),
		Recruiter:    true,
	}
	if err := repo.Create(ctx, user); err != nil {
		return err
	}
	log.Printf("Created recruiter %s", demoRecruiterEmail)
	return nil
}

// seedPostings inserts the fixture postings, skipping ones already present.
func seedPostings(ctx context.Context, repo repository.JobRepository) (created int, skipped int, err error) {
	for _, job := range seedJobs {
		if _, err := repo.FindByID(ctx, job.ID); err == nil {
			skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, skipped, err
		}

		if err := repo.Create(ctx, &job); err != nil {
			return created, skipped, err
		}
		created++
	}
	return created, skipped, nil
}
