package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobboard/internal/config"
	"jobboard/internal/db"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

const seedPassword = "password123"

type seedUser struct {
	name  string
	email string
	role  model.Role
}

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Employer{},
		&model.JobSeeker{},
		&model.Job{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	employerRepo := repository.NewEmployerRepository(gormDB)
	jobSeekerRepo := repository.NewJobSeekerRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)

	users := []seedUser{
		{"Admin", "admin@jobboard.local", model.RoleAdmin},
		{"Acme HR", "hr@acme.example", model.RoleEmployer},
		{"Jane Candidate", "jane@example.com", model.RoleJobSeeker},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	created := 0
	for _, su := range users {
		existing, err := userRepo.FindByEmail(ctx, su.email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Error checking user %s: %v", su.email, err)
		}
		if existing != nil {
			continue
		}

		user := &model.User{
			Name:         su.name,
			Email:        su.email,
			PasswordHash: string(hash),
			Role:         su.role,
			IsActive:     true,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Error creating user %s: %v", su.email, err)
		}
		created++

		switch su.role {
		case model.RoleEmployer:
			employer := &model.Employer{
				CompanyName: "Acme Corp",
				ContactInfo: su.email,
				Position:    "HR Manager",
				UserID:      user.ID,
			}
			if err := employerRepo.Create(ctx, employer); err != nil {
				log.Fatalf("Error creating employer profile: %v", err)
			}
			if err := seedJobs(ctx, jobRepo, employer); err != nil {
				log.Fatalf("Error seeding jobs: %v", err)
			}
		case model.RoleJobSeeker:
			seeker := &model.JobSeeker{
				EducationDetails: "BSc Computer Science",
				Skills:           "Go,SQL,Docker",
				College:          "State University",
				WorkStatus:       "open",
				Experience:       3,
				UserID:           user.ID,
			}
			if err := jobSeekerRepo.Create(ctx, seeker); err != nil {
				log.Fatalf("Error creating job seeker profile: %v", err)
			}
		}
	}

	log.Printf("Seed completed: %d users created (password %q)", created, seedPassword)
}

func seedJobs(ctx context.Context, repo repository.JobRepository, employer *model.Employer) error {
	jobs := []model.Job{
		{
			Title:          "Backend Engineer",
			Description:    "Build and operate the job board API.",
			Location:       "Remote",
			Salary:         decimal.NewFromInt(90000),
			SkillsRequired: "Go,MySQL,Redis",
			Status:         model.JobStatusOpen,
			EmployerID:     employer.ID,
		},
		{
			Title:          "Data Analyst",
			Description:    "Reporting over hiring funnels.",
			Location:       "Berlin",
			Salary:         decimal.NewFromInt(65000),
			SkillsRequired: "SQL,Python",
			Status:         model.JobStatusOpen,
			EmployerID:     employer.ID,
		},
	}
	for i := range jobs {
		if err := repo.Create(ctx, &jobs[i]); err != nil {
			return fmt.Errorf("create job %q: %w", jobs[i].Title, err)
		}
	}
	return nil
}
