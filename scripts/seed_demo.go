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

	"github.com/khanhduong/smartresume/pkg/auth"
)

// Seeds a demo account with one resume and one record of each kind.
func main() {
	fmt.Println("seeding demo data...")

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	username := os.Getenv("DEMO_USERNAME")
	if username == "" {
		username = "demo"
	}
	password := os.Getenv("DEMO_PASSWORD")
	if password == "" {
		password = "demo1234"
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()
	userID := uuid.New()

	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, username, email, password_hash, first_name, last_name, bio)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (username) DO UPDATE SET password_hash = $4
		`, userID, username, username+"@example.com", hash, "Demo", "User", "Backend developer demo account")
	if err != nil {
		log.Fatalf("cannot add user: %v", err)
	}

	// ON CONFLICT may have kept an existing row; read the real id back.
	if err := pool.QueryRow(ctx, `SELECT id FROM users WHERE username = $1`, username).Scan(&userID); err != nil {
		log.Fatalf("cannot read user id: %v", err)
	}

	resumeID := uuid.New()
	_, err = pool.Exec(ctx, `
		INSERT INTO resumes (id, owner_id, title, last_updated)
		VALUES ($1, $2, $3, $4)
		`, resumeID, userID, "Demo Resume", time.Now().UTC())
	if err != nil {
		log.Fatalf("cannot add resume: %v", err)
	}

	seedRecords := []struct {
		name  string
		query string
		args  []any
	}{
		{
			"project",
			`INSERT INTO projects (id, resume_id, title, description, tech_stack) VALUES ($1, $2, $3, $4, $5)`,
			[]any{uuid.New(), resumeID, "Inventory Service", "Warehouse stock tracking API", "Go, PostgreSQL"},
		},
		{
			"experience",
			`INSERT INTO experiences (id, resume_id, company, role, start_date, description) VALUES ($1, $2, $3, $4, $5, $6)`,
			[]any{uuid.New(), resumeID, "Acme Corp", "Backend Engineer", time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC), "Built internal services"},
		},
		{
			"education",
			`INSERT INTO educations (id, resume_id, institute, degree, start_date) VALUES ($1, $2, $3, $4, $5)`,
			[]any{uuid.New(), resumeID, "State University", "BSc Computer Science", time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC)},
		},
		{
			"skill",
			`INSERT INTO skills (id, resume_id, name, level) VALUES ($1, $2, $3, $4)`,
			[]any{uuid.New(), resumeID, "Go", "Advanced"},
		},
		{
			"achievement",
			`INSERT INTO achievements (id, resume_id, title, issuer, description) VALUES ($1, $2, $3, $4, $5)`,
			[]any{uuid.New(), resumeID, "Hackathon Winner", "Acme Corp", "First place, internal hackathon"},
		},
	}

	for _, rec := range seedRecords {
		if _, err := pool.Exec(ctx, rec.query, rec.args...); err != nil {
			log.Fatalf("cannot add %s: %v", rec.name, err)
		}
	}

	fmt.Printf("seeded demo user '%s' with resume %s\n", username, resumeID)
}
