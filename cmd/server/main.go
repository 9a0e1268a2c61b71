package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	httpAdapter "github.com/khanhduong/smartresume/adapters/http"
	"github.com/khanhduong/smartresume/adapters/llm"
	"github.com/khanhduong/smartresume/adapters/pdf"
	"github.com/khanhduong/smartresume/adapters/persistence"
	authUC "github.com/khanhduong/smartresume/internal/application/usecase/auth"
	recordUC "github.com/khanhduong/smartresume/internal/application/usecase/record"
	resumeUC "github.com/khanhduong/smartresume/internal/application/usecase/resume"
	webhookUC "github.com/khanhduong/smartresume/internal/application/usecase/webhook"
	"github.com/khanhduong/smartresume/internal/config"
	"github.com/khanhduong/smartresume/pkg/auth"
	"github.com/khanhduong/smartresume/pkg/logger"
	"github.com/khanhduong/smartresume/pkg/tracing"
)

func main() {
	fmt.Println("Start SmartResume API Server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg.Tracing.OTLPEndpoint, "smartresume-api", appLogger)
		if err != nil {
			appLogger.Fatal("cannot init tracing", err)
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				appLogger.Error("tracer shutdown failed", err)
			}
		}()
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	repos := resumeUC.Repos{
		Resumes:      persistence.NewPostgresResumeRepo(dbPool, appLogger),
		Projects:     persistence.NewPostgresProjectRepo(dbPool, appLogger),
		Experiences:  persistence.NewPostgresExperienceRepo(dbPool, appLogger),
		Educations:   persistence.NewPostgresEducationRepo(dbPool, appLogger),
		Skills:       persistence.NewPostgresSkillRepo(dbPool, appLogger),
		Achievements: persistence.NewPostgresAchievementRepo(dbPool, appLogger),
	}

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessLifespan)
	tokenStore := persistence.NewRedisTokenStore(redisClient, cfg.Auth.RefreshLifespan)
	renderer := pdf.NewFpdfRenderer()

	// Returns a nil enhancer when no API key is configured; summaries
	// then always come from the deterministic composer.
	enhancer, err := llm.NewOpenAIEnhancer(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init summary enhancer", err)
	}

	// Use Cases
	registerUseCase := authUC.NewRegisterUseCase(userRepo, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, tokenStore, appLogger)
	refreshUseCase := authUC.NewRefreshUseCase(jwtSvc, tokenStore, appLogger)
	meUseCase := authUC.NewMeUseCase(userRepo)

	resumeUseCase := resumeUC.NewResumeUseCase(repos, appLogger)
	summaryUseCase := resumeUC.NewSummaryUseCase(repos, userRepo, enhancer, cfg.OpenAI.Timeout, appLogger)
	exportUseCase := resumeUC.NewExportUseCase(repos, userRepo, renderer, appLogger)

	projectUseCase := recordUC.NewProjectUseCase(repos.Resumes, repos.Projects, appLogger)
	experienceUseCase := recordUC.NewExperienceUseCase(repos.Resumes, repos.Experiences, appLogger)
	educationUseCase := recordUC.NewEducationUseCase(repos.Resumes, repos.Educations, appLogger)
	skillUseCase := recordUC.NewSkillUseCase(repos.Resumes, repos.Skills, appLogger)
	achievementUseCase := recordUC.NewAchievementUseCase(repos.Resumes, repos.Achievements, appLogger)

	ingestUseCase := webhookUC.NewIngestUseCase(repos.Resumes, repos.Projects, repos.Achievements, appLogger)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Auth:         httpAdapter.NewAuthHandler(registerUseCase, loginUseCase, refreshUseCase, meUseCase),
		Resumes:      httpAdapter.NewResumeHandler(resumeUseCase, summaryUseCase, exportUseCase),
		Projects:     httpAdapter.NewProjectHandler(projectUseCase),
		Experiences:  httpAdapter.NewExperienceHandler(experienceUseCase),
		Educations:   httpAdapter.NewEducationHandler(educationUseCase),
		Skills:       httpAdapter.NewSkillHandler(skillUseCase),
		Achievements: httpAdapter.NewAchievementHandler(achievementUseCase),
		Webhook:      httpAdapter.NewWebhookHandler(ingestUseCase, cfg.Webhook.Secret),
	}

	router := httpAdapter.NewRouter(handlers, jwtSvc, appLogger)

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
