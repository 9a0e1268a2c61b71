package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khanhduong/smartresume/pkg/auth"
	"github.com/khanhduong/smartresume/pkg/logger"
)

// Handlers bundles everything the route tree mounts.
type Handlers struct {
	Auth         *AuthHandler
	Resumes      *ResumeHandler
	Projects     *ProjectHandler
	Experiences  *ExperienceHandler
	Educations   *EducationHandler
	Skills       *SkillHandler
	Achievements *AchievementHandler
	Webhook      *WebhookHandler
}

// NewRouter builds the full route tree. The webhook endpoint carries
// its own shared-secret check instead of the JWT middleware.
func NewRouter(h Handlers, jwtSvc *auth.JWTService, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ErrorMiddleware(log))

	authMiddleware := AuthMiddleware(jwtSvc)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.POST("/auth/register", h.Auth.Register)
		api.POST("/token", h.Auth.Token)
		api.POST("/token/refresh", h.Auth.Refresh)

		api.POST("/integrations/webhook", h.Webhook.Ingest)

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.GET("/auth/me", h.Auth.Me)

			resumes := private.Group("/resumes")
			{
				resumes.POST("", h.Resumes.Create)
				resumes.GET("", h.Resumes.List)
				resumes.GET("/:id", h.Resumes.Get)
				resumes.PUT("/:id", h.Resumes.Update)
				resumes.DELETE("/:id", h.Resumes.Delete)
				resumes.POST("/:id/generate_summary", h.Resumes.GenerateSummary)
				resumes.GET("/:id/export_pdf", h.Resumes.ExportPDF)
			}

			registerRecordRoutes(private, "/projects", h.Projects.Create, h.Projects.List, h.Projects.Get, h.Projects.Update, h.Projects.Delete)
			registerRecordRoutes(private, "/experiences", h.Experiences.Create, h.Experiences.List, h.Experiences.Get, h.Experiences.Update, h.Experiences.Delete)
			registerRecordRoutes(private, "/educations", h.Educations.Create, h.Educations.List, h.Educations.Get, h.Educations.Update, h.Educations.Delete)
			registerRecordRoutes(private, "/skills", h.Skills.Create, h.Skills.List, h.Skills.Get, h.Skills.Update, h.Skills.Delete)
			registerRecordRoutes(private, "/achievements", h.Achievements.Create, h.Achievements.List, h.Achievements.Get, h.Achievements.Update, h.Achievements.Delete)
		}
	}

	return router
}

func registerRecordRoutes(g *gin.RouterGroup, path string, create, list, get, update, del gin.HandlerFunc) {
	group := g.Group(path)
	group.POST("", create)
	group.GET("", list)
	group.GET("/:id", get)
	group.PUT("/:id", update)
	group.DELETE("/:id", del)
}
