package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"estimateai/internal/config"
	"estimateai/internal/database"
	"estimateai/internal/jobs"
	"estimateai/internal/middleware"
	"estimateai/internal/modules/auth"
	"estimateai/internal/modules/client"
	"estimateai/internal/modules/dashboard"
	"estimateai/internal/modules/estimate"
	"estimateai/internal/modules/suggestion"
	"estimateai/internal/modules/template"
	jwtsvc "estimateai/internal/pkg/jwt"
	"estimateai/internal/pkg/mailer"
	"estimateai/internal/pkg/pdf"
	"estimateai/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	estimateRepo := repository.NewEstimateRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	clientService := client.NewService(clientRepo)
	clientHandler := client.NewHandler(clientService)

	templateService := template.NewService(templateRepo)
	templateHandler := template.NewHandler(templateService)

	var m estimate.Mailer
	if cfg.MailerMode == "log" {
		m = mailer.LogMailer{}
	}

	drafts := estimate.NewDraftStore(cfg.DefaultProfitMargin)
	renderer := pdf.NewEstimateRenderer("EstimateAI")
	estimateService := estimate.NewService(estimateRepo, clientRepo, drafts, renderer, m, cfg.DefaultProfitMargin)
	estimateHandler := estimate.NewHandler(estimateService)

	var processor suggestion.TextProcessor = suggestion.StaticProcessor{}
	if cfg.AIEndpoint != "" {
		processor = suggestion.NewHTTPProcessor(cfg.AIEndpoint, cfg.AIAPIKey)
	}
	suggestionService := suggestion.NewService(processor)
	suggestionHandler := suggestion.NewHandler(suggestionService)

	dashboardService := dashboard.NewService(estimateRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	if cfg.ArchiverEnabled {
		archiver := jobs.NewArchiver(estimateRepo, cfg.ArchiveAfterDays)
		if err := archiver.Start(cfg.ArchiveCronSpec); err != nil {
			log.Fatal(err)
		}
		defer archiver.Stop()
	}

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			clientHandler.RegisterRoutes(protected)
			templateHandler.RegisterRoutes(protected)
			estimateHandler.RegisterRoutes(protected)
			suggestionHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
		}
	}

	log.Printf("listening on :%s env=%s", cfg.Port, cfg.AppEnv)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
