package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workforce/internal/cache"
	"workforce/internal/config"
	"workforce/internal/features/activities"
	"workforce/internal/features/analytics"
	"workforce/internal/features/pipeline"
	projects_controllers "workforce/internal/features/projects/controllers"
	projects_models "workforce/internal/features/projects/models"
	projects_services "workforce/internal/features/projects/services"
	"workforce/internal/features/skills"
	"workforce/internal/features/timesheets"
	users_controllers "workforce/internal/features/users/controllers"
	users_middleware "workforce/internal/features/users/middleware"
	users_models "workforce/internal/features/users/models"
	users_services "workforce/internal/features/users/services"
	"workforce/internal/storage"
	cache_utils "workforce/internal/util/cache"
	"workforce/internal/util/logger"
	"workforce/internal/util/rate_limit"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func main() {
	log := logger.GetLogger()

	setUpDependencies()

	if cache.IsConfigured() {
		cache_utils.TestCacheConnection()
		skills.SetupCache()
		users_controllers.GetUserController().SetDistributedLimiter(
			rate_limit.NewRateLimiter("rate_limit:login:"),
		)
	}

	runMigrations(log)
	seedInitialData(log)

	gin.SetMode(gin.ReleaseMode)
	ginApp := gin.Default()

	ginApp.Use(gzip.Gzip(gzip.DefaultCompression))

	enableCors(ginApp)
	setUpRoutes(ginApp)

	startServerWithGracefulShutdown(log, ginApp)
}

func setUpDependencies() {
	activities.SetupDependencies()

	// skill deletion checks every table referencing a skill; the checkers
	// are attached here to keep the skills package free of feature imports
	skillService := skills.GetSkillService()
	skillService.AddReferenceChecker(projects_services.GetRequirementRepository())
	skillService.AddReferenceChecker(projects_services.GetAssignmentRepository())
	skillService.AddReferenceChecker(pipeline.GetDemandRepository())
}

func runMigrations(log *slog.Logger) {
	log.Info("Running database migrations...")

	err := storage.Migrate(
		&users_models.User{},
		&skills.Skill{},
		&skills.SkillCategory{},
		&skills.SkillMapping{},
		&projects_models.Project{},
		&projects_models.ProjectRequirement{},
		&projects_models.ProjectAssignment{},
		&timesheets.Timesheet{},
		&pipeline.ProjectPipeline{},
		&pipeline.PipelineSkillDemand{},
		&activities.Activity{},
	)
	if err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	log.Info("Database migrations completed successfully")
}

func seedInitialData(log *slog.Logger) {
	if err := users_services.GetUserService().CreateInitialAdmin(); err != nil {
		log.Error("Failed to create initial admin", "error", err)
		os.Exit(1)
	}

	if err := skills.GetSkillService().SeedDefaultCategories(); err != nil {
		log.Error("Failed to seed skill categories", "error", err)
		os.Exit(1)
	}
}

func setUpRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// Public routes (only user auth routes should be public)
	userController := users_controllers.GetUserController()
	userController.RegisterRoutes(api)

	userService := users_services.GetUserService()
	authMiddleware := users_middleware.AuthMiddleware(userService)

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware)

	userController.RegisterProtectedRoutes(protected)
	skills.GetSkillController().RegisterRoutes(protected)
	projects_controllers.GetProjectController().RegisterRoutes(protected)
	timesheets.GetTimesheetController().RegisterRoutes(protected)
	pipeline.GetPipelineController().RegisterRoutes(protected)
	activities.GetActivityController().RegisterRoutes(protected)
	analytics.GetAnalyticsController().RegisterRoutes(protected)
}

func enableCors(ginApp *gin.Engine) {
	if config.GetEnv().EnvMode == config.EnvModeDevelopment {
		ginApp.Use(cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders: []string{
				"Origin",
				"Content-Length",
				"Content-Type",
				"Authorization",
				"Accept",
				"Accept-Language",
				"Accept-Encoding",
			},
			AllowCredentials: true,
		}))
	}
}

func startServerWithGracefulShutdown(log *slog.Logger, app *gin.Engine) {
	srv := &http.Server{
		Addr:    ":" + config.GetEnv().Port,
		Handler: app,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen:", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	log.Info("Server gracefully stopped")
}
