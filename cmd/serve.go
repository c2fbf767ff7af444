package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/forhad-fhj/SkillBridge/auth"
	"github.com/forhad-fhj/SkillBridge/catalog"
	"github.com/forhad-fhj/SkillBridge/config"
	_ "github.com/forhad-fhj/SkillBridge/docs"
	"github.com/forhad-fhj/SkillBridge/engine"
	"github.com/forhad-fhj/SkillBridge/events"
	"github.com/forhad-fhj/SkillBridge/extract"
	"github.com/forhad-fhj/SkillBridge/handlers"
	"github.com/forhad-fhj/SkillBridge/mcp"
	"github.com/forhad-fhj/SkillBridge/models"
	"github.com/forhad-fhj/SkillBridge/parser"
	"github.com/forhad-fhj/SkillBridge/storage"
	"github.com/forhad-fhj/SkillBridge/tools"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

// services holds everything the router dispatches to
type services struct {
	cfg        *config.Config
	jwtService *auth.JWTService
	googleAuth auth.GoogleVerifier
	store      storage.Store
	blobs      storage.BlobStore
	publisher  events.Publisher
	extractor  extract.SkillExtractor
	docParser  handlers.DocumentParser
	engine     *engine.Engine
	catalog    engine.ResourceCatalog
	roles      []models.Role
}

func runServer(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := &services{
		cfg:        cfg,
		jwtService: auth.NewJWTService(cfg),
	}
	if cfg.GoogleClientID != "" {
		svc.googleAuth = auth.NewGoogleAuthService(cfg)
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()
	svc.store = store

	blobs, err := openBlobStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize resume storage: %v", err)
	}
	if blobs != nil {
		defer blobs.Close()
		svc.blobs = blobs
	}

	publisher, err := openPublisher(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize event publisher: %v", err)
	}
	defer publisher.Close()
	svc.publisher = publisher

	extractor, closer, err := newSkillExtractor(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize skill extractor: %v", err)
	}
	if closer != nil {
		defer closer.Close()
	}
	svc.extractor = extractor

	if cfg.ParserBaseURL != "" {
		client, err := parser.NewClient(parser.Config{
			BaseURL: cfg.ParserBaseURL,
			Timeout: cfg.ParserTimeout(),
		})
		if err != nil {
			log.Fatalf("Failed to initialize parser client: %v", err)
		}
		if err := client.Health(ctx); err != nil {
			log.Printf("Warning: parser service at %s is not healthy: %v", cfg.ParserBaseURL, err)
		}
		svc.docParser = client
	}

	eng, resources, err := newEngine(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize analysis engine: %v", err)
	}
	log.Printf("Analysis engine ready (%d catalog entries)", resources.Len())
	svc.engine = eng
	svc.catalog = resources

	roles, err := catalog.LoadRoles(cfg.RoleCatalogPath)
	if err != nil {
		log.Fatalf("Failed to load role catalog: %v", err)
	}
	svc.roles = roles

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(svc),
		ReadTimeout:  cfg.HTTPTimeout(),
		WriteTimeout: 2 * cfg.HTTPTimeout(),
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Println("Server exited gracefully")
	return nil
}

// newRouter registers every route on a fresh gin engine
func newRouter(svc *services) *gin.Engine {
	defaultDomain := svc.cfg.DefaultDomain

	analysisHandler := handlers.NewAnalysisHandler(svc.engine, svc.store, svc.store, svc.publisher, defaultDomain)
	documentHandler := handlers.NewDocumentHandler(svc.extractor, svc.docParser, svc.blobs, svc.store)
	jobsHandler := handlers.NewJobsHandler(svc.store)
	resourcesHandler := handlers.NewResourcesHandler(svc.catalog, svc.cfg.RoadmapMaxResources)
	progressHandler := handlers.NewProgressHandler(svc.store)
	authHandler := handlers.NewAuthHandler(svc.store, svc.jwtService, svc.googleAuth)

	careerHandler := handlers.NewCareerHandler(svc.engine, svc.extractor, svc.roles)

	registry, err := newToolRegistry(svc)
	if err != nil {
		log.Fatalf("Failed to register tools: %v", err)
	}
	mcpServer := mcp.NewServer(registry, "skillbridge", handlers.Version)

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     svc.cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !allowsAnyOrigin(svc.cfg.AllowedOrigins),
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", handlers.HealthCheck)

	requireAuth := auth.AuthMiddleware(svc.jwtService)
	optionalAuth := auth.OptionalAuthMiddleware(svc.jwtService)

	api := router.Group("/api")
	{
		// Auth endpoints (public)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/google", authHandler.GoogleLogin)
		}

		// Protected auth endpoints (require authentication)
		authProtected := api.Group("/auth")
		authProtected.Use(requireAuth)
		{
			authProtected.GET("/profile", authHandler.GetProfile)
			authProtected.PUT("/profile", authHandler.UpdateProfile)
		}

		api.GET("/health", handlers.HealthCheck)

		// Analysis (optional auth - history is saved when authenticated)
		api.POST("/analyze-gap", optionalAuth, analysisHandler.AnalyzeGap)
		api.POST("/parse-document", optionalAuth, documentHandler.ParseDocument)
		api.POST("/extract-skills", documentHandler.ExtractSkills)

		// Single-document career checks
		api.POST("/analyze-job-fit", careerHandler.AnalyzeJobFit)
		api.POST("/recommend-roles", careerHandler.RecommendRoles)
		api.POST("/resume-feedback", careerHandler.ResumeFeedback)

		api.GET("/jobs", jobsHandler.ListJobs)
		api.POST("/jobs", requireAuth, jobsHandler.CreateJob)
		api.GET("/resources", resourcesHandler.GetResources)

		api.GET("/progress", requireAuth, progressHandler.GetProgress)
		api.POST("/progress/save", requireAuth, progressHandler.SaveProgress)
		api.GET("/analyses", requireAuth, progressHandler.ListAnalyses)

		// MCP endpoints for external AI agents
		mcpServer.RegisterRoutes(api)
	}

	return router
}

// newToolRegistry registers the agent tools
func newToolRegistry(svc *services) (*tools.Registry, error) {
	registry := tools.NewRegistry()
	for _, tool := range []tools.Tool{
		tools.NewAnalyzeGapTool(svc.engine, svc.store, svc.cfg.DefaultDomain),
		tools.NewExtractSkillsTool(svc.extractor),
		tools.NewLearningResourcesTool(svc.catalog, svc.cfg.RoadmapMaxResources),
		tools.NewJobFitTool(svc.engine, svc.extractor),
		tools.NewRecommendRolesTool(svc.engine, svc.roles),
		tools.NewResumeFeedbackTool(),
	} {
		if err := registry.Register(tool); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// allowsAnyOrigin reports whether the origin list contains a wildcard.
// Credentials cannot be combined with a wildcard origin.
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
