package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jihokoo/notequiz/config"
	"github.com/jihokoo/notequiz/database"
	_ "github.com/jihokoo/notequiz/docs" // Swagger docs
	"github.com/jihokoo/notequiz/internal/controller"
	"github.com/jihokoo/notequiz/internal/logger"
	"github.com/jihokoo/notequiz/internal/model"
	"github.com/jihokoo/notequiz/internal/repository"
	"github.com/jihokoo/notequiz/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title NoteQuiz API
// @version 1.0
// @description Turns lecture transcripts into summaries and practice quizzes with AI grading.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewApiKeyRepository,
			repository.NewNoteRepository,
			repository.NewNoteHashtagRepository,
			repository.NewSummaryRepository,
			repository.NewQuestionRepository,
			repository.NewOptionRepository,
			repository.NewGradingRepository,
		),

		// Services layer
		fx.Provide(
			service.NewGeminiLLMService,
			service.NewNoteDataProcessor,
			service.NewSubmitNoteService,
			service.NewSubmitQuizService,
		),

		// API controllers layer
		fx.Provide(
			controller.NewNoteController,
			controller.NewQuizController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	noteCtrl *controller.NoteController,
	quizCtrl *controller.QuizController,
) {
	api := router.Group("/api/v1")
	{
		api.POST("/notes", noteCtrl.SubmitNote)
		api.GET("/notes", noteCtrl.GetAllNotes)
		api.GET("/notes/:note_id", noteCtrl.GetNoteDetails)
		api.DELETE("/notes/:note_id", noteCtrl.DeleteNote)
		api.POST("/notes/:note_id/grade", quizCtrl.GradeQuiz)
		api.GET("/questions/:question_id/grading", quizCtrl.GetGradingByQuestionID)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("NoteQuiz server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.ApiKey{},
		&model.Note{},
		&model.Hashtag{},
		&model.NoteHashtag{},
		&model.Summary{},
		&model.Question{},
		&model.Option{},
		&model.Grading{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
