package config

import (
	"os"
	"time"

	"supplier-portal-backend/internal/api/handlers"
	"supplier-portal-backend/internal/api/routes"
	"supplier-portal-backend/internal/middleware"
	"supplier-portal-backend/internal/utils"
	"supplier-portal-backend/internal/utils/storage"
	"supplier-portal-backend/pkg/assignment"
	"supplier-portal-backend/pkg/ingredient"
	"supplier-portal-backend/pkg/jwt"
	"supplier-portal-backend/pkg/qualitymodel"
	"supplier-portal-backend/pkg/submission"
	"supplier-portal-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	modelRepository := qualitymodel.NewModelRepository(db)
	assignmentRepository := assignment.NewAssignmentRepository(db)
	submissionRepository := submission.NewSubmissionRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	modelService := qualitymodel.NewModelService(modelRepository)
	assignmentService := assignment.NewAssignmentService(
		assignmentRepository,
		ingredientRepository,
		modelRepository,
		userRepository,
	)
	submissionService := submission.NewSubmissionService(
		submissionRepository,
		assignmentService,
		userRepository,
		s3,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, assignmentService, validator)
	modelHandler := handlers.NewModelHandler(modelService, validator)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService, validator)
	submissionHandler := handlers.NewSubmissionHandler(submissionService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		IngredientHandler: ingredientHandler,
		ModelHandler:      modelHandler,
		AssignmentHandler: assignmentHandler,
		SubmissionHandler: submissionHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
