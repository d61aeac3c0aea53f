package routes

import (
	"supplier-portal-backend/domain"
	"supplier-portal-backend/internal/api/handlers"
	"supplier-portal-backend/internal/middleware"
	"supplier-portal-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	IngredientHandler handlers.IngredientHandler
	ModelHandler      handlers.ModelHandler
	AssignmentHandler handlers.AssignmentHandler
	SubmissionHandler handlers.SubmissionHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Ingredients()
	c.Models()
	c.Assignments()
	c.Submissions()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients", c.Middleware.AuthMiddleware(c.JWTService))

	// Supplier view comes before the :id routes so "assigned" is not
	// swallowed as a parameter.
	ingredients.Get("/assigned", c.Middleware.RequireRole(domain.RoleSupplier), c.IngredientHandler.GetAssignedIngredients)

	admin := ingredients.Group("", c.Middleware.RequireRole(domain.RoleAdmin))
	admin.Post("", c.IngredientHandler.AddIngredient)
	admin.Get("", c.IngredientHandler.GetIngredients)
	admin.Get("/:id", c.IngredientHandler.GetIngredientDetails)
	admin.Put("/:id", c.IngredientHandler.UpdateIngredient)
	admin.Delete("/:id", c.IngredientHandler.DeleteIngredient)
}

func (c *Config) Models() {
	models := c.App.Group("/api/v1/models",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RequireRole(domain.RoleAdmin),
	)

	models.Post("", c.ModelHandler.AddModel)
	models.Get("", c.ModelHandler.GetModels)
	models.Get("/:id", c.ModelHandler.GetModelDetails)
	models.Put("/:id", c.ModelHandler.UpdateModel)
	models.Delete("/:id", c.ModelHandler.DeleteModel)
	models.Post("/:id/activate", c.ModelHandler.ActivateModel)
}

func (c *Config) Assignments() {
	assignments := c.App.Group("/api/v1/assignments",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RequireRole(domain.RoleAdmin),
	)

	assignments.Post("/model", c.AssignmentHandler.AssignModel)
	assignments.Get("/model", c.AssignmentHandler.GetModelAssignments)
	assignments.Delete("/model/:ingredientId", c.AssignmentHandler.UnassignModel)

	assignments.Post("/supplier", c.AssignmentHandler.SetSupplierAssignment)
	assignments.Put("/supplier/:ingredientId", c.AssignmentHandler.ReplaceSupplierAssignments)
	assignments.Get("/supplier", c.AssignmentHandler.GetSupplierAssignments)
}

func (c *Config) Submissions() {
	submissions := c.App.Group("/api/v1/submissions", c.Middleware.AuthMiddleware(c.JWTService))

	submissions.Post("", c.Middleware.RequireRole(domain.RoleSupplier), c.SubmissionHandler.CreateSubmission)
	submissions.Get("/mine", c.Middleware.RequireRole(domain.RoleSupplier), c.SubmissionHandler.GetMySubmissions)
	submissions.Post("/:id/report", c.Middleware.RequireRole(domain.RoleSupplier), c.SubmissionHandler.UploadReport)

	submissions.Get("", c.Middleware.RequireRole(domain.RoleAdmin), c.SubmissionHandler.GetSubmissions)
	submissions.Get("/:id", c.SubmissionHandler.GetSubmissionDetails)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
