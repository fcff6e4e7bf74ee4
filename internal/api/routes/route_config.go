package routes

import (
	"RecipeHub-Backend/internal/api/handlers"
	"RecipeHub-Backend/internal/middleware"
	"RecipeHub-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	RecipeHandler handlers.RecipeHandler
	SocialHandler handlers.SocialHandler
	Middleware    middleware.Middleware
	JWTService    jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Social()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipes)
		recipes.Get("/liked", c.Middleware.AuthMiddleware(c.JWTService), c.SocialHandler.GetLikedRecipes)
		recipes.Get("/mine", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.GetOwnRecipes)
		recipes.Get("/:id", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipeDetail)
		recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
		recipes.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.DeleteRecipe)
		recipes.Post("/:id/image", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UploadRecipeImage)
	}
}

func (c *Config) Social() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("/:id/comments", c.SocialHandler.GetRecipeComments)
		recipes.Post("/:id/comments", c.Middleware.AuthMiddleware(c.JWTService), c.SocialHandler.CreateComment)
		recipes.Post("/:id/like", c.Middleware.AuthMiddleware(c.JWTService), c.SocialHandler.ToggleLike)
		recipes.Get("/:id/likes", c.SocialHandler.GetRecipeLikes)
	}

	comments := c.App.Group("/api/v1/comments", c.Middleware.AuthMiddleware(c.JWTService))
	{
		comments.Put("/:id", c.SocialHandler.UpdateComment)
		comments.Delete("/:id", c.SocialHandler.DeleteComment)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
