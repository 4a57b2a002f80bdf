package routes

import (
	"github.com/gofiber/fiber/v2"

	"hajj-admin/internal/handlers"
	"hajj-admin/internal/middleware"
	"hajj-admin/internal/repositories"
)

func registerAuthRoutes(api fiber.Router, users *repositories.UserRepository, deps Deps) {
	h := handlers.NewAuthHandler(users, []byte(deps.JWTSecret), deps.Log)
	auth := api.Group("/auth")

	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)
	auth.Get("/profile", middleware.Protected([]byte(deps.JWTSecret)), h.Profile)
	auth.Post("/change-password", middleware.Protected([]byte(deps.JWTSecret)), h.ChangePassword)
}
