package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"hajj-admin/internal/filestore"
	"hajj-admin/internal/repositories"
	"hajj-admin/pkg/logger"
	"hajj-admin/pkg/metrics"
)

// Deps carries everything route registration needs.
type Deps struct {
	DB        *mongo.Database
	Store     *filestore.Store
	Log       logger.Logger
	Metrics   *metrics.Metrics
	JWTSecret string
}

// Register mounts every API route group under /api.
func Register(app *fiber.App, deps Deps) {
	api := app.Group("/api")

	users := repositories.NewUserRepository(deps.DB)
	guides := repositories.NewGuideRepository(deps.DB)
	pilgrims := repositories.NewPilgrimRepository(deps.DB)
	linked := repositories.NewLinkedPilgrimRepository(deps.DB)
	movements := repositories.NewMovementRepository(deps.DB)
	hotels := repositories.NewHotelRepository(deps.DB)
	hotelPilgrims := repositories.NewHotelPilgrimRepository(deps.DB)
	docs := repositories.NewPassportVisaRepository(deps.DB)

	registerAuthRoutes(api, users, deps)
	registerGuideRoutes(api, guides, deps)
	registerPilgrimRoutes(api, pilgrims, linked, deps)
	registerMovementRoutes(api, movements, deps)
	registerHotelRoutes(api, hotels, deps)
	registerHotelPilgrimRoutes(api, hotelPilgrims, deps)
	registerPassportVisaRoutes(api, docs, deps)
	registerDashboardRoutes(api, pilgrims, guides, hotels, hotelPilgrims, movements, deps)
}
