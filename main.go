package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"unireg/config"
	adminControllers "unireg/controllers/admin"
	authControllers "unireg/controllers/auth"
	courseControllers "unireg/controllers/course"
	registrationControllers "unireg/controllers/registration"
	"unireg/database"
	"unireg/repository"
	adminRoutes "unireg/routers/adminRoutes"
	authRoutes "unireg/routers/authRoutes"
	courseRoutes "unireg/routers/courseRoutes"
	"unireg/services"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	if err := database.SeedAdmin(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	// Wire repositories, services and controllers explicitly; nothing
	// below reaches for the database on its own.
	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	userRepo := repository.NewUserRepository(db)
	resetRepo := repository.NewPasswordResetRepository(db)

	catalog := services.NewCatalogService(courseRepo, enrollmentRepo)
	ledger := services.NewRegistrationService(enrollmentRepo, courseRepo)
	reports := services.NewReportsService(courseRepo, enrollmentRepo, userRepo)

	authCtrl := authControllers.NewAuthController(userRepo, resetRepo)
	courseCtrl := courseControllers.NewCourseController(catalog, reports)
	regCtrl := registrationControllers.NewRegistrationController(ledger, catalog, reports, userRepo)
	adminCtrl := adminControllers.NewAdminController(catalog, reports)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, authCtrl)
	courseRoutes.SetupCourseRoutes(app, courseCtrl, regCtrl)
	adminRoutes.SetupAdminRoutes(app, adminCtrl)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
