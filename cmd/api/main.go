package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"vidyasathi_backend/internal/controller"
	"vidyasathi_backend/pkg/config"
	"vidyasathi_backend/pkg/cron"
	"vidyasathi_backend/pkg/database"
	"vidyasathi_backend/pkg/leadstore"
	"vidyasathi_backend/pkg/leadstore/snapshot"
	"vidyasathi_backend/pkg/seed"
)

func setupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Lead pipeline
	leads := api.Group("/leads")
	leads.Get("/", controller.ListLeads)
	leads.Post("/", controller.CreateLead)
	leads.Get("/export", controller.ExportLeads)
	leads.Get("/:id", controller.GetLead)
	leads.Put("/:id", controller.UpdateLead)
	leads.Delete("/:id", controller.DeleteLead)
	leads.Put("/:id/status", controller.UpdateLeadStatus)
	leads.Post("/:id/contacts", controller.AddContactEntry)

	// Follow-up reminders
	leads.Post("/:id/reminders", controller.AddReminder)
	leads.Put("/:id/reminders/:reminder_id/toggle", controller.ToggleReminder)
	leads.Delete("/:id/reminders/:reminder_id", controller.DeleteReminder)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboard.Get("/stats", controller.GetDashboardStats)
	dashboard.Get("/analytics", controller.GetAnalytics)
}

// newSnapshotStore wires the configured persistence backend behind the
// snapshot port. Unknown backends fall back to memory with a warning so the
// dashboard still comes up.
func newSnapshotStore(cfg *config.Config) snapshot.Store {
	sc := cfg.Snapshot

	switch sc.Backend {
	case "file":
		snap, err := snapshot.NewFile(sc.FilePath)
		if err != nil {
			log.Fatal("Could not initialize file snapshot:", err)
		}
		return snap
	case "postgres":
		if sc.DatabaseURL == "" {
			log.Fatal("DATABASE_URL is not set")
		}
		database.InitDB(sc.DatabaseURL)
		snap, err := snapshot.NewPostgres(database.GetDB(), sc.Key)
		if err != nil {
			log.Fatal("Could not initialize postgres snapshot:", err)
		}
		return snap
	case "redis":
		snap, err := snapshot.NewRedis(sc.RedisURL, sc.Key)
		if err != nil {
			log.Fatal("Could not initialize redis snapshot:", err)
		}
		return snap
	case "s3":
		snap, err := snapshot.NewS3(snapshot.S3Config{
			Region:    sc.S3Region,
			Bucket:    sc.S3Bucket,
			AccessKey: sc.S3AccessKey,
			SecretKey: sc.S3SecretKey,
			Endpoint:  sc.S3Endpoint,
		}, sc.Key)
		if err != nil {
			log.Fatal("Could not initialize s3 snapshot:", err)
		}
		return snap
	case "memory":
		return snapshot.NewMemory()
	default:
		log.Printf("Unknown snapshot backend %q, using memory", sc.Backend)
		return snapshot.NewMemory()
	}
}

func main() {
	cfg := config.Load()

	store, err := leadstore.New(newSnapshotStore(cfg))
	if err != nil {
		log.Fatal("Could not restore lead collection:", err)
	}
	log.Printf("Lead collection restored: %d leads", store.Count())

	seed.SeedDemoLeads(store)

	controller.InitLeadController(store)
	cron.InitReminderCron(store)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
