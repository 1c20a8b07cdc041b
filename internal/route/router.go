package router

import (
	bookinghandler "studio-booking-service/internal/module/booking/handler"
	cataloghandler "studio-booking-service/internal/module/catalog/handler"
	leadhandler "studio-booking-service/internal/module/lead/handler"
	wizardhandler "studio-booking-service/internal/module/wizard/handler"
	"studio-booking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(
	app *fiber.App,
	handlerWizard *wizardhandler.WizardHandler,
	handlerCatalog *cataloghandler.CatalogHandler,
	handlerLead *leadhandler.LeadHandler,
	handlerBooking *bookinghandler.BookingHandler,
	m *middleware.Middleware,
) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	// public routes
	v1 := Api.Group("/v1")
	v1.Get("/packages", handlerCatalog.ShowPackages)
	v1.Get("/packages/:id", handlerCatalog.ShowPackage)

	v1.Post("/track", m.ResolveVisitor, handlerLead.Track)
	v1.Post("/bookings", m.ResolveVisitor, handlerBooking.CreateBooking)

	wizard := v1.Group("/wizard", m.ResolveVisitor)
	wizard.Post("/start", handlerWizard.StartWizard)
	wizard.Post("/event", handlerWizard.SubmitEventDetails)
	wizard.Get("/packages", handlerWizard.ShowPackages)
	wizard.Post("/package", handlerWizard.SelectPackage)
	wizard.Put("/contact", handlerWizard.UpdateContact)
	wizard.Post("/submit", handlerWizard.SubmitWizard)

	private := Api.Group("/private", m.ValidateStaff)
	private.Get("/leads", handlerLead.ShowLeads)
	private.Get("/bookings", handlerBooking.ShowBookings)
	private.Get("/bookings/:id", handlerBooking.ShowBooking)
	private.Post("/packages", handlerCatalog.CreatePackage)
	private.Put("/packages/:id", handlerCatalog.UpdatePackage)
	private.Delete("/packages/:id", handlerCatalog.DeletePackage)

	return app

}
