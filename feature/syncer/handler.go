package syncer

import (
	"indexer-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the sync feature.
type Handler struct {
	service *Service
	log     *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/", h.HandleTrigger)
	group.Get("/status", h.HandleStatus)
}

// HandleTrigger runs a reconciliation and returns its report. Concurrent
// triggers (including a scheduler tick) share one run. Pass dry_run=true to
// compute the diff without writing.
func (h *Handler) HandleTrigger(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.log, c)
	dryRun := c.QueryBool("dry_run", false)

	report, err := h.service.Run(c.Context(), dryRun)
	if err != nil {
		l.Error("sync run failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// HandleStatus returns the report of the most recent run.
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	report := h.service.LastReport()
	if report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no run has completed yet",
		})
	}
	return c.JSON(report)
}
