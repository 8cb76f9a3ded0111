package integrity

import (
	"minio-storage/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/bucket", h.HandleBucketCheck)
	group.Get("/roundtrip", h.HandleRoundTrip)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Checks the storage connection, the bucket and a save/read/delete round trip.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if !h.service.Connected() {
		report["connection"] = map[string]interface{}{"status": "error", "error": "storage client unavailable"}
		return c.JSON(report)
	}
	report["connection"] = map[string]interface{}{"status": "ok"}

	if bucket, err := h.service.CheckBucket(ctx, false); err != nil {
		report["bucket"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["bucket"] = bucket
	}

	if roundTrip, err := h.service.RoundTrip(ctx); err != nil {
		report["roundtrip"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["roundtrip"] = roundTrip
	}

	return c.JSON(report)
}

// HandleBucketCheck checks and optionally creates the bucket.
// @Summary Check Bucket
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the bucket if missing"
// @Success 200 {object} checks.BucketReport "Bucket Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/bucket [get]
func (h *Handler) HandleBucketCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckBucket(c.Context(), fix)
	if err != nil {
		l.Error("Bucket check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Exists {
		l.Warn("Bucket missing", zap.String("bucket", report.Bucket))
	}
	return c.JSON(report)
}

// HandleRoundTrip runs the save/read/delete round trip.
// @Summary Storage Round Trip
// @Description Saves, reads back and deletes a small object.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.RoundTripReport "Round Trip Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/roundtrip [get]
func (h *Handler) HandleRoundTrip(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.RoundTrip(c.Context())
	if err != nil {
		l.Error("Round trip failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  err.Error(),
			"report": report,
		})
	}
	return c.JSON(report)
}
