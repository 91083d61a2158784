package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cvstudio/cv-ai-backend/internal/config"
	"cvstudio/cv-ai-backend/internal/models"
	"cvstudio/cv-ai-backend/internal/services"
)

type StatusHandler struct {
	cfg      *config.Config
	caps     services.Capabilities
	moonshot services.MoonshotService
}

func NewStatusHandler(cfg *config.Config, caps services.Capabilities, moonshot services.MoonshotService) *StatusHandler {
	return &StatusHandler{
		cfg:      cfg,
		caps:     caps,
		moonshot: moonshot,
	}
}

// HandleStatus handles GET /status
func (h *StatusHandler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(models.StatusResponse{
		Status:        "running",
		AIEnabled:     h.cfg.AIEnabled(),
		MockMode:      h.cfg.Pipeline.MockMode,
		HasAPIKey:     h.cfg.HasAPIKey(),
		PDFProcessing: h.caps.PDFProcessing(),
		Endpoint:      h.cfg.Moonshot.Endpoint,
	})
}

// HandleVerifyKey handles GET /api/verify-key. The probe is read-only; it
// never touches process configuration.
func (h *StatusHandler) HandleVerifyKey(c *fiber.Ctx) error {
	if err := h.moonshot.VerifyCredential(c.UserContext()); err != nil {
		return c.JSON(models.VerifyKeyResponse{Valid: false, Error: err.Error()})
	}

	return c.JSON(models.VerifyKeyResponse{Valid: true})
}
