package handlers

import (
	"fmt"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"cvstudio/cv-ai-backend/internal/models"
	"cvstudio/cv-ai-backend/internal/services"
)

type ProcessHandler struct {
	pipeline    services.PipelineService
	maxFileSize int64
}

func NewProcessHandler(pipeline services.PipelineService, maxFileSize int64) *ProcessHandler {
	return &ProcessHandler{
		pipeline:    pipeline,
		maxFileSize: maxFileSize,
	}
}

// HandleOptimize handles POST /api/optimize-cv
func (h *ProcessHandler) HandleOptimize(c *fiber.Ctx) error {
	style := c.FormValue("style", "modern")
	log.Printf("📝 Received CV optimization request (style: %s)\n", style)

	return h.process(c, models.OperationOptimize, style)
}

// HandleTranslate handles POST /api/translate-cv
func (h *ProcessHandler) HandleTranslate(c *fiber.Ctx) error {
	language := c.FormValue("language", "en")
	log.Printf("🌐 Received CV translation request (language: %s)\n", language)

	return h.process(c, models.OperationTranslate, language)
}

func (h *ProcessHandler) process(c *fiber.Ctx, op models.OperationKind, parameter string) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	if fileHeader.Size == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Empty file uploaded",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to open uploaded file")
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to read uploaded file")
	}

	req := &models.OperationRequest{
		Operation: op,
		Parameter: parameter,
		Filename:  fileHeader.Filename,
		Content:   content,
	}

	envelope, err := h.pipeline.Process(c.UserContext(), req)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("📤 Sending %s response for %s\n", op, fileHeader.Filename)
	return c.JSON(envelope)
}
