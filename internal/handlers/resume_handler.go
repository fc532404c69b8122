package handlers

import (
	"errors"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"interview-assistant/internal/apperr"
	"interview-assistant/internal/models"
	"interview-assistant/internal/services"
)

type ResumeHandler struct {
	extractor services.TextExtractor
}

func NewResumeHandler(extractor services.TextExtractor) *ResumeHandler {
	return &ResumeHandler{
		extractor: extractor,
	}
}

// HandleParseResume handles POST /api/parse-resume
func (h *ResumeHandler) HandleParseResume(c *fiber.Ctx) error {
	log.Println("📄 Parsing uploaded resume...")

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		log.Printf("❌ Resume parse rejected: no file uploaded: %v\n", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Printf("❌ Failed to open uploaded file: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to parse resume",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		log.Printf("❌ Failed to read uploaded file: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to parse resume",
		})
	}

	text, err := h.extractor.ExtractText(data, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, apperr.ErrUnsupportedFormat) {
			log.Printf("❌ Resume parse rejected: %v\n", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Only PDF or DOCX allowed",
			})
		}

		log.Printf("❌ Resume extraction failed: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to parse resume",
		})
	}

	return c.JSON(models.ExtractedProfile{
		Name:  models.Optional(services.ExtractName(text)),
		Email: models.Optional(services.ExtractEmail(text)),
		Phone: models.Optional(services.ExtractPhone(text)),
		Text:  text,
	})
}
