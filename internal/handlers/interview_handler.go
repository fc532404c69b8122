package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"interview-assistant/internal/models"
	"interview-assistant/internal/services"
)

const (
	defaultRole = "Full Stack Developer"
)

var defaultStack = []string{"React", "Node.js"}

type InterviewHandler struct {
	gemini  services.GeminiService
	prompts *services.PromptBuilder
}

func NewInterviewHandler(gemini services.GeminiService) *InterviewHandler {
	return &InterviewHandler{
		gemini:  gemini,
		prompts: services.NewPromptBuilder(),
	}
}

// HandleGenerateQuestions handles POST /api/generate-questions
func (h *InterviewHandler) HandleGenerateQuestions(c *fiber.Ctx) error {
	log.Println("🤖 Generating interview questions...")

	var req models.GenerateQuestionsRequest
	// Missing or unreadable body falls back to the defaults.
	if err := c.BodyParser(&req); err != nil {
		log.Printf("⚠️  Unreadable request body, using defaults: %v\n", err)
	}

	if req.Role == "" {
		req.Role = defaultRole
	}
	if len(req.Stack) == 0 {
		req.Stack = defaultStack
	}

	prompt := h.prompts.BuildQuestionPrompt(req.Role, req.Stack)

	reply, err := h.gemini.GenerateText(c.Context(), prompt)
	if err != nil {
		log.Printf("❌ Question generation failed: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gemini question generation failed",
		})
	}

	var questions []models.InterviewQuestion
	if !services.DecodeJSON(reply, &questions) {
		log.Printf("❌ Question generation failed: could not decode model reply: %q\n", reply)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gemini question generation failed",
		})
	}

	return c.JSON(fiber.Map{
		"questions": questions,
	})
}

// HandleGradeAnswer handles POST /api/grade-answer
func (h *InterviewHandler) HandleGradeAnswer(c *fiber.Ctx) error {
	log.Println("🤖 Grading answer...")

	var req models.GradeAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("❌ Grading rejected: invalid body: %v\n", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing data",
		})
	}

	if req.Question == "" || req.Answer == "" {
		log.Println("❌ Grading rejected: missing question or answer")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing data",
		})
	}

	prompt := h.prompts.BuildGradingPrompt(req.Question, req.Answer)

	reply, err := h.gemini.GenerateText(c.Context(), prompt)
	if err != nil {
		log.Printf("❌ Grading failed: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gemini grading failed",
		})
	}

	// Decoded fields pass through as-is; a reply with absent or odd fields
	// still answers 200 as long as the JSON parses.
	var result models.GradingResult
	if !services.DecodeJSON(reply, &result) {
		log.Printf("❌ Grading failed: could not decode model reply: %q\n", reply)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gemini grading failed",
		})
	}

	return c.JSON(result)
}

// HandleFinalSummary handles POST /api/final-summary
func (h *InterviewHandler) HandleFinalSummary(c *fiber.Ctx) error {
	log.Println("🤖 Generating final summary...")

	var req models.FinalSummaryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("❌ Summary rejected: invalid body: %v\n", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing candidate data",
		})
	}

	if req.Candidate == nil || req.Candidate.Answers == nil {
		log.Println("❌ Summary rejected: missing candidate or answers")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing candidate data",
		})
	}

	prompt := h.prompts.BuildSummaryPrompt(req.Candidate.Name, req.Candidate.Answers)

	reply, err := h.gemini.GenerateText(c.Context(), prompt)
	if err != nil {
		log.Printf("❌ Summary failed: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gemini summary failed",
		})
	}

	var summary models.InterviewSummary
	if !services.DecodeJSON(reply, &summary) {
		log.Printf("❌ Summary failed: could not decode model reply: %q\n", reply)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gemini summary failed",
		})
	}

	return c.JSON(summary)
}
