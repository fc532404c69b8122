package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-assistant/internal/apperr"
	"interview-assistant/internal/models"
)

type fakeGemini struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newInterviewApp(gemini *fakeGemini) *fiber.App {
	app := fiber.New()
	h := NewInterviewHandler(gemini)

	api := app.Group("/api")
	api.Post("/generate-questions", h.HandleGenerateQuestions)
	api.Post("/grade-answer", h.HandleGradeAnswer)
	api.Post("/final-summary", h.HandleFinalSummary)

	return app
}

func doJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()

	var req *http.Request
	if payload == nil {
		req = httptest.NewRequest(http.MethodPost, path, nil)
	} else {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, target))
}

func TestGenerateQuestions_DefaultsWithoutBody(t *testing.T) {
	gemini := &fakeGemini{
		reply: `[{"id":"q1","difficulty":"easy","text":"What is JSX?"}]`,
	}
	app := newInterviewApp(gemini)

	resp := doJSON(t, app, "/api/generate-questions", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, gemini.prompts, 1)
	assert.Contains(t, gemini.prompts[0], "Full Stack Developer")
	assert.Contains(t, gemini.prompts[0], "React, Node.js")

	var body struct {
		Questions []models.InterviewQuestion `json:"questions"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Questions, 1)
	assert.Equal(t, "q1", body.Questions[0].ID)
}

func TestGenerateQuestions_CustomRoleAndStack(t *testing.T) {
	gemini := &fakeGemini{reply: `[]`}
	app := newInterviewApp(gemini)

	resp := doJSON(t, app, "/api/generate-questions", models.GenerateQuestionsRequest{
		Role:  "Backend Developer",
		Stack: []string{"Go", "PostgreSQL"},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, gemini.prompts, 1)
	assert.Contains(t, gemini.prompts[0], "Backend Developer")
	assert.Contains(t, gemini.prompts[0], "Go, PostgreSQL")
}

func TestGenerateQuestions_GatewayFailure(t *testing.T) {
	gemini := &fakeGemini{err: apperr.ErrGatewayFailed}
	app := newInterviewApp(gemini)

	resp := doJSON(t, app, "/api/generate-questions", nil)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Gemini question generation failed", body["error"])
}

func TestGenerateQuestions_UndecodableReply(t *testing.T) {
	gemini := &fakeGemini{reply: "I cannot help with that."}
	app := newInterviewApp(gemini)

	resp := doJSON(t, app, "/api/generate-questions", nil)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Gemini question generation failed", body["error"])
}

func TestGradeAnswer_Success(t *testing.T) {
	gemini := &fakeGemini{
		reply: "Here you go:\n{\"score\":7,\"feedback\":\"Good\"}\nHope that helps",
	}
	app := newInterviewApp(gemini)

	resp := doJSON(t, app, "/api/grade-answer", models.GradeAnswerRequest{
		Question: "What is a goroutine?",
		Answer:   "A lightweight thread.",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.GradingResult
	decodeBody(t, resp, &result)
	assert.Equal(t, 7.0, result.Score)
	assert.Equal(t, "Good", result.Feedback)
}

func TestGradeAnswer_MissingAnswer(t *testing.T) {
	gemini := &fakeGemini{reply: `{"score":10,"feedback":"unused"}`}
	app := newInterviewApp(gemini)

	resp := doJSON(t, app, "/api/grade-answer", models.GradeAnswerRequest{
		Question: "What is a goroutine?",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, gemini.prompts, "gateway must not be called on validation failure")

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Missing data", body["error"])
}

func TestGradeAnswer_GatewayFailure(t *testing.T) {
	gemini := &fakeGemini{err: errors.New("quota exceeded")}
	app := newInterviewApp(gemini)

	resp := doJSON(t, app, "/api/grade-answer", models.GradeAnswerRequest{
		Question: "What is a goroutine?",
		Answer:   "A lightweight thread.",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Gemini grading failed", body["error"])
}

func TestFinalSummary_Success(t *testing.T) {
	gemini := &fakeGemini{
		reply: "```json\n{\"finalScorePercent\":82,\"summary\":\"Strong fundamentals.\"}\n```",
	}
	app := newInterviewApp(gemini)

	resp := doJSON(t, app, "/api/final-summary", models.FinalSummaryRequest{
		Candidate: &models.Candidate{
			Name: "Jane Doe",
			Answers: []models.CandidateAnswer{
				{Question: "What is REST?", Answer: "An architectural style."},
			},
		},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, gemini.prompts, 1)
	assert.Contains(t, gemini.prompts[0], "Jane Doe")
	assert.Contains(t, gemini.prompts[0], "What is REST?")

	var summary models.InterviewSummary
	decodeBody(t, resp, &summary)
	assert.Equal(t, 82.0, summary.FinalScorePercent)
	assert.Equal(t, "Strong fundamentals.", summary.Summary)
}

func TestFinalSummary_MissingCandidate(t *testing.T) {
	gemini := &fakeGemini{reply: `{}`}
	app := newInterviewApp(gemini)

	resp := doJSON(t, app, "/api/final-summary", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, gemini.prompts)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Missing candidate data", body["error"])
}

func TestFinalSummary_MissingAnswers(t *testing.T) {
	gemini := &fakeGemini{reply: `{}`}
	app := newInterviewApp(gemini)

	resp := doJSON(t, app, "/api/final-summary", models.FinalSummaryRequest{
		Candidate: &models.Candidate{Name: "Jane Doe"},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Missing candidate data", body["error"])
}

func TestFinalSummary_GatewayFailure(t *testing.T) {
	gemini := &fakeGemini{err: apperr.ErrGatewayFailed}
	app := newInterviewApp(gemini)

	resp := doJSON(t, app, "/api/final-summary", models.FinalSummaryRequest{
		Candidate: &models.Candidate{
			Name:    "Jane Doe",
			Answers: []models.CandidateAnswer{},
		},
	})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Gemini summary failed", body["error"])
}
