package services

import (
	"strings"
	"testing"

	"interview-assistant/internal/models"
)

func TestBuildQuestionPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildQuestionPrompt("Backend Developer", []string{"Go", "PostgreSQL"})

	for _, want := range []string{"Backend Developer", "Go, PostgreSQL", "2 easy", "2 medium", "2 hard"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("question prompt missing %q", want)
		}
	}
}

func TestBuildGradingPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildGradingPrompt("What is a goroutine?", "A lightweight thread managed by the runtime.")

	for _, want := range []string{"What is a goroutine?", "lightweight thread", "0 to 10"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("grading prompt missing %q", want)
		}
	}
}

func TestBuildSummaryPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	answers := []models.CandidateAnswer{
		{Question: "What is REST?", Answer: "An architectural style for APIs."},
	}
	prompt := pb.BuildSummaryPrompt("Jane Doe", answers)

	for _, want := range []string{"Jane Doe", "What is REST?", "finalScorePercent"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("summary prompt missing %q", want)
		}
	}
}
