package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"interview-assistant/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionPrompt creates the prompt for interview question generation.
func (pb *PromptBuilder) BuildQuestionPrompt(role string, stack []string) string {
	return fmt.Sprintf(`You are an expert technical interviewer preparing a screening interview for a %s position.

TECH STACK: %s

Generate exactly 6 interview questions: 2 easy, 2 medium, and 2 hard. Easy questions cover fundamentals, medium questions cover practical usage, and hard questions cover architecture and trade-offs.

Return your response as a JSON array in the following format:
[
  {"id": "q1", "difficulty": "easy", "text": "<question>"},
  {"id": "q2", "difficulty": "easy", "text": "<question>"},
  {"id": "q3", "difficulty": "medium", "text": "<question>"},
  {"id": "q4", "difficulty": "medium", "text": "<question>"},
  {"id": "q5", "difficulty": "hard", "text": "<question>"},
  {"id": "q6", "difficulty": "hard", "text": "<question>"}
]

Return ONLY the JSON array, no additional commentary.`,
		role, strings.Join(stack, ", "))
}

// BuildGradingPrompt creates the prompt for grading a single answer.
func (pb *PromptBuilder) BuildGradingPrompt(question, answer string) string {
	return fmt.Sprintf(`You are an expert technical interviewer grading a candidate's answer.

QUESTION:
%s

CANDIDATE'S ANSWER:
%s

Score the answer from 0 to 10 based on correctness, depth, and clarity. An empty or irrelevant answer scores 0.

Return your response in the following JSON format:
{
  "score": <0-10>,
  "feedback": "<1-2 sentences explaining the score>"
}

Be objective and specific. Return ONLY the JSON object.`,
		question, answer)
}

// BuildSummaryPrompt creates the prompt for the overall interview summary.
func (pb *PromptBuilder) BuildSummaryPrompt(candidateName string, answers []models.CandidateAnswer) string {
	serialized, err := json.Marshal(answers)
	if err != nil {
		serialized = []byte("[]")
	}

	return fmt.Sprintf(`You are an expert technical hiring manager reviewing a completed screening interview for candidate %s.

INTERVIEW TRANSCRIPT (question/answer pairs):
%s

Assess the candidate's overall performance across all answers.

Return your response in the following JSON format:
{
  "finalScorePercent": <0-100>,
  "summary": "<2-3 sentences on strengths, gaps, and a hiring recommendation>"
}

Be direct and actionable. Return ONLY the JSON object.`,
		candidateName, string(serialized))
}
