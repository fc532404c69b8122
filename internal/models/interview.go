package models

// InterviewQuestion is produced by the model. The id comes from the model
// reply untouched; the server assigns nothing.
type InterviewQuestion struct {
	ID         string `json:"id"`
	Difficulty string `json:"difficulty"`
	Text       string `json:"text"`
}

type GradingResult struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

type InterviewSummary struct {
	FinalScorePercent float64 `json:"finalScorePercent"`
	Summary           string  `json:"summary"`
}

// Candidate is caller-supplied on the final-summary endpoint. This service
// never stores or mutates it.
type Candidate struct {
	Name    string            `json:"name"`
	Answers []CandidateAnswer `json:"answers"`
}

type CandidateAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type GenerateQuestionsRequest struct {
	Role  string   `json:"role"`
	Stack []string `json:"stack"`
}

type GradeAnswerRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FinalSummaryRequest struct {
	Candidate *Candidate `json:"candidate"`
}
