package assessment

import (
	"github.com/google/uuid"
	"github.com/saulo-duarte/langassess/internal/bank"
)

type StartAssessmentDTO struct {
	Languages []string `json:"languages"`
}

type ToggleAnswerDTO struct {
	Option *int `json:"option"`
}

// PublicQuestion is what the candidate sees: no correct indices, no difficulty.
type PublicQuestion struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
}

type Snapshot struct {
	ID              uuid.UUID       `json:"id"`
	Languages       []bank.Language `json:"languages"`
	State           State           `json:"state"`
	Index           int             `json:"index"`
	Total           int             `json:"total"`
	IsLast          bool            `json:"is_last"`
	TimeLeft        int             `json:"time_left"`
	TimePerQuestion int             `json:"time_per_question"`
	Question        *PublicQuestion `json:"question,omitempty"`
	Selected        []int           `json:"selected"`
	Skipped         []int           `json:"skipped"`
	CurrentSkipped  bool            `json:"current_skipped"`
	Notice          string          `json:"notice,omitempty"`
}

type Feedback struct {
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	CorrectAnswers []string `json:"correct_answers"`
	UserAnswers    []string `json:"user_answers"`
	Status         Status   `json:"status"`
}

type Result struct {
	ID          uuid.UUID       `json:"id"`
	Languages   []bank.Language `json:"languages"`
	Score       float64         `json:"score"`
	Total       int             `json:"total"`
	Passed      bool            `json:"passed"`
	Message     string          `json:"message"`
	Feedback    []Feedback      `json:"feedback"`
	Skipped     []int           `json:"skipped"`
	UploadToken string          `json:"upload_token,omitempty"`
}

const (
	passMessage    = "Congratulations! You passed the test. Upload your resume."
	failMessage    = "Try again later"
	timeoutNotice  = "Time's up! Question skipped"
	noLanguagesMsg = "Please select at least one language to start the test."
)
