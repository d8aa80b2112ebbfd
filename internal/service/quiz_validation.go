package service

import (
	"fmt"
	"strings"

	"quizdeck_backend/internal/model"
)

const (
	MinQuestions = 1
	MaxQuestions = 50
	MinChoices   = 2
	MaxChoices   = 6
	MaxTimeLimit = 180 // Minutes

	// UnsetAnswer is the client-side sentinel for "no choice selected".
	UnsetAnswer = -1
)

// QuizFormRequest is the untrusted quiz submission payload.
type QuizFormRequest struct {
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	Category      string                `json:"category"`
	Difficulty    string                `json:"difficulty"`
	IsTimeLimited bool                  `json:"isTimeLimited"`
	TimeLimit     int                   `json:"timeLimit"`
	Questions     []QuestionFormRequest `json:"questions"`
}

type QuestionFormRequest struct {
	Title         string   `json:"title"`
	Choices       []string `json:"choices"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// FieldError names one validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors carries every failure of a quiz form at once.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ValidateQuizForm checks the full payload and collects every failure
// rather than stopping at the first. Pure and deterministic.
func ValidateQuizForm(req QuizFormRequest) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, FieldError{"title", "title is required"})
	}
	if strings.TrimSpace(req.Description) == "" {
		errs = append(errs, FieldError{"description", "description is required"})
	}
	if strings.TrimSpace(req.Category) == "" {
		errs = append(errs, FieldError{"category", "category is required"})
	}

	switch model.Difficulty(req.Difficulty) {
	case model.Beginner, model.Intermediate, model.Advanced:
	default:
		errs = append(errs, FieldError{"difficulty", "difficulty must be BEGINNER, INTERMEDIATE or ADVANCED"})
	}

	if req.IsTimeLimited && (req.TimeLimit < 1 || req.TimeLimit > MaxTimeLimit) {
		errs = append(errs, FieldError{"timeLimit", fmt.Sprintf("time limit must be between 1 and %d minutes", MaxTimeLimit)})
	}

	if len(req.Questions) < MinQuestions || len(req.Questions) > MaxQuestions {
		errs = append(errs, FieldError{"questions", fmt.Sprintf("quiz must have between %d and %d questions", MinQuestions, MaxQuestions)})
	}

	for i, q := range req.Questions {
		field := fmt.Sprintf("questions[%d]", i)

		if strings.TrimSpace(q.Title) == "" {
			errs = append(errs, FieldError{field + ".title", "question title is required"})
		}

		if len(q.Choices) < MinChoices || len(q.Choices) > MaxChoices {
			errs = append(errs, FieldError{field + ".choices", fmt.Sprintf("question must have between %d and %d choices", MinChoices, MaxChoices)})
		}
		for j, choice := range q.Choices {
			if strings.TrimSpace(choice) == "" {
				errs = append(errs, FieldError{fmt.Sprintf("%s.choices[%d]", field, j), "choice must not be blank"})
			}
		}

		if q.CorrectAnswer == UnsetAnswer {
			errs = append(errs, FieldError{field + ".correctAnswer", "a correct answer must be selected"})
		} else if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Choices) {
			errs = append(errs, FieldError{field + ".correctAnswer", "correct answer must reference one of the choices"})
		}
	}

	return errs
}
