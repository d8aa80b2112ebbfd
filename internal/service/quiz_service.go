package service

import (
	"quizdeck_backend/internal/model"
	"quizdeck_backend/internal/repository"
)

type QuizService struct {
	QuizRepo     *repository.QuizRepository
	BookmarkRepo *repository.BookmarkRepository
	RatingRepo   *repository.RatingRepository
}

func NewQuizService(quizRepo *repository.QuizRepository, bookmarkRepo *repository.BookmarkRepository, ratingRepo *repository.RatingRepository) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		BookmarkRepo: bookmarkRepo,
		RatingRepo:   ratingRepo,
	}
}

func buildQuiz(ownerID uint, req QuizFormRequest) (*model.Quiz, []model.Question) {
	timeLimit := req.TimeLimit
	if !req.IsTimeLimited {
		// Only meaningful when the quiz is time-limited.
		timeLimit = 0
	}

	quiz := &model.Quiz{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Difficulty:    model.Difficulty(req.Difficulty),
		IsTimeLimited: req.IsTimeLimited,
		TimeLimit:     timeLimit,
		UserID:        ownerID,
	}

	questions := make([]model.Question, len(req.Questions))
	for i, q := range req.Questions {
		questions[i] = model.Question{
			Title:         q.Title,
			Choices:       model.StringList(q.Choices),
			CorrectAnswer: q.CorrectAnswer,
		}
	}

	return quiz, questions
}

// CreateQuiz validates the form and writes the quiz with its question set
// atomically. Returns the new quiz id.
func (s *QuizService) CreateQuiz(ownerID uint, req QuizFormRequest) (uint, error) {
	if errs := ValidateQuizForm(req); len(errs) > 0 {
		return 0, errs
	}

	quiz, questions := buildQuiz(ownerID, req)
	if err := s.QuizRepo.CreateWithQuestions(quiz, questions); err != nil {
		return 0, err
	}
	return quiz.ID, nil
}

// UpdateQuiz validates the form and replaces the quiz and its questions in
// one transaction. Ownership misses surface as ErrQuizNotFound, not as a
// distinct "exists but not yours" answer.
func (s *QuizService) UpdateQuiz(quizID, callerID uint, req QuizFormRequest) (uint, error) {
	if errs := ValidateQuizForm(req); len(errs) > 0 {
		return 0, errs
	}

	quiz, questions := buildQuiz(callerID, req)
	if err := s.QuizRepo.UpdateWithQuestions(quizID, callerID, quiz, questions); err != nil {
		return 0, err
	}
	return quizID, nil
}

func (s *QuizService) GetQuiz(id uint) (*model.Quiz, error) {
	return s.QuizRepo.FindByID(id)
}

func (s *QuizService) ListQuizzes(callerID uint, category string, page, limit int) ([]repository.QuizListRow, int64, error) {
	return s.QuizRepo.List(callerID, category, page, limit)
}

func (s *QuizService) ListOwnQuizzes(ownerID uint) ([]model.Quiz, error) {
	return s.QuizRepo.ListByOwner(ownerID)
}

func (s *QuizService) DeleteQuiz(quizID, callerID uint) error {
	return s.QuizRepo.Delete(quizID, callerID)
}

// ToggleBookmark flips bookmark presence after confirming the quiz exists.
func (s *QuizService) ToggleBookmark(quizID, userID uint) (bool, error) {
	if _, err := s.QuizRepo.FindByID(quizID); err != nil {
		return false, err
	}
	return s.BookmarkRepo.Toggle(quizID, userID)
}

func (s *QuizService) ListBookmarks(userID uint) ([]repository.BookmarkedQuizRow, error) {
	return s.BookmarkRepo.ListByUser(userID)
}

// RateQuiz upserts the caller's rating and returns the fresh average.
func (s *QuizService) RateQuiz(quizID, userID uint, rating int) (float64, error) {
	if rating < 1 || rating > 5 {
		return 0, ValidationErrors{{Field: "rating", Message: "rating must be between 1 and 5"}}
	}
	if _, err := s.QuizRepo.FindByID(quizID); err != nil {
		return 0, err
	}

	if err := s.RatingRepo.Upsert(&model.QuizRating{
		QuizID: quizID,
		UserID: userID,
		Rating: rating,
	}); err != nil {
		return 0, err
	}

	return s.RatingRepo.AverageForQuiz(quizID)
}
