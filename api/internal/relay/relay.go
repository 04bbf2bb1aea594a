// Package relay composes the upstream clients into the request flows the
// REST surface exposes: daily question, question detail, AI solutions, and
// the user-status comparison.
package relay

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"leetrelay/api/internal/leetcode"
)

// submissionWindow is how many recent accepted submissions are searched when
// checking whether a user solved today's question. A solve older than the
// window reads as not solved; that is an upstream limitation, not a bug.
const submissionWindow = 100

// QuestionSource is the question-side upstream (LeetCode).
type QuestionSource interface {
	DailyQuestion(ctx context.Context) (leetcode.DailyQuestion, error)
	QuestionDetail(ctx context.Context, titleSlug string) (leetcode.QuestionDetail, error)
	RecentAcceptedSubmissions(ctx context.Context, username string, limit int) ([]leetcode.UserSubmission, error)
}

// SolutionGenerator is the generation-side upstream (Gemini).
type SolutionGenerator interface {
	GenerateSolution(ctx context.Context, q *leetcode.QuestionDetail, language string, includeCode bool) (string, error)
}

// ValidationError reports a request that cannot proceed to generation.
// Handlers map it to a client error rather than a server error.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// LanguageDetail is the reduced projection served when a language is
// requested alongside the daily question: only the matching snippet is kept.
type LanguageDetail struct {
	Title          string                `json:"title"`
	Difficulty     string                `json:"difficulty"`
	Content        string                `json:"content"`
	SampleTestCase string                `json:"sampleTestCase"`
	MetaData       string                `json:"metaData"`
	CodeSnippet    *leetcode.CodeSnippet `json:"codeSnippet"`
	Hints          []string              `json:"hints"`
}

// SolutionResult wraps generated text with request metadata.
type SolutionResult struct {
	Question        string `json:"question"`
	Language        string `json:"language"`
	SolutionType    string `json:"solutionType"`
	Solution        string `json:"solution"`
	HasCodeSnippets bool   `json:"hasCodeSnippets"`
	ContentLength   int    `json:"contentLength"`
}

// UserStatus reports whether a user has an accepted submission for today's
// question. It is always served as a success; submission-fetch failures are
// described in Message instead of failing the request.
type UserStatus struct {
	Username               string `json:"username"`
	TodayQuestionTitle     string `json:"todayQuestionTitle"`
	TodayQuestionTitleSlug string `json:"todayQuestionTitleSlug"`
	HasSolved              bool   `json:"hasSolved"`
	Message                string `json:"message"`
	SubmissionLanguage     string `json:"submissionLanguage,omitempty"`
	SubmissionTimestamp    string `json:"submissionTimestamp,omitempty"`
}

// Service chains the upstream calls. Each flow is a linear sequence of
// dependent steps; the first not-found or failure stops the chain.
type Service struct {
	questions QuestionSource
	generator SolutionGenerator
	log       *zap.Logger
}

func NewService(questions QuestionSource, generator SolutionGenerator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{questions: questions, generator: generator, log: log}
}

// Daily returns today's question summary.
func (s *Service) Daily(ctx context.Context) (leetcode.DailyQuestion, error) {
	return s.questions.DailyQuestion(ctx)
}

// Detail returns the full record for a title slug.
func (s *Service) Detail(ctx context.Context, titleSlug string) (leetcode.QuestionDetail, error) {
	return s.questions.QuestionDetail(ctx, titleSlug)
}

// DailyDetail resolves today's question and fetches its full record.
func (s *Service) DailyDetail(ctx context.Context) (leetcode.QuestionDetail, error) {
	daily, err := s.questions.DailyQuestion(ctx)
	if err != nil {
		return leetcode.QuestionDetail{}, err
	}
	return s.questions.QuestionDetail(ctx, daily.Question.TitleSlug)
}

// DailyDetailForLanguage projects today's question detail down to the fields
// a single-language caller needs. CodeSnippet is nil when the language has
// no snippet.
func (s *Service) DailyDetailForLanguage(ctx context.Context, language string) (LanguageDetail, error) {
	detail, err := s.DailyDetail(ctx)
	if err != nil {
		return LanguageDetail{}, err
	}
	return LanguageDetail{
		Title:          detail.Title,
		Difficulty:     detail.Difficulty,
		Content:        detail.Content,
		SampleTestCase: detail.SampleTestCase,
		MetaData:       detail.MetaData,
		CodeSnippet:    detail.SnippetFor(language),
		Hints:          detail.Hints,
	}, nil
}

// Solution resolves a question (today's when titleSlug is empty), validates
// it has enough material for generation, and asks the generator for a
// solution or approach write-up.
func (s *Service) Solution(ctx context.Context, titleSlug, language string, includeCode bool) (SolutionResult, error) {
	traceID := uuid.New().String()

	var (
		detail leetcode.QuestionDetail
		err    error
	)
	if titleSlug == "" {
		detail, err = s.DailyDetail(ctx)
	} else {
		detail, err = s.questions.QuestionDetail(ctx, titleSlug)
	}
	if err != nil {
		return SolutionResult{}, err
	}

	if strings.TrimSpace(detail.Content) == "" {
		return SolutionResult{}, &ValidationError{Msg: "Question content is missing"}
	}
	if includeCode && len(detail.CodeSnippets) == 0 {
		return SolutionResult{}, &ValidationError{Msg: "Code snippets are missing for the requested language"}
	}

	solutionType := "approach"
	if includeCode {
		solutionType = "code"
	}
	s.log.Info("requesting solution generation",
		zap.String("traceID", traceID),
		zap.String("question", detail.Title),
		zap.String("language", language),
		zap.String("solutionType", solutionType))

	solution, err := s.generator.GenerateSolution(ctx, &detail, language, includeCode)
	if err != nil {
		s.log.Error("solution generation failed",
			zap.String("traceID", traceID),
			zap.Error(err))
		return SolutionResult{}, fmt.Errorf("generate solution: %w", err)
	}

	return SolutionResult{
		Question:        detail.Title,
		Language:        language,
		SolutionType:    solutionType,
		Solution:        solution,
		HasCodeSnippets: len(detail.CodeSnippets) > 0,
		ContentLength:   len(detail.Content),
	}, nil
}

// UserStatus checks whether username has an accepted submission matching
// today's question. Only the daily-question fetch can fail the flow; a
// submissions-fetch failure is folded into the response message so partial
// information still reaches the caller.
func (s *Service) UserStatus(ctx context.Context, username string) (UserStatus, error) {
	traceID := uuid.New().String()

	daily, err := s.questions.DailyQuestion(ctx)
	if err != nil {
		return UserStatus{}, err
	}

	status := UserStatus{
		Username:               username,
		TodayQuestionTitle:     daily.Question.Title,
		TodayQuestionTitleSlug: daily.Question.TitleSlug,
	}

	submissions, err := s.questions.RecentAcceptedSubmissions(ctx, username, submissionWindow)
	if err != nil {
		s.log.Error("fetching user submissions failed",
			zap.String("traceID", traceID),
			zap.String("username", username),
			zap.Error(err))
		status.Message = "Error fetching user submissions: " + err.Error()
		return status, nil
	}
	if submissions == nil {
		status.Message = "Unable to fetch user submission data."
		return status, nil
	}

	for _, sub := range submissions {
		if sub.TitleSlug == daily.Question.TitleSlug {
			status.HasSolved = true
			status.Message = "User has successfully solved today's daily question!"
			status.SubmissionLanguage = sub.Lang
			status.SubmissionTimestamp = sub.Timestamp
			return status, nil
		}
	}

	status.Message = "User has not solved today's daily question yet."
	return status, nil
}
