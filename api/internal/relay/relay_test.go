package relay

import (
	"context"
	"errors"
	"strings"
	"testing"

	"leetrelay/api/internal/leetcode"
)

type fakeQuestions struct {
	daily    leetcode.DailyQuestion
	dailyErr error

	detail    leetcode.QuestionDetail
	detailErr error

	submissions    []leetcode.UserSubmission
	submissionsErr error

	detailCalls []string
}

func (f *fakeQuestions) DailyQuestion(context.Context) (leetcode.DailyQuestion, error) {
	return f.daily, f.dailyErr
}

func (f *fakeQuestions) QuestionDetail(_ context.Context, titleSlug string) (leetcode.QuestionDetail, error) {
	f.detailCalls = append(f.detailCalls, titleSlug)
	return f.detail, f.detailErr
}

func (f *fakeQuestions) RecentAcceptedSubmissions(context.Context, string, int) ([]leetcode.UserSubmission, error) {
	return f.submissions, f.submissionsErr
}

type fakeGenerator struct {
	solution string
	err      error
	calls    int
}

func (f *fakeGenerator) GenerateSolution(context.Context, *leetcode.QuestionDetail, string, bool) (string, error) {
	f.calls++
	return f.solution, f.err
}

func twoSumDaily() leetcode.DailyQuestion {
	return leetcode.DailyQuestion{
		Date: "2025-02-01",
		Link: "/problems/two-sum/",
		Question: leetcode.QuestionSummary{
			Title:     "Two Sum",
			TitleSlug: "two-sum",
		},
	}
}

func twoSumDetail() leetcode.QuestionDetail {
	return leetcode.QuestionDetail{
		Title:      "Two Sum",
		TitleSlug:  "two-sum",
		Difficulty: "Easy",
		Content:    "<p>Given an array of integers.</p>",
		CodeSnippets: []leetcode.CodeSnippet{
			{Lang: "Python3", LangSlug: "python", Code: "pass"},
		},
	}
}

func TestDailyDetail_ChainsSlug(t *testing.T) {
	q := &fakeQuestions{daily: twoSumDaily(), detail: twoSumDetail()}
	svc := NewService(q, &fakeGenerator{}, nil)

	got, err := svc.DailyDetail(context.Background())
	if err != nil {
		t.Fatalf("DailyDetail() error = %v", err)
	}
	if got.Title != "Two Sum" {
		t.Fatalf("Title = %q", got.Title)
	}
	if len(q.detailCalls) != 1 || q.detailCalls[0] != "two-sum" {
		t.Fatalf("detail fetched for %v, want [two-sum]", q.detailCalls)
	}
}

func TestDailyDetail_NotFoundShortCircuits(t *testing.T) {
	q := &fakeQuestions{dailyErr: leetcode.ErrNotFound}
	svc := NewService(q, &fakeGenerator{}, nil)

	_, err := svc.DailyDetail(context.Background())
	if !errors.Is(err, leetcode.ErrNotFound) {
		t.Fatalf("DailyDetail() error = %v, want ErrNotFound", err)
	}
	if len(q.detailCalls) != 0 {
		t.Fatal("detail should not be fetched when the daily question is missing")
	}
}

func TestDailyDetailForLanguage(t *testing.T) {
	q := &fakeQuestions{daily: twoSumDaily(), detail: twoSumDetail()}
	svc := NewService(q, &fakeGenerator{}, nil)

	got, err := svc.DailyDetailForLanguage(context.Background(), "Python")
	if err != nil {
		t.Fatalf("DailyDetailForLanguage() error = %v", err)
	}
	if got.CodeSnippet == nil || got.CodeSnippet.LangSlug != "python" {
		t.Fatalf("CodeSnippet = %+v, want the python snippet", got.CodeSnippet)
	}

	got, err = svc.DailyDetailForLanguage(context.Background(), "rust")
	if err != nil {
		t.Fatalf("DailyDetailForLanguage() error = %v", err)
	}
	if got.CodeSnippet != nil {
		t.Fatalf("CodeSnippet = %+v, want nil for an unmatched language", got.CodeSnippet)
	}
}

func TestSolution_Daily(t *testing.T) {
	q := &fakeQuestions{daily: twoSumDaily(), detail: twoSumDetail()}
	gen := &fakeGenerator{solution: "use a hash map"}
	svc := NewService(q, gen, nil)

	got, err := svc.Solution(context.Background(), "", "python", true)
	if err != nil {
		t.Fatalf("Solution() error = %v", err)
	}
	if got.Question != "Two Sum" || got.SolutionType != "code" || got.Solution != "use a hash map" {
		t.Fatalf("result = %+v", got)
	}
	if !got.HasCodeSnippets {
		t.Fatal("HasCodeSnippets = false, want true")
	}
	if got.ContentLength != len(twoSumDetail().Content) {
		t.Fatalf("ContentLength = %d", got.ContentLength)
	}
}

func TestSolution_BySlugApproach(t *testing.T) {
	q := &fakeQuestions{detail: twoSumDetail()}
	gen := &fakeGenerator{solution: "approach text"}
	svc := NewService(q, gen, nil)

	got, err := svc.Solution(context.Background(), "two-sum", "python", false)
	if err != nil {
		t.Fatalf("Solution() error = %v", err)
	}
	if got.SolutionType != "approach" {
		t.Fatalf("SolutionType = %q, want approach", got.SolutionType)
	}
	if len(q.detailCalls) != 1 || q.detailCalls[0] != "two-sum" {
		t.Fatalf("detail fetched for %v", q.detailCalls)
	}
}

func TestSolution_MissingContentIsValidationError(t *testing.T) {
	detail := twoSumDetail()
	detail.Content = "  "
	q := &fakeQuestions{detail: detail}
	gen := &fakeGenerator{}
	svc := NewService(q, gen, nil)

	_, err := svc.Solution(context.Background(), "two-sum", "python", true)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Solution() error = %v, want *ValidationError", err)
	}
	if !strings.Contains(verr.Msg, "content is missing") {
		t.Fatalf("Msg = %q, want a content-is-missing message", verr.Msg)
	}
	if gen.calls != 0 {
		t.Fatal("generation must not be invoked when content is missing")
	}
}

func TestSolution_MissingSnippetsIsValidationError(t *testing.T) {
	detail := twoSumDetail()
	detail.CodeSnippets = nil
	q := &fakeQuestions{detail: detail}
	gen := &fakeGenerator{}
	svc := NewService(q, gen, nil)

	_, err := svc.Solution(context.Background(), "two-sum", "python", true)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Solution() error = %v, want *ValidationError", err)
	}
	if !strings.Contains(verr.Msg, "snippets are missing") {
		t.Fatalf("Msg = %q, want a snippets-are-missing message", verr.Msg)
	}
	if gen.calls != 0 {
		t.Fatal("generation must not be invoked when snippets are missing")
	}
}

func TestSolution_ApproachModeSkipsSnippetCheck(t *testing.T) {
	detail := twoSumDetail()
	detail.CodeSnippets = nil
	q := &fakeQuestions{detail: detail}
	gen := &fakeGenerator{solution: "approach"}
	svc := NewService(q, gen, nil)

	got, err := svc.Solution(context.Background(), "two-sum", "python", false)
	if err != nil {
		t.Fatalf("Solution() error = %v", err)
	}
	if got.HasCodeSnippets {
		t.Fatal("HasCodeSnippets = true, want false")
	}
}

func TestUserStatus_Solved(t *testing.T) {
	q := &fakeQuestions{
		daily: twoSumDaily(),
		submissions: []leetcode.UserSubmission{
			{ID: "1", TitleSlug: "add-two-numbers", Timestamp: "1738300000", Lang: "cpp"},
			{ID: "2", TitleSlug: "two-sum", Timestamp: "1738400000", Lang: "python3"},
		},
	}
	svc := NewService(q, &fakeGenerator{}, nil)

	got, err := svc.UserStatus(context.Background(), "alice")
	if err != nil {
		t.Fatalf("UserStatus() error = %v", err)
	}
	if !got.HasSolved {
		t.Fatal("HasSolved = false, want true")
	}
	if got.SubmissionLanguage != "python3" || got.SubmissionTimestamp != "1738400000" {
		t.Fatalf("submission fields = %q/%q", got.SubmissionLanguage, got.SubmissionTimestamp)
	}
	if got.TodayQuestionTitleSlug != "two-sum" {
		t.Fatalf("TodayQuestionTitleSlug = %q", got.TodayQuestionTitleSlug)
	}
}

func TestUserStatus_NotSolved(t *testing.T) {
	q := &fakeQuestions{
		daily:       twoSumDaily(),
		submissions: []leetcode.UserSubmission{},
	}
	svc := NewService(q, &fakeGenerator{}, nil)

	got, err := svc.UserStatus(context.Background(), "alice")
	if err != nil {
		t.Fatalf("UserStatus() error = %v", err)
	}
	if got.HasSolved {
		t.Fatal("HasSolved = true, want false")
	}
	if !strings.Contains(got.Message, "not solved") {
		t.Fatalf("Message = %q, want a not-solved-yet message", got.Message)
	}
}

func TestUserStatus_NoSubmissionData(t *testing.T) {
	q := &fakeQuestions{daily: twoSumDaily(), submissions: nil}
	svc := NewService(q, &fakeGenerator{}, nil)

	got, err := svc.UserStatus(context.Background(), "alice")
	if err != nil {
		t.Fatalf("UserStatus() error = %v", err)
	}
	if got.HasSolved {
		t.Fatal("HasSolved = true, want false")
	}
	if !strings.Contains(got.Message, "Unable to fetch user submission data") {
		t.Fatalf("Message = %q", got.Message)
	}
}

func TestUserStatus_FetchFailureIsAbsorbed(t *testing.T) {
	q := &fakeQuestions{
		daily:          twoSumDaily(),
		submissionsErr: errors.New("leetcode: HTTP 500: boom"),
	}
	svc := NewService(q, &fakeGenerator{}, nil)

	got, err := svc.UserStatus(context.Background(), "alice")
	if err != nil {
		t.Fatalf("UserStatus() error = %v, want nil (absorbed)", err)
	}
	if got.HasSolved {
		t.Fatal("HasSolved = true, want false")
	}
	if !strings.Contains(got.Message, "Error fetching user submissions") ||
		!strings.Contains(got.Message, "boom") {
		t.Fatalf("Message = %q, want the failure description", got.Message)
	}
}

func TestUserStatus_DailyNotFoundPropagates(t *testing.T) {
	q := &fakeQuestions{dailyErr: leetcode.ErrNotFound}
	svc := NewService(q, &fakeGenerator{}, nil)

	_, err := svc.UserStatus(context.Background(), "alice")
	if !errors.Is(err, leetcode.ErrNotFound) {
		t.Fatalf("UserStatus() error = %v, want ErrNotFound", err)
	}
}
