package leetcode

import "strings"

// TopicTag is a problem category label (e.g. "Array" / "array").
type TopicTag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CodeSnippet is the per-language starter template LeetCode ships with a
// problem. LangSlug is the stable lowercase identifier (e.g. "cpp",
// "python3") used for lookup.
type CodeSnippet struct {
	Lang     string `json:"lang"`
	LangSlug string `json:"langSlug"`
	Code     string `json:"code"`
}

// QuestionSummary is the compact shape embedded in the daily question.
type QuestionSummary struct {
	AcRate             float64    `json:"acRate"`
	Difficulty         string     `json:"difficulty"`
	FrontendQuestionID string     `json:"frontendQuestionId"`
	Title              string     `json:"title"`
	TitleSlug          string     `json:"titleSlug"`
	TopicTags          []TopicTag `json:"topicTags"`
}

// DailyQuestion is today's featured challenge as reported by upstream.
type DailyQuestion struct {
	Date     string          `json:"date"`
	Link     string          `json:"link"`
	Question QuestionSummary `json:"question"`
}

// QuestionDetail is the full problem record keyed by title slug. Content is
// the HTML statement and may be empty for paid-only problems; MetaData is a
// JSON-encoded function signature.
type QuestionDetail struct {
	QuestionID         string        `json:"questionId"`
	QuestionFrontendID string        `json:"questionFrontendId"`
	Title              string        `json:"title"`
	TitleSlug          string        `json:"titleSlug"`
	Difficulty         string        `json:"difficulty"`
	IsPaidOnly         bool          `json:"isPaidOnly"`
	Content            string        `json:"content"`
	SampleTestCase     string        `json:"sampleTestCase"`
	MetaData           string        `json:"metaData"`
	Stats              string        `json:"stats"`
	Hints              []string      `json:"hints"`
	CodeSnippets       []CodeSnippet `json:"codeSnippets"`
	TopicTags          []TopicTag    `json:"topicTags"`
}

// SnippetFor returns the snippet whose LangSlug matches language
// case-insensitively. First match wins; nil when absent.
func (q *QuestionDetail) SnippetFor(language string) *CodeSnippet {
	for i := range q.CodeSnippets {
		if strings.EqualFold(q.CodeSnippets[i].LangSlug, language) {
			return &q.CodeSnippets[i]
		}
	}
	return nil
}

// UserSubmission is one accepted submission from a user's recent list.
// Timestamp is unix seconds as a string, as upstream returns it.
type UserSubmission struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	TitleSlug string `json:"titleSlug"`
	Timestamp string `json:"timestamp"`
	Lang      string `json:"lang"`
}
