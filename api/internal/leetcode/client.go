// Package leetcode is the question-source client: daily question, question
// detail, and recent accepted submissions over LeetCode's GraphQL endpoint.
package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"leetrelay/api/internal/upstream"
)

const (
	defaultBaseURL = "https://leetcode.com"
	graphQLPath    = "/graphql"

	// LeetCode rejects requests that do not look browser-like.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	requestTimeout = 30 * time.Second
)

const dailyQuestionQuery = `query questionOfToday { activeDailyCodingChallengeQuestion { date link question { acRate difficulty frontendQuestionId: questionFrontendId title titleSlug topicTags { name slug } } } }`

const questionDetailQuery = `query getQuestionDetail($titleSlug: String!) { question(titleSlug: $titleSlug) { questionId questionFrontendId title titleSlug difficulty isPaidOnly content sampleTestCase metaData stats hints codeSnippets { lang langSlug code } topicTags { name slug } } }`

const recentAcSubmissionsQuery = `query recentAcSubmissions($username: String!, $limit: Int!) { recentAcSubmissionList(username: $username, limit: $limit) { id title titleSlug timestamp lang } }`

// ErrNotFound reports a successful upstream response whose expected data
// field was null. Callers treat it as "not found", not as a transport error.
var ErrNotFound = errors.New("leetcode: not found")

// Client talks to LeetCode's GraphQL API.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *zap.Logger
}

type Options struct {
	// BaseURL overrides https://leetcode.com, mainly for tests.
	BaseURL string
	Http    *http.Client
	Log     *zap.Logger
}

func New(opts Options) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"),
		httpc:   opts.Http,
		log:     opts.Log,
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.httpc == nil {
		c.httpc = &http.Client{Timeout: requestTimeout}
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c
}

// DailyQuestion fetches today's featured challenge.
func (c *Client) DailyQuestion(ctx context.Context) (DailyQuestion, error) {
	var out struct {
		Data struct {
			ActiveDailyCodingChallengeQuestion *DailyQuestion `json:"activeDailyCodingChallengeQuestion"`
		} `json:"data"`
	}
	if err := c.query(ctx, dailyQuestionQuery, nil, &out); err != nil {
		return DailyQuestion{}, err
	}
	if out.Data.ActiveDailyCodingChallengeQuestion == nil {
		c.log.Warn("daily question response carried no question data")
		return DailyQuestion{}, fmt.Errorf("daily question: %w", ErrNotFound)
	}
	daily := *out.Data.ActiveDailyCodingChallengeQuestion
	c.log.Info("fetched daily question",
		zap.String("title", daily.Question.Title),
		zap.String("titleSlug", daily.Question.TitleSlug))
	return daily, nil
}

// QuestionDetail fetches the full problem record for a title slug.
func (c *Client) QuestionDetail(ctx context.Context, titleSlug string) (QuestionDetail, error) {
	if strings.TrimSpace(titleSlug) == "" {
		return QuestionDetail{}, fmt.Errorf("titleSlug is required")
	}
	var out struct {
		Data struct {
			Question *QuestionDetail `json:"question"`
		} `json:"data"`
	}
	vars := map[string]any{"titleSlug": titleSlug}
	if err := c.query(ctx, questionDetailQuery, vars, &out); err != nil {
		return QuestionDetail{}, err
	}
	if out.Data.Question == nil {
		c.log.Warn("question detail response carried no question data",
			zap.String("titleSlug", titleSlug))
		return QuestionDetail{}, fmt.Errorf("question %q: %w", titleSlug, ErrNotFound)
	}
	c.log.Info("fetched question detail", zap.String("title", out.Data.Question.Title))
	return *out.Data.Question, nil
}

// RecentAcceptedSubmissions fetches a user's most recent accepted
// submissions, newest first. A null list upstream is not an error: the
// result is a nil slice and the caller reports missing submission data.
func (c *Client) RecentAcceptedSubmissions(ctx context.Context, username string, limit int) ([]UserSubmission, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("username is required")
	}
	var out struct {
		Data struct {
			RecentAcSubmissionList []UserSubmission `json:"recentAcSubmissionList"`
		} `json:"data"`
	}
	vars := map[string]any{"username": username, "limit": limit}
	if err := c.query(ctx, recentAcSubmissionsQuery, vars, &out); err != nil {
		return nil, err
	}
	c.log.Info("fetched recent accepted submissions",
		zap.String("username", username),
		zap.Int("count", len(out.Data.RecentAcSubmissionList)))
	return out.Data.RecentAcSubmissionList, nil
}

func (c *Client) query(ctx context.Context, query string, variables map[string]any, out any) error {
	body := struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables,omitempty"`
	}{Query: query, Variables: variables}

	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+graphQLPath, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Referer", defaultBaseURL+"/")
	req.Header.Set("Origin", defaultBaseURL)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("leetcode graphql request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		statusErr := upstream.NewStatusError("leetcode", resp)
		c.log.Error("leetcode graphql error response",
			zap.Int("status", statusErr.StatusCode),
			zap.String("body", statusErr.Body))
		return statusErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode leetcode graphql response: %w", err)
	}
	return nil
}
