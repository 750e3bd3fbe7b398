package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/amishk599/careerconnect/internal/model"
)

// Ensure SlackNotifier implements model.Notifier.
var _ model.Notifier = (*SlackNotifier)(nil)

// SlackNotifier posts board events to a Slack channel via Incoming Webhooks.
type SlackNotifier struct {
	webhookURL string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSlackNotifier returns a notifier that posts each event to Slack via webhook.
func NewSlackNotifier(webhookURL string, httpClient *http.Client, logger *slog.Logger) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Notify sends the event as a single Block Kit message. A 429 is retried
// once after Retry-After.
func (s *SlackNotifier) Notify(ctx context.Context, ev model.Event) error {
	payload, ok := buildPayload(ev)
	if !ok {
		return nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	status, retryAfter, err := s.post(ctx, body)
	if err != nil {
		return err
	}
	if status == http.StatusTooManyRequests {
		secs, _ := strconv.Atoi(retryAfter)
		if secs <= 0 {
			secs = 1
		}
		s.logger.Warn("slack rate limited, retrying", "retry_after_secs", secs)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(secs) * time.Second):
		}
		if status, _, err = s.post(ctx, body); err != nil {
			return fmt.Errorf("retry: %w", err)
		}
	}
	if status != http.StatusOK {
		return fmt.Errorf("slack returned %d", status)
	}
	s.logger.Info("slack message sent", "kind", string(ev.Kind))
	return nil
}

func (s *SlackNotifier) post(ctx context.Context, body []byte) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return 0, "", fmt.Errorf("build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("post to slack: %w", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode, resp.Header.Get("Retry-After"), nil
}

// Block Kit payload types.

type slackPayload struct {
	Blocks []slackBlock `json:"blocks"`
}

type slackBlock struct {
	Type   string      `json:"type"`
	Text   *slackText  `json:"text,omitempty"`
	Fields []slackText `json:"fields,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// buildPayload renders ev. It reports false when the event carries nothing
// to show.
func buildPayload(ev model.Event) (slackPayload, bool) {
	var blocks []slackBlock
	switch {
	case ev.Kind == model.EventJobPosted && ev.Job != nil:
		j := ev.Job
		blocks = []slackBlock{
			{
				Type: "header",
				Text: &slackText{Type: "plain_text", Text: "📢 New listing: " + j.Title},
			},
			{
				Type: "section",
				Fields: []slackText{
					{Type: "mrkdwn", Text: "*Company:*\n" + j.Company},
					{Type: "mrkdwn", Text: "*Location:*\n" + j.Location},
				},
			},
			{
				Type: "section",
				Fields: []slackText{
					{Type: "mrkdwn", Text: "*Type:*\n" + string(j.Type)},
					{Type: "mrkdwn", Text: "*Salary:*\n" + j.SalaryRange},
				},
			},
		}
	case ev.Kind == model.EventApplicationSubmitted && ev.Application != nil:
		a := ev.Application
		applicant := a.ApplicantEmail
		if applicant == "" {
			applicant = ev.Actor
		}
		if applicant == "" {
			applicant = "anonymous visitor"
		}
		blocks = []slackBlock{
			{
				Type: "header",
				Text: &slackText{Type: "plain_text", Text: "📝 New application: " + a.JobTitle},
			},
			{
				Type: "section",
				Fields: []slackText{
					{Type: "mrkdwn", Text: "*Company:*\n" + a.CompanyName},
					{Type: "mrkdwn", Text: "*Applicant:*\n" + applicant},
				},
			},
			{
				Type: "section",
				Fields: []slackText{
					{Type: "mrkdwn", Text: "*Status:*\n" + string(a.Status)},
					{Type: "mrkdwn", Text: "*Applied:*\n" + a.AppliedDate},
				},
			},
		}
	default:
		return slackPayload{}, false
	}
	blocks = append(blocks, slackBlock{Type: "divider"})
	return slackPayload{Blocks: blocks}, true
}
