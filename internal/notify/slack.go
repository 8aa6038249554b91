// Package notify posts event notifications to a chat webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/config"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"

	"go.uber.org/zap"
)

// Slack is a fire-and-forget webhook sink. Notify never returns an error;
// failures only degrade the returned status.
type Slack struct {
	log        *zap.SugaredLogger
	webhookURL string
	http       *http.Client
}

// New builds the sink from configuration. An empty webhook URL yields a
// sink that always reports NotifyNotConfigured.
func New(log *zap.SugaredLogger, cfg config.SlackConfig) *Slack {
	return &Slack{
		log:        log.Named("notify.slack"),
		webhookURL: cfg.WebhookURL,
		http:       &http.Client{Timeout: cfg.Timeout},
	}
}

type payload struct {
	Text string `json:"text"`
}

// Notify posts a human-readable message about the created event.
func (s *Slack) Notify(ctx context.Context, event entities.Event) entities.NotifyStatus {
	if s.webhookURL == "" {
		return entities.NotifyNotConfigured
	}

	body, err := json.Marshal(payload{Text: buildMessage(event)})
	if err != nil {
		s.log.Errorw("failed to encode webhook payload", "error", err, "event_id", event.ID)
		return entities.NotifyError
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		s.log.Errorw("failed to build webhook request", "error", err, "event_id", event.ID)
		return entities.NotifyError
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		s.log.Errorw("webhook request failed", "error", err, "event_id", event.ID)
		return entities.NotifyError
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.log.Errorw("webhook rejected notification", "status", resp.StatusCode, "event_id", event.ID)
		return entities.NotifyFailed
	}

	s.log.Infow("notification sent", "event_id", event.ID)
	return entities.NotifySent
}

func buildMessage(event entities.Event) string {
	heading := fmt.Sprintf("*%s* のミーティング", event.ProjectName)
	if event.EventType == entities.TypeShared {
		heading = fmt.Sprintf("*%s* の共有イベント", event.ProjectName)
	}

	lines := []string{
		heading,
		fmt.Sprintf("日時: %s %s", event.Date, event.StartTime),
	}
	if event.FacilitatorName != "" {
		facilitator := fmt.Sprintf("ファシリテーター: %s", event.FacilitatorName)
		if event.FacilitatorMention != "" {
			facilitator += " " + event.FacilitatorMention
		}
		lines = append(lines, facilitator)
	} else if event.FacilitatorMention != "" {
		lines = append(lines, fmt.Sprintf("メンション: %s", event.FacilitatorMention))
	}
	lines = append(lines, "アジェンダ:", event.Agenda)

	return strings.Join(lines, "\n")
}
