package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/soniachared-a11y/taxi-malacrida/internal/domain"
	"github.com/soniachared-a11y/taxi-malacrida/internal/platform/obs"
)

const defaultBaseURL = "https://api.telegram.org"

// Client sends messages to a single Telegram chat through the Bot API.
// One call is one message; there is no retry or queueing, and a duplicate
// call produces a duplicate chat message.
type Client struct {
	session *http.Client
	baseURL string
	token   string
	chatID  string
}

// NewClient builds a Telegram notifier. baseURL may be empty to use the
// public Bot API host.
func NewClient(token, chatID, baseURL string) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("telegram bot token is empty")
	}
	if strings.TrimSpace(chatID) == "" {
		return nil, errors.New("telegram chat id is empty")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		token:   token,
		chatID:  chatID,
	}, nil
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// Send delivers one text message to the configured chat. A non-2xx
// provider response becomes a *domain.DeliveryError carrying the status
// and body for server-side diagnostics; a transport failure becomes one
// with status 0. The bot token never appears in returned errors.
func (c *Client) Send(ctx context.Context, text string) (err error) {
	defer obs.Time(ctx, "telegram.send")(&err)

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)

	payload, err := json.Marshal(sendMessageRequest{ChatID: c.chatID, Text: text})
	if err != nil {
		return fmt.Errorf("marshal sendMessage request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		// Transport failures (timeout, refused connection) are delivery
		// failures too. The error string carries the request URL, which
		// embeds the bot token; redact it before it reaches any log line.
		return &domain.DeliveryError{
			Status: 0,
			Body:   strings.ReplaceAll(err.Error(), c.token, "[redacted]"),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return &domain.DeliveryError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(b)),
		}
	}

	return nil
}
