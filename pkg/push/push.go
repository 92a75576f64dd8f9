package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// SendToTokens sends the same notification to every device token. Tokens
// rejected as unregistered are collected in the result so callers can prune
// them. Individual delivery failures do not abort the batch.
func (p *Push) SendToTokens(ctx context.Context, tokens []string, title, body string, data map[string]string) (Result, error) {
	result := Result{Total: len(tokens)}
	if len(tokens) == 0 {
		return result, nil
	}

	accessToken, err := p.getAccessToken(ctx)
	if err != nil {
		return result, err
	}

	for _, token := range tokens {
		invalid, err := p.sendOne(ctx, accessToken, token, title, body, data)
		if err != nil {
			if invalid {
				result.InvalidTokens = append(result.InvalidTokens, token)
			}
			p.l.Warnf(ctx, "pkg.push.SendToTokens: delivery failed for one token: %v", err)
			continue
		}
		result.Sent++
	}

	return result, nil
}

// sendOne delivers a single message. The bool result reports whether the
// token should be discarded.
func (p *Push) sendOne(ctx context.Context, accessToken, token, title, body string, data map[string]string) (bool, error) {
	var msg fcmMessage
	msg.Message.Token = token
	msg.Message.Notification = fcmNotification{Title: title, Body: body}
	msg.Message.Data = data

	jsonData, err := json.Marshal(msg)
	if err != nil {
		return false, fmt.Errorf("failed to marshal message: %w", err)
	}

	sendURL := fmt.Sprintf(fcmSendURL, p.config.ProjectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return false, nil
	}

	var fcmErr fcmErrorResponse
	if err := json.Unmarshal(respBody, &fcmErr); err == nil {
		if isUnregistered(fcmErr) {
			return true, fmt.Errorf("token is no longer registered")
		}
	}

	return false, fmt.Errorf("fcm returned status %d: %s", resp.StatusCode, string(respBody))
}

// isUnregistered reports whether FCM rejected the token as stale.
func isUnregistered(resp fcmErrorResponse) bool {
	if resp.Error.Status == "NOT_FOUND" {
		return true
	}
	for _, d := range resp.Error.Details {
		if d.ErrorCode == "UNREGISTERED" {
			return true
		}
	}
	return false
}
