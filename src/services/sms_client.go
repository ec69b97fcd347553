package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SMSSender dispatches one message to one phone number and returns the
// provider's message id.
type SMSSender interface {
	Send(ctx context.Context, phoneNumber, message string) (string, error)
}

// GatewaySMSClient sends messages through an HTTP SMS gateway
type GatewaySMSClient struct {
	baseURL    string
	apiKey     string
	senderID   string
	httpClient *http.Client
}

// NewGatewaySMSClient creates an SMS client for the configured gateway
func NewGatewaySMSClient(baseURL, apiKey, senderID string) *GatewaySMSClient {
	return &GatewaySMSClient{
		baseURL:  baseURL,
		apiKey:   apiKey,
		senderID: senderID,
		httpClient: &http.Client{
			Timeout: time.Second * 30,
		},
	}
}

type gatewaySendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Message string   `json:"message"`
}

type gatewaySendResponse struct {
	Messages []struct {
		To         string `json:"to"`
		MessageID  string `json:"messageId"`
		Successful bool   `json:"successful"`
		Error      string `json:"errorMessage,omitempty"`
	} `json:"messages"`
}

// Send dispatches one SMS and returns the provider message id
func (c *GatewaySMSClient) Send(ctx context.Context, phoneNumber, message string) (string, error) {
	payload := gatewaySendRequest{
		From:    c.senderID,
		To:      []string{phoneNumber},
		Message: message,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal SMS request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sms/send", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create SMS request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("SMS gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read SMS gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("SMS gateway returned status %d: %s", resp.StatusCode, respBody)
	}

	var result gatewaySendResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse SMS gateway response: %w", err)
	}

	if len(result.Messages) == 0 {
		return "", fmt.Errorf("SMS gateway returned no message result")
	}
	msg := result.Messages[0]
	if !msg.Successful {
		if msg.Error != "" {
			return "", fmt.Errorf("SMS delivery failed: %s", msg.Error)
		}
		return "", fmt.Errorf("SMS delivery failed")
	}

	return msg.MessageID, nil
}

// Ensure GatewaySMSClient implements the interface
var _ SMSSender = (*GatewaySMSClient)(nil)
