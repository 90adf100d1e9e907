package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rulesconsole/internal/models"
	"rulesconsole/internal/session"
)

var (
	// ErrNoCredential means no request was attempted because the session
	// carries no token. Callers should route the user back to login.
	ErrNoCredential = errors.New("no credential, login required")

	// ErrRequestRejected means the server answered but reported failure
	// via its status flag.
	ErrRequestRejected = errors.New("server reported failure")
)

// APIError is a structured rejection from the server. Its message is meant
// to be shown to the user verbatim.
type APIError struct {
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

type errorEnvelope struct {
	Error *APIError `json:"error"`
}

// Client issues authenticated requests against the rules API
type Client struct {
	baseURL string
	session *session.Session
	http    *http.Client
}

// NewClient creates an API client bound to one session
func NewClient(baseURL string, sess *session.Session, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: sess,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	if c.session == nil || c.session.Token == "" {
		return nil, ErrNoCredential
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("token", "Bearer "+c.session.Token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		var envelope errorEnvelope
		if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil && envelope.Error.Message != "" {
			return nil, envelope.Error
		}
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return raw, nil
}

// Users fetches all users
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	raw, err := c.do(ctx, http.MethodGet, "/users/all", nil, "")
	if err != nil {
		return nil, err
	}
	var out struct {
		Status bool          `json:"status"`
		Users  []models.User `json:"users"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if !out.Status {
		return nil, fmt.Errorf("fetch users: %w", ErrRequestRejected)
	}
	return out.Users, nil
}

// Devices fetches all devices
func (c *Client) Devices(ctx context.Context) ([]models.Device, error) {
	raw, err := c.do(ctx, http.MethodGet, "/device/all", nil, "")
	if err != nil {
		return nil, err
	}
	var out struct {
		Status  bool            `json:"status"`
		Devices []models.Device `json:"devices"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if !out.Status {
		return nil, fmt.Errorf("fetch devices: %w", ErrRequestRejected)
	}
	return out.Devices, nil
}

// Rules fetches all rules regardless of owner
func (c *Client) Rules(ctx context.Context) ([]models.Rule, error) {
	return c.fetchRules(ctx, "/rules/all")
}

// RulesForUser fetches only the rules scoped to one user
func (c *Client) RulesForUser(ctx context.Context, userID string) ([]models.Rule, error) {
	return c.fetchRules(ctx, "/rules/all/user/"+url.PathEscape(userID))
}

func (c *Client) fetchRules(ctx context.Context, path string) ([]models.Rule, error) {
	raw, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	var out struct {
		Status bool          `json:"status"`
		Rules  []models.Rule `json:"rules"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if !out.Status {
		return nil, fmt.Errorf("fetch rules: %w", ErrRequestRejected)
	}
	return out.Rules, nil
}

// CreateRuleRequest is the payload for POST /rules/create. ImageURL stays
// nil when the rule has no image so the field serializes as JSON null.
type CreateRuleRequest struct {
	DeviceID    string  `json:"deviceId"`
	DeviceName  string  `json:"deviceName"`
	ImageURL    *string `json:"imageUrl"`
	UserID      string  `json:"userId"`
	UserName    string  `json:"userName"`
	EmailStatus string  `json:"emailStatus"`
	DateCreated string  `json:"dateCreated"`
	TimeCreated string  `json:"timeCreated"`
	DateUpdated string  `json:"dateUpdated"`
	TimeUpdated string  `json:"timeUpdated"`
}

// CreateRule creates a new rule
func (c *Client) CreateRule(ctx context.Context, rule CreateRuleRequest) error {
	payload, err := json.Marshal(rule)
	if err != nil {
		return err
	}
	raw, err := c.do(ctx, http.MethodPost, "/rules/create", bytes.NewReader(payload), "application/json")
	if err != nil {
		return err
	}
	var out struct {
		Status bool `json:"status"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	if !out.Status {
		return fmt.Errorf("create rule: %w", ErrRequestRejected)
	}
	return nil
}

// DeleteRule deletes a rule by id
func (c *Client) DeleteRule(ctx context.Context, ruleID string) error {
	raw, err := c.do(ctx, http.MethodDelete, "/rules/delete/"+url.PathEscape(ruleID), nil, "")
	if err != nil {
		return err
	}
	var out struct {
		Status bool `json:"status"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	if !out.Status {
		return fmt.Errorf("delete rule: %w", ErrRequestRejected)
	}
	return nil
}

// UploadFile sends one file to the upload endpoint and returns the stored
// file name assigned by the server.
func (c *Client) UploadFile(ctx context.Context, fileName string, content io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	raw, err := c.do(ctx, http.MethodPost, "/files/save", &body, writer.FormDataContentType())
	if err != nil {
		return "", err
	}
	var out struct {
		FileName string `json:"fileName"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", err
	}
	if out.FileName == "" {
		return "", errors.New("upload response missing file name")
	}
	return out.FileName, nil
}
