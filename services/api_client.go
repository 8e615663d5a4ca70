// Package services holds the gateways that translate console operations into
// HTTP requests against the two upstream APIs. Gateways are stateless: they
// never retry and never cache. All cached state lives in the store package.
// File: services/api_client.go
package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"memberhub/logger"
	"memberhub/metrics"
)

// ErrDecode wraps failures to decode an upstream response body. A malformed
// payload fails fast here instead of leaking zero values into the screens.
var ErrDecode = errors.New("unexpected upstream response shape")

// FileUpload is a form file forwarded to the backend inside a multipart body.
type FileUpload struct {
	FieldName string
	FileName  string
	Content   io.Reader
}

// APIClient is the shared transport used by every gateway. It knows the two
// upstream base URLs and attaches the caller's upstream session cookie to
// backend requests.
type APIClient struct {
	BackendURL    string
	MembershipURL string
	HTTPClient    *http.Client
}

// NewAPIClient builds a client for the given base URLs. The timeout is the
// only hardening added over the original console, which let requests run
// forever.
func NewAPIClient(backendURL, membershipURL string) *APIClient {
	return &APIClient{
		BackendURL:    strings.TrimRight(backendURL, "/"),
		MembershipURL: strings.TrimRight(membershipURL, "/"),
		HTTPClient:    &http.Client{Timeout: 30 * time.Second},
	}
}

// ------------------- request plumbing -------------------

// do issues one request and decodes the JSON response into out (when out is
// non-nil). It returns the response headers so callers like login can lift
// the upstream Set-Cookie values.
func (c *APIClient) do(method, url, cookie, contentType string, body io.Reader, out any) (http.Header, error) {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, url, err)
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		metrics.PublishGatewayFailure(method, url)
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn.Printf("[APIClient.do] closing response body for %s: %v", url, cerr)
		}
	}()
	metrics.PublishGatewayLatency(method, url, float64(time.Since(start).Milliseconds()))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.PublishGatewayFailure(method, url)
		return nil, fmt.Errorf("%s %s: %s", method, url, upstreamMessage(resp.StatusCode, raw))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			logger.Error.Printf("[APIClient.do] undecodable body from %s: %v", url, err)
			return nil, fmt.Errorf("%s %s: %w: %v", method, url, ErrDecode, err)
		}
	}
	return resp.Header, nil
}

// upstreamMessage extracts the server's error message when the body carries
// one, falling back to the HTTP status.
func upstreamMessage(status int, raw []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return http.StatusText(status)
}

// getJSON issues a credentialed GET and decodes the body into out.
func (c *APIClient) getJSON(url, cookie string, out any) error {
	_, err := c.do(http.MethodGet, url, cookie, "", nil, out)
	return err
}

// postJSON issues a credentialed JSON POST and decodes the body into out.
// It returns the response headers for callers that need Set-Cookie.
func (c *APIClient) postJSON(url, cookie string, payload, out any) (http.Header, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode payload for %s: %w", url, err)
		}
		body = bytes.NewReader(encoded)
	}
	return c.do(http.MethodPost, url, cookie, "application/json", body, out)
}

// postMultipart issues a credentialed multipart POST with the given string
// fields and optional file, decoding the body into out. Used by the creates
// that may carry an image.
func (c *APIClient) postMultipart(url, cookie string, fields map[string]string, file *FileUpload, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("write multipart field %q: %w", name, err)
		}
	}
	if file != nil {
		part, err := writer.CreateFormFile(file.FieldName, file.FileName)
		if err != nil {
			return fmt.Errorf("create multipart file %q: %w", file.FieldName, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return fmt.Errorf("copy multipart file %q: %w", file.FieldName, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	_, err := c.do(http.MethodPost, url, cookie, writer.FormDataContentType(), &buf, out)
	return err
}

// cookieHeaderFromResponse folds the upstream Set-Cookie values into a single
// Cookie header value to replay on later backend calls.
func cookieHeaderFromResponse(header http.Header) string {
	var pairs []string
	for _, setCookie := range header.Values("Set-Cookie") {
		if pair, _, _ := strings.Cut(setCookie, ";"); pair != "" {
			pairs = append(pairs, strings.TrimSpace(pair))
		}
	}
	return strings.Join(pairs, "; ")
}
