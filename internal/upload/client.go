package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/saulo-duarte/langassess/internal/config"
)

// File is a resume picked on the client side.
type File struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// ClientResult is what the candidate is shown after an upload attempt.
type ClientResult struct {
	OK      bool
	Message string
	File    string
}

// Client submits resumes to the relay. It checks the MIME type before contacting the server.
type Client struct {
	endpoint  string
	http      *http.Client
	passToken string
}

func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		endpoint: strings.TrimRight(baseURL, "/") + "/api/upload/upload-resume",
		http:     hc,
	}
}

// WithPassToken returns a copy of the client that sends the token issued on a passing result.
func (c *Client) WithPassToken(token string) *Client {
	cp := *c
	cp.passToken = token
	return &cp
}

func (c *Client) Upload(ctx context.Context, f *File) ClientResult {
	log := config.WithContext(ctx)

	if f == nil || f.Content == nil {
		return ClientResult{Message: selectMessage}
	}
	if !AllowedMIMEType(f.ContentType) {
		return ClientResult{Message: fileTypeMessage}
	}

	body, contentType, err := encodeForm(f)
	if err != nil {
		log.WithError(err).Warn("Failed to encode resume form")
		return ClientResult{Message: failedMessage}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return ClientResult{Message: failedMessage}
	}
	req.Header.Set("Content-Type", contentType)
	if c.passToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.passToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Warn("Resume upload request failed")
		return ClientResult{Message: failedMessage}
	}
	defer resp.Body.Close()

	var dto UploadResponseDTO
	decodeErr := json.NewDecoder(resp.Body).Decode(&dto)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && decodeErr == nil {
		return ClientResult{OK: true, Message: dto.Message, File: dto.File}
	}
	if decodeErr != nil || dto.Message == "" {
		return ClientResult{Message: failedMessage}
	}
	return ClientResult{Message: dto.Message}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func encodeForm(f *File) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, FieldName, quoteEscaper.Replace(f.Name)))
	h.Set("Content-Type", f.ContentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, f.Content); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}
