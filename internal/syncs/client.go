package syncs

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"reading-stats/internal/shared/filestorages"

	"github.com/bytedance/sonic"
)

const (
	userAgent = "reading-stats/1.0"

	statusSuccess = "success"

	reachableTimeout = 5 * time.Second
	checkTimeout     = 10 * time.Second
)

// ServerResponse is the JSON body returned by every sync endpoint.
type ServerResponse struct {
	Status     string `json:"status"`
	Msg        string `json:"msg"`
	Nickname   string `json:"nickname"`
	DeviceName string `json:"device_name"`
}

// Expired reports whether the server no longer knows the device.
func (r *ServerResponse) Expired() bool {
	return r.Status == "expired" || strings.Contains(r.Msg, "expired")
}

// UploadPart is one file sent as a logs[] part.
type UploadPart struct {
	Name string
	Path string
}

type UploadRequest struct {
	AccessToken  string
	TodaySeconds int64
	MonthSeconds int64
	Parts        []UploadPart
}

// Client talks to the sync server.
//
//go:generate mockgen -source=client.go -destination=./mocks/client_mock.go -package=mocks
type Client interface {
	// Reachable probes the server with a cheap HEAD request.
	Reachable(ctx context.Context) bool
	CheckDevice(ctx context.Context, deviceCode string) (*ServerResponse, error)
	// Upload posts every part as a multipart form. Parts that cannot be opened are skipped.
	Upload(ctx context.Context, req UploadRequest) (*ServerResponse, error)
}

type client struct {
	baseURL     string
	probeURL    string
	httpClient  *http.Client
	fileStorage filestorages.FileStorage
}

// NewClient returns a client for domain. API calls go over https; the reachability probe uses plain
// http so captive portals answer it too.
func NewClient(domain string, timeout time.Duration, fileStorage filestorages.FileStorage) Client {
	return NewClientWithBaseURL("https://"+domain, "http://"+domain, timeout, fileStorage)
}

// NewClientWithBaseURL is NewClient with explicit API and probe origins.
func NewClientWithBaseURL(baseURL, probeBaseURL string, timeout time.Duration, fileStorage filestorages.FileStorage) Client {
	return &client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		probeURL:    strings.TrimRight(probeBaseURL, "/") + "/style.css",
		httpClient:  &http.Client{Timeout: timeout},
		fileStorage: fileStorage,
	}
}

func (c *client) Reachable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, reachableTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.probeURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError
}

func (c *client) CheckDevice(ctx context.Context, deviceCode string) (*ServerResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	query := url.Values{}
	query.Set("action", "check_status")
	query.Set("device_code", deviceCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth.php?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	return c.do(req)
}

func (c *client) Upload(ctx context.Context, upload UploadRequest) (*ServerResponse, error) {
	query := url.Values{}
	query.Set("today_seconds", strconv.FormatInt(upload.TodaySeconds, 10))
	query.Set("month_seconds", strconv.FormatInt(upload.MonthSeconds, 10))

	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(c.writeParts(ctx, form, upload.Parts))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload.php?"+query.Encode(), pr)
	if err != nil {
		_ = pr.Close()
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+upload.AccessToken)
	return c.do(req)
}

func (c *client) writeParts(ctx context.Context, form *multipart.Writer, parts []UploadPart) error {
	for _, part := range parts {
		r, err := c.fileStorage.Get(ctx, part.Path)
		if err != nil {
			continue
		}
		w, err := form.CreateFormFile("logs[]", part.Name)
		if err != nil {
			_ = r.Close()
			return err
		}
		_, err = io.Copy(w, r)
		_ = r.Close()
		if err != nil {
			return err
		}
	}
	return form.Close()
}

func (c *client) do(req *http.Request) (*ServerResponse, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var out ServerResponse
	if err := sonic.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	return &out, nil
}
