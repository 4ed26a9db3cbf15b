package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lindenb1/impress/internal/domain/entities"
	"github.com/lindenb1/impress/internal/locale"
	apperrors "github.com/lindenb1/impress/pkg/errors"
)

const maxBodySize = 4 << 20

// Client talks to the documents API. It implements members.Source.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	pageSize   int
	language   func() string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithPageSize(n int) Option {
	return func(c *Client) { c.pageSize = n }
}

// WithLanguage sets the source of the Accept-Language header.
func WithLanguage(fn func() string) Option {
	return func(c *Client) { c.language = fn }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type envelope struct {
	Error *struct {
		Code   int      `json:"code"`
		Text   string   `json:"text"`
		Causes []string `json:"causes"`
	} `json:"error"`
	Data json.RawMessage `json:"data"`
}

type accessList struct {
	Results []entities.Access `json:"results"`
	Next    string            `json:"next"`
}

// FetchAccesses fetches the page of accesses of docID that starts at cursor.
// An empty cursor selects the first page.
func (c *Client) FetchAccesses(ctx context.Context, docID, cursor string) (entities.AccessPage, error) {
	query := url.Values{}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	if c.pageSize > 0 {
		query.Set("page_size", strconv.Itoa(c.pageSize))
	}

	var list accessList
	if err := c.get(ctx, "/api/v1.0/documents/"+url.PathEscape(docID)+"/accesses/", query, &list); err != nil {
		return entities.AccessPage{}, err
	}

	return entities.AccessPage{Results: list.Results, Next: list.Next}, nil
}

type Config struct {
	Languages    []locale.Locale
	LanguageCode string
}

// FetchConfig reads the languages offered by the server.
func (c *Client) FetchConfig(ctx context.Context) (Config, error) {
	var raw struct {
		Languages    [][2]string `json:"LANGUAGES"`
		LanguageCode string      `json:"LANGUAGE_CODE"`
	}
	if err := c.get(ctx, "/api/v1.0/config/", nil, &raw); err != nil {
		return Config{}, err
	}

	cfg := Config{LanguageCode: raw.LanguageCode}
	for _, pair := range raw.Languages {
		cfg.Languages = append(cfg.Languages, locale.Locale{Code: pair[0], Label: pair[1]})
	}
	return cfg, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := *c.baseURL
	u.Path += path
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.language != nil {
		if lang := c.language(); lang != "" {
			req.Header.Set("Accept-Language", lang)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if resp.StatusCode >= 400 {
			return apperrors.NewAPIError(resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if env.Error != nil || resp.StatusCode >= 400 {
		return toAPIError(resp.StatusCode, env)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

func toAPIError(status int, env envelope) *apperrors.APIError {
	if env.Error == nil {
		return apperrors.NewAPIError(status, http.StatusText(status))
	}
	causes := env.Error.Causes
	if len(causes) == 0 && env.Error.Text != "" {
		causes = []string{env.Error.Text}
	}
	return apperrors.NewAPIError(status, causes...)
}
