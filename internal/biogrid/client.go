package biogrid

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/roivaz/biogrid-mcp/internal/config"
	"github.com/roivaz/biogrid-mcp/internal/logging"
)

// Endpoint is a path below the BioGRID base URL.
type Endpoint string

const (
	EndpointInteractions Endpoint = "/interactions/"
	EndpointGenes        Endpoint = "/gene/"
)

const maxErrorBody = 4 << 10

// Client issues GET requests against the BioGRID REST service. It holds no
// mutable state and is safe for concurrent use.
type Client struct {
	baseURL   string
	accessKey string
	http      *http.Client
	to        time.Duration
	log       logging.Logger
}

func NewClient(cfg config.BioGRID, log logging.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	return &Client{
		baseURL:   baseURL,
		accessKey: cfg.AccessKey,
		http:      &http.Client{Timeout: timeout},
		to:        timeout,
		log:       log.WithName("biogrid"),
	}
}

// Call performs exactly one GET against endpoint and returns the raw rows.
// The format selector and access key are always injected.
func (c *Client) Call(ctx context.Context, endpoint Endpoint, params url.Values) ([]gjson.Result, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	q := make(url.Values, len(params)+2)
	for k, v := range params {
		q[k] = append([]string(nil), v...)
	}
	q.Set("format", "json")
	q.Set("accessKey", c.accessKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+string(endpoint)+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("biogrid %s: build request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	c.log.Debug("calling upstream", "endpoint", endpoint, "params", params.Encode())
	resp, err := c.http.Do(req)
	if err != nil {
		annotated := c.annotateError(err)
		c.log.Debug("upstream call failed", "endpoint", endpoint, "elapsed", time.Since(start), "error", annotated.Error())
		return nil, fmt.Errorf("biogrid %s: %w", endpoint, annotated)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("biogrid %s: read response: %w", endpoint, c.annotateError(err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("biogrid %s: %s: %s", endpoint, resp.Status, snippet(body))
	}

	rows, err := parseRows(body)
	if err != nil {
		return nil, fmt.Errorf("biogrid %s: %w", endpoint, err)
	}
	c.log.Debug("upstream call complete", "endpoint", endpoint, "rows", len(rows), "elapsed", time.Since(start))
	return rows, nil
}

func (c *Client) Interactions(ctx context.Context, params url.Values) ([]Interaction, error) {
	rows, err := c.Call(ctx, EndpointInteractions, params)
	if err != nil {
		return nil, err
	}
	out := make([]Interaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, ParseInteraction(row))
	}
	return out, nil
}

func (c *Client) Genes(ctx context.Context, params url.Values) ([]Gene, error) {
	rows, err := c.Call(ctx, EndpointGenes, params)
	if err != nil {
		return nil, err
	}
	out := make([]Gene, 0, len(rows))
	for _, row := range rows {
		out = append(out, ParseGene(row))
	}
	return out, nil
}

// parseRows accepts a JSON array of rows or an object keyed by row id, which
// is what BioGRID's json format returns. Document order is preserved. A
// non-empty payload without a single row object is an upstream error envelope.
func parseRows(body []byte) ([]gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("unexpected response: %s", snippet(body))
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() && !parsed.IsObject() {
		return nil, fmt.Errorf("unexpected response: %s", snippet(body))
	}
	rows := make([]gjson.Result, 0)
	members := 0
	parsed.ForEach(func(_, value gjson.Result) bool {
		members++
		if value.IsObject() {
			rows = append(rows, value)
		}
		return true
	})
	if members > 0 && len(rows) == 0 {
		return nil, fmt.Errorf("unexpected response: %s", snippet(body))
	}
	return rows, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.to <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.to)
}

// annotateError strips the request URL, which carries the access key, and
// flags timeouts.
func (c *Client) annotateError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		err = uerr.Err
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("request timed out after %s: %w", c.to, err)
	}
	return err
}

func snippet(body []byte) string {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	s := strings.TrimSpace(string(body))
	if s == "" {
		return "(empty body)"
	}
	return s
}
