package translate

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// DefaultTimeout bounds a translation call end to end.
const DefaultTimeout = 15 * time.Second

// Options configures a Client.
type Options struct {
	// URL is the translation endpoint.
	URL string

	// APIKey, when set, is attached to every request.
	APIKey string

	// AuthHeader overrides the header the key is sent in. Defaults to
	// Authorization, in which case the key is wrapped in the DeepL
	// auth-key scheme; any other header carries the raw key.
	AuthHeader string

	// Timeout bounds each call. Defaults to DefaultTimeout.
	Timeout time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Client talks to the translation endpoint. It is stateless and safe
// for concurrent use.
type Client struct {
	httpClient *http.Client
	url        string
	authHeader string
	authValue  string
}

// NewClient creates a translation client.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	var headerName, headerValue string
	if opts.APIKey != "" {
		headerName = opts.AuthHeader
		if headerName == "" {
			headerName = "Authorization"
		}
		if strings.EqualFold(headerName, "Authorization") {
			headerValue = "DeepL-Auth-Key " + opts.APIKey
		} else {
			headerValue = opts.APIKey
		}
	}

	return &Client{
		httpClient: httpClient,
		url:        opts.URL,
		authHeader: headerName,
		authValue:  headerValue,
	}
}

// Translate implements the Translator interface.
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	body, _ := sjson.Set("{}", "text.-1", text)
	body, _ = sjson.Set(body, "source_lang", sourceLang)
	body, _ = sjson.Set(body, "target_lang", targetLang)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(body))
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authHeader != "" {
		req.Header.Set(c.authHeader, c.authValue)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if !gjson.ValidBytes(data) {
		return "", &ProtocolError{Reason: "body is not valid JSON"}
	}

	translations := gjson.GetBytes(data, "translations")
	if !translations.IsArray() || len(translations.Array()) == 0 {
		return "", &ProtocolError{Reason: "missing translations"}
	}

	first := gjson.GetBytes(data, "translations.0.text")
	if !first.Exists() {
		return "", &ProtocolError{Reason: "translation entry has no text"}
	}
	return first.String(), nil
}
