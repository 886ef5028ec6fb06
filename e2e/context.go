package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// TestContext holds the HTTP client and per-scenario state: the last
// response and the variables remembered from earlier responses.
type TestContext struct {
	baseURL string
	client  *http.Client

	status int
	body   []byte
	vars   map[string]string
}

func NewTestContext(baseURL string) *TestContext {
	return &TestContext{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Reset clears scenario state. Each scenario gets a fresh {suffix} so
// registration codes do not collide across runs against the same database.
func (tc *TestContext) Reset() {
	tc.status = 0
	tc.body = nil
	tc.vars = map[string]string{"suffix": fmt.Sprintf("%06d", rand.IntN(1000000))}
}

// Expand replaces {name} placeholders with remembered variables.
func (tc *TestContext) Expand(s string) string {
	for k, v := range tc.vars {
		s = strings.ReplaceAll(s, "{"+k+"}", v)
	}
	return s
}

func (tc *TestContext) Remember(name, value string) {
	tc.vars[name] = value
}

func (tc *TestContext) Do(method, path string, body string, headers map[string]string) error {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(tc.Expand(body))
	}
	req, err := http.NewRequest(method, tc.baseURL+tc.Expand(path), reader)
	if err != nil {
		return err
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, tc.Expand(v))
	}
	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	tc.status = resp.StatusCode
	tc.body, err = io.ReadAll(resp.Body)
	return err
}

func (tc *TestContext) POST(path string, body any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return tc.Do(http.MethodPost, path, string(raw), nil)
}

func (tc *TestContext) GET(path string) error {
	return tc.Do(http.MethodGet, path, "", nil)
}

func (tc *TestContext) Status() int { return tc.status }

func (tc *TestContext) Body() []byte { return bytes.Clone(tc.body) }

// GetResponseField resolves a dotted path such as "shareholders.0.share" in
// the last JSON response.
func (tc *TestContext) GetResponseField(path string) (any, error) {
	var doc any
	if err := json.Unmarshal(tc.body, &doc); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w", err)
	}
	for _, part := range strings.Split(path, ".") {
		switch node := doc.(type) {
		case map[string]any:
			v, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field %q not found", path)
			}
			doc = v
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("index %q out of range in %q", part, path)
			}
			doc = node[i]
		default:
			return nil, fmt.Errorf("field %q not found", path)
		}
	}
	return doc, nil
}

// FieldString renders a response field the way it is compared in steps:
// integral numbers without a fraction, strings as is.
func (tc *TestContext) FieldString(path string) (string, error) {
	v, err := tc.GetResponseField(path)
	if err != nil {
		return "", err
	}
	switch x := v.(type) {
	case string:
		return x, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case nil:
		return "null", nil
	default:
		return fmt.Sprint(x), nil
	}
}
