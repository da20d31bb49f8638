package bargeh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"course-terms/internal/domain"
	"course-terms/internal/httpx"
	"course-terms/internal/providers"
)

const coursesPath = "/api/courses/"

type Client struct {
	BaseURL string
	HTTP    *httpx.Client
	Log     *zap.Logger
}

func New(baseURL, token string, log *zap.Logger) *Client {
	h := httpx.NewClient(time.Minute)
	if token != "" {
		h.Header.Set("Authorization", "Bearer "+token)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    h,
		Log:     log,
	}
}

// ListCourses follows the "next" links of the course list. maxPages <= 0
// means all pages. On failure it returns what it collected so far.
// Next links must stay on the origin of BaseURL, and a link to a page
// already fetched ends the listing.
func (c *Client) ListCourses(ctx context.Context, pageSize, maxPages int) ([]domain.CourseRecord, error) {
	base, err := c.baseURL(pageSize)
	if err != nil {
		return nil, err
	}

	var all []domain.CourseRecord
	next := base.String()
	seen := make(map[string]bool)

	for page := 1; next != ""; page++ {
		if maxPages > 0 && page > maxPages {
			break
		}
		if seen[next] {
			c.Log.Warn("courses next link loops back, stopping",
				zap.Int("page", page),
				zap.String("next", next))
			break
		}
		seen[next] = true

		p, err := c.fetchPage(ctx, next)
		if err != nil {
			return all, fmt.Errorf("bargeh: list failed at page=%d: %w", page, err)
		}

		c.Log.Debug("courses page",
			zap.Int("page", page),
			zap.Int("results", len(p.Results)),
			zap.Int("total", p.Count))
		all = append(all, p.Results...)

		next, err = resolveNext(base, p.Next)
		if err != nil {
			return all, fmt.Errorf("bargeh: bad next link %q: %w", p.Next, err)
		}
	}

	return all, nil
}

func (c *Client) baseURL(pageSize int) (*url.URL, error) {
	base, err := url.Parse(c.BaseURL + coursesPath)
	if err != nil {
		return nil, fmt.Errorf("bargeh: invalid base url: %w", err)
	}
	if pageSize > 0 {
		q := base.Query()
		q.Set("page_size", strconv.Itoa(pageSize))
		base.RawQuery = q.Encode()
	}
	return base, nil
}

func (c *Client) fetchPage(ctx context.Context, pageURL string) (providers.Page, error) {
	var raw json.RawMessage
	if err := c.HTTP.GetJSON(ctx, pageURL, &raw); err != nil {
		return providers.Page{}, err
	}
	return providers.DecodeCourses(raw)
}

var errForeignNext = errors.New("next link leaves the api origin")

// resolveNext handles both absolute and relative next links. The result
// must stay on the scheme and host of base.
func resolveNext(base *url.URL, next string) (string, error) {
	next = strings.TrimSpace(next)
	if next == "" {
		return "", nil
	}
	u, err := base.Parse(next)
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(u.Scheme, base.Scheme) || !strings.EqualFold(u.Host, base.Host) {
		return "", errForeignNext
	}
	return u.String(), nil
}
