// Package catalog fetches community template metadata (TRaSH-Guides style)
// used to expand trash_id references in declared configuration. Documents
// are fetched per catalog URL, indexed by trash_id, and cached with a TTL
// so one reconciliation burst hits the network once.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout is the catalog fetch timeout.
const DefaultTimeout = 30 * time.Second

// UnreachableError reports a catalog that could not be fetched. Declared
// configurations referencing templates fail fast with this error rather
// than being reconciled incompletely.
type UnreachableError struct {
	URL string
	Err error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("catalog %s unreachable: %v", e.URL, e.Err)
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a trash_id with no catalog entry.
type NotFoundError struct {
	TrashID string
	Kind    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s template with trash_id %q in catalog", e.Kind, e.TrashID)
}

// CustomFormatTemplate is a catalog custom format document.
type CustomFormatTemplate struct {
	TrashID                         string              `json:"trash_id"`
	Name                            string              `json:"name"`
	IncludeCustomFormatWhenRenaming bool                `json:"includeCustomFormatWhenRenaming"`
	Specifications                  []TemplateCondition `json:"specifications"`
	TrashScores                     map[string]int      `json:"trash_scores"`
}

// DefaultScore returns the template's default score, or zero when the
// template carries none.
func (t *CustomFormatTemplate) DefaultScore() int {
	return t.TrashScores["default"]
}

// TemplateCondition is a condition within a catalog custom format.
type TemplateCondition struct {
	Name           string                 `json:"name"`
	Implementation string                 `json:"implementation"`
	Negate         bool                   `json:"negate"`
	Required       bool                   `json:"required"`
	Fields         map[string]interface{} `json:"fields"`
}

// QualitySizeTemplate is a catalog quality definition preset.
type QualitySizeTemplate struct {
	TrashID   string        `json:"trash_id"`
	Type      string        `json:"type"`
	Qualities []QualitySize `json:"qualities"`
}

// QualitySize is one quality's size limits within a preset.
type QualitySize struct {
	Quality   string   `json:"quality"`
	Min       float64  `json:"min"`
	Max       *float64 `json:"max"`
	Preferred *float64 `json:"preferred"`
}

// Catalog is an indexed snapshot of one catalog URL's documents.
type Catalog struct {
	FetchedAt time.Time

	formatsByTrashID   map[string]*CustomFormatTemplate
	qualitiesByTrashID map[string]*QualitySizeTemplate
}

// CustomFormat looks up a custom format template by trash_id.
func (c *Catalog) CustomFormat(trashID string) (*CustomFormatTemplate, error) {
	t, ok := c.formatsByTrashID[trashID]
	if !ok {
		return nil, &NotFoundError{TrashID: trashID, Kind: "custom format"}
	}
	return t, nil
}

// QualitySize looks up a quality definition preset by trash_id.
func (c *Catalog) QualitySize(trashID string) (*QualitySizeTemplate, error) {
	t, ok := c.qualitiesByTrashID[trashID]
	if !ok {
		return nil, &NotFoundError{TrashID: trashID, Kind: "quality definition"}
	}
	return t, nil
}

// Client fetches catalog documents over HTTP. The catalog URL serves
// aggregated JSON collections: <base>/radarr/cf.json with every custom
// format document, and <base>/radarr/quality-size.json with the quality
// definition presets.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Fetch downloads and indexes the full catalog.
func (c *Client) Fetch(ctx context.Context) (*Catalog, error) {
	var formats []CustomFormatTemplate
	if err := c.get(ctx, "/radarr/cf.json", &formats); err != nil {
		return nil, err
	}

	var qualities []QualitySizeTemplate
	if err := c.get(ctx, "/radarr/quality-size.json", &qualities); err != nil {
		return nil, err
	}

	return NewSnapshot(formats, qualities), nil
}

// NewSnapshot builds an indexed catalog from already-decoded documents.
func NewSnapshot(formats []CustomFormatTemplate, qualities []QualitySizeTemplate) *Catalog {
	cat := &Catalog{
		FetchedAt:          time.Now(),
		formatsByTrashID:   make(map[string]*CustomFormatTemplate, len(formats)),
		qualitiesByTrashID: make(map[string]*QualitySizeTemplate, len(qualities)),
	}
	for i := range formats {
		cat.formatsByTrashID[formats[i].TrashID] = &formats[i]
	}
	for i := range qualities {
		cat.qualitiesByTrashID[qualities[i].TrashID] = &qualities[i]
	}
	return cat
}

func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &UnreachableError{URL: url, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UnreachableError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &UnreachableError{URL: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &UnreachableError{URL: url, Err: err}
	}
	return nil
}
