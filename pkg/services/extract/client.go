package extract

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/fisc-tools/doc-audit/pkg/adapters"
	"github.com/fisc-tools/doc-audit/pkg/models/api"
	"github.com/fisc-tools/doc-audit/pkg/models/domain"
)

type clientDocument struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	MediaType string `json:"media_type,omitempty"`
	Content   string `json:"content"` // base64
}

type extractRequest struct {
	Documents []clientDocument `json:"documents"`
}

// Client calls a remote extraction service over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(httpClient *http.Client, baseURL, token string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      token,
	}
}

func (c *Client) ExtractBundle(ctx context.Context, docs []Document) (domain.DocumentBundle, error) {
	logger := zerolog.Ctx(ctx)

	payload := extractRequest{Documents: make([]clientDocument, 0, len(docs))}
	for _, doc := range docs {
		payload.Documents = append(payload.Documents, clientDocument{
			Name:      doc.Name,
			Kind:      string(doc.Kind),
			MediaType: doc.MediaType,
			Content:   base64.StdEncoding.EncodeToString(doc.Content),
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.DocumentBundle{}, fmt.Errorf("failed to encode extraction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/extract", bytes.NewReader(body))
	if err != nil {
		return domain.DocumentBundle{}, fmt.Errorf("failed to build extraction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.DocumentBundle{}, fmt.Errorf("extraction call failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close extraction response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return domain.DocumentBundle{}, fmt.Errorf("extraction service returned status %d", resp.StatusCode)
	}

	var bundle api.DocumentBundle
	if err := json.NewDecoder(resp.Body).Decode(&bundle); err != nil {
		return domain.DocumentBundle{}, fmt.Errorf("failed to decode extraction response: %w", err)
	}

	logger.Debug().Int("documents", len(docs)).Msg("bundle extracted")
	return adapters.MapDocumentBundleApiToDomain(bundle), nil
}
