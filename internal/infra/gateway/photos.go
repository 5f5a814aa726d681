package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/snapfeedhq/snapfeed/internal/structs"
	"github.com/snapfeedhq/snapfeed/pkg/httpclient"
)

var _ PhotoAPI = (*PhotoClient)(nil)

// PhotoClient talks to a jsonplaceholder-style photo API.
type PhotoClient struct {
	baseURL string
	client  *http.Client
}

func NewPhotoClient(baseURL string) *PhotoClient {
	return &PhotoClient{
		baseURL: baseURL,
		client:  httpclient.NewHTTPClientWithLogging(context.Background()),
	}
}

func (pc PhotoClient) FetchPhoto(ctx context.Context, externalID int) (output structs.ExternalPhoto, err error) {
	url := fmt.Sprintf("%s/photos/%d", pc.baseURL, externalID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return output, fmt.Errorf("create photo request: %w", err)
	}

	resp, err := pc.client.Do(req)
	if err != nil {
		return output, fmt.Errorf("fetch photo %d: %w", externalID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return output, fmt.Errorf("fetch photo %d: unexpected status %d", externalID, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&output); err != nil {
		return output, fmt.Errorf("decode photo %d: %w", externalID, err)
	}

	return output, nil
}
