package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"course-marketplace-api/internal/metrics"
)

const (
	ingestStatusUploaded = "uploaded"

	// UploadTokenTTL is the lifetime requested for delegated upload tokens
	UploadTokenTTL = 12 * time.Hour

	statusPath      = "/videos/{videoId}/status"
	uploadTokenPath = "/auth/delegated-upload-tokens"
)

// ErrEmptyUploadToken is returned when the provider answers without a token
var ErrEmptyUploadToken = errors.New("media provider returned an empty upload token")

// MediaChecker answers whether externally hosted videos finished uploading
type MediaChecker interface {
	CheckReady(ctx context.Context, providerVideoIDs []string) (map[string]bool, error)
}

// UploadToken is a delegated token a browser can use to upload directly to the provider
type UploadToken struct {
	Token     string
	TTL       time.Duration
	ExpiresAt time.Time
}

// MediaClient defines the interface for media provider communication
type MediaClient interface {
	MediaChecker
	// CheckUploadStatus reports whether a single video finished ingesting
	CheckUploadStatus(ctx context.Context, providerVideoID string) (bool, error)
	// GenerateUploadToken requests a delegated upload token
	GenerateUploadToken(ctx context.Context) (*UploadToken, error)
}

type videoStatusResponse struct {
	Ingest struct {
		Status string `json:"status"`
	} `json:"ingest"`
	Encoding struct {
		Playable bool `json:"playable"`
	} `json:"encoding"`
}

type uploadTokenRequest struct {
	TTL int `json:"ttl"`
}

type uploadTokenResponse struct {
	Token     string     `json:"token"`
	TTL       int        `json:"ttl"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// mediaClient implements MediaClient on top of resty
type mediaClient struct {
	http    *resty.Client
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewMediaClient creates a new media provider client
func NewMediaClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) MediaClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetAuthToken(apiKey).
		SetHeader("Accept", "application/json")

	return &mediaClient{
		http:    httpClient,
		logger:  logger,
		metrics: m,
	}
}

// CheckUploadStatus asks the provider for the ingest status of one video.
// A non-success answer means not ready; only transport failures are errors.
func (c *mediaClient) CheckUploadStatus(ctx context.Context, providerVideoID string) (bool, error) {
	startTime := time.Now()

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("videoId", providerVideoID).
		SetResult(&videoStatusResponse{}).
		Get(statusPath)

	statusCode := statusCodeOf(resp)
	c.metrics.RecordExternalAPICall(statusPath, http.MethodGet, statusCode, time.Since(startTime), err)

	if err != nil {
		c.logger.Error("Failed to check media upload status",
			zap.String("provider_video_id", providerVideoID),
			zap.Error(err),
		)
		return false, fmt.Errorf("check upload status of %s: %w", providerVideoID, err)
	}

	if !resp.IsSuccess() {
		c.logger.Warn("Media provider returned non-success status",
			zap.String("provider_video_id", providerVideoID),
			zap.Int("status_code", statusCode),
		)
		return false, nil
	}

	status, ok := resp.Result().(*videoStatusResponse)
	if !ok || status == nil {
		return false, nil
	}
	return status.Ingest.Status == ingestStatusUploaded, nil
}

// CheckReady checks every id and returns the readiness per id
func (c *mediaClient) CheckReady(ctx context.Context, providerVideoIDs []string) (map[string]bool, error) {
	results := make(map[string]bool, len(providerVideoIDs))
	for _, id := range providerVideoIDs {
		ready, err := c.CheckUploadStatus(ctx, id)
		if err != nil {
			return nil, err
		}
		results[id] = ready
	}
	return results, nil
}

// GenerateUploadToken requests a delegated upload token valid for UploadTokenTTL
func (c *mediaClient) GenerateUploadToken(ctx context.Context) (*UploadToken, error) {
	startTime := time.Now()
	ttlSeconds := int(UploadTokenTTL / time.Second)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(uploadTokenRequest{TTL: ttlSeconds}).
		SetResult(&uploadTokenResponse{}).
		Post(uploadTokenPath)

	statusCode := statusCodeOf(resp)
	c.metrics.RecordExternalAPICall(uploadTokenPath, http.MethodPost, statusCode, time.Since(startTime), err)

	if err != nil {
		c.logger.Error("Failed to request upload token", zap.Error(err))
		return nil, fmt.Errorf("generate upload token: %w", err)
	}
	if !resp.IsSuccess() {
		c.logger.Warn("Media provider refused upload token", zap.Int("status_code", statusCode))
		return nil, fmt.Errorf("generate upload token: provider returned status %d", statusCode)
	}

	body, ok := resp.Result().(*uploadTokenResponse)
	if !ok || body == nil || body.Token == "" {
		return nil, ErrEmptyUploadToken
	}

	token := &UploadToken{
		Token:     body.Token,
		TTL:       UploadTokenTTL,
		ExpiresAt: startTime.UTC().Add(UploadTokenTTL),
	}
	if body.ExpiresAt != nil {
		token.ExpiresAt = body.ExpiresAt.UTC()
	}
	return token, nil
}

func statusCodeOf(resp *resty.Response) int {
	if resp == nil || resp.RawResponse == nil {
		return 0
	}
	return resp.StatusCode()
}
