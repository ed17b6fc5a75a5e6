package neynar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.neynar.com"

// ErrCastNotFound is returned when the lookup API resolves no cast for a hash.
var ErrCastNotFound = errors.New("cast not found")

// Client is a minimal Neynar v2 Farcaster API client covering the two calls
// CastKeepr needs: resolving a cast by hash and publishing a reply.
type Client struct {
	baseURL    string
	apiKey     string
	signerUUID string
	httpClient *http.Client
}

// NewClient creates a Neynar API client. If baseURL is empty, it defaults to
// https://api.neynar.com.
func NewClient(baseURL, apiKey, signerUUID string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		signerUUID: signerUUID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CastAuthor identifies a Farcaster account.
type CastAuthor struct {
	FID      int64  `json:"fid"`
	Username string `json:"username"`
}

// Cast is the subset of a Neynar cast object CastKeepr persists.
type Cast struct {
	Hash      string     `json:"hash"`
	Text      string     `json:"text"`
	Author    CastAuthor `json:"author"`
	Timestamp time.Time  `json:"timestamp"`
}

type lookupResponse struct {
	Cast *Cast `json:"cast"`
}

// LookupCast resolves a cast by its content hash via
// GET /v2/farcaster/cast?identifier=<hash>&type=hash.
func (c *Client) LookupCast(ctx context.Context, hash string) (*Cast, error) {
	endpoint := fmt.Sprintf("%s/v2/farcaster/cast?identifier=%s&type=hash", c.baseURL, url.QueryEscape(hash))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api_key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrCastNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result lookupResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if result.Cast == nil {
		return nil, ErrCastNotFound
	}
	return result.Cast, nil
}

type publishRequest struct {
	SignerUUID      string `json:"signer_uuid"`
	Text            string `json:"text"`
	Parent          string `json:"parent"`
	ParentAuthorFID int64  `json:"parent_author_fid"`
}

// PublishReply posts a cast in reply to parentHash via POST /v2/farcaster/cast.
func (c *Client) PublishReply(ctx context.Context, text, parentHash string, parentAuthorFID int64) error {
	payload, err := json.Marshal(publishRequest{
		SignerUUID:      c.signerUUID,
		Text:            text,
		Parent:          parentHash,
		ParentAuthorFID: parentAuthorFID,
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/farcaster/cast", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api_key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}
	return nil
}
