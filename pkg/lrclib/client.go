package lrclib

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL LRCLib API地址
	DefaultBaseURL = "https://lrclib.net/api"
	// DefaultUserAgent 默认User-Agent
	DefaultUserAgent = "lyrics-cli/1.0"
	// DefaultTimeout 单次请求超时
	DefaultTimeout = 5 * time.Second
	// DefaultMaxRetries 最大重试次数
	DefaultMaxRetries = 3
)

// Client LRCLib客户端
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxRetries int
}

// Record LRCLib API歌词记录
type Record struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	TrackName    string  `json:"trackName"`
	ArtistName   string  `json:"artistName"`
	AlbumName    string  `json:"albumName"`
	Duration     float64 `json:"duration"`
	Instrumental bool    `json:"instrumental"`
	PlainLyrics  string  `json:"plainLyrics"`
	SyncedLyrics string  `json:"syncedLyrics"`
}

// NewClient 创建新的LRCLib客户端
func NewClient(baseURL, userAgent string, timeout time.Duration, maxRetries int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:    baseURL,
		userAgent:  userAgent,
		maxRetries: maxRetries,
	}
}

// GetProviderName 返回提供商名称
func (c *Client) GetProviderName() string {
	return "LRCLib"
}

// Search 按歌名和歌手搜索歌词，返回有序候选列表（可能为空）
func (c *Client) Search(ctx context.Context, trackName, artistName string) ([]Record, error) {
	params := url.Values{}
	params.Set("track_name", trackName)
	params.Set("artist_name", artistName)

	searchURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	resp, err := c.doWithRetry(ctx, searchURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	log.Printf("INFO: [LRCLib] Found %d results for '%s - %s'", len(records), trackName, artistName)
	return records, nil
}

// GetByID 根据ID获取歌词记录，记录不存在时返回nil
func (c *Client) GetByID(ctx context.Context, id int) (*Record, error) {
	getURL := fmt.Sprintf("%s/get/%d", c.baseURL, id)

	resp, err := c.doWithRetry(ctx, getURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		log.Printf("INFO: [LRCLib] No record found for id %d", id)
		return nil, nil
	}

	var record Record
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to decode get response: %w", err)
	}

	return &record, nil
}

// doWithRetry 带重试的GET请求，404视为有效响应不重试
func (c *Client) doWithRetry(ctx context.Context, requestURL string) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			log.Printf("INFO: [LRCLib] Retrying request (attempt %d/%d)", attempt, c.maxRetries)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
		}

		req, reqErr := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
		if reqErr != nil {
			return nil, fmt.Errorf("failed to create request: %w", reqErr)
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err = c.httpClient.Do(req)
		if err == nil && (resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNotFound) {
			return resp, nil
		}

		if err != nil {
			log.Printf("WARN: [LRCLib] Request failed: %v (attempt %d/%d)", err, attempt+1, c.maxRetries)
		} else {
			log.Printf("WARN: [LRCLib] Request returned status %d (attempt %d/%d)", resp.StatusCode, attempt+1, c.maxRetries)
			resp.Body.Close()
		}
	}

	if err != nil {
		return nil, fmt.Errorf("request failed after %d attempts: %w", c.maxRetries+1, err)
	}
	return nil, fmt.Errorf("request failed after %d attempts with status %d", c.maxRetries+1, resp.StatusCode)
}
