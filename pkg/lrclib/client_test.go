package lrclib

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 1 * time.Second},
		baseURL:    baseURL,
		userAgent:  "lyrics-cli-test/1.0",
		maxRetries: 3,
	}
}

// TestSearch 测试搜索接口
func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("Expected path /search, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("track_name"); got != "Test Song" {
			t.Errorf("Expected track_name 'Test Song', got %q", got)
		}
		if got := r.URL.Query().Get("artist_name"); got != "Test Artist" {
			t.Errorf("Expected artist_name 'Test Artist', got %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "lyrics-cli-test/1.0" {
			t.Errorf("Expected custom User-Agent, got %q", got)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"id":42,"trackName":"Test Song","artistName":"Test Artist","instrumental":false}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	records, err := client.Search(context.Background(), "Test Song", "Test Artist")

	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].ID != 42 {
		t.Errorf("Expected id 42, got %d", records[0].ID)
	}
}

// TestSearchEmptyResults 测试搜索无结果
func TestSearchEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	records, err := client.Search(context.Background(), "Unknown", "Nobody")

	if err != nil {
		t.Fatalf("Expected success for empty result set, got error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected 0 records, got %d", len(records))
	}
}

// TestSearchRetry 测试重试机制
func TestSearchRetry(t *testing.T) {
	requestCount := 0

	// 模拟间歇性失败：前两次请求失败，第三次成功
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		if requestCount <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"id":1,"trackName":"Test Song"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	records, err := client.Search(context.Background(), "Test Song", "Test Artist")

	if err != nil {
		t.Fatalf("Expected success after retries, got error: %v", err)
	}
	if requestCount != 3 {
		t.Errorf("Expected 3 requests, got %d", requestCount)
	}
	if len(records) != 1 {
		t.Errorf("Expected 1 record, got %d", len(records))
	}
}

// TestSearchAllRetriesFail 测试全部重试失败
func TestSearchAllRetriesFail(t *testing.T) {
	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Search(context.Background(), "Test Song", "Test Artist")

	if err == nil {
		t.Fatal("Expected error when all retries fail")
	}
	if requestCount != 4 {
		t.Errorf("Expected 4 requests (1 + 3 retries), got %d", requestCount)
	}
}

// TestGetByID 测试按ID获取歌词
func TestGetByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get/42" {
			t.Errorf("Expected path /get/42, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":42,"plainLyrics":"A\nB\nC\nD","instrumental":false}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	record, err := client.GetByID(context.Background(), 42)

	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}
	if record == nil {
		t.Fatal("Expected record, got nil")
	}
	if record.PlainLyrics != "A\nB\nC\nD" {
		t.Errorf("Expected plain lyrics, got %q", record.PlainLyrics)
	}
}

// TestGetByIDNotFound 测试记录不存在时返回nil且不重试
func TestGetByIDNotFound(t *testing.T) {
	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	record, err := client.GetByID(context.Background(), 999)

	if err != nil {
		t.Fatalf("Expected no error for missing record, got: %v", err)
	}
	if record != nil {
		t.Errorf("Expected nil record, got %+v", record)
	}
	if requestCount != 1 {
		t.Errorf("Expected 1 request for 404, got %d", requestCount)
	}
}
