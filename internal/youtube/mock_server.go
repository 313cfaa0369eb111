// SPDX-License-Identifier: MIT
package youtube

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// MockServer provides a configurable video platform API mock for testing.
type MockServer struct {
	*httptest.Server
	mu     sync.RWMutex
	videos map[string]Video
}

// NewMockServer creates a video platform mock with realistic default data.
func NewMockServer() *MockServer {
	mock := &MockServer{videos: make(map[string]Video)}
	mock.SetDefaultData()

	mux := http.NewServeMux()
	mux.HandleFunc("/videos", mock.handleVideos)
	mux.HandleFunc("/search", mock.handleSearch)
	mock.Server = httptest.NewServer(mux)
	return mock
}

// SetDefaultData seeds the mock with one video.
func (m *MockServer) SetDefaultData() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.videos["dQw4w9WgXcQ"] = Video{
		ID: "dQw4w9WgXcQ",
		Snippet: Snippet{
			Title:        "Test Video",
			Description:  "A test video",
			ChannelTitle: "Test Channel",
			PublishedAt:  "2023-05-01T12:00:00Z",
			Thumbnails: map[string]Thumbnail{
				"default": {URL: "https://i.ytimg.example/vi/dQw4w9WgXcQ/default.jpg", Width: 120, Height: 90},
				"medium":  {URL: "https://i.ytimg.example/vi/dQw4w9WgXcQ/mqdefault.jpg", Width: 320, Height: 180},
				"high":    {URL: "https://i.ytimg.example/vi/dQw4w9WgXcQ/hqdefault.jpg", Width: 480, Height: 360},
				"maxres":  {URL: "https://i.ytimg.example/vi/dQw4w9WgXcQ/maxresdefault.jpg", Width: 1280, Height: 720},
			},
		},
		ContentDetails: ContentDetails{Duration: "PT3M33S"},
		Statistics:     Statistics{ViewCount: "1234567890", LikeCount: "9876543"},
	}
}

// AddVideo registers or replaces a video.
func (m *MockServer) AddVideo(v Video) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.videos[v.ID] = v
}

func (m *MockServer) handleVideos(w http.ResponseWriter, r *http.Request) {
	if key := r.URL.Query().Get("key"); key == "" || key == "revoked" {
		http.Error(w, `{"error":{"code":403,"message":"key missing or revoked"}}`, http.StatusForbidden)
		return
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	items := []Video{}
	if v, ok := m.videos[r.URL.Query().Get("id")]; ok {
		items = append(items, v)
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(videoListResponse{Items: items})
}

func (m *MockServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	if key := r.URL.Query().Get("key"); key == "" || key == "revoked" {
		http.Error(w, `{"error":{"code":403,"message":"key missing or revoked"}}`, http.StatusForbidden)
		return
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	items := []SearchItem{}
	for _, v := range m.videos {
		item := SearchItem{Snippet: v.Snippet}
		item.ID.VideoID = v.ID
		items = append(items, item)
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(searchListResponse{Items: items})
}
