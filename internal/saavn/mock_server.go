// SPDX-License-Identifier: MIT
package saavn

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// MockServer provides a configurable catalog API mock for testing. It
// speaks the same api.php dispatch surface as the real upstream.
type MockServer struct {
	*httptest.Server
	mu        sync.RWMutex
	songs     map[string]Song
	albums    map[string]Album
	playlists map[string]Playlist
	failures  map[string]int // failures before success, per __call op
}

// NewMockServer creates a catalog mock with realistic default data.
func NewMockServer() *MockServer {
	mock := &MockServer{
		songs:     make(map[string]Song),
		albums:    make(map[string]Album),
		playlists: make(map[string]Playlist),
		failures:  make(map[string]int),
	}
	mock.SetDefaultData()

	mux := http.NewServeMux()
	mux.HandleFunc("/api.php", mock.handleAPI)
	mock.Server = httptest.NewServer(mux)
	return mock
}

// SetDefaultData seeds the mock with one song, album and playlist.
func (m *MockServer) SetDefaultData() {
	m.mu.Lock()
	defer m.mu.Unlock()

	song := Song{
		ID:                "dZbr6LtY",
		Title:             "Test Song",
		Album:             "Test Album",
		Year:              "2023",
		Language:          "hindi",
		PrimaryArtists:    "Test Artist",
		Image:             "https://c.sop.example/images/150x150/abc.jpg",
		Duration:          "230",
		PlayCount:         "1,234,567",
		EncryptedMediaURL: "placeholder-token",
	}
	m.songs[song.ID] = song
	m.albums["10001"] = Album{
		ID:             "10001",
		Title:          "Test Album",
		Year:           "2023",
		Image:          song.Image,
		PrimaryArtists: "Test Artist",
		Songs:          []Song{song},
	}
	m.playlists["9000"] = Playlist{
		ID:    "9000",
		Name:  "Test Playlist",
		Image: song.Image,
		Songs: []Song{song},
	}
}

// AddSong registers or replaces a song.
func (m *MockServer) AddSong(s Song) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.songs[s.ID] = s
}

// FailNext makes the next n calls to op return HTTP 500.
func (m *MockServer) FailNext(op string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[op] = n
}

func (m *MockServer) handleAPI(w http.ResponseWriter, r *http.Request) {
	op := r.URL.Query().Get("__call")

	m.mu.Lock()
	if m.failures[op] > 0 {
		m.failures[op]--
		m.mu.Unlock()
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
		return
	}
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()

	switch op {
	case callSearchSongs:
		q := r.URL.Query().Get("q")
		results := []Song{}
		for _, s := range m.songs {
			if q == "" || containsFold(s.Title, q) || containsFold(s.PrimaryArtists, q) {
				results = append(results, s)
			}
		}
		writeMockJSON(w, SearchResult{Total: len(results), Start: 1, Results: results})
	case callSongDetails:
		id := r.URL.Query().Get("pids")
		if s, ok := m.songs[id]; ok {
			writeMockJSON(w, map[string]any{"songs": []Song{s}})
			return
		}
		writeMockJSON(w, map[string]string{"error": "no song found"})
	case callAlbum:
		if a, ok := m.albums[r.URL.Query().Get("albumid")]; ok {
			writeMockJSON(w, a)
			return
		}
		writeMockJSON(w, map[string]string{"error": "no album found"})
	case callPlaylist:
		if p, ok := m.playlists[r.URL.Query().Get("listid")]; ok {
			writeMockJSON(w, p)
			return
		}
		writeMockJSON(w, map[string]string{"error": "no playlist found"})
	default:
		http.Error(w, "unknown __call", http.StatusNotFound)
	}
}

func writeMockJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
