// SPDX-License-Identifier: MIT

package saavn

import "errors"

// Song is the upstream per-track payload. Fields arrive as strings even
// when they are semantically numeric; normalization happens downstream.
type Song struct {
	ID                string `json:"id"`
	Title             string `json:"song"`
	Album             string `json:"album"`
	Year              string `json:"year"`
	Language          string `json:"language"`
	PrimaryArtists    string `json:"primary_artists"`
	Image             string `json:"image"`
	Duration          string `json:"duration"`
	PlayCount         string `json:"play_count"`
	ReleaseDate       string `json:"release_date"`
	PermaURL          string `json:"perma_url"`
	HasLyrics         string `json:"has_lyrics"`
	Copyright         string `json:"copyright_text"`
	EncryptedMediaURL string `json:"encrypted_media_url"`
}

func (s *Song) validate() error {
	if s.ID == "" {
		return &APIError{Sentinel: ErrBadResponse, Operation: callSongDetails, Err: errors.New("song payload missing id")}
	}
	return nil
}

// SearchResult is the paginated envelope returned by search.getResults.
type SearchResult struct {
	Total   int    `json:"total"`
	Start   int    `json:"start"`
	Results []Song `json:"results"`
}

// Album is the payload returned by content.getAlbumDetails.
type Album struct {
	ID             string `json:"albumid"`
	Title          string `json:"title"`
	Year           string `json:"year"`
	Image          string `json:"image"`
	PrimaryArtists string `json:"primary_artists"`
	PermaURL       string `json:"perma_url"`
	Songs          []Song `json:"songs"`
}

// Playlist is the payload returned by playlist.getDetails.
type Playlist struct {
	ID        string `json:"listid"`
	Name      string `json:"listname"`
	Image     string `json:"image"`
	Follower  string `json:"follower_count"`
	LastWeek  string `json:"last_updated"`
	PermaURL  string `json:"perma_url"`
	SongCount string `json:"list_count"`
	Songs     []Song `json:"songs"`
}
