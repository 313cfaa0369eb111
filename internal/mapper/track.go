// SPDX-License-Identifier: MIT

// Package mapper assembles the outward-facing typed records from loose
// upstream payloads. All conversion of text fields goes through
// internal/normalize; download links come from internal/media. Absent
// values render as JSON null — they are expected outcomes, not errors.
package mapper

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/tunegate/tunegate/internal/media"
	"github.com/tunegate/tunegate/internal/normalize"
	"github.com/tunegate/tunegate/internal/saavn"
)

// imageSizes are the catalog CDN image renditions derived from the single
// upstream image URL by segment substitution.
var imageSizes = []string{"50x50", "150x150", "500x500"}

// DownloadLink is one derived per-bitrate fetch URL.
type DownloadLink struct {
	Quality string `json:"quality"`
	URL     string `json:"url"`
}

// ImageVariant is one rendition of artwork or a thumbnail.
type ImageVariant struct {
	Quality string `json:"quality"`
	URL     string `json:"url"`
}

// Track is the normalized per-song record served by the API.
type Track struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Album           string         `json:"album,omitempty"`
	Artists         string         `json:"artists,omitempty"`
	Year            string         `json:"year,omitempty"`
	Language        string         `json:"language,omitempty"`
	URL             string         `json:"url,omitempty"`
	DurationSeconds *int           `json:"durationSeconds"`
	PlayCount       *int64         `json:"playCount"`
	HasLyrics       bool           `json:"hasLyrics"`
	Images          []ImageVariant `json:"images"`
	DownloadLinks   []DownloadLink `json:"downloadLinks"`
}

// AlbumRecord is the normalized album record served by the API.
type AlbumRecord struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Year    string         `json:"year,omitempty"`
	Artists string         `json:"artists,omitempty"`
	URL     string         `json:"url,omitempty"`
	Images  []ImageVariant `json:"images"`
	Tracks  []Track        `json:"tracks"`
}

// PlaylistRecord is the normalized playlist record served by the API.
type PlaylistRecord struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	URL    string         `json:"url,omitempty"`
	Images []ImageVariant `json:"images"`
	Tracks []Track        `json:"tracks"`
}

// Mapper builds normalized records. It owns the link deriver so cipher
// constants never leak past this layer.
type Mapper struct {
	deriver *media.Deriver
	log     zerolog.Logger
}

// New creates a Mapper using the given deriver.
func New(deriver *media.Deriver, log zerolog.Logger) *Mapper {
	return &Mapper{deriver: deriver, log: log}
}

// Track converts one upstream song into a normalized record. A failed link
// derivation yields downloadLinks null; the cause is logged without cipher
// detail and the rest of the record is served as usual.
func (m *Mapper) Track(s saavn.Song) Track {
	t := Track{
		ID:        s.ID,
		Title:     s.Title,
		Album:     s.Album,
		Artists:   s.PrimaryArtists,
		Year:      s.Year,
		Language:  s.Language,
		URL:       s.PermaURL,
		HasLyrics: strings.EqualFold(s.HasLyrics, "true"),
		Images:    imageVariants(s.Image),
	}

	if secs, ok := normalize.Duration(s.Duration); ok {
		t.DurationSeconds = &secs
	}
	if count, ok := normalize.ViewCount(s.PlayCount); ok {
		t.PlayCount = &count
	}

	if s.EncryptedMediaURL != "" {
		links, err := m.deriver.Derive(s.EncryptedMediaURL, media.Tiers())
		if err != nil {
			recordDerivation(false)
			m.log.Warn().
				Str("event", "media.derive_failed").
				Str("song_id", s.ID).
				Msg("could not produce download links")
		} else {
			recordDerivation(true)
			t.DownloadLinks = downloadLinks(links)
		}
	}
	return t
}

// Album converts an upstream album and its track list.
func (m *Mapper) Album(a saavn.Album) AlbumRecord {
	rec := AlbumRecord{
		ID:      a.ID,
		Title:   a.Title,
		Year:    a.Year,
		Artists: a.PrimaryArtists,
		URL:     a.PermaURL,
		Images:  imageVariants(a.Image),
		Tracks:  make([]Track, 0, len(a.Songs)),
	}
	for _, s := range a.Songs {
		rec.Tracks = append(rec.Tracks, m.Track(s))
	}
	return rec
}

// Playlist converts an upstream playlist and its track list.
func (m *Mapper) Playlist(p saavn.Playlist) PlaylistRecord {
	rec := PlaylistRecord{
		ID:     p.ID,
		Name:   p.Name,
		URL:    p.PermaURL,
		Images: imageVariants(p.Image),
		Tracks: make([]Track, 0, len(p.Songs)),
	}
	for _, s := range p.Songs {
		rec.Tracks = append(rec.Tracks, m.Track(s))
	}
	return rec
}

func downloadLinks(links []media.DerivedLink) []DownloadLink {
	out := make([]DownloadLink, 0, len(links))
	for _, l := range links {
		out = append(out, DownloadLink{Quality: l.Tier.Label(), URL: l.URL})
	}
	return out
}

// imageVariants expands the single upstream artwork URL into the known CDN
// renditions. The upstream embeds a size segment ("150x150") that the CDN
// accepts substitutions for.
func imageVariants(imageURL string) []ImageVariant {
	if imageURL == "" {
		return []ImageVariant{}
	}
	base, found := "", false
	for _, size := range imageSizes {
		if strings.Contains(imageURL, size) {
			base, found = size, true
			break
		}
	}
	if !found {
		return []ImageVariant{{Quality: "default", URL: imageURL}}
	}

	out := make([]ImageVariant, 0, len(imageSizes))
	for _, size := range imageSizes {
		out = append(out, ImageVariant{
			Quality: size,
			URL:     strings.ReplaceAll(imageURL, base, size),
		})
	}
	return out
}
