// SPDX-License-Identifier: MIT

package mapper

import (
	"sort"

	"github.com/tunegate/tunegate/internal/normalize"
	"github.com/tunegate/tunegate/internal/youtube"
)

// VideoRecord is the normalized per-video record served by the API.
type VideoRecord struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Channel     string         `json:"channel,omitempty"`
	Description string         `json:"description,omitempty"`
	PublishedAt string         `json:"publishedAt,omitempty"`
	Duration    string         `json:"duration"`
	ViewCount   *int64         `json:"viewCount"`
	LikeCount   *int64         `json:"likeCount"`
	Thumbnails  []ImageVariant `json:"thumbnails"`
}

// VideoSearchRecord is the lightweight record for search results.
type VideoSearchRecord struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Channel     string         `json:"channel,omitempty"`
	PublishedAt string         `json:"publishedAt,omitempty"`
	Thumbnails  []ImageVariant `json:"thumbnails"`
}

// Video converts one upstream video into a normalized record.
func (m *Mapper) Video(v youtube.Video) VideoRecord {
	rec := VideoRecord{
		ID:          v.ID,
		Title:       v.Snippet.Title,
		Channel:     v.Snippet.ChannelTitle,
		Description: v.Snippet.Description,
		PublishedAt: v.Snippet.PublishedAt,
		Duration:    normalize.ClockDuration(v.ContentDetails.Duration),
		Thumbnails:  thumbnailVariants(v.Snippet.Thumbnails),
	}
	if count, ok := normalize.ViewCount(v.Statistics.ViewCount); ok {
		rec.ViewCount = &count
	}
	if count, ok := normalize.ViewCount(v.Statistics.LikeCount); ok {
		rec.LikeCount = &count
	}
	return rec
}

// VideoSearch converts one upstream search item.
func (m *Mapper) VideoSearch(item youtube.SearchItem) VideoSearchRecord {
	return VideoSearchRecord{
		ID:          item.ID.VideoID,
		Title:       item.Snippet.Title,
		Channel:     item.Snippet.ChannelTitle,
		PublishedAt: item.Snippet.PublishedAt,
		Thumbnails:  thumbnailVariants(item.Snippet.Thumbnails),
	}
}

// thumbnailVariants labels each upstream thumbnail rendition by width.
// Output is ordered widest-first for stable responses (upstream ships a map).
func thumbnailVariants(thumbs map[string]youtube.Thumbnail) []ImageVariant {
	out := make([]ImageVariant, 0, len(thumbs))
	widths := make(map[string]int, len(thumbs))
	for _, t := range thumbs {
		if t.URL == "" {
			continue
		}
		v := ImageVariant{Quality: normalize.ImageQuality(t.Width), URL: t.URL}
		out = append(out, v)
		widths[t.URL] = t.Width
	}
	sort.Slice(out, func(i, j int) bool {
		wi, wj := widths[out[i].URL], widths[out[j].URL]
		if wi != wj {
			return wi > wj
		}
		return out[i].URL < out[j].URL
	})
	return out
}
