// SPDX-License-Identifier: MIT

package youtube

// Thumbnail is one rendition of a video thumbnail.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Snippet carries the descriptive video metadata.
type Snippet struct {
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	ChannelTitle string               `json:"channelTitle"`
	PublishedAt  string               `json:"publishedAt"`
	Thumbnails   map[string]Thumbnail `json:"thumbnails"`
}

// ContentDetails carries the ISO 8601 duration.
type ContentDetails struct {
	Duration string `json:"duration"`
}

// Statistics carries the human-relevant counters. The upstream serialises
// them as strings.
type Statistics struct {
	ViewCount string `json:"viewCount"`
	LikeCount string `json:"likeCount"`
}

// Video is one item of a videos.list response.
type Video struct {
	ID             string         `json:"id"`
	Snippet        Snippet        `json:"snippet"`
	ContentDetails ContentDetails `json:"contentDetails"`
	Statistics     Statistics     `json:"statistics"`
}

type videoListResponse struct {
	Items []Video `json:"items"`
}

// SearchItem is one item of a search.list response; the video ID is nested.
type SearchItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet Snippet `json:"snippet"`
}

type searchListResponse struct {
	Items []SearchItem `json:"items"`
}
