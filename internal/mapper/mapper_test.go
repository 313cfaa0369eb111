package mapper

import (
	"crypto/des"
	"encoding/base64"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/tunegate/tunegate/internal/media"
	"github.com/tunegate/tunegate/internal/saavn"
	"github.com/tunegate/tunegate/internal/youtube"
)

// encryptToken builds a valid encrypted media token for the default key.
func encryptToken(t *testing.T, template string) string {
	t.Helper()

	cfg := media.DefaultKeyConfig()
	block, err := des.NewCipher([]byte(cfg.Key))
	if err != nil {
		t.Fatalf("cipher: %v", err)
	}
	pad := des.BlockSize - len(template)%des.BlockSize
	plain := append([]byte(template), make([]byte, pad)...)
	for i := len(template); i < len(plain); i++ {
		plain[i] = byte(pad)
	}
	out := make([]byte, len(plain))
	for off := 0; off < len(plain); off += des.BlockSize {
		block.Encrypt(out[off:off+des.BlockSize], plain[off:off+des.BlockSize])
	}
	return base64.StdEncoding.EncodeToString(out)
}

func newTestMapper(t *testing.T) *Mapper {
	t.Helper()
	d, err := media.NewDeriver(media.DefaultKeyConfig())
	if err != nil {
		t.Fatalf("NewDeriver: %v", err)
	}
	return New(d, zerolog.Nop())
}

func TestTrackMapping(t *testing.T) {
	m := newTestMapper(t)

	song := saavn.Song{
		ID:                "abc123",
		Title:             "Song Title",
		Album:             "Album Name",
		Year:              "2022",
		Language:          "hindi",
		PrimaryArtists:    "Some Artist",
		Image:             "https://cdn.example/images/150x150/x.jpg",
		Duration:          "3:45",
		PlayCount:         "1,234,567 plays",
		HasLyrics:         "true",
		EncryptedMediaURL: encryptToken(t, "https://aac.cdn.example/song_96.mp4"),
	}

	got := m.Track(song)

	if got.DurationSeconds == nil || *got.DurationSeconds != 225 {
		t.Fatalf("DurationSeconds = %v, want 225", got.DurationSeconds)
	}
	if got.PlayCount == nil || *got.PlayCount != 1234567 {
		t.Fatalf("PlayCount = %v, want 1234567", got.PlayCount)
	}
	if !got.HasLyrics {
		t.Error("HasLyrics = false, want true")
	}

	wantImages := []ImageVariant{
		{Quality: "50x50", URL: "https://cdn.example/images/50x50/x.jpg"},
		{Quality: "150x150", URL: "https://cdn.example/images/150x150/x.jpg"},
		{Quality: "500x500", URL: "https://cdn.example/images/500x500/x.jpg"},
	}
	if diff := cmp.Diff(wantImages, got.Images); diff != "" {
		t.Errorf("Images mismatch (-want +got):\n%s", diff)
	}

	if len(got.DownloadLinks) != len(media.Tiers()) {
		t.Fatalf("DownloadLinks = %d entries, want %d", len(got.DownloadLinks), len(media.Tiers()))
	}
	if got.DownloadLinks[4].Quality != "320kbps" {
		t.Errorf("last link quality = %q, want 320kbps", got.DownloadLinks[4].Quality)
	}
	if want := "https://aac.cdn.example/song_320.mp4"; got.DownloadLinks[4].URL != want {
		t.Errorf("last link URL = %q, want %q", got.DownloadLinks[4].URL, want)
	}
}

func TestTrackAbsentFields(t *testing.T) {
	m := newTestMapper(t)

	got := m.Track(saavn.Song{ID: "x", Title: "No Extras", Duration: "garbage", PlayCount: ""})

	if got.DurationSeconds != nil {
		t.Errorf("DurationSeconds = %v, want nil", got.DurationSeconds)
	}
	if got.PlayCount != nil {
		t.Errorf("PlayCount = %v, want nil", got.PlayCount)
	}
	if got.DownloadLinks != nil {
		t.Errorf("DownloadLinks = %v, want nil", got.DownloadLinks)
	}
	if len(got.Images) != 0 {
		t.Errorf("Images = %v, want empty", got.Images)
	}
}

func TestTrackBadTokenYieldsNullLinks(t *testing.T) {
	m := newTestMapper(t)

	got := m.Track(saavn.Song{ID: "x", Title: "Bad Token", EncryptedMediaURL: "!!not-base64!!"})
	if got.DownloadLinks != nil {
		t.Errorf("DownloadLinks = %v, want nil on derive failure", got.DownloadLinks)
	}
}

func TestAlbumAndPlaylistMapping(t *testing.T) {
	m := newTestMapper(t)

	song := saavn.Song{ID: "s1", Title: "T", Duration: "60"}
	album := m.Album(saavn.Album{ID: "a1", Title: "A", Songs: []saavn.Song{song, song}})
	if len(album.Tracks) != 2 {
		t.Fatalf("album tracks = %d, want 2", len(album.Tracks))
	}

	pl := m.Playlist(saavn.Playlist{ID: "p1", Name: "P", Songs: []saavn.Song{song}})
	if len(pl.Tracks) != 1 {
		t.Fatalf("playlist tracks = %d, want 1", len(pl.Tracks))
	}
}

func TestVideoMapping(t *testing.T) {
	m := newTestMapper(t)

	v := youtube.Video{
		ID: "vid1",
		Snippet: youtube.Snippet{
			Title:        "Video",
			ChannelTitle: "Channel",
			PublishedAt:  "2023-05-01T12:00:00Z",
			Thumbnails: map[string]youtube.Thumbnail{
				"default": {URL: "https://t.example/default.jpg", Width: 120, Height: 90},
				"maxres":  {URL: "https://t.example/maxres.jpg", Width: 1280, Height: 720},
				"high":    {URL: "https://t.example/high.jpg", Width: 480, Height: 360},
			},
		},
		ContentDetails: youtube.ContentDetails{Duration: "PT1H2M3S"},
		Statistics:     youtube.Statistics{ViewCount: "1000", LikeCount: "notanumber"},
	}

	got := m.Video(v)

	if got.Duration != "1:02:03" {
		t.Errorf("Duration = %q, want 1:02:03", got.Duration)
	}
	if got.ViewCount == nil || *got.ViewCount != 1000 {
		t.Errorf("ViewCount = %v, want 1000", got.ViewCount)
	}
	if got.LikeCount != nil {
		t.Errorf("LikeCount = %v, want nil", got.LikeCount)
	}

	wantThumbs := []ImageVariant{
		{Quality: "1280x720", URL: "https://t.example/maxres.jpg"},
		{Quality: "480x360", URL: "https://t.example/high.jpg"},
		{Quality: "120x90", URL: "https://t.example/default.jpg"},
	}
	if diff := cmp.Diff(wantThumbs, got.Thumbnails); diff != "" {
		t.Errorf("Thumbnails mismatch (-want +got):\n%s", diff)
	}
}

func TestVideoSearchMapping(t *testing.T) {
	m := newTestMapper(t)

	item := youtube.SearchItem{Snippet: youtube.Snippet{Title: "V", ChannelTitle: "C"}}
	item.ID.VideoID = "vid9"

	got := m.VideoSearch(item)
	if got.ID != "vid9" || got.Title != "V" {
		t.Errorf("unexpected search record: %+v", got)
	}
}
