package media

import (
	"crypto/des"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

// encryptToken mirrors the upstream scheme: PKCS#5 pad, DES/ECB encrypt,
// base64 encode.
func encryptToken(t *testing.T, cfg KeyConfig, template string) string {
	t.Helper()

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

func newTestDeriver(t *testing.T) *Deriver {
	t.Helper()
	d, err := NewDeriver(DefaultKeyConfig())
	if err != nil {
		t.Fatalf("NewDeriver: %v", err)
	}
	return d
}

func TestDeriveSubstitutesPlaceholder(t *testing.T) {
	d := newTestDeriver(t)
	template := "https://cdn.example.com/song/abc_96.mp4"
	token := encryptToken(t, DefaultKeyConfig(), template)

	links, err := d.Derive(token, []BitrateTier{Tier320})
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(links))
	}
	want := "https://cdn.example.com/song/abc_320.mp4"
	if links[0].URL != want {
		t.Errorf("URL = %q, want %q", links[0].URL, want)
	}
	if links[0].Tier != Tier320 {
		t.Errorf("Tier = %v, want %v", links[0].Tier, Tier320)
	}
}

func TestDerivePreservesTierOrder(t *testing.T) {
	d := newTestDeriver(t)
	token := encryptToken(t, DefaultKeyConfig(), "https://cdn.example.com/x_96.mp4")

	tiers := []BitrateTier{Tier160, Tier12, Tier320}
	links, err := d.Derive(token, tiers)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if len(links) != len(tiers) {
		t.Fatalf("expected %d links, got %d", len(tiers), len(links))
	}
	for i, tier := range tiers {
		if links[i].Tier != tier {
			t.Errorf("links[%d].Tier = %v, want %v", i, links[i].Tier, tier)
		}
		if !strings.Contains(links[i].URL, tier.segment()+".mp4") {
			t.Errorf("links[%d].URL = %q missing %q segment", i, links[i].URL, tier.segment())
		}
	}
}

func TestDeriveReplacesAllOccurrences(t *testing.T) {
	d := newTestDeriver(t)
	token := encryptToken(t, DefaultKeyConfig(), "https://cdn.example.com/_96/x_96.mp4")

	links, err := d.Derive(token, []BitrateTier{Tier48})
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if want := "https://cdn.example.com/_48/x_48.mp4"; links[0].URL != want {
		t.Errorf("URL = %q, want %q", links[0].URL, want)
	}
}

func TestDeriveEmptyTiers(t *testing.T) {
	d := newTestDeriver(t)
	token := encryptToken(t, DefaultKeyConfig(), "https://cdn.example.com/x_96.mp4")

	links, err := d.Derive(token, nil)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if links == nil || len(links) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", links)
	}
}

func TestDeriveDecodeErrors(t *testing.T) {
	d := newTestDeriver(t)

	for _, token := range []string{
		"not base64!!!",
		base64.StdEncoding.EncodeToString([]byte("short")), // not block-aligned
		"",
	} {
		if _, err := d.Derive(token, []BitrateTier{Tier96}); !errors.Is(err, ErrDecode) {
			t.Errorf("Derive(%q) error = %v, want ErrDecode", token, err)
		}
	}
}

func TestDeriveDecryptError(t *testing.T) {
	d := newTestDeriver(t)

	// Encrypt a block whose final byte is zero: PKCS#5 never produces a
	// zero pad, so unpadding must fail after a successful decrypt.
	block, err := des.NewCipher([]byte(DefaultKeyConfig().Key))
	if err != nil {
		t.Fatalf("cipher: %v", err)
	}
	raw := make([]byte, des.BlockSize)
	block.Encrypt(raw, []byte("abcdefg\x00"))
	token := base64.StdEncoding.EncodeToString(raw)

	if _, err := d.Derive(token, []BitrateTier{Tier96}); !errors.Is(err, ErrDecrypt) {
		t.Errorf("Derive error = %v, want ErrDecrypt", err)
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	d := newTestDeriver(t)
	token := encryptToken(t, DefaultKeyConfig(), "https://cdn.example.com/x_96.mp4")

	first, err := d.Derive(token, Tiers())
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	second, err := d.Derive(token, Tiers())
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("links[%d] differ: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestNewDeriverRejectsBadKey(t *testing.T) {
	if _, err := NewDeriver(KeyConfig{Key: "too-long-for-des", Placeholder: "_96"}); err == nil {
		t.Fatal("expected error for invalid key size")
	}
	if _, err := NewDeriver(KeyConfig{Key: "38346591"}); err == nil {
		t.Fatal("expected error for empty placeholder")
	}
}

func TestTierLabel(t *testing.T) {
	if got := Tier320.Label(); got != "320kbps" {
		t.Errorf("Label = %q, want 320kbps", got)
	}
}
