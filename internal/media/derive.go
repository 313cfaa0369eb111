// SPDX-License-Identifier: MIT

// Package media derives per-bitrate fetch URLs from the encrypted media
// tokens shipped by the upstream catalog service. The upstream encrypts a
// URL template under a fixed DES key (a reverse-engineered protocol
// constant); one decrypt plus textual substitution of the bitrate segment
// yields one URL per requested tier.
package media

import (
	"crypto/cipher"
	"crypto/des"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// BitrateTier is one of the fixed audio bitrate targets, in kbps.
type BitrateTier int

// The tier set is defined by the system, not derived from input.
const (
	Tier12  BitrateTier = 12
	Tier48  BitrateTier = 48
	Tier96  BitrateTier = 96
	Tier160 BitrateTier = 160
	Tier320 BitrateTier = 320
)

// Tiers lists every supported bitrate tier in ascending order.
func Tiers() []BitrateTier {
	return []BitrateTier{Tier12, Tier48, Tier96, Tier160, Tier320}
}

// Label renders the tier as the outward-facing quality tag, e.g. "320kbps".
func (t BitrateTier) Label() string {
	return strconv.Itoa(int(t)) + "kbps"
}

// segment renders the tier as the URL path segment substituted into the
// decrypted template. The leading underscore mirrors the upstream CDN
// convention and keeps unrelated digit runs in the URL intact.
func (t BitrateTier) segment() string {
	return "_" + strconv.Itoa(int(t))
}

// DerivedLink pairs a bitrate tier with its derived fetch URL. Links are
// produced fresh per request and never cached.
type DerivedLink struct {
	Tier BitrateTier
	URL  string
}

// KeyConfig carries the protocol constants of the upstream encryption
// scheme. They are fixed by the (reverse-engineered) upstream service and
// injected at construction so call sites stay agnostic of the scheme.
type KeyConfig struct {
	// Key is the DES key the catalog service encrypts media URLs under.
	Key string
	// Placeholder is the template substring that conventionally encodes the
	// default bitrate segment.
	Placeholder string
}

// DefaultKeyConfig returns the constants of the current upstream scheme.
func DefaultKeyConfig() KeyConfig {
	return KeyConfig{
		Key:         "38346591",
		Placeholder: "_96",
	}
}

// Deriver decrypts encrypted media tokens and derives per-tier links.
// A Deriver is immutable and safe for concurrent use.
type Deriver struct {
	block       cipher.Block
	placeholder string
}

// NewDeriver constructs a Deriver from the given protocol constants.
func NewDeriver(cfg KeyConfig) (*Deriver, error) {
	if cfg.Placeholder == "" {
		return nil, fmt.Errorf("media: placeholder must not be empty")
	}
	block, err := des.NewCipher([]byte(cfg.Key))
	if err != nil {
		return nil, fmt.Errorf("media: invalid key: %w", err)
	}
	return &Deriver{block: block, placeholder: cfg.Placeholder}, nil
}

// Derive decodes and decrypts token once, then produces one link per
// requested tier, in input order, by replacing every occurrence of the
// placeholder in the recovered URL template. An empty tier list yields an
// empty slice.
func (d *Deriver) Derive(token string, tiers []BitrateTier) ([]DerivedLink, error) {
	template, err := d.template(token)
	if err != nil {
		return nil, err
	}

	links := make([]DerivedLink, 0, len(tiers))
	for _, tier := range tiers {
		links = append(links, DerivedLink{
			Tier: tier,
			URL:  strings.ReplaceAll(template, d.placeholder, tier.segment()),
		})
	}
	return links, nil
}

// template recovers the plaintext URL template from an encrypted token.
func (d *Deriver) template(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64: %v", ErrDecode, err)
	}
	if len(raw) == 0 || len(raw)%des.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d is not block-aligned", ErrDecode, len(raw))
	}

	plain := make([]byte, len(raw))
	for off := 0; off < len(raw); off += des.BlockSize {
		d.block.Decrypt(plain[off:off+des.BlockSize], raw[off:off+des.BlockSize])
	}

	plain, err = pkcs5Unpad(plain)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: template is not valid UTF-8", ErrDecrypt)
	}
	return string(plain), nil
}

// pkcs5Unpad strips PKCS#5 padding, rejecting anything that could not have
// been produced by a valid encryption under the fixed key.
func pkcs5Unpad(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty plaintext", ErrDecrypt)
	}
	pad := int(b[len(b)-1])
	if pad < 1 || pad > des.BlockSize || pad > len(b) {
		return nil, fmt.Errorf("%w: invalid padding", ErrDecrypt)
	}
	for _, c := range b[len(b)-pad:] {
		if int(c) != pad {
			return nil, fmt.Errorf("%w: invalid padding", ErrDecrypt)
		}
	}
	return b[:len(b)-pad], nil
}
