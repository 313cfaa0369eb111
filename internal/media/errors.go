// SPDX-License-Identifier: MIT

package media

import "errors"

var (
	// ErrDecode marks tokens that are not valid base64 or not aligned to
	// the cipher block size.
	ErrDecode = errors.New("media: token decode failed")

	// ErrDecrypt marks tokens that decode but do not correspond to a
	// validly-encrypted payload under the fixed key. Callers surface a
	// generic condition instead of leaking cipher detail.
	ErrDecrypt = errors.New("media: token decrypt failed")
)
