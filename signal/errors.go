// SPDX-License-Identifier: EPL-2.0

package signal

import "errors"

var (
	// ErrEmptySignal means the input buffer held zero samples after
	// channel reduction. No geometry can be derived from it.
	ErrEmptySignal = errors.New("empty signal: no samples to prepare")
)
