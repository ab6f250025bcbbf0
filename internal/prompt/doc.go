// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package prompt resolves an ordered batch of questions into answers. It asks
// through a line interface, pre-populates input from a cache of previous
// answers, derives answers from earlier ones and optionally persists the
// result back to the cache.
package prompt
