// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package codec encodes answers into the cache file format and decodes cached
// records back out of it.
package codec
