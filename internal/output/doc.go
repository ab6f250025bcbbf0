// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output emits answers and cached records as a table, JSON, YAML or
// the raw cache encoding.
package output
