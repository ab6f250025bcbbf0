// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package transform compiles short transform specs into answer transforms.
//
// A spec is "<flags>[:<format>]". Flags:
//
//	u, U   upper case
//	l, L   lower case (the later of u and l wins)
//	~      trim surrounding space
//	t, T   convert an RFC3339 time to the TZ zone
//	N      truncate to N characters; -N keeps both ends around ".."
//	i      convert to an integer
//	b      convert to a boolean (also accepts y/yes/n/no)
//
// The format is a fmt template with a single %s, e.g. "u:%s is the best!".
package transform
