// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// promptr is the main package for the promptr command line tool. It asks a
// file of questions one at a time, remembers the answers between runs and
// prints them as a table, JSON or YAML.
package main
