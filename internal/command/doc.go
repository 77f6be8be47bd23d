// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

// Package command builds the lamsh CLI and implements the lifecycle
// operations: deploy, run, tail, update, describe, destroy. One top-level
// command dispatches on the -o flag; each operation lives in its own file.
package command
