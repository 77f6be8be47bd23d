// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional lamsh.yaml file from the user config
// directory (or LAMSH_CFG_FILE) and exposes typed getters over dotted key
// paths.
package config
