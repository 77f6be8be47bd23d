// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/lamsh/lamsh/internal/config"
)

// Meta contains runtime metadata shared by the operation handlers. It carries
// CLI arguments, loaded configuration, and the invocation context.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
}
