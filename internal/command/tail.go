// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lamsh/lamsh/internal/log"
)

// tailAction polls the function's log group forever, printing each event and
// advancing the cursor. It returns cleanly when the context is cancelled by
// an interrupt.
func tailAction(ctx context.Context, _ *cli.Command, svcs *services) error {
	n := svcs.names

	start := time.Now().Add(-svcs.settings.tailWindow).UnixMilli()
	log.Infof("tailing %s (interval %s)", n.LogGroup, svcs.settings.tailInterval)

	err := svcs.logs.Tail(ctx, os.Stdout, n.LogGroup, start, svcs.settings.tailInterval)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
