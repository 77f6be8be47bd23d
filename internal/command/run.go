// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lamsh/lamsh/internal/output"
)

// runAction invokes the function synchronously and prints the tail log
// segment between start/end markers. The response payload is discarded.
func runAction(ctx context.Context, _ *cli.Command, svcs *services) error {
	n := svcs.names

	fn, err := svcs.functions.Lookup(ctx, n.Function)
	if err != nil {
		return err
	}
	if fn == nil {
		return fmt.Errorf("function %s does not exist; deploy it first", n.Function)
	}

	logs, err := svcs.functions.Invoke(ctx, n.Function)
	if err != nil {
		return err
	}

	output.Framed(fmt.Sprintf("invoke log %s", n.Function), logs)
	return nil
}
