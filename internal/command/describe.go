// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/lamsh/lamsh/internal/output"
)

// describeAction prints the function's configuration as JSON. A missing
// function only warns; describe tolerates absence.
func describeAction(ctx context.Context, cmd *cli.Command, svcs *services) error {
	n := svcs.names

	fn, err := svcs.functions.Lookup(ctx, n.Function)
	if err != nil {
		return err
	}
	if fn == nil {
		output.Warnf("function %s does not exist", n.Function)
		return nil
	}

	return output.SpitJSON(fn.Configuration, cmd.String("query"))
}
