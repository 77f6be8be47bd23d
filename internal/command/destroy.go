// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lamsh/lamsh/internal/output"
)

// destroyAction deletes the function and the execution role. Each resource is
// handled independently: absence warns and the other teardown still runs.
// Event-source mappings and bucket notifications created by deploy are not
// reverted; that cleanup stays manual.
func destroyAction(ctx context.Context, _ *cli.Command, svcs *services) error {
	n := svcs.names

	fnFound, err := svcs.functions.Delete(ctx, n.Function)
	if err != nil {
		return err
	}
	if !fnFound {
		output.Warnf("function %s does not exist", n.Function)
	}

	roleFound, err := svcs.roles.Teardown(ctx, n.Role)
	if err != nil {
		return err
	}
	if !roleFound {
		output.Warnf("role %s does not exist", n.Role)
	}

	if !fnFound && !roleFound {
		return nil
	}

	output.Warnf("event-source mappings and bucket notifications are not removed by destroy")
	fmt.Printf("destroyed function %s\n", n.Function)
	return nil
}
