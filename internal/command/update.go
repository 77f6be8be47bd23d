// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lamsh/lamsh/internal/archive"
)

// updateAction replaces only the function's code. Role, policy, memory,
// timeout, and triggers are left untouched even if different flags were
// supplied. The function must already exist; nothing is packaged before that
// check.
func updateAction(ctx context.Context, _ *cli.Command, svcs *services) error {
	n := svcs.names

	fn, err := svcs.functions.Lookup(ctx, n.Function)
	if err != nil {
		return err
	}
	if fn == nil {
		return fmt.Errorf("function %s does not exist; deploy it first", n.Function)
	}

	zipped, err := archive.Package(n.Script)
	if err != nil {
		return err
	}
	if err := svcs.functions.UpdateCode(ctx, n.Function, zipped); err != nil {
		return err
	}

	fmt.Printf("updated code of function %s from %s\n", n.Function, n.Script)
	return nil
}
