// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lamsh/lamsh/internal/config"
	"github.com/lamsh/lamsh/internal/meta"
)

// Operations in dispatch order for help text and validation.
var operations = []string{"deploy", "run", "tail", "update", "describe", "destroy"}

// InitApp builds the lamsh CLI command: one top-level command whose -o flag
// selects the lifecycle operation.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	cfg2, _ := config.Load() //nolint
	m := meta.Meta{
		Args:    args,
		Config:  cfg2,
		Context: ctx,
	}

	app := &cli.Command{
		Name:  "lamsh",
		Usage: "deploy shell scripts as AWS Lambda functions",
		Flags: NewFlags(),
		Metadata: map[string]any{
			"meta": m,
		},
		Action: rootAction,
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}

// ValidOperation rejects anything outside the operation enum.
func ValidOperation(op string) error {
	for _, o := range operations {
		if o == op {
			return nil
		}
	}
	return fmt.Errorf("unknown operation %q (expected one of %s)", op, strings.Join(operations, "|"))
}
