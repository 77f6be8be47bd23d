// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"

	"github.com/lamsh/lamsh/internal/archive"
	"github.com/lamsh/lamsh/internal/notification"
	"github.com/lamsh/lamsh/internal/output"
	"github.com/lamsh/lamsh/internal/service"
)

// deployAction creates the execution role and function if absent, then wires
// the optional event-source mapping and bucket notification. Existing
// resources are reused, never overwritten: a second deploy against the same
// script only warns.
func deployAction(ctx context.Context, cmd *cli.Command, svcs *services) error {
	n := svcs.names

	policyARN := service.PolicyARN(cmd.String("policy"))
	roleARN, created, err := svcs.roles.Ensure(ctx, n.Role, policyARN)
	if err != nil {
		return err
	}

	fn, err := svcs.functions.Lookup(ctx, n.Function)
	if err != nil {
		return err
	}

	var functionARN string
	if fn != nil {
		output.Warnf("function %s already exists, skipping creation (use -o update to replace its code)", n.Function)
		functionARN = awsv2.ToString(fn.Configuration.FunctionArn)
	} else {
		zipped, err := archive.Package(n.Script)
		if err != nil {
			return err
		}
		functionARN, err = svcs.functions.Create(ctx, service.CreateParams{
			Name:            n.Function,
			Handler:         n.Handler,
			RoleARN:         roleARN,
			Zip:             zipped,
			Memory:          svcs.settings.memory,
			Timeout:         svcs.settings.timeout,
			LayerARN:        svcs.settings.layerARN,
			FreshRole:       created,
			PropagationWait: svcs.settings.propagationWait,
		})
		if err != nil {
			return err
		}
	}

	if eventARN := cmd.String("event-arn"); eventARN != "" {
		if _, err := svcs.functions.MapEventSource(ctx, n.Function, eventARN); err != nil {
			return err
		}
	}

	if bucket := cmd.String("bucket"); bucket != "" {
		doc, err := notification.Load(cmd.String("notification"))
		if err != nil {
			return err
		}
		doc.Resolve(functionARN)

		if err := svcs.functions.AllowBucket(ctx, n.Function, bucket); err != nil {
			return err
		}
		if err := svcs.buckets.ApplyNotification(ctx, bucket, doc.ToS3()); err != nil {
			return err
		}
	}

	fmt.Printf("deployed %s as function %s\n", n.Script, n.Function)
	return nil
}
