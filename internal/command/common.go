// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	lamshaws "github.com/lamsh/lamsh/internal/aws"
	"github.com/lamsh/lamsh/internal/config"
	"github.com/lamsh/lamsh/internal/log"
	"github.com/lamsh/lamsh/internal/meta"
	"github.com/lamsh/lamsh/internal/names"
	"github.com/lamsh/lamsh/internal/region"
	"github.com/lamsh/lamsh/internal/service"
)

// layerAccount owns the public bash custom-runtime layer.
const layerAccount = "744348701589"

// settings are the tunables read from lamsh.yaml, with the fixed defaults.
type settings struct {
	memory          int32
	timeout         int32
	layerARN        string
	propagationWait time.Duration
	tailInterval    time.Duration
	tailWindow      time.Duration
}

// loadSettings resolves the config-file tunables for the given region.
func loadSettings(reg string) settings {
	memory, _ := config.GetInt("lambda.memory", 1024)
	timeout, _ := config.GetInt("lambda.timeout", 900)
	layerVersion, _ := config.GetInt("lambda.layer_version", 8)
	layer, _ := config.GetString("lambda.layer", "")
	if layer == "" {
		layer = fmt.Sprintf("arn:aws:lambda:%s:%s:layer:bash:%d", reg, layerAccount, layerVersion)
	}
	wait, _ := config.GetInt("iam.propagation_wait", 20)
	interval, _ := config.GetInt("tail.interval", 2)
	window, _ := config.GetInt("tail.window", 3600)

	return settings{
		memory:          int32(memory),
		timeout:         int32(timeout),
		layerARN:        layer,
		propagationWait: time.Duration(wait) * time.Second,
		tailInterval:    time.Duration(interval) * time.Second,
		tailWindow:      time.Duration(window) * time.Second,
	}
}

// services bundles the per-invocation service layer and derived names.
type services struct {
	names    names.Names
	region   string
	settings settings

	roles     *service.RoleService
	functions *service.FunctionService
	logs      *service.LogService
	buckets   *service.BucketService
}

// buildServices validates the environment (script present, region resolved
// and known, AWS config loadable) and constructs the service layer. No
// remote call has been made when it returns an error.
func buildServices(ctx context.Context, cmd *cli.Command) (*services, error) {
	script := cmd.String("script")
	if err := names.CheckScript(script); err != nil {
		return nil, fmt.Errorf("script %s: %w", script, err)
	}
	n := names.Derive(script)

	reg, err := region.Resolve(cmd.String("region"))
	if err != nil {
		return nil, err
	}
	if err := region.Validate(reg); err != nil {
		return nil, err
	}
	log.Debugf("resolved: function=%s role=%s region=%s", n.Function, n.Role, reg)

	awsCfg, err := lamshaws.LoadAWSConfig(ctx, lamshaws.WithRegion(reg))
	if err != nil {
		return nil, fmt.Errorf("loading AWS configuration: %w", err)
	}

	return &services{
		names:     n,
		region:    reg,
		settings:  loadSettings(reg),
		roles:     service.NewRoleService(lamshaws.NewIAM(awsCfg)),
		functions: service.NewFunctionService(lamshaws.NewLambda(awsCfg)),
		logs:      service.NewLogService(lamshaws.NewLogs(awsCfg)),
		buckets:   service.NewBucketService(lamshaws.NewS3(awsCfg)),
	}, nil
}

// rootAction validates the environment once and dispatches on the operation.
func rootAction(ctx context.Context, cmd *cli.Command) error {
	m := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", m.Args[1:])

	svcs, err := buildServices(ctx, cmd)
	if err != nil {
		return err
	}

	switch op := cmd.String("operation"); op {
	case "deploy":
		return deployAction(ctx, cmd, svcs)
	case "run":
		return runAction(ctx, cmd, svcs)
	case "tail":
		return tailAction(ctx, cmd, svcs)
	case "update":
		return updateAction(ctx, cmd, svcs)
	case "describe":
		return describeAction(ctx, cmd, svcs)
	case "destroy":
		return destroyAction(ctx, cmd, svcs)
	default:
		// The flag validator already rejected anything else.
		return ValidOperation(op)
	}
}
