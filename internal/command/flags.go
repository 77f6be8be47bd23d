// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/lamsh/lamsh/internal/config"
)

// NewFlags builds the flag set for the lamsh command. String flags resolve
// flag, then environment, then the lamsh.yaml config file.
func NewFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "operation",
			Aliases:   []string{"o"},
			Usage:     "operation to perform: deploy|run|tail|update|describe|destroy",
			Required:  true,
			Validator: ValidOperation,
		},
		&cli.StringFlag{
			Name:     "script",
			Aliases:  []string{"s"},
			Usage:    "path to the shell script to manage",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "region",
			Aliases: []string{"r"},
			Usage:   "region to deploy into. Falls back to AWS_REGION/AWS_DEFAULT_REGION",
			Sources: valueChain("region", cli.EnvVar("LAMSH_REGION")),
		},
		&cli.StringFlag{
			Name:    "policy",
			Aliases: []string{"p"},
			Usage:   "managed policy name or ARN to attach to the execution role",
			Sources: valueChain("policy", cli.EnvVar("LAMSH_POLICY")),
			Value:   "AdministratorAccess",
		},
		&cli.StringFlag{
			Name:    "event-arn",
			Aliases: []string{"e"},
			Usage:   "event source ARN to map to the function (deploy only)",
		},
		&cli.StringFlag{
			Name:    "bucket",
			Aliases: []string{"b"},
			Usage:   "bucket to notify the function from (deploy only)",
		},
		&cli.StringFlag{
			Name:    "notification",
			Aliases: []string{"n"},
			Usage:   "notification template file (deploy only, default embedded)",
			Sources: valueChain("notification.template", cli.EnvVar("LAMSH_NOTIFICATION")),
		},
		&cli.StringFlag{
			Name:    "query",
			Aliases: []string{"q"},
			Usage:   "gjson path to extract from describe output",
		},
	}
}

// valueChain chains environment sources with the config-file source for the
// given lamsh.yaml key. A missing config file is fine; the chain just ends
// earlier.
func valueChain(key string, envs ...cli.ValueSource) cli.ValueSourceChain {
	chain := cli.NewValueSourceChain(envs...)
	if path := config.FilePath(); path != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(key, altsrc.StringSourcer(path)))
	}
	return chain
}
