// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

// Package aws loads AWS SDK v2 configuration and constructs the service
// clients (IAM, Lambda, S3, CloudWatch Logs) used by the lifecycle
// operations.
package aws
