// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

// Package service wraps the AWS service clients with the operations the
// lifecycle commands need. Each service takes a narrow client interface so
// tests can substitute fakes. Existence checks are conditional get-then-act:
// best-effort idempotency, not a transactional guarantee.
package service
