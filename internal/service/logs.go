// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"io"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"

	"github.com/lamsh/lamsh/internal/log"
)

// LogsAPI is the subset of the CloudWatch Logs client used by LogService.
type LogsAPI interface {
	FilterLogEvents(ctx context.Context, params *cw.FilterLogEventsInput, optFns ...func(*cw.Options)) (*cw.FilterLogEventsOutput, error)
}

// Event is one log line with its millisecond timestamp.
type Event struct {
	Timestamp int64
	Message   string
}

// LogService polls a function's log group by advancing a timestamp cursor.
type LogService struct {
	api LogsAPI
}

// NewLogService constructs a LogService over the given client.
func NewLogService(api LogsAPI) *LogService {
	return &LogService{api: api}
}

// Poll fetches every event in the group with timestamp >= start and returns
// the next cursor position: one past the newest event seen, or start+1 when
// the window was empty so a quiet period never refetches the same window.
// Delivery is at-least-once; two events sharing a millisecond can straddle
// the window boundary.
func (s *LogService) Poll(ctx context.Context, group string, start int64) ([]Event, int64, error) {
	var events []Event
	var token *string
	for {
		out, err := s.api.FilterLogEvents(ctx, &cw.FilterLogEventsInput{
			LogGroupName: awsv2.String(group),
			StartTime:    awsv2.Int64(start),
			NextToken:    token,
		})
		if err != nil {
			// A function that has never run has no log group yet; treat that
			// as an empty window rather than a failure.
			if isAPIErrorCode(err, "ResourceNotFoundException") {
				return nil, start + 1, nil
			}
			return nil, start, fmt.Errorf("FilterLogEvents %s: %w", group, err)
		}
		for _, e := range out.Events {
			events = append(events, Event{
				Timestamp: awsv2.ToInt64(e.Timestamp),
				Message:   awsv2.ToString(e.Message),
			})
		}
		if out.NextToken == nil {
			break
		}
		token = out.NextToken
	}

	next := start + 1
	for _, e := range events {
		if e.Timestamp+1 > next {
			next = e.Timestamp + 1
		}
	}
	return events, next, nil
}

// FormatEvent renders one tail line: UTC timestamp and the raw message.
func FormatEvent(e Event) string {
	ts := time.UnixMilli(e.Timestamp).UTC().Format("2006-01-02_15:04:05")
	return fmt.Sprintf("%s - %s", ts, e.Message)
}

// Tail polls the group from start until ctx is cancelled, writing each event
// to w and sleeping interval between rounds.
func (s *LogService) Tail(ctx context.Context, w io.Writer, group string, start int64, interval time.Duration) error {
	log.Debugf("tailing %s from %d", group, start)
	for {
		events, next, err := s.Poll(ctx, group, start)
		if err != nil {
			return err
		}
		for _, e := range events {
			fmt.Fprintln(w, FormatEvent(e))
		}
		start = next

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}
