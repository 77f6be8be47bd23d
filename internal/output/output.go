// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/gjson"
)

var (
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Warnf prints a styled warning to stderr. Warnings are advisory; callers
// decide whether to continue.
func Warnf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, warnStyle.Render("WARNING: "+fmt.Sprintf(format, args...)))
}

// SpitJSON marshals v as indented JSON on stdout. When query is non-empty,
// only the gjson extraction at that path is printed.
func SpitJSON(v interface{}, query string) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	if query != "" {
		result := gjson.GetBytes(raw, query)
		if !result.Exists() {
			return fmt.Errorf("no value at query path: %s", query)
		}
		fmt.Println(result.String())
		return nil
	}
	fmt.Println(string(raw))
	return nil
}

// Framed prints body between styled start/end marker lines on stdout.
func Framed(label, body string) {
	fmt.Println(markerStyle.Render(fmt.Sprintf("----- %s start -----", label)))
	fmt.Print(body)
	if len(body) > 0 && body[len(body)-1] != '\n' {
		fmt.Println()
	}
	fmt.Println(markerStyle.Render(fmt.Sprintf("----- %s end -----", label)))
}
