// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package text

import (
	"context"
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

const (
	LF   = "\n"
	CRLF = "\r\n"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// IdentifierReplacer renames an identifier inside line oriented `KEY value`
// text. A token only counts when an identifier and whitespace precede it on
// the same line, so keys and bare tokens at the start of a line are left
// alone. Only the first occurrence per line is replaced.
type IdentifierReplacer struct{}

// NewIdentifierReplacer creates a new IdentifierReplacer
func NewIdentifierReplacer() *IdentifierReplacer {
	return &IdentifierReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *IdentifierReplacer) ReplaceText(ctx context.Context, content string, rule ReplacementRule) (*ReplacementResult, error) {
	if err := r.ValidateRule(rule); err != nil {
		return nil, errors.Errorf("validating rule: %w", err)
	}

	re, err := regexp.Compile(`(?i)([0-9a-z_]+\s+)` + regexp.QuoteMeta(rule.FromText))
	if err != nil {
		return nil, errors.Errorf("compiling pattern: %w", err)
	}

	result := &ReplacementResult{
		LineEnding:      DetectLineEnding(content),
		OriginalContent: content,
	}

	lines := lineBreak.Split(content, -1)
	for i, line := range lines {
		loc := re.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}
		// loc[3] ends the captured prefix, loc[1] ends the whole match
		lines[i] = line[:loc[3]] + rule.ToText + line[loc[1]:]
		result.ReplacementCount++
	}

	result.ModifiedContent = strings.Join(lines, result.LineEnding)
	result.WasModified = result.ModifiedContent != content

	return result, nil
}

// ValidateRule implements TextReplacer.ValidateRule
func (r *IdentifierReplacer) ValidateRule(rule ReplacementRule) error {
	if rule.FromText == "" {
		return errors.Errorf("from_text is required")
	}
	return nil
}

// DetectLineEnding returns CRLF when content contains at least one CRLF and
// LF otherwise.
func DetectLineEnding(content string) string {
	if strings.Contains(content, CRLF) {
		return CRLF
	}
	return LF
}
