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
)

// ReplacementRule renames one identifier
type ReplacementRule struct {
	// FromText is the identifier being replaced
	FromText string

	// ToText is the identifier written in its place
	ToText string
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of lines changed
	ReplacementCount int

	// LineEnding is the line terminator used to rejoin the content
	LineEnding string

	// OriginalContent is the content before replacements
	OriginalContent string

	// ModifiedContent is the content after replacements
	ModifiedContent string
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies the rule to the content and reports what changed
	ReplaceText(ctx context.Context, content string, rule ReplacementRule) (*ReplacementResult, error)

	// ValidateRule checks that the rule is usable
	ValidateRule(rule ReplacementRule) error
}
