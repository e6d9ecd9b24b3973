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
	"regexp"
	"sync"
)

// PrefixReplacer rewrites values shaped like "<from>.<rest>" into
// "<to>.<rest>". Values that merely contain the identifier are untouched.
type PrefixReplacer struct {
	rule ReplacementRule

	once sync.Once
	re   *regexp.Regexp
}

// NewPrefixReplacer creates a PrefixReplacer for rule
func NewPrefixReplacer(rule ReplacementRule) *PrefixReplacer {
	return &PrefixReplacer{rule: rule}
}

// Replace returns the rewritten value and whether it matched.
func (p *PrefixReplacer) Replace(value string) (string, bool) {
	p.once.Do(func() {
		p.re = regexp.MustCompile(`^` + regexp.QuoteMeta(p.rule.FromText) + `\.`)
	})

	if p.rule.FromText == "" || !p.re.MatchString(value) {
		return value, false
	}

	return p.rule.ToText + value[len(p.rule.FromText):], true
}
