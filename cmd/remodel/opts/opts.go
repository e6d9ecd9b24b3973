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

package opts

import (
	"github.com/walteh/remodel/pkg/operation"
	"github.com/walteh/remodel/pkg/prompt"
)

// RootOpts contains the flags of the root command
type RootOpts struct {
	Source        string
	Destination   string
	NoDuplication bool
	Force         bool
	IconLabel     bool
	Install       bool
	KeepPartial   bool
	ConfigFile    string
	Debug         bool

	// Prompter overrides the interactive prompter, for tests
	Prompter prompt.Prompter
}

// Job returns the rename job described by the flags.
func (o *RootOpts) Job() operation.Job {
	return operation.Job{
		Source:        o.Source,
		Destination:   o.Destination,
		Force:         o.Force,
		NoDuplication: o.NoDuplication,
		IconLabel:     o.IconLabel,
		Install:       o.Install,
		KeepPartial:   o.KeepPartial,
	}
}
