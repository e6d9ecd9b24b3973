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

/*
Package config loads the optional remodel configuration file.

🎯 Purpose:
- Names the descriptor extension and the cfg file prefixes to patch
- Configures the icon label compositor
- Overrides the install target
- Lists copy ignore globs

🔄 Flow:
1. Picks a parser from the file extension (.yaml/.yml, .hcl, .json)
2. Decodes, rejecting unknown keys
3. Validate fills defaults and rejects bad values

A file named .remodelrc is tried as YAML first, then as HCL. HCL files can
read environment variables through env.NAME.

🔍 Example:

	label {
	  engine     = "native"
	  point_size = 28
	}

	install {
	  dir = "${env.HOME}/FaceRig/Objects"
	}
*/
package config
