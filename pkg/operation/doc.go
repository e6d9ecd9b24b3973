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
Package operation renames one model asset tree.

🔄 Flow:
 1. Validate the job (ErrConfig)
 2. Clear an existing destination, asking unless forced (ErrOperationCanceled)
 3. Copy the source tree
 4. Patch the descriptor and move the files it names
 5. Patch each cfg file prefix
 6. Rename and optionally label the icon
 7. Prune emptied directories
 8. Optionally delete the source, then optionally install

Steps 3 to 7 run through a [Runner]. When one fails the destination is
removed again unless the job keeps partial results; the source is never
touched on failure.

🔍 Example:

	op, err := operation.New(operation.Options{
		Job:      operation.Job{Source: "model_a", Destination: "model_b"},
		Prompter: prompt.Default(),
	})
	if err != nil {
		return err
	}
	return op.Run(ctx)
*/
package operation
