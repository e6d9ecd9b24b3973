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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/remodel/pkg/log"
	"github.com/walteh/remodel/pkg/status"
)

// 🧹 pruneOperation removes directories emptied by the moves
type pruneOperation struct {
	tree *status.Manager
}

func newPruneOperation(tree *status.Manager) Operation {
	return &pruneOperation{tree: tree}
}

func (op *pruneOperation) Name() string { return "prune" }

// 🏃 Execute runs the prune operation
func (op *pruneOperation) Execute(ctx context.Context) error {
	pruned, err := status.Prune(ctx, op.tree.Root())
	if err != nil {
		return err
	}

	for _, dir := range pruned {
		op.tree.TrackFile(ctx, status.FileEntry{
			Path:   dir,
			Status: status.StatusPruned,
			Detail: "empty directory",
		})
	}
	return nil
}

// rollback deletes the partially written destination unless the job asks
// to keep it. Failures are logged, the original error wins.
func (o *operator) rollback(ctx context.Context) {
	console := log.FromContext(ctx)
	dest := o.job.Destination

	if o.job.KeepPartial {
		console.Warningf("partial result is kept at %s", dest)
		return
	}

	if err := status.RemoveTree(ctx, dest); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("path", dest).Msg("rolling back destination")
		console.Errorf("could not remove partial result at %s", dest)
		return
	}
	console.Warningf("partial result at %s is removed", dest)
}
