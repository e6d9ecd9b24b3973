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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/remodel/pkg/config"
	"github.com/walteh/remodel/pkg/label"
	"github.com/walteh/remodel/pkg/log"
	"github.com/walteh/remodel/pkg/prompt"
	"github.com/walteh/remodel/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrConfig marks missing or contradictory job settings.
	ErrConfig = errors.Base("invalid configuration")
	// ErrOperationCanceled marks a run the user declined to continue.
	ErrOperationCanceled = errors.Base("operation canceled")
)

// 🎯 Operator renames one asset tree
type Operator interface {
	// Run copies the source to the destination and patches it
	Run(ctx context.Context) error
	// Files lists what the last run did to the destination tree
	Files(ctx context.Context) []status.FileEntry
}

// 🔧 Options contains configuration for the operator
type Options struct {
	Job        Job
	Config     *config.Config   // nil means config.Default()
	Prompter   prompt.Prompter  // asked before anything is overwritten
	Compositor label.Compositor // required when Job.IconLabel is set
	Platform   Platform         // zero value means the host
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Prompter == nil {
		return nil, errors.Errorf("prompter is required")
	}
	if opts.Job.IconLabel && opts.Compositor == nil {
		return nil, errors.Errorf("compositor is required for icon labels")
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	} else if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("%w: %s", ErrConfig, err)
	}

	platform := opts.Platform
	if platform.GOOS == "" {
		platform = HostPlatform()
	}

	return &operator{
		job:        opts.Job,
		config:     cfg,
		prompter:   opts.Prompter,
		compositor: opts.Compositor,
		platform:   platform,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	job        Job
	config     *config.Config
	prompter   prompt.Prompter
	compositor label.Compositor
	platform   Platform

	tree *status.Manager
}

func (o *operator) Files(ctx context.Context) []status.FileEntry {
	if o.tree == nil {
		return nil
	}
	return o.tree.ListFiles(ctx)
}

// Run implements Operator.Run
func (o *operator) Run(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	console := log.FromContext(ctx)
	job := o.job

	if err := o.validate(); err != nil {
		return err
	}

	before, after := job.Before(), job.After()
	console.Header(fmt.Sprintf("%s → %s", before, after))
	logger.Debug().Interface("job", job).Stringer("config", o.config).Msg("starting rename")

	if err := o.clearDestination(ctx); err != nil {
		return err
	}

	o.tree = status.New(job.Destination)

	steps := []Operation{
		newCopyOperation(o.tree, job.Source, o.config.Copy.IgnorePatterns),
		newDescriptorOperation(o.tree, before, after, o.config.DescriptorExt),
	}
	for _, prefix := range o.config.CfgPrefixes {
		steps = append(steps, newConfigOperation(o.tree, before, after, prefix))
	}
	steps = append(steps,
		newIconOperation(o.tree, before, after, job.IconLabel, o.compositor),
		newPruneOperation(o.tree),
	)

	if err := NewRunner(logger).Run(ctx, steps...); err != nil {
		o.rollback(ctx)
		return err
	}

	if job.NoDuplication {
		if err := status.RemoveTree(ctx, job.Source); err != nil {
			return errors.Errorf("removing source: %w", err)
		}
		o.tree.TrackFile(ctx, status.FileEntry{
			Path:   job.Source,
			Status: status.StatusDeleted,
			Detail: "source removed",
		})
	}

	if job.Install {
		if err := o.install(ctx); err != nil {
			return errors.Errorf("installing: %w", err)
		}
	}

	o.report(ctx)
	return nil
}

func (o *operator) validate() error {
	if err := o.job.Validate(); err != nil {
		return err
	}

	exists, isDir, err := status.Exists(o.job.Source)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Errorf("%w: source %s does not exist", ErrConfig, o.job.Source)
	}
	if !isDir {
		return errors.Errorf("%w: source %s is not a directory", ErrConfig, o.job.Source)
	}
	return nil
}

// clearDestination removes an existing destination, asking first unless the
// job is forced. Nothing is touched when the user declines.
func (o *operator) clearDestination(ctx context.Context) error {
	dest := o.job.Destination

	exists, _, err := status.Exists(dest)
	if err != nil || !exists {
		return err
	}

	if !o.job.Force {
		ok, err := o.confirm(ctx, fmt.Sprintf("%s already exists, remove it and continue operation?", dest))
		if err != nil {
			return err
		}
		if !ok {
			return errors.Errorf("%w: %s already exists", ErrOperationCanceled, dest)
		}
	}

	if err := status.RemoveTree(ctx, dest); err != nil {
		return errors.Errorf("removing existing destination: %w", err)
	}
	log.FromContext(ctx).Infof("%s is removed", dest)
	return nil
}

func (o *operator) confirm(ctx context.Context, message string) (bool, error) {
	ok, err := o.prompter.Confirm(ctx, message)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false, errors.Errorf("%w: %s", ErrOperationCanceled, err)
		}
		return false, errors.Errorf("asking for confirmation: %w", err)
	}
	return ok, nil
}

// 📋 Job is one rename request
type Job struct {
	Source        string
	Destination   string
	Force         bool // overwrite without asking
	NoDuplication bool // delete the source after a successful run
	IconLabel     bool // stamp the new name's suffix onto the icon
	Install       bool // copy the result into the application
	KeepPartial   bool // leave the destination behind on failure
}

// Before is the base name being replaced.
func (j Job) Before() string {
	return filepath.Base(filepath.Clean(j.Source))
}

// After is the replacement base name.
func (j Job) After() string {
	return filepath.Base(filepath.Clean(j.Destination))
}

// Validate reports ErrConfig for unusable source and destination paths.
func (j Job) Validate() error {
	if strings.TrimSpace(j.Source) == "" {
		return errors.Errorf("%w: source is required", ErrConfig)
	}
	if strings.TrimSpace(j.Destination) == "" {
		return errors.Errorf("%w: destination is required", ErrConfig)
	}

	src, err := filepath.Abs(j.Source)
	if err != nil {
		return errors.Errorf("%w: resolving source: %s", ErrConfig, err)
	}
	dst, err := filepath.Abs(j.Destination)
	if err != nil {
		return errors.Errorf("%w: resolving destination: %s", ErrConfig, err)
	}

	if src == dst {
		return errors.Errorf("%w: source and destination are the same directory", ErrConfig)
	}
	if rel, err := filepath.Rel(src, dst); err == nil && filepath.IsLocal(rel) {
		return errors.Errorf("%w: destination %s is inside the source", ErrConfig, j.Destination)
	}
	if rel, err := filepath.Rel(dst, src); err == nil && filepath.IsLocal(rel) {
		return errors.Errorf("%w: destination %s contains the source", ErrConfig, j.Destination)
	}

	for _, name := range []string{j.Before(), j.After()} {
		if name == "." || name == string(os.PathSeparator) {
			return errors.Errorf("%w: %q has no base name", ErrConfig, name)
		}
	}

	return nil
}
