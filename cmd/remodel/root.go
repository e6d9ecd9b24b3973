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

package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/walteh/remodel/cmd/remodel/opts"
	"github.com/walteh/remodel/pkg/config"
	"github.com/walteh/remodel/pkg/label"
	"github.com/walteh/remodel/pkg/log"
	"github.com/walteh/remodel/pkg/operation"
	"github.com/walteh/remodel/pkg/prompt"
	"gitlab.com/tozd/go/errors"
)

type rootOpts = opts.RootOpts

// flagAliases maps the short spellings accepted for the long flags.
var flagAliases = map[string]string{
	"src":     "source",
	"dest":    "destination",
	"no-dupl": "no-duplication",
}

func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if full, ok := flagAliases[name]; ok {
		name = full
	}
	return pflag.NormalizedName(name)
}

// newRootCmd builds the remodel command. A nil ro starts from empty options.
func newRootCmd(stdout, stderr io.Writer, ro *rootOpts) *cobra.Command {
	if ro == nil {
		ro = &rootOpts{}
	}

	cmd := &cobra.Command{
		Use:   "remodel -s <source> -d <destination>",
		Short: "Rename a model asset directory",
		Long: `remodel copies a model directory to a new name and rewrites every
reference to the old name inside it:

1. the .model3.json descriptor and the files it points at
2. the cc_ and cc_names_ config files
3. the ico_ icon, optionally stamped with a label

Empty directories left behind are removed.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errors.Errorf("%w: unexpected arguments %q", operation.ErrConfig, args)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(setupLogging(cmd.Context(), stdout, stderr, ro.Debug))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd.Context(), ro)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetGlobalNormalizationFunc(normalizeFlagName)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Errorf("%w: %s", operation.ErrConfig, err)
	})

	addRootFlags(cmd, ro)
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// addRootFlags adds the rename flags to the root command
func addRootFlags(cmd *cobra.Command, ro *rootOpts) {
	f := cmd.Flags()
	f.StringVarP(&ro.Source, "source", "s", "", "model directory to rename (required, alias --src)")
	f.StringVarP(&ro.Destination, "destination", "d", "", "new model directory (required, alias --dest)")
	f.BoolVarP(&ro.NoDuplication, "no-duplication", "N", false, "delete the source after a successful rename (alias --no-dupl)")
	f.BoolVarP(&ro.Force, "force", "f", false, "overwrite existing directories without asking")
	f.BoolVarP(&ro.IconLabel, "icon-label", "i", false, "stamp the trailing letters or digits of the new name onto the icon")
	f.BoolVarP(&ro.Install, "install", "I", false, "copy the result into the FaceRig objects directory")
	f.BoolVar(&ro.KeepPartial, "keep-partial", false, "keep the destination when a step fails")

	cmd.PersistentFlags().StringVarP(&ro.ConfigFile, "config", "c", "", "config file path (.yaml, .hcl, .json or .remodelrc)")
	cmd.PersistentFlags().BoolVar(&ro.Debug, "debug", false, "enable debug logging")
}

// setupLogging puts the structured logger and the console logger into ctx.
// Structured records go to stderr, warnings only unless debugging.
func setupLogging(ctx context.Context, stdout, stderr io.Writer, debug bool) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	zlog := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	ctx = zlog.WithContext(ctx)
	return log.NewContext(ctx, log.New(stdout, zlog))
}

// loadConfig reads the --config file, or ./.remodelrc when present.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		if _, err := os.Stat(config.RCName); err != nil {
			return config.Default(), nil
		}
		path = config.RCName
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, errors.Errorf("%w: %s", operation.ErrConfig, err)
	}
	return cfg, nil
}

func runRename(ctx context.Context, ro *rootOpts) error {
	cfg, err := loadConfig(ctx, ro.ConfigFile)
	if err != nil {
		return err
	}

	var compositor label.Compositor
	if ro.IconLabel {
		compositor, err = cfg.Compositor()
		if err != nil {
			return errors.Errorf("%w: %s", operation.ErrConfig, err)
		}
	}

	prompter := ro.Prompter
	if prompter == nil {
		prompter = prompt.Default()
	}

	op, err := operation.New(operation.Options{
		Job:        ro.Job(),
		Config:     cfg,
		Prompter:   prompter,
		Compositor: compositor,
	})
	if err != nil {
		return err
	}

	return op.Run(ctx)
}
