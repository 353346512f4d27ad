/*
Copyright 2024 The Rollproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package commands

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rollproj/rollwin"
	"github.com/rollproj/rollwin/pkg/calendar"
	"github.com/rollproj/rollwin/pkg/engine"
	"github.com/rollproj/rollwin/pkg/event"
	"github.com/rollproj/rollwin/pkg/metrics"
	"github.com/rollproj/rollwin/pkg/shared/logging"
	"github.com/rollproj/rollwin/pkg/sources/generator"
	"github.com/rollproj/rollwin/pkg/transforms"
)

// NewSimulateCommand runs a synthetic simulation: a tick generator feeds
// one engine wired to a built-in transform, with metrics exposed over
// HTTP. It exists to exercise the engine end to end and to profile
// materialization cost; it is not a backtester.
func NewSimulateCommand() *cobra.Command {
	var configFile string

	command := &cobra.Command{
		Use:   "simulate",
		Short: "Run a synthetic rolling window simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.NewLogger().Named("simulate")
			ctx := logging.WithLogger(cmd.Context(), log)
			log.Infow("Starting simulation", "version", rollwin.GetVersion())
			metrics.BuildInfo.WithLabelValues(rollwin.GetVersion().Version, fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)).Set(1)

			v := viper.New()
			v.SetDefault("symbols", []string{"AAA", "BBB", "CCC"})
			v.SetDefault("periods", 250)
			v.SetDefault("step", "24h")
			v.SetDefault("windowLength", 20)
			v.SetDefault("refreshPeriod", 1)
			v.SetDefault("computeOnlyFull", true)
			v.SetDefault("cleanNaNs", true)
			v.SetDefault("transform", "mean")
			v.SetDefault("field", "price")
			v.SetDefault("metricsAddr", ":2469")
			v.SetDefault("seed", int64(42))
			if configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("failed to read simulation profile: %w", err)
				}
			}

			step, err := time.ParseDuration(v.GetString("step"))
			if err != nil {
				return fmt.Errorf("invalid step: %w", err)
			}

			shutdown, err := metrics.NewMetricsServer(metrics.WithAddr(v.GetString("metricsAddr"))).Start(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = shutdown(ctx) }()

			fn, err := builtinTransform(v.GetString("transform"), v.GetString("field"))
			if err != nil {
				return err
			}

			opts := []engine.Option{
				engine.WithName(v.GetString("transform")),
				engine.WithWindowLength(v.GetInt("windowLength")),
				engine.WithRefreshPeriod(v.GetInt("refreshPeriod")),
			}
			if v.GetBool("computeOnlyFull") {
				opts = append(opts, engine.WithComputeOnlyFull())
			}
			if v.GetBool("cleanNaNs") {
				opts = append(opts, engine.WithCleanNaNs())
			}

			e, err := engine.New(ctx, event.DefaultSchema(), calendar.NewCached(calendar.NewInterval(step)), fn, opts...)
			if err != nil {
				return err
			}

			gen := generator.New(
				v.GetStringSlice("symbols"),
				time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
				step,
				v.GetInt("periods"),
				generator.WithSeed(v.GetInt64("seed")),
			)

			var invocations, notReady int
			start := time.Now()
			for raw := range gen.Events(ctx) {
				res, err := e.ProcessEvent(ctx, raw)
				if err != nil {
					return err
				}
				if res.Ready {
					invocations++
				} else {
					notReady++
				}
			}
			log.Infow("Simulation finished",
				"events", gen.Generated(),
				"invocations", invocations,
				"notReady", notReady,
				"identifiers", len(e.Identifiers()),
				"state", e.State().String(),
				"elapsed", time.Since(start).String(),
			)
			return nil
		},
	}
	command.Flags().StringVarP(&configFile, "config", "c", "", "Path to a simulation profile (YAML)")
	return command
}

func builtinTransform(name, field string) (engine.TransformFunc, error) {
	switch name {
	case "field":
		return transforms.Field(field), nil
	case "mean":
		return transforms.Mean(field), nil
	case "stddev":
		return transforms.StdDev(field), nil
	case "zscore":
		return transforms.ZScore(field), nil
	case "ewma":
		return transforms.EWMA(field, 10), nil
	case "vwap":
		return transforms.VWAP(field, "volume"), nil
	default:
		return nil, fmt.Errorf("unknown transform %q", name)
	}
}
