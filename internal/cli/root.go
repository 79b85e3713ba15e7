// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	sem2segy "github.com/ik5/sem2segy"
	"github.com/ik5/sem2segy/internal/config"
	"github.com/ik5/sem2segy/internal/ctxlog"
	"github.com/ik5/sem2segy/trace"
)

// requiredWithoutConfig must be given on the command line unless a job file
// is used.
var requiredWithoutConfig = []string{"stype", "scomp", "stend", "offbeg", "offend", "offsp", "outname"}

type rootOptions struct {
	env []string

	configPath string
	logLevel   string
	logFormat  string
	plotPDF    string

	// flags receives the flag values; only the ones set explicitly are
	// copied onto the gather.
	flags sem2segy.Gather
}

// NewRootCommand builds the sem2segy command. env is used by job file
// expressions (env.<NAME>).
func NewRootCommand(stdout, stderr io.Writer, env []string) *cobra.Command {
	o := &rootOptions{env: env, flags: sem2segy.DefaultGather()}

	cmd := &cobra.Command{
		Use:   "sem2segy",
		Short: "Create SEG-Y common shot gathers from SPECFEM2D ASCII seismograms",
		Long: `sem2segy reads the ASCII seismograms written by SPECFEM2D, one file per
station (OUTPUT_FILES/AA.S0001.BXZ.semv ...), resamples them to a common rate
and writes a SEG-Y common shot gather.

Station number and source-receiver offset are the trace headers assigned.
Samples are IBM floats in big endian byte order unless told otherwise.`,
		Example: `  sem2segy --stype v --scomp Z --stend 48 --offbeg -2.35 --offend 2.35 --offsp 0.1 --outname shot1.segy
  sem2segy --config shot1.hcl --plotpdf true`,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError("%v", err)
	})

	f := cmd.Flags()
	f.StringVar(&o.flags.Folder, "df", o.flags.Folder,
		"folder holding the ASCII seismograms, including the trailing '/'")
	f.StringVar(&o.flags.Type, "stype", "", "seismogram type: d displacement, v velocity, a acceleration, p pressure")
	f.StringVar(&o.flags.Component, "scomp", "", "seismogram component: X radial, Z vertical, Y transverse")
	f.IntVar(&o.flags.FirstStation, "stbeg", o.flags.FirstStation, "number of the first station")
	f.IntVar(&o.flags.LastStation, "stend", 0, "number of the last station")
	f.Float64Var(&o.flags.FirstOffset, "offbeg", 0, "source-receiver offset of the first station in km, negative to the west of the source")
	f.Float64Var(&o.flags.LastOffset, "offend", 0, "source-receiver offset of the last station in km")
	f.Float64Var(&o.flags.OffsetSpacing, "offsp", 0, "spacing between adjacent stations in km")
	f.Float64Var(&o.flags.ResampleRate, "resamp", o.flags.ResampleRate, "sampling rate of the output SEG-Y file in Hz")
	f.StringVar(&o.plotPDF, "plotpdf", "false", "also plot the gather to <outname>.pdf (true or false)")
	f.StringVar(&o.flags.OutName, "outname", "", "name of the output SEG-Y file, also used for the PDF")

	f.StringVar(&o.configPath, "config", "", "HCL job file; flags given explicitly override its values")
	f.StringVar(&o.flags.Method, "method", o.flags.Method,
		"resampling method ("+strings.Join(trace.DefaultRegistry().Names(), ", ")+")")
	f.StringVar(&o.flags.Encoding, "encoding", o.flags.Encoding, "sample encoding: ibm or ieee")
	f.StringVar(&o.flags.ByteOrder, "byteorder", o.flags.ByteOrder, "byte order: big or little")
	f.StringVar(&o.flags.Prefix, "prefix", o.flags.Prefix, "seismogram file name prefix before the station number")
	f.StringVar(&o.flags.AuditionDir, "audition-dir", "", "write every trace as a sound file into this folder")
	f.StringVar(&o.flags.AuditionFormat, "audition-format", o.flags.AuditionFormat, "sound file format: wav or aiff")
	f.IntVar(&o.flags.AuditionRate, "audition-rate", o.flags.AuditionRate, "playback rate of the sound files in Hz")
	f.StringVar(&o.logLevel, "log-level", "info", "logging level: debug, info, warn or error")
	f.StringVar(&o.logFormat, "log-format", "text", "log output format: text or json")

	cmd.AddCommand(newInspectCommand())

	return cmd
}

func (o *rootOptions) run(cmd *cobra.Command, stderr io.Writer) error {
	if err := checkLogFlags(o.logLevel, o.logFormat); err != nil {
		return err
	}
	logger := newLogger(strings.ToLower(o.logLevel), strings.ToLower(o.logFormat), stderr)
	ctx := ctxlog.WithLogger(cmd.Context(), logger)

	g, err := o.gather(ctx, cmd)
	if err != nil {
		return err
	}

	if err := g.Validate(); err != nil {
		return usageError("%v", err)
	}

	logger.Debug("Gather configured.", "stations", len(g.Stations()), "method", g.Method, "rate", g.ResampleRate)

	if _, err := sem2segy.Convert(ctx, g); err != nil {
		if errors.Is(err, context.Canceled) {
			return &ExitError{Code: ExitRuntime, Message: "interrupted"}
		}
		return &ExitError{Code: ExitRuntime, Message: err.Error()}
	}

	return nil
}

// gather merges the defaults, the job file and the explicit flags, in that
// order of precedence from lowest to highest.
func (o *rootOptions) gather(ctx context.Context, cmd *cobra.Command) (sem2segy.Gather, error) {
	g := sem2segy.DefaultGather()
	flags := cmd.Flags()

	if o.configPath != "" {
		file, err := config.Load(ctx, o.configPath, o.env)
		if err != nil {
			return g, usageError("%v", err)
		}
		file.Apply(&g)
	} else {
		var missing []string
		for _, name := range requiredWithoutConfig {
			if !flags.Changed(name) {
				missing = append(missing, `"`+name+`"`)
			}
		}
		if len(missing) > 0 {
			return g, usageError("required flag(s) %s not set", strings.Join(missing, ", "))
		}
	}

	overrides := map[string]func() error{
		"df":              func() error { g.Folder = o.flags.Folder; return nil },
		"stype":           func() error { g.Type = o.flags.Type; return nil },
		"scomp":           func() error { g.Component = o.flags.Component; return nil },
		"stbeg":           func() error { g.FirstStation = o.flags.FirstStation; return nil },
		"stend":           func() error { g.LastStation = o.flags.LastStation; return nil },
		"offbeg":          func() error { g.FirstOffset = o.flags.FirstOffset; return nil },
		"offend":          func() error { g.LastOffset = o.flags.LastOffset; return nil },
		"offsp":           func() error { g.OffsetSpacing = o.flags.OffsetSpacing; return nil },
		"resamp":          func() error { g.ResampleRate = o.flags.ResampleRate; return nil },
		"outname":         func() error { g.OutName = o.flags.OutName; return nil },
		"method":          func() error { g.Method = o.flags.Method; return nil },
		"encoding":        func() error { g.Encoding = o.flags.Encoding; return nil },
		"byteorder":       func() error { g.ByteOrder = o.flags.ByteOrder; return nil },
		"prefix":          func() error { g.Prefix = o.flags.Prefix; return nil },
		"audition-dir":    func() error { g.AuditionDir = o.flags.AuditionDir; return nil },
		"audition-format": func() error { g.AuditionFormat = o.flags.AuditionFormat; return nil },
		"audition-rate":   func() error { g.AuditionRate = o.flags.AuditionRate; return nil },
		"plotpdf": func() error {
			v, err := strconv.ParseBool(o.plotPDF)
			if err != nil {
				return usageError("invalid value %q for --plotpdf: use true or false", o.plotPDF)
			}
			g.PlotPDF = v
			return nil
		},
	}

	for name, apply := range overrides {
		if !flags.Changed(name) {
			continue
		}
		if err := apply(); err != nil {
			return g, err
		}
	}

	return g, nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

// Execute runs the command with args and returns an *ExitError for every
// failure.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, env []string) error {
	cmd := NewRootCommand(stdout, stderr, env)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	// cobra reports unknown subcommands and argument errors itself
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf("%v", err)}
}
