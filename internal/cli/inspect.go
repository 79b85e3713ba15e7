// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ik5/sem2segy/formats/aiff"
	"github.com/ik5/sem2segy/formats/ascii"
	"github.com/ik5/sem2segy/formats/segy"
	"github.com/ik5/sem2segy/formats/wav"
	"github.com/ik5/sem2segy/trace"
)

func newInspectCommand() *cobra.Command {
	var showText bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print a summary of a SEG-Y, sound or ASCII seismogram file",
		Long: `inspect prints the binary header and one line per trace of a SEG-Y file
(.segy, .sgy), or the sampling of a single trace for sound files (.wav, .aif,
.aiff) and ASCII seismograms (any other name).`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError("%s expects exactly one file, got %d", cmd.CommandPath(), len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := inspect(cmd.OutOrStdout(), args[0], showText); err != nil {
				return &ExitError{Code: ExitRuntime, Message: err.Error()}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showText, "text", false, "also print the SEG-Y textual header")

	return cmd
}

func inspect(w io.Writer, path string, showText bool) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".segy", ".sgy":
		f, err := segy.ReadFile(path)
		if err != nil {
			return err
		}
		return printSegy(w, f, showText)
	case ".wav":
		return inspectTrace(w, path, wav.Decoder{})
	case ".aif", ".aiff":
		return inspectTrace(w, path, aiff.Decoder{})
	default:
		return inspectTrace(w, path, ascii.Decoder{})
	}
}

func inspectTrace(w io.Writer, path string, dec trace.Decoder) error {
	fh, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer fh.Close()

	tr, err := dec.Decode(fh)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "File:\t%s\n", path)
	fmt.Fprintf(tw, "Samples:\t%d\n", tr.Len())
	fmt.Fprintf(tw, "Sample rate:\t%.4f Hz\n", tr.SampleRate)
	fmt.Fprintf(tw, "Duration:\t%v\n", tr.Duration())
	fmt.Fprintf(tw, "Peak amplitude:\t%.6g\n", tr.MaxAbs())
	return tw.Flush()
}

func printSegy(w io.Writer, f *segy.File, showText bool) error {
	if showText {
		for _, line := range f.Textual {
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}

	b := f.Binary
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Byte order:\t%v\n", f.ByteOrder)
	fmt.Fprintf(tw, "Format:\t%s (%d)\n", b.Format, b.Format)
	fmt.Fprintf(tw, "Sample interval:\t%d us\n", b.SampleInterval)
	fmt.Fprintf(tw, "Samples per trace:\t%d\n", b.SamplesPerTrace)
	fmt.Fprintf(tw, "Traces:\t%d\n", len(f.Traces))
	fmt.Fprintf(tw, "Revision:\t%d.%d\n", b.Revision>>8, b.Revision&0xFF)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "SEQ\tSTATION\tOFFSET\tSAMPLES\tPEAK\t")
	for _, tr := range f.Traces {
		var peak float32
		for _, v := range tr.Data {
			peak = max(peak, v, -v)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%.4g\t\n",
			tr.Header.SequenceInLine, tr.Header.TraceNumber, tr.Header.Offset, tr.Header.NumSamples, peak)
	}
	return tw.Flush()
}
