package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bradford-hamilton/glitchbeat/internal/logging"
	"github.com/bradford-hamilton/glitchbeat/internal/melody"
	"github.com/bradford-hamilton/glitchbeat/internal/render"
	"github.com/bradford-hamilton/glitchbeat/internal/vm"
)

var wavOut string
var wavSeconds float64

// renderCmd parses its one positional argument as a melody formula and
// loops forever writing raw 8-bit PCM to stdout, grounded directly on
// original_source's glitter.py.
var renderCmd = &cobra.Command{
	Use:   "render [FORMULA]",
	Short: "render a melody formula as a raw 8-bit PCM stream on stdout",
	Args:  cobra.ExactArgs(1),
	Run:   runRender,
}

func init() {
	renderCmd.Flags().StringVar(&wavOut, "wav", "", "bounce FORMULA to a WAV file instead of streaming raw PCM to stdout")
	renderCmd.Flags().Float64Var(&wavSeconds, "seconds", 5, "length of the WAV bounce, in seconds (only used with --wav)")
}

func runRender(cmd *cobra.Command, args []string) {
	formula := args[0]

	m, err := melody.Parse(formula)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing melody: %v\n", err)
		os.Exit(1)
	}

	machine := vm.New(logging.Default)
	machine.LoadTokens(m.Tokens)

	if wavOut != "" {
		renderToWav(machine, wavOut)
		return
	}

	sink := render.NewStdoutSink(os.Stdout)
	r := render.New(machine, sink, logging.Default)
	r.Run(nil)
}

func renderToWav(machine *vm.VM, path string) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating %s: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()

	sink, errc := render.NewWavSink(f)
	r := render.New(machine, sink, logging.Default)

	numFrames := int(wavSeconds*render.SampleRate) / render.FrameSize
	if numFrames < 1 {
		numFrames = 1
	}
	r.RunN(numFrames)
	sink.Close()

	if err := <-errc; err != nil {
		fmt.Fprintf(os.Stderr, "error encoding %s: %v\n", path, err)
		os.Exit(1)
	}
}
