package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bradford-hamilton/glitchbeat/internal/editor"
	"github.com/bradford-hamilton/glitchbeat/internal/logging"
	"github.com/bradford-hamilton/glitchbeat/internal/melody"
	"github.com/bradford-hamilton/glitchbeat/internal/render"
	"github.com/bradford-hamilton/glitchbeat/internal/vm"
)

// editCmd opens a melody file, runs an interactive terminal edit session
// (the command-line stand-in for the tile editor spec.md places out of
// scope), plays it live through the speaker, and writes the canonical
// form back to the file on quit.
var editCmd = &cobra.Command{
	Use:   "edit [filename]",
	Short: "interactively edit and audition a melody file",
	Args:  cobra.ExactArgs(1),
	Run:   runEdit,
}

func runEdit(cmd *cobra.Command, args []string) {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, editor.FormatUnreadable(path, err))
		os.Exit(1)
	}

	m, err := melody.Parse(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing melody: %v\n", err)
		os.Exit(1)
	}
	m.Expand()

	machine := vm.New(logging.Default)
	sink, err := render.NewBeepSink()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error initializing audio: %v\n", err)
		os.Exit(1)
	}
	r := render.New(machine, sink, logging.Default)

	ed := editor.New(m, machine, r, logging.Default)

	go r.Run(ed.Shutdown)
	ed.Run(os.Stdin)

	if err := os.WriteFile(path, []byte(m.Serialize()+"\n"), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, editor.SaveErr(path, err))
		os.Exit(1)
	}
}
