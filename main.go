package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newRootCmd() *cobra.Command {
	var (
		prompt  string
		silent  bool
		logFile string
	)
	cmd := &cobra.Command{
		Use:   progName + " <file>",
		Short: "A minimal line-oriented text editor",
		Long: `ned loads a file into memory and edits it with ed-style commands read
from standard input. Addresses are line numbers, $ for the last line or a
comma separated range; no address selects the whole buffer.`,
		Version: progVersion,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			log.SetOutput(io.Discard)
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
				if err != nil {
					return err
				}
				defer func() {
					log.SetOutput(io.Discard)
					f.Close()
				}()
				log.SetOutput(f)
			}
			ed := NewEditor(
				WithStdin(cmd.InOrStdin()),
				WithStdout(cmd.OutOrStdout()),
				WithStderr(cmd.ErrOrStderr()),
				WithColor(isTerminal(cmd.OutOrStdout())),
				WithPrompt(prompt),
				WithSilent(silent),
				WithFile(args[0]),
			)
			ed.Run()
			return nil
		},
	}
	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "prompt printed before each command")
	cmd.Flags().BoolVarP(&silent, "silent", "s", false, "suppress the banner and diagnostics of w")
	cmd.Flags().StringVar(&logFile, "log", "", "append debug logs to this file")
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
