// Command jsua tokenizes one or more JSON-ish byte streams and prints the
// events observed, one per line, as (STATE, EVENT, DATA).
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tecywiz121/jsua"
)

// chunkSize bounds how much of a stream is fed to the parser at once; it
// has no effect on the events produced, only on how finely they may be
// split across Feed calls.
const chunkSize = 4096

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "jsua [FILE...]",
		Short:         "Tokenize a JSON-ish byte stream, resynchronizing at arbitrary offsets",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args)
		},
	}
}

func run(out io.Writer, files []string) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	ok := true
	for _, name := range files {
		if err := tokenizeFile(out, name); err != nil {
			fmt.Fprintf(os.Stderr, "Parse Error: %v\n", err)
			ok = false
		}
	}
	if !ok {
		return fmt.Errorf("one or more files failed to parse")
	}
	return nil
}

func tokenizeFile(out io.Writer, name string) error {
	r, err := openInput(name)
	if err != nil {
		return err
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	w := bufio.NewWriter(out)
	defer w.Flush()

	p := jsua.New(func(e jsua.Event) {
		printEvent(w, e)
	})

	buf := make([]byte, chunkSize)
	br := bufio.NewReader(r)
	for {
		n, readErr := br.Read(buf)
		if n > 0 {
			if err := p.Feed(buf[:n]); err != nil {
				return err
			}
		}
		if readErr == io.EOF {
			return p.Feed(nil)
		}
		if readErr != nil {
			return readErr
		}
	}
}

func openInput(name string) (io.Reader, error) {
	if name == "-" {
		return os.Stdin, nil
	}
	return os.Open(name)
}

func printEvent(w io.Writer, e jsua.Event) {
	data := "absent"
	if e.Data != nil {
		data = strconv.Quote(string(e.Data))
	}
	fmt.Fprintf(w, "(%s, %s, %s)\n", e.Container, e.Kind, data)
}
