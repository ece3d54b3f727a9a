package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/leengari/datagrid/internal/engine"
	"github.com/leengari/datagrid/internal/executor"
)

// Start reads commands from in until EOF or exit, writing results to out
func Start(eng *engine.Engine, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "Welcome to datagrid")
	fmt.Fprintln(out, "Type 'exit' or '\\q' to quit.")

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		if line == "exit" || line == "\\q" {
			break
		}

		if line == "ls" || line == "list" {
			names, err := eng.ListDatasets()
			if err != nil {
				fmt.Fprintf(out, "Error listing datasets: %v\n", err)
			} else {
				fmt.Fprintln(out, "Available datasets:")
				for _, name := range names {
					fmt.Fprintf(out, "  - %s\n", name)
				}
			}
			continue
		}

		result, err := eng.Execute(line)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		PrintResult(out, result)
	}
}

func PrintResult(w io.Writer, res *executor.Result) {
	if res.Error != "" {
		fmt.Fprintf(w, "Error: %s\n", res.Error)
		return
	}

	if res.Output != "" {
		fmt.Fprint(w, res.Output)
	}

	if res.Message != "" {
		fmt.Fprintln(w, res.Message)
	}
}
