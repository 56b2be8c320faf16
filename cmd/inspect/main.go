// Replay a command script against a fresh tree and dump the result.
// Usage: go run ./cmd/inspect [-capacity N] <script>
// Example: go run ./cmd/inspect -capacity 2 testdata/borrow.tdb
package main

import (
	bplus "TreeDB/bplustree"
	"TreeDB/cli"
	"TreeDB/config"
	executor "TreeDB/query_executor"
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

var (
	capacity = flag.Int("capacity", bplus.DefaultCapacity, "Max keys per node (even, >= 2).")
	quiet    = flag.Bool("q", false, "Suppress per-command output, print only the final dump.")
)

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-capacity N] <script>\n", os.Args[0])
		os.Exit(1)
	}
	if err := inspect(flag.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func inspect(path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cfg := config.Default()
	cfg.Capacity = *capacity
	cfg.LogLevel = "warn"
	if err := cfg.Validate(); err != nil {
		return err
	}
	tree, err := cfg.OpenTree(nil)
	if err != nil {
		return err
	}
	defer tree.Close()

	cmdOut := out
	if *quiet {
		cmdOut = io.Discard
	}
	vm := executor.NewVM(tree, cmdOut, nil)
	shell := cli.NewCli(bufio.NewScanner(f), vm, cmdOut, nil)
	shell.SetPrompt("")

	if err := shell.Start(); err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	fmt.Fprintln(out)
	return tree.View(func(t *bplus.BPlusTree) error {
		if err := t.CheckInvariants(); err != nil {
			return err
		}
		return t.Dump(out)
	})
}
