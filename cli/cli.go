package cli

import (
	executor "TreeDB/query_executor"
	codegen "TreeDB/query_parser/code-generator"
	lex "TreeDB/query_parser/lexer"
	"TreeDB/query_parser/parser"
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type Cli struct {
	scanner *bufio.Scanner
	vm      *executor.VM
	out     io.Writer
	logger  *zap.Logger
	prompt  string
}

func NewCli(s *bufio.Scanner, vm *executor.VM, out io.Writer, logger *zap.Logger) *Cli {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cli{scanner: s, vm: vm, out: out, logger: logger, prompt: "db> "}
}

// SetPrompt changes the prompt; an empty prompt suits scripted input.
func (c *Cli) SetPrompt(p string) {
	c.prompt = p
}

func (c *Cli) PrintHelp() {
	fmt.Fprint(c.out, `
TreeDB CLI

Available Commands:
  INSERT <key> <val>  Insert or overwrite a key-value pair (alias SET, PUT)
  GET <key>           Look up the value stored for key (alias LOOKUP)
  DELETE <key>        Remove key and print its value (alias DEL)
  DUMP                Print the tree level by level (alias PRINT)
  CHECK               Verify the tree invariants
  STATS               Show size, height and cache counters
  EXIT                Terminate this session (alias QUIT)
`+"\n")
}

// Start runs the read-eval-print loop until EXIT or end of input.
func (c *Cli) Start() error {
	c.printPrompt()
	for c.scanner.Scan() {
		err := c.RunLine(c.scanner.Text())
		if errors.Is(err, executor.ErrExit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
		c.printPrompt()
	}
	return c.scanner.Err()
}

// RunLine executes a single command. Blank lines and lines starting with '#'
// are ignored. executor.ErrExit is returned for EXIT.
func (c *Cli) RunLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	stmt, err := parser.New(lex.New(line)).ParseStatement()
	if err != nil {
		return err
	}
	instructions, err := codegen.EmitBytecode(stmt)
	if err != nil {
		return err
	}
	c.logger.Debug("compiled", zap.String("line", line), zap.Int("instructions", len(instructions)))
	return c.vm.Execute(instructions)
}

func (c *Cli) printPrompt() {
	if c.prompt != "" {
		fmt.Fprint(c.out, c.prompt)
	}
}
