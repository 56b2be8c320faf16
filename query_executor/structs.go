package executor

import (
	bplus "TreeDB/bplustree"
	"io"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type OpCode byte

const (
	// stack
	OP_PUSH_VAL OpCode = iota
	OP_PUSH_KEY

	// tree commands
	OP_INSERT
	OP_LOOKUP
	OP_DELETE

	// diagnostics
	OP_DUMP
	OP_CHECK
	OP_STATS

	OP_EXIT
	OP_END
)

func (op OpCode) String() string {
	switch op {
	case OP_PUSH_VAL:
		return "PUSH_VAL"
	case OP_PUSH_KEY:
		return "PUSH_KEY"
	case OP_INSERT:
		return "INSERT"
	case OP_LOOKUP:
		return "LOOKUP"
	case OP_DELETE:
		return "DELETE"
	case OP_DUMP:
		return "DUMP"
	case OP_CHECK:
		return "CHECK"
	case OP_STATS:
		return "STATS"
	case OP_EXIT:
		return "EXIT"
	case OP_END:
		return "END"
	default:
		return "UNKNOWN"
	}
}

type Instruction struct {
	Op    OpCode
	Value string
}

var (
	// ErrExit is returned by Execute when the program asks the session to end.
	ErrExit           = errors.New("exit requested")
	ErrStackUnderflow = errors.New("stack underflow")
)

type VM struct {
	tree   *bplus.CachedTree
	out    io.Writer
	logger *zap.Logger

	stack []string
}
