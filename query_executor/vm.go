package executor

/*
VM - runs the instructions emitted by the code generator
    ↓
    └─→ CachedTree - lookup cache + B+ tree, all in memory
*/

import (
	bplus "TreeDB/bplustree"
	"io"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

func NewVM(tree *bplus.CachedTree, out io.Writer, logger *zap.Logger) *VM {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VM{
		tree:   tree,
		out:    out,
		logger: logger,
		stack:  make([]string, 0, 2),
	}
}

func (vm *VM) Execute(instructions []Instruction) error {
	vm.stack = vm.stack[:0]

	for _, instr := range instructions {
		vm.logger.Debug("exec", zap.Stringer("op", instr.Op), zap.String("value", instr.Value))

		switch instr.Op {
		case OP_PUSH_VAL, OP_PUSH_KEY:
			vm.stack = append(vm.stack, instr.Value)

		case OP_INSERT:
			if err := vm.ExecuteInsert(); err != nil {
				return err
			}

		case OP_LOOKUP:
			if err := vm.ExecuteLookup(); err != nil {
				return err
			}

		case OP_DELETE:
			if err := vm.ExecuteDelete(); err != nil {
				return err
			}

		case OP_DUMP:
			if err := vm.ExecuteDump(); err != nil {
				return err
			}

		case OP_CHECK:
			if err := vm.ExecuteCheck(); err != nil {
				return err
			}

		case OP_STATS:
			vm.ExecuteStats()

		case OP_EXIT:
			return ErrExit

		case OP_END:
			return nil

		default:
			return errors.Newf("unknown opcode: %d", instr.Op)
		}
	}
	return nil
}

// pop removes the top of the stack.
func (vm *VM) pop() (string, error) {
	if len(vm.stack) == 0 {
		return "", ErrStackUnderflow
	}
	top := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return top, nil
}
