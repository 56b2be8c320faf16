package codegen

import (
	executor "TreeDB/query_executor"
	"TreeDB/query_parser/parser"
	"strconv"

	"github.com/cockroachdb/errors"
)

// EmitBytecode lowers a parsed statement to VM instructions. Keys and values
// are pushed first, then the opcode that consumes them; every program ends
// with OP_END.
func EmitBytecode(stmt parser.Statement) ([]executor.Instruction, error) {

	instructions := []executor.Instruction{}

	switch s := stmt.(type) {

	case *parser.InsertStmt:
		instructions = append(instructions,
			executor.Instruction{Op: executor.OP_PUSH_KEY, Value: strconv.Itoa(s.Key)},
			executor.Instruction{Op: executor.OP_PUSH_VAL, Value: s.Value},
			executor.Instruction{Op: executor.OP_INSERT},
		)

	case *parser.LookupStmt:
		instructions = append(instructions,
			executor.Instruction{Op: executor.OP_PUSH_KEY, Value: strconv.Itoa(s.Key)},
			executor.Instruction{Op: executor.OP_LOOKUP},
		)

	case *parser.DeleteStmt:
		instructions = append(instructions,
			executor.Instruction{Op: executor.OP_PUSH_KEY, Value: strconv.Itoa(s.Key)},
			executor.Instruction{Op: executor.OP_DELETE},
		)

	case *parser.DumpStmt:
		instructions = append(instructions, executor.Instruction{Op: executor.OP_DUMP})

	case *parser.CheckStmt:
		instructions = append(instructions, executor.Instruction{Op: executor.OP_CHECK})

	case *parser.StatsStmt:
		instructions = append(instructions, executor.Instruction{Op: executor.OP_STATS})

	case *parser.ExitStmt:
		instructions = append(instructions, executor.Instruction{Op: executor.OP_EXIT})

	default:
		return nil, errors.Newf("unsupported statement type %T", stmt)
	}

	instructions = append(instructions, executor.Instruction{Op: executor.OP_END})
	return instructions, nil
}
