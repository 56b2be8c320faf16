package parser

// Statement is a generic interface for all statements
type Statement interface{}

// INSERT <key> <value>
type InsertStmt struct {
	Key   int
	Value string
}

// GET <key>
type LookupStmt struct {
	Key int
}

// DELETE <key>
type DeleteStmt struct {
	Key int
}

type DumpStmt struct{}

type CheckStmt struct{}

type StatsStmt struct{}

type ExitStmt struct{}
