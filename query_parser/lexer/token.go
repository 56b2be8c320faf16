package lex

type TokenKind int

const (
	// identifier
	IDENT TokenKind = iota

	// keywords
	INSERT
	GET
	DELETE
	DUMP
	CHECK
	STATS
	EXIT

	// literals
	INT
	STRING

	END
	INVALID
)

type Token struct {
	Kind  TokenKind
	Value string
}

func (tk TokenKind) String() string {
	switch tk {
	case IDENT:
		return "IDENT"
	case INSERT:
		return "INSERT"
	case GET:
		return "GET"
	case DELETE:
		return "DELETE"
	case DUMP:
		return "DUMP"
	case CHECK:
		return "CHECK"
	case STATS:
		return "STATS"
	case EXIT:
		return "EXIT"
	case INT:
		return "INT"
	case STRING:
		return "STRING"
	case END:
		return "END"
	case INVALID:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}
