package parser

import (
	lex "TreeDB/query_parser/lexer"
	"strconv"

	"github.com/cockroachdb/errors"
)

var (
	ErrEmptyStatement  = errors.New("empty statement")
	ErrExpectedKey     = errors.New("expected integer key")
	ErrExpectedValue   = errors.New("expected value")
	ErrUnexpectedToken = errors.New("unexpected token")
)

type Parser struct {
	l         *lex.Lexer
	curToken  lex.Token
	peekToken lex.Token
}

func New(l *lex.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// Entry point
func (p *Parser) ParseStatement() (Statement, error) {
	var (
		stmt Statement
		err  error
	)
	switch p.curToken.Kind {
	case lex.END:
		return nil, ErrEmptyStatement
	case lex.INSERT:
		stmt, err = p.parseInsert()
	case lex.GET:
		var key int
		key, err = p.parseKeyArg()
		stmt = &LookupStmt{Key: key}
	case lex.DELETE:
		var key int
		key, err = p.parseKeyArg()
		stmt = &DeleteStmt{Key: key}
	case lex.DUMP:
		p.nextToken()
		stmt = &DumpStmt{}
	case lex.CHECK:
		p.nextToken()
		stmt = &CheckStmt{}
	case lex.STATS:
		p.nextToken()
		stmt = &StatsStmt{}
	case lex.EXIT:
		p.nextToken()
		stmt = &ExitStmt{}
	default:
		return nil, p.unexpected()
	}
	if err != nil {
		return nil, err
	}
	if p.curToken.Kind != lex.END {
		return nil, p.unexpected()
	}
	return stmt, nil
}

// --- INSERT <key> <value> ---
func (p *Parser) parseInsert() (*InsertStmt, error) {
	key, err := p.parseKeyArg()
	if err != nil {
		return nil, err
	}
	switch p.curToken.Kind {
	case lex.STRING, lex.IDENT, lex.INT:
		value := p.curToken.Value
		p.nextToken()
		return &InsertStmt{Key: key, Value: value}, nil
	case lex.END:
		return nil, errors.Wrapf(ErrExpectedValue, "INSERT %d", key)
	default:
		// keywords are fine as bare values: INSERT 1 dump
		if p.curToken.Kind != lex.INVALID {
			value := p.curToken.Value
			p.nextToken()
			return &InsertStmt{Key: key, Value: value}, nil
		}
		return nil, errors.Wrapf(ErrExpectedValue, "got %s (%q)", p.curToken.Kind, p.curToken.Value)
	}
}

// parseKeyArg consumes the command keyword and the integer key after it.
func (p *Parser) parseKeyArg() (int, error) {
	cmd := p.curToken.Kind
	p.nextToken()
	if p.curToken.Kind != lex.INT {
		return 0, errors.Wrapf(ErrExpectedKey, "%s got %s (%q)", cmd, p.curToken.Kind, p.curToken.Value)
	}
	key, err := strconv.Atoi(p.curToken.Value)
	if err != nil {
		return 0, errors.Wrapf(ErrExpectedKey, "%s key %q out of range", cmd, p.curToken.Value)
	}
	p.nextToken()
	return key, nil
}

func (p *Parser) unexpected() error {
	return errors.Wrapf(ErrUnexpectedToken, "%s (%q)", p.curToken.Kind, p.curToken.Value)
}
