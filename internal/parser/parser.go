// Package parser implements the recursive-descent parser: tokens in,
// a typed ast.Program out. Parse errors are fatal diagnostics raised
// through a source.Reporter; the parser never returns an error value.
package parser

import (
	"strconv"

	"github.com/hexagn-lang/hexagn/internal/ast"
	"github.com/hexagn-lang/hexagn/internal/source"
	"github.com/hexagn-lang/hexagn/internal/token"
	"github.com/hexagn-lang/hexagn/internal/types"
)

// Parser owns a token cursor and the reporter it raises ParseErrors
// through.
type Parser struct {
	buf    *tokenBuffer
	report *source.Reporter
}

// New constructs a Parser over tokens, reporting through report.
func New(tokens []token.Token, report *source.Reporter) *Parser {
	return &Parser{buf: newTokenBuffer(tokens), report: report}
}

// Parse consumes the whole token stream and returns the top-level program.
func (p *Parser) Parse() *ast.Program {
	return p.parseStatementList(token.EOF)
}

func (p *Parser) fail(t token.Token, format string, args ...any) {
	p.report.Fatalf(source.ParseError, t.Line, t.Start, t.End, format, args...)
}

// consume advances past a token of kind, or raises a ParseError quoting
// what was expected.
func (p *Parser) consume(kind token.Kind, expected string) token.Token {
	cur := p.buf.current()
	if cur.Kind != kind {
		p.fail(cur, "expected %s, got %s", expected, cur.Kind)
	}
	return p.buf.advance()
}

func (p *Parser) parseStatementList(terminator token.Kind) *ast.Program {
	prog := &ast.Program{}
	for p.buf.current().Kind != terminator && p.buf.current().Kind != token.EOF {
		if p.buf.current().Kind == token.SEMICOLON {
			p.buf.advance()
			continue
		}
		prog.Statements = append(prog.Statements, p.parseStatement())
	}
	return prog
}

func (p *Parser) parseStatement() ast.Node {
	cur := p.buf.current()
	switch {
	case token.IsTypeKeyword(cur.Kind):
		return p.parseVarDeclOrFuncDef()
	case cur.Kind == token.IDENTIFIER:
		if p.buf.peek().Kind == token.ASSIGN {
			return p.parseVarAssign()
		}
		if p.buf.peek().Kind == token.OPEN_PAREN {
			return p.parseFuncCallStmt()
		}
		p.fail(p.buf.peek(), "expected '=' or '(' after identifier")
	case cur.Kind == token.IF:
		return p.parseIfStmt()
	case cur.Kind == token.WHILE:
		return p.parseWhileStmt()
	case cur.Kind == token.IMPORT:
		return p.parseImportStmt()
	case cur.Kind == token.URCL_BLOCK:
		return p.parseUrclStmt()
	case cur.Kind == token.RETURN:
		return p.parseReturnStmt()
	default:
		p.fail(cur, "unexpected token %s", cur.Kind)
	}
	panic("unreachable")
}

func (p *Parser) parseType() ast.TypeRef {
	cur := p.buf.current()
	if !token.IsTypeKeyword(cur.Kind) {
		p.fail(cur, "expected a type")
	}
	p.buf.advance()
	base := baseNameFor(cur.Kind)
	isPointer := false
	if p.buf.current().Kind == token.MULT {
		p.buf.advance()
		isPointer = true
	}
	return ast.TypeRef{Line: cur.Line, Type: types.Type{Base: base, IsPointer: isPointer}}
}

func baseNameFor(kind token.Kind) string {
	switch kind {
	case token.VOID:
		return types.Void
	case token.INT8:
		return types.Int8
	case token.INT16:
		return types.Int16
	case token.INT32:
		return types.Int32
	case token.INT64:
		return types.Int64
	case token.UINT8:
		return types.Uint8
	case token.UINT16:
		return types.Uint16
	case token.UINT32:
		return types.Uint32
	case token.UINT64:
		return types.Uint64
	case token.FLOAT32:
		return types.Float32
	case token.FLOAT64:
		return types.Float64
	case token.STRING:
		return types.Str
	case token.CHARACTER:
		return types.Char
	default:
		return ""
	}
}

// parseVarDeclOrFuncDef disambiguates `type IDENT (` (a function
// definition) from `type IDENT [= expr] ;` (a variable declaration) by
// looking two tokens ahead of the type.
func (p *Parser) parseVarDeclOrFuncDef() ast.Node {
	typeRef := p.parseType()
	nameTok := p.consume(token.IDENTIFIER, "an identifier")
	name := ast.Identifier{Line: nameTok.Line, Name: nameTok.Text}

	if p.buf.current().Kind == token.OPEN_PAREN {
		return p.parseFuncDef(typeRef, name)
	}

	if typeRef.Type.Base == types.Void {
		p.fail(nameTok, "void is not a valid variable type")
	}

	var init ast.Node
	if p.buf.current().Kind == token.ASSIGN {
		p.buf.advance()
		init = p.parseExpression()
	}
	p.consume(token.SEMICOLON, "';'")
	return &ast.VarDefine{Line: typeRef.Line, Type: typeRef, Name: name, Initializer: init}
}

func (p *Parser) parseFuncDef(ret ast.TypeRef, name ast.Identifier) ast.Node {
	p.consume(token.OPEN_PAREN, "'('")
	var params []ast.Param
	for p.buf.current().Kind != token.CLOSE_PAREN {
		pt := p.parseType()
		pnTok := p.consume(token.IDENTIFIER, "a parameter name")
		params = append(params, ast.Param{Type: pt, Name: ast.Identifier{Line: pnTok.Line, Name: pnTok.Text}})
		if p.buf.current().Kind == token.COMMA {
			p.buf.advance()
		}
	}
	p.consume(token.CLOSE_PAREN, "')'")
	p.consume(token.OPEN_BRACE, "'{'")
	body := p.parseStatementList(token.CLOSE_BRACE)
	p.consume(token.CLOSE_BRACE, "'}'")
	return &ast.Function{Line: ret.Line, ReturnType: ret, Name: name, Params: params, Body: body}
}

func (p *Parser) parseVarAssign() ast.Node {
	nameTok := p.consume(token.IDENTIFIER, "an identifier")
	p.consume(token.ASSIGN, "'='")
	value := p.parseExpression()
	p.consume(token.SEMICOLON, "';'")
	return &ast.VarAssign{
		Line:        nameTok.Line,
		Name:        ast.Identifier{Line: nameTok.Line, Name: nameTok.Text},
		Initializer: value,
	}
}

func (p *Parser) parseFuncCallStmt() ast.Node {
	call := p.parseFuncCallExpr()
	p.consume(token.SEMICOLON, "';'")
	return call
}

func (p *Parser) parseFuncCallExpr() *ast.FuncCall {
	nameTok := p.consume(token.IDENTIFIER, "an identifier")
	p.consume(token.OPEN_PAREN, "'('")
	var args []ast.Node
	if p.buf.current().Kind != token.CLOSE_PAREN {
		args = append(args, p.parseExpression())
		for p.buf.current().Kind == token.COMMA {
			p.buf.advance()
			args = append(args, p.parseExpression())
		}
	}
	p.consume(token.CLOSE_PAREN, "')'")
	return &ast.FuncCall{
		Line:   nameTok.Line,
		Callee: ast.Identifier{Line: nameTok.Line, Name: nameTok.Text},
		Args:   args,
	}
}

func (p *Parser) parseIfStmt() ast.Node {
	ifTok := p.consume(token.IF, "'if'")
	p.consume(token.OPEN_PAREN, "'('")
	cond := p.parseCondition()
	p.consume(token.CLOSE_PAREN, "')'")
	p.consume(token.OPEN_BRACE, "'{'")
	body := p.parseStatementList(token.CLOSE_BRACE)
	p.consume(token.CLOSE_BRACE, "'}'")

	node := &ast.If{Line: ifTok.Line, Condition: cond, Body: body}

	if p.buf.current().Kind == token.ELSE {
		p.buf.advance()
		if p.buf.current().Kind == token.IF {
			node.ElseBody = &ast.Program{Statements: []ast.Node{p.parseIfStmt()}}
		} else {
			p.consume(token.OPEN_BRACE, "'{'")
			node.ElseBody = p.parseStatementList(token.CLOSE_BRACE)
			p.consume(token.CLOSE_BRACE, "'}'")
		}
	}
	return node
}

func (p *Parser) parseWhileStmt() ast.Node {
	whileTok := p.consume(token.WHILE, "'while'")
	p.consume(token.OPEN_PAREN, "'('")
	cond := p.parseCondition()
	p.consume(token.CLOSE_PAREN, "')'")
	p.consume(token.OPEN_BRACE, "'{'")
	body := p.parseStatementList(token.CLOSE_BRACE)
	p.consume(token.CLOSE_BRACE, "'}'")
	return &ast.While{Line: whileTok.Line, Condition: cond, Body: body}
}

func (p *Parser) parseImportStmt() ast.Node {
	importTok := p.consume(token.IMPORT, "'import'")
	first := p.consume(token.IDENTIFIER, "a library path")
	path := first.Text
	for p.buf.current().Kind == token.DOT {
		p.buf.advance()
		seg := p.consume(token.IDENTIFIER, "a path segment")
		path += "." + seg.Text
	}
	var file string
	if p.buf.current().Kind == token.COLON {
		p.buf.advance()
		fileTok := p.consume(token.IDENTIFIER, "a file name")
		file = fileTok.Text
	}
	p.consume(token.SEMICOLON, "';'")
	return &ast.Import{Line: importTok.Line, Path: path, File: file}
}

func (p *Parser) parseUrclStmt() ast.Node {
	urclTok := p.consume(token.URCL_BLOCK, "'urcl'")
	strTok := p.consume(token.STR, "a string literal")
	p.consume(token.SEMICOLON, "';'")
	return &ast.UrclBlock{Line: urclTok.Line, Text: strTok.Text}
}

func (p *Parser) parseReturnStmt() ast.Node {
	retTok := p.consume(token.RETURN, "'return'")
	var value ast.Node
	if p.buf.current().Kind != token.SEMICOLON {
		value = p.parseExpression()
	}
	p.consume(token.SEMICOLON, "';'")
	return &ast.Return{Line: retTok.Line, Value: value}
}

// parseCondition parses an expression that may carry a single top-level
// comparison operator; comparisons are not composable with arithmetic and
// are only reachable from an if/while condition (§4.2, Open Question 1).
func (p *Parser) parseCondition() ast.Node {
	left := p.parseExpression()
	if op, ok := comparisonOperator(p.buf.current().Kind); ok {
		opTok := p.buf.advance()
		right := p.parseExpression()
		return &ast.BinOp{Line: opTok.Line, Lhs: left, Operator: op, Rhs: right}
	}
	return left
}

func comparisonOperator(kind token.Kind) (ast.Operator, bool) {
	switch kind {
	case token.EQ:
		return ast.EQ, true
	case token.NEQ:
		return ast.NEQ, true
	case token.GT:
		return ast.GT, true
	case token.GTE:
		return ast.GTE, true
	case token.LT:
		return ast.LT, true
	case token.LTE:
		return ast.LTE, true
	default:
		return 0, false
	}
}

// parseExpression := term (('+'|'-') term)*
func (p *Parser) parseExpression() ast.Node {
	left := p.parseTerm()
	for {
		cur := p.buf.current()
		var op ast.Operator
		switch cur.Kind {
		case token.PLUS:
			op = ast.ADD
		case token.MINUS:
			op = ast.SUB
		default:
			return left
		}
		p.buf.advance()
		right := p.parseTerm()
		left = &ast.BinOp{Line: cur.Line, Lhs: left, Operator: op, Rhs: right}
	}
}

// parseTerm := factor (('*'|'/'|'%') factor)*
func (p *Parser) parseTerm() ast.Node {
	left := p.parseFactor()
	for {
		cur := p.buf.current()
		var op ast.Operator
		switch cur.Kind {
		case token.MULT:
			op = ast.MULT
		case token.DIV:
			op = ast.DIV
		case token.MOD:
			op = ast.MOD
		default:
			return left
		}
		p.buf.advance()
		right := p.parseFactor()
		left = &ast.BinOp{Line: cur.Line, Lhs: left, Operator: op, Rhs: right}
	}
}

// parseFactor := NUM | STRING | CHAR | IDENT ('(' args? ')')? | '(' expression ')'
func (p *Parser) parseFactor() ast.Node {
	cur := p.buf.current()
	switch cur.Kind {
	case token.NUM:
		p.buf.advance()
		val, err := strconv.ParseUint(cur.Text, 10, 64)
		if err != nil {
			p.fail(cur, "invalid integer literal %q", cur.Text)
		}
		return &ast.Number{Line: cur.Line, Value: val}
	case token.STR:
		p.buf.advance()
		return &ast.StringLit{Line: cur.Line, Raw: cur.Text}
	case token.CHAR:
		p.buf.advance()
		return &ast.CharLit{Line: cur.Line, Value: cur.Text[0]}
	case token.IDENTIFIER:
		if p.buf.peek().Kind == token.OPEN_PAREN {
			return p.parseFuncCallExpr()
		}
		p.buf.advance()
		return &ast.Identifier{Line: cur.Line, Name: cur.Text}
	case token.OPEN_PAREN:
		p.buf.advance()
		expr := p.parseExpression()
		p.consume(token.CLOSE_PAREN, "')'")
		return expr
	default:
		p.fail(cur, "unexpected token %s in expression", cur.Kind)
		panic("unreachable")
	}
}
