package parser

import (
	"github.com/gounits/uparse/token"
	"github.com/gounits/uparse/unitsys"
	"github.com/shopspring/decimal"
)

// parseShift implements:
//
//	shift := product
//	       | product SHIFT (REAL | INT)   -> offset(product, n)
//	       | product SHIFT timestamp       -> offset_by_time(product, t)
//
// "@" accepts either form; word-form SHIFT ("after"/"from"/"since"/"ref")
// only accepts timestamp — see grammar.go's parseAfterShift for why that
// split, not lexer context, is what makes "m since 2000" a syntax error.
func (p *Parser) parseShift() (unitsys.Unit, error) {
	u, err := p.parseProduct()
	if err != nil {
		return u, err
	}
	if p.tok.Type != token.SHIFT {
		return u, nil
	}
	return p.parseAfterShift(u)
}

func (p *Parser) parseAfterShift(u unitsys.Unit) (unitsys.Unit, error) {
	word := p.tok.Word
	p.advance()

	if !word {
		switch p.tok.Type {
		case token.INT:
			n := decimal.NewFromInt(p.tok.IntVal)
			p.advance()
			return unitsys.Offset(u, n)
		case token.REAL:
			n := decimal.NewFromFloat(p.tok.RealVal)
			p.advance()
			return unitsys.Offset(u, n)
		}
	}

	seconds, err := p.parseTimestamp()
	if err != nil {
		return unitsys.Unit{}, err
	}
	return unitsys.OffsetByTime(u, seconds)
}

// parseProduct implements:
//
//	product := power
//	         | product power              -> multiply
//	         | product MULTIPLY power      -> multiply
//	         | product DIVIDE power        -> divide
//
// The time-convertibility flag is refreshed after every reduction of the
// running product. The lookahead that ends the product (a SHIFT, say) is
// already lexed by then, and word-form SHIFTs lex the same way regardless
// of the flag; the digit run after a SHIFT is lexed only once
// parseAfterShift advances, so it sees an accurate flag.
func (p *Parser) parseProduct() (unitsys.Unit, error) {
	u, err := p.parsePower()
	if err != nil {
		return u, err
	}
	p.timeConvertible = p.sys.AreConvertibleToSeconds(u)

	for {
		switch {
		case p.tok.Type == token.MULTIPLY:
			p.advance()
			rhs, err := p.parsePower()
			if err != nil {
				return unitsys.Unit{}, err
			}
			u, err = unitsys.Multiply(u, rhs)
			if err != nil {
				return unitsys.Unit{}, syntaxf(p.tok.Pos, "%v", err)
			}
			p.timeConvertible = p.sys.AreConvertibleToSeconds(u)

		case p.tok.Type == token.DIVIDE:
			p.advance()
			rhs, err := p.parsePower()
			if err != nil {
				return unitsys.Unit{}, err
			}
			u, err = unitsys.Divide(u, rhs)
			if err != nil {
				return unitsys.Unit{}, syntaxf(p.tok.Pos, "%v", err)
			}
			p.timeConvertible = p.sys.AreConvertibleToSeconds(u)

		case startsPower(p.tok.Type):
			rhs, err := p.parsePower()
			if err != nil {
				return unitsys.Unit{}, err
			}
			u, err = unitsys.Multiply(u, rhs)
			if err != nil {
				return unitsys.Unit{}, syntaxf(p.tok.Pos, "%v", err)
			}
			p.timeConvertible = p.sys.AreConvertibleToSeconds(u)

		default:
			return u, nil
		}
	}
}

func startsPower(t token.Type) bool {
	switch t {
	case token.ID, token.INT, token.REAL, token.LPAREN, token.LOGREF:
		return true
	}
	return false
}

// parsePower implements:
//
//	power := basic
//	       | basic INT        -> raise(basic, n)
//	       | basic EXPONENT    -> raise(basic, n)
//
// "basic INT" (no space, e.g. "m2") is the only place a bare INT directly
// following a basic is consumed as an exponent rather than starting a new
// power; a space there makes the lexer emit a synthetic MULTIPLY instead
// (see lexer.applyJuxtaposition), which parseProduct handles as multiply.
func (p *Parser) parsePower() (unitsys.Unit, error) {
	base, err := p.parseBasic()
	if err != nil {
		return base, err
	}
	switch p.tok.Type {
	case token.INT:
		n := int(p.tok.IntVal)
		p.advance()
		return unitsys.Raise(base, n)
	case token.EXPONENT:
		n := int(p.tok.Exp)
		p.advance()
		return unitsys.Raise(base, n)
	}
	return base, nil
}

// parseBasic implements:
//
//	basic := ID                   -> resolve identifier (§4.3)
//	       | '(' shift ')'
//	       | LOGREF product ')'   -> log(base, product)
//	       | number                -> scale(n, dimensionless_one)
func (p *Parser) parseBasic() (unitsys.Unit, error) {
	switch p.tok.Type {
	case token.ID:
		lexeme := p.tok.Str
		p.advance()
		u, err := p.resolveIdentifier(lexeme)
		if err != nil {
			return unitsys.Unit{}, &UnknownIdentifierError{Lexeme: lexeme}
		}
		return u, nil

	case token.LPAREN:
		p.advance()
		u, err := p.parseShift()
		if err != nil {
			return unitsys.Unit{}, err
		}
		if p.tok.Type != token.RPAREN {
			return unitsys.Unit{}, syntaxf(p.tok.Pos, "expected ')'")
		}
		p.advance()
		return u, nil

	case token.LOGREF:
		base := p.tok.LogBase
		p.advance()
		ref, err := p.parseProduct()
		if err != nil {
			return unitsys.Unit{}, err
		}
		if p.tok.Type != token.RPAREN {
			return unitsys.Unit{}, syntaxf(p.tok.Pos, "expected ')' to close logarithmic reference")
		}
		p.advance()
		return unitsys.Log(decimal.NewFromFloat(base), ref), nil

	case token.INT:
		n := decimal.NewFromInt(p.tok.IntVal)
		p.advance()
		return unitsys.Scale(n, unitsys.DimensionlessOne()), nil

	case token.REAL:
		n := decimal.NewFromFloat(p.tok.RealVal)
		p.advance()
		return unitsys.Scale(n, unitsys.DimensionlessOne()), nil
	}

	if p.tok.Type == token.ILLEGAL {
		return unitsys.Unit{}, p.tok.Err()
	}
	return unitsys.Unit{}, syntaxf(p.tok.Pos, "unexpected %s in unit specification", p.tok.Type)
}
