package parser

import (
	"github.com/gounits/uparse/unitsys"
	"github.com/shopspring/decimal"
)

// resolveIdentifier implements spec.md §4.3's prefix-peeling loop: try the
// full remaining lexeme as a name, then as a symbol, then peel a
// name-prefix (repeatable) or — at most once total — a symbol-prefix, and
// retry. remaining strictly shrinks on every peel, so the loop always
// terminates.
func (p *Parser) resolveIdentifier(lexeme string) (unitsys.Unit, error) {
	remaining := lexeme
	scaleAcc := decimal.NewFromInt(1)
	usedSymbolPrefix := false

	for {
		if u, ok := p.sys.GetUnitByName(remaining); ok {
			return unitsys.Scale(scaleAcc, u), nil
		}
		if u, ok := p.sys.GetUnitBySymbol(remaining); ok {
			return unitsys.Scale(scaleAcc, u), nil
		}
		if prefix, scale, ok := p.sys.MatchNamePrefix(remaining); ok {
			scaleAcc = scaleAcc.Mul(decimal.NewFromFloat(scale))
			remaining = remaining[len(prefix):]
			continue
		}
		if !usedSymbolPrefix {
			if prefix, scale, ok := p.sys.MatchSymbolPrefix(remaining); ok {
				usedSymbolPrefix = true
				scaleAcc = scaleAcc.Mul(decimal.NewFromFloat(scale))
				remaining = remaining[len(prefix):]
				continue
			}
		}
		return unitsys.Unit{}, &UnknownIdentifierError{Lexeme: lexeme}
	}
}
