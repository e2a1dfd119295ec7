package parser

import (
	"math/big"

	"github.com/cobalt-lang/cobaltfront/internal/token"
)

func sp(ch byte) token.Token {
	return token.Token{Kind: token.SPECIAL, Ch: ch}
}

func opTok(text string) token.Token {
	return token.Token{Kind: token.OPERATOR, Text: text}
}

func kwTok(text string) token.Token {
	return token.Token{Kind: token.KEYWORD, Text: text}
}

func identTok(text string) token.Token {
	return token.Token{Kind: token.IDENTIFIER, Text: text}
}

func intTok(v int64) token.Token {
	return token.Token{Kind: token.INT, IntVal: big.NewInt(v)}
}

func strTok(s string) token.Token {
	return token.Token{Kind: token.STR, Bytes: []byte(s)}
}

func toks(ts ...token.Token) []token.Token { return ts }
