package config

// Operators Configuration
//
// This is the SINGLE SOURCE OF TRUTH for the unary whitelists and the
// binary-operator precedence table the parser consults. The precedence
// table's original shape (a flat slice interspersed with associativity
// sentinels, consumed via a split_inclusive-style iterator) is reimplemented
// here as an ordinary ordered slice of precedence groups, weakest-binding
// first, per the design notes: no iterator-adaptor trickery is needed.

// Associativity selects the scan direction a precedence group uses when
// looking for its split point.
type Associativity int

const (
	// Ltr (left-associative) splits at the rightmost top-level match, so the
	// left operand holds the earlier operators.
	Ltr Associativity = iota
	// Rtl (right-associative) splits at the leftmost top-level match, so the
	// right operand holds the later operators.
	Rtl
)

// PrecedenceGroup is a maximal run of operators sharing one associativity.
type PrecedenceGroup struct {
	Ops   []string
	Assoc Associativity
}

// COBALTBinOps is the fixed precedence table, weakest-binding group first.
var COBALTBinOps = []PrecedenceGroup{
	{Ops: []string{"|>"}, Assoc: Ltr},
	{Ops: []string{"||"}, Assoc: Ltr},
	{Ops: []string{"&&"}, Assoc: Ltr},
	{Ops: []string{"|"}, Assoc: Ltr},
	{Ops: []string{"^"}, Assoc: Ltr},
	{Ops: []string{"&"}, Assoc: Ltr},
	{Ops: []string{"==", "!="}, Assoc: Ltr},
	{Ops: []string{"<", ">", "<=", ">="}, Assoc: Ltr},
	{Ops: []string{"<<", ">>"}, Assoc: Ltr},
	{Ops: []string{"+", "-"}, Assoc: Ltr},
	{Ops: []string{"*", "/", "%"}, Assoc: Ltr},
	{Ops: []string{"**"}, Assoc: Rtl},
}

// COBALTPreOps whitelists valid leading unary operators.
var COBALTPreOps = map[string]bool{
	"-": true,
	"!": true,
	"~": true,
	"&": true,
	"*": true,
	"^": true,
}

// COBALTPostOps whitelists valid trailing unary operators.
var COBALTPostOps = map[string]bool{
	"?": true,
}

// TypeSuffixOps lists the reference/pointer/borrow suffix operators
// recognized by the type grammar (§4.C), including the doubled forms.
var TypeSuffixOps = map[string]bool{
	"&":  true,
	"*":  true,
	"^":  true,
	"&&": true,
	"**": true,
	"^^": true,
}
