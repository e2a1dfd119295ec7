// Package ast defines the tagged-variant abstract syntax tree produced by
// internal/parser. Every node owns its children outright and carries the
// source Location of the first token that produced it.
package ast

import (
	"math/big"

	"github.com/cobalt-lang/cobaltfront/internal/token"
)

// Node is implemented by every AST node, statement, expression and type.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
}

// Statement is a node that may appear inside a Block or at top level.
type Statement interface {
	Node
	Accept(v Visitor)
	statementNode()
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	Accept(v Visitor)
	expressionNode()
}

// Type is a parsed type expression (the ParsedType sum type).
type Type interface {
	Node
	typeNode()
}

// Visitor is implemented by consumers that walk the tree exhaustively.
// Downstream phases (type-check, codegen) are visitors over this same
// variant; the parser itself never calls Accept.
type Visitor interface {
	VisitIntLiteral(*IntLiteral)
	VisitFloatLiteral(*FloatLiteral)
	VisitCharLiteral(*CharLiteral)
	VisitStringLiteral(*StringLiteral)
	VisitNullLiteral(*NullLiteral)
	VisitVarGet(*VarGet)
	VisitIntrinsic(*Intrinsic)
	VisitPrefixExpr(*PrefixExpr)
	VisitPostfixExpr(*PostfixExpr)
	VisitBinOpExpr(*BinOpExpr)
	VisitCallExpr(*CallExpr)
	VisitBlock(*Block)
	VisitGroup(*Group)
	VisitVarDef(*VarDef)
	VisitMutDef(*MutDef)
	VisitConstDef(*ConstDef)
	VisitFnDef(*FnDef)
	VisitModuleDecl(*ModuleDecl)
	VisitImportStmt(*ImportStmt)
	VisitNullStmt(*NullStmt)
	VisitExprStmt(*ExprStmt)
	VisitTopLevel(*TopLevel)
}

// Annotation is a Macro(name, args) token decorating the next definition.
// Opaque to the parser beyond its name and raw argument tokens.
type Annotation struct {
	Token token.Token
	Name  string
	Args  []token.MacroArg
}

// ---- Dotted names -----------------------------------------------------

// DottedName is the plain path variant: an ordered sequence of segments,
// optionally anchored at the program root (Global).
type DottedName struct {
	Token  token.Token
	IDs    []string
	Global bool
}

func (d DottedName) Loc() token.Location { return d.Token.Loc }

// CompoundSegment is one element of a CompoundDottedName.
type CompoundSegment interface {
	isCompoundSegment()
}

// IdentSegment is a plain identifier segment.
type IdentSegment struct {
	Name string
}

func (IdentSegment) isCompoundSegment() {}

// GlobSegment is a `*`-bearing segment, possibly fused onto a preceding
// identifier or glob (e.g. "foo*bar*").
type GlobSegment struct {
	Pattern string
}

func (GlobSegment) isCompoundSegment() {}

// GroupSegment is a reserved variant for brace-expanded imports
// (e.g. `foo.{bar, baz}`). No parser path constructs it today; the shape is
// preserved for forward compatibility per the grammar's data model.
type GroupSegment struct {
	Names []CompoundDottedName
}

func (GroupSegment) isCompoundSegment() {}

// CompoundDottedName is the import-path variant: segments may be glob stars
// or (reserved) brace groups in addition to plain identifiers.
type CompoundDottedName struct {
	Token    token.Token
	Segments []CompoundSegment
	Global   bool
}

func (c CompoundDottedName) Loc() token.Location { return c.Token.Loc }

// ---- Types --------------------------------------------------------------

type TypeBase struct{ Token token.Token }

func (b TypeBase) TokenLiteral() string  { return b.Token.String() }
func (b TypeBase) GetToken() token.Token { return b.Token }
func (TypeBase) typeNode()               {}

// ErrorType substitutes for a type the parser could not make sense of.
type ErrorType struct{ TypeBase }

// ISizeType is the pointer-sized signed integer type.
type ISizeType struct{ TypeBase }

// USizeType is the pointer-sized unsigned integer type.
type USizeType struct{ TypeBase }

// IntType is a signed integer of the given bit width (iN).
type IntType struct {
	TypeBase
	Width int
}

// UIntType is an unsigned integer of the given bit width (uN).
type UIntType struct {
	TypeBase
	Width int
}

// F16Type, F32Type, F64Type, F128Type are the IEEE float widths.
type F16Type struct{ TypeBase }
type F32Type struct{ TypeBase }
type F64Type struct{ TypeBase }
type F128Type struct{ TypeBase }

// BoolType is the boolean type.
type BoolType struct{ TypeBase }

// NullType is the type of the null literal.
type NullType struct{ TypeBase }

// OtherType is a user-named type referenced by a dotted path.
type OtherType struct {
	TypeBase
	Name DottedName
}

// PointerType is `*const T` / `*mut T`.
type PointerType struct {
	TypeBase
	Inner Type
	Mut   bool
}

// ReferenceType is `&const T` / `&mut T`.
type ReferenceType struct {
	TypeBase
	Inner Type
	Mut   bool
}

// BorrowType is `^T`; borrows ignore any const/mut qualifier token but still
// consume it.
type BorrowType struct {
	TypeBase
	Inner Type
}

// SizedArrayType is `T[expr]`.
type SizedArrayType struct {
	TypeBase
	Inner Type
	Size  Expression
}

// UnsizedArrayType is `T[]`.
type UnsizedArrayType struct {
	TypeBase
	Inner Type
}

// ---- Expressions ----------------------------------------------------------

type ExprBase struct{ Token token.Token }

func (b ExprBase) TokenLiteral() string  { return b.Token.String() }
func (b ExprBase) GetToken() token.Token { return b.Token }
func (ExprBase) expressionNode()         {}

// IntLiteral is an integer literal with an optional identifier suffix
// (e.g. `10u8`).
type IntLiteral struct {
	ExprBase
	Value  *big.Int
	Suffix string
}

func (n *IntLiteral) Accept(v Visitor) { v.VisitIntLiteral(n) }

// FloatLiteral is a floating literal with an optional identifier suffix.
type FloatLiteral struct {
	ExprBase
	Value  float64
	Suffix string
}

func (n *FloatLiteral) Accept(v Visitor) { v.VisitFloatLiteral(n) }

// CharLiteral is a single-character literal with an optional suffix.
type CharLiteral struct {
	ExprBase
	Value  rune
	Suffix string
}

func (n *CharLiteral) Accept(v Visitor) { v.VisitCharLiteral(n) }

// StringLiteral is a byte-string literal with an optional suffix.
type StringLiteral struct {
	ExprBase
	Value  []byte
	Suffix string
}

func (n *StringLiteral) Accept(v Visitor) { v.VisitStringLiteral(n) }

// NullLiteral is the `null` atom.
type NullLiteral struct{ ExprBase }

func (n *NullLiteral) Accept(v Visitor) { v.VisitNullLiteral(n) }

// VarGet resolves an identifier path to a value.
type VarGet struct {
	ExprBase
	Path DottedName
}

func (n *VarGet) Accept(v Visitor) { v.VisitVarGet(n) }

// Intrinsic is a Macro(name, args) atom; args are carried opaquely.
type Intrinsic struct {
	ExprBase
	Name string
	Args []token.MacroArg
}

func (n *Intrinsic) Accept(v Visitor) { v.VisitIntrinsic(n) }

// PrefixExpr is a whitelisted leading unary operator applied to an
// expression.
type PrefixExpr struct {
	ExprBase
	Op   string
	Expr Expression
}

func (n *PrefixExpr) Accept(v Visitor) { v.VisitPrefixExpr(n) }

// PostfixExpr is a whitelisted trailing unary operator applied to an
// expression.
type PostfixExpr struct {
	ExprBase
	Op   string
	Expr Expression
}

func (n *PostfixExpr) Accept(v Visitor) { v.VisitPostfixExpr(n) }

// BinOpExpr is a binary operator application.
type BinOpExpr struct {
	ExprBase
	Op  string
	Lhs Expression
	Rhs Expression
}

func (n *BinOpExpr) Accept(v Visitor) { v.VisitBinOpExpr(n) }

// CallExpr is a parenthesized argument list applied to a target expression.
type CallExpr struct {
	ExprBase
	Target Expression
	Args   []Expression
}

func (n *CallExpr) Accept(v Visitor) { v.VisitCallExpr(n) }

// Block is a `{ ... }` statement sequence: a function body or a block
// expression. Both call sites share this same node and the same parser
// entry point, per the design notes.
type Block struct {
	ExprBase
	Statements []Statement
}

func (n *Block) Accept(v Visitor) { v.VisitBlock(n) }

// Group is a parenthesized, comma-separated list of expressions.
type Group struct {
	ExprBase
	Elements []Expression
}

func (n *Group) Accept(v Visitor) { v.VisitGroup(n) }

// ---- Statements -----------------------------------------------------------

type StmtBase struct{ Token token.Token }

func (b StmtBase) TokenLiteral() string  { return b.Token.String() }
func (b StmtBase) GetToken() token.Token { return b.Token }
func (StmtBase) statementNode()          {}

// ParamKind distinguishes how a function parameter binds its argument.
type ParamKind int

const (
	ParamNormal ParamKind = iota
	ParamMutable
	ParamConstant
)

// Parameter is one entry in a FnDef's parameter list.
type Parameter struct {
	Name    string
	Kind    ParamKind
	Type    Type
	Default Expression // nil when the parameter has no default
}

// VarDef is an immutable `let` binding.
type VarDef struct {
	StmtBase
	Name        string
	Value       Expression // nil when only a type was given
	Type        Type       // nil when only a value was given
	Annotations []Annotation
	IsGlobal    bool
}

func (n *VarDef) Accept(v Visitor) { v.VisitVarDef(n) }

// MutDef is a mutable `mut` binding; same shape as VarDef.
type MutDef struct {
	StmtBase
	Name        string
	Value       Expression
	Type        Type
	Annotations []Annotation
	IsGlobal    bool
}

func (n *MutDef) Accept(v Visitor) { v.VisitMutDef(n) }

// ConstDef is a compile-time `const` binding.
type ConstDef struct {
	StmtBase
	Name        string
	Value       Expression
	Type        Type
	Annotations []Annotation
}

func (n *ConstDef) Accept(v Visitor) { v.VisitConstDef(n) }

// FnDef is a function definition or declaration (Body is nil for a bare
// `fn f(): T;` declaration).
type FnDef struct {
	StmtBase
	Name        string
	ReturnType  Type
	Params      []Parameter
	Body        *Block
	Annotations []Annotation
}

func (n *FnDef) Accept(v Visitor) { v.VisitFnDef(n) }

// ModuleDecl is a `module name { ... }` or `module name;` declaration.
type ModuleDecl struct {
	StmtBase
	Name DottedName
	Body []Statement
}

func (n *ModuleDecl) Accept(v Visitor) { v.VisitModuleDecl(n) }

// ImportStmt is an `import path;` statement.
type ImportStmt struct {
	StmtBase
	Path CompoundDottedName
}

func (n *ImportStmt) Accept(v Visitor) { v.VisitImportStmt(n) }

// NullStmt is a no-op statement: produced by the reserved `cr` keyword and
// substituted wherever a statement could not be parsed at all.
type NullStmt struct{ StmtBase }

func (n *NullStmt) Accept(v Visitor) { v.VisitNullStmt(n) }

// ExprStmt wraps a bare expression used in statement position (e.g. a call
// kept for its side effect).
type ExprStmt struct {
	StmtBase
	Expr Expression
}

func (n *ExprStmt) Accept(v Visitor) { v.VisitExprStmt(n) }

// TopLevel is the root of a parsed translation unit.
type TopLevel struct {
	StmtBase
	Items []Statement
}

func (n *TopLevel) Accept(v Visitor) { v.VisitTopLevel(n) }

// NewTopLevel builds an empty TopLevel rooted at the given token (used by
// the driver for empty input, where there is no real leading token).
func NewTopLevel(tok token.Token, items []Statement) *TopLevel {
	return &TopLevel{StmtBase: StmtBase{Token: tok}, Items: items}
}
