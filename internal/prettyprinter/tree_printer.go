package prettyprinter

import (
	"fmt"
	"strings"

	"github.com/cobalt-lang/cobaltfront/internal/ast"
)

// TreePrinter renders a parsed AST as an indented tree, implementing
// ast.Visitor so each node decides its own label and children.
//
// Contract: a Visit* method never writes a leading indent or trailing
// newline for its own output — the caller is already positioned. Whenever a
// node needs to move to a new line for a child, it writes "\n" followed by
// the current indent before that child's own Accept call. This keeps every
// node's output self-contained and free of stray blank lines, since the
// newline always precedes the line it starts rather than trailing the line
// before it.
type TreePrinter struct {
	buf    strings.Builder
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *TreePrinter) writeIndent() {
	p.write(strings.Repeat("  ", p.indent))
}

// childLine starts a new indented line carrying label, ready for a child's
// Accept call (or for label to be the whole line's content).
func (p *TreePrinter) childLine(label string) {
	p.write("\n")
	p.writeIndent()
	p.write(label)
}

// childLinef is childLine with Sprintf formatting.
func (p *TreePrinter) childLinef(format string, args ...interface{}) {
	p.childLine(fmt.Sprintf(format, args...))
}

// visitExpr accepts nil gracefully so optional fields (VarDef.Value,
// Parameter.Default, ...) don't need a guard at every call site.
func (p *TreePrinter) visitExpr(label string, e ast.Expression) {
	if e == nil {
		return
	}
	p.childLine(label)
	e.Accept(p)
}

func pathString(d ast.DottedName) string {
	prefix := ""
	if d.Global {
		prefix = "."
	}
	return prefix + strings.Join(d.IDs, ".")
}

func compoundPathString(c ast.CompoundDottedName) string {
	prefix := ""
	if c.Global {
		prefix = "."
	}
	parts := make([]string, 0, len(c.Segments))
	for _, seg := range c.Segments {
		switch s := seg.(type) {
		case ast.IdentSegment:
			parts = append(parts, s.Name)
		case ast.GlobSegment:
			parts = append(parts, s.Pattern)
		case ast.GroupSegment:
			names := make([]string, 0, len(s.Names))
			for _, n := range s.Names {
				names = append(names, compoundPathString(n))
			}
			parts = append(parts, "{"+strings.Join(names, ", ")+"}")
		}
	}
	return prefix + strings.Join(parts, ".")
}

func (p *TreePrinter) VisitIntLiteral(n *ast.IntLiteral) {
	p.write(fmt.Sprintf("IntLiteral(%s%s)", n.Value.String(), n.Suffix))
}

func (p *TreePrinter) VisitFloatLiteral(n *ast.FloatLiteral) {
	p.write(fmt.Sprintf("FloatLiteral(%g%s)", n.Value, n.Suffix))
}

func (p *TreePrinter) VisitCharLiteral(n *ast.CharLiteral) {
	p.write(fmt.Sprintf("CharLiteral(%q%s)", n.Value, n.Suffix))
}

func (p *TreePrinter) VisitStringLiteral(n *ast.StringLiteral) {
	p.write(fmt.Sprintf("StringLiteral(%q%s)", string(n.Value), n.Suffix))
}

func (p *TreePrinter) VisitNullLiteral(n *ast.NullLiteral) {
	p.write("NullLiteral")
}

func (p *TreePrinter) VisitVarGet(n *ast.VarGet) {
	p.write("VarGet(" + pathString(n.Path) + ")")
}

func (p *TreePrinter) VisitIntrinsic(n *ast.Intrinsic) {
	p.write(fmt.Sprintf("Intrinsic(%s, %d args)", n.Name, len(n.Args)))
}

func (p *TreePrinter) VisitPrefixExpr(n *ast.PrefixExpr) {
	p.write("Prefix(" + n.Op + ") ")
	n.Expr.Accept(p)
}

func (p *TreePrinter) VisitPostfixExpr(n *ast.PostfixExpr) {
	p.write("Postfix(" + n.Op + ") ")
	n.Expr.Accept(p)
}

func (p *TreePrinter) VisitBinOpExpr(n *ast.BinOpExpr) {
	p.write("BinOp(" + n.Op + ")")
	p.indent++
	p.visitExpr("Lhs: ", n.Lhs)
	p.visitExpr("Rhs: ", n.Rhs)
	p.indent--
}

func (p *TreePrinter) VisitCallExpr(n *ast.CallExpr) {
	p.write("Call")
	p.indent++
	p.visitExpr("Target: ", n.Target)
	if len(n.Args) > 0 {
		p.childLine("Args:")
		p.indent++
		for _, arg := range n.Args {
			p.visitExpr("", arg)
		}
		p.indent--
	}
	p.indent--
}

func (p *TreePrinter) VisitBlock(n *ast.Block) {
	p.write("Block")
	p.indent++
	for _, stmt := range n.Statements {
		p.childLine("")
		stmt.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitGroup(n *ast.Group) {
	p.write("Group")
	p.indent++
	for _, el := range n.Elements {
		p.visitExpr("", el)
	}
	p.indent--
}

func (p *TreePrinter) printAnnotations(ann []ast.Annotation) {
	if len(ann) == 0 {
		return
	}
	names := make([]string, 0, len(ann))
	for _, a := range ann {
		names = append(names, a.Name)
	}
	p.childLinef("Annotations: %s", strings.Join(names, ", "))
}

func (p *TreePrinter) VisitVarDef(n *ast.VarDef) {
	p.write("VarDef(" + n.Name + ")")
	p.indent++
	if n.Type != nil {
		p.childLinef("Type: %s", TypeString(n.Type))
	}
	p.visitExpr("Value: ", n.Value)
	p.printAnnotations(n.Annotations)
	p.indent--
}

func (p *TreePrinter) VisitMutDef(n *ast.MutDef) {
	p.write("MutDef(" + n.Name + ")")
	p.indent++
	if n.Type != nil {
		p.childLinef("Type: %s", TypeString(n.Type))
	}
	p.visitExpr("Value: ", n.Value)
	p.printAnnotations(n.Annotations)
	p.indent--
}

func (p *TreePrinter) VisitConstDef(n *ast.ConstDef) {
	p.write("ConstDef(" + n.Name + ")")
	p.indent++
	if n.Type != nil {
		p.childLinef("Type: %s", TypeString(n.Type))
	}
	p.visitExpr("Value: ", n.Value)
	p.printAnnotations(n.Annotations)
	p.indent--
}

func (p *TreePrinter) VisitFnDef(n *ast.FnDef) {
	p.write("FnDef(" + n.Name + ")")
	p.indent++
	p.printAnnotations(n.Annotations)
	if len(n.Params) > 0 {
		p.childLine("Params:")
		p.indent++
		for _, param := range n.Params {
			kind := ""
			switch param.Kind {
			case ast.ParamMutable:
				kind = "mut "
			case ast.ParamConstant:
				kind = "const "
			}
			typ := ""
			if param.Type != nil {
				typ = ": " + TypeString(param.Type)
			}
			p.childLinef("%s%s%s", kind, param.Name, typ)
			if param.Default != nil {
				p.indent++
				p.visitExpr("Default: ", param.Default)
				p.indent--
			}
		}
		p.indent--
	}
	if n.ReturnType != nil {
		p.childLinef("Return: %s", TypeString(n.ReturnType))
	}
	if n.Body != nil {
		p.childLine("Body: ")
		n.Body.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitModuleDecl(n *ast.ModuleDecl) {
	p.write("Module(" + pathString(n.Name) + ")")
	if len(n.Body) > 0 {
		p.indent++
		for _, stmt := range n.Body {
			p.childLine("")
			stmt.Accept(p)
		}
		p.indent--
	}
}

func (p *TreePrinter) VisitImportStmt(n *ast.ImportStmt) {
	p.write("Import(" + compoundPathString(n.Path) + ")")
}

func (p *TreePrinter) VisitNullStmt(n *ast.NullStmt) {
	p.write("NullStmt")
}

func (p *TreePrinter) VisitExprStmt(n *ast.ExprStmt) {
	p.write("ExprStmt: ")
	n.Expr.Accept(p)
}

func (p *TreePrinter) VisitTopLevel(n *ast.TopLevel) {
	p.write("TopLevel")
	p.indent++
	for _, item := range n.Items {
		p.childLine("")
		item.Accept(p)
	}
	p.indent--
}

// TypeString renders a parsed type as source-like text. ast.Type is not
// part of the Visitor (only statements and expressions are), so this is a
// plain recursive type switch rather than double dispatch.
func TypeString(t ast.Type) string {
	switch ty := t.(type) {
	case *ast.ErrorType:
		return "<error type>"
	case *ast.ISizeType:
		return "isize"
	case *ast.USizeType:
		return "usize"
	case *ast.IntType:
		return fmt.Sprintf("i%d", ty.Width)
	case *ast.UIntType:
		return fmt.Sprintf("u%d", ty.Width)
	case *ast.F16Type:
		return "f16"
	case *ast.F32Type:
		return "f32"
	case *ast.F64Type:
		return "f64"
	case *ast.F128Type:
		return "f128"
	case *ast.BoolType:
		return "bool"
	case *ast.NullType:
		return "null"
	case *ast.OtherType:
		return pathString(ty.Name)
	case *ast.PointerType:
		if ty.Mut {
			return "*mut " + TypeString(ty.Inner)
		}
		return "*const " + TypeString(ty.Inner)
	case *ast.ReferenceType:
		if ty.Mut {
			return "&mut " + TypeString(ty.Inner)
		}
		return "&const " + TypeString(ty.Inner)
	case *ast.BorrowType:
		return "^" + TypeString(ty.Inner)
	case *ast.SizedArrayType:
		return TypeString(ty.Inner) + "[...]"
	case *ast.UnsizedArrayType:
		return TypeString(ty.Inner) + "[]"
	default:
		return fmt.Sprintf("<%T>", t)
	}
}
