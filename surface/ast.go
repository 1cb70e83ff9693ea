// Package surface parses the refinement annotation language into its
// abstract syntax tree. The entry points in parser.go each cover one
// annotation form (signature, alias, qualifier, ...); the nodes defined
// here are what the downstream checker consumes.
package surface

import (
	"github.com/akhsm/refinery/token"
)

// Node is implemented by every AST node. Spans are fixed at construction:
// a node's span starts at its first consumed token and ends immediately
// after its last one.
type Node interface {
	Span() token.Span
}

// Expr is a refinement predicate or arithmetic expression.
type Expr interface {
	Node
	exprNode()
}

// Ty is a refinement-annotated type.
type Ty interface {
	Node
	tyNode()
}

// Arg is a single function parameter in a signature.
type Arg interface {
	Node
	argNode()
}

// RefineArg is one entry of an index list.
type RefineArg interface {
	Node
	refineArgNode()
}

// Sort is the type of a refinement value: a named base sort or a
// first-order function sort.
type Sort interface {
	Node
	sortNode()
}

var (
	_ Expr = Ident{}
	_ Expr = Lit{}
	_ Expr = Dot{}
	_ Expr = App{}
	_ Expr = IfExpr{}
	_ Expr = BinaryExpr{}

	_ Ty = Path{}
	_ Ty = IndexedTy{}
	_ Ty = ExistsTy{}
	_ Ty = ConstrTy{}
	_ Ty = RefTy{}
	_ Ty = TupleTy{}
	_ Ty = ArrayTy{}
	_ Ty = SliceTy{}

	_ Arg = StrgRefArg{}
	_ Arg = ConstrArg{}
	_ Arg = AliasArg{}
	_ Arg = TyArg{}

	_ RefineArg = Bind{}
	_ RefineArg = Abs{}
	_ RefineArg = ExprArg{}

	_ Sort = BaseSort{}
	_ Sort = FuncSort{}
)

// Ident is a name occurrence. As an expression it is a variable
// reference.
type Ident struct {
	Name string
	span token.Span
}

func (id Ident) Span() token.Span { return id.span }
func (Ident) exprNode()           {}

type LitKind int

const (
	LitInt LitKind = iota
	LitBool
)

func (k LitKind) String() string {
	if k == LitBool {
		return "bool"
	}
	return "int"
}

// Lit is a numeric or boolean literal. Symbol is the original spelling;
// Int and Bool hold the parsed value for the respective kind.
type Lit struct {
	Kind   LitKind
	Symbol string
	Int    int64
	Bool   bool
	span   token.Span
}

func (l Lit) Span() token.Span { return l.span }
func (Lit) exprNode()          {}

// Dot is a single-level field projection. The grammar only projects out
// of a bare variable, never out of another projection.
type Dot struct {
	Var   Ident
	Field Ident
	span  token.Span
}

func (d Dot) Span() token.Span { return d.span }
func (Dot) exprNode()          {}

// App applies a named function to an argument list.
type App struct {
	Fn   Ident
	Args []Expr
	span token.Span
}

func (a App) Span() token.Span { return a.span }
func (App) exprNode()          {}

// IfExpr is `if cond { then } else { els }`.
type IfExpr struct {
	Cond Expr
	Then Expr
	Else Expr
	span token.Span
}

func (e IfExpr) Span() token.Span { return e.span }
func (IfExpr) exprNode()          {}

type BinOp int

const (
	Iff BinOp = iota
	Imp
	OrOp
	AndOp
	Eq
	Gt
	Ge
	Lt
	Le
	Add
	Sub
	Mul
	Mod
)

var binOpNames = [...]string{
	Iff:   "<=>",
	Imp:   "=>",
	OrOp:  "||",
	AndOp: "&&",
	Eq:    "==",
	Gt:    ">",
	Ge:    ">=",
	Lt:    "<",
	Le:    "<=",
	Add:   "+",
	Sub:   "-",
	Mul:   "*",
	Mod:   "%",
}

func (op BinOp) String() string { return binOpNames[op] }

type BinaryExpr struct {
	Op    BinOp
	Left  Expr
	Right Expr
	span  token.Span
}

func (e BinaryExpr) Span() token.Span { return e.span }
func (BinaryExpr) exprNode()          {}

// BaseSort is a named sort such as int or bool.
type BaseSort struct {
	Name Ident
}

func (s BaseSort) Span() token.Span { return s.Name.Span() }
func (BaseSort) sortNode()          {}

// FuncSort is `(in1, ..., inN) -> out`. Inputs and output are named
// sorts; function sorts do not nest.
type FuncSort struct {
	Inputs []Ident
	Output Ident
	span   token.Span
}

func (s FuncSort) Span() token.Span { return s.span }
func (FuncSort) sortNode()          {}

// RefineParam binds a refinement name to its sort, `name : sort`.
type RefineParam struct {
	Name Ident
	Sort Sort
	span token.Span
}

func (p RefineParam) Span() token.Span { return p.span }

// Path is a type name with optional generic arguments. A bare path is
// itself a type.
type Path struct {
	Name Ident
	Args []Ty
	span token.Span
}

func (p Path) Span() token.Span { return p.span }
func (Path) tyNode()            {}

// IndexedTy applies refinement indices to a path, `T[i1, ..., iN]`.
type IndexedTy struct {
	Path    Path
	Indices Indices
	span    token.Span
}

func (t IndexedTy) Span() token.Span { return t.span }
func (IndexedTy) tyNode()            {}

// ExistsTy is `T{bind : pred}`: some value bind of T satisfying pred.
type ExistsTy struct {
	Path Path
	Bind Ident
	Pred Expr
	span token.Span
}

func (t ExistsTy) Span() token.Span { return t.span }
func (ExistsTy) tyNode()            {}

// ConstrTy is `{ty : pred}`: ty constrained by pred without introducing
// a binder.
type ConstrTy struct {
	Ty   Ty
	Pred Expr
	span token.Span
}

func (t ConstrTy) Span() token.Span { return t.span }
func (ConstrTy) tyNode()            {}

// RefTy is a shared or mutable reference.
type RefTy struct {
	Mut  bool
	Elem Ty
	span token.Span
}

func (t RefTy) Span() token.Span { return t.span }
func (RefTy) tyNode()            {}

type TupleTy struct {
	Elems []Ty
	span  token.Span
}

func (t TupleTy) Span() token.Span { return t.span }
func (TupleTy) tyNode()            {}

// ArrayTy is `[T; _]`. Len is the placeholder identifier; any other
// length spelling is rejected at parse time.
type ArrayTy struct {
	Elem Ty
	Len  Ident
	span token.Span
}

func (t ArrayTy) Span() token.Span { return t.span }
func (ArrayTy) tyNode()            {}

type SliceTy struct {
	Elem Ty
	span token.Span
}

func (t SliceTy) Span() token.Span { return t.span }
func (SliceTy) tyNode()            {}

// Indices is the bracketed refinement argument list of an indexed type.
// When a variant return omits it, the list is empty and the span is
// zero-width at the point it would have appeared.
type Indices struct {
	Args []RefineArg
	span token.Span
}

func (ix Indices) Span() token.Span { return ix.span }

// Bind introduces a fresh refinement binder, `@name`.
type Bind struct {
	Name Ident
	span token.Span
}

func (b Bind) Span() token.Span { return b.span }
func (Bind) refineArgNode()     {}

// Abs is an anonymous abstraction `|params| body`, used where an index
// expects a function-sorted value.
type Abs struct {
	Params []Ident
	Body   Expr
	span   token.Span
}

func (a Abs) Span() token.Span { return a.span }
func (Abs) refineArgNode()     {}

// ExprArg is a plain refinement expression used as an index.
type ExprArg struct {
	X Expr
}

func (a ExprArg) Span() token.Span { return a.X.Span() }
func (ExprArg) refineArgNode()     {}

// StrgRefArg is a strong (mutable, updatable) reference parameter,
// `x : &strg T`.
type StrgRefArg struct {
	Name Ident
	Ty   Ty
	span token.Span
}

func (a StrgRefArg) Span() token.Span { return a.span }
func (StrgRefArg) argNode()           {}

// ConstrArg is `x : T{pred}`; the parameter name itself is the binder
// the predicate refers to.
type ConstrArg struct {
	Name Ident
	Path Path
	Pred Expr
	span token.Span
}

func (a ConstrArg) Span() token.Span { return a.span }
func (ConstrArg) argNode()           {}

// AliasArg is `x : T[i1, ..., iN]`, binding x to an indexed type.
type AliasArg struct {
	Name    Ident
	Path    Path
	Indices Indices
	span    token.Span
}

func (a AliasArg) Span() token.Span { return a.span }
func (AliasArg) argNode()           {}

// TyArg is a plain, optionally named parameter type.
type TyArg struct {
	Name *Ident
	Ty   Ty
	span token.Span
}

func (a TyArg) Span() token.Span { return a.span }
func (TyArg) argNode()           {}

// Alias is `type Name(params) = Ty`. A missing parameter list is an
// empty one.
type Alias struct {
	Name   Ident
	Params []Ident
	Defn   Ty
	span   token.Span
}

func (a Alias) Span() token.Span { return a.span }

// RefinedBy is the sort signature attached to a refined type
// declaration: a bare list of refinement parameters.
type RefinedBy struct {
	Params []RefineParam
	span   token.Span
}

func (r RefinedBy) Span() token.Span { return r.span }

// UifDef declares an uninterpreted function by its sort signature,
// `fn name(in1, ..., inN) -> out`.
type UifDef struct {
	Name   Ident
	Inputs []Ident
	Output Ident
	span   token.Span
}

func (u UifDef) Span() token.Span { return u.span }

// Qualifier is a named predicate template, `name(params) { body }`.
type Qualifier struct {
	Name   Ident
	Params []RefineParam
	Body   Expr
	span   token.Span
}

func (q Qualifier) Span() token.Span { return q.span }

// TyBind is an `ident : Ty` pair in an ensures clause.
type TyBind struct {
	Name Ident
	Ty   Ty
	span token.Span
}

func (b TyBind) Span() token.Span { return b.span }

// FnSig is a refined function signature. Generics, Ret, Requires and
// Ensures are all independently optional; absent ones are empty or nil.
type FnSig struct {
	Generics []RefineParam
	Args     []Arg
	Ret      Ty
	Requires Expr
	Ensures  []TyBind
	span     token.Span
}

func (s FnSig) Span() token.Span { return s.span }

// VariantRet is the refined return shape of a constructor.
type VariantRet struct {
	Path    Path
	Indices Indices
	span    token.Span
}

func (r VariantRet) Span() token.Span { return r.span }

// VariantDef is one constructor of a refined algebraic data type:
// optional field types followed by the refined return shape.
type VariantDef struct {
	Fields []Ty
	Ret    VariantRet
	span   token.Span
}

func (v VariantDef) Span() token.Span { return v.span }
