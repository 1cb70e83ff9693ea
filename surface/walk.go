package surface

import (
	"github.com/samber/lo"
)

// A Visitor's Visit method is invoked for each node encountered by
// Walk. If the result is not nil, Walk visits each child with the
// returned visitor, followed by a call of Visit(nil).
type Visitor interface {
	Visit(n Node) Visitor
}

// Walk traverses an AST in depth-first, source order.
func Walk(v Visitor, n Node) {
	if v = v.Visit(n); v == nil {
		return
	}

	walkExprs := func(xs []Expr) {
		lo.ForEach(xs, func(x Expr, _ int) { Walk(v, x) })
	}
	walkTys := func(ts []Ty) {
		lo.ForEach(ts, func(t Ty, _ int) { Walk(v, t) })
	}
	walkIdents := func(ids []Ident) {
		lo.ForEach(ids, func(id Ident, _ int) { Walk(v, id) })
	}
	walkParams := func(ps []RefineParam) {
		lo.ForEach(ps, func(p RefineParam, _ int) { Walk(v, p) })
	}

	switch n := n.(type) {
	case Ident, Lit:
		// leaves
	case Dot:
		Walk(v, n.Var)
		Walk(v, n.Field)
	case App:
		Walk(v, n.Fn)
		walkExprs(n.Args)
	case IfExpr:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		Walk(v, n.Else)
	case BinaryExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case BaseSort:
		Walk(v, n.Name)
	case FuncSort:
		walkIdents(n.Inputs)
		Walk(v, n.Output)
	case RefineParam:
		Walk(v, n.Name)
		Walk(v, n.Sort)
	case Path:
		Walk(v, n.Name)
		walkTys(n.Args)
	case IndexedTy:
		Walk(v, n.Path)
		Walk(v, n.Indices)
	case ExistsTy:
		Walk(v, n.Path)
		Walk(v, n.Bind)
		Walk(v, n.Pred)
	case ConstrTy:
		Walk(v, n.Ty)
		Walk(v, n.Pred)
	case RefTy:
		Walk(v, n.Elem)
	case TupleTy:
		walkTys(n.Elems)
	case ArrayTy:
		Walk(v, n.Elem)
		Walk(v, n.Len)
	case SliceTy:
		Walk(v, n.Elem)
	case Indices:
		lo.ForEach(n.Args, func(a RefineArg, _ int) { Walk(v, a) })
	case Bind:
		Walk(v, n.Name)
	case Abs:
		walkIdents(n.Params)
		Walk(v, n.Body)
	case ExprArg:
		Walk(v, n.X)
	case StrgRefArg:
		Walk(v, n.Name)
		Walk(v, n.Ty)
	case ConstrArg:
		Walk(v, n.Name)
		Walk(v, n.Path)
		Walk(v, n.Pred)
	case AliasArg:
		Walk(v, n.Name)
		Walk(v, n.Path)
		Walk(v, n.Indices)
	case TyArg:
		if n.Name != nil {
			Walk(v, *n.Name)
		}
		Walk(v, n.Ty)
	case Alias:
		Walk(v, n.Name)
		walkIdents(n.Params)
		Walk(v, n.Defn)
	case RefinedBy:
		walkParams(n.Params)
	case UifDef:
		Walk(v, n.Name)
		walkIdents(n.Inputs)
		Walk(v, n.Output)
	case Qualifier:
		Walk(v, n.Name)
		walkParams(n.Params)
		Walk(v, n.Body)
	case TyBind:
		Walk(v, n.Name)
		Walk(v, n.Ty)
	case FnSig:
		walkParams(n.Generics)
		lo.ForEach(n.Args, func(a Arg, _ int) { Walk(v, a) })
		if n.Ret != nil {
			Walk(v, n.Ret)
		}
		if n.Requires != nil {
			Walk(v, n.Requires)
		}
		lo.ForEach(n.Ensures, func(b TyBind, _ int) { Walk(v, b) })
	case VariantRet:
		Walk(v, n.Path)
		Walk(v, n.Indices)
	case VariantDef:
		walkTys(n.Fields)
		Walk(v, n.Ret)
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if f(n) {
		return f
	}
	return nil
}

// Inspect traverses an AST in depth-first order, calling f for each
// node. If f returns false, the node's children are skipped.
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}
