package surface_test

import (
	"errors"
	"testing"

	"github.com/akhsm/refinery/surface"
	"github.com/kr/pretty"
)

// Types have no standalone entry point; parse them through a signature
// argument position, which accepts every general type form.
func parseTy(t *testing.T, src string) surface.Ty {
	t.Helper()
	sig, err := surface.ParseFnSig(lex(t, "fn() -> "+src))
	if err != nil {
		t.Fatalf("parse type %q: %v", src, err)
	}
	return sig.Ret
}

func wantTy(t *testing.T, src string, want surface.Ty) {
	t.Helper()
	got := parseTy(t, src)
	if surface.Dump(got) != surface.Dump(want) {
		t.Errorf("type %q produced the wrong tree", src)
		pretty.Ldiff(t, want, got)
	}
}

func wantTyErr(t *testing.T, src string) {
	t.Helper()
	if _, err := surface.ParseFnSig(lex(t, "fn() -> "+src)); err == nil {
		t.Errorf("type %q parsed, want error", src)
	}
}

func path(name string, args ...surface.Ty) surface.Path {
	return surface.Path{Name: v(name), Args: args}
}

func idx(args ...surface.RefineArg) surface.Indices {
	return surface.Indices{Args: args}
}

func exprArg(x surface.Expr) surface.RefineArg { return surface.ExprArg{X: x} }

func TestPathTypes(t *testing.T) {
	wantTy(t, "i32", path("i32"))
	wantTy(t, "Vec<i32>", path("Vec", path("i32")))
	wantTy(t, "Result<T, E>", path("Result", path("T"), path("E")))
	wantTy(t, "Box<Pred[@p]>",
		path("Box", surface.IndexedTy{Path: path("Pred"), Indices: idx(surface.Bind{Name: v("p")})}))
}

func TestIndexedTypes(t *testing.T) {
	wantTy(t, "i32[n + 1]",
		surface.IndexedTy{Path: path("i32"), Indices: idx(exprArg(bin(surface.Add, v("n"), num("1", 1))))})
	wantTy(t, "Pred[true, p.nnf]",
		surface.IndexedTy{
			Path: path("Pred"),
			Indices: idx(
				exprArg(surface.Lit{Kind: surface.LitBool, Symbol: "true", Bool: true}),
				exprArg(surface.Dot{Var: v("p"), Field: v("nnf")}),
			),
		})
	wantTy(t, "Map[|k| k > 0]",
		surface.IndexedTy{
			Path:    path("Map"),
			Indices: idx(surface.Abs{Params: []surface.Ident{v("k")}, Body: bin(surface.Gt, v("k"), num("0", 0))}),
		})
}

func TestExistsAndConstrTypes(t *testing.T) {
	wantTy(t, "i32{v : v > 0}",
		surface.ExistsTy{Path: path("i32"), Bind: v("v"), Pred: bin(surface.Gt, v("v"), num("0", 0))})
	wantTy(t, "{i32[n] : n > 0}",
		surface.ConstrTy{
			Ty:   surface.IndexedTy{Path: path("i32"), Indices: idx(exprArg(v("n")))},
			Pred: bin(surface.Gt, v("n"), num("0", 0)),
		})
}

func TestReferenceTypes(t *testing.T) {
	wantTy(t, "&i32", surface.RefTy{Elem: path("i32")})
	wantTy(t, "&mut i32", surface.RefTy{Mut: true, Elem: path("i32")})
	wantTy(t, "&mut [i32]", surface.RefTy{Mut: true, Elem: surface.SliceTy{Elem: path("i32")}})
}

func TestTupleTypes(t *testing.T) {
	wantTy(t, "()", surface.TupleTy{})
	wantTy(t, "(i32, bool)", surface.TupleTy{Elems: []surface.Ty{path("i32"), path("bool")}})
	wantTy(t, "(i32, bool,)", surface.TupleTy{Elems: []surface.Ty{path("i32"), path("bool")}})
	// A one-element list degenerates to the element itself.
	wantTy(t, "(i32)", path("i32"))
	wantTy(t, "(i32,)", path("i32"))
}

func TestArrayAndSliceTypes(t *testing.T) {
	wantTy(t, "[i32]", surface.SliceTy{Elem: path("i32")})
	wantTy(t, "[i32; _]", surface.ArrayTy{Elem: path("i32"), Len: v("_")})
	wantTy(t, "[i32{v : v > 0}; _]",
		surface.ArrayTy{
			Elem: surface.ExistsTy{Path: path("i32"), Bind: v("v"), Pred: bin(surface.Gt, v("v"), num("0", 0))},
			Len:  v("_"),
		})
}

func TestArrayLenValidation(t *testing.T) {
	// fn() -> [i32; n] : the offending identifier starts at offset 14.
	_, err := surface.ParseFnSig(lex(t, "fn() -> [i32; n]"))
	var lerr *surface.ArrayLenError
	if !errors.As(err, &lerr) {
		t.Fatalf("got %T (%v), want *ArrayLenError", err, err)
	}
	if lerr.Name != "n" {
		t.Errorf("Name = %q, want \"n\"", lerr.Name)
	}
	if lerr.Span.Start.Offset != 14 || lerr.Span.End.Offset != 15 {
		t.Errorf("Span = %v, want offsets 14-15", lerr.Span)
	}
}

func TestTyErrors(t *testing.T) {
	wantTyErr(t, "[i32; 3]")
	wantTyErr(t, "[i32;]")
	wantTyErr(t, "&strg i32") // strg references are argument-position only
	wantTyErr(t, "{i32}")
	wantTyErr(t, "i32{v > 0}") // a brace after a path must introduce a binder
	wantTyErr(t, "Vec<")
}
