package surface_test

import (
	"reflect"
	"testing"

	"github.com/akhsm/refinery/surface"
)

func identNames(n surface.Node) []string {
	var names []string
	surface.Inspect(n, func(n surface.Node) bool {
		if id, ok := n.(surface.Ident); ok {
			names = append(names, id.Name)
		}
		return true
	})
	return names
}

func TestWalkSourceOrder(t *testing.T) {
	sig, err := surface.ParseFnSig(lex(t, "fn(x: i32{v : v > y}) -> bool[p.nnf] ensures z: i32"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"x", "i32", "v", "v", "y", "bool", "p", "nnf", "z", "i32"}
	if got := identNames(sig); !reflect.DeepEqual(got, want) {
		t.Errorf("idents = %v, want %v", got, want)
	}
}

func TestWalkVariant(t *testing.T) {
	vd, err := surface.ParseVariant(lex(t, "(Box<Pred[@p]>) -> Pred[p.is_atom]"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Box", "Pred", "p", "Pred", "p", "is_atom"}
	if got := identNames(vd); !reflect.DeepEqual(got, want) {
		t.Errorf("idents = %v, want %v", got, want)
	}
}

func TestInspectPrune(t *testing.T) {
	x := parseExpr(t, "foo(a, b) + c")
	var names []string
	surface.Inspect(x, func(n surface.Node) bool {
		switch n := n.(type) {
		case surface.App:
			return false // skip the application's children
		case surface.Ident:
			names = append(names, n.Name)
		}
		return true
	})
	if want := []string{"c"}; !reflect.DeepEqual(names, want) {
		t.Errorf("idents = %v, want %v", names, want)
	}
}
