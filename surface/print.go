package surface

import (
	"github.com/sanity-io/litter"
)

// dumper hides unexported fields, which keeps spans out of dumps: two
// dumps are equal iff the trees are structurally identical.
var dumper = litter.Options{
	HidePrivateFields: true,
	StripPackageNames: true,
}

// Dump renders a node for debugging and test failure output.
func Dump(n Node) string {
	return dumper.Sdump(n)
}
