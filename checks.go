//go:build !nochecks

package plume

// Contract checks are compiled in by default so tests exercise them; build
// with -tags nochecks to remove them from the hot path.
const contractChecks = true

func assert(condition bool, msg string) {
	if contractChecks && !condition {
		panic("plume: " + msg)
	}
}
