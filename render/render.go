package render

import (
	"fmt"
	"io"

	"github.com/arcknot/gridhfk/gridstate"
	"github.com/arcknot/gridhfk/nesw"
)

// Grid writes an ASCII overlay of g with state marked by asterisks, one
// row per grid height from top (N) to bottom (1), mirroring the original
// CLI's row-major layout.
func Grid(w io.Writer, g gridstate.Grid, state gridstate.State) {
	n := g.ArcIndex
	for height := n; height > 0; height-- {
		for col := 0; col < n; col++ {
			switch {
			case int(g.X[col]) == height:
				fmt.Fprint(w, "  X  ")
			case int(g.O[col]) == height:
				fmt.Fprint(w, "  O  ")
			default:
				fmt.Fprint(w, "  -  ")
			}
		}
		fmt.Fprintln(w)
		for col := 0; col < n; col++ {
			if int(state[col]) == height {
				fmt.Fprint(w, "*    ")
			} else {
				fmt.Fprint(w, "     ")
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// Invariants writes the 2A=M=SL+1 line for g's distinguished generator.
func Invariants(w io.Writer, g gridstate.Grid) {
	fmt.Fprintf(w, "2A=M=SL+1=%d\n", nesw.SelfLinkingPlusOne(g))
}

// StateShort writes state as "{v1,v2,...,vN}", the compact form used when
// listing many states rather than rendering the full grid.
func StateShort(w io.Writer, state gridstate.State) {
	fmt.Fprint(w, "{")
	for i, v := range state {
		if i > 0 {
			fmt.Fprint(w, ",")
		}
		fmt.Fprintf(w, "%d", v)
	}
	fmt.Fprint(w, "}")
}
