package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color   bool
	Context int8 // source lines of context around the fault, 0 disables the excerpt
}
