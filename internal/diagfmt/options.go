package diagfmt

// PrettyOpts configures human-readable diagnostic output.
type PrettyOpts struct {
	// Color enables ANSI severity coloring. The global color override from
	// the CLI still applies on top.
	Color bool
	// ShowNotes renders secondary notes beneath their diagnostic.
	ShowNotes bool
}
