package export

// Table defines tabular export content. Footer, when set, is rendered
// as a trailing summary row and must match Headers in length.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Footer  []string
}
