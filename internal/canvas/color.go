package canvas

// Color is the logical color of a cell. The TUI maps it to a terminal style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorIntact        // Selected city that was never damaged
	ColorDamaged       // Damaged, waiting for transformers
	ColorRestored
	ColorBorder
	ColorLabel
	ColorHighlight // Most recently restored city
)
