package music

// Rating is a user rating on the 0..5 scale. Only NoRating, ThumbsDown and
// ThumbsUp are written nowadays; 2..4 come from older data.
type Rating int

const (
	NoRating   Rating = 0
	ThumbsDown Rating = 1
	ThumbsUp   Rating = 5
)

var ratingGlyphs = [...]string{"-", "▼", "▼", "-", "▲", "▲"}

// Glyph returns the one-character rendering of the rating.
func (r Rating) Glyph() string {
	if r < 0 || int(r) >= len(ratingGlyphs) {
		return "-"
	}
	return ratingGlyphs[r]
}

// Valid reports whether r is on the 0..5 scale.
func (r Rating) Valid() bool {
	return r >= NoRating && r <= ThumbsUp
}

// Toggle returns the rating that results from applying want on top of r:
// asking for the rating already set clears it.
func (r Rating) Toggle(want Rating) Rating {
	if r == want {
		return NoRating
	}
	return want
}
