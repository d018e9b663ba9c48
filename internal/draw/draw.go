// Package draw renders to ANSI terminals: a half-block pixel canvas plus a
// buffered writer for text overlays.
package draw

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
