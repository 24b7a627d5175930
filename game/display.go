package game

import "strings"

// ToDisplayText returns a human-readable grid: '-' open, '#' visited,
// '1'/'2' current player squares.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			m := Move{r, c}
			var ch byte
			switch {
			case b.locs[Player1] == m:
				ch = '1'
			case b.locs[Player2] == m:
				ch = '2'
			case b.blocked[b.cell(m)]:
				ch = '#'
			default:
				ch = '-'
			}
			sb.WriteByte(ch)
			if c != b.width-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
