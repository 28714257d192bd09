package games

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Block pads or truncates 'text' to exactly w x h terminal cells, so
// Display and Thumbnail can promise fixed dimensions. Width is measured
// in grapheme clusters, the unicode box drawing and piece symbols used by
// the games count as one cell each.
func Block(text string, w, h int) string {
	lines := strings.Split(text, "\n")
	builder := strings.Builder{}

	for y := 0; y < h; y++ {
		if y > 0 {
			builder.WriteByte('\n')
		}
		line := ""
		if y < len(lines) {
			line = lines[y]
		}
		builder.WriteString(fitLine(line, w))
	}

	return builder.String()
}

// Width of 'text' in terminal cells
func Width(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

func fitLine(line string, w int) string {
	width := Width(line)
	if width == w {
		return line
	}
	if width < w {
		return line + strings.Repeat(" ", w-width)
	}

	// Truncate cluster by cluster
	builder := strings.Builder{}
	state := -1
	rest := line
	for n := 0; n < w && len(rest) > 0; n++ {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		builder.WriteString(cluster)
	}
	return builder.String()
}
