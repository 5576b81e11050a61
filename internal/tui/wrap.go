// Package tui provides the Bubble Tea review interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText wraps text to the given display width, breaking at spaces
// where possible. CJK runes count double width.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out strings.Builder
	for i, paragraph := range strings.Split(text, "\n") {
		if i > 0 {
			out.WriteRune('\n')
		}
		out.WriteString(wrapLine(paragraph, width))
	}
	return out.String()
}

func wrapLine(line string, width int) string {
	runes := []rune(line)
	var out strings.Builder
	current := make([]rune, 0, len(runes))
	currentWidth := 0
	lastSpace := -1

	for i := 0; i < len(runes); {
		r := runes[i]
		w := runewidth.RuneWidth(r)
		if currentWidth+w > width && len(current) > 0 {
			if lastSpace >= 0 {
				out.WriteString(string(current[:lastSpace]))
				out.WriteRune('\n')
				current = append([]rune{}, current[lastSpace+1:]...)
				currentWidth = runesWidth(current)
				lastSpace = lastSpaceIndex(current)
			} else {
				out.WriteString(string(current))
				out.WriteRune('\n')
				current = current[:0]
				currentWidth = 0
				lastSpace = -1
			}
			continue
		}
		current = append(current, r)
		currentWidth += w
		if r == ' ' {
			lastSpace = len(current) - 1
		}
		i++
	}
	out.WriteString(string(current))
	return out.String()
}

func runesWidth(runes []rune) int {
	total := 0
	for _, r := range runes {
		total += runewidth.RuneWidth(r)
	}
	return total
}

func lastSpaceIndex(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}
