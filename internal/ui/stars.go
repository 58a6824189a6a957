package ui

import (
	"strings"

	"github.com/cinevault/cinevault/internal/models"
)

const (
	starFull  = "★"
	starHalf  = "⯪"
	starEmpty = "☆"
)

// RenderStars draws the five-star row for a rating. A non-zero hovered
// index previews that many full stars without touching the stored value.
func RenderStars(value models.Rating, hovered int) string {
	var b strings.Builder
	for i := 1; i <= 5; i++ {
		if i > 1 {
			b.WriteString(" ")
		}
		b.WriteString(starAt(value, hovered, i))
	}
	return b.String()
}

func starAt(value models.Rating, hovered, position int) string {
	if hovered > 0 {
		if position <= hovered {
			return starFull
		}
		return starEmpty
	}

	full := models.Rating(position)
	switch {
	case value >= full:
		return starFull
	case value >= full-0.5:
		return starHalf
	default:
		return starEmpty
	}
}
