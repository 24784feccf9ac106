package extract

import (
	"regexp"
	"strings"

	"github.com/gdrivehub/YTLinkerBot/internal/models"
)

// A secure link runs from its scheme to the first
// whitespace, quote or angle bracket
var secureLink = regexp.MustCompile(`(?i)https://[^\s<>"]+`)

// Punctuation that belongs to the surrounding prose, not the link.
// Stripped even when stacked, e.g. a link ending in `.)` loses both.
const trailingPunct = ".,;:!?)}]"

// Links scans free text for https links, strips trailing punctuation
// and deduplicates them preserving first-seen order. Pure function.
func Links(text string) models.Links {

	if text == "" {
		return nil
	}

	seen := make(map[string]bool)
	var links models.Links

	for _, match := range secureLink.FindAllString(text, -1) {
		link := strings.TrimRight(match, trailingPunct)
		if link == "" || seen[link] {
			continue
		}
		seen[link] = true
		links = append(links, link)
	}

	return links
}
