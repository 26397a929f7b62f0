package translatable

import (
	"strconv"
	"strings"
)

// FormatItems formats items for display, one per line: the item label,
// the source path (or "." for the root), and the quoted content.
func FormatItems(items []Item) string {
	if len(items) == 0 {
		return ""
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		path := item.Path.String()
		if path == "" {
			path = "."
		}
		lines = append(lines, item.Label()+" "+path+" "+strconv.Quote(item.Content))
	}

	return strings.Join(lines, "\n")
}
