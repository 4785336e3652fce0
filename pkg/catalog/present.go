package catalog

import "math"

// DefaultIcon is shown for categories without a known icon.
const DefaultIcon = "🔧"

// ToolIcon is shown next to individual tools.
const ToolIcon = "🛠️"

var icons = map[string]string{
	"text-generation":  "✍️",
	"image-generation": "🎨",
	"code-generation":  "💻",
	"audio-processing": "🎵",
	"video-generation": "🎬",
	"data-analysis":    "📊",
	"design-tools":     "🎯",
	"productivity":     "⚡",
	"translation":      "🌐",
	"customer-support": "💬",
	"marketing":        "📈",
	"research":         "🔬",
}

// IconOrDefault returns the icon for a category. An explicit icon wins over the
// well-known table.
func (cat Category) IconOrDefault() string {
	if cat.Icon != "" {
		return cat.Icon
	}
	return Icon(cat.ID)
}

// Icon returns the well-known icon for a category id.
func Icon(categoryID string) string {
	if icon, ok := icons[categoryID]; ok {
		return icon
	}
	return DefaultIcon
}

// Rating converts a 0-100 popularity score into a 1-5 star rating.
func Rating(popularity float64) int {
	r := int(math.Round(popularity/100*4 + 1))
	return max(1, min(5, r))
}

// AveragePopularity returns the rounded mean popularity of the category's
// tools, or 0 for an empty category.
func (cat Category) AveragePopularity() int {
	if len(cat.Tools) == 0 {
		return 0
	}
	var total float64
	for _, t := range cat.Tools {
		total += t.Popularity
	}
	return int(math.Round(total / float64(len(cat.Tools))))
}
