// Package taxonomy holds the static category taxonomy: the validated
// color palette, the rendering styles for the styled subset, and the
// sample presets offered to new users. All tables are constants at
// runtime; nothing here is mutable process state.
package taxonomy

// DefaultIcon is assigned to every newly created category.
const DefaultIcon = "tag"

// Colors is the closed set of color keys accepted by category
// validation. Three of these (indigo, teal, lime) have no entry in
// Styles and render unstyled.
var Colors = []string{
	"red", "blue", "green", "yellow", "purple", "pink",
	"orange", "cyan", "gray", "indigo", "teal", "lime",
}

// ValidColor reports whether key belongs to the validated palette.
func ValidColor(key string) bool {
	for _, c := range Colors {
		if c == key {
			return true
		}
	}
	return false
}

// ColorStyle carries the rendering values for one palette key.
type ColorStyle struct {
	Label  string `json:"label"`
	Hex    string `json:"hex"`
	Bg     string `json:"bg"`
	Text   string `json:"text"`
	Border string `json:"border"`
}

// Styles maps the styled subset of the palette to its rendering values.
var Styles = map[string]ColorStyle{
	"gray":   {Label: "Gray", Hex: "#6b7280", Bg: "#f3f4f6", Text: "#1f2937", Border: "#e5e7eb"},
	"red":    {Label: "Red", Hex: "#ef4444", Bg: "#fee2e2", Text: "#991b1b", Border: "#fecaca"},
	"orange": {Label: "Orange", Hex: "#f97316", Bg: "#ffedd5", Text: "#9a3412", Border: "#fed7aa"},
	"yellow": {Label: "Yellow", Hex: "#eab308", Bg: "#fef9c3", Text: "#854d0e", Border: "#fef08a"},
	"green":  {Label: "Green", Hex: "#22c55e", Bg: "#dcfce7", Text: "#166534", Border: "#bbf7d0"},
	"blue":   {Label: "Blue", Hex: "#3b82f6", Bg: "#dbeafe", Text: "#1e40af", Border: "#bfdbfe"},
	"purple": {Label: "Purple", Hex: "#a855f7", Bg: "#f3e8ff", Text: "#6b21a8", Border: "#e9d5ff"},
	"pink":   {Label: "Pink", Hex: "#ec4899", Bg: "#fce7f3", Text: "#9d174d", Border: "#fbcfe8"},
	"cyan":   {Label: "Cyan", Hex: "#06b6d4", Bg: "#cffafe", Text: "#155e75", Border: "#a5f3fc"},
}

// Preset is a suggested category or tag shown in creation dropdowns.
type Preset struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// PriorityPreset is a suggested priority level. Level orders urgency,
// higher is more urgent.
type PriorityPreset struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Level int    `json:"level"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// CategoryPresets are the sample category types.
var CategoryPresets = []Preset{
	{Key: "work", Label: "Work", Color: "blue", Icon: "briefcase"},
	{Key: "personal", Label: "Personal", Color: "green", Icon: "user"},
	{Key: "family", Label: "Family", Color: "pink", Icon: "users"},
	{Key: "health", Label: "Health", Color: "red", Icon: "heart"},
	{Key: "finance", Label: "Finance", Color: "yellow", Icon: "dollar-sign"},
	{Key: "education", Label: "Education", Color: "purple", Icon: "book"},
	{Key: "hobbies", Label: "Hobbies", Color: "orange", Icon: "palette"},
	{Key: "social", Label: "Social", Color: "cyan", Icon: "users"},
}

// PriorityPresets are the sample priority levels.
var PriorityPresets = []PriorityPreset{
	{Key: "urgent", Label: "Urgent", Level: 4, Color: "red", Icon: "alert-triangle"},
	{Key: "high", Label: "High", Level: 3, Color: "orange", Icon: "arrow-up"},
	{Key: "medium", Label: "Medium", Level: 2, Color: "yellow", Icon: "minus"},
	{Key: "low", Label: "Low", Level: 1, Color: "green", Icon: "arrow-down"},
}

// TagPresets are the sample tags.
var TagPresets = []Preset{
	{Key: "deadline", Label: "Deadline", Color: "red", Icon: "clock"},
	{Key: "meeting", Label: "Meeting", Color: "blue", Icon: "calendar"},
	{Key: "project", Label: "Project", Color: "purple", Icon: "folder"},
	{Key: "routine", Label: "Routine", Color: "gray", Icon: "repeat"},
	{Key: "creative", Label: "Creative", Color: "pink", Icon: "sparkles"},
	{Key: "urgent", Label: "Urgent", Color: "red", Icon: "zap"},
	{Key: "review", Label: "Review", Color: "yellow", Icon: "eye"},
	{Key: "planning", Label: "Planning", Color: "cyan", Icon: "map"},
}
