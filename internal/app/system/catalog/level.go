package catalog

// Level is a lesson's difficulty tag.
type Level int

const (
	LevelNone Level = iota
	LevelBeginner
	LevelIntermediate
	LevelAdvanced
	LevelExpert
	LevelAllLevels
)

var levelNames = map[Level]string{
	LevelBeginner:     "Beginner",
	LevelIntermediate: "Intermediate",
	LevelAdvanced:     "Advanced",
	LevelExpert:       "Expert",
	LevelAllLevels:    "All Levels",
}

// String returns the display name, or "" for LevelNone.
func (l Level) String() string {
	return levelNames[l]
}

// ParseLevel maps a display name back to a Level.
func ParseLevel(s string) (Level, bool) {
	for l, name := range levelNames {
		if name == s {
			return l, true
		}
	}
	return LevelNone, false
}

// BadgeClass is the CSS modifier used for the difficulty badge.
func (l Level) BadgeClass() string {
	switch l {
	case LevelBeginner:
		return "badge--beginner"
	case LevelIntermediate:
		return "badge--intermediate"
	case LevelAdvanced:
		return "badge--advanced"
	case LevelExpert:
		return "badge--expert"
	case LevelAllLevels:
		return "badge--all"
	default:
		return "badge--none"
	}
}

// MarshalText lets levels appear by name in JSON and YAML output.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
