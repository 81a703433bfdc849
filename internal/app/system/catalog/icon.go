package catalog

// Icon names the glyph shown next to a lesson. It is a closed set so the
// catalog stays independent of whatever renders the glyph.
type Icon int

const (
	IconNone Icon = iota
	IconRocket
	IconLayers
	IconTerminal
	IconSettings
	IconNetwork
	IconCode
	IconTarget
	IconShield
	IconCrosshair
	IconWindow
	IconPenguin
	IconZap
	IconAward
	IconTrophy
	IconMap
)

var glyphs = map[Icon]string{
	IconRocket:    "🚀",
	IconLayers:    "🏗️",
	IconTerminal:  "📁",
	IconSettings:  "⚙️",
	IconNetwork:   "🌐",
	IconCode:      "📜",
	IconTarget:    "🔒",
	IconShield:    "🛡️",
	IconCrosshair: "🎯",
	IconWindow:    "💻",
	IconPenguin:   "🐧",
	IconZap:       "🏆",
	IconAward:     "📚",
	IconTrophy:    "🥇",
	IconMap:       "🧭",
}

// Glyph renders the icon as a text glyph. IconNone renders as "".
func (i Icon) Glyph() string {
	return glyphs[i]
}

// MarshalText renders the icon as its glyph in JSON and YAML output.
func (i Icon) MarshalText() ([]byte, error) {
	return []byte(i.Glyph()), nil
}
