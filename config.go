package main

// Romanian flag colors used across the overlay text passes.
const (
	RomanianBlue   = "#004C9F"
	RomanianYellow = "#FCD535"
	RomanianRed    = "#CE1126"
)

// App Store standard colors.
const (
	AppStoreBlack = "#000000"
	AppStoreWhite = "#FFFFFF"
	AppStoreGray  = "#8E8E93"
)

// ScaleTier selects the font-size fractions for a device class.
type ScaleTier int

const (
	TierPhone ScaleTier = iota
	TierTablet
)

// Frac holds one font-size fraction of image width per scale tier.
type Frac struct {
	Phone  float64
	Tablet float64
}

// For returns the fraction for the given tier.
func (f Frac) For(t ScaleTier) float64 {
	if t == TierPhone {
		return f.Phone
	}
	return f.Tablet
}

// DeviceParams describes one App Store device class.
type DeviceParams struct {
	Name    string    // device label
	Dir     string    // subdirectory under the base dir
	Tier    ScaleTier // font scaling tier
	ScreenW int       // capture viewport width
	ScreenH int       // capture viewport height
}

// Devices lists the five App Store device classes, in processing order.
var Devices = []DeviceParams{
	{
		Name:    "iPhone_6.7",
		Dir:     "iPhone_6.7",
		Tier:    TierPhone,
		ScreenW: 1290,
		ScreenH: 2796,
	},
	{
		Name:    "iPhone_6.5",
		Dir:     "iPhone_6.5",
		Tier:    TierPhone,
		ScreenW: 1242,
		ScreenH: 2688,
	},
	{
		Name:    "iPhone_5.5",
		Dir:     "iPhone_5.5",
		Tier:    TierPhone,
		ScreenW: 1242,
		ScreenH: 2208,
	},
	{
		Name:    "iPad_12.9",
		Dir:     "iPad_12.9",
		Tier:    TierTablet,
		ScreenW: 2048,
		ScreenH: 2732,
	},
	{
		Name:    "iPad_11.0",
		Dir:     "iPad_11.0",
		Tier:    TierTablet,
		ScreenW: 1668,
		ScreenH: 2388,
	},
}

// Category binds one screenshot filename to its overlay passes.
type Category struct {
	Filename string
	Label    string // human-readable name for log lines
	Emoji    string // log line prefix
	Anchor   string // page anchor used when capturing raw screenshots

	Title       string
	TitleColor  string
	TitleStroke string
	TitleFrac   Frac
	TitleY      float64 // fraction of image height

	// Subtitle pass, only the main menu carries one.
	Subtitle      string
	SubtitleColor string

	Footer      string
	FooterColor string
	FooterFrac  Frac
	FooterY     float64

	Gradient bool // darkening gradient band behind the title
}

// Categories lists the six screenshot categories, in filename order.
var Categories = []Category{
	{
		Filename:      "01_main_menu.png",
		Label:         "main menu",
		Emoji:         "🏠",
		Anchor:        "main-menu",
		Title:         "Experience Authentic Romanian Card Gaming",
		TitleColor:    AppStoreWhite,
		TitleStroke:   AppStoreBlack,
		TitleFrac:     Frac{Phone: 0.08, Tablet: 0.06},
		TitleY:        0.1,
		Subtitle:      "Jocul Tradițional Românesc",
		SubtitleColor: RomanianYellow,
		Footer:        "• Authentic Romanian Rules • Premium AI Opponent • Cultural Heritage Design",
		FooterColor:   AppStoreWhite,
		FooterFrac:    Frac{Phone: 0.035, Tablet: 0.025},
		FooterY:       0.85,
		Gradient:      true,
	},
	{
		Filename:    "02_gameplay.png",
		Label:       "gameplay",
		Emoji:       "🎮",
		Anchor:      "gameplay",
		Title:       "7s Beat Any Card - Traditional Romanian Rules",
		TitleColor:  RomanianRed,
		TitleStroke: AppStoreWhite,
		TitleFrac:   Frac{Phone: 0.06, Tablet: 0.045},
		TitleY:      0.08,
		Footer:      "Șaptele bate orice carte • Authentic Romanian Strategy",
		FooterColor: AppStoreWhite,
		FooterFrac:  Frac{Phone: 0.035, Tablet: 0.025},
		FooterY:     0.88,
	},
	{
		Filename:    "03_accessibility.png",
		Label:       "accessibility",
		Emoji:       "♿",
		Anchor:      "accessibility",
		Title:       "Inclusive Gaming for All Romanian Heritage Enthusiasts",
		TitleColor:  RomanianBlue,
		TitleStroke: AppStoreWhite,
		TitleFrac:   Frac{Phone: 0.06, Tablet: 0.045},
		TitleY:      0.08,
		Footer:      "VoiceOver • Dynamic Type • High Contrast • Cultural Respect",
		FooterColor: AppStoreWhite,
		FooterFrac:  Frac{Phone: 0.035, Tablet: 0.025},
		FooterY:     0.88,
	},
	{
		Filename:    "04_cultural_heritage.png",
		Label:       "cultural heritage",
		Emoji:       "🏛️",
		Anchor:      "heritage",
		Title:       "Preserving Romanian Card Game Traditions",
		TitleColor:  RomanianYellow,
		TitleStroke: AppStoreBlack,
		TitleFrac:   Frac{Phone: 0.06, Tablet: 0.045},
		TitleY:      0.08,
		Footer:      "Păstrăm tradițiile jocurilor românești cu mândrie",
		FooterColor: AppStoreWhite,
		FooterFrac:  Frac{Phone: 0.035, Tablet: 0.025},
		FooterY:     0.88,
	},
	{
		Filename:    "05_statistics.png",
		Label:       "statistics",
		Emoji:       "📊",
		Anchor:      "statistics",
		Title:       "Track Your Romanian Card Game Journey",
		TitleColor:  RomanianBlue,
		TitleStroke: AppStoreWhite,
		TitleFrac:   Frac{Phone: 0.06, Tablet: 0.045},
		TitleY:      0.08,
		Footer:      "Progress • Achievements • Cultural Milestones",
		FooterColor: AppStoreWhite,
		FooterFrac:  Frac{Phone: 0.035, Tablet: 0.025},
		FooterY:     0.88,
	},
	{
		Filename:    "06_victory.png",
		Label:       "victory",
		Emoji:       "🏆",
		Anchor:      "victory",
		Title:       "Celebrate Your Romanian Heritage Victories",
		TitleColor:  RomanianRed,
		TitleStroke: AppStoreWhite,
		TitleFrac:   Frac{Phone: 0.06, Tablet: 0.045},
		TitleY:      0.08,
		Footer:      "Felicitări! Ai câștigat cu stilul românesc!",
		FooterColor: RomanianYellow,
		FooterFrac:  Frac{Phone: 0.035, Tablet: 0.025},
		FooterY:     0.88,
	},
}
