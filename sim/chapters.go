package sim

// Chapter is a playable stage: a layout plus the rule set it runs under
type Chapter int

const (
	ChapterReadingRoom Chapter = iota
	ChapterStacks
	ChapterArchive
	ChapterEndless
	ChapterCount
)

// StoryChapters are offered on the chapter select screen, in order
var StoryChapters = []Chapter{ChapterReadingRoom, ChapterStacks, ChapterArchive}

// MazeTileSize is the edge of one layout cell in play-area units
const MazeTileSize = 40.0

var stacksLayout = []string{
	"####################",
	"#..................#",
	"#..SSSS.....SSSS...#",
	"#..................#",
	"#......FF....FF....#",
	"#..................#",
	"#..SSSS.....SSSS...#",
	"....................",
	"#..................#",
	"#..SSSS.....SSSS...#",
	"#..................#",
	"#......FF....FF....#",
	"#..................#",
	"#..SSSS.....SSSS...#",
	"####################",
}

var archiveLayout = []string{
	"####################",
	"#.....S......S.....#",
	"#.SSS.S.SSSS.S.SSS.#",
	"#.....S......S.....#",
	"#.FF.....FF.....FF.#",
	"#..................#",
	"#.SSSS.SSSSSS.SSSS.#",
	"....................",
	"#..................#",
	"#.SSSS.SSSSSS.SSSS.#",
	"#..................#",
	"#.FF.....FF.....FF.#",
	"#.....S......S.....#",
	"#.SSS.S.SSSS.S.SSS.#",
	"####################",
}

// ChapterConfig holds configuration for each chapter
type ChapterConfig struct {
	Chapter Chapter
	Name    string
	Blurb   string
	Rules   Rules
}

// GetChapterConfig returns configuration for a chapter
func GetChapterConfig(c Chapter) ChapterConfig {
	switch c {
	case ChapterReadingRoom:
		return ChapterConfig{
			Chapter: c,
			Name:    "The Reading Room",
			Blurb:   "Keep the noise down before it reaches the shelves.",
			Rules:   MeterRules(),
		}
	case ChapterStacks:
		rules := ContactRules()
		rules.Maze = stacksLayout
		return ChapterConfig{
			Chapter: c,
			Name:    "The Stacks",
			Blurb:   "Monsters roam the aisles. Don't let them touch you.",
			Rules:   rules,
		}
	case ChapterArchive:
		rules := ContactRules()
		rules.Maze = archiveLayout
		return ChapterConfig{
			Chapter: c,
			Name:    "The Archive",
			Blurb:   "Narrow corridors and ancient tomes.",
			Rules:   rules,
		}
	case ChapterEndless:
		return ChapterConfig{
			Chapter: c,
			Name:    "Endless Shift",
			Blurb:   "Everything at once, for as long as you last.",
			Rules:   ContactRules(),
		}
	default:
		return GetChapterConfig(ChapterReadingRoom)
	}
}

// String returns the chapter display name
func (c Chapter) String() string {
	return GetChapterConfig(c).Name
}
