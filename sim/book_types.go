package sim

import "time"

// BookType defines the kinds of book the librarian can throw
type BookType int

const (
	BookPaperback BookType = iota
	BookHardcover
	BookEncyclopedia
	BookMagicalTome
	BookTypeCount
)

// Mega books override the type's speed and size
const (
	MegaBookSpeed  = 10.0
	MegaBookWidth  = 30.0
	MegaBookHeight = 25.0
)

// BookConfig holds configuration for each book type
type BookConfig struct {
	Type     BookType
	Name     string
	Speed    float64 // per tick
	Damage   int
	Width    float64
	Height   float64
	Cooldown time.Duration
	Color    RGB
}

// GetBookConfig returns configuration for a book type
func GetBookConfig(bt BookType) BookConfig {
	switch bt {
	case BookPaperback:
		return BookConfig{Type: bt, Name: "paperback", Speed: 8, Damage: 1, Width: 20, Height: 15, Cooldown: 300 * time.Millisecond, Color: RGB{0, 0, 255}}
	case BookHardcover:
		return BookConfig{Type: bt, Name: "hardcover", Speed: 7, Damage: 2, Width: 22, Height: 17, Cooldown: 450 * time.Millisecond, Color: RGB{139, 69, 19}}
	case BookEncyclopedia:
		return BookConfig{Type: bt, Name: "encyclopedia", Speed: 5, Damage: 4, Width: 26, Height: 20, Cooldown: 800 * time.Millisecond, Color: RGB{0, 110, 0}}
	case BookMagicalTome:
		return BookConfig{Type: bt, Name: "magical_tome", Speed: 9, Damage: 2, Width: 20, Height: 15, Cooldown: 600 * time.Millisecond, Color: RGB{150, 60, 220}}
	default:
		return GetBookConfig(BookPaperback)
	}
}

// String returns the book type name
func (bt BookType) String() string {
	return GetBookConfig(bt).Name
}

// Next cycles to the following book type
func (bt BookType) Next() BookType {
	return (bt + 1) % BookTypeCount
}

// Genre tags a book for collection scoring and, on magical tomes, a secondary effect
type Genre int

const (
	GenreNone Genre = iota
	GenreFantasy
	GenreHorror
	GenreScience
	GenreMystery
	GenreRomance
	GenreHistory
	GenrePoetry
	GenreAdventure
	GenrePhilosophy
	GenreCount
)

// GenreConfig holds the flavor data for a genre
type GenreConfig struct {
	Genre   Genre
	Name    string
	Authors []string
	Quote   string
	Color   RGB
}

var genreConfigs = map[Genre]GenreConfig{
	GenreFantasy:    {Genre: GenreFantasy, Name: "fantasy", Authors: []string{"Tolkien", "Le Guin", "Pratchett"}, Quote: "Not all those who wander are lost.", Color: RGB{120, 60, 200}},
	GenreHorror:     {Genre: GenreHorror, Name: "horror", Authors: []string{"Shelley", "Poe", "Stoker"}, Quote: "Beware; for I am fearless, and therefore powerful.", Color: RGB{120, 0, 0}},
	GenreScience:    {Genre: GenreScience, Name: "science", Authors: []string{"Sagan", "Darwin", "Curie"}, Quote: "We are a way for the cosmos to know itself.", Color: RGB{0, 150, 200}},
	GenreMystery:    {Genre: GenreMystery, Name: "mystery", Authors: []string{"Christie", "Doyle", "Sayers"}, Quote: "It is a capital mistake to theorize before one has data.", Color: RGB{60, 60, 60}},
	GenreRomance:    {Genre: GenreRomance, Name: "romance", Authors: []string{"Austen", "Bronte", "Gaskell"}, Quote: "I declare after all there is no enjoyment like reading!", Color: RGB{230, 100, 150}},
	GenreHistory:    {Genre: GenreHistory, Name: "history", Authors: []string{"Herodotus", "Gibbon", "Tuchman"}, Quote: "Very few things happen at the right time.", Color: RGB{160, 120, 60}},
	GenrePoetry:     {Genre: GenrePoetry, Name: "poetry", Authors: []string{"Dickinson", "Keats", "Whitman"}, Quote: "Hope is the thing with feathers.", Color: RGB{250, 200, 80}},
	GenreAdventure:  {Genre: GenreAdventure, Name: "adventure", Authors: []string{"Verne", "Stevenson", "Dumas"}, Quote: "All for one, one for all.", Color: RGB{40, 160, 80}},
	GenrePhilosophy: {Genre: GenrePhilosophy, Name: "philosophy", Authors: []string{"Aurelius", "Seneca", "Hume"}, Quote: "The unexamined life is not worth living.", Color: RGB{100, 100, 160}},
}

// GetGenreConfig returns configuration for a genre
func GetGenreConfig(g Genre) GenreConfig {
	if c, ok := genreConfigs[g]; ok {
		return c
	}
	return GenreConfig{Genre: GenreNone, Name: "none"}
}

// String returns the genre name
func (g Genre) String() string {
	return GetGenreConfig(g).Name
}

// rollGenre picks a random genre and one of its authors
func rollGenre(rng Rand) (Genre, string) {
	g := Genre(1 + rng.Intn(int(GenreCount)-1))
	authors := GetGenreConfig(g).Authors
	return g, authors[rng.Intn(len(authors))]
}
