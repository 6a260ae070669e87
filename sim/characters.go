package sim

import "time"

// Character defines the selectable librarians
type Character int

const (
	CharacterLibrarian Character = iota
	CharacterPageRunner
	CharacterArchivist
	CharacterCount // Total number of characters
)

// SpeedBoostFactor scales base speed while coffee is active (5 becomes 8)
const SpeedBoostFactor = 1.6

// CharacterConfig holds configuration for each character
type CharacterConfig struct {
	Character Character
	Name      string

	// SpriteName is the directory/prefix the sprite provider looks up
	SpriteName string

	Speed float64

	// ThrowCooldownFactor scales every book type's cooldown
	ThrowCooldownFactor float64

	// ShushCooldown overrides the config cooldown when non-zero
	ShushCooldown time.Duration

	Color RGB
}

// GetCharacterConfig returns configuration for a character
func GetCharacterConfig(c Character) CharacterConfig {
	switch c {
	case CharacterLibrarian:
		return CharacterConfig{
			Character:           c,
			Name:                "Librarian",
			SpriteName:          "librarian",
			Speed:               5,
			ThrowCooldownFactor: 1.0,
			Color:               RGB{0, 0, 255},
		}
	case CharacterPageRunner:
		return CharacterConfig{
			Character:           c,
			Name:                "Page Runner",
			SpriteName:          "runner",
			Speed:               6,
			ThrowCooldownFactor: 1.2,
			Color:               RGB{0, 150, 60},
		}
	case CharacterArchivist:
		return CharacterConfig{
			Character:           c,
			Name:                "Head Archivist",
			SpriteName:          "archivist",
			Speed:               4,
			ThrowCooldownFactor: 0.75,
			ShushCooldown:       800 * time.Millisecond,
			Color:               RGB{110, 40, 130},
		}
	default:
		return GetCharacterConfig(CharacterLibrarian)
	}
}

// String returns the character display name
func (c Character) String() string {
	return GetCharacterConfig(c).Name
}
