package sim

// genresPerLevel is how many distinct genres each reading level asks for
const genresPerLevel = 3

// levelBonus is multiplied by the new level on every level up
const levelBonus = 50

// collect records a defeating book's genre and author and levels the
// reader up while the genre count meets the threshold
func (s *Simulation) collect(b *Book) {
	s.Genres[b.Genre] = struct{}{}
	if b.Author != "" {
		s.Authors[b.Author] = struct{}{}
	}

	for len(s.Genres) >= s.ReadingLevel*genresPerLevel {
		s.ReadingLevel++
		bonus := s.ReadingLevel * levelBonus
		s.Score += bonus
		s.addMessage(s.now, "Reading level %d! %q", s.ReadingLevel, GetGenreConfig(b.Genre).Quote)
		s.sounds.Play(SoundLevelUp)
		s.log.Info().
			Int("level", s.ReadingLevel).
			Int("genres", len(s.Genres)).
			Int("authors", len(s.Authors)).
			Msg("reading level up")
	}
}
