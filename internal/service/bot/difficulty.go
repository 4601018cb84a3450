package bot

type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyMedium   Difficulty = "medium"
	DifficultyTactical Difficulty = "tactical"
	DifficultyHard     Difficulty = "hard"
	DifficultyExpert   Difficulty = "expert"
)

// Difficulties lists the tiers from weakest to strongest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyTactical, DifficultyHard, DifficultyExpert}
}

// ParseDifficulty validates and returns the bot difficulty
// Defaults to Medium if invalid or empty
func ParseDifficulty(difficulty string) Difficulty {
	switch difficulty {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "tactical":
		return DifficultyTactical
	case "hard":
		return DifficultyHard
	case "expert":
		return DifficultyExpert
	default:
		return DifficultyMedium
	}
}

func (d Difficulty) String() string { return string(d) }
