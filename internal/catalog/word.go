package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// UnitGeneral groups words that belong to no numbered textbook unit.
const UnitGeneral Unit = 0

// Unit identifies the textbook unit a word belongs to. Unit 0 is the
// "general" bucket; the word list JSON encodes it as the string "general".
type Unit int

// Label returns the display name for the unit.
func (u Unit) Label() string {
	if u == UnitGeneral {
		return "General"
	}
	return fmt.Sprintf("Unit %d", int(u))
}

// UnmarshalJSON accepts either a number or the string "general".
func (u *Unit) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "general" {
			*u = UnitGeneral
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid unit %q", s)
		}
		*u = Unit(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid unit: %w", err)
	}
	*u = Unit(n)
	return nil
}

// MarshalJSON encodes the general unit as the string "general".
func (u Unit) MarshalJSON() ([]byte, error) {
	if u == UnitGeneral {
		return json.Marshal("general")
	}
	return json.Marshal(int(u))
}

// Difficulty rates how hard a word is for learners.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is a known difficulty level.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Word is a single catalog entry. Words are loaded once at startup and
// never mutated afterwards.
type Word struct {
	ID         int        `json:"id"`
	English    string     `json:"english"`
	Phonetic   string     `json:"phonetic"`
	Chinese    string     `json:"chinese"`
	Unit       Unit       `json:"unit"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
}
