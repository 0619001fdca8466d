package quiz

import "github.com/abhisek/lexio/internal/catalog"

// Mode selects how questions are asked.
type Mode string

const (
	// ModeChoice shows the english word and four chinese candidates.
	ModeChoice Mode = "choice"
	// ModeSpell shows the chinese translation and asks for the spelling.
	ModeSpell Mode = "spell"
)

// RangeKind selects which subset of the catalog a quiz draws from.
type RangeKind string

const (
	RangeAll      RangeKind = "all"
	RangeMastered RangeKind = "mastered"
	RangeFavorite RangeKind = "favorite"
	RangeUnit     RangeKind = "unit"
)

// Range is the candidate-pool selector for a quiz. Unit is only
// meaningful when Kind is RangeUnit.
type Range struct {
	Kind RangeKind
	Unit catalog.Unit
}

// UnitRange returns a Range covering a single unit.
func UnitRange(u catalog.Unit) Range {
	return Range{Kind: RangeUnit, Unit: u}
}

// DefaultQuestionCount is the preselected session length.
const DefaultQuestionCount = 10

// QuestionCounts are the selectable session lengths.
var QuestionCounts = []int{5, 10, 15, 20}

// Config describes one quiz run: which words, which mode, how many
// questions. It is consumed by Session.Start and then discarded.
type Config struct {
	Range         Range
	Mode          Mode
	QuestionCount int
}

// DefaultConfig returns a full-catalog choice quiz of the standard length.
func DefaultConfig() Config {
	return Config{
		Range:         Range{Kind: RangeAll},
		Mode:          ModeChoice,
		QuestionCount: DefaultQuestionCount,
	}
}
