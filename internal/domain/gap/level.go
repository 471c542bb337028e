package gap

import "strings"

// ProficiencyLevel is the closed set of levels an employee can hold a
// skill at. Anything outside the three canonical values has no ordinal
// and never satisfies a level requirement.
type ProficiencyLevel string

const (
	LevelBeginner     ProficiencyLevel = "beginner"
	LevelIntermediate ProficiencyLevel = "intermediate"
	LevelExpert       ProficiencyLevel = "expert"
)

// LevelUnset on a target means a name match alone satisfies the
// requirement.
const LevelUnset ProficiencyLevel = ""

// Ordinal returns the rank used for "at least as good as" comparisons.
// ok is false for unknown levels; callers must not treat that as rank 0.
func (l ProficiencyLevel) Ordinal() (int, bool) {
	switch l {
	case LevelBeginner:
		return 1, true
	case LevelIntermediate:
		return 2, true
	case LevelExpert:
		return 3, true
	}
	return 0, false
}

func (l ProficiencyLevel) Valid() bool {
	_, ok := l.Ordinal()
	return ok
}

// ParseLevel normalizes raw input into a canonical level.
func ParseLevel(raw string) (ProficiencyLevel, bool) {
	l := ProficiencyLevel(strings.ToLower(strings.TrimSpace(raw)))
	if !l.Valid() {
		return LevelUnset, false
	}
	return l, true
}
