package pipeline

import (
	"fmt"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
)

// distinguishedCharacter is the tutorial character with the shorter
// question deck; tier arithmetic branches on it.
const distinguishedCharacter = "t"

// ForwardFillProgress carries the sparse gameplay-state fields (character,
// tier, raw question counter) forward within each (user, session) group in
// time order. State never leaks across groups: a new session starts blank.
func ForwardFillProgress(rc *RunContext, rows []*entities.Event) ([]*entities.Event, []string, error) {
	sorted := sortedSessionCopy(rows)

	var (
		current  entities.SessionID
		haveGrp  bool
		char     string
		tier, qi *int64
	)
	for _, e := range sorted {
		if e.SessionKey == 0 {
			continue
		}
		if !haveGrp || e.SessionID() != current {
			current, haveGrp = e.SessionID(), true
			char, tier, qi = "", nil, nil
		}

		if e.CharacterName != "" {
			char = e.CharacterName
		} else if char != "" {
			e.CharacterName = char
		}
		if e.CurrentTier != nil {
			tier = e.CurrentTier
		} else if tier != nil {
			v := *tier
			e.CurrentTier = &v
		}
		if e.CurrentQI != nil {
			qi = e.CurrentQI
		} else if qi != nil {
			v := *qi
			e.CurrentQI = &v
		}
	}
	return rows, nil, nil
}

// questionOffset returns the tier-dependent offset the raw counter is
// subtracted from. Tier 1 has 16 questions (12 for the distinguished
// character), tiers 2 and 3 have 12, tier 4 has 10.
func questionOffset(character string, tier int64) (int64, bool) {
	switch tier {
	case 1:
		if character == distinguishedCharacter {
			return 13, true
		}
		return 17, true
	case 2, 3:
		return 13, true
	case 4:
		return 11, true
	}
	return 0, false
}

// QuestionIndexCleanup normalizes the raw progress counter into the
// absolute 1-based question index. A tier outside {1,2,3,4} on an otherwise
// complete row is a data-quality violation: logged, index left missing.
func QuestionIndexCleanup(rc *RunContext, rows []*entities.Event) ([]*entities.Event, []string, error) {
	var problems []string
	for _, e := range rows {
		e.QuestionIndex = nil
		if e.CharacterName == "" || e.CurrentTier == nil || e.CurrentQI == nil {
			continue
		}
		offset, ok := questionOffset(e.CharacterName, *e.CurrentTier)
		if !ok {
			problems = append(problems, fmt.Sprintf(
				"row %d: tier %d outside {1,2,3,4} (character=%q, qi=%d)",
				e.RowID, *e.CurrentTier, e.CharacterName, *e.CurrentQI))
			continue
		}
		idx := offset - *e.CurrentQI
		e.QuestionIndex = &idx
	}
	return rows, problems, nil
}

// cumulativeBase returns the additive constant stacking the earlier tiers'
// deck sizes under the absolute index.
func cumulativeBase(character string, tier int64) int64 {
	t := character == distinguishedCharacter
	switch tier {
	case 2:
		if t {
			return 12
		}
		return 16
	case 3:
		if t {
			return 24
		}
		return 28
	case 4:
		if t {
			return 36
		}
		return 40
	}
	return 0
}

// CumulativeQuestionIndex derives the cross-tier question index: absolute
// index plus the per-tier base. Missing tier means missing cumulative index.
func CumulativeQuestionIndex(rc *RunContext, rows []*entities.Event) ([]*entities.Event, []string, error) {
	for _, e := range rows {
		e.CumulativeQuestionIndex = nil
		if e.CurrentTier == nil || e.QuestionIndex == nil {
			continue
		}
		v := *e.QuestionIndex + cumulativeBase(e.CharacterName, *e.CurrentTier)
		e.CumulativeQuestionIndex = &v
	}
	return rows, nil, nil
}
