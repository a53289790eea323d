package pipeline

import (
	"fmt"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
)

// QuestionAddress synthesizes the human-readable question key
// "<character> - T: <tier> - Q: <index>". Runs after the value maps, so the
// character part is the display name. Rows missing any component keep an
// empty address.
func QuestionAddress(rc *RunContext, rows []*entities.Event) ([]*entities.Event, []string, error) {
	for _, e := range rows {
		if e.CharacterName == "" || e.CurrentTier == nil || e.QuestionIndex == nil {
			continue
		}
		e.QuestionAddress = fmt.Sprintf("%s - T: %d - Q: %d", e.CharacterName, *e.CurrentTier, *e.QuestionIndex)
	}
	return rows, nil, nil
}

// WrongAnswerZeros defaults answered_wrong to 0 on completion events: the
// client omits the parameter entirely when a question is solved without
// mistakes.
func WrongAnswerZeros(rc *RunContext, rows []*entities.Event) ([]*entities.Event, []string, error) {
	for _, e := range rows {
		if e.EventName == "Question Completed" && e.AnsweredWrong == nil {
			zero := 0.0
			e.AnsweredWrong = &zero
		}
	}
	return rows, nil, nil
}

// PreviousEvent records each row's immediately preceding event name and
// menu within the same (user, session) in time order. The ads and technical
// views use it for root-cause context.
func PreviousEvent(rc *RunContext, rows []*entities.Event) ([]*entities.Event, []string, error) {
	sorted := sortedSessionCopy(rows)

	var prev *entities.Event
	for _, e := range sorted {
		if e.SessionKey == 0 {
			continue
		}
		if prev != nil && prev.SessionID() == e.SessionID() {
			e.PrevEventName = prev.EventName
			e.PrevEventMenu = prev.MenuName
		}
		prev = e
	}
	return rows, nil, nil
}
