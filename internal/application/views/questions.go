package views

import (
	"log"
	"sort"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"github.com/nocsaren/emoji-oracle-analytics/internal/utils"
)

type questionKey struct {
	QuestionAddress string
	CharacterName   string
	CurrentTier     int64
	QuestionIndex   int64
	SessionKey      int64
}

// CreateByQuestions builds the per-question difficulty view. Only rows that
// carry a complete question identity (address, character, tier, index and a
// session) participate; everything else is ambient noise for this view.
func CreateByQuestions(rows []*entities.Event) []entities.QuestionAttempt {
	groups := map[questionKey][]*entities.Event{}
	for _, e := range rows {
		if e.QuestionAddress == "" || e.CharacterName == "" ||
			e.CurrentTier == nil || e.QuestionIndex == nil || e.SessionKey == 0 {
			continue
		}
		k := questionKey{
			QuestionAddress: e.QuestionAddress,
			CharacterName:   e.CharacterName,
			CurrentTier:     *e.CurrentTier,
			QuestionIndex:   *e.QuestionIndex,
			SessionKey:      e.SessionKey,
		}
		groups[k] = append(groups[k], e)
	}
	if len(groups) == 0 {
		log.Printf("⚠️ by_questions: no rows with full question context")
		return []entities.QuestionAttempt{}
	}

	keys := make([]questionKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.CharacterName != b.CharacterName {
			return a.CharacterName < b.CharacterName
		}
		if a.CurrentTier != b.CurrentTier {
			return a.CurrentTier < b.CurrentTier
		}
		if a.QuestionIndex != b.QuestionIndex {
			return a.QuestionIndex < b.QuestionIndex
		}
		return a.SessionKey < b.SessionKey
	})

	result := make([]entities.QuestionAttempt, 0, len(keys))
	for _, k := range keys {
		q := entities.QuestionAttempt{
			QuestionAddress: k.QuestionAddress,
			CharacterName:   k.CharacterName,
			CurrentTier:     k.CurrentTier,
			QuestionIndex:   k.QuestionIndex,
			SessionKey:      k.SessionKey,
		}
		for _, e := range groups[k] {
			switch e.EventName {
			case "Question Started":
				q.QuestionStarted++
			case "Question Completed":
				q.AnsweredCorrect++
				if e.AnsweredWrong != nil {
					q.AnsweredWrong += *e.AnsweredWrong
				}
			case "Ad Rewarded":
				q.AdsWatched++
			case "Menu Opened":
				if e.MenuName == "Scroll Menu" {
					q.ScrollOpened++
				}
			}
			switch e.ShopConsumableItem {
			case "Potion":
				q.PotionsBought++
			case "Incense":
				q.IncenseBought++
			case "Amulet":
				q.AmuletBought++
			}
			switch e.SpentTo {
			case "AliCin":
				q.AliCinUsed++
			case "Coffee":
				q.CoffeeUsed++
			case "Cauldron":
				q.CauldronUsed++
			}
		}

		started := float64(q.QuestionStarted)
		q.WrongAnswerRatio = utils.SafeRatio(q.AnsweredWrong, started)
		q.AdsWatchRatio = utils.SafeRatio(float64(q.AdsWatched), started)
		q.AliCinUseRatio = utils.SafeRatio(float64(q.AliCinUsed), started)
		q.CoffeeUseRatio = utils.SafeRatio(float64(q.CoffeeUsed), started)
		q.CauldronUseRatio = utils.SafeRatio(float64(q.CauldronUsed), started)
		q.ScrollUseRatio = utils.SafeRatio(float64(q.ScrollOpened), started)

		result = append(result, q)
	}

	log.Printf("✅ by_questions created with %d records", len(result))
	return result
}
