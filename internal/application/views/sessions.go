package views

import (
	"log"
	"sort"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"github.com/nocsaren/emoji-oracle-analytics/internal/utils"
)

// minSessionSeconds filters out bounce sessions; anything at or under 15
// seconds is noise for session-level analysis.
const minSessionSeconds = 15.0

// CreateBySessions builds the per-session summary view. Only sessions with
// a valid window longer than the bounce threshold are summarized (a NaN
// duration never passes the comparison).
func CreateBySessions(rows []*entities.Event) []entities.SessionSummary {
	kept := make([]*entities.Event, 0, len(rows))
	for _, e := range rows {
		if e.SessionDurationSeconds > minSessionSeconds {
			kept = append(kept, e)
		}
	}
	groups := groupBySession(kept)
	if len(groups) == 0 {
		log.Printf("⚠️ by_sessions: no sessions above %.0fs threshold", minSessionSeconds)
		return []entities.SessionSummary{}
	}

	result := make([]entities.SessionSummary, 0, len(groups))
	for _, id := range sortedSessionIDs(groups) {
		group := groups[id]
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].EventTimestamp != group[j].EventTimestamp {
				return group[i].EventTimestamp < group[j].EventTimestamp
			}
			return group[i].RowID < group[j].RowID
		})

		s := entities.SessionSummary{
			SessionKey:             id.SessionKey,
			UserID:                 id.UserID,
			SessionDurationSeconds: utils.Round(group[0].SessionDurationSeconds, 2),
			CharacterList:          []string{},
		}
		s.Passed10Min = s.SessionDurationSeconds >= 600

		var (
			tierSum, tierN   float64
			wrongSum, wrongN float64
			characters       = map[string]bool{}
		)
		for _, e := range group {
			switch e.EventName {
			case "Session Started":
				if s.SessionStartTime.IsZero() || e.EventDatetime.Before(s.SessionStartTime) {
					s.SessionStartTime = e.EventDatetime
				}
			case "Question Started":
				if e.CharacterName != "" {
					characters[e.CharacterName] = true
					s.CharacterList = append(s.CharacterList, e.CharacterName)
				}
				if e.CurrentTier != nil {
					tierSum += float64(*e.CurrentTier)
					tierN++
				}
			case "Question Completed":
				if e.AnsweredWrong != nil {
					wrongSum += *e.AnsweredWrong
					wrongN++
				}
			case "Ad Rewarded":
				s.AdsWatchedCount++
			case "Starting Currencies":
				if gold, ok := e.Params["gold"]; ok {
					if f, isNum := asFloat(gold); isNum {
						s.GoldStarting += f
					}
				}
			case "Earned Virtual Currency":
				if e.CurrencyName == "Gold" {
					s.GoldGained += e.EarnedAmount
				}
			case "Spent Virtual Currency":
				if e.CurrencyName == "Gold" {
					s.GoldSpent += e.SpentAmount
				}
			}

			switch e.MiniGameRI {
			case "Daily Spin":
				s.WheelImpressions++
			case "spin_skipped":
				s.WheelSkips++
			}

			if e.SpentTo == "Consumable Item" {
				switch e.ShopConsumableItem {
				case "Potion":
					s.PotionsBought++
				case "Incense":
					s.IncensesBought++
				case "Amulet":
					s.AmuletsBought++
				}
			}
			switch e.SpentTo {
			case "AliCin":
				s.AliCinUsed++
			case "Cauldron":
				s.CauldronUsed++
			case "Coffee":
				s.CoffeeUsed++
			}
		}

		s.CustomerCharacterCount = len(characters)
		s.BoughtNewCustomer = s.CustomerCharacterCount / 3
		s.WheelSpins = s.WheelImpressions - s.WheelSkips
		if tierN > 0 {
			s.AverageTier = utils.Round(tierSum/tierN, 3)
		}
		if wrongN > 0 {
			s.AverageWrongAnswers = utils.Round(wrongSum/wrongN, 3)
		}
		s.GoldDelta = s.GoldGained - s.GoldSpent
		s.IsDebtedForDoll = s.GoldSpent > s.GoldStarting+s.GoldGained && s.GoldSpent >= 2000

		last := lastMeaningfulEvent(group, sessionSkipEvents)
		s.LastEventName = last.EventName
		s.LastEventTime = last.EventDatetime

		result = append(result, s)
	}

	log.Printf("✅ by_sessions created with %d records", len(result))
	return result
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	}
	return 0, false
}
