package pipeline

import (
	"regexp"
	"strings"

	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
)

// Mini-game result tokens encode compound information in underscore-joined
// positions, e.g. "maze_hand_WomanHandTwo_maze_level_3" or
// "buff_IncreaseXEnergy_gift_True_gold_False". The format is owned by the
// game client; a token that doesn't match a known shape passes through with
// no extracted sub-fields.
var mazeHandPattern = regexp.MustCompile(`^(Woman|Man)Hand(\w+)$`)

func decodeMazeToken(e *entities.Event) {
	parts := strings.Split(e.MiniGameRI, "_")
	if len(parts) < 6 {
		return
	}
	m := mazeHandPattern.FindStringSubmatch(parts[2])
	if m == nil {
		return
	}
	e.MazeGender = m[1]
	e.MazeHand = m[2]
	e.MazeLevel = parts[5]
}

func decodeBuffToken(e *entities.Event) {
	parts := strings.Split(e.MiniGameRI, "_")
	if len(parts) < 6 {
		return
	}
	e.BuffType = parts[1]
	gift := strings.EqualFold(parts[3], "true")
	gold := strings.EqualFold(parts[5], "true")
	e.BuffGift = &gift
	e.BuffGold = &gold
}

func decodeEarnedBuffToken(e *entities.Event) {
	parts := strings.Split(e.MiniGameRI, "_")
	if len(parts) < 3 {
		return
	}
	e.EarnedBuffType = parts[2]
}

// MiniGameTokens decodes the compound mini-game result tokens and the
// doll-purchase spent_to values into typed sub-fields.
func MiniGameTokens(rc *RunContext, rows []*entities.Event) ([]*entities.Event, []string, error) {
	for _, e := range rows {
		switch {
		case strings.HasPrefix(e.MiniGameRI, "maze_hand"):
			decodeMazeToken(e)
		case strings.HasPrefix(e.MiniGameRI, "earned_buff"):
			decodeEarnedBuffToken(e)
		case strings.HasPrefix(e.MiniGameRI, "buff"):
			decodeBuffToken(e)
		}

		// Doll purchases encode the character under "<name>doll".
		if strings.Contains(e.SpentTo, "doll") {
			e.DollName = strings.TrimSpace(strings.SplitN(e.SpentTo, "doll", 2)[0])
			e.SpentTo = "Doll"
		}
	}
	return rows, nil, nil
}

var permanentShopItems = []string{
	"dreamcatcher", "catcollar", "library1", "library2",
	"bugspray", "schedule", "crystal", "horseshoe",
}

// "ıncense" is a real upstream value (dotless ı), not a typo to fix here.
var consumableShopItems = []string{"potion", "ıncense", "amulet", "incense"}

func firstContained(value string, items []string) string {
	for _, item := range items {
		if strings.Contains(value, item) {
			return item
		}
	}
	return ""
}

// CurrencyCategories classifies the spent_to destinations into permanent,
// consumable and board shop items plus keys, lifting the concrete item into
// its own field and leaving a category label in spent_to.
func CurrencyCategories(rc *RunContext, rows []*entities.Event) ([]*entities.Event, []string, error) {
	for _, e := range rows {
		if item := firstContained(e.SpentTo, permanentShopItems); item != "" {
			e.ShopPermanentItem = item
			e.SpentTo = "Permanent Item"
			continue
		}
		if item := firstContained(e.SpentTo, consumableShopItems); item != "" {
			e.ShopConsumableItem = item
			e.SpentTo = "Consumable Item"
			continue
		}

		switch e.SpentTo {
		case "Doll", "Crystal Ball", "Permanent Item", "Consumable Item":
		case "key":
			e.SpentTo = "Key"
		default:
			if e.WhereItsSpent == "board" || e.WhereItsSpent == "board_item" {
				if e.SpentTo != "" {
					e.BoardItem = e.SpentTo
					e.SpentTo = "Board Item"
				}
			}
		}
	}
	return rows, nil, nil
}
