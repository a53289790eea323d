package pipeline

// Display-name maps for raw telemetry values. This file is a data asset:
// the maps feed the generic ApplyValueMaps pass and contain no logic.

var eventNameMap = map[string]string{
	"ad_clicked":            "Ad Clicked",
	"app_remove":            "App Removed",
	"first_open":            "First Open",
	"menu_closed":           "Menu Closed",
	"menu_opened":           "Menu Opened",
	"screen_view":           "Screen Viewed",
	"ad_impression":         "Ad Impression",
	"session_start":         "Session Started",
	"app_clear_data":        "App Data Cleared",
	"user_engagement":       "User Engagement",
	"question_started":      "Question Started",
	"mini_game_started":     "Mini-game Started",
	"question_completed":    "Question Completed",
	"mini_game_completed":   "Mini-game Completed",
	"earn_virtual_currency": "Earned Virtual Currency",
	"spend_virtual_currency": "Spent Virtual Currency",
	"mini_game_failed":      "Mini-game Failed",
	"app_exception":         "App Exception",
	"app_update":            "App Updated",
	"ad_loaded":             "Ad Loaded",
	"ad_load_failed":        "Ad Load Failed",
	"game_ended":            "Game Ended",
	"start_currencies":      "Starting Currencies",
	"video_watched":         "Video Watched",
	"ad_rewarded":           "Ad Rewarded",
	"ad_displayed":          "Ad Displayed",
	"ad_closed":             "Ad Closed",
	"firebase_campaign":     "Firebase Campaign",
}

var miniGameRIMap = map[string]string{
	"stone_game":    "Stone Game",
	"cauldron_game": "Cauldron Game",
	"coffee_game":   "Coffee Game",
	"card_game":     "Card Game",
	"daily_spin":    "Daily Spin",
	"completed":     "Completed",
	"failed":        "Failed",
	"gold_500":      "Gold 500",
}

var menuNameMap = map[string]string{
	"Scroll Menu":            "Scroll Menu",
	"crystal_menu":           "Crystal Menu",
	"crystal_aliginn_menu":   "Crystal Alignin Menu",
	"wanna_play_menu":        "Wanna Play Menu",
	"shop_menu":              "Shop Menu",
	"board_menu":             "Board Menu",
	"crystal_character_menu": "Crystal Character Menu",
	"energy_gold_exchange":   "Energy Gold Exchange",
	"crystal_cauldron_menu":  "Crystal Cauldron Menu",
	"crystal_energy_menu":    "Crystal Energy Menu",
	"crystal_coffee_menu":    "Crystal Coffee Menu",
	"wheel_of_fortune":       "Wheel of Fortune",
	"scroll_menu":            "Scroll Menu",
}

var characterNameMap = map[string]string{
	"aturtle":     "A Turtle",
	"littlea":     "Little A",
	"sinnct":      "Sinnct",
	"obviousjoe":  "Obvious Joe",
	"erjohn":      "ER John",
	"billy":       "Billy",
	"maydenis":    "Maydenis",
	"almiralotus": "Almira Lotus",
	"t":           "T",
	"mrspearl":    "Mrs. Pearl",
	"therock":     "The Rock",
	"army":        "Army",
	"ladydodo":    "Lady Dodo",
	"dlion":       "D Lion",
	"frenchie":    "Frenchie",
	"mi":          "Mi",
	"biga":        "Big A",
	"cjay":        "C Jay",
	"mo":          "Mo",
	"mryogurt":    "Mr. Yogurt",
	"crystalraw":  "Crystal Raw",
	"aisha":       "Aisha",
	"mustafa":     "Mustafa",
	"fathergold":  "Father Gold",
	"tracy":       "Tracy",
	"whymargaret": "Why Margaret",
	"suedoluni":   "Sue Doluni",
	"joe":         "Obvious Joe",
}

var miniGameNameMap = map[string]string{
	"stone_mini_game":    "Stone Game",
	"cauldron_mini_game": "Cauldron Game",
	"star_mini_game":     "Star Game",
	"maze_mini_game":     "Maze Game",
	"coffee_mini_game":   "Coffee Game",
	"card_mini_game":     "Card Game",
	"wheel_of_fortune":   "Wheel of Fortune",
	"voodoo_mini_game":   "Voodoo Game",
	"catch_up_cauldron":  "Catch Up Cauldron",
	"catch_up_coffee":    "Catch Up Coffee",
}

var whereItsEarnedMap = map[string]string{
	"mini_game":            "Mini-game",
	"question":             "Question",
	"wanna_play":           "Wanna Play",
	"energy_gold_exchange": "Energy Gold Exchange",
}

var currencyNameMap = map[string]string{
	"gold":   "Gold",
	"energy": "Energy",
}

var howItsEarnedMap = map[string]string{
	"combo":               "Combo",
	"normal":              "Normal",
	"mini_game_completed": "Mini-game Completed",
	"star_mini_game":      "Star Game",
	"CauldronMiniGame":    "Cauldron Game",
	"CoffeeMiniGame":      "Coffee Game",
	"card_mini_game":      "Card Game",
	"maze_mini_game":      "Maze Game",
	"mini_game_failed":    "Mini-game Failed",
}

var whereItsSpentMap = map[string]string{
	"shop":    "Shop",
	"board":   "Board",
	"crystal": "Crystal",
}

var adShownWhereMap = map[string]string{
	"crystal_character_ad":  "Crystal Character",
	"crystal_energy_ad":     "Crystal Energy",
	"wheel_of_fortune_ad":   "Wheel of Fortune",
	"ad_shown_where":        "ADSHOWNWHERE",
	"wanna_play_ad":         "Wanna Play",
	"EnergyGoldExchangeAd":  "Energy Gold Exchange",
}

var spentToMap = map[string]string{
	"cauldron_item": "Cauldron",
	"aliginn_item":  "AliCin",
	"coffee_item":   "Coffee",
}

var shopConsumableItemMap = map[string]string{
	"potion":  "Potion",
	"incense": "Incense",
	"amulet":  "Amulet",
	"ıncense": "Incense",
}

var shopPermanentItemMap = map[string]string{
	"dreamcatcher": "Dreamcatcher",
	"catcollar":    "Cat Collar",
	"library1":     "Library 1",
	"library2":     "Library 2",
	"bugspray":     "Bug Spray",
	"schedule":     "Schedule",
	"crystal":      "Crystal",
	"horseshoe":    "Horseshoe",
}

var weekdayMap = map[string]string{
	"Monday":    "Pazartesi",
	"Tuesday":   "Salı",
	"Wednesday": "Çarşamba",
	"Thursday":  "Perşembe",
	"Friday":    "Cuma",
	"Saturday":  "Cumartesi",
	"Sunday":    "Pazar",
}

// ValueMaps returns the value-map table in application order.
func ValueMaps() []ValueMapEntry {
	return []ValueMapEntry{
		{"event_name", eventNameMap},
		{"mini_game_ri", miniGameRIMap},
		{"menu_name", menuNameMap},
		{"character_name", characterNameMap},
		{"mini_game_name", miniGameNameMap},
		{"where_its_earned", whereItsEarnedMap},
		{"currency_name", currencyNameMap},
		{"how_its_earned", howItsEarnedMap},
		{"where_its_spent", whereItsSpentMap},
		{"ad_shown_where", adShownWhereMap},
		{"doll_name", characterNameMap},
		{"spent_to", spentToMap},
		{"shop_consumable_item", shopConsumableItemMap},
		{"shop_permanent_item", shopPermanentItemMap},
		{"ts_weekday", weekdayMap},
	}
}
