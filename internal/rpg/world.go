package rpg

type NPC struct {
	Name     string
	Dialogue []string
	Shop     []string // item ids for sale
	Quests   []string // quest ids offered
	Faction  Faction
	Religion Religion
}

var NPCs = map[string]NPC{
	"king_aldric": {
		Name:     "King Aldric",
		Dialogue: []string{"Welcome to my kingdom, brave adventurer.", "The realm faces dark times ahead.", "Serve the crown well and be rewarded."},
		Faction:  RoyalCourt,
		Quests:   []string{"royal_mission"},
	},
	"merchant_tomas": {
		Name:     "Merchant Tomas",
		Dialogue: []string{"Welcome to my shop!", "I have the finest goods in the kingdom!", "Gold speaks louder than words."},
		Shop:     []string{"iron_sword", "leather_armor", "health_potion", "mana_potion"},
		Faction:  Merchants,
	},
	"priest_marcus": {
		Name:     "Priest Marcus",
		Dialogue: []string{"The Light guides us all.", "Seek wisdom in prayer.", "May the gods bless your journey."},
		Religion: OrderOfLight,
		Quests:   []string{"temple_blessing"},
	},
	"rebel_sarah": {
		Name:     "Sarah the Rebel",
		Dialogue: []string{"The king's tyranny must end!", "Join our cause for freedom!", "The people deserve better."},
		Faction:  Rebels,
		Quests:   []string{"liberation_mission"},
	},
	"scholar_edwin": {
		Name:     "Scholar Edwin",
		Dialogue: []string{"Knowledge is the greatest power.", "I seek ancient wisdom.", "Books hold secrets untold."},
		Faction:  Scholars,
		Quests:   []string{"lost_tome"},
	},
	"blacksmith_gareth": {
		Name:     "Blacksmith Gareth",
		Dialogue: []string{"I forge the finest weapons!", "Bring me materials and gold.", "A warrior needs good steel."},
		Shop:     []string{"steel_sword", "chain_mail", "iron_shield"},
	},
}

type Location struct {
	Name        string
	Description string
	NPCs        []string
	Connections []string
	Enemies     []string
}

var Locations = map[string]Location{
	"royal_city": {
		Name:        "Royal City of Valdris",
		Description: "The capital city, seat of power",
		NPCs:        []string{"king_aldric", "merchant_tomas", "priest_marcus"},
		Connections: []string{"dark_forest", "mountain_pass", "coastal_village"},
	},
	"dark_forest": {
		Name:        "Dark Forest",
		Description: "A mysterious forest filled with ancient secrets",
		Connections: []string{"royal_city", "abandoned_ruins"},
		Enemies:     []string{"shadow_wolf", "dark_mage"},
	},
	"mountain_pass": {
		Name:        "Mountain Pass",
		Description: "A treacherous mountain path",
		NPCs:        []string{"scholar_edwin"},
		Connections: []string{"royal_city", "dwarven_mines"},
		Enemies:     []string{"mountain_troll"},
	},
	"coastal_village": {
		Name:        "Coastal Village",
		Description: "A peaceful fishing village",
		NPCs:        []string{"rebel_sarah", "blacksmith_gareth"},
		Connections: []string{"royal_city", "pirate_cove"},
	},
	"abandoned_ruins": {
		Name:        "Abandoned Ruins",
		Description: "Crumbling stones of a forgotten age",
		Connections: []string{"dark_forest"},
		Enemies:     []string{"dark_mage", "bone_knight"},
	},
	"dwarven_mines": {
		Name:        "Dwarven Mines",
		Description: "Echoing tunnels rich with ore",
		Connections: []string{"mountain_pass"},
		Enemies:     []string{"mountain_troll", "cave_bat"},
	},
	"pirate_cove": {
		Name:        "Pirate Cove",
		Description: "A smuggler's haven on the rocky coast",
		Connections: []string{"coastal_village"},
		Enemies:     []string{"pirate_cutthroat"},
	},
}

// Connected reports whether dst is directly reachable from src.
func Connected(src, dst string) bool {
	loc, ok := Locations[src]
	if !ok {
		return false
	}
	for _, c := range loc.Connections {
		if c == dst {
			return true
		}
	}
	return false
}
