package rpg

type Quest struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Objectives     []string        `json:"objectives"`
	Done           []bool          `json:"completed_objectives"`
	RewardGold     int             `json:"reward_gold"`
	RewardXP       int             `json:"reward_experience"`
	RewardItems    []string        `json:"reward_items"`
	FactionRewards map[Faction]int `json:"faction_rewards"`
	Completed      bool            `json:"completed"`
}

// AllDone reports whether every objective is ticked.
func (q *Quest) AllDone() bool {
	for _, d := range q.Done {
		if !d {
			return false
		}
	}
	return true
}

// NewQuest returns a fresh copy of a catalog quest, or nil for an
// unknown id.
func NewQuest(id string) *Quest {
	tpl, ok := questCatalog[id]
	if !ok {
		return nil
	}
	q := tpl
	q.Done = make([]bool, len(tpl.Objectives))
	return &q
}

var questCatalog = map[string]Quest{
	"royal_mission": {
		ID:          "royal_mission",
		Title:       "The King's Request",
		Description: "King Aldric has asked you to retrieve the stolen royal seal.",
		Objectives:  []string{"Find the royal seal", "Return to King Aldric"},
		RewardGold:  500,
		RewardXP:    200,
		RewardItems: []string{"power_ring"},
		FactionRewards: map[Faction]int{
			RoyalCourt: 20,
		},
	},
	"temple_blessing": {
		ID:          "temple_blessing",
		Title:       "Temple of Light",
		Description: "Priest Marcus wants you to prove your devotion to the Order of Light.",
		Objectives:  []string{"Pray at the altar", "Donate 100 gold", "Complete a good deed"},
		RewardXP:    100,
		RewardItems: []string{"health_amulet"},
		FactionRewards: map[Faction]int{
			RoyalCourt: 5,
		},
	},
	"liberation_mission": {
		ID:          "liberation_mission",
		Title:       "Fight for Freedom",
		Description: "Sarah wants you to help liberate the oppressed villages.",
		Objectives:  []string{"Free the village of Millhaven", "Recruit 5 supporters", "Deliver supplies"},
		RewardGold:  300,
		RewardXP:    300,
		RewardItems: []string{"silver_dagger"},
		FactionRewards: map[Faction]int{
			Rebels:     30,
			RoyalCourt: -10,
		},
	},
	"lost_tome": {
		ID:          "lost_tome",
		Title:       "The Lost Tome",
		Description: "Scholar Edwin seeks an ancient tome lost in the dark forests.",
		Objectives:  []string{"Search the Dark Forest", "Defeat the guardian", "Return the tome"},
		RewardGold:  200,
		RewardXP:    250,
		RewardItems: []string{"magic_staff"},
		FactionRewards: map[Faction]int{
			Scholars: 25,
		},
	},
}
