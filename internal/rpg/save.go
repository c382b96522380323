package rpg

import (
	"fmt"

	"github.com/san-kum/artcade/internal/store"
)

// SaveData is the JSON shape of one save slot.
type SaveData struct {
	Character *Character        `json:"character"`
	Inventory map[string]int    `json:"inventory"`
	Active    map[string]*Quest `json:"active_quests"`
	Completed map[string]*Quest `json:"completed_quests"`
	Clock     float64           `json:"game_time"`
	Day       int               `json:"day"`
}

// Snapshot captures the playthrough for saving.
func (g *Game) Snapshot() SaveData {
	return SaveData{
		Character: g.Character,
		Inventory: g.Inventory,
		Active:    g.Active,
		Completed: g.Completed,
		Clock:     g.Clock,
		Day:       g.Day,
	}
}

// Restore rebuilds a playthrough from a save.
func Restore(d SaveData) (*Game, error) {
	if d.Character == nil {
		return nil, fmt.Errorf("save has no character")
	}
	g := &Game{
		Character: d.Character,
		Inventory: d.Inventory,
		Active:    d.Active,
		Completed: d.Completed,
		Clock:     d.Clock,
		Day:       d.Day,
	}
	if g.Inventory == nil {
		g.Inventory = map[string]int{}
	}
	if g.Active == nil {
		g.Active = map[string]*Quest{}
	}
	if g.Completed == nil {
		g.Completed = map[string]*Quest{}
	}
	g.Character.Recalculate()
	return g, nil
}

// Save writes the playthrough to a slot.
func (g *Game) Save(st *store.Store, slot int) error {
	return st.Save(slot, g.Snapshot())
}

// Load reads a playthrough from a slot.
func Load(st *store.Store, slot int) (*Game, error) {
	var d SaveData
	if err := st.Load(slot, &d); err != nil {
		return nil, err
	}
	return Restore(d)
}
