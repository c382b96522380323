package rpg

import (
	"fmt"
	"image/color"
	"math/rand"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/artcade/internal/engine"
	"github.com/san-kum/artcade/internal/store"
)

type screen int

const (
	screenMainMenu screen = iota
	screenCreation
	screenWorld
	screenSheet
	screenInventory
	screenQuests
	screenDialogue
	screenShop
	screenCombat
	screenSlots
)

var (
	uiDark   = color.RGBA{18, 14, 24, 255}
	uiPanel  = color.RGBA{30, 24, 40, 230}
	uiBorder = color.RGBA{110, 90, 150, 255}
	uiGold   = color.RGBA{240, 200, 90, 255}
	uiText   = color.RGBA{210, 200, 220, 255}
	uiDim    = color.RGBA{120, 110, 135, 255}
	uiHP     = color.RGBA{200, 60, 60, 255}
	uiMana   = color.RGBA{70, 110, 230, 255}
	uiXP     = color.RGBA{90, 200, 120, 255}
	uiBad    = color.RGBA{255, 90, 70, 255}
)

// Scene hosts the RPG inside the launcher frame loop.
type Scene struct {
	st  *store.Store
	rng *rand.Rand

	screen screen
	game   *Game

	sel       int
	class     Class
	combat    *Combat
	npcID     string
	dialogIdx int
	slotMode  string // "save" or "load"
	notice    string
	noticeTTL float64
}

// NewScene starts at the main menu. With slot > 0 it loads that save
// and drops straight onto the world map.
func NewScene(st *store.Store, slot int) *Scene {
	s := &Scene{st: st}
	if slot > 0 {
		if g, err := Load(st, slot); err == nil {
			s.game = g
			s.screen = screenWorld
		} else {
			s.say(fmt.Sprintf("load failed: %v", err))
		}
	}
	return s
}

func (s *Scene) Name() string { return "rpg" }

func (s *Scene) Reset(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(seed))
}

func (s *Scene) say(msg string) {
	s.notice = msg
	s.noticeTTL = 3
}

func (s *Scene) Step(dt float64) {
	if s.game != nil && s.screen != screenMainMenu {
		s.game.Tick(dt)
	}
	if s.noticeTTL > 0 {
		s.noticeTTL -= dt
	}
}

// key edge helpers
func pressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (s *Scene) HandleInput() {
	switch s.screen {
	case screenMainMenu:
		s.inputMainMenu()
	case screenCreation:
		s.inputCreation()
	case screenWorld:
		s.inputWorld()
	case screenSheet, screenQuests:
		if pressed(ebiten.KeyX) || pressed(ebiten.KeyEnter) {
			s.screen = screenWorld
		}
	case screenInventory:
		s.inputInventory()
	case screenDialogue:
		s.inputDialogue()
	case screenShop:
		s.inputShop()
	case screenCombat:
		s.inputCombat()
	case screenSlots:
		s.inputSlots()
	}
}

func (s *Scene) menuMove(n int) {
	if n == 0 {
		return
	}
	if pressed(ebiten.KeyDown) || pressed(ebiten.KeyJ) {
		s.sel = (s.sel + 1) % n
	}
	if pressed(ebiten.KeyUp) || pressed(ebiten.KeyK) {
		s.sel = (s.sel - 1 + n) % n
	}
	if s.sel >= n {
		s.sel = 0
	}
}

func (s *Scene) inputMainMenu() {
	s.menuMove(2)
	if pressed(ebiten.KeyEnter) {
		if s.sel == 0 {
			s.class = Warrior
			s.screen = screenCreation
		} else {
			s.slotMode = "load"
			s.sel = 0
			s.screen = screenSlots
		}
	}
}

func (s *Scene) inputCreation() {
	if pressed(ebiten.KeyRight) || pressed(ebiten.KeyL) {
		s.class = Class((int(s.class) + 1) % ClassCount())
	}
	if pressed(ebiten.KeyLeft) || pressed(ebiten.KeyH) {
		s.class = Class((int(s.class) - 1 + ClassCount()) % ClassCount())
	}
	if pressed(ebiten.KeyEnter) {
		s.game = NewGame("Hero", s.class)
		s.sel = 0
		s.screen = screenWorld
		s.say("Welcome to the Dark Ages, " + s.class.String())
	}
	if pressed(ebiten.KeyX) {
		s.screen = screenMainMenu
	}
}

// worldEntries lists the NPCs then the travel connections of the
// current location, in menu order.
func (s *Scene) worldEntries() (npcs, conns []string) {
	loc := Locations[s.game.Character.Location]
	return loc.NPCs, loc.Connections
}

func (s *Scene) inputWorld() {
	npcs, conns := s.worldEntries()
	total := len(npcs) + len(conns)
	s.menuMove(total)

	if pressed(ebiten.KeyEnter) && total > 0 {
		if s.sel < len(npcs) {
			s.npcID = npcs[s.sel]
			s.dialogIdx = 0
			s.screen = screenDialogue
		} else if err := s.game.Travel(conns[s.sel-len(npcs)]); err == nil {
			s.sel = 0
			s.maybeAmbush()
		}
	}
	if pressed(ebiten.KeyI) {
		s.sel = 0
		s.screen = screenInventory
	}
	if pressed(ebiten.KeyC) {
		s.screen = screenSheet
	}
	if pressed(ebiten.KeyQ) {
		s.screen = screenQuests
	}
	if pressed(ebiten.KeyE) {
		s.startHunt()
	}
	if pressed(ebiten.KeyF5) {
		s.slotMode = "save"
		s.sel = 0
		s.screen = screenSlots
	}
	if pressed(ebiten.KeyF9) {
		s.slotMode = "load"
		s.sel = 0
		s.screen = screenSlots
	}
}

func (s *Scene) maybeAmbush() {
	loc := Locations[s.game.Character.Location]
	if len(loc.Enemies) > 0 && s.rng.Float64() < 0.35 {
		s.beginCombat(loc.Enemies[s.rng.Intn(len(loc.Enemies))])
		s.say("Ambushed!")
	}
}

func (s *Scene) startHunt() {
	loc := Locations[s.game.Character.Location]
	if len(loc.Enemies) == 0 {
		s.say("Nothing to fight here")
		return
	}
	s.beginCombat(loc.Enemies[s.rng.Intn(len(loc.Enemies))])
}

func (s *Scene) beginCombat(enemyID string) {
	s.combat = NewCombat(enemyID, s.rng)
	s.screen = screenCombat
}

func (s *Scene) inventoryIDs() []string {
	ids := make([]string, 0, len(s.game.Inventory))
	for id := range s.game.Inventory {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Scene) inputInventory() {
	ids := s.inventoryIDs()
	s.menuMove(len(ids))
	if pressed(ebiten.KeyEnter) && len(ids) > 0 {
		id := ids[s.sel]
		item := Items[id]
		switch item.Type {
		case Consumable:
			if !s.game.UseItem(id) {
				s.say("Cannot use " + item.Name)
			}
		case Weapon, Armor, Shield, Accessory:
			s.game.EquipItem(id)
		default:
			s.say(item.Name + " has no use here")
		}
	}
	if pressed(ebiten.KeyX) {
		s.screen = screenWorld
	}
}

func (s *Scene) inputDialogue() {
	npc := NPCs[s.npcID]
	if pressed(ebiten.KeyEnter) || pressed(ebiten.KeySpace) {
		s.dialogIdx++
		if s.dialogIdx >= len(npc.Dialogue) {
			s.dialogIdx = len(npc.Dialogue) - 1
		}
	}
	if pressed(ebiten.KeyY) && len(npc.Quests) > 0 {
		for _, q := range npc.Quests {
			if s.game.StartQuest(q) {
				s.say("Accepted: " + s.game.Active[q].Title)
				break
			}
		}
	}
	if pressed(ebiten.KeyB) && len(npc.Shop) > 0 {
		s.sel = 0
		s.screen = screenShop
	}
	if pressed(ebiten.KeyX) {
		s.screen = screenWorld
	}
}

func (s *Scene) inputShop() {
	npc := NPCs[s.npcID]
	s.menuMove(len(npc.Shop))
	if pressed(ebiten.KeyEnter) && len(npc.Shop) > 0 {
		if err := s.game.Buy(npc.Shop[s.sel]); err != nil {
			s.say(err.Error())
		}
	}
	if pressed(ebiten.KeyX) {
		s.screen = screenDialogue
	}
}

func (s *Scene) inputCombat() {
	c := s.combat
	if c.Outcome != Ongoing {
		if pressed(ebiten.KeyEnter) || pressed(ebiten.KeySpace) {
			if c.Outcome == Defeat {
				// wake up back in the capital, lighter and bruised
				ch := s.game.Character
				ch.Location = "royal_city"
				ch.Health = ch.MaxHealth / 2
				ch.Gold -= ch.Gold / 4
				s.say("You were carried back to Valdris")
			}
			s.combat = nil
			s.sel = 0
			s.screen = screenWorld
		}
		return
	}
	if pressed(ebiten.KeyA) {
		c.PlayerAttack(s.game)
	}
	if pressed(ebiten.KeyD) {
		c.Defend(s.game)
	}
	if pressed(ebiten.KeyF) {
		c.Flee(s.game)
	}
}

func (s *Scene) inputSlots() {
	s.menuMove(3)
	if pressed(ebiten.KeyEnter) {
		slot := s.sel + 1
		if s.slotMode == "save" {
			if err := s.game.Save(s.st, slot); err != nil {
				s.say(fmt.Sprintf("save failed: %v", err))
			} else {
				s.say(fmt.Sprintf("Saved to slot %d", slot))
			}
			s.screen = screenWorld
		} else {
			g, err := Load(s.st, slot)
			if err != nil {
				s.say(fmt.Sprintf("load failed: %v", err))
				return
			}
			s.game = g
			s.sel = 0
			s.screen = screenWorld
			s.say(fmt.Sprintf("Loaded slot %d", slot))
		}
	}
	if pressed(ebiten.KeyX) {
		if s.game == nil {
			s.screen = screenMainMenu
		} else {
			s.screen = screenWorld
		}
	}
}

// drawing

func panel(dst *ebiten.Image, x, y, w, h int, title string) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), uiPanel, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, uiBorder, false)
	if title != "" {
		engine.Text(dst, title, x+6, y+2, 1, uiGold)
	}
}

func bar(dst *ebiten.Image, x, y, w int, cur, max int, c color.RGBA) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), 8, color.RGBA{40, 40, 48, 255}, false)
	if max > 0 {
		frac := float32(cur) / float32(max)
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w)*frac, 8, c, false)
	}
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), 8, 1, uiBorder, false)
}

func (s *Scene) Draw(dst *ebiten.Image) {
	dst.Fill(uiDark)
	switch s.screen {
	case screenMainMenu:
		s.drawMainMenu(dst)
	case screenCreation:
		s.drawCreation(dst)
	case screenWorld:
		s.drawWorld(dst)
	case screenSheet:
		s.drawSheet(dst)
	case screenInventory:
		s.drawInventory(dst)
	case screenQuests:
		s.drawQuests(dst)
	case screenDialogue:
		s.drawDialogue(dst)
	case screenShop:
		s.drawShop(dst)
	case screenCombat:
		s.drawCombat(dst)
	case screenSlots:
		s.drawSlots(dst)
	}
	if s.noticeTTL > 0 {
		engine.Text(dst, s.notice, 10, engine.Height-36, 1, uiGold)
	}
}

func (s *Scene) drawMainMenu(dst *ebiten.Image) {
	engine.Text(dst, "DARK AGES", 150, 60, 2, uiGold)
	engine.Text(dst, "a kingdom in twilight", 168, 96, 1, uiDim)
	items := []string{"New Game", "Load Game"}
	for i, it := range items {
		c := uiText
		prefix := "  "
		if i == s.sel {
			c = uiGold
			prefix = "> "
		}
		engine.Text(dst, prefix+it, 200, 150+i*22, 1, c)
	}
}

func (s *Scene) drawCreation(dst *ebiten.Image) {
	panel(dst, 60, 40, 360, 230, "CHOOSE YOUR PATH")
	engine.Text(dst, "< "+s.class.String()+" >", 190, 80, 2, uiGold)
	st := classBonuses(s.class)
	lines := []string{
		fmt.Sprintf("STR %2d   INT %2d", st.Strength, st.Intelligence),
		fmt.Sprintf("DEX %2d   CON %2d", st.Dexterity, st.Constitution),
		fmt.Sprintf("WIS %2d   CHA %2d", st.Wisdom, st.Charisma),
		"",
		fmt.Sprintf("Health %d  Mana %d", 50+st.Constitution*10+20, 25+st.Intelligence*5+10),
	}
	for i, l := range lines {
		engine.Text(dst, l, 150, 130+i*18, 1, uiText)
	}
	engine.Text(dst, "LEFT/RIGHT class  ENTER begin  X back", 90, 244, 1, uiDim)
}

func (s *Scene) drawStatusStrip(dst *ebiten.Image) {
	ch := s.game.Character
	panel(dst, 0, 0, engine.Width, 34, "")
	engine.Text(dst, fmt.Sprintf("%s  Lv%d %s", ch.Name, ch.Level, ch.Class), 6, 2, 1, uiText)
	bar(dst, 200, 6, 80, ch.Health, ch.MaxHealth, uiHP)
	bar(dst, 200, 18, 80, ch.Mana, ch.MaxMana, uiMana)
	bar(dst, 290, 6, 80, ch.XP, ch.XPNeeded, uiXP)
	engine.Text(dst, fmt.Sprintf("%dg  Day %d", ch.Gold, s.game.Day), 380, 2, 1, uiGold)
}

func (s *Scene) drawWorld(dst *ebiten.Image) {
	s.drawStatusStrip(dst)
	loc := Locations[s.game.Character.Location]
	panel(dst, 8, 40, 290, 230, loc.Name)
	engine.Text(dst, loc.Description, 14, 60, 1, uiDim)

	npcs, conns := s.worldEntries()
	y := 86
	for i, id := range npcs {
		c, prefix := uiText, "  "
		if i == s.sel {
			c, prefix = uiGold, "> "
		}
		engine.Text(dst, prefix+"Talk: "+NPCs[id].Name, 14, y, 1, c)
		y += 18
	}
	for i, id := range conns {
		c, prefix := uiText, "  "
		if len(npcs)+i == s.sel {
			c, prefix = uiGold, "> "
		}
		name := id
		if l, ok := Locations[id]; ok {
			name = l.Name
		}
		engine.Text(dst, prefix+"Go: "+name, 14, y, 1, c)
		y += 18
	}
	if len(loc.Enemies) > 0 {
		engine.Text(dst, "[E] hunt enemies", 14, y+6, 1, uiBad)
	}

	panel(dst, 306, 40, 166, 230, "ACTIONS")
	for i, l := range []string{"[I] inventory", "[C] character", "[Q] quest log", "[F5] save", "[F9] load"} {
		engine.Text(dst, l, 312, 62+i*18, 1, uiDim)
	}
}

func (s *Scene) drawSheet(dst *ebiten.Image) {
	s.drawStatusStrip(dst)
	ch := s.game.Character
	panel(dst, 8, 40, 230, 260, "CHARACTER")
	st := ch.Stats
	lines := []string{
		fmt.Sprintf("STR %2d  INT %2d", st.Strength, st.Intelligence),
		fmt.Sprintf("DEX %2d  CON %2d", st.Dexterity, st.Constitution),
		fmt.Sprintf("WIS %2d  CHA %2d", st.Wisdom, st.Charisma),
		"",
		fmt.Sprintf("Attack  %d", s.game.TotalAttack()),
		fmt.Sprintf("Defense %d", s.game.TotalDefense()),
		"",
		"Weapon " + itemName(ch.Weapon),
		"Armor  " + itemName(ch.Armor),
		"Shield " + itemName(ch.Shield),
		"Trinket " + itemName(ch.Accessory),
	}
	for i, l := range lines {
		engine.Text(dst, l, 14, 62+i*17, 1, uiText)
	}

	panel(dst, 246, 40, 226, 260, "STANDING")
	y := 62
	for _, f := range AllFactions {
		engine.Text(dst, fmt.Sprintf("%-14s %+4d", f.Title(), ch.Reputation[f]), 252, y, 1, repColor(ch.Reputation[f]))
		y += 17
	}
	engine.Text(dst, "[X] back", 252, y+10, 1, uiDim)
}

func itemName(id string) string {
	if id == "" {
		return "-"
	}
	return Items[id].Name
}

func repColor(v int) color.RGBA {
	switch {
	case v > 10:
		return uiXP
	case v < -10:
		return uiBad
	default:
		return uiDim
	}
}

func (s *Scene) drawInventory(dst *ebiten.Image) {
	s.drawStatusStrip(dst)
	panel(dst, 8, 40, 464, 260, "INVENTORY")
	ids := s.inventoryIDs()
	if len(ids) == 0 {
		engine.Text(dst, "Empty pockets.", 14, 70, 1, uiDim)
	}
	y := 62
	for i, id := range ids {
		item := Items[id]
		c, prefix := uiText, "  "
		if i == s.sel {
			c, prefix = uiGold, "> "
		}
		equipped := ""
		ch := s.game.Character
		if id == ch.Weapon || id == ch.Armor || id == ch.Shield || id == ch.Accessory {
			equipped = " [E]"
		}
		engine.Text(dst, fmt.Sprintf("%s%-20s x%d%s", prefix, item.Name, s.game.Inventory[id], equipped), 14, y, 1, c)
		y += 17
	}
	if len(ids) > 0 && s.sel < len(ids) {
		engine.Text(dst, Items[ids[s.sel]].Description, 14, 276, 1, uiDim)
	}
	engine.Text(dst, "ENTER use/equip  [X] back", 290, 276, 1, uiDim)
}

func (s *Scene) drawQuests(dst *ebiten.Image) {
	s.drawStatusStrip(dst)
	panel(dst, 8, 40, 464, 260, "QUEST LOG")
	y := 62
	if len(s.game.Active) == 0 && len(s.game.Completed) == 0 {
		engine.Text(dst, "No quests yet. Talk to the people of the realm.", 14, y, 1, uiDim)
	}
	for _, id := range sortedQuestIDs(s.game.Active) {
		q := s.game.Active[id]
		engine.Text(dst, q.Title, 14, y, 1, uiGold)
		y += 16
		for i, obj := range q.Objectives {
			mark := "[ ]"
			if q.Done[i] {
				mark = "[x]"
			}
			engine.Text(dst, "  "+mark+" "+obj, 14, y, 1, uiText)
			y += 15
		}
		y += 6
	}
	for _, id := range sortedQuestIDs(s.game.Completed) {
		engine.Text(dst, s.game.Completed[id].Title+" (done)", 14, y, 1, uiDim)
		y += 16
	}
	engine.Text(dst, "[X] back", 410, 276, 1, uiDim)
}

func sortedQuestIDs(m map[string]*Quest) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Scene) drawDialogue(dst *ebiten.Image) {
	s.drawStatusStrip(dst)
	npc := NPCs[s.npcID]
	panel(dst, 8, 40, 464, 140, npc.Name)
	if s.dialogIdx < len(npc.Dialogue) {
		engine.Text(dst, "\""+npc.Dialogue[s.dialogIdx]+"\"", 14, 70, 1, uiText)
	}
	hints := "ENTER next  [X] leave"
	if len(npc.Quests) > 0 {
		hints = "[Y] accept quest  " + hints
	}
	if len(npc.Shop) > 0 {
		hints = "[B] browse wares  " + hints
	}
	engine.Text(dst, hints, 14, 160, 1, uiDim)
}

func (s *Scene) drawShop(dst *ebiten.Image) {
	s.drawStatusStrip(dst)
	npc := NPCs[s.npcID]
	panel(dst, 8, 40, 464, 240, npc.Name+" :: WARES")
	y := 62
	for i, id := range npc.Shop {
		item := Items[id]
		c, prefix := uiText, "  "
		if i == s.sel {
			c, prefix = uiGold, "> "
		}
		engine.Text(dst, fmt.Sprintf("%s%-20s %4dg", prefix, item.Name, item.Value), 14, y, 1, c)
		y += 17
	}
	engine.Text(dst, "ENTER buy  [X] back", 14, 258, 1, uiDim)
}

func (s *Scene) drawCombat(dst *ebiten.Image) {
	s.drawStatusStrip(dst)
	c := s.combat
	panel(dst, 8, 40, 464, 120, "COMBAT :: "+c.Enemy.Name)
	engine.Text(dst, c.Enemy.Name, 14, 64, 1, uiBad)
	bar(dst, 14, 82, 200, c.EnemyHealth, c.Enemy.Health, uiHP)
	engine.Text(dst, fmt.Sprintf("Turn %d", c.Turn), 400, 64, 1, uiDim)

	panel(dst, 8, 168, 300, 130, "BATTLE LOG")
	y := 190
	for _, l := range c.Log {
		engine.Text(dst, l, 14, y, 1, uiText)
		y += 14
	}

	panel(dst, 316, 168, 156, 130, "ACTIONS")
	switch c.Outcome {
	case Ongoing:
		for i, l := range []string{"[A] attack", "[D] defend", "[F] flee"} {
			engine.Text(dst, l, 322, 190+i*18, 1, uiText)
		}
	case Victory:
		engine.Text(dst, "VICTORY!", 322, 190, 1, uiXP)
		engine.Text(dst, "ENTER continue", 322, 210, 1, uiDim)
	case Defeat:
		engine.Text(dst, "DEFEATED...", 322, 190, 1, uiBad)
		engine.Text(dst, "ENTER continue", 322, 210, 1, uiDim)
	case Fled:
		engine.Text(dst, "Escaped.", 322, 190, 1, uiDim)
		engine.Text(dst, "ENTER continue", 322, 210, 1, uiDim)
	}
}

func (s *Scene) drawSlots(dst *ebiten.Image) {
	title := "LOAD GAME"
	if s.slotMode == "save" {
		title = "SAVE GAME"
	}
	panel(dst, 100, 60, 280, 180, title)

	slots, _ := s.st.List()
	bySlot := map[int]store.SlotInfo{}
	for _, si := range slots {
		bySlot[si.Slot] = si
	}
	for i := 0; i < 3; i++ {
		slot := i + 1
		label := fmt.Sprintf("Slot %d: empty", slot)
		if si, ok := bySlot[slot]; ok {
			label = fmt.Sprintf("Slot %d: %s", slot, si.SavedAt.Format("Jan 2 15:04"))
		}
		c, prefix := uiText, "  "
		if i == s.sel {
			c, prefix = uiGold, "> "
		}
		engine.Text(dst, prefix+label, 110, 96+i*24, 1, c)
	}
	engine.Text(dst, "ENTER confirm  [X] back", 110, 210, 1, uiDim)
}

func (s *Scene) StatusLine() string {
	if s.game == nil {
		return "a small kingdom, a long night"
	}
	loc := Locations[s.game.Character.Location]
	return fmt.Sprintf("%s  day %d  active quests %d", loc.Name, s.game.Day, len(s.game.Active))
}
