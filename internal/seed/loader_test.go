package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/wolfbot/internal/domain/catalog"
	"github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	"github.com/KirkDiggler/wolfbot/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newObservedLoader() (*seed.Loader, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.WarnLevel)
	return seed.NewLoader(&seed.LoaderConfig{Logger: zap.New(core)}), logs
}

func TestReadResourceDefinitionsFile(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "resources.csv", "\ufeffresource_name,resource_max,is_commodity,is_perishable,emoji_text\n"+
		"gold,,True,False,:coin:\n"+
		"food,10,true,TRUE,\n"+
		"broken,abc,true,false,\n"+
		"short,1\n")

	loader, logs := newObservedLoader()
	defs, err := loader.ReadResourceDefinitionsFile(path)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, "gold", defs[0].Name)
	assert.Equal(t, catalog.Unbounded, defs[0].Max)
	assert.True(t, defs[0].IsCommodity)
	assert.False(t, defs[0].IsPerishable)
	require.NotNil(t, defs[0].EmojiText)
	assert.Equal(t, ":coin:", *defs[0].EmojiText)

	assert.Equal(t, 10, defs[1].Max)
	assert.True(t, defs[1].IsPerishable)
	assert.Nil(t, defs[1].EmojiText)

	assert.Equal(t, 2, logs.FilterMessage("skipping malformed seed row").Len())
}

func TestReadFile_Missing(t *testing.T) {
	loader := seed.NewLoader(nil)

	_, err := loader.ReadSkillsFile(filepath.Join(t.TempDir(), "nope.csv"))

	require.Error(t, err)
	assert.True(t, apperr.IsPersistence(err))
}

func TestReadFile_HeaderOnly(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "skills.csv", "skill_name,skill_req,skill_restrict,skill_desc,modifies_attributes\n")

	skills, err := seed.NewLoader(nil).ReadSkillsFile(path)

	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestReadSkillsAndStatusModifiers(t *testing.T) {
	dir := t.TempDir()
	skillsPath := writeCSV(t, dir, "skills.csv", "skill_name,skill_req,skill_restrict,skill_desc,modifies_attributes\n"+
		"Brawler,,,Hits hard,strength:2;speed:-1\n")
	modsPath := writeCSV(t, dir, "mods.csv", "modifier_type,modifier_name,modifier_desc,modifier_duration,modifier_stacks,modifies_attributes\n"+
		"Buff,Blessed,Feels good,3,,luck:1\n")

	loader := seed.NewLoader(nil)
	skills, err := loader.ReadSkillsFile(skillsPath)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Nil(t, skills[0].Requirement)
	assert.Equal(t, []catalog.AttributeModifier{
		{AttributeName: "strength", Modification: 2},
		{AttributeName: "speed", Modification: -1},
	}, skills[0].AttributeModifiers)

	mods, err := loader.ReadStatusModifiersFile(modsPath)
	require.NoError(t, err)
	require.Len(t, mods, 1)
	assert.Equal(t, 3, mods[0].Duration)
	assert.Equal(t, catalog.Unbounded, mods[0].Stacks)
}

func TestReadActionsAndItems(t *testing.T) {
	dir := t.TempDir()
	actionsPath := writeCSV(t, dir, "actions.csv",
		"action_name,action_type,action_timing,action_costs,action_uses,action_classes,action_level_req,action_priority,action_desc\n"+
			"Scout,Info,Night,gold:5;wood:2,3,Ranger;Rogue,1,10,Look around\n"+
			"Rest,,,,,,,,Sleep\n")
	itemsPath := writeCSV(t, dir, "items.csv",
		"item_name,item_type,item_subtype,item_rarity,item_properties,item_desc,is_equipped,action_name\n"+
			"Spyglass,Tool,,Rare,,See far,False,Scout\n"+
			"Stick,Weapon,,,,,,Unknown\n")

	loader, logs := newObservedLoader()
	actions, err := loader.ReadActionsFile(actionsPath)
	require.NoError(t, err)
	require.Len(t, actions, 2)

	scout := actions[0]
	assert.Equal(t, []catalog.ResourceCost{
		{ResourceName: "gold", Amount: 5},
		{ResourceName: "wood", Amount: 2},
	}, scout.Costs)
	assert.Equal(t, 3, scout.Uses)
	assert.Equal(t, []string{"Ranger", "Rogue"}, scout.Classes)
	require.NotNil(t, scout.Priority)
	assert.Equal(t, 10, *scout.Priority)

	rest := actions[1]
	assert.True(t, rest.Unlimited())
	assert.Empty(t, rest.Costs)
	assert.Nil(t, rest.Priority)

	items, err := loader.ReadItemsFile(itemsPath, seed.MapActions(actions))
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].Action)
	assert.Equal(t, "Scout", items[0].Action.Name)
	assert.Nil(t, items[1].Action)
	assert.Equal(t, 1, logs.FilterMessage("item references an unknown action").Len())

	// bound actions are copies
	items[0].Action.Classes[0] = "changed"
	assert.Equal(t, "Ranger", actions[0].Classes[0])
}

func TestMapBy_FirstWins(t *testing.T) {
	m := seed.MapActions([]catalog.Action{
		{Name: "Scout", Description: "first"},
		{Name: "Scout", Description: "second"},
	})

	assert.Equal(t, "first", m["Scout"].Description)
}

func TestBuildGame(t *testing.T) {
	dir := t.TempDir()
	paths := seed.Paths{
		AttributeDefs: writeCSV(t, dir, "attributes.csv", "attribute_name,attribute_max,emoji_text\n"+
			"strength,5,\n"),
		ResourceDefs: writeCSV(t, dir, "resources.csv", "resource_name,resource_max,is_commodity,is_perishable,emoji_text\n"+
			"gold,,True,False,\n"+
			"food,10,True,True,\n"),
		ItemTypeDefs: writeCSV(t, dir, "item_types.csv", "item_type,is_equippable,max_equippable,emoji_text\n"+
			"Tool,True,1,\n"),
		ActionTypeDefs: writeCSV(t, dir, "action_types.csv", "action_type,emoji_text\n"+
			"Info,\n"),
		Skills: writeCSV(t, dir, "skills.csv", "skill_name,skill_req,skill_restrict,skill_desc,modifies_attributes\n"+
			"Brawler,,,Hits hard,strength:1\n"),
		StatusModifiers: writeCSV(t, dir, "mods.csv", "modifier_type,modifier_name,modifier_desc,modifier_duration,modifier_stacks,modifies_attributes\n"+
			"Buff,Blessed,,,,\n"),
		Actions: writeCSV(t, dir, "actions.csv", "action_name,action_type,action_timing,action_costs,action_uses,action_classes,action_level_req,action_priority,action_desc\n"+
			"Scout,Info,Night,gold:1,2,,,,Look\n"),
		Items: writeCSV(t, dir, "items.csv", "item_name,item_type,item_subtype,item_rarity,item_properties,item_desc,is_equipped,action_name\n"+
			"Spyglass,Tool,,,,,,Scout\n"),
		Players: writeCSV(t, dir, "players.csv", "player_id,name,mod_channel,attributes,resources,skills,status_modifiers,actions,items\n"+
			"1,P1,100,strength:9,gold:5:1;food:20:0,Brawler,Blessed,Scout,Spyglass\n"+
			"2,P2,200,,gold:0:0;silver:3:0,Missing,,,\n"+
			"1,Dup,300,,,,,,\n"+
			"abc,Bad,400,,,,,,\n"),
		Parties: writeCSV(t, dir, "parties.csv", "name,max_size,channel_id,player_ids\n"+
			"Wolves,1,900,1;2\n"+
			"Sheep,,901,2;99\n"),
	}

	loader, logs := newObservedLoader()
	g, err := loader.BuildGame(context.Background(), paths)
	require.NoError(t, err)

	assert.False(t, g.IsActive)
	assert.True(t, g.PartiesLocked)
	assert.True(t, g.VotingLocked)
	assert.True(t, g.ItemsLocked)
	assert.True(t, g.ResourcesLocked)
	assert.Empty(t, g.Rounds)
	assert.Len(t, g.ResourceDefs, 2)
	assert.Len(t, g.Actions, 1)
	require.Len(t, g.Items, 1)
	require.NotNil(t, g.Items[0].Action)

	require.Len(t, g.Players, 2)
	p1 := g.GetPlayer("1")
	require.NotNil(t, p1)
	assert.Equal(t, "P1", p1.DiscordName)
	assert.Equal(t, game.ID("100"), p1.ModChannel)
	require.NotNil(t, p1.GetAttribute("strength"))
	assert.Equal(t, 5, p1.GetAttribute("strength").Level)
	require.NotNil(t, p1.GetResource("food"))
	assert.Equal(t, 10, p1.GetResource("food").Amount)
	assert.True(t, p1.GetResource("food").IsPerishable)
	assert.Len(t, p1.Skills, 1)
	assert.Len(t, p1.StatusModifiers, 1)
	assert.NotNil(t, p1.GetAction("Scout"))
	assert.NotNil(t, p1.GetItem("Spyglass"))

	p2 := g.GetPlayer("2")
	require.NotNil(t, p2)
	assert.Len(t, p2.Resources, 1)
	assert.Empty(t, p2.Skills)

	wolves := g.GetPartyByName("Wolves")
	require.NotNil(t, wolves)
	assert.Equal(t, []game.ID{"1"}, wolves.PlayerIDs)
	sheep := g.GetPartyByName("Sheep")
	require.NotNil(t, sheep)
	assert.Equal(t, catalog.Unbounded, sheep.MaxSize)
	assert.Equal(t, []game.ID{"2"}, sheep.PlayerIDs)

	assert.NoError(t, g.Validate())
	assert.Equal(t, 2, logs.FilterMessage("player references an undefined entry").Len())
	assert.Equal(t, 1, logs.FilterMessage("skipping player").Len())
	assert.Equal(t, 1, logs.FilterMessage("skipping malformed seed row").Len())
	assert.Equal(t, 2, logs.FilterMessage("skipping party member").Len())
}

func TestBuildGame_MissingCatalogFile(t *testing.T) {
	loader := seed.NewLoader(nil)

	_, err := loader.BuildGame(context.Background(), seed.Paths{
		Skills: filepath.Join(t.TempDir(), "missing.csv"),
	})

	require.Error(t, err)
	assert.True(t, apperr.IsPersistence(err))
}

func TestBuildGame_NoFiles(t *testing.T) {
	g, err := seed.NewLoader(nil).BuildGame(context.Background(), seed.Paths{})

	require.NoError(t, err)
	assert.Empty(t, g.Players)
	assert.NotNil(t, g.Actions)
	assert.NoError(t, g.Validate())
}
