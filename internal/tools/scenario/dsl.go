// Package scenario runs Lua-scripted matches against the game gRPC API.
//
// A scenario script builds a step list: create a match, drive the player
// ship for a number of ticks, and assert on the observed state. Example:
//
//	local scene = Scenario.new("boost run")
//	scene:match({arena = "nebula-rift", difficulty = "hard", seed = 42})
//	scene:drive({forward = true, boost = true, ticks = 120})
//	scene:expect({phase = "playing"})
//	return scene
package scenario

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
)

const scenarioTypeName = "scenario"

// Scenario is a named list of steps produced by a Lua script.
type Scenario struct {
	Name  string
	Steps []Step
}

// Step is one scripted action or expectation.
type Step struct {
	Kind string
	Args map[string]any
}

// LoadScenarioFromFile runs a Lua script and returns the Scenario it built.
func LoadScenarioFromFile(path string) (*Scenario, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	registerScenarioType(state)
	registerScenarioConstructor(state)

	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}

	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, fmt.Errorf("scenario script must return Scenario")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	scenario, ok := ud.(*Scenario)
	if !ok || scenario == nil {
		return nil, fmt.Errorf("scenario script returned invalid Scenario")
	}
	if strings.TrimSpace(scenario.Name) == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scenario, nil
}

func registerScenarioType(state *lua.State) {
	lua.NewMetaTable(state, scenarioTypeName)
	state.NewTable()
	lua.SetFunctions(state, scenarioMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)
}

func registerScenarioConstructor(state *lua.State) {
	state.NewTable()
	lua.SetFunctions(state, scenarioConstructor, 0)
	state.SetGlobal("Scenario")
}

var scenarioConstructor = []lua.RegistryFunction{
	{Name: "new", Function: scenarioNew},
}

func scenarioNew(state *lua.State) int {
	name := lua.OptString(state, 1, "")
	scenario := &Scenario{Name: name}
	state.PushUserData(scenario)
	lua.SetMetaTableNamed(state, scenarioTypeName)
	return 1
}

var scenarioMethods = []lua.RegistryFunction{
	{Name: "match", Function: scenarioMatch},
	{Name: "drive", Function: scenarioDrive},
	{Name: "coast", Function: scenarioCoast},
	{Name: "expect", Function: scenarioExpect},
	{Name: "expect_event", Function: scenarioExpectEvent},
	{Name: "play_out", Function: scenarioPlayOut},
}

// match creates a match: {arena = "...", difficulty = "...", seed = N}.
func scenarioMatch(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	data := tableToMap(state, 2)
	if str, _ := data["arena"].(string); strings.TrimSpace(str) == "" {
		lua.Errorf(state, "match arena is required")
	}
	appendStep(scenario, "match", data)
	return returnSelf(state)
}

// drive latches controls and advances: {forward = true, ticks = N}.
func scenarioDrive(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	data := tableToMap(state, 2)
	appendStep(scenario, "drive", data)
	return returnSelf(state)
}

// coast releases all controls and advances: coast(ticks).
func scenarioCoast(state *lua.State) int {
	scenario := checkScenario(state)
	ticks := int(lua.CheckNumber(state, 2))
	appendStep(scenario, "drive", map[string]any{"ticks": ticks})
	return returnSelf(state)
}

// expect asserts on the latest snapshot:
// {phase = "...", player_score = N, ai_score = N, min_clock = S, max_clock = S}.
func scenarioExpect(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	data := tableToMap(state, 2)
	appendStep(scenario, "expect", data)
	return returnSelf(state)
}

// expect_event asserts the event log contains a type: {type = "goal"}.
func scenarioExpectEvent(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	data := tableToMap(state, 2)
	if str, _ := data["type"].(string); strings.TrimSpace(str) == "" {
		lua.Errorf(state, "expect_event type is required")
	}
	appendStep(scenario, "expect_event", data)
	return returnSelf(state)
}

// play_out coasts until the match completes: {max_ticks = N}.
func scenarioPlayOut(state *lua.State) int {
	scenario := checkScenario(state)
	data := optionalTable(state, 2)
	appendStep(scenario, "play_out", data)
	return returnSelf(state)
}

// returnSelf leaves the scenario userdata on the stack so calls chain.
func returnSelf(state *lua.State) int {
	state.PushValue(1)
	return 1
}

func checkScenario(state *lua.State) *Scenario {
	ud := lua.CheckUserData(state, 1, scenarioTypeName)
	if scenario, ok := ud.(*Scenario); ok && scenario != nil {
		return scenario
	}
	lua.ArgumentError(state, 1, "scenario expected")
	return nil
}

func appendStep(scenario *Scenario, kind string, data map[string]any) {
	if scenario == nil {
		return
	}
	if data == nil {
		data = map[string]any{}
	}
	scenario.Steps = append(scenario.Steps, Step{Kind: kind, Args: data})
}

func optionalTable(state *lua.State, index int) map[string]any {
	if state.IsNoneOrNil(index) || state.TypeOf(index) != lua.TypeTable {
		return map[string]any{}
	}
	return tableToMap(state, index)
}

func tableToMap(state *lua.State, index int) map[string]any {
	output := map[string]any{}
	if state.TypeOf(index) != lua.TypeTable {
		return output
	}

	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return output
}

func luaToGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		return normalizeNumber(value)
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	default:
		return nil
	}
}

func normalizeNumber(value float64) any {
	if math.Mod(value, 1) == 0 {
		return int(value)
	}
	return value
}
