package input

import "sort"

// Action names used by the game.
const (
	ActionLeftClick  = "leftClick"
	ActionRightClick = "rightClick"
	ActionStart      = "start"
	ActionBack       = "back"
	ActionShuffle    = "shuffle"
	ActionDebug      = "debug"
)

// ActionTable maps an action name to the keys that trigger it. An action
// fires if any one of its keys is active.
type ActionTable map[string][]Key

// DefaultActions returns the built-in bindings.
func DefaultActions() ActionTable {
	return ActionTable{
		ActionLeftClick:  {MouseLeft},
		ActionRightClick: {MouseRight},
		ActionStart:      {"Enter"},
		ActionBack:       {"Escape"},
		ActionShuffle:    {"R"},
		ActionDebug:      {"F3"},
	}
}

// FromConfig builds a table from name -> key-name lists, keeping the default
// binding for any action the config leaves out.
func FromConfig(bindings map[string][]string) ActionTable {
	table := DefaultActions()
	for action, keys := range bindings {
		if len(keys) == 0 {
			continue
		}
		bound := make([]Key, 0, len(keys))
		for _, k := range keys {
			bound = append(bound, Key(k))
		}
		table[action] = bound
	}
	return table
}

// Names returns the bound action names in sorted order.
func (t ActionTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
