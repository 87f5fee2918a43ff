package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ValueKind identifies which variant a CommandValue holds
type ValueKind string

const (
	StringResponse ValueKind = "StringResponse"
	Generic        ValueKind = "Generic"
)

var ErrDuplicateCommand = errors.New("command already exists")

// CommandValue is the response of a command. It is encoded as an object with
// exactly one key naming the variant, e.g. {"StringResponse": "hi!"}.
type CommandValue struct {
	Kind    ValueKind
	Payload string
}

func NewStringResponse(text string) CommandValue {
	return CommandValue{Kind: StringResponse, Payload: text}
}

func NewGeneric(mapping string) CommandValue {
	return CommandValue{Kind: Generic, Payload: mapping}
}

func (v CommandValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case StringResponse, Generic:
		return json.Marshal(map[string]string{string(v.Kind): v.Payload})
	default:
		return nil, fmt.Errorf("unknown command value kind: %q", v.Kind)
	}
}

func (v *CommandValue) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("command value must be an object: %v", err)
	}
	if len(raw) != 1 {
		return fmt.Errorf("command value must have exactly one variant, got %d", len(raw))
	}

	for key, payload := range raw {
		kind := ValueKind(key)
		if kind != StringResponse && kind != Generic {
			return fmt.Errorf("unknown command value kind: %q", key)
		}
		var s string
		if err := json.Unmarshal(payload, &s); err != nil {
			return fmt.Errorf("%s payload must be a string: %v", key, err)
		}
		v.Kind = kind
		v.Payload = s
	}
	return nil
}

// CommandDefinition is one entry of commands.json. A nil Subcommands map is
// left out of the encoded form; an empty one is written as {}.
type CommandDefinition struct {
	Value       CommandValue                  `json:"value"`
	AdminOnly   bool                          `json:"admin_only"`
	Hidden      bool                          `json:"hidden"`
	Subcommands map[string]*CommandDefinition `json:"subcommands"`
}

func (d CommandDefinition) MarshalJSON() ([]byte, error) {
	out := struct {
		Value       CommandValue                   `json:"value"`
		AdminOnly   bool                           `json:"admin_only"`
		Hidden      bool                           `json:"hidden"`
		Subcommands *map[string]*CommandDefinition `json:"subcommands,omitempty"`
	}{
		Value:     d.Value,
		AdminOnly: d.AdminOnly,
		Hidden:    d.Hidden,
	}
	if d.Subcommands != nil {
		out.Subcommands = &d.Subcommands
	}
	return json.Marshal(out)
}

// CommandTable maps case-sensitive command names to their definitions
type CommandTable map[string]*CommandDefinition

func (t CommandTable) Has(name string) bool {
	_, exists := t[name]
	return exists
}

// Insert adds def under name. It never replaces an existing entry.
func (t CommandTable) Insert(name string, def *CommandDefinition) error {
	if t.Has(name) {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}
	t[name] = def
	return nil
}

// Validate checks every definition, subcommands included, for a missing
// definition or a missing or unknown value
func (t CommandTable) Validate() error {
	return validateCommands(t, "")
}

func validateCommands(table CommandTable, prefix string) error {
	for _, name := range table.Names() {
		def := table[name]
		fullName := prefix + name
		if def == nil {
			return fmt.Errorf("command %q has no definition", fullName)
		}
		switch def.Value.Kind {
		case StringResponse, Generic:
		default:
			return fmt.Errorf("command %q has a missing or unknown value, want %s or %s",
				fullName, StringResponse, Generic)
		}
		if err := validateCommands(def.Subcommands, fullName+" "); err != nil {
			return err
		}
	}
	return nil
}

// Names returns the command names in sorted order
func (t CommandTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
