package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandValueJSON(t *testing.T) {
	data, err := json.Marshal(NewStringResponse("Brand new bot!"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"StringResponse": "Brand new bot!"}`, string(data))

	data, err = json.Marshal(NewGeneric("alias:other_cmd"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Generic": "alias:other_cmd"}`, string(data))

	_, err = json.Marshal(CommandValue{Kind: "Shoutout"})
	assert.Error(t, err)
}

func TestCommandValueDecode(t *testing.T) {
	var v CommandValue
	require.NoError(t, json.Unmarshal([]byte(`{"Generic": "alias:other_cmd"}`), &v))
	assert.Equal(t, NewGeneric("alias:other_cmd"), v)

	bad := []string{
		`{}`,
		`{"Other": "x"}`,
		`{"StringResponse": "a", "Generic": "b"}`,
		`{"StringResponse": 3}`,
		`"Shoutout"`,
	}
	for _, in := range bad {
		var v CommandValue
		assert.Error(t, json.Unmarshal([]byte(in), &v), "input %s", in)
	}
}

func TestCommandDefinitionSubcommands(t *testing.T) {
	in := `{
		"value": {"StringResponse": "Brand new bot!"},
		"admin_only": false,
		"subcommands": {"sc": {"value": {"StringResponse": "Yes, we got subcommands!"}, "admin_only": true, "hidden": false}},
		"hidden": true
	}`

	var def CommandDefinition
	require.NoError(t, json.Unmarshal([]byte(in), &def))
	require.Contains(t, def.Subcommands, "sc")
	assert.True(t, def.Subcommands["sc"].AdminOnly)
	assert.Equal(t, "Yes, we got subcommands!", def.Subcommands["sc"].Value.Payload)

	out, err := json.Marshal(&def)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestCommandTableInsert(t *testing.T) {
	original := &CommandDefinition{Value: NewStringResponse("first")}
	table := CommandTable{"bnb": original}

	err := table.Insert("bnb", &CommandDefinition{Value: NewStringResponse("second")})
	assert.True(t, errors.Is(err, ErrDuplicateCommand))
	assert.Same(t, original, table["bnb"])

	// names are case-sensitive
	require.NoError(t, table.Insert("BNB", &CommandDefinition{Value: NewGeneric("x")}))
	assert.Equal(t, []string{"BNB", "bnb"}, table.Names())
}
