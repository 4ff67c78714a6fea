package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAliasTable_InvertsDeclarations(t *testing.T) {
	table := BuildAliasTable([]PathsEntry{
		{Alias: "@utils/*", Targets: []string{"utils/*"}},
		{Alias: "@shared/*", Targets: []string{"shared/*", "common/*"}},
		{Alias: "@app", Targets: []string{"app/index.ts"}},
	})

	assert.Equal(t, AliasTable{
		{Prefix: "utils", Alias: "@utils"},
		{Prefix: "shared", Alias: "@shared"},
		{Prefix: "common", Alias: "@shared"},
		{Prefix: "app/index.ts", Alias: "@app"},
	}, table)
}

func TestBuildAliasTable_EmptyTargets(t *testing.T) {
	table := BuildAliasTable([]PathsEntry{{Alias: "@none/*"}})
	assert.Empty(t, table)
}

func TestAliasTable_MatchRemainder(t *testing.T) {
	table := AliasTable{{Prefix: "utils", Alias: "@utils"}}

	got, ok := table.Match("utils/format.ts")
	assert.True(t, ok)
	assert.Equal(t, "@utils/format.ts", got)

	_, ok = table.Match("components/Button.tsx")
	assert.False(t, ok)
}
