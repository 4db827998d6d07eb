package ui

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCard(t *testing.T) {
	d := Card("Tea", "Ingredients:\n- Water - 1 cup")

	assert.Equal(t, TypeCard, d.Type)
	require.NotNil(t, d.Card)
	assert.Equal(t, "Tea", d.Card.Title)
	assert.Nil(t, d.Table)
	assert.Empty(t, d.Children)
}

func TestTableDefaultsNilToEmpty(t *testing.T) {
	d := Table(nil, nil)

	assert.Equal(t, TypeTable, d.Type)
	require.NotNil(t, d.Table)
	assert.NotNil(t, d.Table.Columns)
	assert.NotNil(t, d.Table.Rows)
	assert.Empty(t, d.Table.Columns)
	assert.Empty(t, d.Table.Rows)
}

func TestCardWithTable(t *testing.T) {
	columns := []TableColumn{
		{Key: "id", Header: "ID", Width: 1},
		{Key: "thumbnailUrl", Header: "Thumbnail", Width: 1, AsImage: true},
	}
	rows := []map[string]string{
		{"id": "7", "thumbnailUrl": "https://example.test/a.jpg"},
	}

	d := CardWithTable("Results", "1 match", columns, rows)

	assert.Equal(t, TypeCard, d.Type)
	require.Len(t, d.Children, 1)

	table := d.Children[0]
	assert.Equal(t, TypeTable, table.Type)
	require.NotNil(t, table.Table)
	assert.Equal(t, columns, table.Table.Columns)
	assert.Equal(t, rows, table.Table.Rows)
}

func TestDescriptorJSONOmitsUnusedVariant(t *testing.T) {
	data, err := json.Marshal(Card("Tea", "content"))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "card", decoded["type"])
	assert.Contains(t, decoded, "card")
	assert.NotContains(t, decoded, "table")
	assert.NotContains(t, decoded, "children")
}
