package grid

import (
	"bytes"
	"testing"

	"github.com/mattn/go-runewidth"
	"gotest.tools/v3/assert"
)

const peopleGrid = `+----+-----------+------------+------------------------------+
| ID | FirstName | LastName   | EmailAddr                    |
+----+-----------+------------+------------------------------+
|  1 | Fred      | Flintstone | fred.flintstone@example.com  |
|  2 | Wilma     | Flintstone | wilma.flintstone@example.com |
|  3 | Barney    | Rubble     | barney.rubble@example.com    |
|  4 | Betty     | Rubble     | betty.rubble@example.com     |
+----+-----------+------------+------------------------------+
`

func TestRender(t *testing.T) {
	g := newPeopleGrid(t)
	assert.Equal(t, g.Render(), peopleGrid)
	assert.Equal(t, g.String(), peopleGrid)
}

func TestRenderTo(t *testing.T) {
	g := newPeopleGrid(t)

	var buf bytes.Buffer
	assert.NilError(t, g.RenderTo(&buf))
	assert.Equal(t, buf.String(), peopleGrid)
}

func TestRenderAfterSort(t *testing.T) {
	g := newPeopleGrid(t)
	assert.NilError(t, g.SortBy("ID", Descending))

	expected := `+----+-----------+------------+------------------------------+
| ID | FirstName | LastName   | EmailAddr                    |
+----+-----------+------------+------------------------------+
|  4 | Betty     | Rubble     | betty.rubble@example.com     |
|  3 | Barney    | Rubble     | barney.rubble@example.com    |
|  2 | Wilma     | Flintstone | wilma.flintstone@example.com |
|  1 | Fred      | Flintstone | fred.flintstone@example.com  |
+----+-----------+------------+------------------------------+
`
	assert.Equal(t, g.Render(), expected)
}

func TestRenderHeaderOnly(t *testing.T) {
	g := New("Name", "Qty")

	expected := `+------+-----+
| Name | Qty |
+------+-----+
+------+-----+
`
	assert.Equal(t, g.Render(), expected)
}

func TestRenderAlignment(t *testing.T) {
	g := New("Item", "Price", "Note")
	assert.NilError(t, g.Append("apple", 1.25, nil))
	assert.NilError(t, g.Append("kiwi", 10, "ripe"))

	expected := `+-------+-------+------+
| Item  | Price | Note |
+-------+-------+------+
| apple |  1.25 | NULL |
| kiwi  |    10 | ripe |
+-------+-------+------+
`
	assert.Equal(t, g.Render(), expected)
}

func TestRenderWideRunes(t *testing.T) {
	g := New("City")
	assert.NilError(t, g.Append("東京"))
	assert.NilError(t, g.Append("Oslo"))

	expected := `+------+
| City |
+------+
| 東京 |
| Oslo |
+------+
`
	assert.Equal(t, g.Render(), expected)
}

func TestRenderIgnoresEastAsianLocale(t *testing.T) {
	saved := runewidth.DefaultCondition.EastAsianWidth
	runewidth.DefaultCondition.EastAsianWidth = true
	t.Cleanup(func() { runewidth.DefaultCondition.EastAsianWidth = saved })

	g := New("City")
	assert.NilError(t, g.Append("Café"))
	assert.NilError(t, g.Append("±5°"))

	expected := `+------+
| City |
+------+
| Café |
| ±5°  |
+------+
`
	assert.Equal(t, g.Render(), expected)
}
