package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetlistCoversEveryBlock(t *testing.T) {
	tracks := Setlist()
	assert.Len(t, tracks, 4)
	for _, block := range []string{"(s-block)", "(p-block)", "(d-block)"} {
		found := false
		for _, tr := range tracks {
			found = found || strings.Contains(tr.Title, block)
		}
		assert.True(t, found, "no track for %s", block)
	}
}

func TestCheatSheetRules(t *testing.T) {
	var rules []string
	for _, c := range CheatSheet() {
		rules = append(rules, c.Rule)
		assert.NotEmpty(t, c.Text)
	}
	assert.Equal(t, []string{"AUFBAU", "PAULI", "HUND"}, rules)
}

func TestMerchTeeSoldOut(t *testing.T) {
	items := Merch()
	assert.Equal(t, "Sold Out", items[0].Price)
}
