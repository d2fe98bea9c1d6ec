package tui

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/jeanpaul/rolodex/internal/client"
	"github.com/jeanpaul/rolodex/internal/theme"
)

type fieldItem struct {
	field client.Field
	value string
}

func (i fieldItem) Title() string { return i.field.String() }

func (i fieldItem) Description() string {
	if i.value == "" {
		return "(empty)"
	}
	return i.value
}

func (i fieldItem) FilterValue() string { return i.field.String() }

func newFieldPicker(th theme.Theme) list.Model {
	l := list.New(nil, newDelegate(th), 60, 20)
	styleList(&l, th, "Select field to update")
	l.SetFilteringEnabled(false)
	return l
}

// fieldItems lists every editable field with the record's current value.
func fieldItems(c *client.Client) []list.Item {
	fields := client.AllFields()
	items := make([]list.Item, len(fields))
	for i, f := range fields {
		items[i] = fieldItem{field: f, value: c.Get(f)}
	}
	return items
}
