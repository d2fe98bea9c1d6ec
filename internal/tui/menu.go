package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/jeanpaul/rolodex/internal/client"
	"github.com/jeanpaul/rolodex/internal/theme"
)

type clientItem struct {
	c *client.Client
}

func (i clientItem) Title() string { return i.c.Summary() }

func (i clientItem) Description() string {
	return fmt.Sprintf("%s · %s", i.c.Company, i.c.Email)
}

func (i clientItem) FilterValue() string {
	return i.c.FullName() + " " + i.c.Company + " " + i.c.Email
}

func newClientList(th theme.Theme) list.Model {
	l := list.New(nil, newDelegate(th), 60, 20)
	styleList(&l, th, "Client Directory")
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("client", "clients")
	l.SetShowStatusBar(true)
	return l
}

func clientItems(clients []*client.Client) []list.Item {
	items := make([]list.Item, len(clients))
	for i, c := range clients {
		items[i] = clientItem{c: c}
	}
	return items
}

// selectedClient returns the highlighted record, or nil for an empty list.
func selectedClient(l list.Model) *client.Client {
	it, ok := l.SelectedItem().(clientItem)
	if !ok {
		return nil
	}
	return it.c
}

// selectID moves the cursor to the record with the given identity.
func selectID(l *list.Model, id int) {
	for i, it := range l.Items() {
		if ci, ok := it.(clientItem); ok && ci.c.ID() == id {
			l.Select(i)
			return
		}
	}
}
