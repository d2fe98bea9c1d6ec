package client

import (
	"fmt"
	"strings"
)

// Fields holds the ten free-form values of a client record.
type Fields struct {
	FirstName     string `json:"first_name" yaml:"first_name"`
	LastName      string `json:"last_name" yaml:"last_name"`
	Company       string `json:"company" yaml:"company"`
	Email         string `json:"email" yaml:"email"`
	Phone         string `json:"phone" yaml:"phone"`
	StreetAddress string `json:"street_address" yaml:"street_address"`
	City          string `json:"city" yaml:"city"`
	State         string `json:"state" yaml:"state"`
	Zip           string `json:"zip" yaml:"zip"`
	Notes         string `json:"notes" yaml:"notes"`
}

// Client is one entry in the directory. The identity is assigned by the
// store and cannot change afterwards; every other field is writable in place.
type Client struct {
	id int
	Fields
}

// New builds a client with the given identity. Only the store should call it.
func New(id int, f Fields) *Client {
	return &Client{id: id, Fields: f}
}

func (c *Client) ID() int { return c.id }

func (c *Client) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Address formats the postal parts as "street, city, state zip".
func (c *Client) Address() string {
	return fmt.Sprintf("%s, %s, %s %s", c.StreetAddress, c.City, c.State, c.Zip)
}

// Summary is the one-line form used in directory listings.
func (c *Client) Summary() string {
	return fmt.Sprintf("%d - %s", c.id, c.FullName())
}

// Card renders the detail view shared by the console front ends.
func (c *Client) Card() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("ID: %d\n", c.id))
	b.WriteString(fmt.Sprintf("Name: %s\n", c.FullName()))
	b.WriteString(fmt.Sprintf("Company: %s\n", c.Company))
	b.WriteString(fmt.Sprintf("Email: %s\n", c.Email))
	b.WriteString(fmt.Sprintf("Phone: %s\n", c.Phone))
	b.WriteString(fmt.Sprintf("Address: %s\n", c.Address()))
	b.WriteString(fmt.Sprintf("Notes: %s\n", c.Notes))
	return b.String()
}
