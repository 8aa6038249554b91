// Package entities contains core business entities.
package entities

// AgendaTemplate is a read-only, named set of agenda bullet items. Body is
// the items joined into a bulleted block, computed when templates load.
type AgendaTemplate struct {
	ID    string
	Name  string
	Items []string
	Body  string
}
