package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	// Block selection
	Up   key.Binding
	Down key.Binding

	// Allocator commands
	Alloc    key.Binding
	Free     key.Binding
	Compact  key.Binding
	Reset    key.Binding
	Internal key.Binding
	External key.Binding
	Stats    key.Binding

	// Prompts
	Submit key.Binding
	Cancel key.Binding

	Copy key.Binding
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous block"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next block"),
		),
		Alloc: key.NewBinding(
			key.WithKeys("a", "1"),
			key.WithHelp("a", "load process"),
		),
		Free: key.NewBinding(
			key.WithKeys("f", "2"),
			key.WithHelp("f", "free process"),
		),
		Compact: key.NewBinding(
			key.WithKeys("c", "3"),
			key.WithHelp("c", "compact"),
		),
		Internal: key.NewBinding(
			key.WithKeys("i", "5"),
			key.WithHelp("i", "internal fragmentation"),
		),
		External: key.NewBinding(
			key.WithKeys("e", "6"),
			key.WithHelp("e", "external fragmentation"),
		),
		Stats: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "allocator stats"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset memory"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy layout"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "0"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap for the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Alloc, k.Free, k.Compact, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Alloc, k.Free, k.Compact, k.Reset},
		{k.Internal, k.External, k.Stats},
		{k.Up, k.Down, k.Copy},
		{k.Submit, k.Cancel, k.Help, k.Quit},
	}
}
