// Package input turns key presses from any source into theme selections.
package input

import (
	"github.com/BrandonKowalski/battleground/pkg/battleground/theme"
)

// Key is a source independent key.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
)

func (k Key) String() string {
	switch {
	case k == KeyLeft:
		return "left"
	case k == KeyRight:
		return "right"
	case k >= KeyDigit1 && k <= KeyDigit9:
		return string(rune('1' + int(k-KeyDigit1)))
	default:
		return "none"
	}
}

// CommandKind says what a Command does to the theme store.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandSelectIndex
	CommandPrevious
	CommandNext
)

// Command is a translated key press.
type Command struct {
	Kind  CommandKind
	Index int
}

// CommandFor translates a key into a command.
func CommandFor(k Key) Command {
	switch {
	case k == KeyLeft:
		return Command{Kind: CommandPrevious}
	case k == KeyRight:
		return Command{Kind: CommandNext}
	case k >= KeyDigit1 && k <= KeyDigit9:
		return Command{Kind: CommandSelectIndex, Index: int(k - KeyDigit1)}
	default:
		return Command{}
	}
}

// Apply performs cmd on store. CommandNone does nothing.
func Apply(store *theme.Store, cmd Command) error {
	switch cmd.Kind {
	case CommandSelectIndex:
		return store.SelectIndex(cmd.Index)
	case CommandPrevious:
		return store.Cycle(-1)
	case CommandNext:
		return store.Cycle(1)
	default:
		return nil
	}
}
