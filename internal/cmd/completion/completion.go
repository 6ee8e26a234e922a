// Package completion provides dynamic shell completion for omm arguments.
package completion

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/omm/internal/persistence"
	"github.com/agentstation/omm/pkg/records"
)

// Supported shells.
const (
	ShellBash       = "bash"
	ShellZsh        = "zsh"
	ShellFish       = "fish"
	ShellPowerShell = "powershell"
)

// Shells lists the shells completion scripts can be generated for.
func Shells() []string {
	return []string{ShellBash, ShellZsh, ShellFish, ShellPowerShell}
}

// Arg describes what a positional argument holds.
type Arg int

const (
	// Snapshot is a delimited module export.
	Snapshot Arg = iota
	// Store is a YAML store file.
	Store
	// Version is a version key of the store named by the Store argument.
	Version
)

// PositionalArgs returns a completion function for commands whose positional
// arguments follow layout. Versions are read from the store argument that
// has already been typed.
func PositionalArgs(layout ...Arg) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) >= len(layout) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		switch layout[len(args)] {
		case Snapshot:
			return []string{"csv", "txt"}, cobra.ShellCompDirectiveFilterFileExt
		case Store:
			return []string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
		}

		storeIdx := slices.Index(layout, Store)
		if storeIdx < 0 || storeIdx >= len(args) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		store, err := persistence.New().Load(args[storeIdx])
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		var matches []string
		for _, v := range StoreVersions(store) {
			if strings.HasPrefix(v, toComplete) {
				matches = append(matches, v)
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp
	}
}

// StoreVersions returns every version key used in the store, newest first.
// Keys that are not versions are ignored.
func StoreVersions(store records.Store) []string {
	seen := make(map[string]records.Version)
	for i := range store {
		for _, key := range store[i].Versions() {
			if _, ok := seen[key]; ok {
				continue
			}
			if v, err := records.ParseVersion(key); err == nil {
				seen[key] = v
			}
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b string) int {
		return seen[b].Compare(seen[a])
	})
	return keys
}
