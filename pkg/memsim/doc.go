/*
Package memsim provides a command-driven session over a first-fit memory
region, shared by the memctl CLI and the memexplorer TUI.

# Quick Start

	s := memsim.NewSession(memsim.Options{Capacity: 64})
	o := s.Exec(types.Alloc("A", 10))
	if !o.OK() {
	    fmt.Println(o.Message(i18n.New("en")))
	}

# Scripts

	err := s.RunScript(f, func(o memsim.Outcome) error {
	    fmt.Println(o.Message(p))
	    return nil
	})

Scripts are parsed completely before the first command runs, so a syntax
error never leaves a half-applied script behind.

# Verification

With Options.Verify set, every mutating command is followed by a full
layout check (see mem/verify). A violation is reported as the command's
error.

# Thread Safety

A Session owns its region exclusively and is not safe for concurrent use.
*/
package memsim
