package main

import (
	"errors"
	"log"
)

const (
	promptName      = "command name: "
	promptKind      = "generic or string resp? empty for string: "
	promptResponse  = "What is the response? Empty cancels: "
	promptMapping   = "What is the mapping? Empty cancels: "
	promptAdminOnly = "admin only? y for true, otherwise false: "
	promptHidden    = "hidden? y for true, otherwise false: "
	promptAgain     = "empty to go again: "
)

// Session owns the command table of one file for the length of an edit
type Session struct {
	Path  string
	Table CommandTable

	prompter    Prompter
	fingerprint string
	added       []string
}

// openSession loads the commands file at path and records its fingerprint
func openSession(path string, prompter Prompter) (*Session, error) {
	table, err := loadCommands(path)
	if err != nil {
		return nil, err
	}

	fingerprint, err := calculateFileHash(path)
	if err != nil {
		log.Printf("Warning: Failed to fingerprint %s: %v", path, err)
	}

	log.Printf("Loaded %d commands from %s", len(table), path)
	return &Session{
		Path:        path,
		Table:       table,
		prompter:    prompter,
		fingerprint: fingerprint,
	}, nil
}

// Added returns the names inserted during this session, in order
func (s *Session) Added() []string {
	return s.added
}

// Run prompts for new commands until the operator asks to stop. It returns
// errAborted if input ends or is interrupted; the table may then hold entries
// that must not be committed.
func (s *Session) Run() error {
	for {
		done, err := s.addOne()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// addOne runs a single pass of the loop. done reports that the operator
// asked to end the session.
func (s *Session) addOne() (done bool, err error) {
	name, err := s.prompter.Ask(promptName)
	if err != nil {
		return false, err
	}
	if name == "" {
		return false, nil
	}
	if s.Table.Has(name) {
		s.prompter.Notify(warnStyle.Render("already done"))
		return false, nil
	}

	kind, err := s.prompter.Ask(promptKind)
	if err != nil {
		return false, err
	}

	var value CommandValue
	if kind == "" {
		resp, err := s.prompter.Ask(promptResponse)
		if err != nil {
			return false, err
		}
		if resp == "" {
			return false, nil
		}
		value = NewStringResponse(resp)
	} else {
		mapping, err := s.prompter.Ask(promptMapping)
		if err != nil {
			return false, err
		}
		if mapping == "" {
			return false, nil
		}
		value = NewGeneric(mapping)
	}

	adminOnly, err := s.prompter.Ask(promptAdminOnly)
	if err != nil {
		return false, err
	}
	hidden, err := s.prompter.Ask(promptHidden)
	if err != nil {
		return false, err
	}

	def := &CommandDefinition{
		Value:     value,
		AdminOnly: toBool(adminOnly),
		Hidden:    toBool(hidden),
	}
	if err := s.Table.Insert(name, def); err != nil {
		if errors.Is(err, ErrDuplicateCommand) {
			s.prompter.Notify(warnStyle.Render("already done"))
			return false, nil
		}
		return false, err
	}
	s.added = append(s.added, name)

	again, err := s.prompter.Ask(promptAgain)
	if err != nil {
		return false, err
	}
	return again != "", nil
}

// Commit writes the table back to the session's file. With backup set the
// current file is first copied to <path>.bak.
func (s *Session) Commit(backup bool) error {
	if changed, err := fileChanged(s.Path, s.fingerprint); err != nil {
		log.Printf("Warning: Could not check %s for outside changes: %v", s.Path, err)
	} else if changed {
		s.prompter.Notify(warnStyle.Render("warning: " + s.Path + " changed on disk during this session; overwriting"))
		log.Printf("Warning: %s was modified since it was loaded", s.Path)
	}

	if backup && fileExists(s.Path) {
		if err := copyFile(s.Path, s.Path+".bak"); err != nil {
			return &SaveError{Path: s.Path, Err: err}
		}
		log.Printf("Backed up %s to %s.bak", s.Path, s.Path)
	}

	s.prompter.Notify("committing to file")
	if err := saveCommands(s.Path, s.Table); err != nil {
		return err
	}
	log.Printf("Saved %d commands to %s (%d new)", len(s.Table), s.Path, len(s.added))
	return nil
}
