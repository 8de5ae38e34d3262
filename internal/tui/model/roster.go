package model

import (
	"strings"
	"unicode/utf8"
)

// ParseRoster turns runtime listing output into a Roster. Each non-blank line
// becomes one entry: the first whitespace-separated token is the name, the
// second the status, anything after that is ignored. Output that is not valid
// UTF-8 yields an empty roster.
func ParseRoster(raw []byte) Roster {
	if !utf8.Valid(raw) {
		return Roster{}
	}
	lines := strings.Split(string(raw), "\n")
	roster := make(Roster, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		switch len(fields) {
		case 0:
			continue
		case 1:
			roster = append(roster, Container{Name: fields[0]})
		default:
			roster = append(roster, Container{Name: fields[0], Status: fields[1], HasStatus: true})
		}
	}
	return roster
}

// Refresh replaces the roster with the parsed listing and pulls the cursor
// back inside the new bounds.
func (s *State) Refresh(raw []byte) {
	s.Roster = ParseRoster(raw)
	s.clampCursor()
}

func (s *State) clampCursor() {
	switch {
	case len(s.Roster) == 0:
		s.Cursor = 0
	case s.Cursor >= len(s.Roster):
		s.Cursor = len(s.Roster) - 1
	case s.Cursor < 0:
		s.Cursor = 0
	}
}

// Selected returns the container under the cursor, if any.
func (s *State) Selected() (Container, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Roster) {
		return Container{}, false
	}
	return s.Roster[s.Cursor], true
}

// SelectDown moves the cursor one entry down, wrapping to the top.
// It reports false and does nothing on an empty roster.
func (s *State) SelectDown() bool {
	if len(s.Roster) == 0 {
		return false
	}
	s.Cursor = (s.Cursor + 1) % len(s.Roster)
	return true
}

// SelectUp moves the cursor one entry up, wrapping to the bottom.
// It reports false and does nothing on an empty roster.
func (s *State) SelectUp() bool {
	if len(s.Roster) == 0 {
		return false
	}
	if s.Cursor <= 0 || s.Cursor > len(s.Roster) {
		s.Cursor = len(s.Roster) - 1
		return true
	}
	s.Cursor--
	return true
}

// NextRequestID allocates the id for a new listing request.
func (s *State) NextRequestID() uint64 {
	s.lastRequestID++
	return s.lastRequestID
}

// AcceptListing reports whether a listing completion with the given id may
// replace the roster, and records it as applied. Id 0 marks an uncorrelated
// completion and is always accepted.
func (s *State) AcceptListing(id uint64) bool {
	if id == 0 {
		return true
	}
	if id <= s.appliedRequestID {
		return false
	}
	s.appliedRequestID = id
	return true
}
