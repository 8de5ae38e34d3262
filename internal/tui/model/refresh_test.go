package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefreshReplacesRoster(t *testing.T) {
	s := NewState()
	s.Refresh([]byte("alpha running\nbeta exited\n"))
	assert.Len(t, s.Roster, 2)

	s.Refresh([]byte("gamma paused\n"))
	assert.Equal(t, Roster{{Name: "gamma", Status: "paused", HasStatus: true}}, s.Roster)
}

func TestRefreshClampsCursor(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
		raw    string
		want   int
	}{
		{name: "cursor kept when still in range", cursor: 1, raw: "a up\nb up\nc up\n", want: 1},
		{name: "cursor pulled to last entry on shrink", cursor: 4, raw: "a up\nb up\n", want: 1},
		{name: "cursor reset on empty roster", cursor: 3, raw: "", want: 0},
		{name: "cursor reset on undecodable output", cursor: 2, raw: "\xff", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateWith(5)
			s.Cursor = tt.cursor
			s.Refresh([]byte(tt.raw))
			assert.Equal(t, tt.want, s.Cursor)
		})
	}
}

func TestRequestIDsIncrease(t *testing.T) {
	s := NewState()
	first := s.NextRequestID()
	second := s.NextRequestID()
	assert.Equal(t, uint64(1), first)
	assert.Greater(t, second, first)
}

func TestAcceptListing(t *testing.T) {
	s := NewState()
	ids := []uint64{s.NextRequestID(), s.NextRequestID(), s.NextRequestID()}

	assert.True(t, s.AcceptListing(ids[1]))
	assert.False(t, s.AcceptListing(ids[0]), "older completion must be ignored")
	assert.False(t, s.AcceptListing(ids[1]), "duplicate completion must be ignored")
	assert.True(t, s.AcceptListing(ids[2]))
	assert.True(t, s.AcceptListing(0), "uncorrelated completion is always applied")
}
