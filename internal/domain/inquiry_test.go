package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInquiry() *Inquiry {
	return &Inquiry{
		ID:              "inq-1",
		Contact:         Contact{Name: "Dana Reyes", Email: "dana@example.com"},
		ServiceCategory: "catering",
		EventDate:       time.Date(2026, 10, 12, 18, 0, 0, 0, time.UTC),
		EventLocation:   "Riverside Hall",
		GuestCount:      80,
		Status:          InquiryNew,
		Priority:        PriorityNormal,
	}
}

func TestInquiryStatus_TransitionTable(t *testing.T) {
	tests := []struct {
		from    InquiryStatus
		to      InquiryStatus
		allowed bool
	}{
		{InquiryNew, InquiryContacted, true},
		{InquiryNew, InquiryQuoted, true}, // quote sent before first call
		{InquiryNew, InquiryLost, true},
		{InquiryNew, InquiryWon, false},
		{InquiryContacted, InquiryQuoted, true},
		{InquiryContacted, InquiryNegotiating, true},
		{InquiryQuoted, InquiryWon, true},
		{InquiryQuoted, InquiryNew, false},
		{InquiryNegotiating, InquiryWon, true},
		{InquiryNegotiating, InquiryLost, true},
		{InquiryWon, InquiryArchived, true},
		{InquiryLost, InquiryArchived, true},
		{InquiryWon, InquiryNegotiating, false},
		{InquiryArchived, InquiryContacted, false},
		{InquiryArchived, InquiryArchived, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestInquiryStatus_Closed(t *testing.T) {
	assert.True(t, InquiryWon.Closed())
	assert.True(t, InquiryLost.Closed())
	assert.True(t, InquiryArchived.Closed())
	assert.False(t, InquiryNew.Closed())
	assert.False(t, InquiryNegotiating.Closed())
}

func TestInquiry_Transition(t *testing.T) {
	inq := newInquiry()

	require.NoError(t, inq.Transition(InquiryContacted))
	require.NoError(t, inq.Transition(InquiryQuoted))

	err := inq.Transition(InquiryNew)
	require.Error(t, err)
	assert.True(t, IsInvalidTransition(err))
	assert.Equal(t, InquiryQuoted, inq.Status, "failed transition must not mutate state")
}

func TestInquiry_ClosedRejectsAdvancement(t *testing.T) {
	inq := newInquiry()
	require.NoError(t, inq.Transition(InquiryLost))

	for _, to := range []InquiryStatus{InquiryContacted, InquiryQuoted, InquiryNegotiating, InquiryWon} {
		err := inq.Transition(to)
		require.Error(t, err, "LOST -> %s should be rejected", to)
	}

	// Archiving a lost inquiry is the one remaining legal move.
	require.NoError(t, inq.Transition(InquiryArchived))
}

func TestInquiry_Reactivate(t *testing.T) {
	inq := newInquiry()
	require.NoError(t, inq.Transition(InquiryLost))
	require.NoError(t, inq.Transition(InquiryArchived))

	require.NoError(t, inq.Reactivate())
	assert.Equal(t, InquiryNegotiating, inq.Status)

	// Reactivating an open inquiry is a violation.
	err := inq.Reactivate()
	require.Error(t, err)
	assert.True(t, IsInvalidTransition(err))
}

func TestInquiry_AddNote_AppendOnly(t *testing.T) {
	inq := newInquiry()

	inq.AddNote(Note{ID: "n-1", Author: "sam", Text: "prefers plated service"})
	inq.AddNote(Note{ID: "n-2", Author: "alex", Text: "confirmed headcount"})

	require.Len(t, inq.Notes, 2)
	assert.Equal(t, "n-1", inq.Notes[0].ID)
	assert.Equal(t, "prefers plated service", inq.Notes[0].Text, "existing notes are never mutated")
	assert.Equal(t, "n-2", inq.Notes[1].ID)
}

func TestInquiry_Validate(t *testing.T) {
	require.NoError(t, newInquiry().Validate())

	inq := newInquiry()
	inq.Contact.Name = ""
	assert.Error(t, inq.Validate())

	inq = newInquiry()
	inq.Contact.Email = ""
	inq.Contact.Phone = ""
	assert.Error(t, inq.Validate())

	inq = newInquiry()
	inq.GuestCount = -5
	assert.Error(t, inq.Validate())

	inq = newInquiry()
	inq.Priority = "urgent"
	assert.Error(t, inq.Validate())
}
