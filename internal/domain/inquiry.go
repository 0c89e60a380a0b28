package domain

import "time"

// InquiryStatus is the lifecycle state of a customer inquiry.
type InquiryStatus string

const (
	// InquiryNew is the initial state on first contact.
	InquiryNew InquiryStatus = "NEW"

	// InquiryContacted means staff reached out to the customer.
	InquiryContacted InquiryStatus = "CONTACTED"

	// InquiryQuoted means a quote was sent. Entered automatically by
	// the quote service when a quote transitions to SENT.
	InquiryQuoted InquiryStatus = "QUOTED"

	// InquiryNegotiating means terms are under discussion.
	InquiryNegotiating InquiryStatus = "NEGOTIATING"

	// InquiryWon means the customer booked.
	InquiryWon InquiryStatus = "WON"

	// InquiryLost means the customer went elsewhere.
	InquiryLost InquiryStatus = "LOST"

	// InquiryArchived is the soft-deleted resting state.
	InquiryArchived InquiryStatus = "ARCHIVED"
)

// inquiryTransitions is the single source of truth for legal status
// moves. Transitions are monotonic: there is no path backwards except
// the administrative Reactivate override.
var inquiryTransitions = map[InquiryStatus][]InquiryStatus{
	InquiryNew:         {InquiryContacted, InquiryQuoted, InquiryLost},
	InquiryContacted:   {InquiryQuoted, InquiryNegotiating, InquiryLost},
	InquiryQuoted:      {InquiryNegotiating, InquiryWon, InquiryLost},
	InquiryNegotiating: {InquiryWon, InquiryLost},
	InquiryWon:         {InquiryArchived},
	InquiryLost:        {InquiryArchived},
	InquiryArchived:    {},
}

// Valid reports whether the status is a known member of the set.
func (s InquiryStatus) Valid() bool {
	_, ok := inquiryTransitions[s]
	return ok
}

// CanTransitionTo reports whether the move from s to next is legal.
func (s InquiryStatus) CanTransitionTo(next InquiryStatus) bool {
	for _, allowed := range inquiryTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Closed reports whether the inquiry has reached an end state.
// Closed inquiries reject status-advancing operations; only the
// administrative Reactivate override moves them again.
func (s InquiryStatus) Closed() bool {
	return s == InquiryWon || s == InquiryLost || s == InquiryArchived
}

// Priority orders inquiries for staff triage.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// Valid reports whether the priority is a known member of the set.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityNormal || p == PriorityHigh
}

// Contact is the customer's contact information. Treated as PII: the
// logging layer redacts these fields.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// Validate checks the contact against business rules.
func (c Contact) Validate() error {
	if c.Name == "" {
		return NewValidationError("contact.name", "is required")
	}

	if c.Email == "" && c.Phone == "" {
		return NewValidationError("contact", "at least one of email or phone is required")
	}

	return nil
}

// Note is one entry in an inquiry's append-only note log.
// Existing notes are never mutated.
type Note struct {
	ID        string
	Author    string
	Text      string
	CreatedAt time.Time
}

// Inquiry is a customer service request. It owns zero or more quotes;
// quotes reference it by ID. Inquiries are never hard-deleted in normal
// operation, only moved to soft end states.
type Inquiry struct {
	// ID is the unique identifier.
	ID string

	// Contact is the customer's contact information.
	Contact Contact

	// ServiceCategory is the requested service (catering, bar, ...).
	ServiceCategory string

	// EventDate is when the event takes place.
	EventDate time.Time

	// EventLocation is where the event takes place.
	EventLocation string

	// GuestCount is the expected headcount.
	GuestCount int

	// Status is the lifecycle state. Mutated only through Transition
	// and Reactivate.
	Status InquiryStatus

	// Priority orders the inquiry for staff triage.
	Priority Priority

	// Notes is the append-only sequence of staff notes.
	Notes []Note

	// Version is the optimistic-lock counter.
	Version int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the inquiry against business rules.
func (i *Inquiry) Validate() error {
	if err := i.Contact.Validate(); err != nil {
		return err
	}

	if i.GuestCount < 0 {
		return NewValidationErrorWithValue("guestCount", "must not be negative", i.GuestCount)
	}

	if i.Priority != "" && !i.Priority.Valid() {
		return NewValidationErrorWithValue("priority", "unknown priority", string(i.Priority))
	}

	return nil
}

// Transition moves the inquiry to the requested status, or returns an
// InvalidTransitionError leaving the state unchanged. Closed inquiries
// reject all transitions here; use Reactivate for the override.
func (i *Inquiry) Transition(to InquiryStatus) error {
	if !i.Status.CanTransitionTo(to) {
		return NewInvalidTransitionError("inquiry", string(i.Status), string(to))
	}

	i.Status = to

	return nil
}

// Reactivate is the administrative override that reopens a closed
// inquiry into NEGOTIATING. Callers are expected to audit-log the
// override. Returns an InvalidTransitionError if the inquiry is open.
func (i *Inquiry) Reactivate() error {
	if !i.Status.Closed() {
		return NewInvalidTransitionError("inquiry", string(i.Status), string(InquiryNegotiating))
	}

	i.Status = InquiryNegotiating

	return nil
}

// AddNote appends a note to the log. Existing notes are never touched.
func (i *Inquiry) AddNote(n Note) {
	i.Notes = append(i.Notes, n)
}
