package checkout

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"BOAT_CHECKOUT_BACK-END/internal/models"
	"BOAT_CHECKOUT_BACK-END/internal/roster"
)

const minNameLength = 2

// ValidateForm checks every traveller and the travel date, replacing all
// previously recorded errors with a fresh snapshot. Returns true when the
// form is ready to submit; a closed session is never valid.
func (s *Session) ValidateForm() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.touch()
	return s.validateLocked()
}

func (s *Session) validateLocked() bool {
	errs := make(map[uuid.UUID]roster.FieldErrors)
	valid := true

	for _, t := range s.roster.List() {
		fe := validateTraveller(t)
		if !fe.Empty() {
			errs[t.ID] = fe
			valid = false
		}
	}
	s.roster.ReplaceErrors(errs)

	if s.travelDate == nil {
		s.dateError = MsgDateRequired
		valid = false
	} else {
		s.dateError = ""
	}

	return valid
}

func validateTraveller(t models.Traveller) roster.FieldErrors {
	var fe roster.FieldErrors

	name := strings.TrimSpace(t.Name)
	switch {
	case name == "":
		fe.Name = MsgNameRequired
	case utf8.RuneCountInString(name) < minNameLength:
		fe.Name = MsgNameTooShort
	}

	switch {
	case t.ContactNumber == "":
		fe.ContactNumber = MsgContactRequired
	case len(t.ContactNumber) != roster.MaxContactDigits || roster.SanitizeContact(t.ContactNumber) != t.ContactNumber:
		fe.ContactNumber = MsgContactLength
	}

	if !t.ThumbprintCaptured {
		fe.Thumbprint = MsgThumbprintRequired
	}
	return fe
}
