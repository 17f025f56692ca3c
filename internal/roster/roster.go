// Package roster keeps the ordered list of travellers on a checkout session
// together with the validation errors recorded against each of them.
//
// Travellers and errors live in two maps keyed by traveller id; the order
// slice only remembers display order. Nothing is ever addressed by index.
package roster

import (
	"strings"

	"github.com/google/uuid"

	"BOAT_CHECKOUT_BACK-END/internal/models"
)

// MaxContactDigits is the length of a valid contact number
const MaxContactDigits = 10

// CaptureState tracks the simulated thumbprint capture of one traveller
type CaptureState string

const (
	CaptureIdle      CaptureState = "idle"
	CaptureCapturing CaptureState = "capturing"
	CaptureCaptured  CaptureState = "captured"
)

// FieldErrors holds the inline error message for each traveller field
type FieldErrors struct {
	Name          string `json:"name,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
	Thumbprint    string `json:"thumbprint,omitempty"`
}

// Empty reports whether no field carries an error
func (e FieldErrors) Empty() bool {
	return e.Name == "" && e.ContactNumber == "" && e.Thumbprint == ""
}

// Patch lists the fields to merge into a traveller. Nil fields are left alone.
type Patch struct {
	Name               *string
	ContactNumber      *string
	ThumbprintCaptured *bool
}

type entry struct {
	traveller models.Traveller
	capture   CaptureState
	// cancels the pending capture timer, nil when none is pending
	cancelCapture func()
}

// Roster is not safe for concurrent use; the owning session serialises access.
type Roster struct {
	order      []uuid.UUID
	travellers map[uuid.UUID]*entry
	errors     map[uuid.UUID]FieldErrors
}

// New returns an empty roster
func New() *Roster {
	return &Roster{
		travellers: make(map[uuid.UUID]*entry),
		errors:     make(map[uuid.UUID]FieldErrors),
	}
}

// SanitizeContact keeps digits only and truncates to MaxContactDigits
func SanitizeContact(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if b.Len() == MaxContactDigits {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Add appends an empty traveller and returns it
func (r *Roster) Add() models.Traveller {
	t := models.NewTraveller()
	r.order = append(r.order, t.ID)
	r.travellers[t.ID] = &entry{traveller: t, capture: CaptureIdle}
	return t
}

// Len returns the number of travellers
func (r *Roster) Len() int {
	return len(r.order)
}

// Get returns the traveller with the given id
func (r *Roster) Get(id uuid.UUID) (models.Traveller, bool) {
	e, ok := r.travellers[id]
	if !ok {
		return models.Traveller{}, false
	}
	return e.traveller, true
}

// List returns the travellers in display order
func (r *Roster) List() []models.Traveller {
	out := make([]models.Traveller, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.travellers[id].traveller)
	}
	return out
}

// Update merges patch into the traveller and clears the recorded error of
// exactly the fields it touches. Unknown ids are a no-op returning false.
// Contact numbers are sanitised here, at the point of entry.
func (r *Roster) Update(id uuid.UUID, patch Patch) bool {
	e, ok := r.travellers[id]
	if !ok {
		return false
	}

	errs, hasErrs := r.errors[id]

	if patch.Name != nil {
		e.traveller.Name = *patch.Name
		errs.Name = ""
	}
	if patch.ContactNumber != nil {
		e.traveller.ContactNumber = SanitizeContact(*patch.ContactNumber)
		errs.ContactNumber = ""
	}
	if patch.ThumbprintCaptured != nil {
		e.stopCapture()
		e.traveller.ThumbprintCaptured = *patch.ThumbprintCaptured
		if *patch.ThumbprintCaptured {
			e.capture = CaptureCaptured
		} else {
			e.capture = CaptureIdle
		}
		errs.Thumbprint = ""
	}

	if hasErrs {
		r.setErrors(id, errs)
	}
	return true
}

// Remove deletes the traveller, its errors and any pending capture.
// Callers must keep at least one traveller on the roster; Remove itself
// does not check.
func (r *Roster) Remove(id uuid.UUID) bool {
	e, ok := r.travellers[id]
	if !ok {
		return false
	}
	e.stopCapture()
	delete(r.travellers, id)
	delete(r.errors, id)

	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// AllCaptured reports whether every traveller has a captured thumbprint
func (r *Roster) AllCaptured() bool {
	for _, e := range r.travellers {
		if !e.traveller.ThumbprintCaptured {
			return false
		}
	}
	return true
}
