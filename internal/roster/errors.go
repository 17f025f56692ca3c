package roster

import "github.com/google/uuid"

// Errors returns the recorded errors of one traveller
func (r *Roster) Errors(id uuid.UUID) FieldErrors {
	return r.errors[id]
}

// AllErrors returns a copy of the errors map, omitting travellers without errors
func (r *Roster) AllErrors() map[uuid.UUID]FieldErrors {
	out := make(map[uuid.UUID]FieldErrors, len(r.errors))
	for id, errs := range r.errors {
		out[id] = errs
	}
	return out
}

// ReplaceErrors swaps the whole error snapshot. Entries for unknown
// travellers are dropped so both maps stay in sync.
func (r *Roster) ReplaceErrors(errs map[uuid.UUID]FieldErrors) {
	r.errors = make(map[uuid.UUID]FieldErrors, len(errs))
	for id, fe := range errs {
		if _, ok := r.travellers[id]; ok {
			r.setErrors(id, fe)
		}
	}
}

// ClearErrors removes every recorded error
func (r *Roster) ClearErrors() {
	r.errors = make(map[uuid.UUID]FieldErrors)
}

func (r *Roster) setErrors(id uuid.UUID, errs FieldErrors) {
	if errs.Empty() {
		delete(r.errors, id)
		return
	}
	r.errors[id] = errs
}
