package roster

import "github.com/google/uuid"

// CaptureState returns the capture state of a traveller
func (r *Roster) CaptureState(id uuid.UUID) (CaptureState, bool) {
	e, ok := r.travellers[id]
	if !ok {
		return "", false
	}
	return e.capture, true
}

// BeginCapture moves an idle traveller to Capturing and stores the cancel
// handle of the timer that will complete it. Returns false when the traveller
// is unknown or not idle.
func (r *Roster) BeginCapture(id uuid.UUID, cancel func()) bool {
	e, ok := r.travellers[id]
	if !ok || e.capture != CaptureIdle {
		return false
	}
	e.capture = CaptureCapturing
	e.cancelCapture = cancel
	return true
}

// CompleteCapture marks a capturing traveller as captured. Stale completions
// for removed or no longer capturing travellers return false.
func (r *Roster) CompleteCapture(id uuid.UUID) bool {
	e, ok := r.travellers[id]
	if !ok || e.capture != CaptureCapturing {
		return false
	}
	e.cancelCapture = nil
	captured := true
	return r.Update(id, Patch{ThumbprintCaptured: &captured})
}

// CancelCaptures stops every pending capture timer
func (r *Roster) CancelCaptures() {
	for _, e := range r.travellers {
		if e.capture == CaptureCapturing {
			e.stopCapture()
			e.capture = CaptureIdle
		}
	}
}

func (e *entry) stopCapture() {
	if e.cancelCapture != nil {
		e.cancelCapture()
		e.cancelCapture = nil
	}
}
