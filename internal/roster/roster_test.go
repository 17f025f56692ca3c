package roster

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestSanitizeContact(t *testing.T) {
	tests := []struct {
		description string
		input       string
		expected    string
	}{
		{"digits only", "9876543210", "9876543210"},
		{"strips formatting", "+91 (987) 654-32", "9198765432"},
		{"truncates to ten", "123456789012345", "1234567890"},
		{"letters dropped", "abc12def3", "123"},
		{"non ascii digits dropped", "١٢٣45", "45"},
		{"empty", "", ""},
	}

	for _, test := range tests {
		assert.Equalf(t, test.expected, SanitizeContact(test.input), test.description)
	}
}

func TestAdd_CreatesEmptyTravellers(t *testing.T) {
	r := New()
	a := r.Add()
	b := r.Add()

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, r.Len())
	assert.Empty(t, a.Name)
	assert.Empty(t, a.ContactNumber)
	assert.False(t, a.ThumbprintCaptured)

	state, ok := r.CaptureState(a.ID)
	require.True(t, ok)
	assert.Equal(t, CaptureIdle, state)

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, b.ID, list[1].ID)
}

func TestUpdate_MergesFields(t *testing.T) {
	r := New()
	tr := r.Add()

	ok := r.Update(tr.ID, Patch{Name: strPtr("Asha Rao")})
	require.True(t, ok)
	ok = r.Update(tr.ID, Patch{ContactNumber: strPtr("98765-43210-99")})
	require.True(t, ok)

	got, _ := r.Get(tr.ID)
	assert.Equal(t, "Asha Rao", got.Name)
	assert.Equal(t, "9876543210", got.ContactNumber)
	assert.False(t, got.ThumbprintCaptured)
}

func TestUpdate_UnknownIDIsNoop(t *testing.T) {
	r := New()
	tr := r.Add()

	assert.False(t, r.Update(uuid.New(), Patch{Name: strPtr("X")}))
	got, _ := r.Get(tr.ID)
	assert.Empty(t, got.Name)
}

func TestUpdate_ClearsOnlyTouchedFieldErrors(t *testing.T) {
	r := New()
	tr := r.Add()
	r.ReplaceErrors(map[uuid.UUID]FieldErrors{
		tr.ID: {
			Name:          "Name must be at least 2 characters",
			ContactNumber: "Contact number must be 10 digits",
			Thumbprint:    "Thumbprint verification is required",
		},
	})

	r.Update(tr.ID, Patch{Name: strPtr("Ravi")})

	errs := r.Errors(tr.ID)
	assert.Empty(t, errs.Name)
	assert.Equal(t, "Contact number must be 10 digits", errs.ContactNumber)
	assert.Equal(t, "Thumbprint verification is required", errs.Thumbprint)

	r.Update(tr.ID, Patch{ContactNumber: strPtr("9876543210"), ThumbprintCaptured: boolPtr(true)})
	assert.True(t, r.Errors(tr.ID).Empty())
	assert.NotContains(t, r.AllErrors(), tr.ID)
}

func TestRemove_DropsTravellerAndErrors(t *testing.T) {
	r := New()
	a := r.Add()
	b := r.Add()
	c := r.Add()
	r.ReplaceErrors(map[uuid.UUID]FieldErrors{b.ID: {Name: "Name is required"}})

	require.True(t, r.Remove(b.ID))
	assert.False(t, r.Remove(b.ID))

	assert.Equal(t, 2, r.Len())
	list := r.List()
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, c.ID, list[1].ID)
	assert.Empty(t, r.AllErrors())
}

func TestReplaceErrors_DropsUnknownTravellers(t *testing.T) {
	r := New()
	tr := r.Add()
	stray := uuid.New()

	r.ReplaceErrors(map[uuid.UUID]FieldErrors{
		tr.ID: {Name: "Name is required"},
		stray: {Name: "Name is required"},
		uuid.New(): {},
	})

	all := r.AllErrors()
	assert.Len(t, all, 1)
	assert.Contains(t, all, tr.ID)

	r.ClearErrors()
	assert.Empty(t, r.AllErrors())
}

func TestCapture_Lifecycle(t *testing.T) {
	r := New()
	tr := r.Add()
	cancelled := 0

	require.True(t, r.BeginCapture(tr.ID, func() { cancelled++ }))
	assert.False(t, r.BeginCapture(tr.ID, func() {}), "already capturing")

	state, _ := r.CaptureState(tr.ID)
	assert.Equal(t, CaptureCapturing, state)
	assert.False(t, r.AllCaptured())

	require.True(t, r.CompleteCapture(tr.ID))
	assert.Equal(t, 0, cancelled, "completing must not cancel its own timer")

	got, _ := r.Get(tr.ID)
	assert.True(t, got.ThumbprintCaptured)
	state, _ = r.CaptureState(tr.ID)
	assert.Equal(t, CaptureCaptured, state)
	assert.True(t, r.AllCaptured())

	assert.False(t, r.CompleteCapture(tr.ID), "second completion is stale")
	assert.False(t, r.BeginCapture(tr.ID, func() {}), "captured travellers stay captured")
}

func TestCapture_RemoveCancelsPendingTimer(t *testing.T) {
	r := New()
	r.Add()
	tr := r.Add()
	cancelled := false

	r.BeginCapture(tr.ID, func() { cancelled = true })
	r.Remove(tr.ID)

	assert.True(t, cancelled)
	assert.False(t, r.CompleteCapture(tr.ID))
}

func TestCancelCaptures(t *testing.T) {
	r := New()
	a := r.Add()
	b := r.Add()
	calls := 0

	r.BeginCapture(a.ID, func() { calls++ })
	r.BeginCapture(b.ID, func() { calls++ })
	r.CompleteCapture(b.ID)

	r.CancelCaptures()

	assert.Equal(t, 1, calls)
	state, _ := r.CaptureState(a.ID)
	assert.Equal(t, CaptureIdle, state)
	state, _ = r.CaptureState(b.ID)
	assert.Equal(t, CaptureCaptured, state)
}
