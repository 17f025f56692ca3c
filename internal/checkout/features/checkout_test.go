package features

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"BOAT_CHECKOUT_BACK-END/internal/checkout"
	"BOAT_CHECKOUT_BACK-END/internal/checkout/checkouttest"
	"BOAT_CHECKOUT_BACK-END/internal/roster"
)

const dateLayout = "2006-01-02"

type checkoutTestContext struct {
	today     time.Time
	scheduler *checkouttest.Scheduler
	session   *checkout.Session
	coupon    checkout.CouponOutcome
	notices   []checkout.Notice
	err       error
}

func (c *checkoutTestContext) reset() {
	c.today = time.Now()
	c.scheduler = checkouttest.NewScheduler()
	c.session = nil
	c.coupon = checkout.CouponOutcome{}
	c.notices = nil
	c.err = nil
}

func (c *checkoutTestContext) todayIs(date string) error {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return err
	}
	c.today = d
	return nil
}

func (c *checkoutTestContext) aNewCheckoutSession() error {
	c.session = checkout.NewManager(checkout.Options{
		Scheduler: c.scheduler,
		Now:       func() time.Time { return c.today },
	}, 0).Create()
	return nil
}

func (c *checkoutTestContext) travellerID(n int) (string, error) {
	travellers := c.session.Snapshot().Travellers
	if n < 1 || n > len(travellers) {
		return "", fmt.Errorf("no traveller %d, session has %d", n, len(travellers))
	}
	return travellers[n-1].ID.String(), nil
}

func (c *checkoutTestContext) theSessionHasTravellers(n int) error {
	for len(c.session.Snapshot().Travellers) < n {
		if _, err := c.session.AddTraveller(); err != nil {
			return err
		}
	}
	return nil
}

func (c *checkoutTestContext) theSessionShouldHaveTravellers(n int) error {
	if got := len(c.session.Snapshot().Travellers); got != n {
		return fmt.Errorf("expected %d travellers, got %d", n, got)
	}
	return nil
}

func (c *checkoutTestContext) iAddATraveller() error {
	_, err := c.session.AddTraveller()
	return err
}

func (c *checkoutTestContext) iRemoveTheLastTraveller() error {
	travellers := c.session.Snapshot().Travellers
	return c.session.RemoveTraveller(travellers[len(travellers)-1].ID)
}

func (c *checkoutTestContext) theTravellerCannotBeRemoved() error {
	if c.session.Snapshot().CanRemoveTraveller {
		return errors.New("expected the only traveller to be locked in")
	}
	if err := c.session.RemoveTraveller(c.session.Snapshot().Travellers[0].ID); !errors.Is(err, checkout.ErrLastTraveller) {
		return fmt.Errorf("expected ErrLastTraveller, got %v", err)
	}
	return nil
}

func (c *checkoutTestContext) travellerIsNamedWithContact(n int, name, contact string) error {
	travellers := c.session.Snapshot().Travellers
	if n < 1 || n > len(travellers) {
		return fmt.Errorf("no traveller %d", n)
	}
	_, err := c.session.UpdateTraveller(travellers[n-1].ID, roster.Patch{Name: &name, ContactNumber: &contact})
	return err
}

func (c *checkoutTestContext) iRenameTraveller(n int, name string) error {
	travellers := c.session.Snapshot().Travellers
	if n < 1 || n > len(travellers) {
		return fmt.Errorf("no traveller %d", n)
	}
	_, err := c.session.UpdateTraveller(travellers[n-1].ID, roster.Patch{Name: &name})
	return err
}

func (c *checkoutTestContext) everyThumbprintIsCaptured() error {
	for _, t := range c.session.Snapshot().Travellers {
		if _, err := c.session.CaptureThumbprint(t.ID); err != nil {
			return err
		}
	}
	c.scheduler.Advance(checkout.DefaultCaptureDelay)
	if !c.session.Snapshot().AllThumbprintsCaptured {
		return errors.New("expected every thumbprint to be captured")
	}
	return nil
}

func (c *checkoutTestContext) theTravelDateIs(date string) error {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return err
	}
	return c.session.SetTravelDate(&d)
}

func (c *checkoutTestContext) iApplyCoupon(code string) error {
	c.coupon, c.err = c.session.ApplyCoupon(code)
	return c.err
}

func (c *checkoutTestContext) theCouponIsAccepted(message string) error {
	if !c.coupon.Valid {
		return fmt.Errorf("expected coupon to be accepted, got %q", c.coupon.Message)
	}
	if c.coupon.Message != message {
		return fmt.Errorf("expected message %q, got %q", message, c.coupon.Message)
	}
	return nil
}

func (c *checkoutTestContext) theCouponIsRejected(message string) error {
	if c.coupon.Valid {
		return errors.New("expected coupon to be rejected")
	}
	if got := c.session.Snapshot().CouponError; got != message {
		return fmt.Errorf("expected coupon error %q, got %q", message, got)
	}
	return nil
}

func (c *checkoutTestContext) noCouponIsApplied() error {
	if code := c.session.Snapshot().AppliedCoupon; code != "" {
		return fmt.Errorf("expected no coupon, got %q", code)
	}
	return nil
}

func (c *checkoutTestContext) theDiscountIs(amount int) error {
	if got := c.session.Snapshot().Summary.Discount; got != int64(amount) {
		return fmt.Errorf("expected discount %d, got %d", amount, got)
	}
	return nil
}

func (c *checkoutTestContext) theFinalAmountIs(amount int) error {
	if got := c.session.Snapshot().Summary.FinalAmount; got != int64(amount) {
		return fmt.Errorf("expected final amount %d, got %d", amount, got)
	}
	return nil
}

func (c *checkoutTestContext) iValidateTheForm() error {
	c.session.ValidateForm()
	return nil
}

func (c *checkoutTestContext) iSubmitTheBooking() error {
	c.err = c.session.Submit()
	return nil
}

func (c *checkoutTestContext) theSubmissionFailsValidation() error {
	if !errors.Is(c.err, checkout.ErrValidationFailed) {
		return fmt.Errorf("expected ErrValidationFailed, got %v", c.err)
	}
	return nil
}

func (c *checkoutTestContext) theSessionIsSubmitting() error {
	if c.err != nil {
		return fmt.Errorf("expected submission to start, got %v", c.err)
	}
	if !c.session.Snapshot().Submitting {
		return errors.New("expected session to be submitting")
	}
	return nil
}

func (c *checkoutTestContext) secondsPass(n int) error {
	c.scheduler.Advance(time.Duration(n) * time.Second)
	return nil
}

func (c *checkoutTestContext) findNotice(title string) (checkout.Notice, error) {
	c.notices = append(c.notices, c.session.DrainNotices()...)
	for _, n := range c.notices {
		if n.Title == title {
			return n, nil
		}
	}
	return checkout.Notice{}, fmt.Errorf("no %q notice in %v", title, c.notices)
}

func (c *checkoutTestContext) aNoticeIsPublished(title string) error {
	_, err := c.findNotice(title)
	return err
}

func (c *checkoutTestContext) aNoticeSays(title, description string) error {
	n, err := c.findNotice(title)
	if err != nil {
		return err
	}
	if n.Description != description {
		return fmt.Errorf("expected %q, got %q", description, n.Description)
	}
	return nil
}

func (c *checkoutTestContext) fieldErrors(n int) (roster.FieldErrors, error) {
	travellers := c.session.Snapshot().Travellers
	if n < 1 || n > len(travellers) {
		return roster.FieldErrors{}, fmt.Errorf("no traveller %d", n)
	}
	return travellers[n-1].Errors, nil
}

func (c *checkoutTestContext) travellerHasNameError(n int, message string) error {
	fe, err := c.fieldErrors(n)
	if err != nil {
		return err
	}
	if fe.Name != message {
		return fmt.Errorf("expected name error %q, got %q", message, fe.Name)
	}
	return nil
}

func (c *checkoutTestContext) travellerHasNoNameError(n int) error {
	return c.travellerHasNameError(n, "")
}

func (c *checkoutTestContext) travellerHasContactError(n int, message string) error {
	fe, err := c.fieldErrors(n)
	if err != nil {
		return err
	}
	if fe.ContactNumber != message {
		return fmt.Errorf("expected contact error %q, got %q", message, fe.ContactNumber)
	}
	return nil
}

func (c *checkoutTestContext) theDateErrorIs(message string) error {
	if got := c.session.Snapshot().DateError; got != message {
		return fmt.Errorf("expected date error %q, got %q", message, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &checkoutTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^today is "([^"]*)"$`, tc.todayIs)
	ctx.Step(`^a new checkout session$`, tc.aNewCheckoutSession)
	ctx.Step(`^the session has (\d+) travellers$`, tc.theSessionHasTravellers)
	ctx.Step(`^traveller (\d+) is named "([^"]*)" with contact "([^"]*)"$`, tc.travellerIsNamedWithContact)
	ctx.Step(`^every thumbprint is captured$`, tc.everyThumbprintIsCaptured)
	ctx.Step(`^the travel date is "([^"]*)"$`, tc.theTravelDateIs)
	// When steps
	ctx.Step(`^I add a traveller$`, tc.iAddATraveller)
	ctx.Step(`^I remove the last traveller$`, tc.iRemoveTheLastTraveller)
	ctx.Step(`^I apply coupon "([^"]*)"$`, tc.iApplyCoupon)
	ctx.Step(`^I rename traveller (\d+) to "([^"]*)"$`, tc.iRenameTraveller)
	ctx.Step(`^I validate the form$`, tc.iValidateTheForm)
	ctx.Step(`^I submit the booking$`, tc.iSubmitTheBooking)
	ctx.Step(`^(\d+) seconds pass$`, tc.secondsPass)
	// Then steps
	ctx.Step(`^the session has (\d+) traveller$`, tc.theSessionShouldHaveTravellers)
	ctx.Step(`^the traveller cannot be removed$`, tc.theTravellerCannotBeRemoved)
	ctx.Step(`^the coupon is accepted with "([^"]*)"$`, tc.theCouponIsAccepted)
	ctx.Step(`^the coupon is rejected with "([^"]*)"$`, tc.theCouponIsRejected)
	ctx.Step(`^no coupon is applied$`, tc.noCouponIsApplied)
	ctx.Step(`^the discount is (\d+)$`, tc.theDiscountIs)
	ctx.Step(`^the final amount is (\d+)$`, tc.theFinalAmountIs)
	ctx.Step(`^the submission fails validation$`, tc.theSubmissionFailsValidation)
	ctx.Step(`^the session is submitting$`, tc.theSessionIsSubmitting)
	ctx.Step(`^a "([^"]*)" notice is published$`, tc.aNoticeIsPublished)
	ctx.Step(`^a "([^"]*)" notice says "([^"]*)"$`, tc.aNoticeSays)
	ctx.Step(`^traveller (\d+) has name error "([^"]*)"$`, tc.travellerHasNameError)
	ctx.Step(`^traveller (\d+) has no name error$`, tc.travellerHasNoNameError)
	ctx.Step(`^traveller (\d+) has contact error "([^"]*)"$`, tc.travellerHasContactError)
	ctx.Step(`^the date error is "([^"]*)"$`, tc.theDateErrorIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"checkout.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
