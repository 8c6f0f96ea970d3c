// Package wizard implements the multi-step signup form as an explicit state
// machine: an ordered step sequence derived from the answers, per-step
// validation gating Next, and a single submission call at the end.
package wizard

import (
	"context"
	"errors"
	"io"

	"github.com/modelvision/leadgen/model"
)

type Wizard struct {
	client   *Client
	answers  Answers
	photoURI string
	step     int
}

func New(client *Client) *Wizard {
	return &Wizard{
		client:  client,
		answers: Answers{},
	}
}

// Steps is the active ordered sequence, recomputed from the answers.
func (wz *Wizard) Steps() []Field {
	return Sequence(wz.answers)
}

// Current is the field collected by the active step.
func (wz *Wizard) Current() Field {
	return wz.Steps()[wz.step]
}

func (wz *Wizard) StepIndex() int {
	return wz.step
}

func (wz *Wizard) Value(field Field) string {
	return wz.answers[field]
}

// Enter records a value for the active step. Editing age back to 18 or over
// drops the parent-mobile step along with its captured value.
func (wz *Wizard) Enter(value string) {
	field := wz.Current()
	wz.answers[field] = value

	if field == FieldAge && !isMinor(value) {
		delete(wz.answers, FieldParentMobile)
	}
}

// Next validates the active step and advances. The sequence is recomputed
// first, so completing the age step with a value under 18 lands on the
// freshly present parent-mobile step.
func (wz *Wizard) Next() error {
	err := Validate(wz.Current(), wz.answers[wz.Current()])
	if err != nil {
		return err
	}

	if wz.step >= len(wz.Steps())-1 {
		return errors.New("already on the final step")
	}
	wz.step++
	return nil
}

// Back is always permitted above step 0 and never discards entered data.
func (wz *Wizard) Back() {
	if wz.step > 0 {
		wz.step--
	}
}

// AtEnd reports whether the active step is the final one.
func (wz *Wizard) AtEnd() bool {
	return wz.step == len(wz.Steps())-1
}

// AttachPhoto reads, downsizes and encodes a photo for the optional final
// step. A non-decodable image is rejected here.
func (wz *Wizard) AttachPhoto(r io.Reader) error {
	uri, err := EncodePhoto(r)
	if err != nil {
		return err
	}
	wz.photoURI = uri
	return nil
}

// Submit issues the one network call of a wizard run. Permitted only on a
// valid final step. Success clears all entered data and returns to step 0;
// failure leaves everything intact so the user can retry.
func (wz *Wizard) Submit(ctx context.Context) (*model.Signup, error) {
	if !wz.AtEnd() {
		return nil, errors.New("not on the final step")
	}
	err := Validate(wz.Current(), wz.answers[wz.Current()])
	if err != nil {
		return nil, err
	}

	req := model.SignupRequest{
		Name:         wz.answers[FieldName],
		Gender:       wz.answers[FieldGender],
		Email:        wz.answers[FieldEmail],
		Age:          wz.answers[FieldAge],
		Mobile:       wz.answers[FieldMobile],
		ParentMobile: wz.answers[FieldParentMobile],
		Postcode:     wz.answers[FieldPostcode],
		Photo:        wz.photoURI,
	}

	signup, err := wz.client.Submit(ctx, req)
	if err != nil {
		return nil, err
	}

	wz.answers = Answers{}
	wz.photoURI = ""
	wz.step = 0
	return signup, nil
}
