package wizard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelvision/leadgen/model"
)

func TestSequenceInsertsParentMobileForMinors(t *testing.T) {
	adult := Sequence(Answers{FieldAge: "18"})
	assert.Equal(t, []Field{FieldName, FieldGender, FieldEmail, FieldAge, FieldMobile, FieldPostcode, FieldPhoto}, adult)

	minor := Sequence(Answers{FieldAge: "17"})
	assert.Equal(t, []Field{FieldName, FieldGender, FieldEmail, FieldAge, FieldParentMobile, FieldMobile, FieldPostcode, FieldPhoto}, minor)

	// no age entered yet
	assert.NotContains(t, Sequence(Answers{}), FieldParentMobile)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		field Field
		value string
		ok    bool
	}{
		{FieldName, "Ada", true},
		{FieldName, "   ", false},
		{FieldGender, "female", true},
		{FieldGender, "unsure", false},
		{FieldEmail, "ada@example.com", true},
		{FieldEmail, "ada@example", false},
		{FieldEmail, "not-an-email", false},
		{FieldAge, "17", true},
		{FieldAge, "7", true},
		{FieldAge, "117", false},
		{FieldAge, "", false},
		{FieldAge, "1a", false},
		{FieldMobile, "7000000000", true},
		{FieldMobile, "+447000000000", false},
		{FieldMobile, "", false},
		{FieldParentMobile, "7111111111", true},
		{FieldParentMobile, "mum", false},
		{FieldPostcode, "AB12CD", true},
		{FieldPostcode, "AB12 CD", false},
		{FieldPostcode, "", false},
		{FieldPhoto, "", true},
	}
	for _, tt := range tests {
		err := Validate(tt.field, tt.value)
		if tt.ok {
			assert.NoError(t, err, "%s=%q", tt.field, tt.value)
		} else {
			assert.Error(t, err, "%s=%q", tt.field, tt.value)
		}
	}
}

// walk drives the wizard through the given answers, failing on any blocked step.
func walk(t *testing.T, wz *Wizard, answers map[Field]string) {
	t.Helper()
	for !wz.AtEnd() {
		wz.Enter(answers[wz.Current()])
		require.NoError(t, wz.Next(), "step %s", wz.Current())
	}
}

var adultAnswers = map[Field]string{
	FieldName:     "Ada",
	FieldGender:   "female",
	FieldEmail:    "ada@example.com",
	FieldAge:      "21",
	FieldMobile:   "7000000000",
	FieldPostcode: "AB12CD",
}

func TestNextBlocksInvalidStep(t *testing.T) {
	wz := New(NewClient("http://localhost:0", "landing"))

	wz.Enter("   ")
	err := wz.Next()
	require.Error(t, err)
	assert.Equal(t, FieldName, wz.Current())

	wz.Enter("Ada")
	require.NoError(t, wz.Next())
	assert.Equal(t, FieldGender, wz.Current())
}

func TestMinorAgeLandsOnParentMobile(t *testing.T) {
	wz := New(NewClient("http://localhost:0", "landing"))
	for _, answer := range []string{"Ada", "female", "ada@example.com"} {
		wz.Enter(answer)
		require.NoError(t, wz.Next())
	}

	wz.Enter("17")
	require.NoError(t, wz.Next())
	assert.Equal(t, FieldParentMobile, wz.Current())
}

func TestAgeEditRemovesParentMobile(t *testing.T) {
	wz := New(NewClient("http://localhost:0", "landing"))
	for _, answer := range []string{"Ada", "female", "ada@example.com", "17"} {
		wz.Enter(answer)
		require.NoError(t, wz.Next())
	}
	wz.Enter("7111111111")

	// back to age, raise it to 18
	wz.Back()
	assert.Equal(t, FieldAge, wz.Current())
	wz.Enter("18")

	assert.NotContains(t, wz.Steps(), FieldParentMobile)
	assert.Empty(t, wz.Value(FieldParentMobile), "captured value must be discarded")

	require.NoError(t, wz.Next())
	assert.Equal(t, FieldMobile, wz.Current())
}

func TestBackKeepsData(t *testing.T) {
	wz := New(NewClient("http://localhost:0", "landing"))
	wz.Enter("Ada")
	require.NoError(t, wz.Next())

	wz.Back()
	assert.Equal(t, FieldName, wz.Current())
	assert.Equal(t, "Ada", wz.Value(FieldName))

	// Back on step 0 stays put
	wz.Back()
	assert.Equal(t, 0, wz.StepIndex())
}

func TestSubmitOnlyOnFinalStep(t *testing.T) {
	wz := New(NewClient("http://localhost:0", "landing"))
	_, err := wz.Submit(context.Background())
	require.Error(t, err)
}

func TestSubmitSuccessResetsState(t *testing.T) {
	var got model.SignupRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    model.Signup{ID: 7, Name: got.Name},
		})
	}))
	defer srv.Close()

	wz := New(NewClient(srv.URL, "landing"))
	walk(t, wz, adultAnswers)

	signup, err := wz.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, signup.ID)
	assert.Equal(t, "landing", got.Category)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "21", got.Age)

	// all fields cleared, back to step 0
	assert.Equal(t, 0, wz.StepIndex())
	assert.Empty(t, wz.Value(FieldName))
}

func TestSubmitFailureKeepsState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"error": "could not save signup"})
	}))
	defer srv.Close()

	wz := New(NewClient(srv.URL, "landing"))
	walk(t, wz, adultAnswers)

	_, err := wz.Submit(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not save signup")

	// entered data survives for a retry
	assert.True(t, wz.AtEnd())
	assert.Equal(t, "Ada", wz.Value(FieldName))
	assert.Equal(t, "AB12CD", wz.Value(FieldPostcode))
}
