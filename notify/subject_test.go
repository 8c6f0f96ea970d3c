package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelvision/leadgen/model"
)

func signupFixture(category string) model.Signup {
	s := model.Signup{
		Name:     "Ada",
		Email:    "ada@example.com",
		Age:      "17",
		Gender:   "female",
		Mobile:   "7000000000",
		Postcode: "AB12CD",
	}
	if category != "" {
		s.Category = &category
	}
	return s
}

func TestSubjectByCategory(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"landing", "Ada--Fb-Ld-AB12CD-17-7000000000-ada@example.com"},
		{"landingads", "Ada--Ad-Ld-AB12CD-17-7000000000-ada@example.com"},
		{"ads", "Ada--Ad-AB12CD-17-7000000000-ada@example.com"},
		{"", "Ada--Fb-AB12CD-17-7000000000-ada@example.com"},
		{"snap", "Ada--Fb-AB12CD-17-7000000000-ada@example.com"}, // unknown category falls back to organic
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Subject(signupFixture(tt.category)), "category %q", tt.category)
	}
}

func TestBodyIncludesParentMobile(t *testing.T) {
	signup := signupFixture("landing")
	signup.ParentMobile = "7111111111"

	body, err := Body(signup)
	require.NoError(t, err)
	assert.Contains(t, body, "Parent's Mobile:")
	assert.Contains(t, body, "7111111111")
}

func TestBodyOmitsMissingParts(t *testing.T) {
	body, err := Body(signupFixture(""))
	require.NoError(t, err)
	assert.NotContains(t, body, "Parent")
	assert.NotContains(t, body, "<img")
	assert.Contains(t, body, "Not specified")
	assert.Contains(t, body, "Female")
}

func TestBodyIncludesPhoto(t *testing.T) {
	signup := signupFixture("ads")
	url := "https://cdn.example.com/storage/v1/object/public/model-photos/1-ada.jpg"
	signup.PhotoURL = &url

	body, err := Body(signup)
	require.NoError(t, err)
	assert.Contains(t, body, url)
}
