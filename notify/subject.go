package notify

import (
	"fmt"

	"github.com/modelvision/leadgen/model"
)

// Subject lines are keyed by the marketing category that produced the lead.
// Each format interpolates name, postcode, age, mobile, email in that order.
// New categories are added here, not branched on.
var subjectFormats = map[string]string{
	"landingads": "%s--Ad-Ld-%s-%s-%s-%s",
	"ads":        "%s--Ad-%s-%s-%s-%s",
	"landing":    "%s--Fb-Ld-%s-%s-%s-%s",
}

// organic leads carry no category
const defaultSubjectFormat = "%s--Fb-%s-%s-%s-%s"

func Subject(signup model.Signup) string {
	format := defaultSubjectFormat
	if signup.Category != nil {
		if f, ok := subjectFormats[*signup.Category]; ok {
			format = f
		}
	}
	return fmt.Sprintf(format, signup.Name, signup.Postcode, signup.Age, signup.Mobile, signup.Email)
}
