package wizard

import "strconv"

type Field string

const (
	FieldName         Field = "name"
	FieldGender       Field = "gender"
	FieldEmail        Field = "email"
	FieldAge          Field = "age"
	FieldMobile       Field = "mobile"
	FieldParentMobile Field = "parentMobile"
	FieldPostcode     Field = "postcode"
	FieldPhoto        Field = "photo"
)

// Answers holds the in-progress field values of one wizard run.
type Answers map[Field]string

// Sequence derives the ordered step list from the answers entered so far.
// The parent-mobile step sits immediately after the age step, and is present
// iff the entered age parses below 18. Recomputing on every change replaces
// imperative step splicing: the rule lives in one pure function.
func Sequence(answers Answers) []Field {
	steps := []Field{FieldName, FieldGender, FieldEmail, FieldAge}
	if isMinor(answers[FieldAge]) {
		steps = append(steps, FieldParentMobile)
	}
	return append(steps, FieldMobile, FieldPostcode, FieldPhoto)
}

func isMinor(age string) bool {
	n, err := strconv.Atoi(age)
	return err == nil && n < 18
}
