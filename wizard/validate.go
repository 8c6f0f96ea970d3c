package wizard

import (
	"errors"
	"regexp"
	"strings"
)

var (
	reEmail  = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	reAge    = regexp.MustCompile(`^[0-9]{1,2}$`)
	reDigits = regexp.MustCompile(`^[0-9]+$`)
	reAlnum  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// Validate applies the per-field rule a step must pass before the wizard
// advances. The photo step is optional and always passes; attachment is
// where a broken image is rejected.
func Validate(field Field, value string) error {
	switch field {
	case FieldName:
		if strings.TrimSpace(value) == "" {
			return errors.New("Please enter your name.")
		}
	case FieldGender:
		switch value {
		case "female", "male", "other":
		default:
			return errors.New("Please select female, male or other.")
		}
	case FieldEmail:
		if !reEmail.MatchString(value) {
			return errors.New("Please enter a valid email address.")
		}
	case FieldAge:
		if !reAge.MatchString(value) {
			return errors.New("Age must be a number with a maximum of 2 digits.")
		}
	case FieldMobile:
		if !reDigits.MatchString(value) {
			return errors.New("Mobile Number must contain only numbers.")
		}
	case FieldParentMobile:
		if !reDigits.MatchString(value) {
			return errors.New("Parent's Mobile Number must contain only numbers.")
		}
	case FieldPostcode:
		if !reAlnum.MatchString(value) {
			return errors.New("Postcode must contain only letters and numbers.")
		}
	case FieldPhoto:
		// optional
	}
	return nil
}
