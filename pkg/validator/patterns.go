package validator

import "regexp"

var (
	// EmailShape accepts anything shaped like "x@y.z" without whitespace.
	EmailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

	// RFCEmailShape is a stricter address check: dot-atom local part and a
	// dotted domain with an alphabetic top-level label.
	RFCEmailShape = regexp.MustCompile(`^[A-Za-z0-9!#$%&'*+/=?^_{|}~-]+(\.[A-Za-z0-9!#$%&'*+/=?^_{|}~-]+)*@([A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?\.)+[A-Za-z]{2,}$`)

	// URLShape requires a scheme and a host, e.g. "https://example.com/path".
	URLShape = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://[^\s/?#]+([/?#]\S*)?$`)

	// LettersAndSpaces accepts ASCII letters and whitespace only.
	LettersAndSpaces = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

// Email matches EmailShape.
func Email() Rule {
	r := Pattern(EmailShape, "email")
	r.message = "%{field} must be a valid email address"
	r.key = "validation.email"
	return r
}

// RFCEmail matches RFCEmailShape.
func RFCEmail() Rule {
	r := Pattern(RFCEmailShape, "email")
	r.message = "%{field} must be a valid email address"
	r.key = "validation.email"
	return r
}

// URL matches URLShape.
func URL() Rule {
	r := Pattern(URLShape, "url")
	r.message = "%{field} must be a valid URL"
	r.key = "validation.url"
	return r
}

// Letters matches LettersAndSpaces.
func Letters() Rule {
	r := Pattern(LettersAndSpaces, "letters and spaces")
	r.message = "%{field} may contain only letters and spaces"
	r.key = "validation.letters_and_spaces"
	return r
}
