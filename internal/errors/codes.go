package errors

// Error codes for the header toolchain. They appear in rendered reports and
// in editor diagnostics.
//
// Error code ranges:
// H0100-H0199: Header grammar errors
// H0900-H0999: Tooling errors

const (
	// H0100: A token or keyword the grammar expected was not found
	ErrorGrammar = "H0100"

	// H0101: A string literal is missing its closing quote
	ErrorUnterminatedString = "H0101"

	// H0102: A field or statement separator is missing
	ErrorMissingSeparator = "H0102"

	// H0103: A token has the right shape but its value is not accepted
	ErrorInvalidValue = "H0103"

	// H0900: A header file could not be read
	ErrorUnreadableFile = "H0900"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorGrammar:
		return "Expected token or keyword not found"
	case ErrorUnterminatedString:
		return "String literal is not closed before the end of the line"
	case ErrorMissingSeparator:
		return "Separator missing between fields or statements"
	case ErrorInvalidValue:
		return "Value is out of range or not a known identifier"
	case ErrorUnreadableFile:
		return "Header file could not be read"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "H0100" && code < "H0200":
		return "Grammar"
	case code >= "H0900" && code < "H1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
