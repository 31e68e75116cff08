package kernel

import (
	"regexp"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// SerialPattern is the format rule every serial number must satisfy: eight
// digits, a dash, and two digits (e.g. "78532608-69").
const SerialPattern = `^\d{8}-\d{2}$`

var serialPattern = regexp.MustCompile(SerialPattern)

// ErrSerialIsNotConstructed is returned when using an improperly initialized
// Serial. Serials must be created via the NewSerial constructor.
var ErrSerialIsNotConstructed = errs.NewValueIsRequiredError(
	"serial number must be created via NewSerial constructor")

// Serial is the validated unique identifier of a tracked unit.
// It is an immutable value object; a Serial that exists is guaranteed to
// match SerialPattern. The zero value is invalid and fails validation.
//
// Example:
//
//	serial, err := kernel.NewSerial("78532608-69")
//	if err != nil {
//	    // the format rule was violated
//	}
//	fmt.Println(serial) // Output: 78532608-69
type Serial struct {
	value string
	guard guard.ConstructorGuard
}

// NewSerial creates a Serial from its string form.
// Returns a required-value error for an empty string and an invalid-value
// error when the string does not match SerialPattern.
func NewSerial(value string) (Serial, error) {
	if value == "" {
		return Serial{}, errs.NewValueIsRequiredError("serial number")
	}
	if !serialPattern.MatchString(value) {
		return Serial{}, errs.NewValueIsInvalidError("serial number")
	}

	return Serial{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Serial was built through NewSerial.
func (s Serial) Validate() error {
	return s.guard.Validate(ErrSerialIsNotConstructed)
}

// String returns the serial number in its canonical string form.
func (s Serial) String() string {
	return s.value
}

// IsEqual compares two serials by value.
func (s Serial) IsEqual(other Serial) bool {
	return s.value == other.value
}
