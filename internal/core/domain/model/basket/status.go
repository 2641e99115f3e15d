package basket

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Open
	Frozen
	Submitted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Open:      "Open",
		Frozen:    "Frozen",
		Submitted: "Submitted",
	}
}

func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus is the inverse of String.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a basket status", s))
}

func (s Status) IsEditable() bool {
	return s == Open
}

func (s Status) Freeze() (Status, error) {
	if s != Open {
		return Unknown, errs.NewStateIsInvalidError("basket", s.String())
	}
	return Frozen, nil
}

func (s Status) Thaw() (Status, error) {
	if s != Frozen {
		return Unknown, errs.NewStateIsInvalidError("basket", s.String())
	}
	return Open, nil
}

func (s Status) Submit() (Status, error) {
	if s != Open && s != Frozen {
		return Unknown, errs.NewStateIsInvalidError("basket", s.String())
	}
	return Submitted, nil
}
