package order

import (
	"fmt"
	"slices"

	"storefront/internal/pkg/errs"
)

// Status is the position of an order in the fulfilment pipeline.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota
	Pending
	Processing
	Shipped
	Complete
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Complete:   "Complete",
		Cancelled:  "Cancelled",
	}
}

// getPipeline lists the statuses each status may move to.
func getPipeline() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no successors
	return map[Status][]Status{
		Pending:    {Processing, Cancelled},
		Processing: {Shipped, Cancelled},
		Shipped:    {Complete},
	}
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
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

func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an order status", s))
}

// Next lists the statuses reachable in one step.
func (s Status) Next() []Status {
	return slices.Clone(getPipeline()[s])
}

func (s Status) IsFinal() bool {
	return len(getPipeline()[s]) == 0
}

// TransitionTo returns target when the pipeline allows moving there.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !slices.Contains(getPipeline()[s], target) {
		return Unknown, errs.NewStateIsInvalidErrorWithCause("order", s.String(),
			fmt.Errorf("%s cannot be changed to %s", s, target))
	}
	return target, nil
}
