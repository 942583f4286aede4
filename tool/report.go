package tool

import (
	"fmt"

	"github.com/fwojciec/drawguide"
)

// Report turns an operation error into a message for the caller. It names
// the operation and the failure class and never includes stack traces.
func Report(op string, err error) string {
	if err == nil {
		return ""
	}

	var class string
	switch drawguide.ErrorCode(err) {
	case drawguide.ENETWORK:
		class = "network error"
	case drawguide.ESTRUCTURE:
		class = "page structure not recognized"
	case drawguide.EUNSUPPORTEDDOMAIN:
		class = "unsupported domain"
	case drawguide.EUNSUPPORTEDSOURCE:
		class = "unsupported source"
	case drawguide.EINVALID:
		class = "invalid argument"
	default:
		class = "internal error"
	}

	return fmt.Sprintf("%s failed (%s): %s", op, class, drawguide.ErrorMessage(err))
}
