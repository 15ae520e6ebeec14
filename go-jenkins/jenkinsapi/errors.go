package jenkinsapi

import (
	"errors"
	"fmt"

	"github.com/concourse/jenkinsflight/go-jenkins/jenkinsapi/internal"
)

var ErrUnauthorized = internal.ErrUnauthorized
var ErrForbidden = internal.ErrForbidden

type ResourceNotFoundError = internal.ResourceNotFoundError
type UnexpectedResponseError = internal.UnexpectedResponseError

var ErrJobExists = errors.New("job already exists")

func NameRequiredError(thing string) error {
	return errors.New(thing + " name required")
}

// ScriptError is returned when the script console ran a script but its
// output lacks the marker the caller was waiting for.
type ScriptError struct {
	Output string
}

func (err ScriptError) Error() string {
	return fmt.Sprintf("script did not complete:\n%s", err.Output)
}
