package scenario

import (
	"fmt"
	"log"
)

// AssertionMode controls how failed expectations are handled.
type AssertionMode int

const (
	// AssertionStrict fails the scenario on the first unmet expectation.
	AssertionStrict AssertionMode = iota
	// AssertionLogOnly logs unmet expectations and keeps running.
	AssertionLogOnly
)

// Assertions evaluates scenario expectations under a mode.
type Assertions struct {
	Mode   AssertionMode
	Logger *log.Logger
}

// Check reports an unmet expectation. In strict mode it returns an error;
// in log-only mode it logs and returns nil.
func (a Assertions) Check(ok bool, format string, args ...any) error {
	if ok {
		return nil
	}
	if a.Mode == AssertionLogOnly {
		if a.Logger != nil {
			a.Logger.Printf("expectation not met: "+format, args...)
		}
		return nil
	}
	return fmt.Errorf(format, args...)
}
