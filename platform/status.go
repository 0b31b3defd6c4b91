// SPDX-License-Identifier: Unlicense OR MIT

package platform

import "fmt"

// Status is the outcome of API initialization.
type Status uint8

const (
	Succeeded Status = iota
	UnknownError
	APIInitFailed
	APIUnsupported
	APIHardwareUnsupported
)

func (s Status) String() string {
	switch s {
	case Succeeded:
		return "Succeeded"
	case UnknownError:
		return "UnknownError"
	case APIInitFailed:
		return "APIInitFailed"
	case APIUnsupported:
		return "APIUnsupported"
	case APIHardwareUnsupported:
		return "APIHardwareUnsupported"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}
