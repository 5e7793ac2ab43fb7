/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package verify

import (
	"fmt"
	"time"
)

// Check names a kind of response expectation.
type Check string

const (
	CheckStatusCode        Check = "statusCode"
	CheckContentType       Check = "contentType"
	CheckFieldPresent      Check = "fieldPresent"
	CheckFieldValue        Check = "fieldValue"
	CheckResponseTime      Check = "responseTime"
	CheckResponseTimeBelow Check = "responseTimeBelow"
	CheckContract          Check = "contract"
)

// Violation is a single unmet expectation.
type Violation struct {
	// Check is the kind of expectation.
	Check Check

	// Field is the JSON path for field checks.
	Field string

	// Expected and Actual are the compared values.
	Expected any
	Actual   any
}

func (v *Violation) Error() string {
	switch v.Check {
	case CheckStatusCode:
		return fmt.Sprintf("Expected status code: %v but found: %v", v.Expected, v.Actual)
	case CheckContentType:
		return fmt.Sprintf("Expected content type: %v but found: %v", v.Expected, v.Actual)
	case CheckFieldPresent:
		return fmt.Sprintf("Field '%s' is not present in the response.", v.Field)
	case CheckFieldValue:
		return fmt.Sprintf("Expected value for field '%s' is: %v, but found: %v", v.Field, v.Expected, v.Actual)
	case CheckResponseTime:
		return fmt.Sprintf("Response time is too high! Expected <= %dms but found: %dms", milliseconds(v.Expected), milliseconds(v.Actual))
	case CheckResponseTimeBelow:
		return fmt.Sprintf("Response time is too high! Expected < %dms but found: %dms", milliseconds(v.Expected), milliseconds(v.Actual))
	case CheckContract:
		return fmt.Sprintf("Response does not match the API contract: %v", v.Actual)
	}

	return fmt.Sprintf("%s: expected %v but found %v", v.Check, v.Expected, v.Actual)
}

func milliseconds(v any) int64 {
	if d, ok := v.(time.Duration); ok {
		return d.Milliseconds()
	}

	return 0
}
