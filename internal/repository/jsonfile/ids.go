package jsonfile

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func newCustomProjectID() string {
	return "custom-" + uuid.NewString()[:8]
}

func newCustomMemberID(projectID string) string {
	return fmt.Sprintf("%s-member-%s", projectID, uuid.NewString()[:8])
}

// newEventID keeps the digits of the slot in the id for readability, the
// uuid suffix makes it unique.
func newEventID(date, startTime string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, date+startTime)
	return fmt.Sprintf("evt-%s-%s", digits, uuid.NewString()[:6])
}

func newHolidayID() string {
	return "holiday-" + uuid.NewString()[:8]
}
