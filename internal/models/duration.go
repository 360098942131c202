package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// permanentToken is the wire sentinel for items given away for good
const permanentToken = "permanent"

// LendDuration is how long an item is lent out: a positive number of days,
// or permanent when the owner is giving the item away. It marshals to a JSON
// number (days) or the string "permanent".
type LendDuration struct {
	Days      int  `json:"-"`
	Permanent bool `json:"-"`
}

// ForDays returns a fixed-length lend duration
func ForDays(days int) LendDuration {
	return LendDuration{Days: days}
}

// Forever returns the permanent (giving away) duration
func Forever() LendDuration {
	return LendDuration{Permanent: true}
}

// Valid reports whether the duration is permanent or a positive day count
func (d LendDuration) Valid() bool {
	return d.Permanent || d.Days > 0
}

func (d LendDuration) String() string {
	if d.Permanent {
		return permanentToken
	}
	return strconv.Itoa(d.Days)
}

// MarshalJSON encodes permanent durations as the sentinel string and
// everything else as the plain day count
func (d LendDuration) MarshalJSON() ([]byte, error) {
	if d.Permanent {
		return json.Marshal(permanentToken)
	}
	return json.Marshal(d.Days)
}

// UnmarshalJSON accepts either the sentinel string or a day count
func (d *LendDuration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != permanentToken {
			return fmt.Errorf("unmarshal lend duration: unknown sentinel %q", s)
		}
		*d = LendDuration{Permanent: true}
		return nil
	}

	var days int
	if err := json.Unmarshal(data, &days); err != nil {
		return fmt.Errorf("unmarshal lend duration: %w", err)
	}
	*d = LendDuration{Days: days}
	return nil
}
