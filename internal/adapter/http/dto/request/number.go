package request

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
)

// Number accepts a JSON number or a numeric string. Anything unparseable,
// including null and "", decodes to zero.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	switch {
	case s == "null":
		*n = 0
		return nil
	case strings.HasPrefix(s, `"`):
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			f = 0
		}
		*n = Number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// Count is n as a point count, or entities.InvalidPointCount when n is not a
// whole number in range.
func (n Number) Count() int {
	c, _ := entities.PointCount(float64(n))
	return c
}
