package netlist

import (
	"strconv"
	"strings"

	"github.com/kestrel-ep/circuitsim/internal/consts"
)

// ParseValue parses a netlist numeric literal, optionally carrying one of
// the unit suffixes in consts.UnitSuffixes. Suffixes are tried in table
// order and the first one whose remaining text parses as a number wins; a
// suffix that leaves an unparsable remainder is skipped, so "100meg" is
// not taken as "100me" with the "g" suffix and parses as mega.
func ParseValue(tok string) (float64, error) {
	lower := strings.ToLower(tok)
	for _, su := range consts.UnitSuffixes {
		if strings.HasSuffix(lower, su.Suffix) {
			numPart := tok[:len(tok)-len(su.Suffix)]
			if num, err := strconv.ParseFloat(numPart, 64); err == nil {
				return num * su.Scale, nil
			}
		}
	}
	return strconv.ParseFloat(tok, 64)
}
