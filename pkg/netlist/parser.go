package netlist

import (
	"io"
	"strings"

	"github.com/kestrel-ep/circuitsim/pkg/device"
)

// Parse reads a full netlist from r and returns the ordered component
// list, in declaration order, with comments and blank lines removed.
func Parse(r io.Reader) ([]device.Component, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}

	components := make([]device.Component, 0, len(lines))
	for _, line := range lines {
		c, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		components = append(components, c)
	}
	return components, nil
}

func parseLine(line Line) (device.Component, error) {
	tokens := strings.Split(line.Text, " ")
	if len(tokens) < 2 {
		return nil, &MalformedLineError{Line: line.Number, Text: line.Text, Msg: "missing device name or node arguments"}
	}

	kind := strings.ToUpper(tokens[0])
	switch kind {
	case "RESISTOR", "CAPACITOR", "INDUCTOR":
		if len(tokens) < 5 {
			return nil, &MalformedLineError{Line: line.Number, Text: line.Text, Msg: "expected name, n+, n-, value"}
		}
		name, nPos, nNeg := tokens[1], tokens[2], tokens[3]
		value, err := ParseValue(tokens[4])
		if err != nil {
			return nil, &MalformedLineError{Line: line.Number, Text: line.Text, Msg: "invalid value: " + err.Error()}
		}
		switch kind {
		case "RESISTOR":
			return device.NewResistor(name, nPos, nNeg, value), nil
		case "CAPACITOR":
			return device.NewCapacitor(name, nPos, nNeg, value), nil
		default:
			return device.NewInductor(name, nPos, nNeg, value), nil
		}

	case "VOLTAGE_IN":
		if len(tokens) < 4 {
			return nil, &MalformedLineError{Line: line.Number, Text: line.Text, Msg: "expected name, n+, n-"}
		}
		return device.NewVoltageIn(tokens[1], tokens[2], tokens[3]), nil

	case "VOLTAGE_OUT":
		if len(tokens) < 4 {
			return nil, &MalformedLineError{Line: line.Number, Text: line.Text, Msg: "expected name, n+, n-"}
		}
		return device.NewVoltageOut(tokens[1], tokens[2], tokens[3]), nil

	case "GROUND":
		return device.NewGround(tokens[1]), nil

	default:
		return nil, &UnknownDeviceError{Line: line.Number, Token: tokens[0]}
	}
}
