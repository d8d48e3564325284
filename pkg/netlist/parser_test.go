package netlist

import (
	"strings"
	"testing"

	"github.com/kestrel-ep/circuitsim/pkg/device"
)

func TestParseS5Resistor(t *testing.T) {
	components, err := Parse(strings.NewReader("  RESISTOR  R1   a  b   100meg   # big R\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(components) != 1 {
		t.Fatalf("got %d components, want 1", len(components))
	}
	r, ok := components[0].(*device.Resistor)
	if !ok {
		t.Fatalf("got %T, want *device.Resistor", components[0])
	}
	if r.Resistance() != 1e8 {
		t.Errorf("resistance = %g, want 1e8", r.Resistance())
	}
}

func TestParseDeviceKinds(t *testing.T) {
	src := strings.Join([]string{
		"GROUND gnd",
		"VOLTAGE_IN vin n1 gnd",
		"VOLTAGE_OUT vout n1 gnd",
		"RESISTOR r1 n1 n2 1k",
		"CAPACITOR c1 n2 gnd 1u",
		"INDUCTOR l1 n2 gnd 1m",
	}, "\n")
	components, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantKinds := []device.Kind{
		device.KindGround, device.KindVoltageIn, device.KindVoltageOut,
		device.KindResistor, device.KindCapacitor, device.KindInductor,
	}
	if len(components) != len(wantKinds) {
		t.Fatalf("got %d components, want %d", len(components), len(wantKinds))
	}
	for i, c := range components {
		if c.Kind() != wantKinds[i] {
			t.Errorf("component %d: kind = %v, want %v", i, c.Kind(), wantKinds[i])
		}
	}
}

func TestParseMalformedLine(t *testing.T) {
	_, err := Parse(strings.NewReader("RESISTOR R1 a b\n"))
	if err == nil {
		t.Fatal("expected error for missing value token")
	}
	var malformed *MalformedLineError
	if _, ok := err.(*MalformedLineError); !ok {
		t.Errorf("got %T, want %T", err, malformed)
	}
}

func TestParseUnknownDevice(t *testing.T) {
	_, err := Parse(strings.NewReader("TRANSISTOR q1 a b c\n"))
	if _, ok := err.(*UnknownDeviceError); !ok {
		t.Errorf("got %T (%v), want *UnknownDeviceError", err, err)
	}
}
