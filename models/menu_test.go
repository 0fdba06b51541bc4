package models

import (
	"reflect"
	"testing"
)

func TestTagsRoundTrip(t *testing.T) {
	in := Tags{"spicy", "vegan", "chef's pick"}
	val, err := in.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	var out Tags
	if err := out.Scan(val); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func TestTagsNilSafe(t *testing.T) {
	var in Tags
	val, err := in.Value()
	if err != nil {
		t.Fatalf("Value on nil: %v", err)
	}
	if val != "[]" {
		t.Errorf("nil Tags stored as %v, want []", val)
	}

	var out Tags
	if err := out.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Errorf("Scan(nil) = %v, want empty", out)
	}
}

func TestTagsScanBytes(t *testing.T) {
	var out Tags
	if err := out.Scan([]byte(`["a","b"]`)); err != nil {
		t.Fatalf("Scan bytes: %v", err)
	}
	if !reflect.DeepEqual(out, Tags{"a", "b"}) {
		t.Errorf("Scan bytes = %v", out)
	}

	if err := out.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}
