package layout

import "testing"

func TestIsUndefined(t *testing.T) {
	if !IsUndefined(Undefined) {
		t.Fatal("Undefined must report as undefined")
	}
	if IsUndefined(0) {
		t.Fatal("0 must not report as undefined")
	}
}

func TestFloatsEqual(t *testing.T) {
	if !FloatsEqual(Undefined, Undefined) {
		t.Fatal("two undefined values must be equal")
	}
	if FloatsEqual(Undefined, 0) {
		t.Fatal("undefined must not equal a defined value")
	}
	if !FloatsEqual(1.0, 1.00001) {
		t.Fatal("values within tolerance must be equal")
	}
	if FloatsEqual(1.0, 1.1) {
		t.Fatal("values outside tolerance must not be equal")
	}
}
