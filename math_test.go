package aerosim

import "testing"

func TestClamp(t *testing.T) {
	if clamp(1.5, 0, 1) != 1 {
		t.Fatal("upper clamp fail")
	}
	if clamp(-0.2, 0, 1) != 0 {
		t.Fatal("lower clamp fail")
	}
	if clamp(0.4, 0, 1) != 0.4 {
		t.Fatal("in-range value must pass through")
	}
	if clamp(-0.7, -0.5, 0.5) != -0.5 {
		t.Fatal("negative bound clamp fail")
	}
}

func TestSign(t *testing.T) {
	if sign(10) != 1 {
		t.Fatal("sign of positive fail")
	}
	if sign(-0.1) != -1 {
		t.Fatal("sign of negative fail")
	}
	if sign(0) != 1 {
		t.Fatal("sign of zero fail")
	}
}
