package vec

import "testing"

func TestVec3SubIdentity(t *testing.T) {
	a := V3(5, -7, 2.5)
	b := V3(1.5, 3, -4)
	got := a.Sub(b)
	if got != a.Neg().Add(b).Neg() {
		t.Errorf("Sub = %v, want -(-a+b)", got)
	}
	if !got.EqualXYZ(3.5, -10, 6.5) {
		t.Errorf("Sub = %v, want (3.5, -10, 6.5)", got)
	}
}

func TestVec3IntSubIdentity(t *testing.T) {
	a := V3i(5, -7, 2)
	b := V3i(1, 3, -4)
	got := a.Sub(b)
	if got != a.Neg().Add(b).Neg() {
		t.Errorf("Sub = %v, want -(-a+b)", got)
	}
	if !got.EqualXYZ(4, -10, 6) {
		t.Errorf("Sub = %v, want (4, -10, 6)", got)
	}
}

func TestVec3RoundedTruncatesTowardZero(t *testing.T) {
	got := V3(2.9, -2.9, 0.5).Rounded()
	if got != V3i(2, -2, 0) {
		t.Errorf("Rounded = %v, want (2, -2, 0)", got)
	}
}

func TestVec3Magnitude(t *testing.T) {
	v := V3(2, 3, 6)
	if v.SqMagnitude() != 49 {
		t.Errorf("SqMagnitude = %v, want 49", v.SqMagnitude())
	}
	if v.Magnitude() != 7 {
		t.Errorf("Magnitude = %v, want 7", v.Magnitude())
	}
	if V3i(2, 3, 6).Magnitude() != 7 {
		t.Errorf("Vec3Int Magnitude = %v, want 7", V3i(2, 3, 6).Magnitude())
	}
}
