package vec

import (
	"math"
	"testing"
)

func TestVec2SubIdentity(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
	}{
		{"positive", V2(5, 7), V2(2, 3)},
		{"negative result", V2(1, 1), V2(4, 9)},
		{"mixed signs", V2(-3.5, 2.25), V2(1.5, -0.75)},
		{"zero", V2(0, 0), V2(0, 0)},
		{"self", V2(12.5, -8), V2(12.5, -8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Sub(tt.b)
			want := tt.a.Neg().Add(tt.b).Neg()
			if got != want {
				t.Errorf("Sub(%v, %v) = %v, want %v", tt.a, tt.b, got, want)
			}
			direct := Vec2{X: tt.a.X - tt.b.X, Y: tt.a.Y - tt.b.Y}
			if got != direct {
				t.Errorf("Sub(%v, %v) = %v, want componentwise %v", tt.a, tt.b, got, direct)
			}
		})
	}
}

func TestVec2IntSubIdentity(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2Int
	}{
		{"positive", V2i(5, 7), V2i(2, 3)},
		{"negative result", V2i(1, 1), V2i(4, 9)},
		{"mixed signs", V2i(-3, 2), V2i(1, -7)},
		{"zero", V2i(0, 0), V2i(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Sub(tt.b)
			want := tt.a.Neg().Add(tt.b).Neg()
			if got != want {
				t.Errorf("Sub(%v, %v) = %v, want %v", tt.a, tt.b, got, want)
			}
			if got.X != tt.a.X-tt.b.X || got.Y != tt.a.Y-tt.b.Y {
				t.Errorf("Sub(%v, %v) = %v, want componentwise difference", tt.a, tt.b, got)
			}
		})
	}
}

func TestVec2RoundedTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Vec2Int
	}{
		{"positive fraction", V2(2.9, 2.9), V2i(2, 2)},
		{"negative fraction", V2(-2.9, -2.9), V2i(-2, -2)},
		{"mixed", V2(2.9, -2.9), V2i(2, -2)},
		{"exact", V2(3, -4), V2i(3, -4)},
		{"below one", V2(0.99, -0.99), V2i(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Rounded(); got != tt.want {
				t.Errorf("Rounded(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestVec2Magnitude(t *testing.T) {
	v := V2(3, 4)
	if got := v.SqMagnitude(); got != 25 {
		t.Errorf("SqMagnitude = %v, want 25", got)
	}
	if got := v.Magnitude(); got != 5 {
		t.Errorf("Magnitude = %v, want 5", got)
	}
}

func TestVec2IntMagnitude(t *testing.T) {
	v := V2i(3, 4)
	if got := v.SqMagnitude(); got != 25 {
		t.Errorf("SqMagnitude = %v, want 25", got)
	}
	if got := v.Magnitude(); got != 5 {
		t.Errorf("Magnitude = %v, want 5", got)
	}
}

func TestVec2Dist(t *testing.T) {
	a := V2(1, 2)
	b := V2(4, 6)
	if got := a.SqDist(b); got != 25 {
		t.Errorf("SqDist = %v, want 25", got)
	}
	if got := a.Dist(b); got != 5 {
		t.Errorf("Dist = %v, want 5", got)
	}
	if got := b.Dist(a); got != 5 {
		t.Errorf("Dist should be symmetric, got %v", got)
	}
}

func TestVec2Normalized(t *testing.T) {
	v := V2(0, 10).Normalized()
	if v != V2(0, 1) {
		t.Errorf("Normalized = %v, want (0, 1)", v)
	}

	n := V2(3, 4).Normalized()
	if math.Abs(float64(n.Magnitude()-1)) > 1e-6 {
		t.Errorf("Normalized magnitude = %v, want 1", n.Magnitude())
	}
}

func TestVec2ScalarOps(t *testing.T) {
	v := V2(2, -3)
	if got := v.Mul(2); got != V2(4, -6) {
		t.Errorf("Mul = %v, want (4, -6)", got)
	}
	if got := v.Div(2); got != V2(1, -1.5) {
		t.Errorf("Div = %v, want (1, -1.5)", got)
	}
	if got := v.Neg(); got != V2(-2, 3) {
		t.Errorf("Neg = %v, want (-2, 3)", got)
	}
}

func TestVec2IntScalarOps(t *testing.T) {
	v := V2i(6, -4)
	if got := v.Mul(3); got != V2i(18, -12) {
		t.Errorf("Mul = %v, want (18, -12)", got)
	}
	if got := v.Div(2); got != V2i(3, -2) {
		t.Errorf("Div = %v, want (3, -2)", got)
	}
}

func TestVec2Equality(t *testing.T) {
	if !V2(1.5, -2).EqualXY(1.5, -2) {
		t.Error("EqualXY should match identical components")
	}
	if V2(1.5, -2).EqualXY(1.5, 2) {
		t.Error("EqualXY should reject differing components")
	}
	if !V2i(3, 4).EqualXY(3, 4) {
		t.Error("Vec2Int EqualXY should match identical components")
	}
}

func TestVec2IntToVec2RoundTrip(t *testing.T) {
	v := V2i(7, -9)
	if got := v.ToVec2().Rounded(); got != v {
		t.Errorf("ToVec2().Rounded() = %v, want %v", got, v)
	}
}
