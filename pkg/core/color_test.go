package core

import "testing"

func TestColor_Operators(t *testing.T) {
	a := NewColor(1, 2, 3)
	b := NewColor(2, 3, 4)
	c := NewColor(3, 5, 7)
	d := NewColor(2, 6, 12)
	e := NewColor(0, -1, -2)
	f := NewColor(6, 9, 12)
	g := NewColor(6, 3, 2)
	h := NewColor(-6, -3, -2)

	tests := []struct {
		name     string
		got      Color
		expected Color
	}{
		{"color + color", a.Add(b), c},
		{"color - color", c.Subtract(b), a},
		{"color * color", a.MultiplyColor(b), d},
		{"color / color", d.DivideColor(b), a},
		{"color + scalar", a.AddScalar(1), b},
		{"color - scalar", b.SubtractScalar(1), a},
		{"scalar - color", ScalarSubtractColor(1, a), e},
		{"color * scalar", b.Multiply(3), f},
		{"color / scalar", f.Divide(3), b},
		{"scalar / color", ScalarDivideColor(6, g), a},
		{"negate", g.Negate(), h},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestColor_Constants(t *testing.T) {
	if Black() != NewColor(0, 0, 0) {
		t.Errorf("Expected black to be zero, got %v", Black())
	}
	w := White()
	if w.R() != 1 || w.G() != 1 || w.B() != 1 {
		t.Errorf("Expected white to be (1,1,1), got %v", w)
	}
}

func TestColor_DisplayHelpers(t *testing.T) {
	c := NewColor(0.25, 4, -1)
	if got := c.Clamp(0, 1); got != NewColor(0.25, 1, 0) {
		t.Errorf("Expected clamped (0.25,1,0), got %v", got)
	}
	if got := NewColor(0.25, 1, 0.04).GammaCorrect(2); !Vec3(got).ApproxEquals(NewVec3(0.5, 1, 0.2), 1e-12) {
		t.Errorf("Expected gamma corrected (0.5,1,0.2), got %v", got)
	}
}
