package core

import "math"

// Color is a linear RGB radiance value. It reuses the Vec3 layout and arithmetic;
// components are unbounded until display mapping.
type Color Vec3

// NewColor creates a color from red, green and blue components
func NewColor(r, g, b float64) Color {
	return Color{X: r, Y: g, Z: b}
}

// Black returns the zero color
func Black() Color {
	return Color{}
}

// White returns the fully transmissive color
func White() Color {
	return NewColor(1, 1, 1)
}

// R returns the red component
func (c Color) R() float64 { return c.X }

// G returns the green component
func (c Color) G() float64 { return c.Y }

// B returns the blue component
func (c Color) B() float64 { return c.Z }

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color(Vec3(c).Add(Vec3(other)))
}

// Subtract returns the component-wise difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color(Vec3(c).Subtract(Vec3(other)))
}

// MultiplyColor multiplies two colors component-wise (attenuation)
func (c Color) MultiplyColor(other Color) Color {
	return Color(Vec3(c).MultiplyVec(Vec3(other)))
}

// DivideColor divides two colors component-wise
func (c Color) DivideColor(other Color) Color {
	return Color(Vec3(c).DivideVec(Vec3(other)))
}

// AddScalar adds s to every component
func (c Color) AddScalar(s float64) Color {
	return Color(Vec3(c).AddScalar(s))
}

// SubtractScalar subtracts s from every component
func (c Color) SubtractScalar(s float64) Color {
	return Color(Vec3(c).SubtractScalar(s))
}

// Multiply scales every component by s
func (c Color) Multiply(s float64) Color {
	return Color(Vec3(c).Multiply(s))
}

// Divide divides every component by s
func (c Color) Divide(s float64) Color {
	return Color(Vec3(c).Divide(s))
}

// Negate returns the color with every component negated
func (c Color) Negate() Color {
	return Color(Vec3(c).Negate())
}

// ScalarSubtractColor returns s - c for every component
func ScalarSubtractColor(s float64, c Color) Color {
	return Color(ScalarSubtract(s, Vec3(c)))
}

// ScalarDivideColor returns s / c for every component
func ScalarDivideColor(s float64, c Color) Color {
	return Color(ScalarDivide(s, Vec3(c)))
}

// Luminance returns the perceptual luminance of the color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (c Color) Luminance() float64 {
	return 0.299*c.X + 0.587*c.Y + 0.114*c.Z
}

// Clamp returns a color with components clamped to [min, max]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		X: max(minVal, min(maxVal, c.X)),
		Y: max(minVal, min(maxVal, c.Y)),
		Z: max(minVal, min(maxVal, c.Z)),
	}
}

// GammaCorrect applies gamma correction to color values
func (c Color) GammaCorrect(gamma float64) Color {
	invGamma := 1.0 / gamma
	return Color{
		X: math.Pow(c.X, invGamma),
		Y: math.Pow(c.Y, invGamma),
		Z: math.Pow(c.Z, invGamma),
	}
}
