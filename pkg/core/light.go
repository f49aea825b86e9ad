package core

// Light represents a point light source with a colored intensity
type Light struct {
	Position  Vec3
	Intensity Vec3 // RGB intensity, not restricted to [0,1]
}

// NewLight creates a new point light
func NewLight(position, intensity Vec3) Light {
	return Light{Position: position, Intensity: intensity}
}
