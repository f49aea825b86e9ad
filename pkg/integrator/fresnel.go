package integrator

import "math"

// SchlickReflectance approximates the Fresnel reflectance of a dielectric
// interface between media with refractive indices n1 (incident side) and
// n2, given the cosine of the incidence angle. Total internal reflection
// returns 1. The result always lies in [0,1].
func SchlickReflectance(cosI, n1, n2 float64) float64 {
	r0 := (n1 - n2) / (n1 + n2)
	r0 = r0 * r0

	cos := cosI
	if n1 > n2 {
		// Inside the denser medium the grazing term uses the transmitted
		// angle; past the critical angle everything reflects.
		eta := n1 / n2
		sinT2 := eta * eta * (1 - cosI*cosI)
		if sinT2 > 1 {
			return 1
		}
		cos = math.Sqrt(1 - sinT2)
	}

	x := 1 - cos
	return r0 + (1-r0)*x*x*x*x*x
}
