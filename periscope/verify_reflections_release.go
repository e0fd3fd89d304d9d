//go:build !verify_reflections
// +build !verify_reflections

package periscope

// Empty stub that will be optimized out
func verifyReflectionLaw(incident Ray, mirror Mirror, reflected Ray) {
}
