// Package vecmath provides generic fixed-dimension numeric vectors for
// geometry, graphics and physics code.
//
// A Vector[T, A] holds N scalars of type T inline, where N is the length of
// the storage array A ([2]T through [16]T). Element type and dimension are
// part of the type, so mixing dimensions or using bool elements fails to
// compile. The aliases Vec2, Vec3, Vec4 and Vector2d, Vector3f, Vector2i, ...
// are the usual names.
//
// # Construction
//
//	a := vecmath.V3(1.0, 2.0, 3.0)                      // Vector3d
//	b, err := vecmath.New[int, [4]int](1, 2, 3, 4)      // arity checked
//	c := vecmath.MustConvert[float64, [3]float64](vecmath.V2(1, 2)) // (1, 2, 0)
//
// # Arithmetic
//
// Add, Sub, Scale, Neg, Dot and Length are methods; ScaleBy (scalar on the
// left) and CompMul (Hadamard product) are functions. The *Assign methods
// update a vector in place and return it for chaining:
//
//	p.AddAssign(v.Scale(dt)).SubAssign(drift)
//
// Go has no implicit numeric promotion. Operands of different scalar types
// are combined in an explicit result type with AddAs, SubAs, CompMulAs,
// ScaleAs and ScaleByAs:
//
//	sum, err := vecmath.AddAs[float64, [2]float64](vecmath.V2(1, 2), vecmath.V2(0.5, 0.5))
//
// # Ordering
//
// Compare and Less order vectors lexicographically by element index. This is
// not a magnitude ordering.
//
// # Sequential Builder
//
//	var v vecmath.Vector4f
//	err := v.InitFrom(vecmath.V2[float32](1, 2)).Next(3).Next(4).Finish()
//
// Finish fails if the number of supplied values is not exactly N.
package vecmath
