package vecmath

// Vec2 is a 2D vector of T.
type Vec2[T Scalar] = Vector[T, [2]T]

// Vec3 is a 3D vector of T.
type Vec3[T Scalar] = Vector[T, [3]T]

// Vec4 is a 4D vector of T.
type Vec4[T Scalar] = Vector[T, [4]T]

type (
	Vector2d = Vector[float64, [2]float64]
	Vector3d = Vector[float64, [3]float64]
	Vector4d = Vector[float64, [4]float64]

	Vector2f = Vector[float32, [2]float32]
	Vector3f = Vector[float32, [3]float32]
	Vector4f = Vector[float32, [4]float32]

	Vector2i = Vector[int, [2]int]
	Vector3i = Vector[int, [3]int]
	Vector4i = Vector[int, [4]int]
)
