// Package distance provides distance and similarity functions for fixed
// vectors.
//
// # Supported Metrics
//
//   - MetricL2: Squared Euclidean distance
//   - MetricCosine: Cosine similarity
//   - MetricDot: Dot product (inner product)
//   - MetricManhattan: Sum of absolute differences
//
// # Usage
//
//	d := distance.SquaredL2(a, b)
//	sim := distance.Dot(a, b)
//	unit, ok := distance.Normalize(v)
package distance
