package flat

import "math"

// Float is the constraint satisfied by the floating point types the package
// operates on. All calculations run through float64 internally; a float32
// instantiation trades precision for storage.
type Float interface {
	~float32 | ~float64
}

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

func radians[T Float](deg T) T { return deg * degToRad }
func degrees[T Float](rad T) T { return rad * radToDeg }

func sin[T Float](x T) T      { return T(math.Sin(float64(x))) }
func cos[T Float](x T) T      { return T(math.Cos(float64(x))) }
func tan[T Float](x T) T      { return T(math.Tan(float64(x))) }
func atan[T Float](x T) T     { return T(math.Atan(float64(x))) }
func atan2[T Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }
func sqrt[T Float](x T) T     { return T(math.Sqrt(float64(x))) }
func abs[T Float](x T) T      { return T(math.Abs(float64(x))) }
func asin[T Float](x T) T     { return T(math.Asin(float64(x))) }
func nan[T Float]() T         { return T(math.NaN()) }
