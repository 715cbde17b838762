package flat

// Point is a position on the plane produced by a Projection, expressed as
// kilometer offsets east (X) and north (Y) of the projection's reference
// origin.
//
// A Point carries no reference to the Projection that produced it; keep the
// Projection around to unproject later.
type Point[T Float] struct {
	// X is the distance to the reference origin along longitude in
	// kilometers (positive east).
	X T
	// Y is the distance to the reference origin along latitude in
	// kilometers (positive north).
	Y T
}

// Distance returns the approximate distance in kilometers from this Point
// to another.
func (p Point[T]) Distance(other Point[T]) T {
	return sqrt(p.DistanceSquared(other))
}

// DistanceSquared returns the approximate squared distance from this Point
// to another.
//
// Use this for distance comparisons, such as nearest-neighbor filtering,
// where the square root of Distance would be wasted.
func (p Point[T]) DistanceSquared(other Point[T]) T {
	dx, dy := p.delta(other)
	return distanceSquared(dx, dy)
}

// Bearing returns the approximate bearing in degrees in [-180, 180] from
// this Point to another, with 0 pointing north and 90 pointing east. Both
// ends of the range are reachable: due south is -180 or 180 depending on
// which side the east-west delta rounds to, and coincident points report
// -180.
func (p Point[T]) Bearing(other Point[T]) T {
	dx, dy := p.delta(other)
	return bearing(dx, dy)
}

// DistanceBearing returns the approximate distance (kilometers) and bearing
// (degrees) from this Point to another, computed over a single shared delta.
func (p Point[T]) DistanceBearing(other Point[T]) (T, T) {
	dx, dy := p.delta(other)
	return sqrt(distanceSquared(dx, dy)), bearing(dx, dy)
}

// Destination returns a new Point at the given distance (kilometers) and
// bearing (degrees) from this Point, the inverse of DistanceBearing.
func (p Point[T]) Destination(dist, bearingDegrees T) Point[T] {
	a := radians(bearingDegrees)
	return p.Offset(sin(a)*dist, cos(a)*dist)
}

// Offset returns a new Point translated by the given easting and northing
// offsets in kilometers.
func (p Point[T]) Offset(dx, dy T) Point[T] {
	return Point[T]{X: p.X + dx, Y: p.Y + dy}
}

func (p Point[T]) delta(other Point[T]) (T, T) {
	return p.X - other.X, p.Y - other.Y
}

func distanceSquared[T Float](dx, dy T) T {
	return dx*dx + dy*dy
}

// bearing converts an a-to-b delta to a navigational bearing in degrees,
// 0 north, increasing clockwise. The negations map atan2's mathematical
// angle onto the compass convention; changing them breaks the
// Destination round trip.
func bearing[T Float](dx, dy T) T {
	return degrees(atan2(-dx, -dy))
}
