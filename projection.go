// Package flat provides fast geodesic distance approximations via flat
// surface projection.
//
// A Projection maps WGS84 geographic coordinates onto a local cartesian
// plane calibrated around a reference latitude. In projected form,
// approximate distance and bearing calculations are much faster than
// spherical or ellipsoidal trigonometry, and stay precise for distances up
// to about 500 km around the reference latitude.
//
// The Ellipsoid type solves the inverse geodesic problem exactly with
// Vincenty's iterative method and serves as the correctness oracle for the
// projected fast path.
//
// The calibration polynomials are borrowed from the cheap-ruler project,
// https://github.com/mapbox/cheap-ruler.
package flat

// Projection converts between WGS84 geographic coordinates and a local
// cartesian plane for fast geodesic approximations.
//
// A Projection is calibrated once for a reference latitude; results degrade
// gracefully beyond roughly +/-5 degrees of latitude around it. The value is
// immutable after construction and safe to share between goroutines.
type Projection[T Float] struct {
	kx, ky T
	lon    T
	lat    T
}

// NewProjection initializes a projection that works best around the given
// latitude (degrees).
//
// The origin of the projected plane is implicitly (0, 0); callers near the
// antimeridian should use NewProjectionAt with a nearby reference origin to
// stay clear of the longitude wrap.
func NewProjection[T Float](latitude T) *Projection[T] {
	p := NewProjectionAt(latitude, 0)
	p.lat = 0
	return p
}

// NewProjectionAt initializes a projection calibrated at the given latitude
// with the projected plane's origin placed at (longitude, latitude), both in
// degrees.
//
// Param latitude is the reference latitude (degrees).
// Param longitude is the reference longitude (degrees).
func NewProjectionAt[T Float](latitude, longitude T) *Projection[T] {
	// Chebyshev recurrence for cos(n*phi), seeded with cos0=1, cos1=cos(phi).
	// Saves the repeated trig calls of evaluating each harmonic directly.
	cos1 := cos(radians(latitude))
	cos2 := 2*cos1*cos1 - 1
	cos3 := 2*cos1*cos2 - cos1
	cos4 := 2*cos1*cos3 - cos2
	cos5 := 2*cos1*cos4 - cos3

	// Multipliers for converting longitude and latitude degrees into
	// kilometers, polynomial fits to the WGS84 radii of curvature at the
	// reference latitude (http://1.usa.gov/1Wb1bv7).
	kx := 111.41513*cos1 - 0.09455*cos3 + 0.00012*cos5
	ky := 111.13209 - 0.56605*cos2 + 0.0012*cos4

	return &Projection[T]{kx: kx, ky: ky, lon: longitude, lat: latitude}
}

// Kx returns the kilometers-per-degree-of-longitude scale factor at the
// reference latitude.
func (p *Projection[T]) Kx() T {
	return p.kx
}

// Ky returns the kilometers-per-degree-of-latitude scale factor at the
// reference latitude.
func (p *Projection[T]) Ky() T {
	return p.ky
}

// Project converts a longitude and latitude (degrees) to a Point on the
// projected plane, in kilometers east and north of the reference origin.
func (p *Projection[T]) Project(lon, lat T) Point[T] {
	return Point[T]{
		X: (lon - p.lon) * p.kx,
		Y: (lat - p.lat) * p.ky,
	}
}

// Unproject converts a Point back to a longitude and latitude (degrees).
// It is the exact algebraic inverse of Project for the same Projection.
func (p *Projection[T]) Unproject(pt Point[T]) (lon, lat T) {
	return pt.X/p.kx + p.lon, pt.Y/p.ky + p.lat
}
