package flat

import "errors"

// WGS84 conforming ellipsoid
// https://en.wikipedia.org/wiki/World_Geodetic_System
var WGS84 = NewEllipsoid(6378137, 1/298.257223563)

// ErrNoConvergence is returned by Ellipsoid.Inverse when Vincenty's method
// fails to converge within its iteration budget. This is a known limitation
// of the method for nearly antipodal points, not a defect in the inputs.
var ErrNoConvergence = errors.New("flat: inverse geodesic iteration did not converge")

const (
	// inverseEpsilon is the convergence threshold on the auxiliary
	// longitude difference, in radians. Roughly 0.06 mm on Earth.
	inverseEpsilon = 1e-12
	// inverseMaxIterations bounds the fixed-point iteration.
	inverseMaxIterations = 100
)

// Ellipsoid is an object for performing exact geodesic operations on a
// reference ellipsoid. It is the correctness oracle for the Projection fast
// path: same inputs, full ellipsoidal arithmetic, no flat approximation.
//
// The value is immutable after construction and safe to share between
// goroutines.
type Ellipsoid[T Float] struct {
	a T
	b T
	f T
}

// NewEllipsoid initializes a new geodesic ellipsoid object.
//
// Param radius is the equatorial radius (meters).
// Param flattening is the flattening factor of the ellipsoid.
//
// The WGS84 package-level variable is a pre-initialized ellipsoid
// representing Earth.
func NewEllipsoid[T Float](radius, flattening T) *Ellipsoid[T] {
	return &Ellipsoid[T]{
		a: radius,
		b: radius * (1 - flattening),
		f: flattening,
	}
}

// Radius of the Ellipsoid
func (e *Ellipsoid[T]) Radius() T {
	return e.a
}

// Flattening of the Ellipsoid
func (e *Ellipsoid[T]) Flattening() T {
	return e.f
}

// Inverse solves the inverse geodesic problem with Vincenty's method.
//
// Param lat1 is latitude of point 1 (degrees).
// Param lon1 is longitude of point 1 (degrees).
// Param lat2 is latitude of point 2 (degrees).
// Param lon2 is longitude of point 2 (degrees).
// Returns the geodesic distance from point 1 to point 2 in the unit of the
// ellipsoid's radius (meters for WGS84).
//
// lat1 and lat2 should be in the range [-90,+90].
// The solution is found by fixed-point iteration over the longitude
// difference on the auxiliary sphere. For nearly antipodal points the
// iteration is known not to converge; in that case the distance is NaN and
// the error is ErrNoConvergence. The convergence threshold assumes float64
// instantiation.
func (e *Ellipsoid[T]) Inverse(lat1, lon1, lat2, lon2 T) (T, error) {
	u1 := atan((1 - e.f) * tan(radians(lat1)))
	u2 := atan((1 - e.f) * tan(radians(lat2)))
	sinU1, cosU1 := sin(u1), cos(u1)
	sinU2, cosU2 := sin(u2), cos(u2)
	l := radians(lon2 - lon1)

	var sinSigma, cosSigma, sigma T
	var cos2Alpha, cos2SigmaM T

	lambda := l
	for i := 0; ; i++ {
		if i == inverseMaxIterations {
			return nan[T](), ErrNoConvergence
		}

		sinLambda, cosLambda := sin(lambda), cos(lambda)
		p := cosU2 * sinLambda
		q := cosU1*sinU2 - sinU1*cosU2*cosLambda
		sinSigma = sqrt(p*p + q*q)
		if sinSigma == 0 {
			// Coincident points.
			return 0, nil
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = atan2(sinSigma, cosSigma)

		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cos2Alpha = 1 - sinAlpha*sinAlpha
		if cos2Alpha == 0 {
			// Both points on the equator; cos2SigmaM is 0/0 there.
			cos2SigmaM = 0
		} else {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cos2Alpha
		}

		c := e.f / 16 * cos2Alpha * (4 + e.f*(4-3*cos2Alpha))
		prev := lambda
		lambda = l + (1-c)*e.f*sinAlpha*
			(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(2*cos2SigmaM*cos2SigmaM-1)))
		if abs(lambda-prev) <= inverseEpsilon {
			break
		}
	}

	uu := cos2Alpha * (e.a*e.a - e.b*e.b) / (e.b * e.b)
	bigA := 1 + uu/16384*(4096+uu*(-768+uu*(320-175*uu)))
	bigB := uu / 1024 * (256 + uu*(-128+uu*(74-47*uu)))
	deltaSigma := bigB * sinSigma *
		(cos2SigmaM + bigB/4*
			(cosSigma*(2*cos2SigmaM*cos2SigmaM-1)-
				bigB/6*cos2SigmaM*(4*sinSigma*sinSigma-3)*(4*cos2SigmaM*cos2SigmaM-3)))

	return e.b * bigA * (sigma - deltaSigma), nil
}
