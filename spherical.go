package flat

// MeanEarthRadius is the IUGG mean radius of Earth in meters, the usual
// sphere for great-circle comparisons against the ellipsoidal oracle.
const MeanEarthRadius = 6371008.8

// Haversine returns the great-circle distance between two geographic
// coordinates (degrees) on a sphere of the given radius, in the unit of the
// radius.
//
// It sits between the two exact-for-their-model paths of this package:
// cheaper than Ellipsoid.Inverse, valid globally unlike Projection, and
// within the sphere-vs-ellipsoid error (up to ~0.5%) of both.
func Haversine[T Float](radius, lon1, lat1, lon2, lat2 T) T {
	// haversine formula
	// www.movable-type.co.uk/scripts/latlong.html
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	sdphi := sin((phi2 - phi1) / 2)
	sdlambda := sin(radians(lon2-lon1) / 2)
	haver := sdphi*sdphi + cos(phi1)*cos(phi2)*sdlambda*sdlambda
	return radius * 2 * asin(sqrt(haver))
}
