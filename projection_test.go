package flat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Aachen and Meiersberg, the ~75 km reference pair used throughout. The
// Vincenty distance between them is the documented ground truth for the
// projected fast path.
var (
	aachen     = [2]float64{6.186389, 50.823194}
	meiersberg = [2]float64{6.953333, 51.301389}
)

const aachenMeiersbergMeters = 75635.595

func TestProjectUnprojectExact(t *testing.T) {
	proj := NewProjectionAt(51.0, 6.0)

	lon, lat := 6.186389, 50.823194
	pt := proj.Project(lon, lat)
	lonBack, latBack := proj.Unproject(pt)

	assert.Equal(t, lon, lonBack)
	assert.Equal(t, lat, latBack)
}

func TestProjectUnprojectSweep(t *testing.T) {
	for refLat := -80.0; refLat <= 80.0; refLat += 10 {
		proj := NewProjection(refLat)
		for dLat := -5.0; dLat <= 5.0; dLat += 1.25 {
			for lon := -30.0; lon <= 30.0; lon += 7.5 {
				lat := refLat + dLat
				lonBack, latBack := proj.Unproject(proj.Project(lon, lat))
				assert.InDelta(t, lon, lonBack, 1e-9)
				assert.InDelta(t, lat, latBack, 1e-9)
			}
		}
	}
}

func TestProjectionScaleFactorsAtEquator(t *testing.T) {
	// At the equator cos(n*phi) is 1 for all n, so the scale factors
	// collapse to the sums of the polynomial coefficients.
	proj := NewProjection(0.0)
	assert.InDelta(t, 111.41513-0.09455+0.00012, proj.Kx(), 1e-12)
	assert.InDelta(t, 111.13209-0.56605+0.0012, proj.Ky(), 1e-12)
}

func TestDestinationQuadrants(t *testing.T) {
	tests := []struct {
		name    string
		bearing float64
		wantLon float64
		wantLat float64
	}{
		{"northeast", 45, 30.5098622, 50.5063572},
		{"southeast", 135, 30.5098622, 50.4936427},
		{"southwest", 225, 30.4901377, 50.4936427},
		{"northwest", 315, 30.4901377, 50.5063572},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj := NewProjection(50.0)
			p1 := proj.Project(30.5, 50.5)

			p2 := p1.Destination(1, tt.bearing)
			lon, lat := proj.Unproject(p2)

			assert.InDelta(t, tt.wantLon, lon, 0.00001)
			assert.InDelta(t, tt.wantLat, lat, 0.00001)
			assert.InDelta(t, 1.0, p1.Distance(p2), 0.00001)
		})
	}
}

func TestCalibrationAgainstOracle(t *testing.T) {
	proj := NewProjection(51.05)
	p1 := proj.Project(aachen[0], aachen[1])
	p2 := proj.Project(meiersberg[0], meiersberg[1])

	fast := p1.Distance(p2)
	assert.InDelta(t, 75.648, fast, 0.01)

	exact, err := WGS84.Inverse(aachen[1], aachen[0], meiersberg[1], meiersberg[0])
	assert.NoError(t, err)
	assert.InDelta(t, exact/1000, fast, 0.02)
}

func TestCalibrationAtAverageLatitude(t *testing.T) {
	avg := (aachen[1] + meiersberg[1]) / 2

	proj := NewProjection(avg)
	p1 := proj.Project(aachen[0], aachen[1])
	p2 := proj.Project(meiersberg[0], meiersberg[1])

	assert.InDelta(t, aachenMeiersbergMeters/1000, p1.Distance(p2), 0.003)
}

func TestProjectionFloat32(t *testing.T) {
	proj := NewProjection[float32](50)
	p := proj.Project(30.5, 50.5)
	lon, lat := proj.Unproject(p)

	assert.InDelta(t, 30.5, lon, 1e-4)
	assert.InDelta(t, 50.5, lat, 1e-4)

	// Far from the origin the projected coordinates are ~2100 km, where a
	// float32 ulp is ~1.2e-4 km; a 1 km round trip carries that much
	// cancellation error.
	p2 := p.Destination(1, 45)
	assert.InDelta(t, 1.0, p.Distance(p2), 1e-3)

	// Anchored at the reference point the coordinates stay small and the
	// mantissa covers the round trip.
	near := NewProjectionAt[float32](50, 30)
	q := near.Project(30.5, 50.5)
	q2 := q.Destination(1, 45)
	assert.InDelta(t, 1.0, q.Distance(q2), 1e-4)
}

func BenchmarkFlatDistance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		proj := NewProjection((aachen[1] + meiersberg[1]) / 2)
		p1 := proj.Project(aachen[0], aachen[1])
		p2 := proj.Project(meiersberg[0], meiersberg[1])
		sink = p1.Distance(p2)
	}
}

func BenchmarkHaversineDistance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = Haversine(MeanEarthRadius, aachen[0], aachen[1], meiersberg[0], meiersberg[1])
	}
}

func BenchmarkVincentyInverse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink, _ = WGS84.Inverse(aachen[1], aachen[0], meiersberg[1], meiersberg[0])
	}
}

var sink float64
