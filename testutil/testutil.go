package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/tsigo/mesh"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// GenerateMesh builds a random mesh with the requested section sizes.
//
// The result is structurally valid in the way a freshly decoded mesh is:
// every triangle, inclusion and exclusion references an existing vertex, and
// every inclusion direction is unit length (or zero when nVertices is zero
// and the dependent sections are skipped). Coordinates land in a 100 nm box.
func (r *RNG) GenerateMesh(nVertices, nTriangles, nInclusions, nExclusions int) *mesh.Mesh {
	r.mu.Lock()
	defer r.mu.Unlock()

	const boxSide = 100.0

	m := &mesh.Mesh{
		Dimensions: [3]float64{boxSide, boxSide, boxSide},
		Vertices:   make([]mesh.Vertex, 0, nVertices),
		Triangles:  make([]mesh.Triangle, 0, nTriangles),
		Inclusions: make([]mesh.Inclusion, 0, nInclusions),
		Exclusions: make([]mesh.Exclusion, 0, nExclusions),
	}

	for range nVertices {
		m.Vertices = append(m.Vertices, mesh.Vertex{
			Position: [3]float64{
				r.rand.Float64() * boxSide,
				r.rand.Float64() * boxSide,
				r.rand.Float64() * boxSide,
			},
			Domain: int32(r.rand.Intn(5)),
		})
	}

	if nVertices == 0 {
		// Nothing to reference; dependent sections stay empty.
		return m
	}

	for range nTriangles {
		m.Triangles = append(m.Triangles, mesh.Triangle{
			Vertices: [3]mesh.VertexIndex{
				mesh.VertexIndex(r.rand.Intn(nVertices)),
				mesh.VertexIndex(r.rand.Intn(nVertices)),
				mesh.VertexIndex(r.rand.Intn(nVertices)),
			},
		})
	}

	for range nInclusions {
		angle := r.rand.Float64() * 2 * math.Pi
		m.Inclusions = append(m.Inclusions, mesh.Inclusion{
			Type:   int32(r.rand.Intn(3)),
			Vertex: mesh.VertexIndex(r.rand.Intn(nVertices)),
			Vector: [2]float64{math.Cos(angle), math.Sin(angle)},
		})
	}

	for range nExclusions {
		m.Exclusions = append(m.Exclusions, mesh.Exclusion{
			Vertex: mesh.VertexIndex(r.rand.Intn(nVertices)),
			Radius: r.rand.Float64() * 10,
		})
	}

	return m
}
