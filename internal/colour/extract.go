// Package colour derives gradient colour stops from images and renders
// terminal previews of colormaps.
package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/colorramp/internal/colormap"
)

// Extractor derives representative colour stops from an image using k-means
// clustering in CIE Lab space.
type Extractor struct {
	maxIterations int
	convergence   float64
	maxSamples    int
	minSeparation float64
}

// NewExtractor creates an Extractor with default settings.
func NewExtractor() *Extractor {
	return &Extractor{
		maxIterations: 20,
		convergence:   0.005,
		maxSamples:    2000,
		minSeparation: 5.0, // scaled Lab distance below which two stops read as the same colour
	}
}

// Stops extracts count representative colours from the image and returns
// them as unit-range stops ordered dark to light, ready to feed a colormap
// build. Nearly identical clusters are merged, so fewer than count stops may
// come back.
func (e *Extractor) Stops(img image.Image, count int) ([]colormap.Stop, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 2 {
		return nil, fmt.Errorf("stop count must be at least 2, got %d", count)
	}
	if count > 64 {
		return nil, fmt.Errorf("stop count too large: %d (maximum: 64)", count)
	}

	points := e.samplePixels(img)
	if len(points) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	centroids := e.kmeans(points, count)
	centroids = e.mergeClose(centroids)
	if len(centroids) < 2 {
		return nil, fmt.Errorf("image yielded only %d distinct colour(s), need at least 2", len(centroids))
	}

	// Dark to light, so the low end of the gradient is the darkest cluster.
	sort.Slice(centroids, func(i, j int) bool {
		return luminance(centroids[i]) < luminance(centroids[j])
	})

	stops := make([]colormap.Stop, len(centroids))
	for i, c := range centroids {
		cc := c.Clamped()
		stops[i] = colormap.Stop{R: cc.R, G: cc.G, B: cc.B}
	}
	return stops, nil
}

// samplePixels grid-samples the image into colour points, capping the sample
// count for large images.
func (e *Extractor) samplePixels(img image.Image) []colorful.Color {
	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()

	step := 1
	if totalPixels > e.maxSamples {
		step = max(int(math.Sqrt(float64(totalPixels)/float64(e.maxSamples))), 1)
	}

	points := make([]colorful.Color, 0, min(totalPixels, e.maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				// Fully transparent pixel; contributes no colour.
				continue
			}
			points = append(points, c)
			if len(points) >= e.maxSamples {
				return points
			}
		}
	}
	return points
}

// kmeans clusters the sampled colours, comparing in Lab space so cluster
// distances track perceived colour difference.
func (e *Extractor) kmeans(points []colorful.Color, k int) []colorful.Color {
	if k >= len(points) {
		return dedup(points)
	}

	centroids := e.seedCentroids(points, k)
	k = len(centroids)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := recentre(points, assignments, k)
		movement := 0.0
		for i := range centroids {
			movement += centroids[i].DistanceLab(next[i])
		}
		centroids = next
		if movement/float64(k) < e.convergence {
			break
		}
	}
	return centroids
}

// seedCentroids picks initial centroids k-means++ style: the first at
// random, the rest weighted by squared distance to the nearest chosen one.
func (e *Extractor) seedCentroids(points []colorful.Color, k int) []colorful.Color {
	centroids := make([]colorful.Color, 0, k)
	centroids = append(centroids, points[rand.Intn(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				if d := p.DistanceLab(c); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			total += distances[i]
		}

		if total == 0 {
			// Every remaining point coincides with a centroid.
			break
		}

		target := rand.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}
	return centroids
}

func nearestCentroid(p colorful.Color, centroids []colorful.Color) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if d := p.DistanceLab(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// recentre averages each cluster's members in Lab space.
func recentre(points []colorful.Color, assignments []int, k int) []colorful.Color {
	type labSum struct {
		l, a, b float64
		n       int
	}
	sums := make([]labSum, k)
	for i, p := range points {
		l, a, b := p.Lab()
		s := &sums[assignments[i]]
		s.l += l
		s.a += a
		s.b += b
		s.n++
	}

	centroids := make([]colorful.Color, k)
	for i, s := range sums {
		if s.n == 0 {
			// Empty cluster, reseed from a random point.
			centroids[i] = points[rand.Intn(len(points))]
			continue
		}
		n := float64(s.n)
		centroids[i] = colorful.Lab(s.l/n, s.a/n, s.b/n)
	}
	return centroids
}

// mergeClose drops centroids closer than minSeparation (scaled Lab units) to
// an already-kept one.
func (e *Extractor) mergeClose(centroids []colorful.Color) []colorful.Color {
	kept := make([]colorful.Color, 0, len(centroids))
	for _, c := range centroids {
		tooClose := false
		for _, k := range kept {
			if c.DistanceLab(k)*100 < e.minSeparation {
				tooClose = true
				break
			}
		}
		if !tooClose {
			kept = append(kept, c)
		}
	}
	return kept
}

func dedup(points []colorful.Color) []colorful.Color {
	seen := make(map[[3]uint8]bool, len(points))
	out := make([]colorful.Color, 0, len(points))
	for _, p := range points {
		r, g, b := p.Clamped().RGB255()
		key := [3]uint8{r, g, b}
		if !seen[key] {
			seen[key] = true
			out = append(out, p)
		}
	}
	return out
}
