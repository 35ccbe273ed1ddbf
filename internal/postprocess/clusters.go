package postprocess

import (
	"image"
	"sort"
)

// Cluster is an 8-connected group of lit (non-black) pixels.
type Cluster struct {
	Size     int
	Bounds   image.Rectangle
	Centroid [2]float64
}

// FindClusters labels the lit pixels of a packed frame (see raster.PackRGBA) and
// returns their connected groups, largest first. A pixel is lit when any of its
// colour bytes is non-zero; alpha is ignored.
func FindClusters(pix []uint32, w, h int) []Cluster {
	if w <= 0 || h <= 0 || len(pix) < w*h {
		return nil
	}

	lit := func(i int) bool { return pix[i]&0x00ffffff != 0 }

	labels := make([]int, w*h)
	for i := range labels {
		labels[i] = -1
	}

	dx := [8]int{-1, 0, 1, -1, 1, -1, 0, 1}
	dy := [8]int{-1, -1, -1, 0, 0, 1, 1, 1}

	var clusters []Cluster
	queue := make([]int, 0, 1024)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if !lit(idx) || labels[idx] >= 0 {
				continue
			}

			// BFS from this pixel
			id := len(clusters)
			queue = queue[:0]
			queue = append(queue, idx)
			labels[idx] = id

			c := Cluster{Bounds: image.Rect(x, y, x+1, y+1)}
			var sumX, sumY float64

			for len(queue) > 0 {
				curr := queue[0]
				queue = queue[1:]

				cy := curr / w
				cx := curr % w
				c.Size++
				sumX += float64(cx)
				sumY += float64(cy)
				c.Bounds = c.Bounds.Union(image.Rect(cx, cy, cx+1, cy+1))

				for d := 0; d < 8; d++ {
					nx := cx + dx[d]
					ny := cy + dy[d]
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					ni := ny*w + nx
					if lit(ni) && labels[ni] < 0 {
						labels[ni] = id
						queue = append(queue, ni)
					}
				}
			}

			c.Centroid = [2]float64{sumX / float64(c.Size), sumY / float64(c.Size)}
			clusters = append(clusters, c)
		}
	}

	sort.SliceStable(clusters, func(i, j int) bool { return clusters[i].Size > clusters[j].Size })
	return clusters
}

// Coverage returns the fraction of lit pixels in the frame.
func Coverage(clusters []Cluster, w, h int) float64 {
	if w <= 0 || h <= 0 {
		return 0
	}
	n := 0
	for _, c := range clusters {
		n += c.Size
	}
	return float64(n) / float64(w*h)
}
