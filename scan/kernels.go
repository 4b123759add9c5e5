package scan

// Convolution Kernels and Edge Detection
//
// Hand-rolled numeric kernels for the texture features. Two operators are
// implemented over the grayscale grid:
//
// 1. Laplacian: the 4-neighbour second-derivative kernel
//        [ 0  1  0 ]
//        [ 1 -4  1 ]
//        [ 0  1  0 ]
//    with replicated borders. The variance of its response is the sharpness
//    proxy used by the feature extractor.
//
// 2. Dual-threshold gradient edge detector (Canny formulation):
//    - Sobel 3x3 gradients with replicated borders
//    - L1 gradient magnitude (|gx| + |gy|)
//    - Non-maximum suppression in four quantised directions
//    - Hysteresis: pixels above the high threshold are strong edges; pixels
//      above the low threshold survive only when 8-connected to a strong edge
//
// Both operators are pure functions of the pixel grid and evaluate in fixed
// scan order, keeping the whole pipeline deterministic.

import (
	"math"

	"scan-recognition/imaging"
)

// laplacianResponse convolves the image with the 4-neighbour Laplacian
// kernel. Border pixels use replicated (clamped) neighbours.
func laplacianResponse(img *imaging.Grayscale) []float64 {
	w, h := img.Width, img.Height
	if w == 0 || h == 0 {
		return nil
	}

	response := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			center := float64(img.At(x, y))
			up := float64(img.At(x, clampIndex(y-1, h)))
			down := float64(img.At(x, clampIndex(y+1, h)))
			left := float64(img.At(clampIndex(x-1, w), y))
			right := float64(img.At(clampIndex(x+1, w), y))
			response[y*w+x] = up + down + left + right - 4*center
		}
	}
	return response
}

// sobelGradients computes horizontal and vertical Sobel responses with
// replicated borders.
func sobelGradients(img *imaging.Grayscale) (gx, gy []float64) {
	w, h := img.Width, img.Height
	gx = make([]float64, w*h)
	gy = make([]float64, w*h)

	at := func(x, y int) float64 {
		return float64(img.At(clampIndex(x, w), clampIndex(y, h)))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tl := at(x-1, y-1)
			tc := at(x, y-1)
			tr := at(x+1, y-1)
			ml := at(x-1, y)
			mr := at(x+1, y)
			bl := at(x-1, y+1)
			bc := at(x, y+1)
			br := at(x+1, y+1)

			idx := y*w + x
			gx[idx] = (tr + 2*mr + br) - (tl + 2*ml + bl)
			gy[idx] = (bl + 2*bc + br) - (tl + 2*tc + tr)
		}
	}
	return gx, gy
}

// detectEdges returns a per-pixel edge mask using the dual-threshold gradient
// detector described in the package comment.
func detectEdges(img *imaging.Grayscale, low, high float64) []bool {
	w, h := img.Width, img.Height
	if w == 0 || h == 0 {
		return nil
	}

	gx, gy := sobelGradients(img)

	magnitude := make([]float64, w*h)
	for i := range magnitude {
		magnitude[i] = math.Abs(gx[i]) + math.Abs(gy[i])
	}

	suppressed := nonMaxSuppression(magnitude, gx, gy, w, h)

	// Classify pixels and trace weak edges connected to strong ones.
	const (
		none   = 0
		weak   = 1
		strong = 2
	)
	grade := make([]uint8, w*h)
	var stack []int
	for i, mag := range suppressed {
		switch {
		case mag > high:
			grade[i] = strong
			stack = append(stack, i)
		case mag > low:
			grade[i] = weak
		}
	}

	edges := make([]bool, w*h)
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if edges[idx] {
			continue
		}
		edges[idx] = true

		x := idx % w
		y := idx / w
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx := x + dx
				ny := y + dy
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				neighbour := ny*w + nx
				if grade[neighbour] == weak && !edges[neighbour] {
					stack = append(stack, neighbour)
				}
			}
		}
	}

	return edges
}

// nonMaxSuppression thins gradient ridges down to single-pixel lines by
// zeroing any pixel that is not a local maximum along its gradient direction.
func nonMaxSuppression(magnitude, gx, gy []float64, w, h int) []float64 {
	result := make([]float64, len(magnitude))

	magAt := func(x, y int) float64 {
		if x < 0 || x >= w || y < 0 || y >= h {
			return 0
		}
		return magnitude[y*w+x]
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			mag := magnitude[idx]
			if mag == 0 {
				continue
			}

			angle := math.Atan2(gy[idx], gx[idx]) * 180 / math.Pi
			if angle < 0 {
				angle += 180
			}

			var before, after float64
			switch {
			case angle < 22.5 || angle >= 157.5:
				before, after = magAt(x-1, y), magAt(x+1, y)
			case angle < 67.5:
				before, after = magAt(x-1, y-1), magAt(x+1, y+1)
			case angle < 112.5:
				before, after = magAt(x, y-1), magAt(x, y+1)
			default:
				before, after = magAt(x+1, y-1), magAt(x-1, y+1)
			}

			if mag >= before && mag >= after {
				result[idx] = mag
			}
		}
	}
	return result
}

func clampIndex(i, limit int) int {
	if i < 0 {
		return 0
	}
	if i >= limit {
		return limit - 1
	}
	return i
}
