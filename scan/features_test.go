package scan

import (
	"math"
	"testing"

	"scan-recognition/imaging"
)

func uniformImage(width, height int, value uint8) *imaging.Grayscale {
	img := imaging.New(width, height)
	for i := range img.Pix {
		img.Pix[i] = value
	}
	return img
}

// patternImage fills the grid with a fixed, fully deterministic pixel pattern
// that exercises every statistic (gradients, texture, dark and bright areas).
func patternImage(width, height int) *imaging.Grayscale {
	img := imaging.New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, uint8((x*37+y*11)%256))
		}
	}
	return img
}

func TestExtractFeatureVectorUniformImage(t *testing.T) {
	t.Parallel()

	fv := ExtractFeatureVector(uniformImage(64, 64, 128))

	if fv.Entropy != 0 {
		t.Errorf("expected entropy 0 for constant image, got %f", fv.Entropy)
	}
	if fv.StdIntensity != 0 {
		t.Errorf("expected zero std for constant image, got %f", fv.StdIntensity)
	}
	if fv.MeanIntensity != 128 {
		t.Errorf("expected mean 128, got %f", fv.MeanIntensity)
	}
	if fv.MedianIntensity != 128 {
		t.Errorf("expected median 128, got %f", fv.MedianIntensity)
	}
	if fv.Contrast != 0 {
		t.Errorf("expected zero contrast, got %f", fv.Contrast)
	}
	if fv.LaplacianVar != 0 {
		t.Errorf("expected zero Laplacian variance, got %f", fv.LaplacianVar)
	}
	if fv.EdgeDensity != 0 {
		t.Errorf("expected zero edge density, got %f", fv.EdgeDensity)
	}
	if fv.DarkRatio != 0 || fv.BrightRatio != 0 {
		t.Errorf("expected zero dark/bright ratios, got %f/%f", fv.DarkRatio, fv.BrightRatio)
	}
}

func TestExtractFeatureVectorZeroAreaImage(t *testing.T) {
	t.Parallel()

	fv := ExtractFeatureVector(imaging.New(0, 0))

	if fv.AspectRatio != 1.0 {
		t.Errorf("expected aspect ratio 1.0 for zero-area image, got %f", fv.AspectRatio)
	}
	if fv.Width != 0 || fv.Height != 0 {
		t.Errorf("expected 0x0 dimensions, got %dx%d", fv.Width, fv.Height)
	}
}

func TestAspectRatio(t *testing.T) {
	t.Parallel()

	fv := ExtractFeatureVector(uniformImage(200, 100, 10))
	if fv.AspectRatio != 2.0 {
		t.Errorf("expected aspect ratio 2.0, got %f", fv.AspectRatio)
	}
}

func TestIntensityStatistics(t *testing.T) {
	t.Parallel()

	img := imaging.New(2, 2)
	copy(img.Pix, []uint8{0, 50, 100, 250})

	fv := ExtractFeatureVector(img)

	if fv.MeanIntensity != 100 {
		t.Errorf("expected mean 100, got %f", fv.MeanIntensity)
	}
	// median of {0, 50, 100, 250} interpolates between the middle pair
	if fv.MedianIntensity != 75 {
		t.Errorf("expected median 75, got %f", fv.MedianIntensity)
	}
	expectedStd := math.Sqrt((100*100 + 50*50 + 0 + 150*150) / 4.0)
	if math.Abs(fv.StdIntensity-expectedStd) > 1e-9 {
		t.Errorf("expected std %f, got %f", expectedStd, fv.StdIntensity)
	}
}

func TestDarkAndBrightRatios(t *testing.T) {
	t.Parallel()

	img := imaging.New(4, 4)
	// 8 dark pixels, 4 bright, 4 mid-range
	for i := 0; i < 8; i++ {
		img.Pix[i] = 10
	}
	for i := 8; i < 12; i++ {
		img.Pix[i] = 255
	}
	for i := 12; i < 16; i++ {
		img.Pix[i] = 128
	}

	fv := ExtractFeatureVector(img)

	if fv.DarkRatio != 0.5 {
		t.Errorf("expected dark ratio 0.5, got %f", fv.DarkRatio)
	}
	if fv.BrightRatio != 0.25 {
		t.Errorf("expected bright ratio 0.25, got %f", fv.BrightRatio)
	}
}

func TestThresholdBoundariesExcluded(t *testing.T) {
	t.Parallel()

	// Exactly 50 is not dark and exactly 200 is not bright.
	fv := ExtractFeatureVector(uniformImage(8, 8, 50))
	if fv.DarkRatio != 0 {
		t.Errorf("intensity 50 must not count as dark, got ratio %f", fv.DarkRatio)
	}

	fv = ExtractFeatureVector(uniformImage(8, 8, 200))
	if fv.BrightRatio != 0 {
		t.Errorf("intensity 200 must not count as bright, got ratio %f", fv.BrightRatio)
	}
}

func TestEntropyTwoValueImage(t *testing.T) {
	t.Parallel()

	img := imaging.New(4, 4)
	for i := 8; i < 16; i++ {
		img.Pix[i] = 255
	}

	fv := ExtractFeatureVector(img)

	// Two equally likely intensities carry exactly one bit.
	if math.Abs(fv.Entropy-1.0) > 1e-12 {
		t.Errorf("expected entropy 1.0, got %f", fv.Entropy)
	}
}

func TestContrastUsesPercentiles(t *testing.T) {
	t.Parallel()

	img := imaging.New(10, 10)
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}

	fv := ExtractFeatureVector(img)

	// For values 0..99: p5 = 4.95, p95 = 94.05 under linear interpolation.
	expected := 94.05 - 4.95
	if math.Abs(fv.Contrast-expected) > 1e-9 {
		t.Errorf("expected contrast %f, got %f", expected, fv.Contrast)
	}
}

func TestContrastIgnoresSinglePixelOutliers(t *testing.T) {
	t.Parallel()

	img := uniformImage(32, 32, 100)
	img.Pix[0] = 0
	img.Pix[1] = 255

	fv := ExtractFeatureVector(img)

	if fv.Contrast != 0 {
		t.Errorf("expected robust contrast 0 with two outlier pixels, got %f", fv.Contrast)
	}
}

func TestPercentileFromHistogram(t *testing.T) {
	t.Parallel()

	var hist [256]int
	hist[10] = 2
	hist[20] = 2

	// Order statistics are {10, 10, 20, 20}; the median interpolates to 15.
	if got := percentileFromHistogram(hist, 4, 50); got != 15 {
		t.Errorf("expected median 15, got %f", got)
	}
	if got := percentileFromHistogram(hist, 4, 0); got != 10 {
		t.Errorf("expected p0 10, got %f", got)
	}
	if got := percentileFromHistogram(hist, 4, 100); got != 20 {
		t.Errorf("expected p100 20, got %f", got)
	}
}

func TestFeatureExtractionDeterminism(t *testing.T) {
	t.Parallel()

	img := patternImage(48, 32)

	first := ExtractFeatureVector(img)
	second := ExtractFeatureVector(img)

	if first != second {
		t.Fatalf("feature extraction is not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestFeatureSummaryRounding(t *testing.T) {
	t.Parallel()

	fv := FeatureVector{
		MeanIntensity: 101.2345,
		Contrast:      88.8888,
		Entropy:       5.67891,
		EdgeDensity:   0.123456,
		Width:         640,
		Height:        480,
	}

	summary := fv.Summary()

	if summary.MeanIntensity != 101.2 {
		t.Errorf("expected mean 101.2, got %f", summary.MeanIntensity)
	}
	if summary.Contrast != 88.9 {
		t.Errorf("expected contrast 88.9, got %f", summary.Contrast)
	}
	if summary.Entropy != 5.68 {
		t.Errorf("expected entropy 5.68, got %f", summary.Entropy)
	}
	if summary.EdgeDensity != 0.1235 {
		t.Errorf("expected edge density 0.1235, got %f", summary.EdgeDensity)
	}
	if summary.Resolution != "640x480" {
		t.Errorf("expected resolution 640x480, got %s", summary.Resolution)
	}
}
