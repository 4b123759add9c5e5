package scan

import "fmt"

// FeatureVector is the fixed set of scalar statistics derived from one image.
// It is created fresh per classification call and never mutated afterwards.
type FeatureVector struct {
	AspectRatio     float64 `json:"aspectRatio"`
	MeanIntensity   float64 `json:"meanIntensity"`
	StdIntensity    float64 `json:"stdIntensity"`
	MedianIntensity float64 `json:"medianIntensity"`
	Entropy         float64 `json:"entropy"`
	LaplacianVar    float64 `json:"laplacianVar"`
	EdgeDensity     float64 `json:"edgeDensity"`
	DarkRatio       float64 `json:"darkRatio"`
	BrightRatio     float64 `json:"brightRatio"`
	Contrast        float64 `json:"contrast"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
}

// CategoryScore pairs a modality name with its normalised confidence (0-100).
type CategoryScore struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// FeatureSummary is the display-rounded feature subset consumed by report
// rendering. Rounding widths are part of the output contract.
type FeatureSummary struct {
	MeanIntensity float64 `json:"mean_intensity"`
	Contrast      float64 `json:"contrast"`
	Entropy       float64 `json:"entropy"`
	EdgeDensity   float64 `json:"edge_density"`
	Resolution    string  `json:"resolution"`
}

// ClassificationResult is the self-contained outcome of one classification.
// AllScores is sorted descending by confidence, ties resolved by category
// declaration order, and always sums to 100 within rounding tolerance.
type ClassificationResult struct {
	ScanType    string          `json:"scan_type"`
	Confidence  float64         `json:"confidence"`
	Description string          `json:"description"`
	AllScores   []CategoryScore `json:"all_scores"`
	Features    FeatureSummary  `json:"features"`
}

// Summary produces the display-rounded view of the feature vector.
func (fv FeatureVector) Summary() FeatureSummary {
	return FeatureSummary{
		MeanIntensity: roundTo(fv.MeanIntensity, 1),
		Contrast:      roundTo(fv.Contrast, 1),
		Entropy:       roundTo(fv.Entropy, 2),
		EdgeDensity:   roundTo(fv.EdgeDensity, 4),
		Resolution:    fmt.Sprintf("%dx%d", fv.Width, fv.Height),
	}
}
