package scan

// Rule Table
//
// Each modality owns an independent list of conjunctive threshold rules; every
// satisfied rule adds its fixed weight to that modality's raw score. Rules are
// evaluated for all categories on every call: one image may legitimately score
// under several modalities at once, which is what turns the rule table into a
// confidence distribution rather than a single hard label.
//
// The table is declared as ordered data on purpose. Declaration order is the
// tie-break for equal confidences, and an ordered slice keeps that contract
// explicit instead of leaning on map iteration order. All interval comparisons
// are strict inequalities; weights and thresholds are fixed design constants.

// Rule is one weighted threshold predicate over a feature vector.
type Rule struct {
	Weight float64
	Match  func(FeatureVector) bool
}

// Category is one scan modality with its rule list and display description.
type Category struct {
	Name        string
	Description string
	Rules       []Rule
}

var categories = []Category{
	{
		Name:        "X-Ray",
		Description: "A radiographic image using X-ray radiation to view internal body structures, commonly used for bones, chest, and dental imaging.",
		Rules: []Rule{
			{Weight: 3.0, Match: func(fv FeatureVector) bool {
				return fv.DarkRatio > 0.3 && fv.Contrast > 150
			}},
			{Weight: 2.0, Match: func(fv FeatureVector) bool {
				return fv.MeanIntensity < 100 && fv.StdIntensity > 50
			}},
			{Weight: 1.5, Match: func(fv FeatureVector) bool {
				return fv.EdgeDensity > 0.05 && fv.EdgeDensity < 0.25
			}},
		},
	},
	{
		Name:        "CT Scan",
		Description: "Computed Tomography scan providing cross-sectional images of the body using X-rays processed by computer.",
		Rules: []Rule{
			{Weight: 2.0, Match: func(fv FeatureVector) bool {
				return fv.AspectRatio > 0.85 && fv.AspectRatio < 1.15
			}},
			{Weight: 2.0, Match: func(fv FeatureVector) bool {
				return fv.MeanIntensity > 60 && fv.MeanIntensity < 160 && fv.StdIntensity > 40
			}},
			{Weight: 1.5, Match: func(fv FeatureVector) bool {
				return fv.Entropy > 6.0
			}},
			{Weight: 1.0, Match: func(fv FeatureVector) bool {
				return fv.EdgeDensity > 0.1
			}},
		},
	},
	{
		Name:        "MRI",
		Description: "Magnetic Resonance Imaging using strong magnetic fields and radio waves to generate detailed images of organs and tissues.",
		Rules: []Rule{
			{Weight: 2.5, Match: func(fv FeatureVector) bool {
				return fv.Entropy > 5.5 && fv.Contrast > 120
			}},
			{Weight: 2.0, Match: func(fv FeatureVector) bool {
				return fv.StdIntensity > 45 && fv.MeanIntensity > 50 && fv.MeanIntensity < 180
			}},
			{Weight: 1.5, Match: func(fv FeatureVector) bool {
				return fv.LaplacianVar > 100
			}},
		},
	},
	{
		Name:        "Ultrasound",
		Description: "Sonographic imaging using high-frequency sound waves to produce images of internal body structures.",
		Rules: []Rule{
			{Weight: 2.5, Match: func(fv FeatureVector) bool {
				return fv.Entropy < 6.0 && fv.StdIntensity < 50
			}},
			{Weight: 2.0, Match: func(fv FeatureVector) bool {
				return fv.LaplacianVar < 200 && fv.EdgeDensity < 0.1
			}},
			{Weight: 1.0, Match: func(fv FeatureVector) bool {
				return fv.MeanIntensity > 40 && fv.MeanIntensity < 140
			}},
			{Weight: 1.0, Match: func(fv FeatureVector) bool {
				return fv.DarkRatio > 0.2 && fv.DarkRatio < 0.6
			}},
		},
	},
	{
		Name:        "PET Scan",
		Description: "Positron Emission Tomography scan showing metabolic activity, often used in oncology and neurology.",
		Rules: []Rule{
			{Weight: 3.0, Match: func(fv FeatureVector) bool {
				return fv.BrightRatio > 0.05 && fv.DarkRatio > 0.4
			}},
			{Weight: 2.0, Match: func(fv FeatureVector) bool {
				return fv.MeanIntensity < 80 && fv.StdIntensity > 60
			}},
		},
	},
	{
		Name:        "Mammogram",
		Description: "Specialized low-dose X-ray imaging of breast tissue for screening and diagnosis.",
		Rules: []Rule{
			{Weight: 1.5, Match: func(fv FeatureVector) bool {
				return fv.MeanIntensity > 30 && fv.MeanIntensity < 120
			}},
			{Weight: 2.0, Match: func(fv FeatureVector) bool {
				return fv.DarkRatio > 0.4 && fv.Contrast > 100 && fv.Contrast < 200
			}},
			{Weight: 1.0, Match: func(fv FeatureVector) bool {
				return fv.AspectRatio > 0.6 && fv.AspectRatio < 1.0
			}},
		},
	},
	{
		Name:        "DEXA Scan",
		Description: "Dual-Energy X-ray Absorptiometry scan measuring bone mineral density.",
		Rules: []Rule{
			{Weight: 2.0, Match: func(fv FeatureVector) bool {
				return fv.Contrast < 150 && fv.Entropy < 5.5
			}},
			{Weight: 1.5, Match: func(fv FeatureVector) bool {
				return fv.EdgeDensity < 0.08
			}},
		},
	},
	{
		Name:        "Fluoroscopy",
		Description: "A real-time X-ray imaging technique used to observe moving body structures.",
		Rules: []Rule{
			{Weight: 1.5, Match: func(fv FeatureVector) bool {
				return fv.DarkRatio > 0.2 && fv.Contrast > 80 && fv.Contrast < 180
			}},
			{Weight: 1.5, Match: func(fv FeatureVector) bool {
				return fv.MeanIntensity < 120 && fv.StdIntensity > 30 && fv.StdIntensity < 60
			}},
		},
	},
}

// ScanTypes returns the supported modality names in declaration order.
func ScanTypes() []string {
	names := make([]string, len(categories))
	for i, cat := range categories {
		names[i] = cat.Name
	}
	return names
}

// DescriptionFor returns the static display description for a modality, or
// the empty string for an unknown name.
func DescriptionFor(scanType string) string {
	for _, cat := range categories {
		if cat.Name == scanType {
			return cat.Description
		}
	}
	return ""
}
