package scan

// Rule-Based Scan Modality Classifier
//
// Classification runs in three fixed stages with a single forward pass:
//
// 1. Feature Extraction: the grayscale grid is reduced to a FeatureVector
//    (see features.go).
//
// 2. Rule Scoring: every category's rule list is evaluated against the
//    vector; satisfied rules add their weights to the category's raw score.
//    No early exit and no mutual exclusion between categories.
//
// 3. Normalisation & Ranking: raw scores become percentage confidences
//    (score / total * 100, rounded to one decimal). If no rule fired at all
//    the result falls back to X-Ray at 100%, the most common modality, so a
//    caller always gets an answer. The best category is the confidence
//    maximum with ties resolved by declaration order, and the full ranked
//    distribution is attached for display of alternates.
//
// The whole pipeline is a pure synchronous computation: per-call state only,
// shared data limited to the read-only rule table, safe for concurrent use.

import (
	"sort"

	"scan-recognition/imaging"
)

// Classify runs the full pipeline on a decoded grayscale image.
func Classify(img *imaging.Grayscale) ClassificationResult {
	return ClassifyFeatures(ExtractFeatureVector(img))
}

// ClassifyFeatures scores an already-extracted feature vector against the
// rule table and produces the ranked confidence distribution.
func ClassifyFeatures(fv FeatureVector) ClassificationResult {
	return rankScores(scoreCategories(fv), fv.Summary())
}

// rankScores normalises raw category scores into percentage confidences and
// selects the winner. Scores are indexed by category declaration order.
func rankScores(scores []float64, summary FeatureSummary) ClassificationResult {
	var total float64
	for _, s := range scores {
		total += s
	}
	if total == 0 {
		// No rule fired; default to the most common modality so the engine
		// never returns an empty answer.
		scores[0] = 1.0
		total = 1.0
	}

	allScores := make([]CategoryScore, len(categories))
	for i, cat := range categories {
		allScores[i] = CategoryScore{
			Category:   cat.Name,
			Confidence: roundTo(scores[i]/total*100, 1),
		}
	}

	// First strict maximum wins, which pins ties to declaration order.
	best := 0
	for i := 1; i < len(allScores); i++ {
		if allScores[i].Confidence > allScores[best].Confidence {
			best = i
		}
	}
	bestType := allScores[best].Category
	bestConfidence := allScores[best].Confidence
	description := categories[best].Description

	// Stable sort keeps declaration order within equal confidences.
	sort.SliceStable(allScores, func(i, j int) bool {
		return allScores[i].Confidence > allScores[j].Confidence
	})

	return ClassificationResult{
		ScanType:    bestType,
		Confidence:  bestConfidence,
		Description: description,
		AllScores:   allScores,
		Features:    summary,
	}
}

// scoreCategories evaluates the full rule table, returning raw scores indexed
// by category declaration order.
func scoreCategories(fv FeatureVector) []float64 {
	scores := make([]float64, len(categories))
	for i, cat := range categories {
		for _, rule := range cat.Rules {
			if rule.Match(fv) {
				scores[i] += rule.Weight
			}
		}
	}
	return scores
}
