package evaluation

import (
	"math"

	"pharma_fieldops/internal/domain/entities"
)

type Color string

const (
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorYellow Color = "yellow"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
)

const (
	TierExcellent        = "ممتاز"
	TierNeedsDevelopment = "يحتاج إلى تطوير"
	TierNeedsTraining    = "يحتاج إلى تدريب"
	TierActionPlan       = "خطة عمل"
	TierSalesTraining    = "تدريب مبيعات / منتجات"
)

const (
	recFineSelling      = "تحسين دقيق لمهارات البيع"
	recFinePlanning     = "تحسين دقيق للتخطيط"
	recFineKnowledge    = "تحسين دقيق للمعرفة"
	recSellingTraining  = "تدريب مهارات البيع"
	recPlanningTraining = "تدريب التخطيط"
	recProductTraining  = "تدريب المنتجات وإدارة العملاء"
)

// Classification is the tier label of a total score with its display color.
type Classification struct {
	Tier  string `json:"tier"`
	Color Color  `json:"color"`
}

// Result bundles everything the evaluation form shows for a set of ratings.
type Result struct {
	Ratings         entities.Ratings        `json:"ratings"`
	Scores          entities.ScoreBreakdown `json:"scores"`
	Classification  Classification          `json:"classification"`
	Recommendations []string                `json:"recommendations"`
}

// Normalize clamps every known rating to [0, maxScore] and snaps it down to
// the half-point grid. Unknown criterion ids are dropped.
func Normalize(ratings entities.Ratings) entities.Ratings {
	out := entities.Ratings{}
	for _, c := range criteria {
		v, ok := ratings[c.ID]
		if !ok {
			continue
		}
		out[c.ID] = snap(v, c.MaxScore)
	}
	return out
}

func snap(v, maxScore float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v > maxScore {
		v = maxScore
	}
	return math.Floor(v*2) / 2
}

// Score sums the ratings per category. Unset criteria count as zero.
func Score(ratings entities.Ratings) entities.ScoreBreakdown {
	var b entities.ScoreBreakdown
	for _, c := range criteria {
		v := snap(ratings[c.ID], c.MaxScore)
		switch c.Category {
		case CategoryPlanning:
			b.Planning += v
		case CategoryPersonalTrait:
			b.PersonalTraits += v
		case CategoryKnowledge:
			b.Knowledge += v
		case CategorySellingSkills:
			b.SellingSkills += v
		}
	}
	b.Total = b.Planning + b.PersonalTraits + b.Knowledge + b.SellingSkills
	return b
}

// Classify maps a total score to its tier. Thresholds are exclusive: 85 is
// not excellent.
func Classify(total float64) Classification {
	switch {
	case total > 85:
		return Classification{Tier: TierExcellent, Color: ColorGreen}
	case total > 75:
		return Classification{Tier: TierNeedsDevelopment, Color: ColorBlue}
	case total > 65:
		return Classification{Tier: TierNeedsTraining, Color: ColorYellow}
	case total > 55:
		return Classification{Tier: TierActionPlan, Color: ColorOrange}
	default:
		return Classification{Tier: TierSalesTraining, Color: ColorRed}
	}
}

type floors struct {
	selling, planning, knowledge float64
}

// Recommend lists the trainings a representative needs: one entry per metric
// strictly below the floor of its tier, in selling, planning, knowledge order.
// A total of 55 or less always yields the single sales/product training.
func Recommend(b entities.ScoreBreakdown) []string {
	if b.Total <= 55 {
		return []string{TierSalesTraining}
	}

	f := floors{selling: 35, planning: 11, knowledge: 8}
	labels := [3]string{recSellingTraining, recPlanningTraining, recProductTraining}
	switch {
	case b.Total > 85:
		f = floors{selling: 45, planning: 12, knowledge: 8}
		labels = [3]string{recFineSelling, recFinePlanning, recFineKnowledge}
	case b.Total > 75:
		f = floors{selling: 40, planning: 12, knowledge: 11}
	case b.Total > 65:
		f = floors{selling: 40, planning: 11, knowledge: 10}
	}

	out := []string{}
	if b.SellingSkills < f.selling {
		out = append(out, labels[0])
	}
	if b.Planning < f.planning {
		out = append(out, labels[1])
	}
	if b.Knowledge < f.knowledge {
		out = append(out, labels[2])
	}
	return out
}

// Evaluate normalizes the ratings and derives scores, tier and recommendations.
func Evaluate(ratings entities.Ratings) Result {
	normalized := Normalize(ratings)
	scores := Score(normalized)
	return Result{
		Ratings:         normalized,
		Scores:          scores,
		Classification:  Classify(scores.Total),
		Recommendations: Recommend(scores),
	}
}
