package entities

// Product is a catalog product as scored by the shopping service.
//
// Products are immutable from the BFF point of view: eco-score and sub-scores are
// computed remotely and consumed as opaque values (0-100).
type Product struct {
	ID          int64   `json:"id"`
	Barcode     string  `json:"barcode,omitempty"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit,omitempty"`
	Store       string  `json:"store,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Description string  `json:"description,omitempty"`
	SourceAPI   string  `json:"source_api,omitempty"`

	EcoScore        float64 `json:"eco_score"`
	CarbonFootprint float64 `json:"carbon_footprint,omitempty"`
	WaterUsage      float64 `json:"water_usage,omitempty"`
	PackagingScore  float64 `json:"packaging_score,omitempty"`
	SocialScore     float64 `json:"social_score,omitempty"`

	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
}

// ProductFilter narrows GET /products.
type ProductFilter struct {
	Category    string
	Search      string
	MinEcoScore *float64
	Skip        int
	Limit       int
}

// Category is a product category with its product count.
type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// SustainabilityScore is the sub-score breakdown of a product.
type SustainabilityScore struct {
	TotalScore         float64                 `json:"total_score"`
	EconomicScore      float64                 `json:"economic_score"`
	EnvironmentalScore float64                 `json:"environmental_score"`
	SocialScore        float64                 `json:"social_score"`
	Breakdown          SustainabilityBreakdown `json:"breakdown"`
}

type SustainabilityBreakdown struct {
	CarbonFootprint float64 `json:"carbon_footprint"`
	WaterUsage      float64 `json:"water_usage"`
	PackagingScore  float64 `json:"packaging_score"`
}

// ProductSubstitute is one entry of GET /products/{id}/substitutes.
type ProductSubstitute struct {
	Product           Product `json:"product"`
	Score             float64 `json:"score"`
	ScoreImprovement  float64 `json:"score_improvement"`
	PriceDifference   float64 `json:"price_difference"`
	SavingsPercentage float64 `json:"savings_percentage"`
	Reason            string  `json:"recommendation_reason"`
}

// EcoScoreBand buckets an eco-score for display.
type EcoScoreBand string

const (
	EcoScoreExcellent EcoScoreBand = "excellent"
	EcoScoreGood      EcoScoreBand = "good"
	EcoScoreFair      EcoScoreBand = "fair"
	EcoScorePoor      EcoScoreBand = "poor"
)

func BandForEcoScore(score float64) EcoScoreBand {
	switch {
	case score >= 80:
		return EcoScoreExcellent
	case score >= 60:
		return EcoScoreGood
	case score >= 40:
		return EcoScoreFair
	default:
		return EcoScorePoor
	}
}
