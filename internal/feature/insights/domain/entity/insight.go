// Package entity はinsightsフィーチャーのドメインエンティティを定義します。
package entity

// Insight は薬局運営に関する推奨事項の1レコードです。
type Insight struct {
	ID          string
	Title       string
	Description string
	Category    string
	Priority    string // critical / high / medium / low
	DrugName    *string
}

func ptr(s string) *string { return &s }

// Catalog は固定の8レコードのインサイト一覧です。プロセス起動時に一度定義され、不変です。
var Catalog = []Insight{
	{
		ID:          "1",
		Title:       "Increase Paracetamol Stock",
		Description: "Based on historical trends and seasonal patterns, demand for Paracetamol is expected to increase by 25% in Q1. Consider increasing stock levels by 30% to meet anticipated demand.",
		Category:    "Inventory",
		Priority:    "high",
		DrugName:    ptr("Paracetamol"),
	},
	{
		ID:          "2",
		Title:       "Antibiotic Sales Declining",
		Description: "Amoxicillin sales have decreased by 15% over the past month. This may be due to seasonal factors or competition. Consider promotional activities or price adjustments.",
		Category:    "Sales",
		Priority:    "medium",
		DrugName:    ptr("Amoxicillin"),
	},
	{
		ID:          "3",
		Title:       "Cardiovascular Category Growth",
		Description: "The cardiovascular drug category shows consistent 8% month-over-month growth. Expand product range and ensure adequate stock of Lisinopril and Atorvastatin.",
		Category:    "Growth",
		Priority:    "high",
		DrugName:    nil,
	},
	{
		ID:          "4",
		Title:       "Optimize Omeprazole Pricing",
		Description: "Price elasticity analysis suggests Omeprazole can sustain a 5% price increase without significant demand reduction. Potential additional revenue: $2,400/month.",
		Category:    "Pricing",
		Priority:    "medium",
		DrugName:    ptr("Omeprazole"),
	},
	{
		ID:          "5",
		Title:       "Weekend Staffing Adjustment",
		Description: "Sales data shows 20% lower foot traffic on weekends. Consider reducing weekend staff hours to optimize labor costs while maintaining service quality.",
		Category:    "Operations",
		Priority:    "low",
		DrugName:    nil,
	},
	{
		ID:          "6",
		Title:       "Gabapentin Stockout Risk",
		Description: "Current inventory levels for Gabapentin may not meet projected demand in the next 2 weeks. Reorder immediately to prevent stockout.",
		Category:    "Inventory",
		Priority:    "critical",
		DrugName:    ptr("Gabapentin"),
	},
	{
		ID:          "7",
		Title:       "Bundle Promotion Opportunity",
		Description: "Customers frequently purchase Ibuprofen and Omeprazole together. Create a bundle deal to increase average transaction value by an estimated 12%.",
		Category:    "Marketing",
		Priority:    "medium",
		DrugName:    nil,
	},
	{
		ID:          "8",
		Title:       "Diabetes Category Expansion",
		Description: "Metformin demand is stable with high customer loyalty. Consider expanding the diabetes product line with complementary items like glucose monitors.",
		Category:    "Growth",
		Priority:    "low",
		DrugName:    ptr("Metformin"),
	},
}
