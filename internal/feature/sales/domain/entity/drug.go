// Package entity はsalesフィーチャーのドメインエンティティを定義します。
package entity

// Drug は医薬品カタログの1エントリです。プロセス起動時に一度定義され、不変です。
type Drug struct {
	Name      string
	Category  string
	BasePrice float64
}

// Catalog は固定の10品目リファレンスリストです。
// 並び順は売上生成とスライス処理の行順を決めるため、変更してはいけません。
var Catalog = []Drug{
	{Name: "Paracetamol", Category: "Pain Relief", BasePrice: 5.99},
	{Name: "Amoxicillin", Category: "Antibiotics", BasePrice: 12.99},
	{Name: "Omeprazole", Category: "Digestive", BasePrice: 8.49},
	{Name: "Metformin", Category: "Diabetes", BasePrice: 15.99},
	{Name: "Lisinopril", Category: "Cardiovascular", BasePrice: 18.99},
	{Name: "Atorvastatin", Category: "Cardiovascular", BasePrice: 22.49},
	{Name: "Ibuprofen", Category: "Pain Relief", BasePrice: 6.99},
	{Name: "Ciprofloxacin", Category: "Antibiotics", BasePrice: 14.99},
	{Name: "Amlodipine", Category: "Cardiovascular", BasePrice: 16.99},
	{Name: "Gabapentin", Category: "Neurological", BasePrice: 24.99},
}
