package repository

import (
	"time"

	"github.com/kartikmaddali/aura-commerce-demo/models"
)

func seedTime(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// SeedProducts returns the demo catalog: three products per brand.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "luxeloom-001",
			Name:        "Silk Evening Gown",
			Description: "Elegant silk evening gown with hand-stitched details and Swarovski crystal embellishments.",
			Price:       2499.99,
			Brand:       models.BrandLuxeLoom,
			Category:    "Evening Wear",
			Subcategory: "Gowns",
			Images: []string{
				"https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=800",
			},
			Sizes:         []string{"XS", "S", "M", "L", "XL"},
			Colors:        []string{"Black", "Navy", "Burgundy"},
			InStock:       true,
			StockQuantity: 15,
			Tags:          []string{"evening", "luxury", "silk", "crystal"},
			Features: []string{
				"100% Pure Silk",
				"Hand-stitched details",
				"Swarovski crystal embellishments",
				"Adjustable straps",
				"Hidden zipper",
			},
			CareInstructions: []string{
				"Dry clean only",
				"Store in garment bag",
				"Avoid direct sunlight",
				"Do not iron",
			},
			CreatedAt: seedTime("2024-01-15T10:00:00Z"),
			UpdatedAt: seedTime("2024-01-15T10:00:00Z"),
		},
		{
			ID:          "luxeloom-002",
			Name:        "Italian Leather Handbag",
			Description: "Handcrafted Italian leather handbag with gold hardware and multiple compartments.",
			Price:       899.99,
			Brand:       models.BrandLuxeLoom,
			Category:    "Accessories",
			Subcategory: "Handbags",
			Images: []string{
				"https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=800",
			},
			Sizes:         []string{"One Size"},
			Colors:        []string{"Cognac", "Black", "Tan"},
			InStock:       true,
			StockQuantity: 25,
			Tags:          []string{"leather", "handbag", "luxury", "italian"},
			Features: []string{
				"Full-grain Italian leather",
				"Gold-plated hardware",
				"Multiple compartments",
				"Adjustable shoulder strap",
				"Magnetic closure",
			},
			CareInstructions: []string{
				"Clean with leather conditioner",
				"Store in dust bag",
				"Avoid water exposure",
				"Professional cleaning recommended",
			},
			CreatedAt: seedTime("2024-01-10T10:00:00Z"),
			UpdatedAt: seedTime("2024-01-10T10:00:00Z"),
		},
		{
			ID:          "luxeloom-003",
			Name:        "Cashmere Sweater",
			Description: "Ultra-soft cashmere sweater with ribbed texture and classic fit.",
			Price:       399.99,
			Brand:       models.BrandLuxeLoom,
			Category:    "Sweaters",
			Subcategory: "Cashmere",
			Images: []string{
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800",
			},
			Sizes:         []string{"XS", "S", "M", "L", "XL"},
			Colors:        []string{"Cream", "Navy", "Charcoal", "Rose"},
			InStock:       true,
			StockQuantity: 40,
			Tags:          []string{"cashmere", "sweater", "luxury", "soft"},
			Features: []string{
				"100% Pure Cashmere",
				"Ribbed texture",
				"Classic fit",
				"Ribbed cuffs and hem",
				"Machine washable",
			},
			CareInstructions: []string{
				"Hand wash cold",
				"Lay flat to dry",
				"Do not bleach",
				"Store folded",
			},
			CreatedAt: seedTime("2024-01-05T10:00:00Z"),
			UpdatedAt: seedTime("2024-01-05T10:00:00Z"),
		},
		{
			ID:          "urbanmarket-001",
			Name:        "Denim Jacket",
			Description: "Classic denim jacket with modern fit and comfortable stretch fabric.",
			Price:       89.99,
			Brand:       models.BrandUrbanMarket,
			Category:    "Outerwear",
			Subcategory: "Jackets",
			Images: []string{
				"https://images.unsplash.com/photo-1576995853123-5a10305d93c0?w=800",
			},
			Sizes:         []string{"XS", "S", "M", "L", "XL", "XXL"},
			Colors:        []string{"Light Blue", "Dark Blue", "Black"},
			InStock:       true,
			StockQuantity: 150,
			Tags:          []string{"denim", "jacket", "casual", "versatile"},
			Features: []string{
				"Stretch denim fabric",
				"Modern fit",
				"Multiple pockets",
				"Adjustable waist",
				"Machine washable",
			},
			CareInstructions: []string{
				"Machine wash cold",
				"Tumble dry low",
				"Do not bleach",
				"Iron if needed",
			},
			CreatedAt: seedTime("2024-01-20T10:00:00Z"),
			UpdatedAt: seedTime("2024-01-20T10:00:00Z"),
		},
		{
			ID:          "urbanmarket-002",
			Name:        "Graphic T-Shirt",
			Description: "Comfortable cotton t-shirt with trendy graphic print and relaxed fit.",
			Price:       29.99,
			Brand:       models.BrandUrbanMarket,
			Category:    "Tops",
			Subcategory: "T-Shirts",
			Images: []string{
				"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=800",
			},
			Sizes:         []string{"XS", "S", "M", "L", "XL", "XXL"},
			Colors:        []string{"White", "Black", "Gray", "Navy"},
			InStock:       true,
			StockQuantity: 300,
			Tags:          []string{"t-shirt", "graphic", "casual", "cotton"},
			Features: []string{
				"100% Cotton",
				"Relaxed fit",
				"Graphic print",
				"Pre-shrunk fabric",
				"Machine washable",
			},
			CareInstructions: []string{
				"Machine wash cold",
				"Tumble dry low",
				"Do not bleach",
				"Iron on low if needed",
			},
			CreatedAt: seedTime("2024-01-18T10:00:00Z"),
			UpdatedAt: seedTime("2024-01-18T10:00:00Z"),
		},
		{
			ID:          "urbanmarket-003",
			Name:        "High-Waist Jeans",
			Description: "Trendy high-waist jeans with stretch denim and flattering fit.",
			Price:       79.99,
			Brand:       models.BrandUrbanMarket,
			Category:    "Bottoms",
			Subcategory: "Jeans",
			Images: []string{
				"https://images.unsplash.com/photo-1542272604-787c3835535d?w=800",
			},
			Sizes:         []string{"24", "26", "28", "30", "32", "34"},
			Colors:        []string{"Blue", "Black", "Gray"},
			InStock:       true,
			StockQuantity: 200,
			Tags:          []string{"jeans", "high-waist", "stretch", "trendy"},
			Features: []string{
				"Stretch denim",
				"High-waist fit",
				"Five-pocket style",
				"Slim leg",
				"Machine washable",
			},
			CareInstructions: []string{
				"Machine wash cold",
				"Tumble dry low",
				"Do not bleach",
				"Iron if needed",
			},
			CreatedAt: seedTime("2024-01-12T10:00:00Z"),
			UpdatedAt: seedTime("2024-01-12T10:00:00Z"),
		},
		{
			ID:          "aura-wholesale-001",
			Name:        "Bulk Cotton T-Shirts",
			Description: "Premium cotton t-shirts available in bulk quantities for businesses.",
			Price:       12.99,
			Brand:       models.BrandAuraWholesale,
			Category:    "Bulk Apparel",
			Subcategory: "T-Shirts",
			Images: []string{
				"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=800",
			},
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			Colors:        []string{"White", "Black", "Navy", "Gray"},
			InStock:       true,
			StockQuantity: 5000,
			Tags:          []string{"bulk", "cotton", "t-shirt", "business"},
			Features: []string{
				"100% Cotton",
				"Bulk pricing",
				"Customizable",
				"Quick turnaround",
				"Quality guarantee",
			},
			CareInstructions: []string{
				"Machine wash cold",
				"Tumble dry low",
				"Do not bleach",
				"Iron on low if needed",
			},
			CreatedAt: seedTime("2024-01-01T10:00:00Z"),
			UpdatedAt: seedTime("2024-01-01T10:00:00Z"),
		},
		{
			ID:          "aura-wholesale-002",
			Name:        "Corporate Polo Shirts",
			Description: "Professional polo shirts perfect for corporate uniforms and branding.",
			Price:       18.99,
			Brand:       models.BrandAuraWholesale,
			Category:    "Bulk Apparel",
			Subcategory: "Polo Shirts",
			Images: []string{
				"https://images.unsplash.com/photo-1586790170083-2f9ceadc732d?w=800",
			},
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			Colors:        []string{"Navy", "Black", "White", "Gray"},
			InStock:       true,
			StockQuantity: 3000,
			Tags:          []string{"corporate", "polo", "uniform", "business"},
			Features: []string{
				"Moisture-wicking fabric",
				"Embroidered logo option",
				"Professional fit",
				"Quick-dry technology",
				"Bulk discount available",
			},
			CareInstructions: []string{
				"Machine wash cold",
				"Tumble dry low",
				"Do not bleach",
				"Iron on low if needed",
			},
			CreatedAt: seedTime("2024-01-08T10:00:00Z"),
			UpdatedAt: seedTime("2024-01-08T10:00:00Z"),
		},
		{
			ID:          "aura-wholesale-003",
			Name:        "Promotional Tote Bags",
			Description: "Customizable tote bags perfect for promotional events and branding.",
			Price:       8.99,
			Brand:       models.BrandAuraWholesale,
			Category:    "Promotional Items",
			Subcategory: "Bags",
			Images: []string{
				"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800",
			},
			Sizes:         []string{"One Size"},
			Colors:        []string{"Natural", "Black", "Navy", "Red"},
			InStock:       true,
			StockQuantity: 10000,
			Tags:          []string{"promotional", "tote", "customizable", "branding"},
			Features: []string{
				"Canvas material",
				"Custom printing available",
				"Reusable design",
				"Eco-friendly",
				"Bulk pricing",
			},
			CareInstructions: []string{
				"Machine wash cold",
				"Air dry",
				"Do not bleach",
				"Iron on low if needed",
			},
			CreatedAt: seedTime("2024-01-03T10:00:00Z"),
			UpdatedAt: seedTime("2024-01-03T10:00:00Z"),
		},
	}
}
