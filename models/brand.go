package models

// Brand identifies one of the storefronts sharing this backend.
type Brand string

const (
	BrandLuxeLoom      Brand = "luxeloom"       // high-end B2C
	BrandUrbanMarket   Brand = "urbanmarket"    // fast-fashion B2C
	BrandAuraWholesale Brand = "aura-wholesale" // organization-scoped B2B
)

// IsValid reports whether b names a known storefront.
func (b Brand) IsValid() bool {
	switch b {
	case BrandLuxeLoom, BrandUrbanMarket, BrandAuraWholesale:
		return true
	}
	return false
}

// IsB2B reports whether b is the wholesale storefront.
func (b Brand) IsB2B() bool {
	return b == BrandAuraWholesale
}
