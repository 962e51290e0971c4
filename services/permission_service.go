package services

import (
	"github.com/kartikmaddali/aura-commerce-demo/models"
)

// Capability strings derived from identity.
const (
	PermReadProducts         = "read:products"
	PermReadOrders           = "read:orders"
	PermReadVIPContent       = "read:vip_content"
	PermReadExclusiveOffers  = "read:exclusive_offers"
	PermReadCorporatePricing = "read:corporate_pricing"
	PermReadBulkOrders       = "read:bulk_orders"
	PermReadAllOrders        = "read:all_orders"
	PermReadAnalytics        = "read:analytics"
	PermWriteOrders          = "write:orders"
)

// PermissionService derives capability lists from an identity and filters
// documents by access level. Permissions are computed fresh on every
// request, never stored.
type PermissionService interface {
	Derive(user *models.User) []string
	FilterDocuments(user *models.User, permissions []string, docs []models.AuthorizedDocument) []models.AuthorizedDocument
}

type permissionServiceImpl struct{}

// NewPermissionService creates a PermissionService.
func NewPermissionService() PermissionService {
	return &permissionServiceImpl{}
}

// Derive returns the capability list for the user. Rules are additive and
// evaluated independently; no rule removes a capability granted by another,
// so adding a role never shrinks the result.
func (s *permissionServiceImpl) Derive(user *models.User) []string {
	perms := []string{PermReadProducts, PermReadOrders}

	if user.HasRole("premium-member") {
		perms = append(perms, PermReadVIPContent, PermReadExclusiveOffers)
	}
	if user.HasRole("buyer") {
		perms = append(perms, PermReadCorporatePricing, PermReadBulkOrders)
	}
	if user.HasRole("admin") {
		perms = append(perms, PermReadAllOrders, PermReadAnalytics, PermWriteOrders)
	}

	return perms
}

// FilterDocuments keeps the documents the user may retrieve:
// basic is public, user requires a matching subject id, b2b a matching
// organization id, premium the read:vip_content capability.
func (s *permissionServiceImpl) FilterDocuments(user *models.User, permissions []string, docs []models.AuthorizedDocument) []models.AuthorizedDocument {
	allowed := make([]models.AuthorizedDocument, 0, len(docs))
	for _, doc := range docs {
		switch doc.AccessLevel {
		case models.DocAccessBasic:
			allowed = append(allowed, doc)
		case models.DocAccessUser:
			if doc.UserID == user.ID {
				allowed = append(allowed, doc)
			}
		case models.DocAccessB2B:
			if doc.OrganizationID != "" && doc.OrganizationID == user.OrganizationID {
				allowed = append(allowed, doc)
			}
		case models.DocAccessPremium:
			if containsString(permissions, PermReadVIPContent) {
				allowed = append(allowed, doc)
			}
		}
	}
	return allowed
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
