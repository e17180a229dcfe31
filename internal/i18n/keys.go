// Package i18n provides internationalization support for the computer shop.
package i18n

// Console message translation keys.
const (
	// KeyCatalogItem prefixes one catalog line; takes the formatted component.
	KeyCatalogItem = "shop.catalog.item"
	// KeyOrderHeaderGaming introduces a gaming PC order.
	KeyOrderHeaderGaming = "shop.order.header.gaming"
	// KeyOrderHeaderOffice introduces an office PC order.
	KeyOrderHeaderOffice = "shop.order.header.office"
	// KeyOrderAssembled prefixes the assembled specification; takes the formatted computer.
	KeyOrderAssembled = "shop.order.assembled"
	// KeyOrderCompleted confirms an order.
	KeyOrderCompleted = "shop.order.completed"
)
