package models

// ServiceType tags a review with the service the customer used.
type ServiceType string

const (
	ServiceWashing     ServiceType = "Washing"
	ServiceIroning     ServiceType = "Ironing"
	ServiceDryCleaning ServiceType = "Dry Cleaning"
	ServiceMultiple    ServiceType = "Multiple Services"
)

// ValidServiceType reports whether t is a recognized service type.
func ValidServiceType(t ServiceType) bool {
	switch t {
	case ServiceWashing, ServiceIroning, ServiceDryCleaning, ServiceMultiple:
		return true
	}
	return false
}

// MenuCategory classifies a menu item.
type MenuCategory string

const (
	CategoryWashing     MenuCategory = "Washing"
	CategoryIroning     MenuCategory = "Ironing"
	CategoryDryCleaning MenuCategory = "Dry Cleaning"
)

// ValidMenuCategory reports whether c is a recognized menu category.
func ValidMenuCategory(c MenuCategory) bool {
	switch c {
	case CategoryWashing, CategoryIroning, CategoryDryCleaning:
		return true
	}
	return false
}
