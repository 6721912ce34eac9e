package models

// All returns every model in dependency order, ready for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Customer{},
		&CatalogItem{},
		&Order{},
		&OrderItem{},
	}
}
