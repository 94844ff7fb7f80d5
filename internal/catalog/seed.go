package catalog

// DefaultSeed is the reference catalog the service starts with.
func DefaultSeed() Seed {
	return Seed{
		SourceTables: []Table{
			{ID: 1, Name: "customer", Description: "Customer information table"},
			{ID: 2, Name: "product", Description: "Product catalog table"},
			{ID: 3, Name: "order", Description: "Order information table"},
		},
		SourceColumns: []Column{
			{ID: 1, TableID: 1, Name: "customer_id", DataType: "INTEGER", Description: "Unique customer identifier"},
			{ID: 2, TableID: 1, Name: "customer_name", DataType: "VARCHAR", Description: "Customer full name"},
			{ID: 3, TableID: 1, Name: "email", DataType: "VARCHAR", Description: "Customer email address"},
			{ID: 4, TableID: 2, Name: "product_id", DataType: "INTEGER", Description: "Unique product identifier"},
			{ID: 5, TableID: 2, Name: "product_name", DataType: "VARCHAR", Description: "Product name"},
			{ID: 6, TableID: 2, Name: "price", DataType: "DECIMAL", Description: "Product price"},
			{ID: 7, TableID: 3, Name: "order_id", DataType: "INTEGER", Description: "Unique order identifier"},
			{ID: 8, TableID: 3, Name: "customer_id", DataType: "INTEGER", Description: "Customer who placed the order"},
			{ID: 9, TableID: 3, Name: "order_date", DataType: "DATE", Description: "Date when order was placed"},
		},
		TargetTables: []Table{
			{ID: 1, Name: "dim_customer", Description: "Customer dimension table"},
			{ID: 2, Name: "dim_product", Description: "Product dimension table"},
			{ID: 3, Name: "fact_order", Description: "Order fact table"},
		},
		TargetColumns: []Column{
			{ID: 1, TableID: 1, Name: "customer_key", DataType: "INTEGER", Description: "Customer surrogate key"},
			{ID: 2, TableID: 1, Name: "customer_name", DataType: "VARCHAR", Description: "Customer full name"},
			{ID: 3, TableID: 1, Name: "email", DataType: "VARCHAR", Description: "Customer email address"},
			{ID: 4, TableID: 2, Name: "product_key", DataType: "INTEGER", Description: "Product surrogate key"},
			{ID: 5, TableID: 2, Name: "product_name", DataType: "VARCHAR", Description: "Product name"},
			{ID: 6, TableID: 2, Name: "price", DataType: "DECIMAL", Description: "Product price"},
			{ID: 7, TableID: 3, Name: "order_key", DataType: "INTEGER", Description: "Order surrogate key"},
			{ID: 8, TableID: 3, Name: "customer_key", DataType: "INTEGER", Description: "Reference to customer dimension"},
			{ID: 9, TableID: 3, Name: "order_date", DataType: "DATE", Description: "Date when order was placed"},
		},
		Releases: []Release{
			{ID: 1, Name: "R1.0", Description: "Initial release", Status: "Released"},
			{ID: 2, Name: "R1.1", Description: "Bug fixes", Status: "Released"},
			{ID: 3, Name: "R2.0", Description: "New features", Status: "In Progress"},
		},
	}
}
