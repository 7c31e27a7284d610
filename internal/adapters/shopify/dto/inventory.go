package dto

type LocationNode struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	IsActive bool   `json:"isActive,omitempty"`
}

type LocationsQueryData struct {
	Locations struct {
		Nodes    []LocationNode  `json:"nodes,omitempty"`
		PageInfo ShopifyPageInfo `json:"pageInfo,omitempty"`
	} `json:"locations"`
}

type QuantityNode struct {
	Name     string `json:"name,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

type InventoryLevelNode struct {
	ID         string         `json:"id,omitempty"`
	Quantities []QuantityNode `json:"quantities,omitempty"`
}

type InventoryLevelQueryData struct {
	InventoryItem *struct {
		InventoryLevel *InventoryLevelNode `json:"inventoryLevel,omitempty"`
	} `json:"inventoryItem,omitempty"`
}

type InventoryActivateData struct {
	InventoryActivate struct {
		InventoryLevel *InventoryLevelNode `json:"inventoryLevel,omitempty"`
		UserErrors     []ShopifyUserError  `json:"userErrors,omitempty"`
	} `json:"inventoryActivate"`
}

type InventorySetOnHandQuantitiesData struct {
	InventorySetOnHandQuantities struct {
		UserErrors []ShopifyUserError `json:"userErrors,omitempty"`
	} `json:"inventorySetOnHandQuantities"`
}
