package dto

// REST payloads. The listing endpoint reports numeric resource ids, unlike the
// opaque global ids used on the GraphQL surface.

type RestProductsPayload struct {
	Products []RestProduct `json:"products"`
}

type RestProduct struct {
	ID       int64         `json:"id"`
	Title    string        `json:"title,omitempty"`
	Variants []RestVariant `json:"variants,omitempty"`
}

type RestVariant struct {
	ID              int64  `json:"id"`
	ProductID       int64  `json:"product_id"`
	SKU             string `json:"sku,omitempty"`
	InventoryItemID int64  `json:"inventory_item_id,omitempty"`
}

// GraphQL payloads for the product upsert job.

type ProductNode struct {
	ID     string `json:"id,omitempty"`
	Title  string `json:"title,omitempty"`
	Status string `json:"status,omitempty"`
}

type ProductCreateData struct {
	ProductCreate struct {
		Product    *ProductNode       `json:"product,omitempty"`
		UserErrors []ShopifyUserError `json:"userErrors,omitempty"`
	} `json:"productCreate"`
}

type ProductUpdateData struct {
	ProductUpdate struct {
		Product    *ProductNode       `json:"product,omitempty"`
		UserErrors []ShopifyUserError `json:"userErrors,omitempty"`
	} `json:"productUpdate"`
}

type VariantSearchData struct {
	ProductVariants struct {
		Nodes []struct {
			ID      string `json:"id,omitempty"`
			SKU     string `json:"sku,omitempty"`
			Product struct {
				ID string `json:"id,omitempty"`
			} `json:"product,omitempty"`
		} `json:"nodes,omitempty"`
	} `json:"productVariants"`
}

type VariantLookupData struct {
	Product *struct {
		Variants struct {
			Nodes []struct {
				ID string `json:"id"`
			} `json:"nodes,omitempty"`
		} `json:"variants,omitempty"`
	} `json:"product,omitempty"`
}

type VariantsBulkUpdateData struct {
	ProductVariantsBulkUpdate struct {
		ProductVariants []struct {
			ID string `json:"id,omitempty"`
		} `json:"productVariants,omitempty"`
		UserErrors []ShopifyUserError `json:"userErrors,omitempty"`
	} `json:"productVariantsBulkUpdate"`
}

type ProductMediaData struct {
	Product *struct {
		Media struct {
			Nodes []struct {
				ID string `json:"id,omitempty"`
			} `json:"nodes,omitempty"`
		} `json:"media,omitempty"`
	} `json:"product,omitempty"`
}

type ProductCreateMediaData struct {
	ProductCreateMedia struct {
		Media []struct {
			ID string `json:"id,omitempty"`
		} `json:"media,omitempty"`
		MediaUserErrors []ShopifyUserError `json:"mediaUserErrors,omitempty"`
	} `json:"productCreateMedia"`
}
