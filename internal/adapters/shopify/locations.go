package shopify

import (
	"context"
	"errors"
	"strings"

	"shopify-reconciler/internal/adapters/shopify/dto"
	"shopify-reconciler/internal/domain/model"
)

const locationsPageSize = 250

// LocationService resolves display names to locations, inactive ones included.
type LocationService interface {
	FindLocationByName(ctx context.Context, name string) (model.Location, error)
}

var _ LocationService = (*Client)(nil)

// ListLocations returns every location of the shop, inactive ones included.
func (c *Client) ListLocations(ctx context.Context) ([]model.Location, error) {
	if c == nil {
		return nil, errors.New("shopify client is nil")
	}

	query := `
	query locations($first: Int!, $after: String) {
		locations(first: $first, after: $after, includeInactive: true) {
			nodes { id name isActive }
			pageInfo { hasNextPage endCursor }
		}
	}`

	var (
		locations []model.Location
		after     string
	)
	for {
		variables := map[string]any{"first": locationsPageSize}
		if after != "" {
			variables["after"] = after
		}

		var data dto.LocationsQueryData
		if err := c.graphqlRequest(ctx, query, variables, &data); err != nil {
			return nil, err
		}
		for _, node := range data.Locations.Nodes {
			if node.ID == "" {
				continue
			}
			locations = append(locations, model.Location{
				ID:       node.ID,
				Name:     node.Name,
				IsActive: node.IsActive,
			})
		}
		if !data.Locations.PageInfo.HasNextPage || data.Locations.PageInfo.EndCursor == "" {
			break
		}
		after = data.Locations.PageInfo.EndCursor
	}

	return locations, nil
}

// FindLocationByName matches a trimmed, case-insensitive display name against
// the full location list. An inactive location is still a valid result; its
// active flag is the caller's caveat to surface. Duplicate names are not
// disambiguated: first match wins.
func (c *Client) FindLocationByName(ctx context.Context, name string) (model.Location, error) {
	wanted := model.NormalizeName(name)
	if wanted == "" {
		return model.Location{}, errors.New("shopify location name is required")
	}

	locations, err := c.ListLocations(ctx)
	if err != nil {
		return model.Location{}, err
	}
	for _, location := range locations {
		if model.NormalizeName(location.Name) == wanted {
			return location, nil
		}
	}

	return model.Location{}, &NotFoundError{Resource: "location", Key: strings.TrimSpace(name)}
}
