package bom

import "github.com/autoflexhq/inventory-console/pkg/inventory"

// AvailableRawMaterials returns the catalog entries not yet linked to the
// product, preserving catalog order. It is a pure function over the
// editor's in-memory snapshot and is recomputed on every read.
func AvailableRawMaterials(items []inventory.ProductMaterial, catalog []inventory.RawMaterial) []inventory.RawMaterial {
	used := make(map[int64]struct{}, len(items))
	for _, pm := range items {
		used[pm.RawMaterialID] = struct{}{}
	}

	options := make([]inventory.RawMaterial, 0, len(catalog))
	for _, rm := range catalog {
		if _, linked := used[rm.ID]; linked {
			continue
		}
		options = append(options, rm)
	}
	return options
}
