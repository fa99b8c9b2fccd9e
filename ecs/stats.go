package ecs

import "sort"

// StorageStats is a point-in-time summary of a Storage's contents.
type StorageStats struct {
	TableCount       int
	TotalEntityCount int
	SingletonCount   int
	TableBreakdown   []TableStats
	SingletonTypes   []string
}

// TableStats describes one component table.
type TableStats struct {
	ComponentType  string
	ComponentCount int
}

// CollectStats walks the storage and returns a summary. Breakdown entries
// are sorted by type name so output is stable.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		TableCount:       len(s.tables),
		TotalEntityCount: s.entities.Len(),
		SingletonCount:   len(s.singletons),
	}

	for typ, table := range s.tables {
		stats.TableBreakdown = append(stats.TableBreakdown, TableStats{
			ComponentType:  typ.String(),
			ComponentCount: table.Len(),
		})
	}
	sort.Slice(stats.TableBreakdown, func(i, j int) bool {
		return stats.TableBreakdown[i].ComponentType < stats.TableBreakdown[j].ComponentType
	})

	for typ := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, typ.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}
