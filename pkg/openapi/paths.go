package openapi

// PathOperations holds the documented operations for one route group.
type PathOperations struct {
	Paths   map[string]*PathItem
	Schemas map[string]*Schema
}

// AddPaths merges the paths and schemas of ops into the spec.
// Paths are prefixed with basePath; operations on an existing path are merged.
func (s *Spec) AddPaths(basePath string, ops PathOperations) {
	for path, item := range ops.Paths {
		full := basePath + path
		existing, ok := s.Paths[full]
		if !ok {
			s.Paths[full] = item
			continue
		}
		if item.Get != nil {
			existing.Get = item.Get
		}
		if item.Post != nil {
			existing.Post = item.Post
		}
		if item.Put != nil {
			existing.Put = item.Put
		}
		if item.Patch != nil {
			existing.Patch = item.Patch
		}
		if item.Delete != nil {
			existing.Delete = item.Delete
		}
	}
	s.Components.AddSchemas(ops.Schemas)
}
