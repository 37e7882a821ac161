// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package content

import (
	"github.com/JuanCarriles/travel-agency/internal/model"
)

// Collection is the immutable set of modules produced by one successful
// load. It preserves document order and indexes modules by id. A new load
// replaces the whole collection; it is never mutated in place and is safe
// for concurrent readers.
type Collection struct {
	ordered []*model.Module
	byID    map[string]*model.Module
}

// NewCollection builds a collection from an already-validated module list.
func NewCollection(modules []*model.Module) *Collection {
	c := &Collection{
		ordered: modules,
		byID:    make(map[string]*model.Module, len(modules)),
	}
	for _, m := range modules {
		c.byID[m.ID] = m
	}
	return c
}

// Modules returns the modules in document order.
func (c *Collection) Modules() []*model.Module {
	return c.ordered
}

// Len returns the number of modules.
func (c *Collection) Len() int {
	return len(c.ordered)
}

// ByID resolves a module by its identifier. The match is exact and
// case-sensitive; the second return value is false if no module matches.
func (c *Collection) ByID(id string) (*model.Module, bool) {
	m, ok := c.byID[id]
	return m, ok
}
