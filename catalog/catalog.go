package catalog

// Catalog is the read-only property set served for the lifetime of a process.
type Catalog struct {
	props []Property
	byID  map[string]int
}

// New copies props so later changes to the caller's slice are not observed.
func New(props []Property) *Catalog {
	c := &Catalog{
		props: append([]Property(nil), props...),
		byID:  make(map[string]int, len(props)),
	}
	for i, p := range c.props {
		if _, dup := c.byID[p.ID]; !dup {
			c.byID[p.ID] = i
		}
	}
	return c
}

// All returns a copy of every property in catalog order.
func (c *Catalog) All() []Property {
	return append([]Property(nil), c.props...)
}

func (c *Catalog) Len() int { return len(c.props) }

func (c *Catalog) Get(id string) (Property, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Property{}, false
	}
	return c.props[i], true
}
