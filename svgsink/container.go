package svgsink

// Container mirrors the grouping structure of a converted document:
// each group element becomes a child container, each shape a record.
type Container struct {
	// Name identifies the container, from its id attribute when present.
	Name string
	// Tag is the source element name, "svg" or "g".
	Tag string

	Records  []*ShapeRecord
	Children []*Container
}

// AllRecords returns the records of the container and all its
// descendants in document order.
func (c *Container) AllRecords() []*ShapeRecord {
	out := append([]*ShapeRecord(nil), c.Records...)
	for _, child := range c.Children {
		out = append(out, child.AllRecords()...)
	}
	return out
}

// Find returns the first container or record owner named name, using
// depth first document order, or nil when absent.
func (c *Container) Find(name string) *Container {
	if c.Name == name {
		return c
	}
	for _, child := range c.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// ReplayTo issues every record of the tree onto s in document order.
func (c *Container) ReplayTo(s ShapeSink) {
	for _, r := range c.Records {
		r.ReplayTo(s)
	}
	for _, child := range c.Children {
		child.ReplayTo(s)
	}
}
