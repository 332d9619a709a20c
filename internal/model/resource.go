package model

// Resource pairs a logical resource name with its table and the route
// prefix it is exposed under.
type Resource struct {
	Name  string
	Table string
	Route string
}

// Resources is the static resource mapping consumed by the routing layer.
// It is never mutated after init.
var Resources = []Resource{
	{Name: "users", Table: "users", Route: "/users"},
	{Name: "posts", Table: "posts", Route: "/posts"},
}

// ResourceByName returns the resource with the given logical name.
func ResourceByName(name string) (Resource, bool) {
	for _, r := range Resources {
		if r.Name == name {
			return r, true
		}
	}
	return Resource{}, false
}
