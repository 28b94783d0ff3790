package scraper

import (
	"sort"
	"strings"
)

var registry = map[string]Scraper{}

// Register adds s under its lower-cased name. Registering the same name
// twice is a programming error.
func Register(s Scraper) {
	key := strings.ToLower(s.Name())
	if _, dup := registry[key]; dup {
		panic("scraper: duplicate registration of " + key)
	}
	registry[key] = s
}

func Get(name string) (Scraper, bool) {
	s, ok := registry[strings.ToLower(name)]
	return s, ok
}

// Names lists registered sites in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
