package uhash

// exampleEntries are inserted, in order, by NewExample.
var exampleEntries = []struct {
	key   string
	value int
}{
	{"apple", 10},
	{"banana", 20},
	{"cherry", 30},
	{"date", 40},
	{"elderberry", 50},
	{"fig", 60},
	{"grape", 70},
}

// NewExample returns a new table holding seven fruit names mapped to multiples
// of ten. Each call builds a separate table.
func NewExample(opts ...Option) (*Table[string, int], error) {
	t, err := NewStringTable[int](opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range exampleEntries {
		t.Insert(e.key, e.value)
	}
	return t, nil
}
