package notam

// Data is the merged message payload, accumulated item by item. Keys are set
// once: an item can add new keys but never overwrite what an earlier item
// contributed. Items' Merge methods return an updated copy, keeping the
// accumulator an explicit value that is threaded through parsing.
type Data map[string]any

// With returns a copy of the data with the given key set, unless the key is
// already present or the value is nil.
func (d Data) With(key string, value any) Data {
	if value == nil {
		return d
	}
	if _, ok := d[key]; ok {
		return d
	}
	updated := make(Data, len(d)+1)
	for k, v := range d {
		updated[k] = v
	}
	updated[key] = value
	return updated
}
