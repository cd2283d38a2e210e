package domain

// Block is a parsed metadata header: an insertion-ordered mapping from
// field names to values. A nil *Block means no header was found.
type Block struct {
	keys   []string
	fields map[string]Value
}

// NewBlock returns an empty Block.
func NewBlock() *Block {
	return &Block{fields: map[string]Value{}}
}

// Set stores v under key. A repeated key keeps its first position and
// takes the latest value.
func (b *Block) Set(key string, v Value) {
	if _, ok := b.fields[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.fields[key] = v
}

// Get returns the value stored under key.
func (b *Block) Get(key string) (Value, bool) {
	if b == nil {
		return Value{}, false
	}
	v, ok := b.fields[key]
	return v, ok
}

// Keys returns field names in document order.
func (b *Block) Keys() []string {
	if b == nil {
		return nil
	}
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// Len returns the number of fields.
func (b *Block) Len() int {
	if b == nil {
		return 0
	}
	return len(b.keys)
}
