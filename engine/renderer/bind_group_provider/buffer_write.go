package bind_group_provider

// BufferWrite is one pending GPU buffer upload: Data lands at Offset in the
// buffer behind Binding on the Provider. The scene batches its camera,
// planet, and light uploads into a single slice of these per frame so the
// renderer can submit them together.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}
