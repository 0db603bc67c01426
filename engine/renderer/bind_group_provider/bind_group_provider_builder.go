package bind_group_provider

import "github.com/cogentcore/webgpu/wgpu"

// BindGroupProviderOption is a functional option for configuring a
// BindGroupProvider during construction. The renderer applies these after it
// has created the GPU-side objects for a provider.
type BindGroupProviderOption func(*bindGroupProvider)

// WithBindGroup sets the wgpu bind group handle for this provider.
//
// Parameters:
//   - bg: the bind group to set
//
// Returns:
//   - BindGroupProviderOption: option function to apply
func WithBindGroup(bg *wgpu.BindGroup) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.bindGroup = bg
	}
}

// WithBindGroupLayout sets the bind group layout the provider's bind group
// was created against.
//
// Parameters:
//   - bgl: the bind group layout to use
//
// Returns:
//   - BindGroupProviderOption: option function to apply
func WithBindGroupLayout(bgl *wgpu.BindGroupLayout) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.bindGroupLayout = bgl
	}
}

// WithBuffer sets the buffer backing one binding index.
//
// Parameters:
//   - binding: the binding index within the group
//   - buf: the buffer to associate with the binding
//
// Returns:
//   - BindGroupProviderOption: option function to apply
func WithBuffer(binding int, buf *wgpu.Buffer) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.buffers[binding] = buf
	}
}

// WithBuffers replaces the provider's full binding-to-buffer map.
//
// Parameters:
//   - buffers: map of binding indices to buffers
//
// Returns:
//   - BindGroupProviderOption: option function to apply
func WithBuffers(buffers map[int]*wgpu.Buffer) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.buffers = buffers
	}
}
