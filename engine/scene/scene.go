package scene

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/terra-go/common"
	"github.com/Carmen-Shannon/terra-go/engine/camera"
	"github.com/Carmen-Shannon/terra-go/engine/light"
	"github.com/Carmen-Shannon/terra-go/engine/planet"
	"github.com/Carmen-Shannon/terra-go/engine/renderer"
	"github.com/Carmen-Shannon/terra-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/terra-go/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/terra-go/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// InputState is the held-key snapshot the window layer delivers to the scene
// through HandleKeyDown/HandleKeyUp. The scene applies it at the start of each
// Update: the toggle key is edge-detected into a mode switch, and the held
// arrow keys spin the globe while manual orbit is active. Pointer and scroll
// input act on the flight controller directly through window callbacks and do
// not travel through the snapshot.
type InputState struct {
	// ToggleHeld reports the mode-toggle key (SPACE in the demo).
	ToggleHeld bool

	// Arrow key held states. In manual orbit these rotate the globe at a
	// fixed angular rate per second. In auto-flight the same keys step speed
	// and altitude, but those are applied once per key event in
	// HandleKeyDown rather than per frame, so the adjustment rate follows
	// the key-repeat rate instead of the frame rate.
	UpHeld    bool
	DownHeld  bool
	LeftHeld  bool
	RightHeld bool
}

// Scene wires one camera, one planet, and a set of lights to the Renderer.
// Each frame the engine calls Update (input application, controller state
// advance, uniform uploads) followed by DrawCalls inside the renderer's
// BeginFrame/EndFrame block. The frame loop is the only per-frame writer;
// the scene's mutex exists because construction-time mutation (AddPlanet,
// AddLight) may happen from another goroutine before the loop starts.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// SetRenderer replaces the scene's renderer.
	//
	// Parameters:
	//   - r: the new renderer
	SetRenderer(r renderer.Renderer)

	// Planet returns the scene's planet, or nil if none has been added.
	//
	// Returns:
	//   - planet.Planet: the attached planet or nil
	Planet() planet.Planet

	// AddPlanet attaches a planet to the scene and stages its GPU resources:
	// the sphere vertex and index buffers, the PlanetData uniform bind group
	// discovered from the vertex shader's declarations, and a render pipeline
	// registered under the planet's name. A previously attached planet is
	// replaced; its GPU resources are not released.
	//
	// Panics if the scene has no Renderer or any GPU initialization fails.
	//
	// Parameters:
	//   - p: the planet to attach
	//   - vertexShader: the vertex shader for the planet's render pipeline
	//   - fragmentShader: the fragment shader for the planet's render pipeline
	//   - pipelineOpts: optional pipeline builder options (e.g. cull mode)
	AddPlanet(p planet.Planet, vertexShader, fragmentShader shader.Shader, pipelineOpts ...pipeline.PipelineBuilderOption)

	// AddLight adds a light source to the scene. Lights are marshaled into a
	// GPU storage buffer each frame and passed to lit fragment shaders.
	//
	// Parameters:
	//   - l: the Light to add
	AddLight(l light.Light)

	// RemoveLight removes a light source from the scene by reference.
	//
	// Parameters:
	//   - l: the Light to remove
	RemoveLight(l light.Light)

	// Lights returns all lights currently registered in the scene.
	//
	// Returns:
	//   - []light.Light: the scene's light list
	Lights() []light.Light

	// AmbientColor returns the scene's ambient light color.
	//
	// Returns:
	//   - [3]float32: the ambient RGB color
	AmbientColor() [3]float32

	// SetAmbientColor sets the scene's ambient light color.
	//
	// Parameters:
	//   - color: the ambient RGB color
	SetAmbientColor(color [3]float32)

	// LightBindGroupProvider returns the bind group provider holding the GPU
	// light buffer resources, or nil if no light shader has been configured.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the light BGP or nil
	LightBindGroupProvider() bind_group_provider.BindGroupProvider

	// InitLightBindGroup initializes the GPU resources for the light storage
	// buffer using the layout descriptor from the given fragment shader's light
	// group. The fragment shader is scanned for variable names containing
	// "light" to locate the appropriate bind group index.
	//
	// Parameters:
	//   - fragmentShader: the lit fragment shader providing the light bind group layout
	InitLightBindGroup(fragmentShader shader.Shader)

	// HandleKeyDown records a key press or repeat event into the input
	// snapshot. Speed and altitude adjustments fire here, once per event,
	// while auto-flight is active. Wire this to the window's key-down callback.
	//
	// Parameters:
	//   - keyCode: the virtual key code (see common key code constants)
	HandleKeyDown(keyCode uint32)

	// HandleKeyUp clears a key's held state in the input snapshot.
	// Wire this to the window's key-up callback.
	//
	// Parameters:
	//   - keyCode: the virtual key code (see common key code constants)
	HandleKeyUp(keyCode uint32)

	// Input returns a copy of the current input snapshot.
	//
	// Returns:
	//   - InputState: the held-key snapshot
	Input() InputState

	// Update applies the input snapshot to the flight controller, advances
	// the controller by deltaTime, syncs the globe orientation, recomputes
	// camera matrices, and uploads the camera, planet, and light uniforms
	// to the GPU as one coalesced write batch. Call once per frame before
	// BeginFrame.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	Update(deltaTime float32)

	// CullingDisabled returns whether frustum culling is explicitly disabled
	// for this scene. When true, DrawCalls always issues the draw even if the
	// globe's bounding sphere is outside the view volume.
	//
	// Returns:
	//   - bool: true if culling is disabled
	CullingDisabled() bool

	// SetCullingDisabled enables or disables frustum culling for this scene.
	//
	// Parameters:
	//   - disabled: true to disable culling, false to enable it
	SetCullingDisabled(disabled bool)

	// DrawCalls issues the indexed draw for the planet, resolving each bind
	// group index to its provider from the shader declarations. The draw is
	// skipped when the globe's bounding sphere falls outside the camera
	// frustum, unless culling is disabled. Must be called within a
	// BeginFrame/EndFrame block on the renderer.
	//
	// Returns:
	//   - error: error if a provider is missing or the draw call fails
	DrawCalls() error
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	cam camera.Camera
	r   renderer.Renderer

	p           planet.Planet
	pipelineKey string
	dataBinding int // PlanetData binding within the planet's data group

	lights       []light.Light
	ambientColor [3]float32
	lightsBGP    bind_group_provider.BindGroupProvider

	input      InputState
	prevToggle bool // previous frame's ToggleHeld, for edge detection

	cullingDisabled bool // when true, DrawCalls skips the frustum visibility test

	// Pre-allocated slices reused each frame to avoid per-frame allocations.
	writePool          []bind_group_provider.BufferWrite       // reusable coalesced buffer write slice
	drawBindGroupsPool []bind_group_provider.BindGroupProvider // reusable bind group slice for DrawCalls
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera, renderer, and a vertex shader
// used to discover the camera's bind group layout. All three are required and NewScene
// panics if any of them is nil. The vertex shader's BindGroupVarNames are scanned for
// a group containing "camera" and its layout descriptor is used to initialize the
// camera's BindGroupProvider on the GPU. The ambient color defaults to the deep-space
// background so the night side of the globe fades into the clear color.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - r: the renderer to attach (must not be nil)
//   - vertexShader: a vertex shader whose bind groups include the camera uniform layout (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, r renderer.Renderer, vertexShader shader.Shader, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}
	if vertexShader == nil {
		panic("scene: NewScene requires a non-nil vertex shader for camera BGP init")
	}

	s := &scene{
		mu:     &sync.RWMutex{},
		name:   name,
		active: false,
		cam:    cam,
		r:      r,
		ambientColor: [3]float32{
			float32(common.SpaceBlack.R),
			float32(common.SpaceBlack.G),
			float32(common.SpaceBlack.B),
		},
		drawBindGroupsPool: make([]bind_group_provider.BindGroupProvider, 0, 3),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the camera's bind group on the GPU using the layout from the vertex shader.
	cameraGroup := 0
	for i, names := range vertexShader.BindGroupVarNames() {
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), "camera") {
				cameraGroup = i
				break
			}
		}
	}
	if bgp := cam.BindGroupProvider(); bgp != nil {
		if err := r.InitBindGroup(bgp, vertexShader.BindGroupLayoutDescriptor(cameraGroup), nil, nil); err != nil {
			panic(fmt.Sprintf("scene: failed to init camera bind group: %v", err))
		}
	}

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) CullingDisabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cullingDisabled
}

func (s *scene) SetCullingDisabled(disabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cullingDisabled = disabled
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) SetRenderer(r renderer.Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r = r
}

func (s *scene) Planet() planet.Planet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p
}

func (s *scene) AddPlanet(p planet.Planet, vertexShader, fragmentShader shader.Shader, pipelineOpts ...pipeline.PipelineBuilderOption) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.r == nil {
		panic("scene: AddPlanet requires a Renderer on the scene")
	}
	if p == nil {
		panic("scene: AddPlanet requires a non-nil Planet")
	}
	if vertexShader == nil || fragmentShader == nil {
		panic("scene: AddPlanet requires vertex and fragment shaders")
	}

	// Upload the sphere geometry unless buffers were already staged.
	if meshBGP := p.MeshProvider(); meshBGP != nil && meshBGP.VertexBuffer() == nil {
		mesh := p.Mesh()
		if err := s.r.InitMeshBuffers(meshBGP, mesh.VertexBytes(), mesh.IndexBytes(), len(mesh.Indices)); err != nil {
			panic(fmt.Sprintf("scene: failed to init mesh buffers for planet %q: %v", p.Name(), err))
		}
	}

	// Locate the PlanetData group in the vertex shader's declarations and
	// stage its uniform buffer.
	dataGroup := -1
	dataBinding := 0
	for _, decl := range vertexShader.Declarations() {
		if decl.Type != shader.AnnotationTypeBindingGroup || decl.Group == nil {
			continue
		}
		typeArg := string(decl.Args[2])
		if stripped, ok := strings.CutPrefix(typeArg, "array<"); ok {
			typeArg = strings.TrimSuffix(stripped, ">")
		}
		if shader.AnnotationArg(typeArg) == shader.AnnotationArgPlanetData {
			dataGroup = *decl.Group
			if decl.Binding != nil {
				dataBinding = *decl.Binding
			}
			break
		}
	}
	if dataGroup < 0 {
		panic(fmt.Sprintf("scene: vertex shader %q declares no planet_data group", vertexShader.Key()))
	}
	if err := s.r.InitBindGroup(p.DataProvider(), vertexShader.BindGroupLayoutDescriptor(dataGroup), nil, nil); err != nil {
		panic(fmt.Sprintf("scene: failed to init planet data bind group for %q: %v", p.Name(), err))
	}

	// Register the render pipeline with the planet's name as key.
	renderOpts := append([]pipeline.PipelineBuilderOption{
		pipeline.WithVertexShader(vertexShader),
		pipeline.WithFragmentShader(fragmentShader),
	}, pipelineOpts...)
	rp := pipeline.NewPipeline(p.Name(), renderOpts...)
	if err := s.r.RegisterPipelines(rp); err != nil {
		panic(fmt.Sprintf("scene: failed to register render pipeline for planet %q: %v", p.Name(), err))
	}

	s.p = p
	s.pipelineKey = rp.PipelineKey()
	s.dataBinding = dataBinding
}

func (s *scene) AddLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights = append(s.lights, l)
}

func (s *scene) RemoveLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.lights {
		if existing == l {
			s.lights = append(s.lights[:i], s.lights[i+1:]...)
			return
		}
	}
}

func (s *scene) Lights() []light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]light.Light, len(s.lights))
	copy(out, s.lights)
	return out
}

func (s *scene) AmbientColor() [3]float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ambientColor
}

func (s *scene) SetAmbientColor(color [3]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ambientColor = color
}

func (s *scene) LightBindGroupProvider() bind_group_provider.BindGroupProvider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lightsBGP
}

func (s *scene) InitLightBindGroup(fragmentShader shader.Shader) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.r == nil || fragmentShader == nil {
		return
	}

	// Find the bind group index that contains light-related variables.
	lightGroup := -1
	for groupIdx, bindings := range fragmentShader.BindGroupVarNames() {
		for _, name := range bindings {
			if strings.Contains(strings.ToLower(name), "light") {
				lightGroup = groupIdx
				break
			}
		}
		if lightGroup >= 0 {
			break
		}
	}
	if lightGroup < 0 {
		return
	}

	bgp := bind_group_provider.NewBindGroupProvider(s.name + "_lights")

	// Build buffer size overrides: the light storage buffer must hold
	// MaxGPULights entries so it can accommodate dynamic light counts each
	// frame. The header travels in a separate uniform binding with a fixed size.
	descriptor := fragmentShader.BindGroupLayoutDescriptor(lightGroup)
	sizeOverrides := make(map[int]uint64)
	for _, entry := range descriptor.Entries {
		binding := int(entry.Binding)
		if entry.Buffer.Type == wgpu.BufferBindingTypeReadOnlyStorage || entry.Buffer.Type == wgpu.BufferBindingTypeStorage {
			sizeOverrides[binding] = uint64(light.MaxGPULights) * 32 // 32 bytes per GPULight
		}
	}

	if err := s.r.InitBindGroup(bgp, descriptor, nil, sizeOverrides); err != nil {
		panic(fmt.Sprintf("scene: failed to init light bind group: %v", err))
	}
	s.lightsBGP = bgp
}

func (s *scene) HandleKeyDown(keyCode uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ctrl camera.FlightController
	if s.cam != nil {
		ctrl = s.cam.Controller()
	}
	autoFlight := ctrl != nil && ctrl.Mode() == camera.ModeAutoFlight

	// Speed and altitude step once per key event (press or OS repeat), so the
	// adjustment rate tracks the key-repeat rate rather than the frame rate.
	switch keyCode {
	case common.KeySpace:
		s.input.ToggleHeld = true
	case common.KeyUp:
		s.input.UpHeld = true
		if autoFlight {
			ctrl.AdjustSpeed(1)
		}
	case common.KeyDown:
		s.input.DownHeld = true
		if autoFlight {
			ctrl.AdjustSpeed(-1)
		}
	case common.KeyLeft:
		s.input.LeftHeld = true
		if autoFlight {
			ctrl.AdjustAltitude(-1)
		}
	case common.KeyRight:
		s.input.RightHeld = true
		if autoFlight {
			ctrl.AdjustAltitude(1)
		}
	}
}

func (s *scene) HandleKeyUp(keyCode uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch keyCode {
	case common.KeySpace:
		s.input.ToggleHeld = false
	case common.KeyUp:
		s.input.UpHeld = false
	case common.KeyDown:
		s.input.DownHeld = false
	case common.KeyLeft:
		s.input.LeftHeld = false
	case common.KeyRight:
		s.input.RightHeld = false
	}
}

func (s *scene) Input() InputState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.input
}

func (s *scene) Update(deltaTime float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.r == nil {
		return
	}

	var ctrl camera.FlightController
	if s.cam != nil {
		ctrl = s.cam.Controller()
	}

	if ctrl != nil {
		// Edge-detect the mode toggle so a held key flips the mode exactly
		// once per press.
		if s.input.ToggleHeld && !s.prevToggle {
			ctrl.ToggleMode()
		}
		s.prevToggle = s.input.ToggleHeld

		// Held arrows spin the globe while manual orbit is active. The yaw
		// and pitch directions match the drag convention: left turns the
		// globe west, up tips the north pole away.
		if ctrl.Mode() == camera.ModeManualOrbit {
			var dYaw, dPitch float32
			if s.input.LeftHeld {
				dYaw -= 1
			}
			if s.input.RightHeld {
				dYaw += 1
			}
			if s.input.UpHeld {
				dPitch -= 1
			}
			if s.input.DownHeld {
				dPitch += 1
			}
			if dYaw != 0 || dPitch != 0 {
				ctrl.RotatePlanet(dYaw, dPitch, deltaTime)
			}
		}

		ctrl.Update(deltaTime)
	}

	// The globe only wears its accumulated orientation in manual orbit;
	// auto-flight circles the unrotated globe. The controller keeps the
	// angles across mode switches so manual orbit resumes where it left off.
	if s.p != nil && ctrl != nil {
		if ctrl.Mode() == camera.ModeManualOrbit {
			s.p.SetOrientation(ctrl.PlanetOrientation())
		} else {
			s.p.SetOrientation(0, 0)
		}
	}

	// Stage this frame's uniform uploads, then submit them as one batch.
	writes := s.writePool[:0]

	if s.cam != nil {
		s.cam.Update()
		if camBGP := s.cam.BindGroupProvider(); camBGP != nil {
			camUniform := camera.GPUCameraUniform{ViewProj: s.cam.ViewProjectionMatrix()}
			if ctrl != nil {
				camUniform.CameraPosition[0], camUniform.CameraPosition[1], camUniform.CameraPosition[2] = ctrl.Position()
			}
			writes = append(writes, bind_group_provider.BufferWrite{
				Provider: camBGP,
				Binding:  0,
				Offset:   0,
				Data:     camUniform.Marshal(),
			})
		}
	}

	if s.p != nil && s.p.Enabled() {
		data := s.p.GPUData()
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: s.p.DataProvider(),
			Binding:  s.dataBinding,
			Offset:   0,
			Data:     data.Marshal(),
		})
	}

	if s.lightsBGP != nil {
		lightData := light.MarshalLightBuffer(s.lights, s.ambientColor)
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: s.lightsBGP,
			Binding:  0, // light_header uniform
			Offset:   0,
			Data:     lightData[:16], // GPULightHeader is 16 bytes
		})
		if len(lightData) > 16 {
			writes = append(writes, bind_group_provider.BufferWrite{
				Provider: s.lightsBGP,
				Binding:  1, // lights storage array
				Offset:   0,
				Data:     lightData[16:],
			})
		}
	}

	s.writePool = writes

	if len(writes) > 0 {
		s.r.WriteBuffers(writes)
	}
}

func (s *scene) DrawCalls() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.r == nil {
		return fmt.Errorf("scene %q has no renderer attached", s.name)
	}
	if s.p == nil || !s.p.Enabled() {
		return nil
	}

	// Skip the draw when the globe's bounding sphere sits outside the view
	// volume. The globe is centered at the origin; orientation changes never
	// move its bounds.
	if s.cam != nil && !s.cullingDisabled {
		vp := s.cam.ViewProjectionMatrix()
		frustum := common.ExtractFrustumFromMatrix(vp[:])
		if !frustum.IntersectsSphere([3]float32{0, 0, 0}, s.p.Radius()) {
			return nil
		}
	}

	// Look up the render pipeline to discover bind group layouts from both shaders.
	rp := s.r.Pipeline(s.pipelineKey)
	if rp == nil {
		return fmt.Errorf("render pipeline %q not registered for scene %q", s.pipelineKey, s.name)
	}
	vertShader := rp.Shader(shader.ShaderTypeVertex)
	if vertShader == nil {
		return fmt.Errorf("render pipeline %q has no vertex shader", s.pipelineKey)
	}

	// Collect declarations from vertex and fragment shaders.
	var allDecls []shader.Annotation
	allDecls = append(allDecls, vertShader.Declarations()...)
	if fragShader := rp.Shader(shader.ShaderTypeFragment); fragShader != nil {
		allDecls = append(allDecls, fragShader.Declarations()...)
	}

	// Build bind groups dynamically by matching each group's declaration to a provider.
	// Groups are iterated in index order so bindGroups[i] maps to @group(i).
	maxGroup := -1
	groupProviders := make(map[int]bind_group_provider.BindGroupProvider)
	for _, decl := range allDecls {
		if decl.Group == nil {
			continue
		}
		g := *decl.Group
		if g > maxGroup {
			maxGroup = g
		}
		if _, exists := groupProviders[g]; exists {
			continue
		}

		var provider bind_group_provider.BindGroupProvider
		switch decl.Type {
		case shader.AnnotationTypeProvider:
			switch decl.Args[0] {
			case shader.AnnotationArgCamera:
				if s.cam != nil {
					provider = s.cam.BindGroupProvider()
				}
			case shader.AnnotationArgPlanet:
				provider = s.p.DataProvider()
			case shader.AnnotationArgLights:
				if s.lightsBGP != nil {
					provider = s.lightsBGP
				}
			}
		case shader.AnnotationTypeBindingGroup:
			typeArg := string(decl.Args[2])
			if stripped, ok := strings.CutPrefix(typeArg, "array<"); ok {
				typeArg = strings.TrimSuffix(stripped, ">")
			}
			switch shader.AnnotationArg(typeArg) {
			case shader.AnnotationArgCamera:
				if s.cam != nil {
					provider = s.cam.BindGroupProvider()
				}
			case shader.AnnotationArgPlanetData:
				provider = s.p.DataProvider()
			case shader.AnnotationArgLight, shader.AnnotationArgLightHeader:
				if s.lightsBGP != nil {
					provider = s.lightsBGP
				}
			}
		}

		if provider != nil {
			groupProviders[g] = provider
		}
	}

	bindGroups := s.drawBindGroupsPool[:0]
	for g := 0; g <= maxGroup; g++ {
		provider, ok := groupProviders[g]
		if !ok || provider == nil {
			return fmt.Errorf("no bind group provider resolved for @group(%d) in scene %q", g, s.name)
		}
		bindGroups = append(bindGroups, provider)
	}

	if err := s.r.DrawCall(s.pipelineKey, s.p.MeshProvider(), 1, bindGroups); err != nil {
		return fmt.Errorf("draw call failed for planet %q in scene %q: %w", s.p.Name(), s.name, err)
	}

	return nil
}
