package headless

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpures"
)

type material struct{}

func TestHandlesUniqueUnderConcurrency(t *testing.T) {
	ctx := New()
	const workers, perWorker = 16, 250

	results := make(chan gpures.ResourceHandle, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				// Mix every allocating operation.
				switch (w + i) % 4 {
				case 0:
					results <- ctx.CreateSampler(nil)
				case 1:
					results <- ctx.CreateTexture(nil)
				case 2:
					results <- ctx.CreateBuffer(gputypes.BufferDescriptor{Size: 4})
				default:
					results <- ctx.NextSwapChainTexture(gpures.NewWindowID())
				}
			}
		}(w)
	}
	wg.Wait()
	close(results)

	seen := make(map[gpures.ResourceHandle]bool, workers*perWorker)
	for h := range results {
		if !h.IsValid() {
			t.Fatalf("allocated invalid handle %v", h)
		}
		if seen[h] {
			t.Fatalf("handle %v issued twice", h)
		}
		seen[h] = true
	}
	if len(seen) != workers*perWorker {
		t.Errorf("got %d handles, want %d", len(seen), workers*perWorker)
	}
}

func TestHandlesUniqueAcrossContexts(t *testing.T) {
	a, b := New(), New()
	if a.CreateTexture(nil) == b.CreateTexture(nil) {
		t.Error("two contexts issued the same handle")
	}
}

func TestCreateQueryRoundTrip(t *testing.T) {
	ctx := New()
	sampler := gputypes.LinearSamplerDescriptor()
	texture := &gputypes.TextureDescriptor{
		Size:          gputypes.NewExtent2D(256, 256),
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
	bufDesc := gputypes.BufferDescriptor{
		Label: "uniforms",
		Size:  128,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	}

	tests := []struct {
		name   string
		create func() gpures.ResourceHandle
		check  func(gpures.ResourceInfo) bool
	}{
		{"sampler", func() gpures.ResourceHandle { return ctx.CreateSampler(&sampler) }, gpures.ResourceInfo.IsSampler},
		{"texture", func() gpures.ResourceHandle { return ctx.CreateTexture(texture) }, gpures.ResourceInfo.IsTexture},
		{"buffer", func() gpures.ResourceHandle { return ctx.CreateBuffer(bufDesc) }, func(i gpures.ResourceInfo) bool {
			d, ok := i.AsBuffer()
			return ok && d == bufDesc
		}},
		{"buffer with data", func() gpures.ResourceHandle {
			return ctx.CreateBufferWithData(bufDesc, make([]byte, 128))
		}, func(i gpures.ResourceInfo) bool {
			d, ok := i.AsBuffer()
			return ok && d == bufDesc
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.create()
			info, ok := gpures.LookupResourceInfo(ctx, h)
			if !ok {
				t.Fatalf("GetResourceInfo(%v) = absent, want present", h)
			}
			if !tt.check(info) {
				t.Errorf("GetResourceInfo(%v) = %+v, unexpected variant or descriptor", h, info)
			}
		})
	}
}

func TestRemoveThenQuery(t *testing.T) {
	ctx := New()
	buf := ctx.CreateBuffer(gputypes.BufferDescriptor{Size: 16})
	tex := ctx.CreateTexture(nil)
	smp := ctx.CreateSampler(nil)

	ctx.RemoveBuffer(buf)
	ctx.RemoveTexture(tex)
	ctx.RemoveSampler(smp)

	for _, h := range []gpures.ResourceHandle{buf, tex, smp} {
		called := false
		ctx.GetResourceInfo(h, func(info *gpures.ResourceInfo) {
			called = true
			if info != nil {
				t.Errorf("GetResourceInfo(%v) = %v after removal, want nil", h, info)
			}
		})
		if !called {
			t.Errorf("GetResourceInfo(%v) did not call visit", h)
		}
	}

	// Double removal and never-created handles are no-ops.
	ctx.RemoveBuffer(buf)
	ctx.RemoveTexture(gpures.NewResourceHandle())
	ctx.RemoveSampler(gpures.InvalidResourceHandle)
	if n := ctx.ResourceCount(); n != 0 {
		t.Errorf("ResourceCount() = %d, want 0", n)
	}
}

func TestCreateBufferMapped(t *testing.T) {
	ctx := New()
	desc := gputypes.BufferDescriptor{
		Size:             64,
		Usage:            gputypes.BufferUsageVertex | gputypes.BufferUsageMapWrite,
		MappedAtCreation: true,
	}

	calls := 0
	h := ctx.CreateBufferMapped(desc, func(data []byte, rc gpures.ResourceContext) {
		calls++
		if len(data) != int(desc.Size) {
			t.Errorf("len(data) = %d, want %d", len(data), desc.Size)
		}
		if !bytes.Equal(data, make([]byte, desc.Size)) {
			t.Error("mapped data is not zero-initialized")
		}
		if rc != gpures.ResourceContext(ctx) {
			t.Error("setup received a different context")
		}
		for i := range data {
			data[i] = byte(i)
		}
	})

	if calls != 1 {
		t.Fatalf("setup called %d times, want 1", calls)
	}
	info, ok := gpures.LookupResourceInfo(ctx, h)
	if !ok {
		t.Fatal("mapped buffer has no metadata")
	}
	if d, _ := info.AsBuffer(); d != desc {
		t.Errorf("mapped buffer descriptor = %+v, want %+v", d, desc)
	}
}

func TestCreateBufferMappedZeroSize(t *testing.T) {
	ctx := New()
	h := ctx.CreateBufferMapped(gputypes.BufferDescriptor{}, func(data []byte, _ gpures.ResourceContext) {
		if len(data) != 0 {
			t.Errorf("len(data) = %d, want 0", len(data))
		}
	})
	if !h.IsValid() {
		t.Error("CreateBufferMapped returned an invalid handle")
	}
}

func TestCreateBufferMappedWithoutMetadata(t *testing.T) {
	ctx := New(WithMappedBufferMetadata(false))
	h := ctx.CreateBufferMapped(gputypes.BufferDescriptor{Size: 8}, func([]byte, gpures.ResourceContext) {})
	if _, ok := gpures.LookupResourceInfo(ctx, h); ok {
		t.Error("mapped buffer has metadata with WithMappedBufferMetadata(false)")
	}
	if !h.IsValid() {
		t.Error("CreateBufferMapped returned an invalid handle")
	}
}

func TestCreateBufferMappedReentrant(t *testing.T) {
	ctx := New()
	asset := gpures.NewHandle[material]()

	var nested gpures.ResourceHandle
	outer := ctx.CreateBufferMapped(gputypes.BufferDescriptor{Size: 32}, func(data []byte, rc gpures.ResourceContext) {
		// Every kind of call back into the context must work from here.
		nested = rc.CreateBuffer(gputypes.BufferDescriptor{Size: 8})
		rc.GetResourceInfo(nested, func(info *gpures.ResourceInfo) {
			if info == nil {
				t.Error("nested buffer not visible inside setup")
			}
			// And from inside visit as well.
			rc.RemoveTexture(rc.CreateTexture(nil))
		})
		gpures.SetAssetResource(rc, asset, nested, 0)
		rc.CreateBufferMapped(gputypes.BufferDescriptor{Size: 4}, func([]byte, gpures.ResourceContext) {})
	})

	if outer == nested {
		t.Fatal("outer and nested buffers share a handle")
	}
	if got, ok := gpures.GetAssetResource(ctx, asset, 0); !ok || got != nested {
		t.Errorf("GetAssetResource() = %v, %v, want %v, true", got, ok, nested)
	}
	// outer, nested and the inner mapped buffer.
	if n := ctx.ResourceCount(); n != 3 {
		t.Errorf("ResourceCount() = %d, want 3", n)
	}
}

func TestBindingRoundTrip(t *testing.T) {
	ctx := New()
	asset := gpures.NewHandle[material]().Untyped()
	h1 := ctx.CreateTexture(nil)
	h2 := ctx.CreateTexture(nil)

	ctx.SetAssetResourceUntyped(asset, h1, 0)
	if got, ok := ctx.GetAssetResourceUntyped(asset, 0); !ok || got != h1 {
		t.Errorf("GetAssetResourceUntyped(a, 0) = %v, %v, want %v, true", got, ok, h1)
	}

	ctx.SetAssetResourceUntyped(asset, h2, 0)
	if got, ok := ctx.GetAssetResourceUntyped(asset, 0); !ok || got != h2 {
		t.Errorf("GetAssetResourceUntyped(a, 0) after overwrite = %v, %v, want %v, true", got, ok, h2)
	}

	if got, ok := ctx.GetAssetResourceUntyped(asset, 1); ok {
		t.Errorf("GetAssetResourceUntyped(a, 1) = %v, true, want absent", got)
	}
}

func TestBindingSurvivesRemoval(t *testing.T) {
	ctx := New()
	asset := gpures.NewHandle[material]()
	h := ctx.CreateBuffer(gputypes.BufferDescriptor{Size: 4})

	gpures.SetAssetResource(ctx, asset, h, 2)
	ctx.RemoveBuffer(h)

	got, ok := gpures.GetAssetResource(ctx, asset, 2)
	if !ok || got != h {
		t.Errorf("GetAssetResource() = %v, %v, want stale %v, true", got, ok, h)
	}
	if _, ok := gpures.LookupResourceInfo(ctx, got); ok {
		t.Error("stale binding resolves to live metadata")
	}
}

func TestSwapChainNoOps(t *testing.T) {
	ctx := New()
	asset := gpures.NewHandle[material]().Untyped()
	buf := ctx.CreateBuffer(gputypes.BufferDescriptor{Size: 4})
	ctx.SetAssetResourceUntyped(asset, buf, 0)

	window := &gpures.Window{
		ID:       gpures.NewWindowID(),
		Title:    "main",
		Provider: gpucontext.NullWindowProvider{W: 800, H: 600, SF: 2},
	}
	ctx.CreateSwapChain(window)
	ctx.CreateSwapChain(nil)
	tex := ctx.NextSwapChainTexture(window.ID)
	ctx.DropSwapChainTexture(tex)
	ctx.DropSwapChainTexture(buf)
	ctx.DropAllSwapChainTextures()

	if n := ctx.ResourceCount(); n != 1 {
		t.Errorf("ResourceCount() = %d, want 1", n)
	}
	if n := ctx.BindingCount(); n != 1 {
		t.Errorf("BindingCount() = %d, want 1", n)
	}
	if _, ok := gpures.LookupResourceInfo(ctx, buf); !ok {
		t.Error("swap-chain calls removed buffer metadata")
	}
	if got, _ := ctx.GetAssetResourceUntyped(asset, 0); got != buf {
		t.Errorf("swap-chain calls changed binding to %v", got)
	}
	if _, ok := gpures.LookupResourceInfo(ctx, tex); ok {
		t.Error("swap-chain texture has metadata")
	}
}

func TestCloneSharesState(t *testing.T) {
	ctx := New()
	clone := ctx.Clone()
	asset := gpures.NewHandle[material]()

	h := clone.CreateSampler(nil)
	gpures.SetAssetResource(clone, asset, h, 0)

	if _, ok := gpures.LookupResourceInfo(ctx, h); !ok {
		t.Error("resource created through clone not visible in original")
	}
	if got, ok := gpures.GetAssetResource(ctx, asset, 0); !ok || got != h {
		t.Errorf("binding through clone = %v, %v, want %v, true", got, ok, h)
	}

	ctx.RemoveSampler(h)
	if _, ok := gpures.LookupResourceInfo(clone, h); ok {
		t.Error("removal through original not visible in clone")
	}
}

func TestCreateShaderModule(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := New(WithLogger(logger))

	shaders := gpures.NewShaderStorage()
	shader, err := gpures.NewSPIRVShader("blit", gputypes.ShaderStageVertex, []uint32{0x07230203})
	if err != nil {
		t.Fatalf("NewSPIRVShader() error = %v", err)
	}
	h := shaders.Add(shader)

	ctx.CreateShaderModule(h, shaders)
	ctx.CreateShaderModule(gpures.NewHandle[gpures.Shader](), shaders)
	ctx.CreateShaderModule(h, nil)

	out := buf.String()
	if !strings.Contains(out, "label=blit") {
		t.Errorf("log missing shader label: %q", out)
	}
	if !strings.Contains(out, "shader asset not found") {
		t.Errorf("log missing unknown-shader warning: %q", out)
	}
	if n := ctx.ResourceCount(); n != 0 {
		t.Errorf("ResourceCount() = %d, want 0", n)
	}
}

func TestConcurrentMixedOperations(t *testing.T) {
	ctx := New()
	const workers, perWorker = 8, 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			asset := gpures.NewHandle[material]()
			for i := 0; i < perWorker; i++ {
				desc := gputypes.BufferDescriptor{Size: uint64(i + 1)}
				h := ctx.CreateBuffer(desc)
				gpures.SetAssetResource(ctx, asset, h, uint32(i))

				info, ok := gpures.LookupResourceInfo(ctx, h)
				if d, _ := info.AsBuffer(); !ok || d != desc {
					t.Errorf("LookupResourceInfo(%v) = %+v, %v", h, info, ok)
				}
				if got, _ := gpures.GetAssetResource(ctx, asset, uint32(i)); got != h {
					t.Errorf("GetAssetResource() = %v, want %v", got, h)
				}
				ctx.RemoveBuffer(h)
			}
		}()
	}
	wg.Wait()

	if n := ctx.ResourceCount(); n != 0 {
		t.Errorf("ResourceCount() = %d, want 0", n)
	}
	if n := ctx.BindingCount(); n != workers*perWorker {
		t.Errorf("BindingCount() = %d, want %d", n, workers*perWorker)
	}
}
