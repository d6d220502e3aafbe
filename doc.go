// Package gpures defines the backend-agnostic contract for GPU-resident
// resources: buffers, textures, samplers, swap-chain images and shader
// modules.
//
// # Overview
//
// Engine code (render graph, asset pipeline, windowing glue) depends only on
// the [ResourceContext] interface. Backends implement it: a real GPU backend
// allocates device memory, while the headless backend in
// github.com/gogpu/gpures/headless only does the bookkeeping, which makes it
// suitable for tests, tooling and non-visual execution.
//
//	ctx := headless.New()
//
//	buf := ctx.CreateBuffer(gputypes.BufferDescriptor{
//	    Size:  256,
//	    Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
//	})
//
//	ctx.GetResourceInfo(buf, func(info *gpures.ResourceInfo) {
//	    if info == nil {
//	        return // removed or never created
//	    }
//	    desc, _ := info.AsBuffer()
//	    fmt.Println(desc.Size)
//	})
//
// # Handles
//
// Resources are referenced by [ResourceHandle], an opaque value issued by a
// process-wide atomic counter. Handles are never reused, so a stale handle
// can never alias a newer resource; queries on it simply report absence.
//
// # Asset Bindings
//
// Higher layers associate assets with resources through numbered slots:
//
//	gpures.SetAssetResource(ctx, material, texture, 0)
//	tex, ok := gpures.GetAssetResource(ctx, material, 0)
//
// The binding table tracks association only. It does not keep resources
// alive and is not cleaned up when a resource is removed.
//
// # Concurrency
//
// Every [ResourceContext] method is safe for concurrent use. Callbacks passed
// to [ResourceContext.CreateBufferMapped] and [ResourceContext.GetResourceInfo]
// run with no internal lock held and may call back into the same context.
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package gpures

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
