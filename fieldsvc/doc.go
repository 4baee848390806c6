// Package fieldsvc serves fractal computations over a websocket.
//
// Each text message is one JSON Request; the service answers with exactly
// one JSON Response carrying the same ID, in request order. Results are
// memoized in an in-process go-cache keyed by the canonical (typed) request,
// so the same computation asked with differently typed parameters
// ("width": 200 vs "width": "200") shares one entry.
//
// Kinds and their parameters (all optional):
//
//	mandelbrot  preset=region name  width height max_iter xmin xmax ymin ymax
//	julia       preset=constant     width height max_iter re im region
//	curve       preset=curve name   level
//	lsystem     preset=grammar name iterations
//	ifs         preset=system name  points burn_in chains seed
//	dimension   source=carpet|gasket|curve|lsystem|ifs  preset level size
//	            min_size max_size num_sizes
//
// Loose parameter values are coerced with spf13/cast. A request without an id
// is assigned a snowflake id. The service is a batch transport: every request
// is computed in full and answered once.
//
// Requests beyond WithLimits or WithIterationBudget fail with ErrTooLarge
// before any work starts. Carpet and gasket sources are sized by level,
// the raster sources by size.
//
// Optional wiring:
//
//	WithStore(NewRedisStore(...))  share results between instances
//	WithTokenKey(key)              require an HS256 JWT on the handshake
//	WithLogger(l.Wrapper)          structured connection and request logs
package fieldsvc
