package cache

// RenderKeyOpts carries every render parameter that affects the encoded
// output. Two requests with equal data and equal opts are guaranteed to
// produce identical bytes, which is what makes the cache safe.
type RenderKeyOpts struct {
	Level       string  `json:"level"`
	ModuleSize  int     `json:"module_size"`
	QuietZone   int     `json:"quiet_zone"`
	Rounded     bool    `json:"rounded"`
	CornerRatio float64 `json:"corner_ratio"`
	Foreground  uint32  `json:"foreground"`
	Background  uint32  `json:"background"`
	Format      string  `json:"format"`
}

// RenderKey generates a cache key for an encoded render.
// The key format is: render:hash(data, opts).
func RenderKey(data string, opts RenderKeyOpts) string {
	return hashKey("render", data, opts)
}
