package keymap

// HostOS returns the compile-time host-OS tag this build was compiled
// for: "Linux", "Windows", or "MacOS".
func HostOS() string { return hostOS }

// filterSystem drops every non-default context whose System filter is
// set and does not match the build's host OS (spec component F). The
// default context (index 0) is always preserved, and this runs as the
// final parse step, after every context's inputs/outputs are
// complete.
func filterSystem(cfg *Config) {
	if len(cfg.Contexts) == 0 {
		return
	}
	kept := cfg.Contexts[:1]
	for _, ctx := range cfg.Contexts[1:] {
		if ctx.System == "" || ctx.System == hostOS {
			kept = append(kept, ctx)
		}
	}
	cfg.Contexts = kept
}
