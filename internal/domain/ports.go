package domain

import "context"

// KV is the generic persistence adapter: key-value access to device-local
// storage. Implementations can be file-backed or in-memory. A missing key
// returns ErrNotFound.
type KV interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

// Notifier delivers messages to the user. Implementations can write styled
// terminal output, ring the bell, or play a chime.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}

// SchemeSource is the optional platform dynamic-color capability. When the
// host can supply a color scheme the resolver maps it onto the app's token
// set; a nil source means the capability is absent and the resolver falls
// back to the Nothing palette.
type SchemeSource interface {
	Scheme(dark bool) Scheme
}

// Scheme is the raw field set a platform palette provides.
type Scheme struct {
	Primary          string
	Secondary        string
	Tertiary         string
	Surface          string
	OnSurface        string
	Background       string
	SurfaceContainer string
}
