package data

import "go-blog-app/internal/storage"

// Layer bundles the stores into one explicit data layer, constructed once and
// passed to whichever surface consumes it. It replaces the ambient per-page
// singletons of the browser front-end, which coordinated only through shared
// storage key names.
//
// Known limitation, inherited deliberately: every store persists its whole
// collection on each write with no versioning, so concurrent writers to the
// same backing store overwrite each other wholesale (last write wins).
type Layer struct {
	Posts    *PostStore
	Users    *UserStore
	Session  *SessionState
	Comments *CommentStore
	Contact  *ContactStore
	Theme    *ThemeState
	Admin    *AdminGate
}

// NewLayer wires the stores onto their backing storage: everything durable on
// the persistent store, the admin flag on the ephemeral one.
func NewLayer(persistent, ephemeral storage.Store, adminPassword string) *Layer {
	return &Layer{
		Posts:    NewPostStore(persistent),
		Users:    NewUserStore(persistent),
		Session:  NewSessionState(persistent),
		Comments: NewCommentStore(persistent),
		Contact:  NewContactStore(persistent),
		Theme:    NewThemeState(persistent),
		Admin:    NewAdminGate(ephemeral, adminPassword),
	}
}
