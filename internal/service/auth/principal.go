package auth

// Principal is the authenticated caller as seen by the controllers.
type Principal struct {
	UserID  int64
	IsAdmin bool
}

// CanAccess reports whether the principal may act on a resource owned by
// ownerID: admins always can, everyone else only on their own id.
func (p Principal) CanAccess(ownerID int64) bool {
	return p.IsAdmin || p.UserID == ownerID
}
