package provisioning

// CreatorSpec describes one roster entry to provision under a business.
type CreatorSpec struct {
	Handle      string `json:"handle"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// OnboardInput is the god-admin request to stand up a business with its
// owner account and creator roster.
type OnboardInput struct {
	BusinessName string        `json:"business_name"`
	OwnerEmail   string        `json:"owner_email"`
	OwnerName    string        `json:"owner_name"`
	Creators     []CreatorSpec `json:"creators"`
}

// OnboardResult reports what was provisioned.
type OnboardResult struct {
	BusinessID   string   `json:"business_id"`
	OwnerUserID  string   `json:"owner_user_id"`
	OwnerInvited bool     `json:"owner_invited"`
	CreatorIDs   []string `json:"creator_ids"`
}

// InviteInput adds a single user with a role, creating the account if the
// email is unknown.
type InviteInput struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// InviteResult reports the resolved user and whether a fresh invite was
// created.
type InviteResult struct {
	UserID  string `json:"user_id"`
	Invited bool   `json:"invited"`
}
