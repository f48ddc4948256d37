package packets

// body for logging in
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// body for purging cached content; an empty resource purges everything
type PurgeRequest struct {
	Resource string `json:"resource"`
}
