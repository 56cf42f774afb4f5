package domain

// SiteConfig is a singleton document. PUT replaces it wholesale,
// there is no field-merge contract.
type SiteConfig struct {
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	TokenCA       string            `json:"tokenCA"`
	SocialLinks   map[string]string `json:"socialLinks"`
	AudioURL      string            `json:"audioUrl"`
	AudioAutoplay bool              `json:"audioAutoplay"`
	AudioLoop     bool              `json:"audioLoop"`
	AudioVolume   float64           `json:"audioVolume"`
}

// LikeTarget is either a thread or a reply located by post id.
// Exactly one of Thread/Reply is non-nil.
type LikeTarget struct {
	Thread *Thread
	Reply  *Reply
}

func (t *LikeTarget) Likes() []ClientId {
	if t.Thread != nil {
		return t.Thread.Likes
	}
	return t.Reply.Likes
}

func (t *LikeTarget) Id() string {
	if t.Thread != nil {
		return t.Thread.Id
	}
	return t.Reply.Id
}
