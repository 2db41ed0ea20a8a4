package domain

// PublishResult identifies a post created on the social network
type PublishResult struct {
	PostURL string `json:"postUrl"`
	URI     string `json:"uri"`
	CID     string `json:"cid"`
}
