package blogs

import "github.com/indigenous-connect/server/internal/upstream"

// PostDetailResponse bundles a post with its approved comments
type PostDetailResponse struct {
	Post     upstream.BlogPost  `json:"post"`
	Comments []upstream.Comment `json:"comments"`
}
