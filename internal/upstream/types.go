package upstream

// Identity returned by the content API on successful login.
// The token is the opaque bearer credential for privileged writes.
type Identity struct {
	ID       string `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Whatsapp string `json:"whatsapp"`
	Token    string `json:"token"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// Author of a blog post
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// BlogPost as served by the content API
type BlogPost struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Image     string `json:"image"`
	Author    Author `json:"author"`
	CreatedAt string `json:"createdAt"`
}

// fields accepted when creating or updating a post
type BlogPostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

// Comment on a blog post
type Comment struct {
	ID         string `json:"id"`
	BlogPostID string `json:"blogPostId"`
	Author     string `json:"author"`
	Content    string `json:"content"`
	Approved   bool   `json:"approved"`
	CreatedAt  string `json:"createdAt"`
}

// CommentInput for submitting a new comment
type CommentInput struct {
	BlogPostID string `json:"blogPostId"`
	Content    string `json:"content"`
}

// User account as managed from the admin area
type User struct {
	ID        string `json:"id"`
	Fullname  string `json:"fullname"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	Whatsapp  string `json:"whatsapp"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// Project shown on the projects pages
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link,omitempty"`
}

// Skill shown on the skills page
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

// ContactMessage submitted from the contact page
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// RegisterInput for new account sign-up
type RegisterInput struct {
	Fullname string
	Email    string
	Password string
	Whatsapp string

	// optional avatar upload
	AvatarFilename string
	Avatar         []byte
}

// Overview dashboard card figures
type Overview struct {
	TotalVisits   int `json:"totalVisits"`
	TotalUsers    int `json:"totalUsers"`
	TotalPosts    int `json:"totalPosts"`
	TotalComments int `json:"totalComments"`
}

// CountryStat is one row of the per-country visit chart
type CountryStat struct {
	Country string `json:"country"`
	Visits  int    `json:"visits"`
}

// VisitStat is one point of the visits-over-time chart
type VisitStat struct {
	Date   string `json:"date"`
	Visits int    `json:"visits"`
}
