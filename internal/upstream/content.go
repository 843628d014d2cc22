package upstream

import (
	"context"
	"net/http"
)

// fetches the project portfolio
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.doJSON(ctx, http.MethodGet, "/projects", "", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// fetches a single project by id
func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	var project Project
	if err := c.doJSON(ctx, http.MethodGet, "/projects/"+id, "", nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// fetches the skills list
func (c *Client) ListSkills(ctx context.Context) ([]Skill, error) {
	var skills []Skill
	if err := c.doJSON(ctx, http.MethodGet, "/skills", "", nil, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// delivers a contact form submission
func (c *Client) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	return c.doJSON(ctx, http.MethodPost, "/contact", "", msg, nil)
}
