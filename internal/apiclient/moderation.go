package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// User is a marketplace account as the moderation endpoints return it.
type User struct {
	ID             string `json:"id,omitempty"`
	LegacyID       string `json:"_id,omitempty"`
	Name           string `json:"name,omitempty"`
	Mobile         string `json:"mobile,omitempty"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	District       string `json:"district,omitempty"`
	State          string `json:"state,omitempty"`
	PinCode        string `json:"pinCode,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Role           string `json:"role,omitempty"`
}

// Key returns the user identifier, tolerating the backend's older _id shape.
func (u *User) Key() string {
	if u.ID != "" {
		return u.ID
	}
	return u.LegacyID
}

// UserUpdate is the editable slice of a user profile.
type UserUpdate struct {
	Name     string `json:"name"`
	State    string `json:"state"`
	City     string `json:"city"`
	District string `json:"district"`
	Address  string `json:"address"`
}

// UserPage is one page of the users list.
type UserPage struct {
	Users      []User
	Pagination Pagination
}

// Post is a marketplace listing under moderation.
type Post struct {
	ID        string      `json:"id,omitempty"`
	LegacyID  string      `json:"_id,omitempty"`
	Title     string      `json:"title,omitempty"`
	Price     json.Number `json:"price,omitempty"`
	Details   string      `json:"details,omitempty"`
	PhotoURLs []string    `json:"photoUrls,omitempty"`
	CreatedAt string      `json:"createdAt,omitempty"`
}

// Key returns the post identifier, tolerating the backend's older _id shape.
func (p *Post) Key() string {
	if p.ID != "" {
		return p.ID
	}
	return p.LegacyID
}

// PostPage is one page of the posts list.
type PostPage struct {
	Posts      []Post
	Pagination Pagination
}

// Question is a buyer question attached to a user's history.
type Question struct {
	ID        string         `json:"_id,omitempty"`
	Question  string         `json:"question,omitempty"`
	Details   string         `json:"details,omitempty"`
	PhotoURLs []string       `json:"photoUrls,omitempty"`
	CreatedAt string         `json:"createdAt,omitempty"`
	LikedBy   []string       `json:"likedBy,omitempty"`
	Author    QuestionAuthor `json:"userId,omitempty"`
}

// QuestionAuthor is the embedded account summary on a question.
type QuestionAuthor struct {
	Name          string `json:"name,omitempty"`
	ProfilePicURL string `json:"profilePicUrl,omitempty"`
}

// Reporter identifies the account that filed a report.
type Reporter struct {
	Name       string `json:"name,omitempty"`
	ProfilePic string `json:"profilePic,omitempty"`
}

// Report is one abuse report filed against a user's posts.
type Report struct {
	Reason    []string `json:"reason,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
	Reporter  Reporter `json:"reporterId,omitempty"`
}

// ListUsers returns one page of accounts for the moderation view.
func (c *Client) ListUsers(ctx context.Context, opts ListOptions) (*UserPage, error) {
	url, err := c.buildURL(routeUsers, nil, listQuery(opts))
	if err != nil {
		return nil, err
	}

	env, err := c.do(ctx, http.MethodGet, url, nil, "", "", true)
	if err != nil {
		return nil, err
	}

	page := &UserPage{}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &page.Users); err != nil {
			return nil, fmt.Errorf("apiclient: decode users list: %w", err)
		}
	}
	if env.Pagination != nil {
		page.Pagination = *env.Pagination
	}
	return page, nil
}

// UpdateUser replaces the editable profile fields of one account.
func (c *Client) UpdateUser(ctx context.Context, id string, update UserUpdate) (string, error) {
	body, err := json.Marshal(update)
	if err != nil {
		return "", err
	}

	url, err := c.buildURL(routeUserItem, map[string]any{"id": id}, nil)
	if err != nil {
		return "", err
	}

	env, err := c.do(ctx, http.MethodPut, url, body, "application/json", "", true)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// DeleteUser removes an account. The backend refuses admin accounts; the
// refusal surfaces as a request error carrying the server message.
func (c *Client) DeleteUser(ctx context.Context, id string) (string, error) {
	return c.deleteAt(ctx, routeUserDelete, id)
}

// ListPosts returns one page of listings for the moderation view.
func (c *Client) ListPosts(ctx context.Context, opts ListOptions) (*PostPage, error) {
	url, err := c.buildURL(routePosts, nil, listQuery(opts))
	if err != nil {
		return nil, err
	}

	env, err := c.do(ctx, http.MethodGet, url, nil, "", "", true)
	if err != nil {
		return nil, err
	}

	page := &PostPage{}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &page.Posts); err != nil {
			return nil, fmt.Errorf("apiclient: decode posts list: %w", err)
		}
	}
	if env.Pagination != nil {
		page.Pagination = *env.Pagination
	}
	return page, nil
}

// DeletePost removes a listing.
func (c *Client) DeletePost(ctx context.Context, id string) (string, error) {
	return c.deleteAt(ctx, routePostDelete, id)
}

// PostsByUser returns every listing one account has published.
func (c *Client) PostsByUser(ctx context.Context, userID string) ([]Post, error) {
	var posts []Post
	if err := c.fetchByUser(ctx, routePostsByUser, userID, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// QuestionsByUser returns every question one account has asked.
func (c *Client) QuestionsByUser(ctx context.Context, userID string) ([]Question, error) {
	var questions []Question
	if err := c.fetchByUser(ctx, routeQuestionsByUser, userID, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// ReportsByUser returns the abuse reports filed against one account's posts.
func (c *Client) ReportsByUser(ctx context.Context, userID string) ([]Report, error) {
	var reports []Report
	if err := c.fetchByUser(ctx, routeReportsByUser, userID, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *Client) deleteAt(ctx context.Context, route, id string) (string, error) {
	url, err := c.buildURL(route, map[string]any{"id": id}, nil)
	if err != nil {
		return "", err
	}

	env, err := c.do(ctx, http.MethodDelete, url, nil, "", "", true)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *Client) fetchByUser(ctx context.Context, route, userID string, out any) error {
	url, err := c.buildURL(route, map[string]any{"id": userID}, nil)
	if err != nil {
		return err
	}

	env, err := c.do(ctx, http.MethodGet, url, nil, "", "", true)
	if err != nil {
		return err
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("apiclient: decode %s: %w", route, err)
		}
	}
	return nil
}

// listQuery renders the shared list parameters every collection endpoint
// understands.
func listQuery(opts ListOptions) map[string][]string {
	query := map[string][]string{}
	if opts.Page > 0 {
		query["page"] = []string{strconv.Itoa(opts.Page)}
	}
	if opts.Limit > 0 {
		query["limit"] = []string{strconv.Itoa(opts.Limit)}
	}
	if opts.SortBy != "" {
		query["sortBy"] = []string{opts.SortBy}
	}
	if opts.SortOrder != "" {
		query["sortOrder"] = []string{opts.SortOrder}
	}
	if opts.Search != "" {
		query["search"] = []string{opts.Search}
	}
	return query
}
