package apiclient

import (
	urlkit "github.com/goliatone/go-urlkit"
)

// Kind identifies one record family exposed by the backend.
type Kind string

const (
	KindState       Kind = "state"
	KindDistrict    Kind = "district"
	KindCity        Kind = "city"
	KindCategory    Kind = "category"
	KindSubCategory Kind = "subcategory"
)

const routeGroup = "api"

// Route names within the api group. The backend's paths are uneven (talukas
// live under /api/taluka, taxonomy under /post-*), so the route table keeps
// that knowledge out of the client methods.
const (
	routeLogin = "login"

	suffixCollection = "_collection"
	suffixItem       = "_item"
	suffixByID       = "_by_id"
	suffixByLanguage = "_by_language"
)

// Moderation routes. The backend grew these ad hoc (delete lives under
// /delete-*, per-user lookups under /api/*byuser), so each gets its own name.
const (
	routeUsers           = "users"
	routeUserItem        = "user_item"
	routeUserDelete      = "user_delete"
	routePosts           = "posts"
	routePostDelete      = "post_delete"
	routePostsByUser     = "posts_by_user"
	routeQuestionsByUser = "questions_by_user"
	routeReportsByUser   = "reports_by_user"
)

// DefaultRouteConfig returns the go-urlkit route table for the MamaGhar API
// rooted at baseURL.
func DefaultRouteConfig(baseURL string) *urlkit.Config {
	paths := map[string]string{
		routeLogin: "/login",

		routeUsers:           "/users",
		routeUserItem:        "/users/:id",
		routeUserDelete:      "/delete-user/:id",
		routePosts:           "/posts",
		routePostDelete:      "/delete-posts/:id",
		routePostsByUser:     "/api/postbyuser/:id",
		routeQuestionsByUser: "/api/questionbyuser/:id",
		routeReportsByUser:   "/userbypostreport/:id",
	}

	addKind := func(kind Kind, collection, lookup string) {
		paths[string(kind)+suffixCollection] = collection
		paths[string(kind)+suffixItem] = collection + "/:id"
		paths[string(kind)+suffixByID] = lookup + "byid/:id"
		paths[string(kind)+suffixByLanguage] = lookup + "bylanguage"
	}

	addKind(KindState, "/api/state", "/api/state")
	addKind(KindDistrict, "/api/district", "/api/district")
	addKind(KindCity, "/api/taluka", "/api/taluka")
	addKind(KindCategory, "/post-category", "/api/category")
	addKind(KindSubCategory, "/post-subcategory", "/api/subcategory")

	return &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    routeGroup,
				BaseURL: baseURL,
				Paths:   paths,
			},
		},
	}
}
