package apiclient

import "encoding/json"

// Record is a backend record as returned by fetch/list endpoints. Flat
// fields mirror the canonical locale for legacy consumers; the languages map
// carries the per-locale variants.
type Record struct {
	ID          string                       `json:"id,omitempty"`
	LegacyID    string                       `json:"_id,omitempty"`
	Name        string                       `json:"name,omitempty"`
	Code        string                       `json:"code,omitempty"`
	Type        string                       `json:"type,omitempty"`
	Slug        string                       `json:"slug,omitempty"`
	StateID     string                       `json:"stateId,omitempty"`
	DistrictID  string                       `json:"districtId,omitempty"`
	CategoryID  string                       `json:"categoryId,omitempty"`
	TitleHint   string                       `json:"titleHint,omitempty"`
	DetailsHint string                       `json:"detailsHint,omitempty"`
	Description string                       `json:"description,omitempty"`
	Image       string                       `json:"image,omitempty"`
	Languages   map[string]map[string]string `json:"languages,omitempty"`
}

// Key returns the record identifier, tolerating the backend's older _id
// shape.
func (r *Record) Key() string {
	if r.ID != "" {
		return r.ID
	}
	return r.LegacyID
}

// ForLocale returns the record's field values for one locale, falling back
// to the flat top-level fields when the locale entry is absent.
func (r *Record) ForLocale(locale string) map[string]string {
	if entry, ok := r.Languages[locale]; ok && len(entry) > 0 {
		copied := make(map[string]string, len(entry))
		for name, value := range entry {
			copied[name] = value
		}
		return copied
	}

	flat := map[string]string{
		"name":        r.Name,
		"code":        r.Code,
		"type":        r.Type,
		"slug":        r.Slug,
		"stateId":     r.StateID,
		"districtId":  r.DistrictID,
		"categoryId":  r.CategoryID,
		"titleHint":   r.TitleHint,
		"detailsHint": r.DetailsHint,
		"description": r.Description,
	}
	for name, value := range flat {
		if value == "" {
			delete(flat, name)
		}
	}
	return flat
}

// Pagination mirrors the backend's list metadata.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// UnmarshalJSON tolerates the backend's per-collection total keys: record
// lists send total, the users list sends totalUsers, the posts list
// totalPosts.
func (p *Pagination) UnmarshalJSON(raw []byte) error {
	var aux struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalUsers int `json:"totalUsers"`
		TotalPages int `json:"totalPages"`
		TotalPosts int `json:"totalPosts"`
	}
	if err := json.Unmarshal(raw, &aux); err != nil {
		return err
	}
	p.Page = aux.Page
	p.Limit = aux.Limit
	p.TotalPages = aux.TotalPages
	p.Total = aux.Total
	if p.Total == 0 {
		if aux.TotalUsers > 0 {
			p.Total = aux.TotalUsers
		} else if aux.TotalPosts > 0 {
			p.Total = aux.TotalPosts
		}
	}
	return nil
}

// RecordPage is one page of list results.
type RecordPage struct {
	Records    []Record
	Pagination Pagination
}

// ListOptions carries the query parameters understood by list endpoints.
type ListOptions struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Search    string
	Locale    string
}

// Credentials is the result of a successful login.
type Credentials struct {
	Token string          `json:"token"`
	Admin json.RawMessage `json:"admin,omitempty"`
}

// envelope is the common response wrapper: data plus an operator-facing
// message.
type envelope struct {
	Data       json.RawMessage `json:"data,omitempty"`
	Message    string          `json:"message,omitempty"`
	Pagination *Pagination     `json:"pagination,omitempty"`
	Token      string          `json:"token,omitempty"`
	Admin      json.RawMessage `json:"admin,omitempty"`
}
