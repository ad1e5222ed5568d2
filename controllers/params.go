package controllers

import (
	"net/url"

	"github.com/hirecentive/dashboard/datatable"
)

// listParams is the query string of a table page
type listParams struct {
	Search   string `schema:"q"`
	Platform string `schema:"platform"`
	Status   string `schema:"status"`
	Category string `schema:"category"`
	Sort     string `schema:"sort"`
	Dir      string `schema:"dir"`
	Dialog   string `schema:"dialog"`
	Limit    int    `schema:"limit"`
}

// decodeListParams reads listParams from URL values. Malformed values fall
// back to their zero value.
func decodeListParams(values url.Values) listParams {
	var params listParams
	_ = decoder.Decode(&params, values)
	return params
}

// influencerQuery builds the datatable query for the influencer table
func (p listParams) influencerQuery() datatable.Query {
	return datatable.Query{
		Search: p.Search,
		Filters: map[string]string{
			"platform": p.Platform,
			"status":   p.Status,
			"category": p.Category,
		},
		Sort: p.sort(datatable.Sort{}),
	}
}

// logQuery builds the datatable query for the activity log, newest first by default
func (p listParams) logQuery(defaultSort datatable.Sort) datatable.Query {
	return datatable.Query{
		Search: p.Search,
		Filters: map[string]string{
			"category": p.Category,
			"status":   p.Status,
		},
		Sort: p.sort(defaultSort),
	}
}

func (p listParams) sort(fallback datatable.Sort) datatable.Sort {
	if p.Sort == "" {
		return fallback
	}
	return datatable.Sort{Field: p.Sort, Direction: datatable.ParseDirection(p.Dir)}
}

// sortColumn is one table header
type sortColumn struct {
	Key       string
	Label     string
	Href      string
	Active    bool
	Direction datatable.Direction
}

type columnDef struct {
	key      string
	label    string
	sortable bool
}

// sortColumns renders headers whose links carry the toggled sort of q
func sortColumns(basePath string, q datatable.Query, defs []columnDef) []sortColumn {
	columns := make([]sortColumn, 0, len(defs))
	for _, def := range defs {
		column := sortColumn{Key: def.key, Label: def.label}
		if def.sortable {
			column.Href = basePath + "?" + q.ToggleSort(def.key).Encode()
			column.Active = q.Sort.Field == def.key
			column.Direction = datatable.ParseDirection(string(q.Sort.Direction))
		}
		columns = append(columns, column)
	}
	return columns
}

// withQuery appends the encoded query to path when it is not empty
func withQuery(path string, values url.Values) string {
	if encoded := values.Encode(); encoded != "" {
		return path + "?" + encoded
	}
	return path
}

// returnValues re-derives a safe table query from a posted "return" field
func returnValues(raw string) url.Values {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return url.Values{}
	}
	return decodeListParams(values).influencerQuery().Values()
}
