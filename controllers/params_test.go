package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirecentive/dashboard/datatable"
	"github.com/hirecentive/dashboard/services"
)

func TestDecodeListParams(t *testing.T) {
	params := decodeListParams(url.Values{
		"q":        {"alex"},
		"platform": {"TikTok"},
		"status":   {"all"},
		"category": {"Tech"},
		"sort":     {"followers"},
		"dir":      {"desc"},
		"dialog":   {"new"},
		"unknown":  {"ignored"},
	})

	q := params.influencerQuery()
	assert.Equal(t, "alex", q.Search)
	assert.Equal(t, "TikTok", q.Filter("platform"))
	assert.Equal(t, datatable.All, q.Filter("status"))
	assert.Equal(t, "Tech", q.Filter("category"))
	assert.Equal(t, datatable.Sort{Field: "followers", Direction: datatable.Descending}, q.Sort)
	assert.Equal(t, "new", params.Dialog)
}

func TestLogQueryDefaultsToNewestFirst(t *testing.T) {
	q := decodeListParams(url.Values{}).logQuery(services.DefaultLogSort)
	assert.Equal(t, services.DefaultLogSort, q.Sort)

	q = decodeListParams(url.Values{"sort": {"user"}}).logQuery(services.DefaultLogSort)
	assert.Equal(t, datatable.Sort{Field: "user", Direction: datatable.Ascending}, q.Sort)
}

func TestSortColumns(t *testing.T) {
	q := datatable.Query{Sort: datatable.Sort{Field: "name", Direction: datatable.Ascending}}.WithFilter("platform", "TikTok")
	columns := sortColumns("/dashboard/influencers", q, []columnDef{
		{key: "name", label: "Name", sortable: true},
		{key: "followers", label: "Followers", sortable: true},
		{key: "category", label: "Categories"},
	})

	assert.True(t, columns[0].Active)
	assert.Equal(t, "/dashboard/influencers?dir=desc&platform=TikTok&sort=name", columns[0].Href)
	assert.False(t, columns[1].Active)
	assert.Equal(t, "/dashboard/influencers?dir=asc&platform=TikTok&sort=followers", columns[1].Href)
	assert.Empty(t, columns[2].Href, "list columns are not sortable")
}

func TestReturnValuesDropsUnknownKeys(t *testing.T) {
	values := returnValues("platform=YouTube&sort=name&evil=%3Cscript%3E&dialog=new")
	assert.Equal(t, "dir=asc&platform=YouTube&sort=name", values.Encode())
	assert.False(t, values.Has("dialog"), "a redirect after submit closes the dialog")

	assert.Empty(t, returnValues("%zz"))
}

func TestSameSiteReferer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "http://admin.local/sidebar/toggle", nil)
	assert.Equal(t, "/dashboard", sameSiteReferer(req, "/dashboard"))

	req.Header.Set("Referer", "http://admin.local/dashboard/logs?status=failed")
	assert.Equal(t, "/dashboard/logs?status=failed", sameSiteReferer(req, "/dashboard"))

	req.Header.Set("Referer", "https://elsewhere.example/phish")
	assert.Equal(t, "/dashboard", sameSiteReferer(req, "/dashboard"))
}

func TestWithQuery(t *testing.T) {
	assert.Equal(t, "/dashboard/influencers", withQuery("/dashboard/influencers", url.Values{}))
	assert.Equal(t, "/dashboard/influencers?q=a+b", withQuery("/dashboard/influencers", url.Values{"q": {"a b"}}))
}
