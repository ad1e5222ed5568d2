package datatable

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type row struct {
	ID       string
	Name     string
	Platform string
	Status   string
	Score    int
	Tags     []string
	At       time.Time
}

var rowSchema = NewSchema(
	TextField("id", func(r row) string { return r.ID }),
	TextField("name", func(r row) string { return r.Name }),
	TextField("platform", func(r row) string { return r.Platform }),
	TextField("status", func(r row) string { return r.Status }),
	IntField("score", func(r row) int { return r.Score }),
	ListField("tags", func(r row) []string { return r.Tags }),
	TimeField("at", func(r row) time.Time { return r.At }, "2006-01-02 15:04"),
).Searching("name", "platform", "status", "score", "tags", "at")

func sampleRows() []row {
	base := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	return []row{
		{ID: "id-1", Name: "Alice", Platform: "TikTok", Status: "active", Score: 75, Tags: []string{"Tech"}, At: base.Add(2 * time.Hour)},
		{ID: "id-2", Name: "Bob", Platform: "YouTube", Status: "inactive", Score: 58, Tags: []string{"Food", "Travel"}, At: base},
		{ID: "id-3", Name: "Carol", Platform: "TikTok", Status: "inactive", Score: 63, Tags: []string{"Tech", "Gaming"}, At: base.Add(time.Hour)},
	}
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestDerive_EmptyQueryReturnsEverything(t *testing.T) {
	rows := sampleRows()
	view := rowSchema.Derive(rows, Query{})
	if diff := cmp.Diff(rows, view); diff != "" {
		t.Errorf("empty query changed the view (-want +got):\n%s", diff)
	}
}

func TestDerive_SearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	rows := sampleRows()

	assert.Equal(t, []string{"Bob"}, names(rowSchema.Derive(rows, Query{Search: "bob"})))
	assert.Equal(t, []string{"Alice", "Carol"}, names(rowSchema.Derive(rows, Query{Search: "TIKTOK"})))
	// list fields search as their comma-joined text
	assert.Equal(t, []string{"Bob"}, names(rowSchema.Derive(rows, Query{Search: "food,trav"})))
	// numbers search as their decimal text
	assert.Equal(t, []string{"Bob"}, names(rowSchema.Derive(rows, Query{Search: "58"})))
	// timestamps search as their rendered text
	assert.Len(t, rowSchema.Derive(rows, Query{Search: "2024-02"}), 3)
}

func TestDerive_SearchSkipsUndeclaredFields(t *testing.T) {
	// id is declared but not searchable
	assert.Empty(t, rowSchema.Derive(sampleRows(), Query{Search: "id-"}), "id must not be searched")
}

func TestDerive_SearchSoundAndComplete(t *testing.T) {
	rows := sampleRows()
	for _, term := range []string{"a", "ti", "ve", "6", "zzz", "Tech", "09:"} {
		view := rowSchema.Derive(rows, Query{Search: term})
		for _, r := range rows {
			included := slices.ContainsFunc(view, func(v row) bool { return v.ID == r.ID })
			assert.Equal(t, anyFieldContains(r, term), included, "term %q row %s", term, r.Name)
		}
	}
}

func anyFieldContains(r row, term string) bool {
	term = strings.ToLower(term)
	for _, name := range rowSchema.SearchableFields() {
		field, _ := rowSchema.Field(name)
		if strings.Contains(strings.ToLower(field.Text(r)), term) {
			return true
		}
	}
	return false
}

func TestDerive_Filters(t *testing.T) {
	rows := sampleRows()

	assert.Equal(t, []string{"Alice", "Carol"}, names(rowSchema.Derive(rows, Query{}.WithFilter("platform", "TikTok"))))

	both := Query{}.WithFilter("platform", "TikTok").WithFilter("status", "inactive")
	assert.Equal(t, []string{"Carol"}, names(rowSchema.Derive(rows, both)))

	// "all" and "" disable a filter
	assert.Len(t, rowSchema.Derive(rows, Query{}.WithFilter("platform", All)), 3)
	assert.Len(t, rowSchema.Derive(rows, Query{}.WithFilter("platform", "")), 3)

	// unknown fields are ignored
	assert.Len(t, rowSchema.Derive(rows, Query{}.WithFilter("nope", "x")), 3)

	// list fields match by membership
	assert.Equal(t, []string{"Alice", "Carol"}, names(rowSchema.Derive(rows, Query{}.WithFilter("tags", "Tech"))))

	// filters AND with search
	assert.Equal(t, []string{"Carol"}, names(rowSchema.Derive(rows, Query{Search: "car"}.WithFilter("platform", "TikTok"))))
	assert.Empty(t, rowSchema.Derive(rows, Query{Search: "bob"}.WithFilter("platform", "TikTok")))
}

func TestDerive_Sort(t *testing.T) {
	rows := sampleRows()

	asc := rowSchema.Derive(rows, Query{Sort: Sort{Field: "score", Direction: Ascending}})
	desc := rowSchema.Derive(rows, Query{Sort: Sort{Field: "score", Direction: Descending}})
	assert.Equal(t, []string{"Bob", "Carol", "Alice"}, names(asc))

	reversed := slices.Clone(desc)
	slices.Reverse(reversed)
	assert.Equal(t, asc, reversed, "descending must be the reverse of ascending")

	byTime := rowSchema.Derive(rows, Query{Sort: Sort{Field: "at", Direction: Descending}})
	assert.Equal(t, []string{"Alice", "Carol", "Bob"}, names(byTime))

	byName := rowSchema.Derive(rows, Query{Sort: Sort{Field: "name", Direction: Descending}})
	assert.Equal(t, []string{"Carol", "Bob", "Alice"}, names(byName))

	// unsortable and unknown fields keep input order
	assert.Equal(t, names(rows), names(rowSchema.Derive(rows, Query{Sort: Sort{Field: "tags"}})))
	assert.Equal(t, names(rows), names(rowSchema.Derive(rows, Query{Sort: Sort{Field: "missing"}})))
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	rows := sampleRows()
	before := slices.Clone(rows)

	view := rowSchema.Derive(rows, Query{Sort: Sort{Field: "score", Direction: Ascending}})
	view[0].Name = "changed"

	assert.Equal(t, before, rows)
}

func TestDerive_EmptyCollection(t *testing.T) {
	view := rowSchema.Derive(nil, Query{Search: "x"}.WithFilter("platform", "TikTok"))
	require.NotNil(t, view)
	assert.Empty(t, view)
}

func TestQuery_ToggleSort(t *testing.T) {
	q := Query{}.ToggleSort("score")
	assert.Equal(t, Sort{Field: "score", Direction: Ascending}, q.Sort)

	q = q.ToggleSort("score")
	assert.Equal(t, Descending, q.Sort.Direction)

	q = q.ToggleSort("score")
	assert.Equal(t, Ascending, q.Sort.Direction, "toggling twice returns to ascending")

	q = q.ToggleSort("score").ToggleSort("name")
	assert.Equal(t, Sort{Field: "name", Direction: Ascending}, q.Sort, "a new key resets to ascending")
}

func TestQuery_TwoClicksRestoreAscendingView(t *testing.T) {
	rows := sampleRows()
	first := Query{}.ToggleSort("score")
	again := first.ToggleSort("score").ToggleSort("score")
	assert.Equal(t, rowSchema.Derive(rows, first), rowSchema.Derive(rows, again))
}

func TestQuery_CopiesDoNotShareFilters(t *testing.T) {
	base := Query{}.WithFilter("platform", "TikTok")
	next := base.WithFilter("platform", "YouTube")
	assert.Equal(t, "TikTok", base.Filter("platform"))
	assert.Equal(t, "YouTube", next.Filter("platform"))
	assert.Equal(t, All, base.Filter("status"))
}

func TestQuery_Values(t *testing.T) {
	q := Query{Search: "bob", Sort: Sort{Field: "at"}}.
		WithFilter("platform", "TikTok").
		WithFilter("status", All)

	values := q.Values()
	assert.Equal(t, "bob", values.Get(SearchKey))
	assert.Equal(t, "TikTok", values.Get("platform"))
	assert.False(t, values.Has("status"), "disabled filters are omitted")
	assert.Equal(t, "at", values.Get(SortKey))
	assert.Equal(t, "asc", values.Get(DirectionKey))
	assert.Equal(t, "dir=asc&platform=TikTok&q=bob&sort=at", q.Encode())
}

func TestNewSchema_PanicsOnDuplicates(t *testing.T) {
	assert.Panics(t, func() {
		NewSchema(
			TextField("name", func(r row) string { return r.Name }),
			TextField("name", func(r row) string { return r.Status }),
		)
	})
	assert.Panics(t, func() {
		NewSchema(TextField("name", func(r row) string { return r.Name })).Searching("missing")
	})
}
