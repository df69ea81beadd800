package present

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline-backend/internal/domains/entry/model"
)

func entry(id string, y int, m time.Month, d int) model.Entry {
	return model.Entry{ID: id, Photo: "https://img/" + id, Description: "desc " + id, Date: model.NewDate(y, m, d)}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

// ---- grouping ----

func TestGroupByMonth_MarchThenJanuary(t *testing.T) {
	entries := []model.Entry{
		entry("mar", 2024, time.March, 1),
		entry("jan", 2024, time.January, 15),
	}

	groups := GroupByMonth(entries)
	require.Len(t, groups, 2)
	assert.Equal(t, "March 2024", groups[0].Label)
	assert.Equal(t, "January 2024", groups[1].Label)
	assert.Equal(t, "mar", groups[0].Entries[0].ID)
	assert.Equal(t, "jan", groups[1].Entries[0].ID)
}

func TestGroupByMonth_FirstAppearanceOrder(t *testing.T) {
	entries := []model.Entry{
		entry("a", 2024, time.March, 20),
		entry("b", 2024, time.March, 2),
		entry("c", 2023, time.March, 9),
		entry("d", 2024, time.March, 1),
	}

	groups := GroupByMonth(entries)
	require.Len(t, groups, 2)
	assert.Equal(t, "March 2024", groups[0].Label)
	assert.Len(t, groups[0].Entries, 3)
	assert.Equal(t, "March 2023", groups[1].Label)
	assert.Equal(t, "d", groups[0].Entries[2].ID)
}

func TestGroupByMonth_Empty(t *testing.T) {
	groups := GroupByMonth(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

// ---- rendering ----

func TestRenderer_Timeline(t *testing.T) {
	link := "https://x.com"
	mar := entry("mar", 2024, time.March, 1)
	mar.Link = &link
	entries := []model.Entry{mar, entry("jan", 2024, time.January, 15)}

	out := NewRenderer(false).Timeline(entries)

	assert.Contains(t, out, "My Timeline")
	assert.Contains(t, out, "2 entries")
	assert.Contains(t, out, "Mar 1, 2024")
	assert.Contains(t, out, "Jan 15, 2024")
	assert.Contains(t, out, "Visit link: https://x.com")
	assert.Contains(t, out, "id: mar")
	assert.Equal(t, 1, strings.Count(out, "Visit link"))
	assert.Less(t, strings.Index(out, "March 2024"), strings.Index(out, "January 2024"))
}

func TestRenderer_EmptyAndCounts(t *testing.T) {
	r := NewRenderer(false)
	out := r.Timeline(nil)
	assert.Contains(t, out, "No entries yet")
	assert.Contains(t, out, "0 entries")

	assert.Equal(t, "1 entry", EntryCount(1))
	assert.Equal(t, "3 entries", EntryCount(3))
}

func TestRenderer_ColorCardHasContent(t *testing.T) {
	out := NewRenderer(true).Card(entry("x", 2024, time.July, 4))
	assert.Contains(t, out, "Jul 4, 2024")
	assert.Contains(t, out, "desc x")
	assert.Contains(t, out, "id: x")
}

func TestRenderer_Outcomes(t *testing.T) {
	r := NewRenderer(false)
	e := entry("42", 2024, time.March, 1)

	assert.Contains(t, r.Saved(e, false), "Saved 42")
	assert.Contains(t, r.Saved(e, true), "locally")
	assert.Contains(t, r.Removed("42", true), "locally")
	assert.NotContains(t, r.Removed("42", false), "locally")
	assert.Contains(t, r.Offline(), "local entries")
}

// ---- photos ----

func TestPhotoFromInput_PassThrough(t *testing.T) {
	for _, in := range []string{
		"https://example.com/a.jpg",
		"http://example.com/a.jpg",
		"data:image/png;base64,AA==",
	} {
		got, err := PhotoFromInput("  " + in + " ")
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}

	_, err := PhotoFromInput(" ")
	assert.Error(t, err)
}

func TestPhotoFromInput_LocalImage(t *testing.T) {
	data := pngBytes(t)
	path := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	got, err := PhotoFromInput(path)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(data), got)
}

func TestPhotoFromInput_RejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("just some text\n"), 0o600))

	_, err := PhotoFromInput(path)
	assert.ErrorIs(t, err, ErrNotImage)

	_, err = PhotoFromInput(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestPhotoSummary(t *testing.T) {
	assert.Equal(t, "https://img/x", PhotoSummary("https://img/x"))
	assert.Equal(t, "inline image/png, 3 B", PhotoSummary("data:image/png;base64,AAAA"))
	assert.Equal(t, "inline image", PhotoSummary("data:broken"))

	big := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(make([]byte, 2048))
	assert.Equal(t, "inline image/jpeg, 2.0 KiB", PhotoSummary(big))
}
