package renderer

import (
	"firecrawl-cli/internal/models"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name        string
		result      models.CrawlResult
		dataType    models.DataType
		wantLines   []string
		absentLines []string
	}{
		{
			name:     "links in input order",
			result:   models.CrawlResult{Links: []string{"https://a.com", "https://b.com"}},
			dataType: models.DataTypeLinks,
			wantLines: []string{
				"### Links found:",
				"- [https://a.com](https://a.com)",
				"- [https://b.com](https://b.com)",
			},
		},
		{
			name:     "texts separated by rule",
			result:   models.CrawlResult{Texts: []string{"Hello", "World"}},
			dataType: models.DataTypeText,
			wantLines: []string{
				"### Extracted text:",
				"Hello\n\n---\n\nWorld\n\n---",
			},
		},
		{
			name:     "images as embeds",
			result:   models.CrawlResult{Images: []string{"https://x.com/i.png"}},
			dataType: models.DataTypeImages,
			wantLines: []string{
				"### Images found:",
				"![https://x.com/i.png](https://x.com/i.png)",
			},
		},
		{
			name:      "missing field renders empty section",
			result:    models.CrawlResult{Texts: []string{"ignored"}},
			dataType:  models.DataTypeLinks,
			wantLines: []string{"### Links found:"},
			absentLines: []string{
				"ignored",
				"- [",
			},
		},
		{
			name:     "unknown selector renders headings only",
			result:   models.CrawlResult{Links: []string{"https://a.com"}},
			dataType: models.DataType("videos"),
			wantLines: []string{
				"## Data type: videos",
			},
			absentLines: []string{"###", "https://a.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Render(tt.result, tt.dataType)

			assert.True(t, strings.HasPrefix(doc, "# Crawl Results\n\n"), "missing title heading: %q", doc)
			assert.Contains(t, doc, "## Data type: "+string(tt.dataType))
			for _, want := range tt.wantLines {
				assert.Contains(t, doc, want)
			}
			for _, absent := range tt.absentLines {
				assert.NotContains(t, doc, absent)
			}
		})
	}
}

func TestRender_LinkOrderAndCount(t *testing.T) {
	doc := Render(models.CrawlResult{Links: []string{"https://a.com", "https://b.com"}}, models.DataTypeLinks)

	var listLines []string
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "- ") {
			listLines = append(listLines, line)
		}
	}

	require.Equal(t, []string{
		"- [https://a.com](https://a.com)",
		"- [https://b.com](https://b.com)",
	}, listLines)
}

func TestSave(t *testing.T) {
	logger := zaptest.NewLogger(t)
	outputDir := filepath.Join(t.TempDir(), "Output", "example.com")

	fr := New(outputDir)
	path, err := fr.Save(models.CrawlResult{Links: []string{"https://a.com"}}, models.DataTypeLinks, logger)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(outputDir, "crawling_results.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- [https://a.com](https://a.com)")
}

func TestSave_Overwrites(t *testing.T) {
	logger := zaptest.NewLogger(t)
	fr := New(t.TempDir())

	_, err := fr.Save(models.CrawlResult{Links: []string{"https://first.com"}}, models.DataTypeLinks, logger)
	require.NoError(t, err)

	path, err := fr.Save(models.CrawlResult{Links: []string{"https://second.com"}}, models.DataTypeLinks, logger)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "https://second.com")
	assert.NotContains(t, string(data), "https://first.com")
}
